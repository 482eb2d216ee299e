package cli

// Short messages (one-liners)
const (
	MsgRootShort = "Inspect and convert documents with pluggable codecs"
	MsgRootLong  = `modulify reads documents with whichever registered codec recognises them
and writes them back with any other one. Codecs are modules registered into
a provider; the configuration decides which ones are installed and in which
order they are tried.`

	MsgVersionShort = "Print version information"
	MsgModulesShort = "List the installed document codecs"
	MsgModulesLong  = "List every document module in the provider, in the order streams are offered to them."
	MsgInspectShort = "Show what a codec reads from a file"
	MsgConvertShort = "Convert a document to another codec"
	MsgConfigShort  = "Print the effective configuration"

	MsgConvertExample = `  modulify convert note.yaml --to toml
  modulify convert note.json --to xml -o note.xml
  modulify convert note.msgpack                 # uses convert.default_target`

	MsgModulesHeaderIndex = "#"
	MsgModulesHeaderName  = "Name"
	MsgModulesHeaderAlias = "Alias"
	MsgModulesHeaderKind  = "Kind"

	MsgKindText   = "text"
	MsgKindBinary = "binary"
	MsgKindForced = "binary (forced json)"

	MsgInspectGUID     = "GUID"
	MsgInspectReader   = "Read by"
	MsgInspectType     = "Type"
	MsgInspectChecksum = "Checksum"
	MsgInspectObject   = "Object"
	MsgInspectNoText   = "no text module supports this document"

	MsgNoModules   = "No document modules installed."
	MsgConvertDone = "Wrote %s document to %s\n"
)
