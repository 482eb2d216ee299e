// Package documents serializes and deserializes documents through
// whichever registered codec module can handle them.
//
// Codec modules are registered with AddText or AddBinary, which also
// declare the types.DocumentModule capability so a provider can return
// every codec regardless of its flavour. Text dispatch works on
// types.Object values and stamps the winning module's name under the
// reserved ":module_hint" key; deserialization tries the hinted module
// first. Binary dispatch works on streams: candidates are tried in
// registration order and the input is rewound between attempts, so a
// failed attempt never consumes the stream for the next one.
package documents
