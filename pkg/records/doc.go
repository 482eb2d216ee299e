// Package records provides Record, the document type shipped with the
// bundled codecs.
//
// A record is a GUID, a kind and a bag of fields. Every codec agrees on
// one object form for it:
//
//	{"id": "<uuid>", "kind": "<kind>", "fields": {...}}
//
// Text modules exchange that object directly. Binary modules encode it
// in their own format.
package records
