package types

import (
	"io"

	"github.com/google/uuid"
)

// HintKey is the reserved object key that carries the name of the module
// that produced a serialized document.
const HintKey = ":module_hint"

// Document is an opaque payload identified by a globally unique id.
// Concrete document shapes are defined by the modules that handle them.
type Document interface {
	// GUID returns the identifier of the document
	GUID() uuid.UUID
}

// Object is the structured-object form text modules read and write.
// It mirrors a JSON object: string keys, values made of maps, slices,
// strings, numbers, booleans and nil.
type Object map[string]any

// DocumentModule is the capability shared by every document codec,
// regardless of whether it speaks objects or byte streams.
type DocumentModule interface {
	Module

	// Supports reports whether the module can serialize the document
	Supports(doc Document) bool

	// CreateNew returns a new, empty document of the kind this module handles
	CreateNew() Document
}

// TextModule converts documents to and from structured objects.
type TextModule interface {
	DocumentModule

	// SupportsObject reports whether the object looks like a document
	// this module can deserialize
	SupportsObject(obj Object) bool

	// SerializeObject converts the document into its object form.
	// A nil object with a nil error means the module declined.
	SerializeObject(doc Document) (Object, error)

	// DeserializeObject builds a document from its object form.
	// A nil document with a nil error means the module declined.
	DeserializeObject(obj Object) (Document, error)
}

// BinaryModule converts documents to and from byte streams.
type BinaryModule interface {
	DocumentModule

	// SupportsStream inspects the stream and reports whether the module
	// can deserialize it. Callers rewind the stream afterwards.
	SupportsStream(r io.Reader) bool

	// SerializeTo writes the encoded document to w
	SerializeTo(w io.Writer, doc Document) error

	// DeserializeFrom decodes a document from r.
	// A nil document with a nil error means the module declined.
	DeserializeFrom(r io.Reader) (Document, error)
}
