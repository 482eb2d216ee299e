package records

import (
	"fmt"
	"maps"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/google/uuid"
)

// Object keys of the record form.
const (
	KeyID     = "id"
	KeyKind   = "kind"
	KeyFields = "fields"
)

// Record is a generic document.
type Record struct {
	ID     uuid.UUID
	Kind   string
	Fields map[string]any
}

var _ types.Document = (*Record)(nil)

// New creates a record with a fresh GUID.
func New(kind string, fields map[string]any) *Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return &Record{ID: uuid.New(), Kind: kind, Fields: fields}
}

func (r *Record) GUID() uuid.UUID { return r.ID }

// ToObject returns the object form of r. Fields are copied shallowly.
func (r *Record) ToObject() types.Object {
	fields := maps.Clone(r.Fields)
	if fields == nil {
		fields = map[string]any{}
	}
	return types.Object{
		KeyID:     r.ID.String(),
		KeyKind:   r.Kind,
		KeyFields: fields,
	}
}

// FromObject parses the object form. Unknown keys, including the module
// hint, are ignored.
func FromObject(obj types.Object) (*Record, error) {
	if obj == nil {
		return nil, errors.New(errors.ErrNullInput, "record object is null")
	}

	id, err := parseID(obj[KeyID])
	if err != nil {
		return nil, err
	}

	rec := &Record{ID: id, Fields: map[string]any{}}

	switch kind := obj[KeyKind].(type) {
	case nil:
	case string:
		rec.Kind = kind
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "record kind must be a string, got %T", kind)
	}

	switch fields := obj[KeyFields].(type) {
	case nil:
	case map[string]any:
		rec.Fields = fields
	case types.Object:
		rec.Fields = fields
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "record fields must be a map, got %T", fields)
	}

	return rec, nil
}

// IsRecord reports whether obj parses as a record.
func IsRecord(obj types.Object) bool {
	_, err := FromObject(obj)
	return err == nil
}

func parseID(v any) (uuid.UUID, error) {
	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, errors.Wrapf(err, errors.ErrInvalidInput, "record id %q is not a GUID", id)
		}
		return parsed, nil
	case nil:
		return uuid.Nil, errors.New(errors.ErrInvalidInput, "record id is missing")
	default:
		return uuid.Nil, errors.New(errors.ErrInvalidInput, fmt.Sprintf("record id must be a string, got %T", id))
	}
}
