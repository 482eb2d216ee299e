package codecs

import (
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
)

// RecordAlias is the alias shared by every record codec.
const RecordAlias = "record"

// RecordModule is the part of a record codec that does not depend on
// the wire format. Codecs embed it.
type RecordModule struct {
	Label string
}

func (m RecordModule) Name() string  { return m.Label }
func (m RecordModule) Alias() string { return RecordAlias }

// Supports accepts any non-nil *records.Record.
func (m RecordModule) Supports(doc types.Document) bool {
	rec, ok := doc.(*records.Record)
	return ok && rec != nil
}

func (m RecordModule) CreateNew() types.Document { return records.New("", nil) }

// AsRecord returns doc as a record, or ErrUnsupported.
func AsRecord(doc types.Document) (*records.Record, error) {
	rec, ok := doc.(*records.Record)
	if !ok || rec == nil {
		return nil, errUnsupportedDocument(doc)
	}
	return rec, nil
}
