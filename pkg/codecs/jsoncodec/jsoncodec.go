// Package jsoncodec is the text codec for records. It exchanges the
// record object form directly; when forced into stream dispatch the
// object is written as JSON.
package jsoncodec

import (
	"github.com/arthur-debert/modulify/pkg/codecs"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
)

// Name is the registered codec name.
const Name = "json"

func init() {
	codecs.MustRegister(Name, func(*config.Config) types.DocumentModule { return New() })
}

// Codec converts records to and from objects.
type Codec struct {
	codecs.RecordModule
}

var _ types.TextModule = (*Codec)(nil)

func New() *Codec {
	return &Codec{RecordModule: codecs.RecordModule{Label: Name}}
}

func (c *Codec) SupportsObject(obj types.Object) bool {
	return records.IsRecord(obj)
}

func (c *Codec) SerializeObject(doc types.Document) (types.Object, error) {
	rec, err := codecs.AsRecord(doc)
	if err != nil {
		return nil, err
	}
	return rec.ToObject(), nil
}

func (c *Codec) DeserializeObject(obj types.Object) (types.Document, error) {
	rec, err := records.FromObject(obj)
	if err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	return rec, nil
}
