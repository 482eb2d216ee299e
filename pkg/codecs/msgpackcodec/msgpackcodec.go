// Package msgpackcodec encodes records as MessagePack maps.
package msgpackcodec

import (
	"io"

	"github.com/arthur-debert/modulify/pkg/codecs"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/vmihailenco/msgpack/v5"
)

const Name = "msgpack"

func init() {
	codecs.MustRegister(Name, func(*config.Config) types.DocumentModule { return New() })
}

type Codec struct {
	codecs.RecordModule
}

var _ types.BinaryModule = (*Codec)(nil)

func New() *Codec {
	return &Codec{RecordModule: codecs.RecordModule{Label: Name}}
}

func (c *Codec) SupportsStream(r io.Reader) bool {
	_, err := decode(r)
	return err == nil
}

func (c *Codec) DeserializeFrom(r io.Reader) (types.Document, error) {
	return decode(r)
}

func (c *Codec) SerializeTo(w io.Writer, doc types.Document) error {
	rec, err := codecs.AsRecord(doc)
	if err != nil {
		return err
	}

	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return enc.Encode(map[string]any(rec.ToObject()))
}

func decode(r io.Reader) (*records.Record, error) {
	dec := msgpack.NewDecoder(r)
	dec.UseLooseInterfaceDecoding(true)

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	rec, err := records.FromObject(obj)
	if err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	return rec, nil
}
