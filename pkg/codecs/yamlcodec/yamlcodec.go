// Package yamlcodec encodes records as YAML documents.
package yamlcodec

import (
	"bytes"
	"io"

	"github.com/arthur-debert/modulify/pkg/codecs"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
	"gopkg.in/yaml.v3"
)

const Name = "yaml"

func init() {
	codecs.MustRegister(Name, func(cfg *config.Config) types.DocumentModule {
		return New(cfg.Convert.Indent)
	})
}

// Codec reads and writes one YAML document per stream.
type Codec struct {
	codecs.RecordModule
	indent int
}

var _ types.BinaryModule = (*Codec)(nil)

// New returns a codec writing with the given indent, 2 when indent < 1.
func New(indent int) *Codec {
	if indent < 1 {
		indent = 2
	}
	return &Codec{RecordModule: codecs.RecordModule{Label: Name}, indent: indent}
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

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(map[string]any(rec.ToObject())); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func decode(r io.Reader) (*records.Record, error) {
	var obj map[string]any
	if err := yaml.NewDecoder(r).Decode(&obj); err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	rec, err := records.FromObject(obj)
	if err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	return rec, nil
}
