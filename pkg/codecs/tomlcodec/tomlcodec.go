// Package tomlcodec encodes records as TOML documents. Record fields
// become the [fields] table.
package tomlcodec

import (
	"io"
	"strings"

	"github.com/arthur-debert/modulify/pkg/codecs"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

const Name = "toml"

func init() {
	codecs.MustRegister(Name, func(cfg *config.Config) types.DocumentModule {
		return New(cfg.Convert.Indent)
	})
}

type Codec struct {
	codecs.RecordModule
	indent int
}

var _ types.BinaryModule = (*Codec)(nil)

// New returns a codec indenting nested tables by indent spaces.
func New(indent int) *Codec {
	return &Codec{RecordModule: codecs.RecordModule{Label: Name}, indent: max(indent, 0)}
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

	enc := toml.NewEncoder(w)
	enc.SetIndentSymbol(strings.Repeat(" ", c.indent))
	enc.SetIndentTables(c.indent > 0)
	return enc.Encode(map[string]any(rec.ToObject()))
}

func decode(r io.Reader) (*records.Record, error) {
	var obj map[string]any
	if err := toml.NewDecoder(r).Decode(&obj); err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	rec, err := records.FromObject(obj)
	if err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	return rec, nil
}

