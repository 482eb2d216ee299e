package documents

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ForcedBinary lets a text module take part in stream dispatch. Streams
// are read as UTF-8 JSON objects and handed to the wrapped module;
// documents are written as indented JSON.
type ForcedBinary struct {
	module types.TextModule
}

var _ types.BinaryModule = (*ForcedBinary)(nil)

// ForceBinary wraps a text module as a binary one.
func ForceBinary(m types.TextModule) *ForcedBinary {
	return &ForcedBinary{module: m}
}

// Unwrap returns the wrapped text module.
func (f *ForcedBinary) Unwrap() types.TextModule { return f.module }

func (f *ForcedBinary) Name() string  { return f.module.Name() }
func (f *ForcedBinary) Alias() string { return f.module.Alias() }

func (f *ForcedBinary) Supports(doc types.Document) bool { return f.module.Supports(doc) }
func (f *ForcedBinary) CreateNew() types.Document        { return f.module.CreateNew() }

func (f *ForcedBinary) SupportsStream(r io.Reader) bool {
	obj, err := readObject(r)
	if err != nil || obj == nil {
		return false
	}
	return f.module.SupportsObject(obj)
}

func (f *ForcedBinary) DeserializeFrom(r io.Reader) (types.Document, error) {
	obj, err := readObject(r)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return f.module.DeserializeObject(obj)
}

func (f *ForcedBinary) SerializeTo(w io.Writer, doc types.Document) error {
	obj, err := f.module.SerializeObject(doc)
	if err != nil {
		return err
	}
	if obj == nil {
		obj = types.Object{}
	}
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "document object is not valid JSON")
	}
	_, err = w.Write(data)
	return err
}

// readObject reads the remainder of r as a JSON object. A JSON null
// yields a nil object and no error.
func readObject(r io.Reader) (types.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var obj types.Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "input is not a JSON object")
	}
	return obj, nil
}
