// Package xmlcodec encodes records as XML:
//
//	<record id="..." kind="note">
//	  <field name="title" type="string">hello</field>
//	  <field name="tags" type="list">
//	    <item type="string">a</item>
//	  </field>
//	</record>
//
// Every value carries its type so that numbers and booleans survive a
// round trip.
package xmlcodec

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/modulify/pkg/codecs"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/beevik/etree"
)

const Name = "xml"

// Element and attribute names.
const (
	rootTag  = "record"
	fieldTag = "field"
	itemTag  = "item"
	nameAttr = "name"
	typeAttr = "type"
)

// Value types.
const (
	typeString = "string"
	typeInt    = "int"
	typeFloat  = "float"
	typeBool   = "bool"
	typeNull   = "null"
	typeMap    = "map"
	typeList   = "list"
)

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

	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := xml.CreateElement(rootTag)
	root.CreateAttr(records.KeyID, rec.ID.String())
	root.CreateAttr(records.KeyKind, rec.Kind)
	if err := encodeMap(root, rec.Fields); err != nil {
		return err
	}

	if c.indent > 0 {
		xml.Indent(c.indent)
	}
	_, err = xml.WriteTo(w)
	return err
}

func encodeMap(parent *etree.Element, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		el := parent.CreateElement(fieldTag)
		el.CreateAttr(nameAttr, k)
		if err := encodeValue(el, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(el *etree.Element, v any) error {
	switch val := v.(type) {
	case nil:
		el.CreateAttr(typeAttr, typeNull)
	case string:
		el.CreateAttr(typeAttr, typeString)
		el.SetText(val)
	case bool:
		el.CreateAttr(typeAttr, typeBool)
		el.SetText(strconv.FormatBool(val))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		el.CreateAttr(typeAttr, typeInt)
		el.SetText(fmt.Sprint(val))
	case float32:
		el.CreateAttr(typeAttr, typeFloat)
		el.SetText(strconv.FormatFloat(float64(val), 'g', -1, 32))
	case float64:
		el.CreateAttr(typeAttr, typeFloat)
		el.SetText(strconv.FormatFloat(val, 'g', -1, 64))
	case map[string]any:
		el.CreateAttr(typeAttr, typeMap)
		return encodeMap(el, val)
	case types.Object:
		el.CreateAttr(typeAttr, typeMap)
		return encodeMap(el, val)
	case []any:
		el.CreateAttr(typeAttr, typeList)
		for _, item := range val {
			if err := encodeValue(el.CreateElement(itemTag), item); err != nil {
				return err
			}
		}
	case fmt.Stringer:
		el.CreateAttr(typeAttr, typeString)
		el.SetText(val.String())
	default:
		return errors.Newf(errors.ErrInvalidInput, "%T values cannot be written as XML", v)
	}
	return nil
}

func decode(r io.Reader) (*records.Record, error) {
	xml := etree.NewDocument()
	if _, err := xml.ReadFrom(r); err != nil {
		return nil, codecs.Malformed(err, Name)
	}

	root := xml.Root()
	if root == nil || root.Tag != rootTag {
		return nil, codecs.Malformed(errors.New(errors.ErrInvalidInput, "missing <record> root element"), Name)
	}

	fields, err := decodeMap(root)
	if err != nil {
		return nil, codecs.Malformed(err, Name)
	}

	obj := types.Object{
		records.KeyKind:   root.SelectAttrValue(records.KeyKind, ""),
		records.KeyFields: fields,
	}
	if id := root.SelectAttr(records.KeyID); id != nil {
		obj[records.KeyID] = id.Value
	}

	rec, err := records.FromObject(obj)
	if err != nil {
		return nil, codecs.Malformed(err, Name)
	}
	return rec, nil
}

func decodeMap(parent *etree.Element) (map[string]any, error) {
	out := map[string]any{}
	for _, el := range parent.SelectElements(fieldTag) {
		name := el.SelectAttrValue(nameAttr, "")
		if name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "<field> without a name")
		}
		v, err := decodeValue(el)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "field %q", name)
		}
		out[name] = v
	}
	return out, nil
}

func decodeValue(el *etree.Element) (any, error) {
	text := strings.TrimSpace(el.Text())
	switch kind := el.SelectAttrValue(typeAttr, typeString); kind {
	case typeString:
		return el.Text(), nil
	case typeNull:
		return nil, nil
	case typeBool:
		return strconv.ParseBool(text)
	case typeInt:
		return strconv.ParseInt(text, 10, 64)
	case typeFloat:
		return strconv.ParseFloat(text, 64)
	case typeMap:
		return decodeMap(el)
	case typeList:
		items := []any{}
		for _, item := range el.SelectElements(itemTag) {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown value type %q", kind)
	}
}
