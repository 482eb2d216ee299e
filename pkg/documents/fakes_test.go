package documents

import (
	"io"

	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/google/uuid"
)

type fakeDoc struct {
	id   uuid.UUID
	kind string
	by   string
}

func (d *fakeDoc) GUID() uuid.UUID { return d.id }

func newDoc(kind string) *fakeDoc {
	return &fakeDoc{id: uuid.New(), kind: kind}
}

// textCodec handles fakeDocs of one kind as {"id", "kind"} objects.
type textCodec struct {
	name         string
	kind         string
	serializeErr error
	declineWrite bool
}

func (c *textCodec) Name() string  { return c.name }
func (c *textCodec) Alias() string { return c.kind }

func (c *textCodec) Supports(doc types.Document) bool {
	d, ok := doc.(*fakeDoc)
	return ok && d.kind == c.kind
}

func (c *textCodec) CreateNew() types.Document { return newDoc(c.kind) }

func (c *textCodec) SupportsObject(obj types.Object) bool {
	return obj["kind"] == c.kind
}

func (c *textCodec) SerializeObject(doc types.Document) (types.Object, error) {
	if c.serializeErr != nil {
		return nil, c.serializeErr
	}
	if c.declineWrite {
		return nil, nil
	}
	d := doc.(*fakeDoc)
	return types.Object{"id": d.id.String(), "kind": d.kind}, nil
}

func (c *textCodec) DeserializeObject(obj types.Object) (types.Document, error) {
	id, err := uuid.Parse(obj["id"].(string))
	if err != nil {
		return nil, err
	}
	return &fakeDoc{id: id, kind: obj["kind"].(string), by: c.name}, nil
}

// binaryCodec is scripted through its function fields.
type binaryCodec struct {
	name        string
	supports    func(types.Document) bool
	probe       func(io.Reader) bool
	read        func(io.Reader) (types.Document, error)
	write       func(io.Writer, types.Document) error
	probeCalls  int
	readCalls   int
	writeCalls  int
	readOffsets []int64
}

func (c *binaryCodec) Name() string  { return c.name }
func (c *binaryCodec) Alias() string { return "" }

func (c *binaryCodec) Supports(doc types.Document) bool {
	if c.supports == nil {
		return true
	}
	return c.supports(doc)
}

func (c *binaryCodec) CreateNew() types.Document { return newDoc(c.name) }

func (c *binaryCodec) SupportsStream(r io.Reader) bool {
	c.probeCalls++
	if c.probe == nil {
		_, _ = io.ReadAll(r)
		return true
	}
	return c.probe(r)
}

func (c *binaryCodec) DeserializeFrom(r io.Reader) (types.Document, error) {
	c.readCalls++
	if s, ok := r.(io.Seeker); ok {
		pos, _ := s.Seek(0, io.SeekCurrent)
		c.readOffsets = append(c.readOffsets, pos)
	}
	if c.read == nil {
		return nil, nil
	}
	return c.read(r)
}

func (c *binaryCodec) SerializeTo(w io.Writer, doc types.Document) error {
	c.writeCalls++
	if c.write == nil {
		_, err := io.WriteString(w, c.name)
		return err
	}
	return c.write(w, doc)
}

// readerOnly hides every method but Read.
type readerOnly struct{ io.Reader }
