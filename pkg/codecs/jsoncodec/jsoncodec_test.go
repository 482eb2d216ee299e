package jsoncodec

import (
	"testing"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	c := New()
	rec := records.New("note", map[string]any{"title": "hello"})

	assert.True(t, c.Supports(rec))
	assert.False(t, c.Supports(nil))
	assert.IsType(t, &records.Record{}, c.CreateNew())

	obj, err := c.SerializeObject(rec)
	require.NoError(t, err)
	assert.True(t, c.SupportsObject(obj))

	doc, err := c.DeserializeObject(obj)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, doc.GUID())
}

func TestCodec_Rejects(t *testing.T) {
	c := New()

	assert.False(t, c.SupportsObject(types.Object{"kind": "note"}))

	_, err := c.DeserializeObject(types.Object{"id": "not-a-guid"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)

	_, err = c.SerializeObject(fakeDoc{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
}

type fakeDoc struct{}

func (fakeDoc) GUID() uuid.UUID { return uuid.Nil }
