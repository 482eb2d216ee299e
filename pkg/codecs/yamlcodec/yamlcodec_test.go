package yamlcodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New(4)
	rec := records.New("note", map[string]any{
		"title": "hello",
		"meta":  map[string]any{"pages": 3},
		"tags":  []any{"a", "b"},
	})

	var buf bytes.Buffer
	require.NoError(t, c.SerializeTo(&buf, rec))
	assert.Contains(t, buf.String(), "\n    title: hello")

	assert.True(t, c.SupportsStream(bytes.NewReader(buf.Bytes())))
	doc, err := c.DeserializeFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	back := doc.(*records.Record)
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, 3, back.Fields["meta"].(map[string]any)["pages"])
	assert.Equal(t, []any{"a", "b"}, back.Fields["tags"])
}

func TestCodec_SupportsStream(t *testing.T) {
	c := New(0)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "record", input: "id: 6f1c0c9e-3d5f-4a53-9a53-0e7f2f1f6b10\nkind: note\n", want: true},
		{name: "json is yaml", input: `{"id": "6f1c0c9e-3d5f-4a53-9a53-0e7f2f1f6b10"}`, want: true},
		{name: "no id", input: "kind: note\n", want: false},
		{name: "scalar", input: "just text", want: false},
		{name: "empty", input: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.SupportsStream(strings.NewReader(tt.input)))
		})
	}
}

func TestCodec_DeserializeFrom_Malformed(t *testing.T) {
	_, err := New(2).DeserializeFrom(strings.NewReader("id: [unclosed"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	assert.Equal(t, Name, errors.GetErrorDetails(err)["format"])
}
