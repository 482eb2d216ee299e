package codecs_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/modulify/pkg/codecs"
	_ "github.com/arthur-debert/modulify/pkg/codecs/jsoncodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/msgpackcodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/tomlcodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/xmlcodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/yamlcodec"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/documents"
	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/records"
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func install(t *testing.T, cfg *config.Config) registry.Provider {
	t.Helper()
	c := registry.NewCollection()
	require.NoError(t, codecs.Install(c, cfg))
	return c.Build()
}

func TestNames(t *testing.T) {
	assert.Subset(t, codecs.Names(), []string{"json", "msgpack", "toml", "xml", "yaml"})
}

func TestRegister(t *testing.T) {
	err := codecs.Register("JSON", func(*config.Config) types.DocumentModule { return nil })
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
	assert.Contains(t, err.Error(), `codec "json" is already registered`)

	err = codecs.Register("nothing", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)

	assert.Panics(t, func() {
		codecs.MustRegister("", func(*config.Config) types.DocumentModule { return nil })
	})
}

func TestNew(t *testing.T) {
	m, err := codecs.New("YAML", nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", m.Name())
	assert.Equal(t, codecs.RecordAlias, m.Alias())

	_, err = codecs.New("csv", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
	assert.Contains(t, err.Error(), `unknown codec "csv"`)
	assert.Subset(t, errors.GetErrorDetails(err)["available"], []string{"json", "yaml"})
}

func TestInstall_DefaultOrder(t *testing.T) {
	p := install(t, config.Default())

	var names []string
	var forced []bool
	for _, m := range documents.Modules(p) {
		names = append(names, m.Name())
		_, isForced := m.(*documents.ForcedBinary)
		forced = append(forced, isForced)
	}
	assert.Equal(t, []string{"json", "json", "yaml", "toml", "xml", "msgpack"}, names)
	assert.Equal(t, []bool{true, false, false, false, false, false}, forced)
}

func TestInstall_Selection(t *testing.T) {
	cfg := config.Default()
	cfg.Codecs.Enabled = []string{"xml", "json"}
	cfg.Codecs.ForceBinary = nil

	var names []string
	for _, m := range documents.Modules(install(t, cfg)) {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"xml", "json"}, names)

	cfg.Codecs.Enabled = []string{"json", "csv"}
	err := codecs.Install(registry.NewCollection(), cfg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}

func TestInstalledCodecsRoundTrip(t *testing.T) {
	p := install(t, config.Default())
	rec := records.New("note", map[string]any{"title": "hello", "done": true})

	for _, name := range []string{"json", "yaml", "toml", "xml", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, documents.SerializeDocumentUsing(p, &buf, rec, name))

			doc, err := documents.DeserializeDocumentFrom(p, bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)

			back := doc.(*records.Record)
			assert.Equal(t, rec.ID, back.ID)
			assert.Equal(t, "note", back.Kind)
			assert.Equal(t, "hello", back.Fields["title"])
			assert.Equal(t, true, back.Fields["done"])
		})
	}
}

func TestInstalledTextCodec(t *testing.T) {
	p := install(t, config.Default())
	rec := records.New("note", nil)

	obj, err := documents.SerializeDocument(p, rec)
	require.NoError(t, err)
	assert.Equal(t, "json", documents.Hint(obj))

	doc, err := documents.DeserializeDocument(p, obj)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, doc.GUID())
}
