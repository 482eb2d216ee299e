package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/arthur-debert/modulify/internal/hashutil"
	"github.com/arthur-debert/modulify/pkg/codecs"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/documents"
	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/host"
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/spf13/cobra"

	// Codecs register themselves on import.
	_ "github.com/arthur-debert/modulify/pkg/codecs/jsoncodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/msgpackcodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/tomlcodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/xmlcodec"
	_ "github.com/arthur-debert/modulify/pkg/codecs/yamlcodec"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	cfg    *config.Config
	host   *host.Host
	format Format
	out    io.Writer
	styles styles
}

func newApp(cmd *cobra.Command, cfg *config.Config, format Format) (*app, error) {
	h := host.New()
	var installErr error
	if err := h.Configure(func(c *registry.Collection) {
		installErr = codecs.Install(c, cfg)
	}); err != nil {
		return nil, err
	}
	if installErr != nil {
		return nil, installErr
	}

	out := cmd.OutOrStdout()
	if format == FormatAuto {
		format = DetectFormat(out)
	}
	return &app{
		cfg:    cfg,
		host:   h,
		format: format,
		out:    out,
		styles: newStyles(out, format),
	}, nil
}

// provider returns the provider for one command run and puts it in ctx.
func (a *app) provider(ctx context.Context) (registry.Provider, context.Context, error) {
	p, err := a.host.Scope(ctx)
	if err != nil {
		return nil, ctx, err
	}
	return p, host.WithProvider(ctx, p), nil
}

// readResult is a document decoded from a file.
type readResult struct {
	doc      types.Document
	reader   types.BinaryModule
	checksum string
}

// readDocument decodes the file at path with the provider found in ctx.
func readDocument(ctx context.Context, path string) (*readResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	checksum, err := hashutil.StreamChecksum(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}

	doc, reader, err := documents.DeserializeDocumentWithModule(host.FromContext(ctx), f)
	if err != nil {
		return nil, err
	}
	return &readResult{doc: doc, reader: reader, checksum: checksum}, nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
