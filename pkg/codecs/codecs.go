package codecs

import (
	"strings"

	"github.com/arthur-debert/modulify/pkg/catalog"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/documents"
	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
)

// Factory builds a codec module for the given configuration.
type Factory func(cfg *config.Config) types.DocumentModule

var factories = catalog.New[Factory]("codec")

// Register makes a codec factory available under name.
func Register(name string, f Factory) error {
	if f == nil {
		return errors.Newf(errors.ErrInvalidInput, "codec %q has no factory", name)
	}
	return factories.Register(strings.ToLower(name), f)
}

// MustRegister is Register for init functions.
func MustRegister(name string, f Factory) {
	if err := Register(name, f); err != nil {
		panic(err)
	}
}

// Names lists registered codec names, sorted.
func Names() []string {
	return factories.List()
}

// New builds the named codec.
func New(name string, cfg *config.Config) (types.DocumentModule, error) {
	f, err := factories.Get(strings.ToLower(name))
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return f(cfg), nil
}

// Install registers every codec enabled in cfg into c, in the configured
// order. Text codecs marked in codecs.force_binary are also registered
// for stream dispatch.
func Install(c *registry.Collection, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := logging.GetLogger("codecs")

	for _, name := range cfg.Codecs.Enabled {
		m, err := New(name, cfg)
		if err != nil {
			return err
		}

		switch codec := m.(type) {
		case types.TextModule:
			forced := cfg.Codecs.IsForcedBinary(name)
			documents.AddText(c, codec, forced)
			logger.Debug().Str("codec", name).Bool("forceBinary", forced).Msg("Installed text codec")
		case types.BinaryModule:
			documents.AddBinary(c, codec)
			logger.Debug().Str("codec", name).Msg("Installed binary codec")
		default:
			return errors.Newf(errors.ErrInvalidInput, "codec %q is neither a text nor a binary module", name)
		}
	}
	return nil
}
