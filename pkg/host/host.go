package host

import (
	"context"
	"sync"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
)

// Factory creates a module. A nil module with a nil error registers
// nothing.
type Factory func(ctx context.Context) (types.Module, error)

// Host holds the collection and the registered factories.
type Host struct {
	mu         sync.Mutex
	collection *registry.Collection
	singletons []Factory
	scoped     []Factory
	provider   *registry.ModuleProvider
}

func New() *Host {
	return &Host{collection: registry.NewCollection()}
}

// Configure runs fn against the collection.
func (h *Host) Configure(fn func(c *registry.Collection)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkOpen(); err != nil {
		return err
	}
	if fn != nil {
		fn(h.collection)
	}
	return nil
}

// AddModule registers m in the singleton collection.
func (h *Host) AddModule(m types.Module) error {
	return h.Configure(func(c *registry.Collection) { c.Add(m) })
}

// AddFactory registers a factory resolved once, into the singleton
// provider.
func (h *Host) AddFactory(f Factory) error {
	return h.addFactory(&h.singletons, f)
}

// AddScopedFactory registers a factory resolved for every scope.
func (h *Host) AddScopedFactory(f Factory) error {
	return h.addFactory(&h.scoped, f)
}

func (h *Host) addFactory(dst *[]Factory, f Factory) error {
	if f == nil {
		return errors.New(errors.ErrNullInput, "factory is null")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkOpen(); err != nil {
		return err
	}
	*dst = append(*dst, f)
	return nil
}

func (h *Host) checkOpen() error {
	if h.provider != nil {
		return errors.New(errors.ErrInvalidInput, "modules cannot be registered after the provider was built")
	}
	return nil
}

// Provider returns the singleton provider, building it on first use.
// A failing factory leaves the host unbuilt so the call can be retried.
func (h *Host) Provider(ctx context.Context) (registry.Provider, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.provider != nil {
		return h.provider, nil
	}

	modules, err := resolve(ctx, h.singletons)
	if err != nil {
		return nil, err
	}
	h.collection.AddAll(modules...)
	h.provider = h.collection.Build()

	logger := logging.GetLogger("host")
	logger.Debug().
		Int("modules", h.provider.Len()).
		Int("factories", len(h.singletons)).
		Msg("Singleton provider built")
	return h.provider, nil
}

// Scope returns a provider for one unit of work. Without scoped
// factories it is the singleton provider.
func (h *Host) Scope(ctx context.Context) (registry.Provider, error) {
	if _, err := h.Provider(ctx); err != nil {
		return nil, err
	}

	h.mu.Lock()
	base, scoped := h.provider, h.scoped
	h.mu.Unlock()

	if len(scoped) == 0 {
		return base, nil
	}

	modules, err := resolve(ctx, scoped)
	if err != nil {
		return nil, err
	}
	return registry.Fork(base).AddAll(modules...).Build(), nil
}

func resolve(ctx context.Context, factories []Factory) ([]types.Module, error) {
	modules := make([]types.Module, 0, len(factories))
	for i, f := range factories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := f(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrModuleFailure, "module factory #%d failed", i).
				WithDetail("factory", i)
		}
		if m != nil {
			modules = append(modules, m)
		}
	}
	return modules, nil
}
