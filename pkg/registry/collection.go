package registry

import (
	"reflect"

	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/arthur-debert/modulify/pkg/types"
)

// Snapshot is anything a Collection can be forked from.
type Snapshot interface {
	// Modules returns the modules in registration order
	Modules() []types.Module

	// BaseTypes returns the declared capability markers
	BaseTypes() *TypeSet
}

// Collection is the mutable builder modules are registered into.
// It is not safe for concurrent writers.
type Collection struct {
	modules   []types.Module
	baseTypes *TypeSet
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{baseTypes: NewTypeSet()}
}

// Fork returns a collection starting from a copy of the parent's modules
// and capability markers. Later changes on either side stay local.
func Fork(parent Snapshot) *Collection {
	c := NewCollection()
	if parent == nil {
		return c
	}
	c.modules = append(c.modules, parent.Modules()...)
	c.baseTypes = CopyTypeSet(parent.BaseTypes())
	return c
}

// BaseTypes returns the collection's own, mutable capability set.
func (c *Collection) BaseTypes() *TypeSet {
	return c.baseTypes
}

// Add appends a module. The same module may be added more than once and
// will then be visited once per registration. Nil modules are ignored.
func (c *Collection) Add(m types.Module) *Collection {
	if m == nil {
		logger := logging.GetLogger("registry")
		logger.Debug().Msg("Ignoring nil module")
		return c
	}
	c.modules = append(c.modules, m)
	return c
}

// AddAll appends every module in order.
func (c *Collection) AddAll(modules ...types.Module) *Collection {
	for _, m := range modules {
		c.Add(m)
	}
	return c
}

// Find returns the first module matching pred.
func (c *Collection) Find(pred types.Predicate) (types.Module, bool) {
	for _, m := range c.modules {
		if pred.Match(m) {
			return m, true
		}
	}
	return nil, false
}

// FindAll returns every module matching pred, in registration order.
func (c *Collection) FindAll(pred types.Predicate) []types.Module {
	var out []types.Module
	for _, m := range c.modules {
		if pred.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// Contains reports whether the exact module instance was added.
func (c *Collection) Contains(m types.Module) bool {
	for _, each := range c.modules {
		if sameModule(each, m) {
			return true
		}
	}
	return false
}

// Remove deletes the first registration of the module instance.
func (c *Collection) Remove(m types.Module) bool {
	for i, each := range c.modules {
		if sameModule(each, m) {
			c.modules = append(c.modules[:i:i], c.modules[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every module. Declared capabilities are kept.
func (c *Collection) Clear() {
	c.modules = nil
}

// Len returns the number of registrations.
func (c *Collection) Len() int {
	return len(c.modules)
}

// Modules returns a copy of the registered modules.
func (c *Collection) Modules() []types.Module {
	out := make([]types.Module, len(c.modules))
	copy(out, c.modules)
	return out
}

// Build compiles the current state into an immutable provider. The
// collection stays usable; later additions do not reach the provider.
func (c *Collection) Build() *ModuleProvider {
	logger := logging.GetLogger("registry")
	p := newModuleProvider(c.Modules(), CopyTypeSet(c.baseTypes))
	logger.Debug().
		Int("modules", len(p.modules)).
		Int("capabilities", len(p.buckets)).
		Int("residual", len(p.residual)).
		Msg("Module provider built")
	return p
}

// sameModule compares modules by reference, guarding against dynamic
// types that cannot be compared.
func sameModule(a, b types.Module) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
