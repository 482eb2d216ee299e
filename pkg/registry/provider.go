package registry

import (
	"reflect"

	"github.com/arthur-debert/modulify/pkg/types"
)

// Provider answers which modules satisfy a capability.
type Provider interface {
	// Find returns the last module satisfying capability
	Find(capability reflect.Type) (types.Module, bool)

	// FindWhere returns the last module satisfying capability and pred
	FindWhere(capability reflect.Type, pred types.Predicate) (types.Module, bool)

	// FindAll returns every module satisfying capability, in registration order
	FindAll(capability reflect.Type) []types.Module

	// FindAllWhere returns every module satisfying capability and pred
	FindAllWhere(capability reflect.Type, pred types.Predicate) []types.Module
}

// ModuleProvider is the immutable index produced by Collection.Build.
type ModuleProvider struct {
	modules   []types.Module
	baseTypes *TypeSet
	buckets   map[reflect.Type][]types.Module
	residual  []types.Module
}

var _ Provider = (*ModuleProvider)(nil)
var _ Snapshot = (*ModuleProvider)(nil)

func newModuleProvider(modules []types.Module, baseTypes *TypeSet) *ModuleProvider {
	p := &ModuleProvider{
		modules:   modules,
		baseTypes: baseTypes,
		buckets:   make(map[reflect.Type][]types.Module),
	}

	for _, m := range modules {
		covered := false
		for marker := range baseTypes.FindCovers(reflect.TypeOf(m)) {
			p.buckets[marker] = append(p.buckets[marker], m)
			covered = true
		}
		if !covered {
			p.residual = append(p.residual, m)
		}
	}

	// Freeze: drop spare capacity so no append can alias a bucket.
	for marker, bucket := range p.buckets {
		p.buckets[marker] = bucket[:len(bucket):len(bucket)]
	}
	return p
}

// Find returns the last module satisfying capability. Later registrations
// take precedence over earlier ones.
func (p *ModuleProvider) Find(capability reflect.Type) (types.Module, bool) {
	return last(p.FindAll(capability))
}

// FindWhere returns the last module satisfying capability and pred.
func (p *ModuleProvider) FindWhere(capability reflect.Type, pred types.Predicate) (types.Module, bool) {
	return last(p.FindAllWhere(capability, pred))
}

// FindAll returns every module satisfying capability in registration
// order. Declared capabilities are served from the prebuilt index; any
// other type is matched against the unclassified modules at runtime.
// An unknown capability yields an empty result.
func (p *ModuleProvider) FindAll(capability reflect.Type) []types.Module {
	return p.FindAllWhere(capability, nil)
}

// FindAllWhere is FindAll narrowed by pred.
func (p *ModuleProvider) FindAllWhere(capability reflect.Type, pred types.Predicate) []types.Module {
	if capability == nil {
		return nil
	}

	var out []types.Module
	if bucket, ok := p.buckets[capability]; ok {
		for _, m := range bucket {
			if pred.Match(m) {
				out = append(out, m)
			}
		}
		return out
	}

	for _, m := range p.residual {
		if reflect.TypeOf(m).AssignableTo(capability) && pred.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// Capabilities returns the declared capabilities at least one module satisfies.
func (p *ModuleProvider) Capabilities() []reflect.Type {
	var out []reflect.Type
	for _, marker := range p.baseTypes.Types() {
		if _, ok := p.buckets[marker]; ok {
			out = append(out, marker)
		}
	}
	return out
}

// CapabilitiesOf returns the declared capabilities the module satisfies.
func (p *ModuleProvider) CapabilitiesOf(m types.Module) []reflect.Type {
	if m == nil {
		return nil
	}
	var out []reflect.Type
	for marker := range p.baseTypes.FindCovers(reflect.TypeOf(m)) {
		out = append(out, marker)
	}
	return out
}

// Modules returns a copy of the snapshot the provider was built from.
func (p *ModuleProvider) Modules() []types.Module {
	out := make([]types.Module, len(p.modules))
	copy(out, p.modules)
	return out
}

// BaseTypes returns a copy of the capability markers the provider was built with.
func (p *ModuleProvider) BaseTypes() *TypeSet {
	return CopyTypeSet(p.baseTypes)
}

// Len returns the number of registrations in the snapshot.
func (p *ModuleProvider) Len() int {
	return len(p.modules)
}

func last(modules []types.Module) (types.Module, bool) {
	if len(modules) == 0 {
		return nil, false
	}
	return modules[len(modules)-1], true
}
