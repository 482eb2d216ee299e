package types

// Module is a named capability unit that can be registered into a
// collection and later discovered by the capability types it satisfies.
// Identity is reference identity: two modules with the same name are
// still distinct entries.
type Module interface {
	// Name returns the human readable name of the module, may be empty
	Name() string

	// Alias returns a short name describing the module, may be empty
	// e.g. "json", "editor", "listener"
	Alias() string
}

// Predicate narrows a module lookup. A nil Predicate matches every module.
type Predicate func(Module) bool

// Match reports whether the module satisfies the predicate.
func (p Predicate) Match(m Module) bool {
	return p == nil || p(m)
}

// ByName returns a predicate matching modules whose name equals name exactly.
func ByName(name string) Predicate {
	return func(m Module) bool {
		return m.Name() == name
	}
}

// ByAlias returns a predicate matching modules whose alias equals alias exactly.
func ByAlias(alias string) Predicate {
	return func(m Module) bool {
		return m.Alias() == alias
	}
}
