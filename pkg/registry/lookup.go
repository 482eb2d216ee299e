package registry

import (
	"reflect"

	"github.com/arthur-debert/modulify/pkg/types"
)

// CapabilityOf returns the capability marker for T, typically an interface.
func CapabilityOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Declare adds T to the collection's capability markers.
func Declare[T any](c *Collection) *Collection {
	c.BaseTypes().Add(CapabilityOf[T]())
	return c
}

// As converts a module to T.
func As[T any](m types.Module) (T, bool) {
	t, ok := m.(T)
	return t, ok
}

// FindAllAs returns every module satisfying T and pred, typed as T.
func FindAllAs[T any](p Provider, pred types.Predicate) []T {
	var out []T
	for _, m := range p.FindAllWhere(CapabilityOf[T](), pred) {
		if t, ok := m.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// FindAs returns the last module satisfying T and pred, typed as T.
func FindAs[T any](p Provider, pred types.Predicate) (T, bool) {
	all := FindAllAs[T](p, pred)
	if len(all) == 0 {
		var zero T
		return zero, false
	}
	return all[len(all)-1], true
}
