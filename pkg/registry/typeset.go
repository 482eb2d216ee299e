package registry

import (
	"iter"
	"reflect"
)

// TypeSet is a set of capability markers. Membership is keyed by
// reflect.Type identity; iteration follows insertion order.
type TypeSet struct {
	members map[reflect.Type]struct{}
	order   []reflect.Type
}

// NewTypeSet returns a set holding the given markers.
func NewTypeSet(markers ...reflect.Type) *TypeSet {
	s := &TypeSet{members: make(map[reflect.Type]struct{})}
	for _, m := range markers {
		s.Add(m)
	}
	return s
}

// CopyTypeSet returns an independent set with the contents of src.
// A nil src yields an empty set.
func CopyTypeSet(src *TypeSet) *TypeSet {
	if src == nil {
		return NewTypeSet()
	}
	return NewTypeSet(src.order...)
}

// Add inserts a marker and reports whether it was new. Nil markers are ignored.
func (s *TypeSet) Add(marker reflect.Type) bool {
	if marker == nil {
		return false
	}
	if _, ok := s.members[marker]; ok {
		return false
	}
	s.members[marker] = struct{}{}
	s.order = append(s.order, marker)
	return true
}

// Contains reports whether marker is a member of the set.
func (s *TypeSet) Contains(marker reflect.Type) bool {
	if s == nil || marker == nil {
		return false
	}
	_, ok := s.members[marker]
	return ok
}

// Len returns the number of markers.
func (s *TypeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Types returns a copy of the markers.
func (s *TypeSet) Types() []reflect.Type {
	if s == nil {
		return nil
	}
	out := make([]reflect.Type, len(s.order))
	copy(out, s.order)
	return out
}

// CanCover reports whether at least one marker is assignable from concrete.
func (s *TypeSet) CanCover(concrete reflect.Type) bool {
	for range s.FindCovers(concrete) {
		return true
	}
	return false
}

// FindCovers yields every marker that concrete is assignable to. The
// sequence is lazy and can be ranged over again for the same result as
// long as the set is unchanged.
func (s *TypeSet) FindCovers(concrete reflect.Type) iter.Seq[reflect.Type] {
	return func(yield func(reflect.Type) bool) {
		if s == nil || concrete == nil {
			return
		}
		for _, marker := range s.order {
			if concrete.AssignableTo(marker) {
				if !yield(marker) {
					return
				}
			}
		}
	}
}
