package documents

import (
	"fmt"
	"io"
	"reflect"

	"github.com/arthur-debert/modulify/pkg/types"
)

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// position returns the current offset of s, or -1 when s cannot seek.
func position(s any) int64 {
	seeker, ok := s.(io.Seeker)
	if !ok {
		return -1
	}
	pos, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

func rewind(s io.Seeker, pos int64) error {
	_, err := s.Seek(pos, io.SeekStart)
	return err
}

// recovered turns a panic value from a module into an error.
func recovered(m types.Module, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("module %q panicked: %w", m.Name(), err)
	}
	return fmt.Errorf("module %q panicked: %v", m.Name(), r)
}

func supports(m types.BinaryModule, doc types.Document) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			ok = false
		}
	}()
	return m.Supports(doc)
}

func supportsStream(m types.BinaryModule, r io.Reader) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			ok = false
		}
	}()
	return m.SupportsStream(r)
}

func deserializeFrom(m types.BinaryModule, r io.Reader) (doc types.Document, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, recovered(m, p)
		}
	}()
	return m.DeserializeFrom(r)
}

func serializeTo(m types.BinaryModule, w io.Writer, doc types.Document) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = recovered(m, p)
		}
	}()
	return m.SerializeTo(w, doc)
}
