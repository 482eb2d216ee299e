package documents

import (
	"io"
	"strings"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
)

// SerializeDocumentTo writes doc to w with the first binary module that
// supports it.
func SerializeDocumentTo(p registry.Provider, w io.Writer, doc types.Document) error {
	return serializeWith(p, w, doc, nil)
}

// SerializeDocumentUsing is SerializeDocumentTo restricted to binary
// modules whose name matches name case-insensitively.
func SerializeDocumentUsing(p registry.Provider, w io.Writer, doc types.Document, name string) error {
	err := serializeWith(p, w, doc, func(m types.Module) bool {
		return strings.EqualFold(m.Name(), name)
	})
	if errors.IsErrorCode(err, errors.ErrUnsupported) {
		return errors.Newf(errors.ErrUnsupported, "no module named %q supports the input", name).
			WithDetail("module", name)
	}
	return err
}

func serializeWith(p registry.Provider, w io.Writer, doc types.Document, pred types.Predicate) error {
	if isNil(doc) {
		return errors.New(errors.ErrNullInput, "the input is null")
	}
	if w == nil {
		return errors.New(errors.ErrNullInput, "the output is null")
	}

	m := firstSupporting(p, doc, pred)
	if m == nil {
		return errors.New(errors.ErrUnsupported, "the input is not supported")
	}

	if err := m.SerializeTo(w, doc); err != nil {
		return errors.Wrapf(err, errors.ErrModuleFailure, "module %q failed to serialize", m.Name()).
			WithDetail("module", m.Name())
	}
	logger := logging.GetLogger("documents")
	logger.Debug().
		Str("module", m.Name()).
		Str("guid", doc.GUID().String()).
		Msg("Document written")
	return nil
}

// TrySerializeDocumentTo is SerializeDocumentTo reporting failure as
// false. When w can seek, a failed attempt restores its position so the
// stream looks as if nothing had been written.
func TrySerializeDocumentTo(p registry.Provider, w io.Writer, doc types.Document) bool {
	if isNil(doc) || w == nil {
		return false
	}

	start := position(w)
	if m := firstSupporting(p, doc, nil); m != nil {
		err := serializeTo(m, w, doc)
		if err == nil {
			return true
		}
		logger := logging.GetLogger("documents")
		logger.Debug().
			Err(err).
			Str("module", m.Name()).
			Msg("Serialization attempt failed")
	}

	if start >= 0 {
		_ = rewind(w.(io.Seeker), start)
	}
	return false
}

func firstSupporting(p registry.Provider, doc types.Document, pred types.Predicate) types.BinaryModule {
	for _, m := range binaryModules(p, pred) {
		if supports(m, doc) {
			return m
		}
	}
	return nil
}

// DeserializeDocumentFrom decodes a document from r, which must also be
// an io.Seeker. Every binary module that accepts the stream is tried in
// registration order, rewinding r after each probe and each failed
// attempt. The first document returned wins. When no module succeeds
// and some returned errors, they are reported together as an
// ErrAggregate in attempt order.
func DeserializeDocumentFrom(p registry.Provider, r io.Reader) (types.Document, error) {
	doc, _, err := DeserializeDocumentWithModule(p, r)
	return doc, err
}

// DeserializeDocumentWithModule is DeserializeDocumentFrom also returning
// the module that produced the document.
func DeserializeDocumentWithModule(p registry.Provider, r io.Reader) (types.Document, types.BinaryModule, error) {
	if r == nil {
		return nil, nil, errors.New(errors.ErrNullInput, "the input is null")
	}
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, nil, errors.New(errors.ErrUnsupportedOperation, "the input should support `Read` and `Seek` access")
	}
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrUnsupportedOperation, "the input position cannot be read")
	}

	logger := logging.GetLogger("documents")
	var failures []error
	for _, m := range binaryModules(p, nil) {
		supported := supportsStream(m, rs)
		if err := rewind(rs, start); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrInternal, "failed to rewind the input")
		}
		if !supported {
			continue
		}

		doc, err := deserializeFrom(m, rs)
		if err == nil && !isNil(doc) {
			logger.Debug().
				Str("module", m.Name()).
				Str("guid", doc.GUID().String()).
				Msg("Document read")
			return doc, m, nil
		}
		if err != nil {
			logger.Debug().Err(err).Str("module", m.Name()).Msg("Deserialization attempt failed")
			failures = append(failures, err)
		}
		if err := rewind(rs, start); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrInternal, "failed to rewind the input")
		}
	}

	if agg := errors.Aggregate("multiple errors were returned", failures); agg != nil {
		return nil, nil, agg
	}
	return nil, nil, errors.New(errors.ErrUnsupported, "the input is not supported")
}

// TryDeserializeDocumentFrom is DeserializeDocumentFrom reporting failure as false.
func TryDeserializeDocumentFrom(p registry.Provider, r io.Reader) (types.Document, bool) {
	doc, err := DeserializeDocumentFrom(p, r)
	if err != nil {
		return nil, false
	}
	return doc, true
}
