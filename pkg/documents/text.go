package documents

import (
	"sort"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
)

// SerializeDocument converts doc to its object form using the first text
// module that supports it and produces an object. The result carries the
// module's name under the hint key.
func SerializeDocument(p registry.Provider, doc types.Document) (types.Object, error) {
	if isNil(doc) {
		return nil, errors.New(errors.ErrNullInput, "the input is null")
	}

	logger := logging.GetLogger("documents")
	for _, m := range textModules(p) {
		if !m.Supports(doc) {
			continue
		}
		obj, err := m.SerializeObject(doc)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrModuleFailure, "module %q failed to serialize", m.Name()).
				WithDetail("module", m.Name())
		}
		if obj != nil {
			logger.Debug().
				Str("module", m.Name()).
				Str("guid", doc.GUID().String()).
				Msg("Document serialized")
			return withHint(obj, m.Name()), nil
		}
	}

	return nil, errors.New(errors.ErrUnsupported, "the input is not supported")
}

// TrySerializeDocument is SerializeDocument reporting failure as false.
func TrySerializeDocument(p registry.Provider, doc types.Document) (types.Object, bool) {
	obj, err := SerializeDocument(p, doc)
	if err != nil {
		return nil, false
	}
	return obj, true
}

// DeserializeDocument builds a document from obj. Text modules accepting
// the object are tried in registration order, except that a module whose
// name matches the object's hint (case-insensitively) goes first.
func DeserializeDocument(p registry.Provider, obj types.Object) (types.Document, error) {
	if obj == nil {
		return nil, errors.New(errors.ErrNullInput, "the input is null")
	}

	hint := Hint(obj)
	var candidates []types.TextModule
	for _, m := range textModules(p) {
		if m.SupportsObject(obj) {
			candidates = append(candidates, m)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return hintRank(candidates[i], hint) < hintRank(candidates[j], hint)
	})

	logger := logging.GetLogger("documents")
	for _, m := range candidates {
		doc, err := m.DeserializeObject(obj)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrModuleFailure, "module %q failed to deserialize", m.Name()).
				WithDetail("module", m.Name())
		}
		if !isNil(doc) {
			logger.Debug().
				Str("module", m.Name()).
				Str("hint", hint).
				Msg("Document deserialized")
			return doc, nil
		}
	}

	return nil, errors.New(errors.ErrUnsupported, "the input is not supported or not a document")
}

// TryDeserializeDocument is DeserializeDocument reporting failure as false.
func TryDeserializeDocument(p registry.Provider, obj types.Object) (types.Document, bool) {
	doc, err := DeserializeDocument(p, obj)
	if err != nil {
		return nil, false
	}
	return doc, true
}
