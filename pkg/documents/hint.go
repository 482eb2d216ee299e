package documents

import (
	"maps"
	"strings"

	"github.com/arthur-debert/modulify/pkg/types"
)

// Hint returns the module hint stored in obj, or "" when absent or blank.
func Hint(obj types.Object) string {
	if obj == nil {
		return ""
	}
	value, ok := obj[types.HintKey].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return ""
	}
	return value
}

// withHint returns a copy of obj carrying name as its hint. Blank names
// leave the object untouched.
func withHint(obj types.Object, name string) types.Object {
	if strings.TrimSpace(name) == "" {
		return obj
	}
	out := maps.Clone(obj)
	if out == nil {
		out = types.Object{}
	}
	out[types.HintKey] = name
	return out
}

// hintRank sorts modules named like the hint ahead of the rest.
func hintRank(m types.Module, hint string) int {
	if strings.EqualFold(m.Name(), hint) {
		return 0
	}
	return 1
}
