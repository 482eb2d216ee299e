package documents

import (
	"github.com/arthur-debert/modulify/pkg/registry"
	"github.com/arthur-debert/modulify/pkg/types"
)

// Capability is the marker every document module is filed under.
var Capability = registry.CapabilityOf[types.DocumentModule]()

// AddText registers a text module. With forceBinary a ForcedBinary
// wrapper is registered right before it, so the module also takes part
// in stream dispatch as JSON.
func AddText(c *registry.Collection, m types.TextModule, forceBinary bool) *registry.Collection {
	c.BaseTypes().Add(Capability)
	if forceBinary {
		AddBinary(c, ForceBinary(m))
	}
	return c.Add(m)
}

// AddBinary registers a binary module.
func AddBinary(c *registry.Collection, m types.BinaryModule) *registry.Collection {
	c.BaseTypes().Add(Capability)
	return c.Add(m)
}

// Modules returns every registered document module, text and binary alike.
func Modules(p registry.Provider) []types.DocumentModule {
	return registry.FindAllAs[types.DocumentModule](orNull(p), nil)
}

func textModules(p registry.Provider) []types.TextModule {
	var out []types.TextModule
	for _, m := range orNull(p).FindAll(Capability) {
		if tm, ok := m.(types.TextModule); ok {
			out = append(out, tm)
		}
	}
	return out
}

func binaryModules(p registry.Provider, pred types.Predicate) []types.BinaryModule {
	var out []types.BinaryModule
	for _, m := range orNull(p).FindAllWhere(Capability, pred) {
		if bm, ok := m.(types.BinaryModule); ok {
			out = append(out, bm)
		}
	}
	return out
}

func orNull(p registry.Provider) registry.Provider {
	if p == nil {
		return registry.Null
	}
	return p
}
