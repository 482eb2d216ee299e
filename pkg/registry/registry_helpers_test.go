package registry

import "github.com/arthur-debert/modulify/pkg/types"

type greeter interface {
	types.Module
	Greet() string
}

type counter interface {
	types.Module
	Count() int
}

type undeclared interface {
	types.Module
	Undeclared()
}

type baseModule struct {
	name  string
	alias string
}

func (m *baseModule) Name() string  { return m.name }
func (m *baseModule) Alias() string { return m.alias }

type greeterModule struct{ baseModule }

func (m *greeterModule) Greet() string { return "hello from " + m.name }

type counterModule struct{ baseModule }

func (m *counterModule) Count() int { return len(m.name) }

type greeterCounterModule struct{ baseModule }

func (m *greeterCounterModule) Greet() string { return "hi" }
func (m *greeterCounterModule) Count() int    { return 2 }

type plainModule struct{ baseModule }

type undeclaredModule struct{ baseModule }

func (m *undeclaredModule) Undeclared() {}

func newGreeter(name string) *greeterModule {
	return &greeterModule{baseModule{name: name, alias: "g"}}
}

func newCounter(name string) *counterModule {
	return &counterModule{baseModule{name: name, alias: "c"}}
}

func newBoth(name string) *greeterCounterModule {
	return &greeterCounterModule{baseModule{name: name, alias: "gc"}}
}

func newPlain(name string) *plainModule {
	return &plainModule{baseModule{name: name}}
}

func newUndeclared(name string) *undeclaredModule {
	return &undeclaredModule{baseModule{name: name}}
}

func names(modules []types.Module) []string {
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		out = append(out, m.Name())
	}
	return out
}
