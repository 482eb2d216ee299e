package registry

import (
	"reflect"
	"sync"
	"testing"

	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() (*ModuleProvider, map[string]types.Module) {
	mods := map[string]types.Module{
		"g1":    newGreeter("g1"),
		"c1":    newCounter("c1"),
		"both":  newBoth("both"),
		"plain": newPlain("plain"),
		"g2":    newGreeter("g2"),
		"u1":    newUndeclared("u1"),
	}
	c := NewCollection()
	Declare[greeter](c)
	Declare[counter](c)
	for _, name := range []string{"g1", "c1", "both", "plain", "g2", "u1"} {
		c.Add(mods[name])
	}
	return c.Build(), mods
}

func TestProvider_FindAllByCapability(t *testing.T) {
	p, _ := buildSample()

	tests := []struct {
		name       string
		capability reflect.Type
		expected   []string
	}{
		{"greeters in insertion order", CapabilityOf[greeter](), []string{"g1", "both", "g2"}},
		{"counters in insertion order", CapabilityOf[counter](), []string{"c1", "both"}},
		{"undeclared capability falls back to residual", CapabilityOf[undeclared](), []string{"u1"}},
		{"module capability matches residual only", CapabilityOf[types.Module](), []string{"plain", "u1"}},
		{"unknown capability is empty", reflect.TypeOf((*interface{ Nope() })(nil)).Elem(), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(p.FindAll(tt.capability)))
		})
	}
}

func TestProvider_ModuleInSeveralBuckets(t *testing.T) {
	p, mods := buildSample()

	assert.Contains(t, p.FindAll(CapabilityOf[greeter]()), mods["both"])
	assert.Contains(t, p.FindAll(CapabilityOf[counter]()), mods["both"])
	assert.ElementsMatch(t,
		[]reflect.Type{CapabilityOf[greeter](), CapabilityOf[counter]()},
		p.CapabilitiesOf(mods["both"]))
	assert.Equal(t, []reflect.Type{CapabilityOf[greeter](), CapabilityOf[counter]()}, p.Capabilities())
}

func TestProvider_FindReturnsLast(t *testing.T) {
	p, mods := buildSample()

	got, ok := p.Find(CapabilityOf[greeter]())
	require.True(t, ok)
	assert.Same(t, mods["g2"], got)

	got, ok = p.Find(CapabilityOf[counter]())
	require.True(t, ok)
	assert.Same(t, mods["both"], got)

	_, ok = p.Find(reflect.TypeOf((*interface{ Nope() })(nil)).Elem())
	assert.False(t, ok)

	_, ok = p.Find(nil)
	assert.False(t, ok)
}

func TestProvider_PredicateQueries(t *testing.T) {
	p, mods := buildSample()
	notG2 := func(m types.Module) bool { return m.Name() != "g2" }

	assert.Equal(t, []string{"g1", "both"}, names(p.FindAllWhere(CapabilityOf[greeter](), notG2)))

	got, ok := p.FindWhere(CapabilityOf[greeter](), notG2)
	require.True(t, ok)
	assert.Same(t, mods["both"], got)

	got, ok = p.FindWhere(CapabilityOf[undeclared](), types.ByName("u1"))
	require.True(t, ok)
	assert.Same(t, mods["u1"], got)

	_, ok = p.FindWhere(CapabilityOf[greeter](), types.ByName("nobody"))
	assert.False(t, ok)
}

func TestProvider_DuplicateRegistrationsAreKept(t *testing.T) {
	g := newGreeter("dup")
	u := newUndeclared("u")
	p := Declare[greeter](NewCollection()).AddAll(g, g, u, u).Build()

	assert.Equal(t, []types.Module{g, g}, p.FindAll(CapabilityOf[greeter]()))
	assert.Equal(t, []types.Module{u, u}, p.FindAll(CapabilityOf[undeclared]()))
}

func TestProvider_SnapshotIsolation(t *testing.T) {
	c := Declare[greeter](NewCollection()).Add(newGreeter("before"))
	p := c.Build()

	c.Add(newGreeter("after"))
	Declare[counter](c).Add(newCounter("counter"))

	assert.Equal(t, []string{"before"}, names(p.FindAll(CapabilityOf[greeter]())))
	assert.Empty(t, p.FindAll(CapabilityOf[counter]()))
	assert.Equal(t, 1, p.Len())

	assert.Equal(t, []string{"before", "after"}, names(c.Build().FindAll(CapabilityOf[greeter]())))
}

func TestProvider_ResultsCannotMutateIndex(t *testing.T) {
	p, _ := buildSample()

	got := p.FindAll(CapabilityOf[greeter]())
	got[0] = newCounter("intruder")
	_ = append(got[:1], newCounter("appended"))

	assert.Equal(t, []string{"g1", "both", "g2"}, names(p.FindAll(CapabilityOf[greeter]())))

	bt := p.BaseTypes()
	bt.Add(CapabilityOf[undeclared]())
	assert.False(t, p.BaseTypes().Contains(CapabilityOf[undeclared]()))
}

func TestProvider_ConcurrentReaders(t *testing.T) {
	p, _ := buildSample()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Len(t, p.FindAll(CapabilityOf[greeter]()), 3)
				assert.Len(t, p.FindAll(CapabilityOf[undeclared]()), 1)
			}
		}()
	}
	wg.Wait()
}

func TestNull(t *testing.T) {
	assert.Empty(t, Null.FindAll(CapabilityOf[greeter]()))
	assert.Empty(t, Null.FindAll(CapabilityOf[types.Module]()))
	_, ok := Null.Find(CapabilityOf[types.Module]())
	assert.False(t, ok)
	assert.Equal(t, 0, Null.Len())
}

func TestGenericLookups(t *testing.T) {
	p, mods := buildSample()

	greeters := FindAllAs[greeter](p, nil)
	require.Len(t, greeters, 3)
	assert.Equal(t, "hello from g1", greeters[0].Greet())

	last, ok := FindAs[counter](p, nil)
	require.True(t, ok)
	assert.Equal(t, 2, last.Count())

	_, ok = FindAs[counter](p, types.ByName("nobody"))
	assert.False(t, ok)

	g, ok := As[greeter](mods["g1"])
	require.True(t, ok)
	assert.Equal(t, "g1", g.Name())

	_, ok = As[greeter](mods["plain"])
	assert.False(t, ok)
}
