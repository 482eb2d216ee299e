package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factory func() string

func TestRegister(t *testing.T) {
	cat := New[factory]("codec")
	assert.Equal(t, "codec", cat.Kind())

	t.Run("register valid item", func(t *testing.T) {
		err := cat.Register("json", func() string { return "json" })
		require.NoError(t, err)
		assert.Equal(t, []string{"json"}, cat.List())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := cat.Register("", func() string { return "" })
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		assert.Contains(t, err.Error(), "codec name cannot be empty")
	})

	t.Run("register duplicate names the item", func(t *testing.T) {
		err := cat.Register("json", func() string { return "other" })
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
		assert.Contains(t, err.Error(), `codec "json" is already registered`)
		assert.Equal(t, "json", errors.GetErrorDetails(err)["name"])

		got, err := cat.Get("json")
		require.NoError(t, err)
		assert.Equal(t, "json", got(), "the first registration is kept")
	})
}

func TestGet(t *testing.T) {
	cat := New[factory]("codec")
	require.NoError(t, cat.Register("yaml", func() string { return "yaml" }))
	require.NoError(t, cat.Register("toml", func() string { return "toml" }))

	got, err := cat.Get("yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", got())

	_, err = cat.Get("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
	assert.Contains(t, err.Error(), `unknown codec "xml"`)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "codec", details["kind"])
	assert.Equal(t, []string{"toml", "yaml"}, details["available"])
}

func TestListIsSorted(t *testing.T) {
	cat := New[int]("codec")
	assert.Empty(t, cat.List())

	for i, name := range []string{"xml", "json", "toml"} {
		require.NoError(t, cat.Register(name, i))
	}
	assert.Equal(t, []string{"json", "toml", "xml"}, cat.List())
}

func TestConcurrency(t *testing.T) {
	cat := New[int]("codec")
	const goroutines = 10
	const itemsPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_item%d", id, i)
				_ = cat.Register(name, i)
				_, _ = cat.Get(name)
			}
		}(g)
	}
	wg.Wait()

	assert.Len(t, cat.List(), goroutines*itemsPerGoroutine)
}
