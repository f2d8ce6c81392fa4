package resolver

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Has("celsius"))

	r.Register("celsius", func(raw string) (any, error) {
		return strconv.ParseFloat(raw, 64)
	})

	require.True(t, r.Has("celsius"))

	v, err := r.Resolve("celsius", "21.5")
	require.NoError(t, err)
	assert.InDelta(t, 21.5, v, 1e-9)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register("k", func(string) (any, error) { return "first", nil })
	r.Register("k", func(string) (any, error) { return "second", nil })

	v, err := r.Resolve("k", "")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestRegistry_RegisterNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewRegistry().Register("x", nil) })
}

func TestRegistry_ZeroValue(t *testing.T) {
	var r Registry

	assert.False(t, r.Has("k"))
	assert.Empty(t, r.TypeIDs())

	_, err := r.Resolve("k", "")
	require.ErrorIs(t, err, ErrUnresolvableType)

	require.NotPanics(t, func() {
		r.Register("k", func(raw string) (any, error) { return raw + "!", nil })
	})

	v, err := r.Resolve("k", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", v)
	assert.Equal(t, []TypeID{"k"}, r.TypeIDs())
}

func TestRegistry_UnresolvableType(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("missing", "value")
	require.Error(t, err)

	var ute *UnresolvableTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, TypeID("missing"), ute.Type)
	assert.ErrorIs(t, err, ErrUnresolvableType)
	assert.NotErrorIs(t, err, ErrConversion)
}

func TestRegistry_ConversionError(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.Resolve(Int, "twelve")
	require.Error(t, err)

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Int, ce.Type)
	assert.Equal(t, "twelve", ce.Raw)
	assert.ErrorIs(t, err, ErrConversion)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `"twelve"`)
}

func TestRegistry_ResolverErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	r.Register("x", func(string) (any, error) { return nil, boom })

	_, err := r.Resolve("x", "raw")
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func(string) (any, error) { return 1, nil })

	c := r.Clone()
	c.Register("b", func(string) (any, error) { return 2, nil })

	assert.True(t, c.Has("a"))
	assert.True(t, c.Has("b"))
	assert.False(t, r.Has("b"))
}

func TestRegistry_TypeIDsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", func(string) (any, error) { return nil, nil })
	r.Register("alpha", func(string) (any, error) { return nil, nil })

	assert.Equal(t, []TypeID{"alpha", "zeta"}, r.TypeIDs())
}

func TestRegistry_ConcurrentRegisterAndResolve(t *testing.T) {
	r := NewDefaultRegistry()

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			r.Register(TypeID("custom"+strconv.Itoa(i)), func(raw string) (any, error) { return raw, nil })
		}()

		go func() {
			defer wg.Done()

			v, err := r.Resolve(Int, "42")
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}

	wg.Wait()

	for i := range 8 {
		assert.True(t, r.Has(TypeID("custom"+strconv.Itoa(i))))
	}
}
