package action

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type beforePoint struct{}
type afterPoint struct{}
type menuScope struct{}

type named struct {
	Base
	key  Key
	name string
}

func (p *named) Key() Key { return p.key }

func newNamed(k Key, name string, weight int) *named {
	p := &named{key: k, name: name}
	p.SetWeight(weight)
	return p
}

func names(r *Registry, k Key, ref string) []string {
	var out []string
	r.Dispatch(k, ref, func(a Action) { out = append(out, a.(*named).name) })
	return out
}

func TestDispatchWeightThenRegistrationOrder(t *testing.T) {
	k := KeyOf[beforePoint]()
	r := NewRegistry()
	r.Add(newNamed(k, "w5", 5))
	r.Add(newNamed(k, "w1a", 1))
	r.Add(newNamed(k, "neg", -3))
	r.Add(newNamed(k, "w1b", 1))
	r.Add(newNamed(k, "w0", 0))
	r.Freeze()

	want := []string{"neg", "w0", "w1a", "w1b", "w5"}
	assert.Equal(t, want, names(r, k, ""))
	// repeated dispatch is stable
	assert.Equal(t, want, names(r, k, ""))
	assert.Equal(t, 5, r.Len(k))
	assert.Equal(t, 5, r.Total())
}

func TestDispatchKeysAreIndependent(t *testing.T) {
	before := KeyOf[beforePoint]()
	scoped := before.Scoped(KeyOf[menuScope]().Point)
	r := NewRegistry()
	r.Add(newNamed(before, "plain", 0))
	r.Add(newNamed(scoped, "menu", 0))
	r.Add(newNamed(KeyOf[afterPoint](), "after", 0))

	assert.Equal(t, []string{"plain"}, names(r, before, ""))
	assert.Equal(t, []string{"menu"}, names(r, scoped, ""))
	assert.Empty(t, names(r, Key{}, ""))
	assert.Equal(t, "beforePoint/menuScope", scoped.String())
}

func TestRefererFilterSkipsSilently(t *testing.T) {
	k := KeyOf[beforePoint]()
	r := NewRegistry()
	filtered := newNamed(k, "admin", 0)
	filtered.SetReferer("admin-menu-test")
	r.Add(filtered)
	r.Add(newNamed(k, "any", 1))

	assert.Equal(t, []string{"any"}, names(r, k, "main-menu"))
	assert.Equal(t, []string{"admin", "any"}, names(r, k, "admin-menu-test"))
	assert.Equal(t, []string{"any"}, names(r, k, ""))
}

func TestAddAfterFreezePanics(t *testing.T) {
	k := KeyOf[beforePoint]()
	r := NewRegistry()
	r.Add(newNamed(k, "ok", 0))
	r.Freeze()
	require.True(t, r.Frozen())

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrFrozen))
		assert.Equal(t, 1, r.Len(k))
	}()
	r.Add(newNamed(k, "late", 0))
}

func TestNilRegistryDispatchesNothing(t *testing.T) {
	var r *Registry
	n := r.Dispatch(KeyOf[beforePoint](), "", func(Action) { t.Fatal("unexpected call") })
	assert.Zero(t, n)
	assert.Zero(t, r.Len(KeyOf[beforePoint]()))
}

func TestConcurrentDispatch(t *testing.T) {
	k := KeyOf[beforePoint]()
	r := NewRegistry()
	for i := 0; i < 10; i++ {
		r.Add(newNamed(k, "p", i%3))
	}
	r.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 10, r.Dispatch(k, "", func(Action) {}))
		}()
	}
	wg.Wait()
}
