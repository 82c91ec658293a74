package unreflect

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Descriptors and access objects are immutable after construction; the only
// shared mutable state behind the facade is the metadata cache and the
// invoker cache. These tests hammer both from many goroutines.

func TestConcurrentMetaBuilding(t *testing.T) {
	ctx := New()

	const goroutines = 32
	var wg sync.WaitGroup
	metas := make([]*classMeta, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cls, err := ctx.Reflect(Profile{})
			if assert.NoError(t, err) {
				metas[i] = cls.meta
			}
		}(i)
	}
	wg.Wait()

	// Whatever the race outcome, every caller observes one settled
	// descriptor set afterwards.
	settled, err := ctx.Reflect(Profile{})
	require.NoError(t, err)
	for _, m := range metas {
		require.NotNil(t, m)
		assert.Equal(t, settled.meta.typ, m.typ)
		assert.Len(t, m.fields, len(settled.meta.fields))
	}
}

func TestConcurrentInvocationBothStrategies(t *testing.T) {
	reflective, err := Reflect(Calc{})
	require.NoError(t, err)
	compiled, err := Unreflect(Calc{})
	require.NoError(t, err)

	const goroutines = 32
	var wg sync.WaitGroup

	for _, cls := range []*ClassAccess{reflective, compiled} {
		add, ok := cls.Method("Add")
		require.True(t, ok)
		bound := add.Bind(&Calc{})

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := bound.Invoke(i, i)
				assert.NoError(t, err)
				assert.Equal(t, 2*i, v)
			}(i)
		}
	}
	wg.Wait()
}
