// Package accessor is the compiled access strategy. It decorates reflective
// method access objects and replaces only the invocation hot path with a
// specialized invoker, compiled once per method signature and cached for
// the lifetime of the process.
package accessor

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// invokerKey identifies a compiled invoker by declaring type identity and
// method name. reflect.Type values are canonical and comparable, so two
// identically named types from different packages map to distinct entries;
// the method name alone disambiguates within a type since Go forbids
// overloading.
type invokerKey struct {
	owner reflect.Type
	name  string
}

// invokerCache is the process-wide trampoline cache. Readers never observe
// a partially published entry: invokers are stored only after compilation
// fully succeeds. Concurrent first-use compilations of the same signature
// may race; losers are discarded, which is wasteful but harmless since an
// invoker is a pure function of its signature.
type invokerCache struct {
	mu   sync.RWMutex
	data map[invokerKey]access.Invoker
}

var cache = &invokerCache{data: make(map[invokerKey]access.Invoker, 64)}

func (c *invokerCache) get(key invokerKey) (access.Invoker, bool) {
	c.mu.RLock()
	inv, ok := c.data[key]
	c.mu.RUnlock()
	return inv, ok
}

// getOrStore publishes inv under key unless another compilation won the
// race, in which case the already published invoker is returned.
func (c *invokerCache) getOrStore(key invokerKey, inv access.Invoker) access.Invoker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.data[key]; ok {
		return existing
	}
	c.data[key] = inv
	return inv
}

func (c *invokerCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// CachedInvokers reports how many compiled invokers the process holds.
func CachedInvokers() int {
	return cache.len()
}

// invokerFor resolves the invoker for sig, compiling it on first use.
// Compilation failures are surfaced wrapping ErrCompilation and leave no
// entry behind, so a later attempt starts clean.
func invokerFor(comp access.Compiler, sig access.Signature) (access.Invoker, error) {
	key := invokerKey{owner: sig.Owner, name: sig.Name}
	if inv, ok := cache.get(key); ok {
		return inv, nil
	}

	inv, err := comp.Compile(sig)
	if err != nil {
		if !errors.Is(err, access.ErrCompilation) {
			err = fmt.Errorf("%w: %s: %v", access.ErrCompilation, sig, err)
		}
		return nil, err
	}
	return cache.getOrStore(key, inv), nil
}
