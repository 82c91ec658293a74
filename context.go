package unreflect

import (
	"fmt"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Konsultn-Engineering/unreflect/access"
	"github.com/Konsultn-Engineering/unreflect/accessor"
	"github.com/Konsultn-Engineering/unreflect/naming"
	"github.com/Konsultn-Engineering/unreflect/reflection"
)

func init() {
	// Wire the compiled-strategy promotion hook so that Unreflect on a
	// reflective method access produces its decorated counterpart.
	reflection.SetUpgrader(func(m access.MethodAccess, comp access.Compiler) access.MethodAccess {
		return accessor.Wrap(m, comp)
	})
}

// Context owns the per-type member-descriptor cache and the configuration
// applied when building class access objects. Contexts are safe for
// concurrent use once constructed.
type Context struct {
	// Configuration
	strategy naming.Strategy
	tagName  string
	compiler access.Compiler

	// Cache configuration
	cacheSize int
	onEvict   func(reflect.Type)

	metaCache *lru.Cache[reflect.Type, *classMeta]
}

// Option configures a Context.
type Option func(*Context)

// WithNamingStrategy sets the display-name strategy for members without an
// explicit tag override.
func WithNamingStrategy(strategy naming.Strategy) Option {
	return func(c *Context) { c.strategy = strategy }
}

// WithTagName sets the struct tag consulted for display-name overrides.
func WithTagName(tagName string) Option {
	return func(c *Context) { c.tagName = tagName }
}

// WithCacheSize sets the LRU capacity of the member-descriptor cache.
func WithCacheSize(size int) Option {
	return func(c *Context) { c.cacheSize = size }
}

// WithEvictionCallback sets a callback invoked when a type's descriptors
// are evicted from the cache.
func WithEvictionCallback(onEvict func(reflect.Type)) Option {
	return func(c *Context) { c.onEvict = onEvict }
}

// WithCompiler replaces the invoker compiler used by the compiled strategy.
// Mainly useful for instrumenting or stubbing compilation in tests.
func WithCompiler(compiler access.Compiler) Option {
	return func(c *Context) { c.compiler = compiler }
}

// New creates a Context with the given configuration.
func New(options ...Option) *Context {
	c := &Context{
		strategy:  naming.Default(),
		tagName:   "name",
		compiler:  accessor.DefaultCompiler(),
		cacheSize: 256,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.cacheSize <= 0 {
		c.cacheSize = 256
	}

	c.metaCache, _ = lru.NewWithEvict[reflect.Type, *classMeta](c.cacheSize, func(t reflect.Type, _ *classMeta) {
		if c.onEvict != nil {
			c.onEvict(t)
		}
	})
	return c
}

// meta returns the cached member-descriptor set for t, building it on first
// use. Pointer types share their element type's entry.
func (c *Context) meta(t reflect.Type) (*classMeta, error) {
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if m, ok := c.metaCache.Get(t); ok {
		return m, nil
	}
	m, err := c.buildMeta(t)
	if err != nil {
		return nil, err
	}
	c.metaCache.Add(t, m)
	return m, nil
}

// Reflect returns a reflective class access for v, which may be a value, a
// reflect.Type or a Type.
func (c *Context) Reflect(v any) (*ClassAccess, error) {
	return c.classAccess(v, false)
}

// Unreflect returns a compiled class access for v: every method access it
// exposes dispatches through a cached specialized invoker, compiled on
// first invocation. Fields and the constructor delegate to the reflective
// implementation unchanged.
func (c *Context) Unreflect(v any) (*ClassAccess, error) {
	return c.classAccess(v, true)
}

func (c *Context) classAccess(v any, compiled bool) (*ClassAccess, error) {
	t := TypeOf(v)
	if !t.IsValid() {
		return nil, fmt.Errorf("unreflect: cannot access nil")
	}
	meta, err := c.meta(t.Raw())
	if err != nil {
		return nil, err
	}
	return newClassAccess(c, meta, compiled, nil), nil
}

// defaultContext backs the package-level entry points.
var defaultContext = New()

// Reflect returns a reflective class access for v using the default
// context.
func Reflect(v any) (*ClassAccess, error) {
	return defaultContext.Reflect(v)
}

// Unreflect returns a compiled class access for v using the default
// context.
func Unreflect(v any) (*ClassAccess, error) {
	return defaultContext.Unreflect(v)
}
