package unreflect

import (
	"github.com/Konsultn-Engineering/unreflect/access"
	"github.com/Konsultn-Engineering/unreflect/accessor"
	"github.com/Konsultn-Engineering/unreflect/reflection"
)

// ClassAccess exposes every declared member of one type under a single
// strategy. All method access objects it returns share that strategy;
// strategies are never mixed within one ClassAccess. The slices returned by
// Fields and Methods are shared and must be treated as read-only.
type ClassAccess struct {
	ctx      *Context
	meta     *classMeta
	typ      Type
	compiled bool
	target   any

	fields  []access.FieldAccess
	methods []access.MethodAccess
	ctor    access.ConstructorAccess
}

func newClassAccess(ctx *Context, meta *classMeta, compiled bool, target any) *ClassAccess {
	c := &ClassAccess{
		ctx:      ctx,
		meta:     meta,
		typ:      Type{rt: meta.typ},
		compiled: compiled,
		target:   target,
	}

	c.fields = make([]access.FieldAccess, len(meta.fields))
	for i, fm := range meta.fields {
		f := access.FieldAccess(reflection.NewField(fm))
		if target != nil {
			f = f.Bind(target)
		}
		c.fields[i] = f
	}

	c.methods = make([]access.MethodAccess, len(meta.methods))
	for i, mm := range meta.methods {
		m := access.MethodAccess(reflection.NewMethod(mm))
		if compiled {
			m = accessor.Wrap(m, ctx.compiler)
		}
		if target != nil {
			m = m.Bind(target)
		}
		c.methods[i] = m
	}

	c.ctor = reflection.NewConstructor(meta.ctor)
	return c
}

// Type returns the descriptor of the accessed type.
func (c *ClassAccess) Type() Type { return c.typ }

// Name returns the simple Go name of the accessed type.
func (c *ClassAccess) Name() string { return c.meta.name }

// DisplayName returns the type's display name: its naming.Named override
// when implemented, otherwise the naming strategy applied to its Go name.
func (c *ClassAccess) DisplayName() string { return c.meta.display }

// PluralName returns the pluralized display name, for collection-level
// naming.
func (c *ClassAccess) PluralName() string { return c.meta.plural }

// Compiled reports which strategy this access applies to its methods.
func (c *ClassAccess) Compiled() bool { return c.compiled }

// Fields returns access objects for every declared field, unexported
// fields included, in declaration order.
func (c *ClassAccess) Fields() []access.FieldAccess { return c.fields }

// Field looks a field up by declared name, falling back to display name.
func (c *ClassAccess) Field(name string) (access.FieldAccess, bool) {
	fm, ok := c.meta.fieldMap[name]
	if !ok {
		if fm, ok = c.meta.displayMap[name]; !ok {
			return nil, false
		}
	}
	for _, f := range c.fields {
		if f.Name() == fm.Name {
			return f, true
		}
	}
	return nil, false
}

// Methods returns access objects for every method in the pointer method
// set, in reflect enumeration order.
func (c *ClassAccess) Methods() []access.MethodAccess { return c.methods }

// Method looks a method up by declared name.
func (c *ClassAccess) Method(name string) (access.MethodAccess, bool) {
	mm, ok := c.meta.methodMap[name]
	if !ok {
		return nil, false
	}
	for _, m := range c.methods {
		if m.Name() == mm.Name {
			return m, true
		}
	}
	return nil, false
}

// Constructor returns the positional constructor access for the type.
func (c *ClassAccess) Constructor() access.ConstructorAccess { return c.ctor }

// Allocate produces a bare zero-valued instance, bypassing all
// initialization. See Type.Allocate for the hazards.
func (c *ClassAccess) Allocate() (any, error) { return c.typ.Allocate() }

// Create constructs an instance with positional field values.
func (c *ClassAccess) Create(args ...any) (any, error) {
	return c.ctor.Construct(args...)
}

// Bind returns a copy of this access with every member bound to instance.
func (c *ClassAccess) Bind(instance any) *ClassAccess {
	return newClassAccess(c.ctx, c.meta, c.compiled, instance)
}

// Reflect returns the reflective view of this class access.
func (c *ClassAccess) Reflect() *ClassAccess {
	if !c.compiled {
		return c
	}
	return newClassAccess(c.ctx, c.meta, false, c.target)
}

// Unreflect returns the compiled view of this class access.
func (c *ClassAccess) Unreflect() *ClassAccess {
	if c.compiled {
		return c
	}
	return newClassAccess(c.ctx, c.meta, true, c.target)
}
