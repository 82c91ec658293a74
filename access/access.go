package access

import (
	"reflect"
)

// Capability contract shared by both access strategies. The reflective and
// compiled implementations of these interfaces must produce identical
// observable results for identical inputs; strategies differ only in
// dispatch cost.

// MemberAccess is the common surface of every member handle.
type MemberAccess interface {
	// Name returns the declared Go name of the member.
	Name() string

	// DisplayName returns the human-readable name of the member: an
	// explicit tag override when present, otherwise the configured naming
	// strategy applied to the declared name.
	DisplayName() string

	// Owner returns the declaring type.
	Owner() reflect.Type

	// Exported reports declared visibility. Unexported fields remain
	// readable and writable through the visibility override.
	Exported() bool
}

// FieldAccess reads and writes a single field of the declaring type.
type FieldAccess interface {
	MemberAccess

	// Type returns the field's type.
	Type() reflect.Type

	// Bind returns a copy of this access bound to the given instance.
	// The receiver is not modified.
	Bind(target any) FieldAccess

	// Get returns the field value from the bound instance. Fails with
	// ErrAccess when no instance is bound.
	Get() (any, error)

	// Set writes the field on the bound instance, converting the value to
	// the field type when necessary. Fails with ErrAccess when no instance
	// is bound or the bound instance is not addressable (non-pointer), and
	// with ErrArgumentMismatch when the value cannot be converted.
	Set(value any) error
}

// MethodAccess invokes a single method of the declaring type.
type MethodAccess interface {
	MemberAccess

	// ParamTypes returns the parameter types, receiver excluded.
	ParamTypes() []reflect.Type

	// ReturnTypes returns the result types, trailing error included.
	ReturnTypes() []reflect.Type

	// Signature returns the canonical signature of the method.
	Signature() Signature

	// Bind returns a copy of this access bound to the given instance.
	Bind(target any) MethodAccess

	// Target returns the bound instance, or nil when unbound.
	Target() any

	// Invoke calls the method on the bound instance. The result is nil for
	// methods with no results, the single value for one result, and []any
	// for multiple results; a trailing error result is split off and, when
	// non-nil, reported as *InvocationError. Panics raised by the callee
	// are recovered and reported as *InvocationError as well.
	Invoke(args ...any) (any, error)

	// Reflect returns the reflective view of this method access.
	Reflect() MethodAccess

	// Unreflect returns the compiled view of this method access.
	Unreflect() MethodAccess
}

// ConstructorAccess produces initialized instances of the declaring type.
// Construction is positional: argument i initializes declared field i.
type ConstructorAccess interface {
	// Owner returns the constructed type.
	Owner() reflect.Type

	// ParamTypes returns the declared field types, in declaration order.
	ParamTypes() []reflect.Type

	// Construct allocates an instance and assigns the given values to the
	// declared fields in order. Fewer arguments than fields leaves the
	// remaining fields zero; more fails with ErrArgumentMismatch. The
	// returned instance is a pointer to the new value.
	Construct(args ...any) (any, error)
}

// =========================================================================
// Member descriptors
// =========================================================================

// Member descriptors are built once per type by the facade, cached, and
// shared read-only by every access object for that member. They must not be
// mutated after construction.

// FieldMeta describes one declared field.
type FieldMeta struct {
	Owner       reflect.Type
	Field       reflect.StructField
	Name        string
	DisplayName string
	Offset      uintptr
	Exported    bool
}

// MethodMeta describes one method from the pointer method set of the owner.
type MethodMeta struct {
	Owner       reflect.Type
	Method      reflect.Method
	Name        string
	DisplayName string
	Params      []reflect.Type
	Returns     []reflect.Type
	Variadic    bool

	// Compiler is used when this method access is promoted to the compiled
	// strategy, carrying the owning context's configuration. Nil selects
	// the default compiler.
	Compiler Compiler
}

// Signature returns the canonical signature of the described method.
func (m *MethodMeta) Signature() Signature {
	return Signature{
		Owner:    m.Owner,
		Name:     m.Name,
		Params:   m.Params,
		Returns:  m.Returns,
		Variadic: m.Variadic,
	}
}

// CtorMeta describes the positional constructor of a struct type: its
// parameter list is the declared field list.
type CtorMeta struct {
	Owner  reflect.Type
	Fields []*FieldMeta
	Params []reflect.Type
}
