package unreflect

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// Type is a canonical, comparable descriptor of a Go type. Two Type values
// are equal exactly when they describe the same type, regardless of where
// they were obtained, because the runtime canonicalizes reflect.Type
// values. Type is immutable, freely shareable, and usable as a map key.
//
// The zero Type describes no type; TypeOf(nil) returns it.
type Type struct {
	rt reflect.Type
}

// TypeOf normalizes any of the supported input shapes into a descriptor:
// an existing Type, a reflect.Type, or a plain value whose runtime type is
// used.
func TypeOf(v any) Type {
	switch t := v.(type) {
	case nil:
		return Type{}
	case Type:
		return t
	case reflect.Type:
		return Type{rt: t}
	default:
		return Type{rt: reflect.TypeOf(v)}
	}
}

// TypeFor returns the descriptor for a type expression, preserving
// composite type information that a plain value would not carry, e.g.
// TypeFor[map[string][]int]().
func TypeFor[T any]() Type {
	return Type{rt: reflect.TypeFor[T]()}
}

// IsValid reports whether this descriptor describes a type at all.
func (t Type) IsValid() bool { return t.rt != nil }

// Raw returns the underlying reflect.Type, nil for the zero Type.
func (t Type) Raw() reflect.Type { return t.rt }

// Kind returns the underlying kind, reflect.Invalid for the zero Type.
func (t Type) Kind() reflect.Kind {
	if t.rt == nil {
		return reflect.Invalid
	}
	return t.rt.Kind()
}

// Name returns the qualified name of the type, e.g. "time.Time". Unnamed
// types render in reflect syntax, e.g. "map[string][]int".
func (t Type) Name() string {
	if t.rt == nil {
		return "<nil>"
	}
	if pkg := t.rt.PkgPath(); pkg != "" {
		return pkg + "." + t.rt.Name()
	}
	return t.rt.String()
}

// String renders the simple (unqualified) name; array and slice types
// render as "Elem[]".
func (t Type) String() string {
	if t.rt == nil {
		return "<nil>"
	}
	if comp, ok := t.ComponentType(); ok {
		return comp.String() + "[]"
	}
	if name := t.rt.Name(); name != "" {
		return name
	}
	return t.rt.String()
}

// =========================================================================
// Hierarchy navigation
// =========================================================================

// SuperType returns the type one level up the embedding chain: the type of
// the first embedded field, pointer-unwrapped. Absent for types without
// embedded fields, which are the roots of their hierarchies.
func (t Type) SuperType() (Type, bool) {
	if t.rt == nil || t.rt.Kind() != reflect.Struct {
		return Type{}, false
	}
	for i := 0; i < t.rt.NumField(); i++ {
		if f := t.rt.Field(i); f.Anonymous {
			return Type{rt: unwrapPtr(f.Type)}, true
		}
	}
	return Type{}, false
}

// SuperTypeAt walks the ancestor chain index steps; index 0 is equivalent
// to SuperType. Absent when index exceeds the chain depth.
func (t Type) SuperTypeAt(index int) (Type, bool) {
	if index < 0 {
		return Type{}, false
	}
	for s := range t.SuperTypes() {
		if index == 0 {
			return s, true
		}
		index--
	}
	return Type{}, false
}

// SuperTypes returns the lazy chain of ancestors, nearest first. The chain
// is finite (Go forbids embedding cycles) and restartable.
func (t Type) SuperTypes() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		cur := t
		for {
			s, ok := cur.SuperType()
			if !ok {
				return
			}
			if !yield(s) {
				return
			}
			cur = s
		}
	}
}

// SubTypes returns the type itself plus its transitive embedded closure:
// every embedded struct and embedded interface, breadth-first from this
// type, declaration order within each level, deduplicated. The order is
// fixed and stable for a given input.
func (t Type) SubTypes() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		if t.rt == nil {
			return
		}
		seen := make(map[reflect.Type]bool, 8)
		queue := []reflect.Type{t.rt}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if seen[cur] {
				continue
			}
			seen[cur] = true

			if !yield(Type{rt: cur}) {
				return
			}
			if cur.Kind() != reflect.Struct {
				continue
			}
			for i := 0; i < cur.NumField(); i++ {
				if f := cur.Field(i); f.Anonymous {
					queue = append(queue, unwrapPtr(f.Type))
				}
			}
		}
	}
}

// =========================================================================
// Generic slots
// =========================================================================

// GenericTypes returns the type's generic argument list in declared order:
// [key, element] for maps, [element] for slices, arrays and channels.
// Instantiations of user generic types (Pair[int, string]) carry no
// recoverable argument types at runtime and yield an empty sequence, as do
// non-parameterized types; emptiness is never an error. Whether an empty
// result means "not parameterized" or "arguments unavailable" is
// deliberately not distinguished.
func (t Type) GenericTypes() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		if t.rt == nil {
			return
		}
		switch t.rt.Kind() {
		case reflect.Map:
			if !yield(Type{rt: t.rt.Key()}) {
				return
			}
			yield(Type{rt: t.rt.Elem()})
		case reflect.Slice, reflect.Array, reflect.Chan:
			yield(Type{rt: t.rt.Elem()})
		}
	}
}

// GenericType returns the generic argument at the given slot, absent when
// out of range. The result is itself a full descriptor, so calls chain to
// resolve nested generics at any depth: for map[string][]int,
// GenericType(1) is []int and GenericType(1).GenericType(0) is int.
func (t Type) GenericType(index int) (Type, bool) {
	if index < 0 {
		return Type{}, false
	}
	for g := range t.GenericTypes() {
		if index == 0 {
			return g, true
		}
		index--
	}
	return Type{}, false
}

// ComponentType returns the element type of an array or slice type, absent
// otherwise. Present exactly when IsArray reports true.
func (t Type) ComponentType() (Type, bool) {
	if !t.IsArray() {
		return Type{}, false
	}
	return Type{rt: t.rt.Elem()}, true
}

// IsArray reports whether this type is an array or slice type.
func (t Type) IsArray() bool {
	return t.rt != nil && (t.rt.Kind() == reflect.Array || t.rt.Kind() == reflect.Slice)
}

// IsPrimitive reports whether this type is one of the basic kinds.
func (t Type) IsPrimitive() bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
	return false
}

// Matches reports whether a variable of this type could hold the argument:
// a covariant assignability check, not type equality. Accepts a value, a
// reflect.Type or a Type.
func (t Type) Matches(v any) bool {
	other := TypeOf(v)
	if t.rt == nil || other.rt == nil {
		return false
	}
	return other.rt.AssignableTo(t.rt)
}

// =========================================================================
// Allocation
// =========================================================================

// Allocate produces a new instance of this type without running any
// initialization logic, returned as a pointer to the value. All fields hold
// their zero values; invariants normally established by constructor
// functions do not hold until the caller sets them up manually. Interface
// and invalid types cannot be instantiated and fail with ErrAllocation.
func (t Type) Allocate() (any, error) {
	if t.rt == nil {
		return nil, fmt.Errorf("%w: no type", access.ErrAllocation)
	}
	if t.rt.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w: %s is an interface type", access.ErrAllocation, t.rt)
	}
	return reflect.New(t.rt).Interface(), nil
}

// Reflect returns the reflective class access for this type, using the
// default context.
func (t Type) Reflect() (*ClassAccess, error) {
	return Reflect(t)
}

// Unreflect returns the compiled class access for this type, using the
// default context.
func (t Type) Unreflect() (*ClassAccess, error) {
	return Unreflect(t)
}

func unwrapPtr(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}
