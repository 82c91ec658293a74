// Package reflection is the universal access strategy: member access built
// directly on the reflect package, with unsafe pointer arithmetic as the
// visibility override for unexported fields. It works for any type with no
// setup cost, paying per-call dispatch overhead instead.
package reflection

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// Field is the reflective access to one declared field.
type Field struct {
	meta   *access.FieldMeta
	target any
}

// NewField returns an unbound field access over the given descriptor.
func NewField(meta *access.FieldMeta) *Field {
	return &Field{meta: meta}
}

func (f *Field) Name() string        { return f.meta.Name }
func (f *Field) DisplayName() string { return f.meta.DisplayName }
func (f *Field) Owner() reflect.Type { return f.meta.Owner }
func (f *Field) Exported() bool      { return f.meta.Exported }
func (f *Field) Type() reflect.Type  { return f.meta.Field.Type }

// Bind returns a copy of this access bound to target.
func (f *Field) Bind(target any) access.FieldAccess {
	bound := *f
	bound.target = target
	return &bound
}

// Get reads the field from the bound instance. Unexported fields are read
// through their offset, bypassing visibility.
func (f *Field) Get() (any, error) {
	recv, err := access.ReceiverFor(f.meta.Owner, f.target)
	if err != nil {
		return nil, err
	}
	return f.value(recv).Interface(), nil
}

// Set writes the field on the bound instance, converting value to the field
// type when necessary. The bound instance must be a pointer; writes through
// a value binding would only mutate a copy and are rejected.
func (f *Field) Set(value any) error {
	if f.target == nil {
		return fmt.Errorf("%w: no instance bound for field %s", access.ErrAccess, f.meta.Name)
	}
	rv := reflect.ValueOf(f.target)
	if rv.Type() != reflect.PointerTo(f.meta.Owner) || rv.IsNil() {
		return fmt.Errorf("%w: field %s requires a non-nil *%s target to write",
			access.ErrAccess, f.meta.Name, f.meta.Owner)
	}

	converted, err := access.Convert(f.meta.Field.Type, value)
	if err != nil {
		return err
	}

	f.value(rv).Set(converted)
	return nil
}

// value addresses the field inside the struct pointed to by recv. Going
// through NewAt keeps unexported fields readable and writable.
func (f *Field) value(recv reflect.Value) reflect.Value {
	base := recv.UnsafePointer()
	return reflect.NewAt(f.meta.Field.Type, unsafe.Add(base, f.meta.Offset)).Elem()
}
