package reflection

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// Constructor builds instances positionally: argument i initializes the
// i-th declared field, unexported fields included. With no arguments it is
// equivalent to bare allocation.
type Constructor struct {
	meta *access.CtorMeta
}

// NewConstructor returns a constructor access over the given descriptor.
func NewConstructor(meta *access.CtorMeta) *Constructor {
	return &Constructor{meta: meta}
}

func (c *Constructor) Owner() reflect.Type        { return c.meta.Owner }
func (c *Constructor) ParamTypes() []reflect.Type { return c.meta.Params }

// Construct allocates a new instance and assigns args to the declared
// fields in order. Missing trailing arguments leave fields zero; surplus
// arguments fail with ErrArgumentMismatch. Returns a pointer to the value.
func (c *Constructor) Construct(args ...any) (any, error) {
	if len(args) > len(c.meta.Fields) {
		return nil, fmt.Errorf("%w: %s has %d fields, got %d constructor arguments",
			access.ErrArgumentMismatch, c.meta.Owner, len(c.meta.Fields), len(args))
	}

	instance := reflect.New(c.meta.Owner)
	base := instance.UnsafePointer()

	for i, arg := range args {
		fm := c.meta.Fields[i]
		converted, err := access.Convert(fm.Field.Type, arg)
		if err != nil {
			return nil, err
		}
		reflect.NewAt(fm.Field.Type, unsafe.Add(base, fm.Offset)).Elem().Set(converted)
	}

	return instance.Interface(), nil
}
