package reflection

import (
	"reflect"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// upgrader promotes a reflective method access to its compiled counterpart,
// using the compiler carried by the method descriptor (nil selects the
// default). Installed once, during init, by the facade package; when nothing
// installs it, Unreflect degrades to returning the reflective access itself.
var upgrader func(access.MethodAccess, access.Compiler) access.MethodAccess

// SetUpgrader installs the compiled-strategy promotion hook. It must be
// called during package initialization, before any access objects are used.
func SetUpgrader(fn func(access.MethodAccess, access.Compiler) access.MethodAccess) {
	upgrader = fn
}

// Method is the reflective access to one method: arguments are checked and
// converted and the method is resolved on every call.
type Method struct {
	meta   *access.MethodMeta
	target any
}

// NewMethod returns an unbound method access over the given descriptor.
func NewMethod(meta *access.MethodMeta) *Method {
	return &Method{meta: meta}
}

func (m *Method) Name() string                { return m.meta.Name }
func (m *Method) DisplayName() string         { return m.meta.DisplayName }
func (m *Method) Owner() reflect.Type         { return m.meta.Owner }
func (m *Method) Exported() bool              { return true }
func (m *Method) ParamTypes() []reflect.Type  { return m.meta.Params }
func (m *Method) ReturnTypes() []reflect.Type { return m.meta.Returns }
func (m *Method) Target() any                 { return m.target }

func (m *Method) Signature() access.Signature { return m.meta.Signature() }

// Bind returns a copy of this access bound to target.
func (m *Method) Bind(target any) access.MethodAccess {
	bound := *m
	bound.target = target
	return &bound
}

// Invoke calls the method on the bound instance.
func (m *Method) Invoke(args ...any) (any, error) {
	in, err := access.BuildArgs(m.meta.Signature(), args)
	if err != nil {
		return nil, err
	}

	recv, err := access.ReceiverFor(m.meta.Owner, m.target)
	if err != nil {
		return nil, err
	}

	fn := recv.Method(m.meta.Method.Index)
	return access.Call(fn, in, m.meta.Owner.Name()+"."+m.meta.Name)
}

// Reflect returns the reflective view: this access itself.
func (m *Method) Reflect() access.MethodAccess { return m }

// Unreflect returns the compiled view of this method.
func (m *Method) Unreflect() access.MethodAccess {
	if upgrader != nil {
		return upgrader(m, m.meta.Compiler)
	}
	return m
}
