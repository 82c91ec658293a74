package accessor

import (
	"github.com/Konsultn-Engineering/unreflect/access"
)

// Method decorates a reflective method access. The embedded delegate
// forwards every capability automatically; only the operations listed below
// are overridden. This keeps the decorator override-by-exception: if the
// MethodAccess interface grows, new operations flow through the delegate
// without any change here.
//
// Overridden: Invoke, Bind, Target, Reflect, Unreflect.
type Method struct {
	access.MethodAccess // delegate, usually *reflection.Method

	compiler access.Compiler
	target   any
}

// Wrap decorates delegate with the compiled invocation path. A nil compiler
// selects DefaultCompiler. No compilation happens until the first Invoke.
func Wrap(delegate access.MethodAccess, comp access.Compiler) access.MethodAccess {
	if comp == nil {
		comp = DefaultCompiler()
	}
	return &Method{
		MethodAccess: delegate,
		compiler:     comp,
		target:       delegate.Target(),
	}
}

// Bind returns a copy bound to target, keeping the delegate bound as well
// so the reflective view stays equivalent.
func (m *Method) Bind(target any) access.MethodAccess {
	return &Method{
		MethodAccess: m.MethodAccess.Bind(target),
		compiler:     m.compiler,
		target:       target,
	}
}

func (m *Method) Target() any { return m.target }

// Invoke dispatches through the compiled invoker for this signature,
// compiling it on first use. A compilation failure surfaces as
// ErrCompilation; it is not silently downgraded to the reflective path.
func (m *Method) Invoke(args ...any) (any, error) {
	inv, err := invokerFor(m.compiler, m.Signature())
	if err != nil {
		return nil, err
	}
	return inv(m.target, args)
}

// Reflect returns the wrapped reflective access.
func (m *Method) Reflect() access.MethodAccess { return m.MethodAccess }

// Unreflect returns the compiled view: this access itself.
func (m *Method) Unreflect() access.MethodAccess { return m }
