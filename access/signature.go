package access

import (
	"reflect"
	"strings"
)

// Signature identifies a method for invoker compilation: declaring type,
// name, and parameter/return types. Cache identity is the Owner reflect.Type
// plus the Name; the rendered Key is display-only, since type names are not
// unique across packages.
type Signature struct {
	Owner    reflect.Type
	Name     string
	Params   []reflect.Type
	Returns  []reflect.Type
	Variadic bool
}

// Key renders the signature for error messages and instrumentation.
func (s Signature) Key() string {
	var b strings.Builder
	b.WriteString(s.Owner.String())
	b.WriteByte('.')
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		if s.Variadic && i == len(s.Params)-1 {
			b.WriteString("...")
			b.WriteString(p.Elem().String())
		} else {
			b.WriteString(p.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}

func (s Signature) String() string {
	return s.Key()
}

// Invoker is a compiled direct-call routine for one method signature. The
// target is the receiver instance (value or pointer to the owner type);
// args are the call arguments in declaration order.
type Invoker func(target any, args []any) (any, error)

// Compiler is the invoker-synthesis boundary. Given a method signature it
// either returns a specialized invoker or reports a synthesis error; it
// never returns partial output. Implementations must be safe for concurrent
// use. Compilation is a one-time, potentially expensive cost and is not
// retried automatically.
type Compiler interface {
	Compile(sig Signature) (Invoker, error)
}
