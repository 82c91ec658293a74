package accessor

import (
	"fmt"
	"reflect"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// defaultCompiler synthesizes invokers by front-loading every per-call
// decision the reflective strategy makes on each invocation: the method is
// resolved once, and one converter is planned per parameter. The returned
// closure only converts arguments and calls.
type defaultCompiler struct{}

// DefaultCompiler returns the built-in invoker compiler.
func DefaultCompiler() access.Compiler {
	return defaultCompiler{}
}

func (defaultCompiler) Compile(sig access.Signature) (access.Invoker, error) {
	method, ok := reflect.PointerTo(sig.Owner).MethodByName(sig.Name)
	if !ok {
		return nil, fmt.Errorf("%w: no method %s on %s", access.ErrCompilation, sig.Name, sig.Owner)
	}
	if err := checkShape(sig, method); err != nil {
		return nil, err
	}

	fixed := len(sig.Params)
	if sig.Variadic {
		fixed--
	}

	convs := make([]access.Converter, fixed)
	for i := range convs {
		convs[i] = access.ConverterFor(sig.Params[i])
	}
	var elemConv access.Converter
	if sig.Variadic {
		elemConv = access.ConverterFor(sig.Params[len(sig.Params)-1].Elem())
	}

	// method.Func takes the receiver as its first argument.
	fn := method.Func
	member := sig.Owner.Name() + "." + sig.Name

	return func(target any, args []any) (any, error) {
		if err := access.CheckArity(sig, args); err != nil {
			return nil, err
		}
		recv, err := access.ReceiverFor(sig.Owner, target)
		if err != nil {
			return nil, err
		}

		in := make([]reflect.Value, 0, len(args)+1)
		in = append(in, recv)
		for i, conv := range convs {
			v, err := conv(args[i])
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
		if elemConv != nil {
			for _, arg := range args[fixed:] {
				v, err := elemConv(arg)
				if err != nil {
					return nil, err
				}
				in = append(in, v)
			}
		}

		return access.Call(fn, in, member)
	}, nil
}

// checkShape verifies that the resolved method still matches the signature
// the invoker is being compiled for.
func checkShape(sig access.Signature, method reflect.Method) error {
	ft := method.Func.Type()
	if ft.NumIn()-1 != len(sig.Params) || ft.IsVariadic() != sig.Variadic {
		return fmt.Errorf("%w: %s does not match declared signature %s",
			access.ErrCompilation, method.Name, sig)
	}
	for i, p := range sig.Params {
		if ft.In(i+1) != p {
			return fmt.Errorf("%w: %s parameter %d is %s, signature says %s",
				access.ErrCompilation, method.Name, i, ft.In(i+1), p)
		}
	}
	return nil
}
