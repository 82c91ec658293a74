package access

import (
	"fmt"
	"reflect"
)

// Shared invocation plumbing. Both strategies route argument checking,
// receiver adaptation and result shaping through these helpers so that the
// two paths cannot drift apart semantically; the compiled strategy merely
// front-loads the per-parameter conversion decisions.

var errType = reflect.TypeOf((*error)(nil)).Elem()

// CheckArity validates the argument count against a parameter list.
func CheckArity(sig Signature, args []any) error {
	if sig.Variadic {
		if len(args) < len(sig.Params)-1 {
			return fmt.Errorf("%w: %s requires at least %d arguments, got %d",
				ErrArgumentMismatch, sig, len(sig.Params)-1, len(args))
		}
		return nil
	}
	if len(args) != len(sig.Params) {
		return fmt.Errorf("%w: %s requires %d arguments, got %d",
			ErrArgumentMismatch, sig, len(sig.Params), len(args))
	}
	return nil
}

// BuildArgs checks arity and converts args to the parameter types,
// flattening variadic tails.
func BuildArgs(sig Signature, args []any) ([]reflect.Value, error) {
	if err := CheckArity(sig, args); err != nil {
		return nil, err
	}

	in := make([]reflect.Value, 0, len(args))
	fixed := len(sig.Params)
	if sig.Variadic {
		fixed--
	}

	for i := 0; i < fixed; i++ {
		v, err := Convert(sig.Params[i], args[i])
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	if sig.Variadic {
		elem := sig.Params[fixed].Elem()
		for _, arg := range args[fixed:] {
			v, err := Convert(elem, arg)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}

	return in, nil
}

// ReceiverFor adapts a bound target to the pointer method set of owner.
// Value targets are copied onto the heap so pointer-receiver methods remain
// callable; mutations made by such methods affect the copy, matching the
// semantics of calling through an interface.
func ReceiverFor(owner reflect.Type, target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, fmt.Errorf("%w: no instance bound for %s member", ErrAccess, owner)
	}

	rv := reflect.ValueOf(target)
	switch rv.Type() {
	case reflect.PointerTo(owner):
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil instance bound for %s member", ErrAccess, owner)
		}
		return rv, nil
	case owner:
		p := reflect.New(owner)
		p.Elem().Set(rv)
		return p, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: bound instance of type %T is not a %s",
		ErrArgumentMismatch, target, owner)
}

// Call invokes fn with the prepared arguments, recovering callee panics and
// shaping the results. member qualifies failures, e.g. "Calc.Add".
func Call(fn reflect.Value, in []reflect.Value, member string) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &InvocationError{Member: member, Recovered: r}
		}
	}()

	return ShapeResults(fn.Call(in), member)
}

// ShapeResults collapses call results into the Invoke return convention:
// a trailing error result is split off and reported as *InvocationError
// when non-nil; the remaining results become nil, a single value, or []any.
func ShapeResults(outs []reflect.Value, member string) (any, error) {
	if n := len(outs); n > 0 && outs[n-1].Type() == errType {
		if !outs[n-1].IsNil() {
			return nil, &InvocationError{Member: member, Err: outs[n-1].Interface().(error)}
		}
		outs = outs[:n-1]
	}

	switch len(outs) {
	case 0:
		return nil, nil
	case 1:
		return outs[0].Interface(), nil
	}

	all := make([]any, len(outs))
	for i, out := range outs {
		all[i] = out.Interface()
	}
	return all, nil
}
