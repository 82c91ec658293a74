package access

import (
	"fmt"
	"reflect"
	"sync"
)

// Converter adapts an arbitrary value to a destination type, producing a
// reflect.Value ready to be passed to Call or Set. Converters are pure and
// safe for concurrent use.
type Converter func(value any) (reflect.Value, error)

// Pre-compiled converter cache, keyed by (destination, source) type pair.
// Built lazily; hit rate approaches 100% after warmup since the set of type
// pairs flowing through an access object is small and stable.
var converterCache sync.Map // map[convKey]func(reflect.Value) (reflect.Value, error)

type convKey struct {
	dest reflect.Type
	src  reflect.Type
}

// ConverterFor returns a cached converter targeting dest. The per-source
// conversion decision is made once per (dest, source) pair and memoized.
func ConverterFor(dest reflect.Type) Converter {
	return func(value any) (reflect.Value, error) {
		return Convert(dest, value)
	}
}

// Convert adapts value to dest. nil maps to the zero value of dest. A
// pointer whose element type fits dest is unwrapped one level. Incompatible
// values fail with ErrArgumentMismatch.
func Convert(dest reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(dest), nil
	}

	rv := reflect.ValueOf(value)
	conv, err := pairConverter(dest, rv.Type())
	if err != nil {
		return reflect.Value{}, err
	}
	return conv(rv)
}

// pairConverter resolves and caches the conversion step for one type pair.
func pairConverter(dest, src reflect.Type) (func(reflect.Value) (reflect.Value, error), error) {
	key := convKey{dest: dest, src: src}
	if cached, ok := converterCache.Load(key); ok {
		return cached.(func(reflect.Value) (reflect.Value, error)), nil
	}

	conv := buildPairConverter(dest, src)
	if conv == nil {
		return nil, fmt.Errorf("%w: cannot use %s as %s", ErrArgumentMismatch, src, dest)
	}

	converterCache.Store(key, conv)
	return conv, nil
}

func buildPairConverter(dest, src reflect.Type) func(reflect.Value) (reflect.Value, error) {
	// Identity - ultra-fast path.
	if src == dest {
		return func(v reflect.Value) (reflect.Value, error) { return v, nil }
	}

	if src.AssignableTo(dest) {
		return func(v reflect.Value) (reflect.Value, error) { return v, nil }
	}

	if convertibleKinds(dest, src) {
		return func(v reflect.Value) (reflect.Value, error) {
			return v.Convert(dest), nil
		}
	}

	// Unwrap one pointer level on the source side.
	if src.Kind() == reflect.Ptr {
		elem := buildPairConverter(dest, src.Elem())
		if elem != nil {
			return func(v reflect.Value) (reflect.Value, error) {
				if v.IsNil() {
					return reflect.Zero(dest), nil
				}
				return elem(v.Elem())
			}
		}
	}

	return nil
}

// convertibleKinds guards reflect's Convert against surprising cross-kind
// conversions: int -> string (rune interpretation) and string -> number are
// rejected even though reflect allows some of them.
func convertibleKinds(dest, src reflect.Type) bool {
	if !src.ConvertibleTo(dest) {
		return false
	}
	if dest.Kind() == reflect.String && src.Kind() != reflect.String && isNumericKind(src.Kind()) {
		return false
	}
	if src.Kind() == reflect.String && dest.Kind() != reflect.String && isNumericKind(dest.Kind()) {
		return false
	}
	return true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
