// Package unreflect is a runtime member-access engine: given an arbitrary
// type it exposes fields, methods and a positional constructor through a
// uniform access surface, invokable without compile-time knowledge of the
// type.
//
// Two interchangeable strategies implement the access surface with
// identical semantics:
//
//   - The reflective strategy works for any type with no setup cost and
//     pays reflect dispatch overhead on every call.
//   - The compiled strategy builds, on first invocation of each method
//     signature, a specialized invoker that front-loads method resolution
//     and argument-conversion planning; invokers live in a process-wide
//     cache for the rest of the process lifetime.
//
// Strategy choice never changes observable behavior, only latency:
//
//	cls, _ := unreflect.Unreflect(Calc{})
//	add, _ := cls.Method("Add")
//	sum, _ := add.Bind(&Calc{}).Invoke(2, 3) // 5
//
// The companion Type descriptor resolves embedded supertype chains,
// generic slots (map/slice/array/chan element types), array component
// types, and allocates bare instances:
//
//	t := unreflect.TypeFor[map[string][]int]()
//	v, _ := t.GenericType(1) // []int
//	e, _ := v.GenericType(0) // int
//
// All descriptors and access objects are immutable after construction and
// safe for concurrent use.
package unreflect
