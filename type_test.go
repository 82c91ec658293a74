package unreflect

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/unreflect/access"
)

// =========================================================================
// Test Data Structures
// =========================================================================

type Entity struct {
	ID uint64
}

type Model struct {
	Entity
	CreatedAt time.Time
}

type Account struct {
	Model
	Name string
}

type Auditable interface {
	AuditID() uint64
}

type Record struct {
	Model
	Auditable
	note string
}

type Point struct {
	X, Y int
}

// NewPoint exists so allocation tests can show no constructor ran.
func NewPoint() *Point {
	return &Point{X: -1, Y: -1}
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// =========================================================================
// Descriptor creation and identity
// =========================================================================

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  reflect.Type
	}{
		{"Value", Point{}, reflect.TypeOf(Point{})},
		{"Pointer", &Point{}, reflect.TypeOf(&Point{})},
		{"ReflectType", reflect.TypeOf(Point{}), reflect.TypeOf(Point{})},
		{"Descriptor", TypeOf(Point{}), reflect.TypeOf(Point{})},
		{"Nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.input).Raw())
		})
	}
}

func TestTypeEquality(t *testing.T) {
	// Descriptors for the same parameterized type are equal regardless of
	// call site, and usable as map keys.
	a := TypeFor[map[string][]int]()
	b := TypeOf(map[string][]int{})
	assert.Equal(t, a, b)

	seen := map[Type]int{a: 1}
	assert.Equal(t, 1, seen[b])

	assert.NotEqual(t, TypeFor[map[string]int](), a)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "Point", TypeOf(Point{}).String())
	assert.Contains(t, TypeOf(Point{}).Name(), "unreflect.Point")
	assert.Equal(t, "Point[]", TypeOf([]Point{}).String())
	assert.Equal(t, "uint8[]", TypeOf(uuid.New()).String())
	assert.Equal(t, "int[][]", TypeFor[[][]int]().String())
}

// =========================================================================
// Hierarchy navigation
// =========================================================================

func TestSuperType(t *testing.T) {
	s, ok := TypeOf(Account{}).SuperType()
	require.True(t, ok)
	assert.Equal(t, TypeOf(Model{}), s)

	// Walking terminates at a type without embedded fields.
	_, ok = TypeOf(Entity{}).SuperType()
	assert.False(t, ok)
	_, ok = TypeOf(42).SuperType()
	assert.False(t, ok)
}

func TestSuperTypeAt(t *testing.T) {
	acc := TypeOf(Account{})

	first, ok := acc.SuperTypeAt(0)
	require.True(t, ok)
	direct, _ := acc.SuperType()
	assert.Equal(t, direct, first)

	second, ok := acc.SuperTypeAt(1)
	require.True(t, ok)
	assert.Equal(t, TypeOf(Entity{}), second)

	_, ok = acc.SuperTypeAt(2)
	assert.False(t, ok)
	_, ok = acc.SuperTypeAt(-1)
	assert.False(t, ok)
}

func TestSuperTypesTerminates(t *testing.T) {
	var chain []Type
	for s := range TypeOf(Account{}).SuperTypes() {
		chain = append(chain, s)
	}
	assert.Equal(t, []Type{TypeOf(Model{}), TypeOf(Entity{})}, chain)

	// Restartable: a second pass yields the same sequence.
	var again []Type
	for s := range TypeOf(Account{}).SuperTypes() {
		again = append(again, s)
	}
	assert.Equal(t, chain, again)
}

func TestSubTypesBreadthFirst(t *testing.T) {
	var all []Type
	for s := range TypeOf(Record{}).SubTypes() {
		all = append(all, s)
	}

	// Self first, then embedded types level by level in declaration order.
	want := []Type{
		TypeOf(Record{}),
		TypeOf(Model{}),
		TypeFor[Auditable](),
		TypeOf(Entity{}),
	}
	assert.Equal(t, want, all)
}

func TestSubTypesInterfaceOnly(t *testing.T) {
	var all []Type
	for s := range TypeFor[Auditable]().SubTypes() {
		all = append(all, s)
	}
	assert.Equal(t, []Type{TypeFor[Auditable]()}, all)
}

// =========================================================================
// Generic slots
// =========================================================================

func TestGenericTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want []Type
	}{
		{"Map", TypeFor[map[string]int](), []Type{TypeOf(""), TypeOf(0)}},
		{"Slice", TypeFor[[]float64](), []Type{TypeOf(0.0)}},
		{"Chan", TypeFor[chan bool](), []Type{TypeOf(true)}},
		{"Plain", TypeOf(Point{}), nil},
		{"ErasedInstantiation", TypeOf(Pair[int, string]{}), nil},
		{"Primitive", TypeOf(7), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Type
			for g := range tt.typ.GenericTypes() {
				got = append(got, g)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenericTypeChaining(t *testing.T) {
	m := TypeFor[map[string][]int]()

	key, ok := m.GenericType(0)
	require.True(t, ok)
	assert.Equal(t, TypeOf(""), key)

	val, ok := m.GenericType(1)
	require.True(t, ok)
	assert.Equal(t, TypeFor[[]int](), val)

	elem, ok := val.GenericType(0)
	require.True(t, ok)
	assert.Equal(t, TypeOf(0), elem)

	_, ok = m.GenericType(2)
	assert.False(t, ok)
}

// =========================================================================
// Arrays and primitives
// =========================================================================

func TestComponentType(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		present bool
		want    Type
	}{
		{"Slice", TypeFor[[]Point](), true, TypeOf(Point{})},
		{"Array", TypeOf(uuid.New()), true, TypeFor[byte]()},
		{"Map", TypeFor[map[string]int](), false, Type{}},
		{"Struct", TypeOf(Point{}), false, Type{}},
		{"Primitive", TypeOf(1), false, Type{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, ok := tt.typ.ComponentType()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.present, tt.typ.IsArray())
			if tt.present {
				assert.Equal(t, tt.want, comp)
			}
		})
	}
}

func TestIsPrimitive(t *testing.T) {
	assert.True(t, TypeOf(1).IsPrimitive())
	assert.True(t, TypeOf("s").IsPrimitive())
	assert.True(t, TypeOf(1.5).IsPrimitive())
	assert.False(t, TypeOf(Point{}).IsPrimitive())
	assert.False(t, TypeFor[[]int]().IsPrimitive())
}

// =========================================================================
// Matching and allocation
// =========================================================================

func TestMatches(t *testing.T) {
	assert.True(t, TypeOf(Point{}).Matches(Point{}))
	assert.False(t, TypeOf(Point{}).Matches(Entity{}))

	// Covariant: an interface descriptor matches its implementations.
	assert.True(t, TypeFor[fmt.Stringer]().Matches(time.Duration(1)))
	assert.False(t, TypeFor[fmt.Stringer]().Matches(Point{}))

	// Accepts raw types as well as values.
	assert.True(t, TypeOf(Point{}).Matches(reflect.TypeOf(Point{})))
}

func TestAllocate(t *testing.T) {
	v, err := TypeOf(Point{}).Allocate()
	require.NoError(t, err)

	p, ok := v.(*Point)
	require.True(t, ok)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 0, p.Y)

	// No constructor ran: NewPoint would have set both to -1.
	assert.NotEqual(t, NewPoint(), p)
}

func TestAllocateInterface(t *testing.T) {
	_, err := TypeFor[fmt.Stringer]().Allocate()
	assert.ErrorIs(t, err, access.ErrAllocation)

	_, err = TypeOf(nil).Allocate()
	assert.ErrorIs(t, err, access.ErrAllocation)
}
