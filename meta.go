package unreflect

import (
	"fmt"
	"reflect"

	"github.com/Konsultn-Engineering/unreflect/access"
	"github.com/Konsultn-Engineering/unreflect/naming"
)

// classMeta is the cached member-descriptor set for one type. It is built
// once, stored in the context's LRU cache, and shared read-only by every
// ClassAccess produced for the type afterwards.
type classMeta struct {
	typ     reflect.Type
	name    string // simple Go name
	display string // Named override or naming-strategy form
	plural  string // pluralized display name

	fields     []*access.FieldMeta
	fieldMap   map[string]*access.FieldMeta // declared name -> descriptor
	displayMap map[string]*access.FieldMeta // display name -> descriptor

	methods   []*access.MethodMeta
	methodMap map[string]*access.MethodMeta

	ctor *access.CtorMeta
}

// buildMeta constructs the complete member-descriptor set for t. This is
// the expensive introspection pass; it runs once per type and the result is
// cached. Pointer types are normalized to their element type first.
func (c *Context) buildMeta(t reflect.Type) (*classMeta, error) {
	if t == nil {
		return nil, fmt.Errorf("unreflect: nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	meta := &classMeta{
		typ:  t,
		name: simpleName(t),
	}

	// Type-level display name: explicit Named override wins, otherwise the
	// naming strategy applies.
	if named, ok := reflect.New(t).Interface().(naming.Named); ok {
		meta.display = named.DisplayName()
	} else {
		meta.display = c.strategy.MemberName(meta.name)
	}
	meta.plural = naming.Plural(meta.display)

	parser := newTagParser(c.tagName, c.strategy)

	// Declared fields, unexported included: visibility is bypassed at the
	// access layer. Anonymous fields are not enumerated here; they surface
	// through the supertype walk instead.
	if t.Kind() == reflect.Struct {
		n := t.NumField()
		meta.fields = make([]*access.FieldMeta, 0, n)
		meta.fieldMap = make(map[string]*access.FieldMeta, n)
		meta.displayMap = make(map[string]*access.FieldMeta, n)

		for i := 0; i < n; i++ {
			f := t.Field(i)
			if f.Anonymous {
				continue
			}
			tag := parser.parse(f.Name, f.Tag)
			if tag.Skip {
				continue
			}

			fm := &access.FieldMeta{
				Owner:       t,
				Field:       f,
				Name:        f.Name,
				DisplayName: tag.DisplayName,
				Offset:      f.Offset,
				Exported:    f.IsExported(),
			}
			meta.fields = append(meta.fields, fm)
			meta.fieldMap[f.Name] = fm
			// On display-name collisions the first declaration wins;
			// later fields stay reachable by their declared names.
			if _, taken := meta.displayMap[tag.DisplayName]; !taken {
				meta.displayMap[tag.DisplayName] = fm
			}
		}
	}

	// Methods come from the pointer method set so both value and pointer
	// receivers are covered. Go exposes exported methods only.
	pt := reflect.PointerTo(t)
	nm := pt.NumMethod()
	meta.methods = make([]*access.MethodMeta, 0, nm)
	meta.methodMap = make(map[string]*access.MethodMeta, nm)

	for i := 0; i < nm; i++ {
		m := pt.Method(i)
		ft := m.Func.Type()

		params := make([]reflect.Type, 0, ft.NumIn()-1)
		for j := 1; j < ft.NumIn(); j++ {
			params = append(params, ft.In(j))
		}
		returns := make([]reflect.Type, 0, ft.NumOut())
		for j := 0; j < ft.NumOut(); j++ {
			returns = append(returns, ft.Out(j))
		}

		mm := &access.MethodMeta{
			Owner:       t,
			Method:      m,
			Name:        m.Name,
			DisplayName: c.strategy.MemberName(m.Name),
			Params:      params,
			Returns:     returns,
			Variadic:    ft.IsVariadic(),
			Compiler:    c.compiler,
		}
		meta.methods = append(meta.methods, mm)
		meta.methodMap[m.Name] = mm
	}

	meta.ctor = &access.CtorMeta{
		Owner:  t,
		Fields: meta.fields,
		Params: fieldTypes(meta.fields),
	}

	return meta, nil
}

func fieldTypes(fields []*access.FieldMeta) []reflect.Type {
	types := make([]reflect.Type, len(fields))
	for i, f := range fields {
		types[i] = f.Field.Type
	}
	return types
}

func simpleName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
