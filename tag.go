package unreflect

import (
	"reflect"

	"github.com/Konsultn-Engineering/unreflect/naming"
)

// parsedTag is the per-field annotation surface: an optional display-name
// override and a skip directive.
//
// Supported syntax (tag name configurable via WithTagName, default "name"):
//
//	`name:"display_name"` // explicit display name
//	`name:"-"`            // hide the field from enumeration entirely
type parsedTag struct {
	DisplayName string
	Skip        bool
}

// tagParser resolves display names from struct tags, falling back to the
// configured naming strategy when no override is present.
type tagParser struct {
	tagName  string
	strategy naming.Strategy
}

func newTagParser(tagName string, strategy naming.Strategy) *tagParser {
	return &tagParser{tagName: tagName, strategy: strategy}
}

func (p *tagParser) parse(fieldName string, tag reflect.StructTag) parsedTag {
	value := tag.Get(p.tagName)
	switch value {
	case "":
		return parsedTag{DisplayName: p.strategy.MemberName(fieldName)}
	case "-":
		return parsedTag{Skip: true}
	}
	return parsedTag{DisplayName: value}
}
