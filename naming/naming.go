// Package naming converts declared Go member and type names into
// human-readable display names. Display names are metadata only: member
// lookup and invocation always use declared names, and a strategy is only
// consulted when a member carries no explicit name override.
package naming

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// Strategy converts a declared Go name into a display name. Implementations
// must be pure: identical inputs yield identical outputs.
type Strategy interface {
	MemberName(name string) string
}

// Named lets a type override its own display name regardless of strategy.
type Named interface {
	DisplayName() string
}

// StrategyType selects one of the built-in conversion strategies.
type StrategyType int

const (
	AsDeclared StrategyType = iota // FirstName stays FirstName
	SnakeCase                      // FirstName -> first_name
	CamelCase                      // FirstName -> firstName
	PascalCase                     // firstName -> FirstName
)

type strategy struct {
	kind StrategyType
}

// New returns the built-in strategy of the given kind.
func New(kind StrategyType) Strategy {
	return strategy{kind: kind}
}

// Default returns the as-declared strategy: display names mirror Go names
// unless a member carries an explicit override.
func Default() Strategy {
	return New(AsDeclared)
}

func (s strategy) MemberName(name string) string {
	switch s.kind {
	case SnakeCase:
		return toSnakeCase(name)
	case CamelCase:
		return toCamelCase(name)
	case PascalCase:
		return toPascalCase(name)
	default:
		return name
	}
}

// Plural returns the pluralized form of a display name, used for
// collection-level naming on class access objects.
func Plural(name string) string {
	return pluralizeClient.Plural(name)
}

// =========================================================================
// Conversion helpers
// =========================================================================

// commonAcronyms short-circuits the names the rune-walk below would split
// incorrectly or slowly.
var commonAcronyms = map[string]string{
	"ID":   "id",
	"UUID": "uuid",
	"URL":  "url",
	"API":  "api",
	"JSON": "json",
	"HTML": "html",
	"HTTP": "http",
}

// toSnakeCase converts any naming convention to snake_case, keeping
// acronym runs together: "HTTPServer" -> "http_server".
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}
	if s, ok := commonAcronyms[name]; ok {
		return s
	}
	if strings.Contains(name, "_") && strings.ToLower(name) == name {
		return name
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// toCamelCase converts any naming convention to camelCase.
func toCamelCase(name string) string {
	pascal := toPascalCase(name)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// toPascalCase converts any naming convention to PascalCase.
func toPascalCase(name string) string {
	if name == "" {
		return ""
	}

	parts := strings.Split(toSnakeCase(name), "_")
	var b strings.Builder
	b.Grow(len(name))
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
