// Package util is a test fixture. See internal/alpha/util; this sibling
// declares the same package and type names with different behavior.
package util

type Svc struct {
	Base int
}

func (s Svc) Do(n int) int { return s.Base * n }
