// Package util is a test fixture. It shares its package name and type
// names with its sibling under internal/beta, so the two Svc types render
// the same type string while being distinct types.
package util

type Svc struct {
	Base int
}

func (s Svc) Do(n int) int { return s.Base + n }
