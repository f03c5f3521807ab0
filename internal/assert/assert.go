/*
Package assert implements counter-specific assertions for use in tests. They
sit on top of testify, which covers the general cases.
*/
package assert

import (
	"sort"

	tassert "github.com/stretchr/testify/assert"
)

// Contiguous fails the test unless values holds exactly from+1 ... from+n,
// each once, in any order. It returns true if the assertion held.
func Contiguous(t tassert.TestingT, values []int, from, n int) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if !tassert.Len(t, values, n, "expected %d values", n) {
		return false
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	for i, v := range sorted {
		if want := from + i + 1; v != want {
			return tassert.Fail(t, "values are not contiguous",
				"position %d: got %d expected %d", i, v, want)
		}
	}
	return true
}
