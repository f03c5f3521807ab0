package workers

import "github.com/pkg/errors"

/*
Verify reports whether observed holds exactly initial+1 ... initial+len(observed),
each value once. This is what a correctly serialized IncrementAndGet must
produce across all of its callers, whatever order they ran in.

The first repeated value is reported as ErrDuplicate; otherwise the lowest
missing value is reported as ErrGap.
*/
func Verify(initial int, observed []int) error {
	seen := make(map[int]struct{}, len(observed))
	for _, v := range observed {
		if _, ok := seen[v]; ok {
			return errors.Wrapf(ErrDuplicate, "%d", v)
		}
		seen[v] = struct{}{}
	}

	for i := 1; i <= len(observed); i++ {
		want := initial + i
		if _, ok := seen[want]; !ok {
			return errors.Wrapf(ErrGap, "%d", want)
		}
	}
	return nil
}
