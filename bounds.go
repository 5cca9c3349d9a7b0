package stdvec

import "fmt"

// validateIndex rejects index < 0, index > count, and index == count unless
// allowEnd is set.
func (v *Vector[T, M, D]) validateIndex(index int64, allowEnd bool) error {
	count := v.count()
	switch {
	case index < 0:
		return argError("index", index, "must be non-negative")
	case index > count:
		return argError("index", index, fmt.Sprintf("exceeds count %d", count))
	case index == count && !allowEnd:
		return argError("index", index, fmt.Sprintf("must be less than count %d", count))
	}
	return nil
}

// validateCount rejects n < 0 and n larger than the elements after index.
// index must already be valid.
func (v *Vector[T, M, D]) validateCount(index, n int64) error {
	if n < 0 {
		return argError("count", n, "must be non-negative")
	}
	if avail := v.count() - index; n > avail {
		return argError("count", n, fmt.Sprintf("exceeds the %d elements from index %d", avail, index))
	}
	return nil
}

// validateRange checks the sub-range [index, index+n).
func (v *Vector[T, M, D]) validateRange(index, n int64) error {
	if err := v.validateIndex(index, true); err != nil {
		return err
	}
	return v.validateCount(index, n)
}
