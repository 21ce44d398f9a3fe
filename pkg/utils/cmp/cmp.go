package cmp

type Eq interface {
	Equal(b Eq) bool
}

// a == b as BiPredicator function
func EqEq[T comparable](a, b T) bool {
	return a == b
}

// SliceEqWith checks two slices have equal elements in the same order,
// compared pairwise with pred.
func SliceEqWith[T any, U any](as []T, bs []U, pred func(T, U) bool) bool {
	if len(as) != len(bs) {
		return false
	}
	for nth := range as {
		if !pred(as[nth], bs[nth]) {
			return false
		}
	}
	return true
}

// PEqualWith compares two pointers, allowing both-nil as equal.
func PEqualWith[T any](a, b *T, pred func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return pred(*a, *b)
}
