package utils

// Map generates a new slice, applying f on each item in the source.
func Map[T any, R any](source []T, f func(T) R) []R {
	result := make([]R, len(source))
	for i, t := range source {
		result[i] = f(t)
	}
	return result
}
