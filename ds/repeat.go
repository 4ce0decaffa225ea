package ds

// Repeat returns n copies of value; a non positive n gives an empty slice.
func Repeat[T any](n int, value T) []T {
	if n <= 0 {
		return []T{}
	}
	ts := make([]T, n)
	for i := range ts {
		ts[i] = value
	}
	return ts
}
