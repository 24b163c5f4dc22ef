package esconfig

// copySlice returns a new slice with the elements of v, or nil if v is nil.
func copySlice[T any](v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// copyMap returns a new map with the entries of v, or nil if v is nil.
func copyMap[V any](v map[string]V) map[string]V {
	if v == nil {
		return nil
	}
	out := make(map[string]V, len(v))
	for k, e := range v {
		out[k] = e
	}
	return out
}
