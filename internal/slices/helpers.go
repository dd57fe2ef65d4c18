package slices

// Contains checks for the existence of v in s.
func Contains[E comparable](s []E, v E) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Filter returns the elements of s for which keep returned true.
func Filter[E any](s []E, keep func(E) bool) []E {
	var out []E
	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
