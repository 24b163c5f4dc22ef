// Package str contains string slice utilities.
package str

import "sort"

// In returns true if v is one of s.
func In(v string, s ...string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Uniq returns the distinct strings of strs in sorted order.
func Uniq(strs ...string) []string {
	m := make(map[string]struct{}, len(strs))
	out := make([]string, 0, len(strs))
	for _, s := range strs {
		if _, ok := m[s]; ok {
			continue
		}
		m[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
