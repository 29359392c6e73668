package stringsutil

import "strings"

// RemoveEmptyStrings keeps the order of s and drops entries that are empty
// or contain only whitespace. It reuses the backing array of s.
func RemoveEmptyStrings(s []string) []string {
	out := s[:0]
	for _, v := range s {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Reverse reverses s in place and returns it.
func Reverse(s []string) []string {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}
