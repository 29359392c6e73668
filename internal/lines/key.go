package lines

import "strings"

// Key returns the 1-based whitespace separated field of line, the whole line
// for field 0, and "" when the line has fewer fields.
func Key(line string, field int) string {
	if field <= 0 {
		return line
	}

	n := 0
	for f := range strings.FieldsSeq(line) {
		n++
		if n == field {
			return f
		}
	}
	return ""
}

// Dedupe drops every entry of sorted that compares equal to the entry kept before it.
func Dedupe(sorted []string, cmp func(a, b string) int) []string {
	if len(sorted) < 2 {
		return sorted
	}

	out := sorted[:1]
	for _, s := range sorted[1:] {
		if cmp(out[len(out)-1], s) != 0 {
			out = append(out, s)
		}
	}
	return out
}
