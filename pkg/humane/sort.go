package humane

import "slices"

// Sort sorts s in place in humane order. The sort is stable.
func Sort[S ~[]E, E ~string](s S) {
	slices.SortStableFunc(s, CompareOf[E])
}

// SortFunc stably sorts s in humane order of key(e).
func SortFunc[S ~[]E, E any](s S, key func(E) string) {
	slices.SortStableFunc(s, func(a, b E) int {
		return defaultComparator.Compare(key(a), key(b))
	})
}

// IsSorted reports whether s is in humane order.
func IsSorted[S ~[]E, E ~string](s S) bool {
	return slices.IsSortedFunc(s, CompareOf[E])
}

// Search finds target in s, which must be in humane order, and returns the
// position where it is or would be inserted and whether it was found.
func Search[S ~[]E, E ~string](s S, target E) (int, bool) {
	return slices.BinarySearchFunc(s, target, CompareOf[E])
}

// Sort stably sorts s using the comparator's classifier.
func (c *Comparator) Sort(s []string) {
	slices.SortStableFunc(s, c.Compare)
}

// Strings attaches humane ordering to []string for use with package sort.
type Strings []string

func (s Strings) Len() int           { return len(s) }
func (s Strings) Less(i, j int) bool { return Less(s[i], s[j]) }
func (s Strings) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
