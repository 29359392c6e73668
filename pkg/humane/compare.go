package humane

import "strings"

// Comparator orders strings humanely using its Classifier to find numeric runs.
// The zero value uses ASCIIDigits. A Comparator is safe for concurrent use.
type Comparator struct {
	classifier Classifier
}

var defaultComparator = &Comparator{classifier: ASCIIDigits}

// NewComparator returns a Comparator using c. A nil classifier means ASCIIDigits.
func NewComparator(c Classifier) *Comparator {
	if c == nil {
		c = ASCIIDigits
	}
	return &Comparator{classifier: c}
}

// Compare returns -1 if a sorts before b, +1 if after, 0 if they are equivalent.
func (c *Comparator) Compare(a, b string) int {
	var ta, tb Tokenizer
	ta.Reset(a, c.classifier)
	tb.Reset(b, c.classifier)

	for {
		x, okA := ta.Next()
		y, okB := tb.Next()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}

		if r := compareTokens(x, y); r != 0 {
			return r
		}
	}
}

func (c *Comparator) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}

func compareTokens(x, y Token) int {
	switch {
	case x.Kind == Numeric && y.Kind != Numeric:
		return -1
	case x.Kind != Numeric && y.Kind == Numeric:
		return 1
	case x.Kind == Numeric:
		return compareDigits(x.Value, y.Value)
	default:
		return strings.Compare(x.Value, y.Value)
	}
}

// compareDigits compares two digit runs by magnitude without parsing them:
// leading zeros are dropped, then the longer run is larger, then the first
// differing digit decides.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Compare orders a and b humanely with ASCIIDigits.
func Compare(a, b string) int {
	return defaultComparator.Compare(a, b)
}

// CompareOf is Compare for any string type.
func CompareOf[E ~string](a, b E) int {
	return defaultComparator.Compare(string(a), string(b))
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return defaultComparator.Compare(a, b) < 0
}
