package humane

// Kind classifies a grapheme cluster or a run of them.
type Kind int

const (
	Numeric Kind = iota
	NonNumeric
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	case NonNumeric:
		return "NonNumeric"
	default:
		return "UNKNOWN"
	}
}
