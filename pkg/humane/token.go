package humane

// Token is a maximal run of grapheme clusters of the same Kind.
// Value is a view into the tokenized string, Start and End are byte offsets.
type Token struct {
	Value string
	Start int
	End   int
	Kind  Kind
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
