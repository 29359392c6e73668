package humane

// Classifier decides the Kind of a single grapheme cluster.
type Classifier interface {
	Classify(grapheme string) Kind
}

// ClassifierFunc adapts a plain function to a Classifier.
type ClassifierFunc func(grapheme string) Kind

func (f ClassifierFunc) Classify(grapheme string) Kind {
	return f(grapheme)
}

// ASCIIDigits marks a grapheme Numeric when every byte of it is '0'..'9'.
// Other decimal digits, such as Arabic-Indic or fullwidth digits, are NonNumeric.
var ASCIIDigits Classifier = ClassifierFunc(classifyASCII)

func classifyASCII(g string) Kind {
	if g == "" {
		return NonNumeric
	}
	for i := 0; i < len(g); i++ {
		if !isDigit(g[i]) {
			return NonNumeric
		}
	}
	return Numeric
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
