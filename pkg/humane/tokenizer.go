package humane

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Tokenizer splits a string into Tokens, one grapheme cluster of lookahead at a time.
// It moves forward only and cannot be restarted except through Reset.
type Tokenizer struct {
	src        string
	classifier Classifier
	pos        int
	state      int

	// pending is the next grapheme cluster, already classified, not yet
	// part of any returned token.
	pending     string
	pendingKind Kind
}

// NewTokenizer returns a Tokenizer over s. A nil classifier means ASCIIDigits.
func NewTokenizer(s string, c Classifier) *Tokenizer {
	t := &Tokenizer{}
	t.Reset(s, c)
	return t
}

// Reset points the tokenizer at a new string.
func (t *Tokenizer) Reset(s string, c Classifier) {
	if c == nil {
		c = ASCIIDigits
	}
	*t = Tokenizer{
		src:        s,
		classifier: c,
		state:      -1,
	}
}

// Next returns the next token, or false once the string is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if !t.peek() {
		return Token{}, false
	}

	start, kind := t.pos, t.pendingKind
	for {
		t.pos += len(t.pending)
		t.pending = ""
		if !t.peek() || t.pendingKind != kind {
			break
		}
	}

	return Token{
		Value: t.src[start:t.pos],
		Start: start,
		End:   t.pos,
		Kind:  kind,
	}, true
}

// All yields the remaining tokens.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// peek loads and classifies the grapheme cluster at pos unless one is already pending.
func (t *Tokenizer) peek() bool {
	if t.pending != "" {
		return true
	}
	if t.pos >= len(t.src) {
		return false
	}
	t.pending, _, _, t.state = uniseg.FirstGraphemeClusterInString(t.src[t.pos:], t.state)
	t.pendingKind = t.classifier.Classify(t.pending)
	return true
}

// Tokenize splits s using ASCIIDigits.
func Tokenize(s string) []Token {
	var tokens []Token
	for tok := range NewTokenizer(s, nil).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}
