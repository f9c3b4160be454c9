package lambda

import "strings"

// Tokenize splits src into tokens. The characters \ λ . ( ) are tokens on
// their own, whitespace separates tokens, and any other run of characters is
// an identifier. Every input tokenizes.
func Tokenize(src string) []string {
	var tokens []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, ch := range src {
		switch ch {
		case '\\', 'λ', '.', '(', ')':
			flush()
			tokens = append(tokens, string(ch))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			buf.WriteRune(ch)
		}
	}
	flush()

	return tokens
}

// Tokens is a forward-only cursor over a token sequence.
type Tokens struct {
	toks []string
	pos  int
}

func NewTokens(toks []string) *Tokens {
	return &Tokens{toks: toks}
}

// Next returns the next token, or false once the sequence is exhausted.
func (t *Tokens) Next() (string, bool) {
	if t.pos >= len(t.toks) {
		return "", false
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, true
}
