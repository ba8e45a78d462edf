package parsekit

import "unicode/utf8"

type quoted struct{}

// Parse scans a string, returning the lexeme including its quotes.
func (quoted) Parse(c Cursor) (string, Cursor, error) {
	w := c.Remaining()
	// sanity check
	if len(w) == 0 || !quotechars[w[0]] {
		return "", c, Failf(c, "expected a quoted string, got %s", snippet(c, 1))
	}

	offset := 1
	escaped := false
	quote := rune(w[0])
	count := 1

	for offset < len(w) {
		char, sz := utf8.DecodeRuneInString(w[offset:])
		offset += sz
		count++
		switch {
		case escaped:
			escaped = false
		case char == quote:
			return w[:offset], c.advance(offset, count), nil
		case char == '\\' && quote != '`':
			escaped = true
		}
	}

	return "", c, Failf(c, "unterminated string starting at %s", snippet(c, 10))
}

// QuotedString returns a parser for strings delimited between double quotes, single quotes or backticks.
// Backslash escapes the next character, except in backtick strings.
// The lexeme is returned with its delimiters; see [As] to unquote it.
func QuotedString() Parser[string] { return quoted{} }

var quotechars = [256]bool{'"': true, '\'': true, '`': true}

// IsIdent reports whether r can be part of an identifier:
// characters (a-zA-Z ASCII), digits, underscore or dash.
func IsIdent(r rune) bool { return 0 <= r && r < utf8.RuneSelf && identchars[r] }

var identchars = [256]bool{
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true, '8': true, '9': true,
	'_': true, '-': true,
}

// Ident returns a parser for a non-empty identifier, see [IsIdent].
func Ident() Parser[string] {
	return Bind(TakeWhile(IsIdent), func(id string) Parser[string] {
		if id == "" {
			return Fail[string]("expected an identifier")
		}
		return Succeed(id)
	})
}

// Blanks returns a parser skipping spaces and tabs. It never fails.
func Blanks() Parser[string] {
	return TakeWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}
