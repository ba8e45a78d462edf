package parsekit

import (
	"strings"
	"unicode/utf8"
)

type succeed[T any] struct{ x T }

func (p succeed[T]) Parse(c Cursor) (T, Cursor, error) { return p.x, c, nil }

// Succeed returns a parser that always matches, consumes nothing and produces x.
func Succeed[T any](x T) Parser[T] { return succeed[T]{x} }

type failp[T any] struct{ msg string }

func (p failp[T]) Parse(c Cursor) (T, Cursor, error) {
	var zero T
	return zero, c, Failf(c, "%s", p.msg)
}

// Fail returns a parser that never matches.
func Fail[T any](msg string) Parser[T] { return failp[T]{msg} }

type literal struct {
	s string
	n int // characters in s
}

func (p literal) Parse(c Cursor) (string, Cursor, error) {
	rest := c.Remaining()
	if !strings.HasPrefix(rest, p.s) || !runeBoundary(rest, len(p.s)) {
		return "", c, Failf(c, "expected %q, got %s", p.s, snippet(c, p.n))
	}
	return p.s, c.advance(len(p.s), p.n), nil
}

// runeBoundary reports whether decoding s from the start stops exactly at byte offset n.
func runeBoundary(s string, n int) bool {
	i := 0
	for i < n {
		_, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
	}
	return i == n
}

// Literal returns a parser matching exactly s.
// The empty literal always matches, without consuming input.
func Literal(s string) Parser[string] { return literal{s, utf8.RuneCountInString(s)} }

type takeWhile struct{ pred func(rune) bool }

func (p takeWhile) Parse(c Cursor) (string, Cursor, error) {
	rest := c.Remaining()
	size, count := len(rest), 0
	for i, r := range rest {
		if !p.pred(r) {
			size = i
			break
		}
		count++
	}
	return rest[:size], c.advance(size, count), nil
}

// TakeWhile returns a parser consuming the longest run of characters satisfying pred.
// It never fails, and returns an empty string if the first character does not match.
// Compose with [Bind] to require at least one character (see [Ident]).
func TakeWhile(pred func(rune) bool) Parser[string] { return takeWhile{pred} }

// Take returns a parser consuming exactly n characters.
// A negative n always fails.
func Take(n int) Parser[string] {
	return ParserFunc[string](func(c Cursor) (string, Cursor, error) {
		if n < 0 {
			return "", c, Failf(c, "cannot take %d characters", n)
		}
		rest := c.Remaining()
		size := 0
		for i := 0; i < n; i++ {
			if size == len(rest) {
				return "", c, Failf(c, "expected %d characters, got end of input", n)
			}
			_, sz := utf8.DecodeRuneInString(rest[size:])
			size += sz
		}
		return rest[:size], c.advance(size, n), nil
	})
}

type eof struct{}

func (eof) Parse(c Cursor) (struct{}, Cursor, error) {
	if !c.AtEOF() {
		return struct{}{}, c, Failf(c, "expected end of input, got %s", snippet(c, 10))
	}
	return struct{}{}, c, nil
}

// EOF returns a parser matching only at the end of input.
func EOF() Parser[struct{}] { return eof{} }
