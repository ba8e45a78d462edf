package parsekit

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Position is a value that represents a source position.
// A position is valid if Line > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // character offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (character count per line)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

func (pos Position) String() string {
	s := pos.Filename
	if s == "" {
		s = "<input>"
	}
	if pos.IsValid() {
		s += fmt.Sprintf(":%d:%d", pos.Line, pos.Column)
	}
	return s
}

// Cursor is an immutable view on the input not yet consumed by a parser.
//
// A cursor keeps the original source and an offset into it, so advancing never copies text.
// The zero Cursor is an empty input.
type Cursor struct {
	src  string
	name string

	off int // byte offset of the unconsumed suffix
	n   int // characters consumed so far
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) Cursor { return Cursor{src: src} }

// Named returns a copy of c reporting name as filename in positions.
func (c Cursor) Named(name string) Cursor {
	c.name = name
	return c
}

// Pos returns the number of characters consumed from the start of the input.
func (c Cursor) Pos() int { return c.n }

// Remaining returns the input not yet consumed.
func (c Cursor) Remaining() string { return c.src[c.off:] }

// AtEOF reports whether the whole input has been consumed.
func (c Cursor) AtEOF() bool { return c.off == len(c.src) }

// Peek returns the next character, without advancing.
// It returns [utf8.RuneError] at end of input.
func (c Cursor) Peek() rune {
	if c.AtEOF() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

// Position computes the line and column of the cursor.
// This walks the input from the start, and is meant for error reporting only.
func (c Cursor) Position() Position {
	pos := Position{Filename: c.name, Offset: c.n, Line: 1, Column: 1}
	for _, r := range c.src[:c.off] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	return pos
}

func (c Cursor) String() string {
	return fmt.Sprintf("%s (%d) %s", c.Position(), c.n, snippet(c, 1))
}

// advance returns a cursor past size bytes holding count characters.
func (c Cursor) advance(size, count int) Cursor {
	c.off += size
	c.n += count
	return c
}

// snippet quotes the next n characters of input, for use in error messages.
func snippet(c Cursor, n int) string {
	if c.AtEOF() {
		return "end of input"
	}
	rest := c.Remaining()
	end := 0
	for i := 0; i < n && end < len(rest); i++ {
		_, sz := utf8.DecodeRuneInString(rest[end:])
		end += sz
	}
	return strconv.Quote(rest[:end])
}
