package parsekit

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCursorPosition(t *testing.T) {
	cases := []struct {
		input string
		skip  int // characters consumed before asking the position
		want  Position
	}{
		{"", 0, Position{Offset: 0, Line: 1, Column: 1}},
		{"abc", 2, Position{Offset: 2, Line: 1, Column: 3}},
		{"ab\ncd", 3, Position{Offset: 3, Line: 2, Column: 1}},
		{"ab\ncd", 5, Position{Offset: 5, Line: 2, Column: 3}},
		{"héllo\nwörld", 8, Position{Offset: 8, Line: 2, Column: 3}},
	}

	for _, c := range cases {
		cur := NewCursor(c.input)
		_, cur, _ = Take(c.skip).Parse(cur)
		if got := cur.Position(); got != c.want {
			t.Errorf("Position(%q, %d): want %+v, got %+v", c.input, c.skip, c.want, got)
		}
	}
}

func TestCursorImmutable(t *testing.T) {
	c := NewCursor("héllo")
	next := c.advance(len("hé"), 2)

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, "héllo", c.Remaining())
	assert.Equal(t, 2, next.Pos())
	assert.Equal(t, "llo", next.Remaining())
	assert.Equal(t, utf8.RuneCountInString("héllo"), next.Pos()+utf8.RuneCountInString(next.Remaining()))
}

func TestCursorNamed(t *testing.T) {
	c := NewCursor("a\nb").Named("conf.toml")
	_, c, _ = Take(2).Parse(c)

	assert.Equal(t, "conf.toml:2:1", c.Position().String())
	assert.Equal(t, "<input>:1:1", NewCursor("").Position().String())
	assert.Equal(t, "<input>", Position{}.String())
}

func TestCursorPeek(t *testing.T) {
	c := NewCursor("€1")
	assert.Equal(t, '€', c.Peek())
	assert.Equal(t, utf8.RuneError, NewCursor("").Peek())

	var zero Cursor
	assert.True(t, zero.AtEOF())
	assert.Equal(t, "", zero.Remaining())
}

func TestSnippet(t *testing.T) {
	cases := []struct {
		input string
		n     int
		want  string
	}{
		{"", 3, "end of input"},
		{"abcdef", 3, `"abc"`},
		{"ab", 3, `"ab"`},
		{"日本語です", 2, `"日本"`},
	}

	for _, c := range cases {
		if got := snippet(NewCursor(c.input), c.n); got != c.want {
			t.Errorf("snippet(%q, %d): want %s, got %s", c.input, c.n, c.want, got)
		}
	}
}
