package parsekit

import (
	"net/netip"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	digits := TakeWhile(func(r rune) bool { return unicode.IsDigit(r) || r == '-' })

	n, next, err := As[int64](digits).Parse(NewCursor("-42;"))
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)
	assert.Equal(t, ";", next.Remaining())

	s, _, err := As[string](QuotedString()).Parse(NewCursor(`"a\tb"`))
	require.NoError(t, err)
	assert.Equal(t, "a\tb", s)

	b, _, err := As[bool](Ident()).Parse(NewCursor("true"))
	require.NoError(t, err)
	assert.True(t, b)

	fl, _, err := As[float64](TakeWhile(func(r rune) bool { return unicode.IsDigit(r) || r == '.' })).Parse(NewCursor("2.5"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, fl)
}

func TestAsTextUnmarshaler(t *testing.T) {
	addr := TakeWhile(func(r rune) bool { return unicode.IsDigit(r) || r == '.' })

	ip, next, err := As[netip.Addr](addr).Parse(NewCursor("10.67.21.85;"))
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.67.21.85"), ip)
	assert.Equal(t, 11, next.Pos())
}

func TestAsFailureDoesNotConsume(t *testing.T) {
	c := NewCursor("12x")
	_, next, err := As[int](Ident()).Parse(c)

	var f Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, 0, f.Pos)
	assert.Contains(t, f.Msg, `cannot read "12x" as int`)
	assert.Equal(t, c, next)
}

func TestAsUnsupported(t *testing.T) {
	assert.Panics(t, func() { As[complex128](Ident()) })
}
