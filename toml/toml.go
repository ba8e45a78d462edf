// Package toml reads a simplified TOML configuration format.
//
// The format is a sequence of sections, each introduced by a [title] header
// and followed by key = value lines:
//
//	# global settings
//	name = "demo"
//
//	[server]
//	port = 8080
//	debug = false
//	motd = welcome home   # bare text up to a comment
//
// Values are quoted strings ("…" with escapes, '…' without), booleans,
// integers, or bare text up to the end of the line.
// Arrays, tables in arrays, dotted keys and dates are not supported.
package toml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pk "github.com/TroutSoftware/parsekit/v3"
)

// Property is a single key = value line.
type Property struct {
	Key   string
	Value any // string, int64 or bool
}

// Section is a [title] header and its properties.
// Properties before the first header belong to a section with an empty title.
type Section struct {
	Title      string
	Properties []Property
}

// Document is a parsed configuration.
type Document struct {
	Sections []Section
}

// Lookup returns the last value of key in section title.
func (d Document) Lookup(title, key string) (any, bool) {
	var (
		v  any
		ok bool
	)
	for _, s := range d.Sections {
		if s.Title != title {
			continue
		}
		for _, p := range s.Properties {
			if p.Key == key {
				v, ok = p.Value, true
			}
		}
	}
	return v, ok
}

// Map returns the document as nested maps, the way generic TOML decoders do:
// properties of the untitled section are at the top level, other sections are map[string]any values.
// Later definitions of a key override earlier ones.
// A section title used as a top-level key is an error.
func (d Document) Map() (map[string]any, error) {
	m := make(map[string]any)
	for _, s := range d.Sections {
		if s.Title == "" {
			continue
		}
		if _, ok := m[s.Title]; !ok {
			m[s.Title] = make(map[string]any)
		}
	}
	for _, s := range d.Sections {
		dst := m
		if s.Title != "" {
			dst = m[s.Title].(map[string]any)
		}
		for _, p := range s.Properties {
			if _, ok := dst[p.Key].(map[string]any); ok && s.Title == "" {
				return nil, fmt.Errorf("key %q is also a section", p.Key)
			}
			dst[p.Key] = p.Value
		}
	}
	return m, nil
}

type unit = struct{}

func discard[T any](T) unit { return unit{} }

func anyOf[T any](p pk.Parser[T]) pk.Parser[any] { return pk.Map(p, func(v T) any { return v }) }

var (
	blanks = pk.Blanks()

	comment = pk.KeepRight(pk.Literal("#"), pk.TakeWhile(func(r rune) bool { return r != '\n' }))
	newline = pk.Map(pk.Or(pk.Literal("\r\n"), pk.Literal("\n")), discard[string])

	// end of a line, optionally after a comment
	eol = pk.KeepRight(blanks, pk.KeepRight(pk.Optional(comment), pk.Or(newline, pk.EOF())))

	// empty and comment-only lines
	blankLines = pk.Many(eol)

	endOfLine = pk.KeepLeft(eol, blankLines)

	// "…" with escapes
	basicString = pk.Bind(pk.KeepRight(pk.Lookahead(pk.Literal(`"`)), pk.QuotedString()), func(lit string) pk.Parser[any] {
		v, err := strconv.Unquote(lit)
		if err != nil {
			return pk.Fail[any]("invalid string " + lit)
		}
		return pk.Succeed[any](v)
	})

	// '…' taken verbatim, on a single line
	literalString = anyOf(pk.KeepRight(pk.Literal("'"), pk.KeepLeft(
		pk.TakeWhile(func(r rune) bool { return r != '\'' && r != '\n' }),
		pk.Literal("'"),
	)))

	str = pk.Or(basicString, literalString)

	// typed values must fill the value, so "true_love" is a bare string
	endOfValue = pk.Lookahead(eol)

	boolean = pk.KeepLeft(pk.As[bool](pk.Or(pk.Literal("true"), pk.Literal("false"))), endOfValue)

	integer = pk.KeepLeft(pk.As[int64](pk.TakeWhile(func(r rune) bool {
		return '0' <= r && r <= '9' || r == '-' || r == '+'
	})), endOfValue)

	bare = pk.Bind(pk.TakeWhile(func(r rune) bool { return r != '\n' && r != '#' }), func(s string) pk.Parser[any] {
		s = strings.TrimSpace(s)
		switch {
		case s == "":
			return pk.Fail[any]("expected a value")
		case s[0] == '"' || s[0] == '\'':
			return pk.Fail[any]("unterminated string")
		}
		return pk.Succeed[any](s)
	})

	value = pk.Expect(pk.OneOf(str, anyOf(boolean), anyOf(integer), bare), "a value")

	property = pk.Map(
		pk.KeepBoth(
			pk.KeepLeft(pk.KeepRight(blanks, pk.Ident()), pk.KeepRight(blanks, pk.KeepLeft(pk.Literal("="), blanks))),
			pk.KeepLeft(value, endOfLine),
		),
		func(kv pk.Pair[string, any]) Property { return Property{Key: kv.Left, Value: kv.Right} },
	)

	headerLine = pk.KeepLeft(
		pk.KeepRight(pk.Literal("["), pk.KeepRight(blanks, pk.Ident())),
		pk.KeepLeft(blanks, pk.KeepLeft(pk.Literal("]"), endOfLine)),
	)

	header = pk.Expect(headerLine, "a section header")

	section = pk.Map(
		pk.KeepBoth(pk.KeepRight(blankLines, header), pk.Many(property)),
		func(s pk.Pair[string, []Property]) Section { return Section{Title: s.Left, Properties: s.Right} },
	)

	root = pk.KeepRight(blankLines, pk.Many(property))

	document = pk.Map(
		pk.KeepBoth(pk.KeepLeft(root, blankLines), pk.Many(section)),
		func(d pk.Pair[[]Property, []Section]) Document { return newDocument(d.Left, d.Right) },
	)

	strict = pk.KeepLeft(document, pk.ParserFunc[unit](endOfDocument))

	lenient = pk.KeepBoth(pk.KeepLeft(root, blankLines), pk.Many(pk.Synchronize(section, "\n[")))
)

var unknownLine = pk.Expect(pk.Fail[unit]("unknown line"), "a section header or a key = value line")

// endOfDocument succeeds at the end of input.
// Otherwise it reports why the next line could not be read,
// from the point the line parser got to when it went past the first character.
func endOfDocument(c pk.Cursor) (unit, pk.Cursor, error) {
	if c.AtEOF() {
		return unit{}, c, nil
	}
	_, line, _ := blankLines.Parse(c)

	var err error
	if line.Peek() == '[' {
		_, _, err = headerLine.Parse(line)
	} else {
		_, _, err = property.Parse(line)
	}
	var f pk.Failure
	if errors.As(err, &f) && f.Pos > line.Pos() {
		return unit{}, c, err
	}
	_, _, err = unknownLine.Parse(line)
	return unit{}, c, err
}

func newDocument(root []Property, sections []Section) Document {
	var d Document
	if len(root) > 0 {
		d.Sections = append(d.Sections, Section{Properties: root})
	}
	d.Sections = append(d.Sections, sections...)
	return d
}

// Grammar returns the parser for a complete document.
func Grammar() pk.Parser[Document] { return strict }

// ParseStrict parses src, stopping at the first error.
func ParseStrict(src string, opts ...pk.Option) (Document, error) {
	return pk.Run(strict, append([]pk.Option{pk.ReadString(src)}, opts...)...)
}

// Parse parses src.
// Sections that cannot be parsed are skipped, and reported in the returned error;
// the document holds everything that could be read.
func Parse(src string, opts ...pk.Option) (Document, error) {
	return parse(append([]pk.Option{pk.ReadString(src)}, opts...)...)
}

// ParseFile reads and parses file name, see [Parse].
func ParseFile(name string) (Document, error) { return parse(pk.ReadFile(name)) }

func parse(opts ...pk.Option) (Document, error) {
	v, err := pk.Run(lenient, opts...)
	if err != nil {
		return Document{}, err
	}

	var (
		sections []Section
		errs     error
	)
	for _, s := range v.Right {
		if s.Err != nil {
			errs = errors.Join(errs, s.Err)
			continue
		}
		sections = append(sections, s.Value)
	}
	return newDocument(v.Left, sections), errs
}
