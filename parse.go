// Package parsekit implements a parser combinator engine for simple grammars.
//
// A grammar is built bottom-up: primitives like [Literal] and [TakeWhile] are
// composed with [KeepBoth], [Or], [Many], [Map] … into a single [Parser].
// Parsers are immutable values; the input position is threaded explicitly
// through a [Cursor], so the same grammar can be run many times, concurrently.
//
//	greeting := Map(Literal("hello"), strings.ToUpper)
//	v, err := Run(greeting, ReadString("hello, world"))
package parsekit

import (
	"errors"
	"fmt"
	"os"
)

// Parser is the single contract implemented by every combinator.
//
// On success, Parse returns the produced value and a cursor advanced past the consumed input.
// On failure, it returns the zero value, the cursor it was given, and an error (usually a [Failure])
// positioned at that cursor.
type Parser[T any] interface {
	Parse(c Cursor) (T, Cursor, error)
}

// ParserFunc adapts a function to the [Parser] interface.
// The function must honor the contract: no side effects, and an unadvanced cursor on failure.
type ParserFunc[T any] func(c Cursor) (T, Cursor, error)

// Parse implements [Parser].
func (f ParserFunc[T]) Parse(c Cursor) (T, Cursor, error) { return f(c) }

// Failure is the error returned by a parser refusing to proceed.
type Failure struct {
	Msg string
	Pos int // characters consumed when the parser failed

	at   Cursor
	errs []error // failures this one was built from
}

// Failf returns a failure at cursor c with the given formatted message.
func Failf(c Cursor, format string, args ...any) Failure {
	return Failure{Msg: fmt.Sprintf(format, args...), Pos: c.Pos(), at: c}
}

// Error implements error.
func (f Failure) Error() string { return fmt.Sprintf("at %s: %s", f.Position(), f.Msg) }

// Unwrap returns the failures merged into f, if any.
func (f Failure) Unwrap() []error { return f.errs }

// Position returns the line and column of the failure.
func (f Failure) Position() Position { return f.at.Position() }

// message returns the bare message of err, without position.
func message(err error) string {
	var f Failure
	if errors.As(err, &f) {
		return f.Msg
	}
	return err.Error()
}

// dedicated type for run options – avoid generics in Option
type config struct {
	cur Cursor
	err error

	complete bool
}

// Option specializes the behavior of [Run].
type Option func(*config)

// ReadFile reads the content of file name, and uses it as input.
func ReadFile(name string) Option {
	return func(c *config) {
		dt, err := os.ReadFile(name)
		if err != nil {
			c.err = err
			return
		}
		c.cur = NewCursor(string(dt)).Named(name)
	}
}

// ReadString uses src as input.
func ReadString(src string) Option {
	return func(c *config) { c.cur = NewCursor(src).Named(c.cur.name) }
}

// Named sets the filename reported in error positions.
// It must come after [ReadString] or [ReadFile] to override the file name.
func Named(name string) Option { return func(c *config) { c.cur = c.cur.Named(name) } }

// Complete requires the parser to consume the whole input.
func Complete() Option { return func(c *config) { c.complete = true } }

// Run parses the input set in opts with p, and returns the value.
// This make it convenient to use at the bottom of a function:
//
//	func ReadConfigFile(name string) (MyStruct, error) {
//	   return Run(configGrammar, ReadFile(name), Complete())
//	}
func Run[T any](p Parser[T], opts ...Option) (T, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.err != nil {
		var zero T
		return zero, cfg.err
	}

	v, rest, err := p.Parse(cfg.cur)
	if err != nil {
		return v, err
	}
	if cfg.complete && !rest.AtEOF() {
		return v, Failf(rest, "unconsumed input starting at %s", snippet(rest, 10))
	}
	return v, nil
}
