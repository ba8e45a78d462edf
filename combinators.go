package parsekit

import "fmt"

// Pair holds the values of both sides of [KeepBoth].
type Pair[A, B any] struct {
	Left  A
	Right B
}

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.Left, p.Right) }

// Maybe is the result of [Optional]: Ok is false when the inner parser did not match.
type Maybe[T any] struct {
	Value T
	Ok    bool
}

type mapp[T, U any] struct {
	p Parser[T]
	f func(T) U
}

func (m mapp[T, U]) Parse(c Cursor) (U, Cursor, error) {
	v, next, err := m.p.Parse(c)
	if err != nil {
		var zero U
		return zero, c, err
	}
	return m.f(v), next, nil
}

// Map returns a parser applying f to the value produced by p.
// f must be pure.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] { return mapp[T, U]{p, f} }

type bind[T, U any] struct {
	p Parser[T]
	f func(T) Parser[U]
}

func (b bind[T, U]) Parse(c Cursor) (U, Cursor, error) {
	v, next, err := b.p.Parse(c)
	if err != nil {
		var zero U
		return zero, c, err
	}
	u, next, err := b.f(v).Parse(next)
	if err != nil {
		return u, c, err
	}
	return u, next, nil
}

// Bind returns a parser running p, then the parser chosen by f from p's value.
// This is how the grammar can depend on what was already read:
//
//	// a length-prefixed field, e.g. 5:hello
//	field := Bind(KeepLeft(As[int](digits), Literal(":")), func(n int) Parser[string] {
//		return Take(n)
//	})
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] { return bind[T, U]{p, f} }

type seq[T, U any] struct {
	p Parser[T]
	q Parser[U]
}

func (s seq[T, U]) run(c Cursor) (T, U, Cursor, error) {
	var (
		t T
		u U
	)
	t, next, err := s.p.Parse(c)
	if err != nil {
		return t, u, c, err
	}
	u, next, err = s.q.Parse(next)
	if err != nil {
		return t, u, c, err
	}
	return t, u, next, nil
}

type keepLeft[T, U any] struct{ seq[T, U] }

func (s keepLeft[T, U]) Parse(c Cursor) (T, Cursor, error) {
	t, _, next, err := s.run(c)
	if err != nil {
		var zero T
		return zero, c, err
	}
	return t, next, nil
}

type keepRight[T, U any] struct{ seq[T, U] }

func (s keepRight[T, U]) Parse(c Cursor) (U, Cursor, error) {
	_, u, next, err := s.run(c)
	if err != nil {
		var zero U
		return zero, c, err
	}
	return u, next, nil
}

type keepBoth[T, U any] struct{ seq[T, U] }

func (s keepBoth[T, U]) Parse(c Cursor) (Pair[T, U], Cursor, error) {
	t, u, next, err := s.run(c)
	if err != nil {
		return Pair[T, U]{}, c, err
	}
	return Pair[T, U]{t, u}, next, nil
}

// KeepLeft returns a parser running p then q, producing p's value.
func KeepLeft[T, U any](p Parser[T], q Parser[U]) Parser[T] { return keepLeft[T, U]{seq[T, U]{p, q}} }

// KeepRight returns a parser running p then q, producing q's value.
func KeepRight[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return keepRight[T, U]{seq[T, U]{p, q}}
}

// KeepBoth returns a parser running p then q, producing both values.
func KeepBoth[T, U any](p Parser[T], q Parser[U]) Parser[Pair[T, U]] {
	return keepBoth[T, U]{seq[T, U]{p, q}}
}

type or[T any] struct{ p, q Parser[T] }

func (o or[T]) Parse(c Cursor) (T, Cursor, error) {
	v, next, err1 := o.p.Parse(c)
	if err1 == nil {
		return v, next, nil
	}
	v, next, err2 := o.q.Parse(c)
	if err2 == nil {
		return v, next, nil
	}

	f := Failf(c, "%s or %s", message(err1), message(err2))
	f.errs = []error{err1, err2}
	return v, c, f
}

// Or returns a parser trying p, then q from the same cursor if p fails.
// If both fail, the failure describes both attempts.
func Or[T any](p, q Parser[T]) Parser[T] { return or[T]{p, q} }

// OneOf is [Or] over any number of parsers, tried in order.
func OneOf[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("parsekit: OneOf needs at least one parser")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Or(p, q)
	}
	return p
}

type optional[T any] struct{ p Parser[T] }

func (o optional[T]) Parse(c Cursor) (Maybe[T], Cursor, error) {
	v, next, err := o.p.Parse(c)
	if err != nil {
		return Maybe[T]{}, c, nil
	}
	return Maybe[T]{v, true}, next, nil
}

// Optional returns a parser matching p zero or one time. It never fails.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] { return optional[T]{p} }

type many[T any] struct{ p Parser[T] }

func (m many[T]) Parse(c Cursor) ([]T, Cursor, error) {
	var vs []T
	for {
		v, next, err := m.p.Parse(c)
		if err != nil || next.off == c.off {
			return vs, c, nil
		}
		vs = append(vs, v)
		c = next
	}
}

// Many returns a parser matching p zero or more times, as long as p succeeds. It never fails.
//
// An iteration where p succeeds without consuming input stops the repetition,
// and its value is not kept.
func Many[T any](p Parser[T]) Parser[[]T] { return many[T]{p} }

type expect[T any] struct {
	p    Parser[T]
	what string
}

func (e expect[T]) Parse(c Cursor) (T, Cursor, error) {
	v, next, err := e.p.Parse(c)
	if err == nil {
		return v, next, nil
	}
	f := Failf(c, "expected %s, got %s", e.what, snippet(c, 10))
	f.errs = []error{err}
	return v, c, f
}

// Expect returns a parser replacing the failure message of p with a description of what was expected.
func Expect[T any](p Parser[T], what string) Parser[T] { return expect[T]{p, what} }

type lookahead[T any] struct{ p Parser[T] }

func (l lookahead[T]) Parse(c Cursor) (T, Cursor, error) {
	v, _, err := l.p.Parse(c)
	return v, c, err
}

// Lookahead returns a parser matching p without consuming input.
func Lookahead[T any](p Parser[T]) Parser[T] { return lookahead[T]{p} }

type lazy[T any] struct{ f func() Parser[T] }

func (l lazy[T]) Parse(c Cursor) (T, Cursor, error) { return l.f().Parse(c) }

// Lazy defers building the parser until it runs, so grammars can be recursive:
//
//	var list Parser[[]string]
//	list = Lazy(func() Parser[[]string] { … list … })
//
// f is called on every run, and must return an equivalent parser every time.
func Lazy[T any](f func() Parser[T]) Parser[T] { return lazy[T]{f} }
