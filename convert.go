package parsekit

import (
	"encoding"
	"reflect"
	"strconv"
)

type as[T any] struct {
	p    Parser[string]
	conv func(string) (T, error)
}

func (a as[T]) Parse(c Cursor) (T, Cursor, error) {
	var zero T
	lit, next, err := a.p.Parse(c)
	if err != nil {
		return zero, c, err
	}
	v, err := a.conv(lit)
	if err != nil {
		return zero, c, Failf(c, "cannot read %q as %s: %s", lit, reflect.TypeFor[T](), err)
	}
	return v, next, nil
}

// As returns a parser converting the lexeme matched by p into a value of type T.
// The lexeme is converted with:
//
//   - UnmarshalText if *T implements [encoding.TextUnmarshaler]
//   - strconv.Unquote for strings
//   - strconv.ParseInt for int and int64
//   - strconv.ParseFloat for float64
//   - strconv.ParseBool for bool
//
// If the lexeme cannot be converted, the parser fails without consuming input.
// As panics if T is none of the above.
func As[T any](p Parser[string]) Parser[T] {
	return as[T]{p, converter[T]()}
}

func converter[T any]() func(string) (T, error) {
	tt := reflect.TypeFor[T]()
	if reflect.PointerTo(tt).Implements(reflect.TypeFor[encoding.TextUnmarshaler]()) {
		return func(s string) (T, error) {
			var v T
			err := any(&v).(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
			return v, err
		}
	}

	switch tt {
	case reflect.TypeFor[string]():
		return convert[T](strconv.Unquote)
	case reflect.TypeFor[int]():
		return convert[T](strconv.Atoi)
	case reflect.TypeFor[int64]():
		return convert[T](func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	case reflect.TypeFor[float64]():
		return convert[T](func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	case reflect.TypeFor[bool]():
		return convert[T](strconv.ParseBool)
	}

	panic("parsekit: cannot convert lexemes to " + tt.String())
}

// convert adapts f to return T; the caller guarantees V and T are the same type.
func convert[T, V any](f func(string) (V, error)) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := f(s)
		return any(v).(T), err
	}
}
