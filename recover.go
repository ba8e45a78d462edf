package parsekit

import (
	"strings"
	"unicode/utf8"
)

// Recovered is the result of [Synchronize]: either a value, or the failure that was skipped over.
type Recovered[T any] struct {
	Value T
	Err   error
}

type synchronize[T any] struct {
	p       Parser[T]
	syncLit []string
}

func (s synchronize[T]) Parse(c Cursor) (Recovered[T], Cursor, error) {
	v, next, err := s.p.Parse(c)
	if err == nil {
		return Recovered[T]{Value: v}, next, nil
	}
	if c.AtEOF() {
		return Recovered[T]{}, c, err
	}

	// always skip one character, so the recovery makes progress
	_, sz := utf8.DecodeRuneInString(c.Remaining())
	next = c.advance(sz, 1)
	for !next.AtEOF() && !s.synced(next) {
		_, sz := utf8.DecodeRuneInString(next.Remaining())
		next = next.advance(sz, 1)
	}
	return Recovered[T]{Err: err}, next, nil
}

func (s synchronize[T]) synced(c Cursor) bool {
	for _, lit := range s.syncLit {
		if strings.HasPrefix(c.Remaining(), lit) {
			return true
		}
	}
	return false
}

// Synchronize handles error recovery in the parsing process:
// when p fails, the failure is recorded in the result and all input is skipped
// until one of lits is found (or the input is exhausted).
//
// Synchronize only fails if p fails at the end of input.
// Use it inside [Many] at the level of the synchronisation elements,
// and join the recorded failures with [errors.Join].
func Synchronize[T any](p Parser[T], lits ...string) Parser[Recovered[T]] {
	return synchronize[T]{p, lits}
}
