// Package maybe provides a tri-state optional value.
//
// Unlike a pointer or a two-state option, a Maybe distinguishes "we have the
// value" from "we never learned whether there is one" from "there is
// confirmed to be none". Chat servers routinely omit fields (trips, hashes)
// without saying whether the user lacks them, so the distinction is
// load-bearing and must not be collapsed.
package maybe

// state orders Unknown first so the zero Maybe is Unknown.
type state uint8

const (
	stateUnknown state = iota
	stateHas
	stateNot
)

// Maybe holds a value in one of three states: Has, Unknown, or Not.
// The zero value is Unknown. Maybe[T] is comparable whenever T is.
type Maybe[T any] struct {
	state state
	value T
}

// Has returns a Maybe holding v.
func Has[T any](v T) Maybe[T] {
	return Maybe[T]{state: stateHas, value: v}
}

// Unknown returns a Maybe in the undetermined state.
func Unknown[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Not returns a Maybe recording that the value is confirmed absent.
func Not[T any]() Maybe[T] {
	return Maybe[T]{state: stateNot}
}

// FromPtr converts a pointer-style optional: non-nil becomes Has, nil
// becomes Unknown. Nothing maps to Not; that takes a domain rule.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Unknown[T]()
	}
	return Has(*p)
}

// IsHas reports whether a value is present.
func (m Maybe[T]) IsHas() bool { return m.state == stateHas }

// IsUnknown reports whether the state is undetermined.
func (m Maybe[T]) IsUnknown() bool { return m.state == stateUnknown }

// IsNot reports whether the value is confirmed absent.
func (m Maybe[T]) IsNot() bool { return m.state == stateNot }

// Value returns the held value and whether one is present.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.state == stateHas
}

// Or returns the held value, or def when no value is present.
func (m Maybe[T]) Or(def T) T {
	if m.state == stateHas {
		return m.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when no value is
// present. Unknown and Not both collapse to nil.
func (m Maybe[T]) Ptr() *T {
	if m.state != stateHas {
		return nil
	}
	v := m.value
	return &v
}

// Must returns the held value and panics if there is none. Callers opt in
// to the abort; decoders never use this on wire data.
func (m Maybe[T]) Must() T {
	if m.state != stateHas {
		panic("maybe: Must called without a value")
	}
	return m.value
}

// Map applies f to a present value. Unknown and Not pass through unchanged,
// keeping which of the two non-present states was there.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	switch m.state {
	case stateHas:
		return Has(f(m.value))
	case stateNot:
		return Not[U]()
	default:
		return Unknown[U]()
	}
}

// AndThen chains a computation that may itself change the state. As with
// Map, a non-present input short-circuits and is never promoted to Has.
func AndThen[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	switch m.state {
	case stateHas:
		return f(m.value)
	case stateNot:
		return Not[U]()
	default:
		return Unknown[U]()
	}
}
