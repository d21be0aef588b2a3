package actorio

// Unit is the type of the single-valued result produced by effects that
// carry no meaningful payload (print, sleep, a state machine's update
// step). It plays the role of Elm's/Haskell's () in a language without a
// built-in zero-size value type.
type Unit struct{}

// Result is the terminal outcome of an IOValue: either a success of type A
// or a failure of type E, never both. It is also the message type posted
// to a process's on-exit address when it terminates.
type Result[E, A any] struct {
	val   A
	err   E
	isErr bool
}

// Ok constructs a successful Result.
func Ok[E, A any](a A) Result[E, A] {
	return Result[E, A]{val: a}
}

// Err constructs a failed Result.
func Err[E, A any](e E) Result[E, A] {
	return Result[E, A]{err: e, isErr: true}
}

// IsOk reports whether the Result holds a success value.
func (r Result[E, A]) IsOk() bool { return !r.isErr }

// IsErr reports whether the Result holds a failure value.
func (r Result[E, A]) IsErr() bool { return r.isErr }

// Value returns the success payload. Calling it on a failed Result returns
// the zero value of A.
func (r Result[E, A]) Value() A { return r.val }

// Error returns the failure payload. Calling it on a successful Result
// returns the zero value of E. Named Error (not Err) so Result reads
// naturally at call sites; it does not implement the error interface.
func (r Result[E, A]) Error() E { return r.err }
