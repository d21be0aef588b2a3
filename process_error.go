package actorio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ProcessMetaError exposes the originating process's identity for a
// failure that escaped a Spawn body (either returned directly or
// recovered from a panic).
type ProcessMetaError interface {
	error
	Unwrap() error
	ProcessID() uuid.UUID
}

type processTaggedError struct {
	err error
	id  uuid.UUID
}

func newProcessTaggedError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return &processTaggedError{err: err, id: id}
}

func (e *processTaggedError) Error() string      { return e.err.Error() }
func (e *processTaggedError) Unwrap() error      { return e.err }
func (e *processTaggedError) ProcessID() uuid.UUID { return e.id }

func (e *processTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "process(id=%s): %+v", e.id, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractProcessID returns the process ID tagged onto err, if any.
func ExtractProcessID(err error) (uuid.UUID, bool) {
	var pme ProcessMetaError
	if errors.As(err, &pme) {
		return pme.ProcessID(), true
	}
	return uuid.Nil, false
}

// tagIfError wraps e with process-id metadata when E is itself error-
// shaped (implements the error interface); it is a no-op passthrough
// otherwise. This lets Spawn tag failures for the common E=error root
// contract without requiring every caller to use error as their failure
// type: the spec's own worked examples use Result<String, Unit> at the
// program root, where tagging simply does not apply.
func tagIfError[E any](e E, id uuid.UUID) E {
	if err, ok := any(e).(error); ok {
		tagged := newProcessTaggedError(err, id)
		if v, ok := any(tagged).(E); ok {
			return v
		}
	}
	return e
}
