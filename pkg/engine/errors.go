package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by engine operations.
var (
	// ErrNoActiveSession means the operation requires a running session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrNoDuePoints means Start was called when zero points are due.
	ErrNoDuePoints = errors.New("no recall points are due")

	// ErrNestedRabbithole means EnterRabbithole was called while another
	// rabbit hole is active. Rabbit holes are strictly sequential.
	ErrNestedRabbithole = errors.New("a rabbit hole is already active")

	// ErrNotInRabbithole means ExitRabbithole was called in recall mode.
	ErrNotInRabbithole = errors.New("not inside a rabbit hole")
)

// LLMError wraps a failed or timed-out LLM call. Failures during the
// evaluation of a single point are recovered locally (the point is
// skipped this turn); failures during tutor or rabbit-hole agent replies
// abort the turn with this error.
type LLMError struct {
	Op  string
	Err error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm call %q failed: %v", e.Op, e.Err)
}

func (e *LLMError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed critical repository write. The turn is
// aborted; in-memory state remains consistent with what was persisted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence op %q failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// InvariantError is a programmer error. Fatal for the session.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Detail
}
