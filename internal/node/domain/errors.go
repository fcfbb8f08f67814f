package domain

import "errors"

// Sentinel errors surfaced across the query protocol and the node
// lifecycle, checked with errors.Is.
var (
	// ErrKeyNotFound is returned by Get/Delete when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrValueNotProvided names a Set without a value. KeyStore.Set does
	// not return it; the query protocol reports that case as
	// port.ValueNotProvided.
	ErrValueNotProvided = errors.New("value not provided")
	// ErrNoRoute names the case where no progress toward a key is
	// possible. SelectNextHop does not return it: it reports a
	// HopDecision, and answers Local in that case.
	ErrNoRoute = errors.New("no route to key")
	// ErrShutdown is returned by in-flight handlers once the node has
	// transitioned to Terminated.
	ErrShutdown = errors.New("node is shutting down")
	// ErrJoinFailed is returned by the join protocol when the bootstrap
	// peer is unreachable or no JoinResponse arrives within the timeout.
	ErrJoinFailed = errors.New("join failed")
)

// InvariantViolation indicates a programmer error: a caller offered the
// routing table an entry that fails the prefix/digit predicate for the
// cell, or similar. It is fatal to the process: callers that detect one
// panic with it, and no adapter recovers it, so the node stops rather
// than continue operating on corrupted state.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string { return "invariant violation: " + e.Msg }
