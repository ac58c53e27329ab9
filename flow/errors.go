package flow

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// ErrInvalidInput, ErrInvariantViolation, ErrNumericTolerance or
// ErrOptionViolation under errors.Is (context errors excepted).
var (
	ErrInvalidInput       = errors.New("flow: invalid input")
	ErrInvariantViolation = errors.New("flow: invariant violation")
	ErrNumericTolerance   = errors.New("flow: numeric tolerance exceeded")
	ErrOptionViolation    = errors.New("flow: invalid option")
)

// Input errors, all wrapping ErrInvalidInput.
var (
	// ErrNilNetwork is returned for a nil network.
	ErrNilNetwork = fmt.Errorf("%w: network is nil", ErrInvalidInput)

	// ErrSourceNotFound is returned when no source is designated.
	ErrSourceNotFound = fmt.Errorf("%w: source vertex not found", ErrInvalidInput)

	// ErrSinkNotFound is returned when no sink is designated.
	ErrSinkNotFound = fmt.Errorf("%w: sink vertex not found", ErrInvalidInput)

	// ErrDisconnected is returned when no directed path joins source to sink.
	ErrDisconnected = fmt.Errorf("%w: sink not reachable from source", ErrInvalidInput)
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// Unwrap classifies EdgeError as invalid input.
func (e EdgeError) Unwrap() error { return ErrInvalidInput }

// InvariantViolationError carries the diagnostic state of the vertex at
// which the push-relabel driver detected a broken invariant. It is fatal.
type InvariantViolationError struct {
	Vertex string
	Height int
	Excess float64
	Cache  []string // admissible-cache targets at the time of failure
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("flow: invariant violation at %q (height=%d excess=%g cache=%v): %s",
		e.Vertex, e.Height, e.Excess, e.Cache, e.Reason)
}

// Unwrap returns ErrInvariantViolation.
func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }

// ToleranceError reports a quantity that should be zero (or within bounds)
// but misses by more than Epsilon.
type ToleranceError struct {
	Vertex   string
	Quantity string
	Value    float64
	Epsilon  float64
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("flow: %s at %q is %g (epsilon %g)", e.Quantity, e.Vertex, e.Value, e.Epsilon)
}

// Unwrap returns ErrNumericTolerance.
func (e *ToleranceError) Unwrap() error { return ErrNumericTolerance }
