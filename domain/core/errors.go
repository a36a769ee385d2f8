package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// State errors
	ErrUnsetState = errors.New("required source state is not set")

	// Sampling errors
	ErrInvalidPacketCount = errors.New("invalid packet count")

	// Determinism errors
	ErrNonDeterministic = errors.New("non-deterministic result")
	ErrSeedMismatch     = errors.New("seed mismatch")
)

// NewUnsetStateError reports a sampling call made before the named
// physical quantity was assigned
func NewUnsetStateError(quantity string) error {
	return fmt.Errorf("%w: %s", ErrUnsetState, quantity)
}

// NewInvalidPacketCountError reports a negative packet count
func NewInvalidPacketCountError(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPacketCount, n)
}

// IsUnsetStateError checks whether err stems from unset source state
func IsUnsetStateError(err error) bool {
	return errors.Is(err, ErrUnsetState)
}

// IsDeterminismError checks whether err stems from broken reproducibility
func IsDeterminismError(err error) bool {
	return errors.Is(err, ErrNonDeterministic) ||
		errors.Is(err, ErrSeedMismatch)
}
