package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// BatchID identifies one generated packet batch.
	BatchID ID
	// SourceID identifies a packet source instance across a simulation run.
	SourceID ID
)

func (id BatchID) String() string  { return ID(id).String() }
func (id SourceID) String() string { return ID(id).String() }

// NewBatchID creates a fresh batch identifier
func NewBatchID() BatchID { return BatchID(NewID()) }

// NewSourceID creates a fresh source identifier
func NewSourceID() SourceID { return SourceID(NewID()) }

// ParseBatchID parses a string into BatchID
func ParseBatchID(s string) (BatchID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("batch ID cannot be empty")
	}
	return BatchID(s), nil
}
