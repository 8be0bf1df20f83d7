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
	SnapshotID ID
	RequestID  ID
)

func (id SnapshotID) String() string { return ID(id).String() }
func (id RequestID) String() string  { return ID(id).String() }

// NewRequestID returns a fresh identifier for one API request.
func NewRequestID() RequestID {
	return RequestID(NewID())
}

// ParseSnapshotID parses a string into SnapshotID
func ParseSnapshotID(s string) (SnapshotID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("snapshot ID cannot be empty")
	}
	return SnapshotID(s), nil
}
