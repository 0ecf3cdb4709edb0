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
	// Falls back to v4 if v7 is not available (for compatibility)
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
	RunID      ID
	PatternID  ID
	AnalogyID  ID
	BeliefID   ID
	TransferID ID
)

// String conversions for domain IDs
func (id RunID) String() string      { return ID(id).String() }
func (id PatternID) String() string  { return ID(id).String() }
func (id AnalogyID) String() string  { return ID(id).String() }
func (id BeliefID) String() string   { return ID(id).String() }
func (id TransferID) String() string { return ID(id).String() }

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}

// ParsePatternID parses a string into PatternID
func ParsePatternID(s string) (PatternID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("pattern ID cannot be empty")
	}
	return PatternID(s), nil
}

// ParseBeliefID parses a string into BeliefID
func ParseBeliefID(s string) (BeliefID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("belief ID cannot be empty")
	}
	return BeliefID(s), nil
}
