// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails a domain rule.
	// Specific validation errors wrap it, so errors.Is(err, ErrValidation)
	// identifies every client-side mistake.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a path identifier is not a valid key.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrInvalidSortColumn is returned when sort_by is outside the allow-list.
	ErrInvalidSortColumn = fmt.Errorf("%w: invalid sort column", ErrValidation)

	// ErrInvalidSortOrder is returned when order is neither asc nor desc.
	ErrInvalidSortOrder = fmt.Errorf("%w: invalid sort order", ErrValidation)

	// ErrInvalidVoteDelta is returned when inc_votes is not an integer.
	ErrInvalidVoteDelta = fmt.Errorf("%w: invalid vote delta", ErrValidation)
)
