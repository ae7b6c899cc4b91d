package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Entity errors
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is inactive")
	ErrInvalidToken = errors.New("invalid authentication token")

	// Validation errors
	ErrStatusRequired  = errors.New("status is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrTitleRequired   = errors.New("title is required")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidDate     = errors.New("invalid date")

	// ErrConflict signals a concurrent modification: the row changed between
	// read and write. Row locks inside the transaction make this rare, but
	// the write guard keeps a lost update from slipping through.
	ErrConflict = errors.New("concurrent modification detected")
)
