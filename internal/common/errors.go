// Package common defines shared constants and sentinel errors used across
// the revista client layers. Callers should use errors.Is to match these
// values; call sites wrap them with %w plus the offending field or operation
// so the failure kind stays distinguishable for the user.
package common

import "errors"

var (
	// Validation errors, raised before any network call when possible.
	ErrValidation          = errors.New("validation error")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// Authentication / authorization.
	ErrAuth          = errors.New("invalid credentials")
	ErrAuthorization = errors.New("not authorized")
	ErrInvalidToken  = errors.New("invalid token")

	// Workflow errors reported by the collaborator.
	ErrConflict               = errors.New("already registered")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotFound               = errors.New("not found")

	// Transport / collaborator failures.
	ErrUnavailable = errors.New("server unavailable")
)
