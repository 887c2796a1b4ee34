// Package common defines shared constants and sentinel errors used across
// client and server layers of Love OS. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors (blocked before any store call).
	ErrValidation = errors.New("validation error")

	// ErrStorageUpload marks a failure of the binary storage collaborator.
	// It is distinct from a table-store write failure so the submission flow
	// can report the two independently.
	ErrStorageUpload = errors.New("storage upload failed")

	// Auth errors.
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidPasscode   = errors.New("invalid passcode")
	ErrUnknownSpace      = errors.New("unknown space")
	ErrAttachmentTooBig  = errors.New("attachment exceeds size limit")
	ErrSubscriptionLost  = errors.New("change feed subscription lost")
	ErrControllerTornDown = errors.New("controller has been torn down")
)
