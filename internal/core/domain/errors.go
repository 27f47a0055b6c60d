package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced campaign does not exist.
	ErrNotFound = errors.New("campaign not found")

	// ErrVariantNotFound is returned when a referenced variant does not
	// exist within its campaign.
	ErrVariantNotFound = errors.New("variant not found")

	// ErrInvalidCampaign rejects writes that violate campaign invariants.
	ErrInvalidCampaign = errors.New("invalid campaign")

	// ErrDuplicateEmail rejects registration with an email already on file.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
