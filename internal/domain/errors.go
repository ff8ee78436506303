package domain

import "errors"

var (
	ErrMissingCredential = errors.New("missing toggl api token")
	ErrSecretNotFound    = errors.New("secret not found")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrInvalidEntry      = errors.New("invalid time entry")
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrUnauthorized      = errors.New("toggl rejected the api token")
)
