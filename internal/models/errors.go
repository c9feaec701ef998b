package models

import "errors"

var (
	// ErrUnknownShotType is returned for a shot type outside the catalog.
	ErrUnknownShotType = errors.New("unknown shot type")
	// ErrInvalidEvent is returned for an event missing a required field.
	ErrInvalidEvent = errors.New("invalid event")
)
