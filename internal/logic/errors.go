package logic

import "errors"

var (
	ErrMatchNotFound  = errors.New("match not open for tracking")
	ErrNotConvened    = errors.New("athlete not convened")
	ErrUnknownAthlete = errors.New("athlete not valid for this match")
	ErrNotInPool      = errors.New("athlete not in team pool")

	// ErrRosterFull and ErrEventNotFound are never returned: a toggle at the
	// cap reports ToggleFull and Remove of an unknown event returns false.
	// They name the condition in logs.
	ErrRosterFull    = errors.New("roster full")
	ErrEventNotFound = errors.New("event not found")
)
