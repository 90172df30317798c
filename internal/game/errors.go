package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when the player or card counts are
	// out of bounds. No round is built from an invalid configuration.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidAction is returned for actions that are not legal in the
	// current state. Rejected actions never change the session.
	ErrInvalidAction = errors.New("invalid action")
)
