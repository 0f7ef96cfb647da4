package model

import "errors"

// Configuration errors indicate corrupted upstream data and are never
// absorbed silently.
var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrUnknownPerfClass = errors.New("unknown performance class")
	ErrUnknownGender    = errors.New("unknown gender")
	ErrInvalidSettings  = errors.New("invalid settings")
)
