package domain

import "errors"

var (
	ErrKeyNotFound          = errors.New("key not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionClosed        = errors.New("session closed")
	ErrInvalidLocation      = errors.New("invalid location")
	ErrInvalidBoundingBox   = errors.New("invalid bounding box")
	ErrPermissionDenied     = errors.New("location permission denied")
	ErrPositionUnavailable  = errors.New("position unavailable")
	ErrPositionTimeout      = errors.New("position request timed out")
	ErrLocaleLookup         = errors.New("locale lookup failed")
	ErrMockLocationDisabled = errors.New("mock location disabled")
)
