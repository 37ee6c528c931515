package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
)

// AppError is an error with a stable API code and the HTTP status it
// maps to.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

type mapping struct {
	sentinel error
	code     string
	message  string
	status   int
}

// Order matters only for errors that wrap more than one sentinel.
var mappings = []mapping{
	{domain.ErrSessionNotFound, "SESSION_NOT_FOUND", "map session not mounted", http.StatusNotFound},
	{domain.ErrSessionClosed, "SESSION_CLOSED", "map session closed", http.StatusGone},
	{domain.ErrInvalidLocation, "BAD_REQUEST", "invalid coordinates", http.StatusBadRequest},
	{domain.ErrInvalidBoundingBox, "BAD_REQUEST", "invalid bounding box", http.StatusBadRequest},
	{domain.ErrMockLocationDisabled, "MOCK_LOCATION_DISABLED", "mock location is disabled for this profile", http.StatusConflict},
}

// FromDomain translates the sentinel errors the map use cases return.
// It returns nil for errors it does not know.
func FromDomain(err error) *AppError {
	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			return &AppError{Code: m.code, Message: m.message, StatusCode: m.status, Err: err}
		}
	}
	return nil
}
