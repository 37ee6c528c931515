package locating

import (
	"errors"
	"time"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseCheckingMock  Phase = "checking_mock"
	PhaseMockActive    Phase = "mock_active"
	PhaseAcquiringReal Phase = "acquiring_real"
	PhaseRealAcquired  Phase = "real_acquired"
	PhaseFallback      Phase = "fallback"
)

type PromptState string

const (
	PromptUnknown     PromptState = "unknown"
	PromptEligible    PromptState = "eligible"
	PromptNotEligible PromptState = "not_eligible"
	PromptAccepted    PromptState = "accepted"
	PromptDeclined    PromptState = "declined"
)

// State is a point-in-time view of an orchestrator.
type State struct {
	Phase        Phase
	Prompt       PromptState
	Current      *valueobject.Coordinate
	MockLocation *valueobject.Location
	Loading      bool
	UsingMock    bool
	ErrorMessage string
	LastUpdate   time.Time
}

func fallbackMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return "Location access was denied. Showing the default area instead."
	case errors.Is(err, domain.ErrPositionUnavailable):
		return "Your position is currently unavailable. Showing the default area instead."
	case errors.Is(err, domain.ErrPositionTimeout):
		return "Finding your position took too long. Showing the default area instead."
	default:
		return "Could not determine your position. Showing the default area instead."
	}
}
