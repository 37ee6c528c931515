package mocklocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

const (
	KeyMockLocation = "mockLocation"
	KeyUsingMock    = "usingMockLocation"
	KeyPromptShown  = "map-location-prompt-shown"
	KeyMockEnabled  = "mockLocationEnabled"
	valueTrue       = "true"
	valueFalse      = "false"
)

// Scope identifies the two storage scopes a request works against.
type Scope struct {
	SessionID string
	ProfileID string
}

func ScopeFromSession(s *entity.MapSession) Scope {
	return Scope{SessionID: s.ID, ProfileID: s.ProfileID}
}

type Service struct {
	session   repository.SessionStore
	settings  repository.SettingsRepository
	generator *Generator
}

func NewService(session repository.SessionStore, settings repository.SettingsRepository, generator *Generator) *Service {
	if generator == nil {
		generator = NewGenerator(nil)
	}
	return &Service{
		session:   session,
		settings:  settings,
		generator: generator,
	}
}

func (s *Service) GenerateRandomLocation() valueobject.Location {
	return s.generator.Generate()
}

func (s *Service) CenterLocation() valueobject.Location {
	return CenterLocation()
}

func (s *Service) sessionFlag(ctx context.Context, sessionID, key string) (bool, error) {
	value, err := s.session.Get(ctx, sessionID, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value == valueTrue, nil
}

// ReadMockLocation reports the raw state of the stored mock location,
// distinguishing an absent value from one that fails to decode.
func (s *Service) ReadMockLocation(ctx context.Context, scope Scope) (StoredLocation, error) {
	raw, err := s.session.Get(ctx, scope.SessionID, KeyMockLocation)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return StoredLocation{Status: StoredAbsent}, nil
		}
		return StoredLocation{}, fmt.Errorf("reading mock location: %w", err)
	}
	return decodeStoredLocation(raw), nil
}

// GetMockLocation returns nil when no usable mock location is stored.
// A corrupted value reads as absent; it is left in place, not repaired.
func (s *Service) GetMockLocation(ctx context.Context, scope Scope) (*valueobject.Location, error) {
	stored, err := s.ReadMockLocation(ctx, scope)
	if err != nil {
		return nil, err
	}
	if stored.Status != StoredPresent {
		return nil, nil
	}
	loc := stored.Location
	return &loc, nil
}

func (s *Service) SaveMockLocation(ctx context.Context, scope Scope, loc valueobject.Location) error {
	if !loc.IsValid() {
		return domain.ErrInvalidLocation
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("encoding mock location: %w", err)
	}
	if err := s.session.Set(ctx, scope.SessionID, KeyMockLocation, string(payload)); err != nil {
		return fmt.Errorf("saving mock location: %w", err)
	}
	if err := s.session.Set(ctx, scope.SessionID, KeyUsingMock, valueTrue); err != nil {
		return fmt.Errorf("saving mock flag: %w", err)
	}
	return nil
}

func (s *Service) IsUsingMockLocation(ctx context.Context, scope Scope) (bool, error) {
	return s.sessionFlag(ctx, scope.SessionID, KeyUsingMock)
}

func (s *Service) ClearMockLocation(ctx context.Context, scope Scope) error {
	if err := s.session.Delete(ctx, scope.SessionID, KeyMockLocation, KeyUsingMock); err != nil {
		return fmt.Errorf("clearing mock location: %w", err)
	}
	return nil
}

// IsMockLocationSettingEnabled returns the explicit durable choice when one
// exists. Otherwise the feature defaults to enabled unless the caller knows
// the user is domestic; a nil isDomestic means unknown.
func (s *Service) IsMockLocationSettingEnabled(ctx context.Context, scope Scope, isDomestic *bool) (bool, error) {
	setting, err := s.settings.Get(ctx, scope.ProfileID, KeyMockEnabled)
	if err == nil {
		return setting.Value == valueTrue, nil
	}
	if !errors.Is(err, domain.ErrKeyNotFound) {
		return false, fmt.Errorf("reading mock location setting: %w", err)
	}
	return isDomestic == nil || !*isDomestic, nil
}

// SetMockLocationSetting persists the choice. Disabling also leaves mock
// mode for the current session.
func (s *Service) SetMockLocationSetting(ctx context.Context, scope Scope, enabled bool) error {
	value := valueFalse
	if enabled {
		value = valueTrue
	}
	if err := s.settings.Upsert(ctx, entity.NewProfileSetting(scope.ProfileID, KeyMockEnabled, value)); err != nil {
		return fmt.Errorf("saving mock location setting: %w", err)
	}
	if enabled {
		return nil
	}

	using, err := s.IsUsingMockLocation(ctx, scope)
	if err != nil {
		return err
	}
	if using {
		return s.ClearMockLocation(ctx, scope)
	}
	return nil
}

func (s *Service) IsPromptShown(ctx context.Context, scope Scope) (bool, error) {
	return s.sessionFlag(ctx, scope.SessionID, KeyPromptShown)
}

func (s *Service) MarkPromptShown(ctx context.Context, scope Scope) error {
	if err := s.session.Set(ctx, scope.SessionID, KeyPromptShown, valueTrue); err != nil {
		return fmt.Errorf("marking prompt shown: %w", err)
	}
	return nil
}

// CreateAndPersistMockLocation is the single entry point for turning
// simulation on.
func (s *Service) CreateAndPersistMockLocation(ctx context.Context, scope Scope) (valueobject.Location, error) {
	loc := s.generator.Generate()
	if err := s.SaveMockLocation(ctx, scope, loc); err != nil {
		return valueobject.Location{}, err
	}
	return loc, nil
}

// ShouldPrompt decides whether to offer a simulated location. Checks run
// cheapest first and stop at the first negative; nothing is written.
func (s *Service) ShouldPrompt(ctx context.Context, scope Scope, isDomestic bool) (bool, error) {
	if isDomestic {
		return false, nil
	}

	enabled, err := s.IsMockLocationSettingEnabled(ctx, scope, &isDomestic)
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, nil
	}

	using, err := s.IsUsingMockLocation(ctx, scope)
	if err != nil {
		return false, err
	}
	if using {
		return false, nil
	}

	shown, err := s.IsPromptShown(ctx, scope)
	if err != nil {
		return false, err
	}
	return !shown, nil
}
