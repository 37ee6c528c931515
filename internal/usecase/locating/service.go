package locating

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geolocation"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/mocklocation"
)

// Service keeps one Orchestrator per mounted map session. Sessions idle for
// longer than the configured TTL are closed and forgotten.
type Service struct {
	mock     MockLocations
	hub      *geolocation.Hub
	locale   LocaleDetector
	cfg      Config
	logger   *zap.Logger
	sessions *cache.Cache
}

type ServiceParams struct {
	Mock    MockLocations
	Hub     *geolocation.Hub
	Locale  LocaleDetector
	Config  Config
	Logger  *zap.Logger
	IdleTTL time.Duration
	Cleanup time.Duration
}

func NewService(p ServiceParams) *Service {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		mock:     p.Mock,
		hub:      p.Hub,
		locale:   p.Locale,
		cfg:      p.Config,
		logger:   logger,
		sessions: cache.New(p.IdleTTL, p.Cleanup),
	}
	s.sessions.OnEvicted(func(sessionID string, v any) {
		v.(*Orchestrator).Close()
		s.hub.Remove(sessionID)
		s.logger.Debug("map session closed", zap.String("session_id", sessionID))
	})
	return s
}

type MountInput struct {
	Session  *entity.MapSession
	ClientIP string
}

// Mount starts, or touches, the orchestrator for a session.
func (s *Service) Mount(ctx context.Context, input MountInput) (State, error) {
	id := input.Session.ID
	if v, ok := s.sessions.Get(id); ok {
		o := v.(*Orchestrator)
		s.sessions.SetDefault(id, o)
		return o.Snapshot(), nil
	}
	// An expired entry stays in the cache until the janitor runs, and Add
	// would overwrite it without closing its orchestrator.
	s.sessions.DeleteExpired()

	o := NewOrchestrator(OrchestratorParams{
		Scope:     mocklocation.ScopeFromSession(input.Session),
		ClientIP:  input.ClientIP,
		Mock:      s.mock,
		Positions: s.hub.Relay(id),
		Locale:    s.locale,
		Config:    s.cfg,
		Logger:    s.logger,
	})
	if err := s.sessions.Add(id, o, cache.DefaultExpiration); err != nil {
		// Lost a race with a concurrent mount of the same session.
		o.Close()
		v, ok := s.sessions.Get(id)
		if !ok {
			return State{}, fmt.Errorf("mounting session: %w", err)
		}
		return v.(*Orchestrator).Snapshot(), nil
	}

	return o.Start(ctx), nil
}

func (s *Service) lookup(sessionID string) (*Orchestrator, error) {
	v, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	o := v.(*Orchestrator)
	s.sessions.SetDefault(sessionID, o)
	return o, nil
}

func (s *Service) State(_ context.Context, sessionID string) (State, error) {
	o, err := s.lookup(sessionID)
	if err != nil {
		return State{}, err
	}
	return o.Snapshot(), nil
}

// Unmount tears the session down and cancels its position watch.
func (s *Service) Unmount(_ context.Context, sessionID string) error {
	if _, ok := s.sessions.Get(sessionID); !ok {
		return domain.ErrSessionNotFound
	}
	s.sessions.Delete(sessionID)
	return nil
}

type PositionReport struct {
	SessionID string
	Position  *valueobject.Position
	ErrorCode int
}

// ReportPosition forwards a browser fix or geolocation error to whoever is
// waiting on the session.
func (s *Service) ReportPosition(_ context.Context, report PositionReport) error {
	if _, err := s.lookup(report.SessionID); err != nil {
		return err
	}
	relay := s.hub.Relay(report.SessionID)
	if report.Position != nil {
		if !report.Position.IsValid() {
			return domain.ErrInvalidLocation
		}
		relay.ReportPosition(*report.Position)
		return nil
	}
	relay.ReportError(report.ErrorCode)
	return nil
}

func (s *Service) AcceptMockLocation(ctx context.Context, sessionID string) (valueobject.Location, error) {
	o, err := s.lookup(sessionID)
	if err != nil {
		return valueobject.Location{}, err
	}
	return o.AcceptMockLocation(ctx)
}

func (s *Service) DeclineMockLocation(ctx context.Context, sessionID string) error {
	o, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	return o.DeclineMockLocation(ctx)
}

// SetMockLocationEnabled persists the durable choice. Turning it off makes
// a mounted session leave mock mode right away.
func (s *Service) SetMockLocationEnabled(ctx context.Context, session *entity.MapSession, enabled bool) error {
	if err := s.mock.SetMockLocationSetting(ctx, mocklocation.ScopeFromSession(session), enabled); err != nil {
		return err
	}
	if enabled {
		return nil
	}
	if v, ok := s.sessions.Get(session.ID); ok {
		v.(*Orchestrator).LeaveMockLocation()
	}
	return nil
}

func (s *Service) MockLocationEnabled(ctx context.Context, session *entity.MapSession) (bool, error) {
	return s.mock.IsMockLocationSettingEnabled(ctx, mocklocation.ScopeFromSession(session), nil)
}

func (s *Service) ActiveSessions() int {
	return s.sessions.ItemCount()
}

// Close tears down every mounted session, including expired ones the
// janitor has not reached yet.
func (s *Service) Close() {
	s.sessions.DeleteExpired()
	for id := range s.sessions.Items() {
		s.sessions.Delete(id)
	}
}
