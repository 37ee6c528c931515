package locating

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geolocation"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/mocklocation"
)

//go:generate mockgen -source=orchestrator.go -destination=../../mocks/locating_mocks.go -package=mocks

type MockLocations interface {
	GetMockLocation(ctx context.Context, scope mocklocation.Scope) (*valueobject.Location, error)
	IsUsingMockLocation(ctx context.Context, scope mocklocation.Scope) (bool, error)
	IsMockLocationSettingEnabled(ctx context.Context, scope mocklocation.Scope, isDomestic *bool) (bool, error)
	SetMockLocationSetting(ctx context.Context, scope mocklocation.Scope, enabled bool) error
	ShouldPrompt(ctx context.Context, scope mocklocation.Scope, isDomestic bool) (bool, error)
	CreateAndPersistMockLocation(ctx context.Context, scope mocklocation.Scope) (valueobject.Location, error)
	MarkPromptShown(ctx context.Context, scope mocklocation.Scope) error
	CenterLocation() valueobject.Location
}

type LocaleDetector interface {
	Detect(ctx context.Context, ip string) (*valueobject.Locale, error)
}

type PositionProvider interface {
	CurrentPosition(ctx context.Context, opts geolocation.Options) (valueobject.Position, error)
	WatchPosition(ctx context.Context, opts geolocation.Options) (*geolocation.Watch, error)
}

type Config struct {
	CurrentOptions   geolocation.Options
	WatchOptions     geolocation.Options
	WatchStartDelay  time.Duration
	LocaleCheckDelay time.Duration
	MinDistance      float64
	MinInterval      time.Duration
}

func DefaultConfig() Config {
	return Config{
		CurrentOptions: geolocation.Options{
			EnableHighAccuracy: true,
			Timeout:            15 * time.Second,
			MaximumAge:         5 * time.Minute,
		},
		WatchOptions: geolocation.Options{
			EnableHighAccuracy: true,
			Timeout:            30 * time.Second,
			MaximumAge:         5 * time.Minute,
		},
		WatchStartDelay:  2 * time.Second,
		LocaleCheckDelay: time.Second,
		MinDistance:      DefaultMinDistance,
		MinInterval:      DefaultMinInterval,
	}
}

// Orchestrator resolves the location shown for one map session. It always
// converges to some coordinate: the stored mock location, a device fix, or
// the catalog center.
type Orchestrator struct {
	scope     mocklocation.Scope
	clientIP  string
	mock      MockLocations
	positions PositionProvider
	locale    LocaleDetector
	cfg       Config
	logger    *zap.Logger
	now       func() time.Time

	lifetime context.Context
	stop     context.CancelFunc
	wg       sync.WaitGroup

	mu             sync.Mutex
	started        bool
	closed         bool
	localeChecked  bool
	phase          Phase
	prompt         PromptState
	current        *valueobject.Coordinate
	mockLocation   *valueobject.Location
	loading        bool
	usingMock      bool
	errMessage     string
	throttle       *Throttle
	watch          *geolocation.Watch
	cancelAcquire  context.CancelFunc
	acquireAttempt uint64
}

type OrchestratorParams struct {
	Scope     mocklocation.Scope
	ClientIP  string
	Mock      MockLocations
	Positions PositionProvider
	Locale    LocaleDetector
	Config    Config
	Logger    *zap.Logger
}

func NewOrchestrator(p OrchestratorParams) *Orchestrator {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lifetime, stop := context.WithCancel(context.Background())
	return &Orchestrator{
		scope:     p.Scope,
		clientIP:  p.ClientIP,
		mock:      p.Mock,
		positions: p.Positions,
		locale:    p.Locale,
		cfg:       p.Config,
		logger:    logger.With(zap.String("session_id", p.Scope.SessionID)),
		now:       time.Now,
		lifetime:  lifetime,
		stop:      stop,
		phase:     PhaseIdle,
		prompt:    PromptUnknown,
		throttle:  NewThrottle(p.Config.MinDistance, p.Config.MinInterval),
	}
}

// Start runs the mount sequence once. A stored mock location short-circuits
// device acquisition entirely; otherwise acquisition and the locale check
// continue in the background.
func (o *Orchestrator) Start(ctx context.Context) State {
	o.mu.Lock()
	if o.started || o.closed {
		defer o.mu.Unlock()
		return o.snapshotLocked()
	}
	o.started = true
	o.phase = PhaseCheckingMock
	o.loading = true
	o.mu.Unlock()

	if loc := o.storedMockLocation(ctx); loc != nil {
		o.mu.Lock()
		o.adoptMockLocked(*loc)
		o.mu.Unlock()
	} else {
		o.beginAcquisition()
	}

	o.mu.Lock()
	if !o.closed {
		o.spawn(o.checkLocale)
	}
	o.mu.Unlock()

	return o.Snapshot()
}

func (o *Orchestrator) storedMockLocation(ctx context.Context) *valueobject.Location {
	using, err := o.mock.IsUsingMockLocation(ctx, o.scope)
	if err != nil {
		o.logger.Warn("reading mock location flag", zap.Error(err))
		return nil
	}
	if !using {
		return nil
	}
	loc, err := o.mock.GetMockLocation(ctx, o.scope)
	if err != nil {
		o.logger.Warn("reading mock location", zap.Error(err))
		return nil
	}
	return loc
}

func (o *Orchestrator) spawn(fn func()) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		fn()
	}()
}

// sleep waits d or until the orchestrator closes. It reports whether the
// full delay elapsed.
func (o *Orchestrator) sleep(d time.Duration) bool {
	if d <= 0 {
		return o.lifetime.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-o.lifetime.Done():
		return false
	}
}

func (o *Orchestrator) beginAcquisition() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	if o.cancelAcquire != nil {
		o.cancelAcquire()
	}
	ctx, cancel := context.WithCancel(o.lifetime)
	o.cancelAcquire = cancel
	o.acquireAttempt++
	attempt := o.acquireAttempt
	o.phase = PhaseAcquiringReal
	o.loading = true
	o.spawn(func() {
		o.acquire(ctx, attempt)
	})
	o.mu.Unlock()
}

func (o *Orchestrator) acquire(ctx context.Context, attempt uint64) {
	pos, err := o.positions.CurrentPosition(ctx, o.cfg.CurrentOptions)

	o.mu.Lock()
	if o.usingMock || o.closed || attempt != o.acquireAttempt || ctx.Err() != nil {
		o.mu.Unlock()
		return
	}
	if err != nil {
		center := o.mock.CenterLocation().Coordinate()
		o.phase = PhaseFallback
		o.errMessage = fallbackMessage(err)
		o.current = &center
		o.loading = false
		o.mu.Unlock()

		o.logger.Warn("device geolocation failed, using fallback", zap.Error(err))
		if errors.Is(err, domain.ErrPermissionDenied) {
			return
		}
	} else {
		o.phase = PhaseRealAcquired
		o.errMessage = ""
		o.acceptRealLocked(pos)
		o.loading = false
		o.mu.Unlock()
	}

	if !o.sleep(o.cfg.WatchStartDelay) {
		return
	}
	o.startWatch(ctx)
}

func (o *Orchestrator) acceptRealLocked(pos valueobject.Position) bool {
	if !o.throttle.Allow(pos.Coordinate, o.now()) {
		return false
	}
	c := pos.Coordinate
	o.current = &c
	return true
}

// startWatch replaces any running watch; at most one is held at a time.
func (o *Orchestrator) startWatch(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.usingMock || o.closed || ctx.Err() != nil {
		return
	}
	o.stopWatchLocked()

	w, err := o.positions.WatchPosition(ctx, o.cfg.WatchOptions)
	if err != nil {
		o.logger.Warn("starting position watch", zap.Error(err))
		return
	}
	o.watch = w
	o.spawn(func() {
		o.consumeWatch(w)
	})
}

func (o *Orchestrator) consumeWatch(w *geolocation.Watch) {
	for res := range w.Results() {
		if res.Err != nil {
			o.logger.Debug("position watch error", zap.Error(res.Err))
			continue
		}

		o.mu.Lock()
		if o.watch != w || o.usingMock {
			o.mu.Unlock()
			continue
		}
		if o.acceptRealLocked(res.Position) && o.phase == PhaseFallback {
			o.phase = PhaseRealAcquired
			o.errMessage = ""
		}
		o.mu.Unlock()
	}
}

func (o *Orchestrator) stopWatchLocked() {
	if o.watch == nil {
		return
	}
	w := o.watch
	o.watch = nil
	w.Stop()
}

func (o *Orchestrator) checkLocale() {
	o.mu.Lock()
	if o.localeChecked || o.locale == nil {
		o.mu.Unlock()
		return
	}
	o.localeChecked = true
	o.mu.Unlock()

	if !o.sleep(o.cfg.LocaleCheckDelay) {
		return
	}

	eligible := false
	loc, err := o.locale.Detect(o.lifetime, o.clientIP)
	if err != nil {
		o.logger.Debug("locale detection failed", zap.String("ip", o.clientIP), zap.Error(err))
	} else {
		eligible, err = o.mock.ShouldPrompt(o.lifetime, o.scope, loc.IsDomestic)
		if err != nil {
			o.logger.Debug("evaluating mock location prompt", zap.Error(err))
			eligible = false
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.prompt != PromptUnknown {
		return
	}
	if eligible {
		o.prompt = PromptEligible
	} else {
		o.prompt = PromptNotEligible
	}
}

func (o *Orchestrator) adoptMockLocked(loc valueobject.Location) {
	c := loc.Coordinate()
	o.usingMock = true
	o.mockLocation = &loc
	o.current = &c
	o.loading = false
	o.errMessage = ""
	o.phase = PhaseMockActive
	if o.cancelAcquire != nil {
		o.cancelAcquire()
		o.cancelAcquire = nil
	}
	o.stopWatchLocked()
}

// AcceptMockLocation turns simulation on for the session. Mock wins over
// any acquisition still in flight.
func (o *Orchestrator) AcceptMockLocation(ctx context.Context) (valueobject.Location, error) {
	o.mu.Lock()
	switch {
	case o.closed:
		o.mu.Unlock()
		return valueobject.Location{}, domain.ErrSessionClosed
	case o.usingMock && o.mockLocation != nil:
		loc := *o.mockLocation
		o.mu.Unlock()
		return loc, nil
	}
	o.mu.Unlock()

	enabled, err := o.mock.IsMockLocationSettingEnabled(ctx, o.scope, nil)
	if err != nil {
		return valueobject.Location{}, err
	}
	if !enabled {
		return valueobject.Location{}, domain.ErrMockLocationDisabled
	}

	loc, err := o.mock.CreateAndPersistMockLocation(ctx, o.scope)
	if err != nil {
		return valueobject.Location{}, err
	}
	if err := o.mock.MarkPromptShown(ctx, o.scope); err != nil {
		o.logger.Warn("marking prompt shown", zap.Error(err))
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.adoptMockLocked(loc)
	o.prompt = PromptAccepted
	return loc, nil
}

// DeclineMockLocation records the answer; real acquisition is untouched.
func (o *Orchestrator) DeclineMockLocation(ctx context.Context) error {
	if o.isClosed() {
		return domain.ErrSessionClosed
	}
	if err := o.mock.MarkPromptShown(ctx, o.scope); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.prompt = PromptDeclined
	return nil
}

// LeaveMockLocation drops back to device acquisition after the durable
// setting was turned off.
func (o *Orchestrator) LeaveMockLocation() {
	o.mu.Lock()
	if !o.usingMock || o.closed {
		o.mu.Unlock()
		return
	}
	o.usingMock = false
	o.mockLocation = nil
	o.throttle.Reset()
	o.mu.Unlock()

	o.beginAcquisition()
}

func (o *Orchestrator) isClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() State {
	st := State{
		Phase:        o.phase,
		Prompt:       o.prompt,
		Loading:      o.loading,
		UsingMock:    o.usingMock,
		ErrorMessage: o.errMessage,
		LastUpdate:   o.throttle.LastAccepted(),
	}
	if o.current != nil {
		c := *o.current
		st.Current = &c
	}
	if o.mockLocation != nil {
		loc := *o.mockLocation
		st.MockLocation = &loc
	}
	return st
}

// Close cancels the watch and any background work and waits for it to end.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.stopWatchLocked()
	o.mu.Unlock()

	o.stop()
	o.wg.Wait()
}
