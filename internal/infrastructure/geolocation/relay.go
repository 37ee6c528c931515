package geolocation

import (
	"context"
	"sync"
	"time"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

// Browser geolocation error codes.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

const subscriberBuffer = 8

// Options mirrors the browser PositionOptions shape.
type Options struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// Result is either a fix or an acquisition error.
type Result struct {
	Position valueobject.Position
	Err      error
}

func ErrorFromCode(code int) error {
	switch code {
	case CodePermissionDenied:
		return domain.ErrPermissionDenied
	case CodeTimeout:
		return domain.ErrPositionTimeout
	default:
		return domain.ErrPositionUnavailable
	}
}

// Relay carries the fixes a browser reports for one session to whoever is
// waiting on them.
type Relay struct {
	mu     sync.Mutex
	last   *valueobject.Position
	subs   map[uint64]chan Result
	nextID uint64
	closed bool
	now    func() time.Time
}

func NewRelay() *Relay {
	return &Relay{
		subs: make(map[uint64]chan Result),
		now:  time.Now,
	}
}

func (r *Relay) Publish(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if res.Err == nil {
		if res.Position.Timestamp.IsZero() {
			res.Position.Timestamp = r.now()
		}
		pos := res.Position
		r.last = &pos
	}
	for _, ch := range r.subs {
		select {
		case ch <- res:
		default:
		}
	}
}

func (r *Relay) ReportPosition(pos valueobject.Position) {
	r.Publish(Result{Position: pos})
}

func (r *Relay) ReportError(code int) {
	r.Publish(Result{Err: ErrorFromCode(code)})
}

func (r *Relay) subscribe() (uint64, <-chan Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, nil, false
	}
	r.nextID++
	ch := make(chan Result, subscriberBuffer)
	r.subs[r.nextID] = ch
	return r.nextID, ch, true
}

func (r *Relay) unsubscribe(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, id)
}

// cached returns the last fix if it is no older than maxAge.
func (r *Relay) cached(maxAge time.Duration) (valueobject.Position, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil || maxAge <= 0 {
		return valueobject.Position{}, false
	}
	if r.now().Sub(r.last.Timestamp) > maxAge {
		return valueobject.Position{}, false
	}
	return *r.last, true
}

// CurrentPosition returns a cached fix within opts.MaximumAge, or waits for
// the next report up to opts.Timeout.
func (r *Relay) CurrentPosition(ctx context.Context, opts Options) (valueobject.Position, error) {
	if pos, ok := r.cached(opts.MaximumAge); ok {
		return pos, nil
	}

	id, ch, ok := r.subscribe()
	if !ok {
		return valueobject.Position{}, domain.ErrPositionUnavailable
	}
	defer r.unsubscribe(id)

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case res := <-ch:
		return res.Position, res.Err
	case <-timeout:
		return valueobject.Position{}, domain.ErrPositionTimeout
	case <-ctx.Done():
		return valueobject.Position{}, ctx.Err()
	}
}

// WatchPosition streams reports until the watch is stopped, ctx ends or the
// relay closes. A timeout error is emitted whenever opts.Timeout passes
// without a report.
func (r *Relay) WatchPosition(ctx context.Context, opts Options) (*Watch, error) {
	id, ch, ok := r.subscribe()
	if !ok {
		return nil, domain.ErrSessionClosed
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w := &Watch{
		results: make(chan Result, subscriberBuffer),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	initial, hasInitial := r.cached(opts.MaximumAge)

	go func() {
		defer close(w.done)
		defer close(w.results)
		defer r.unsubscribe(id)

		if hasInitial {
			w.emit(watchCtx, Result{Position: initial})
		}

		var timer *time.Timer
		var timeout <-chan time.Time
		if opts.Timeout > 0 {
			timer = time.NewTimer(opts.Timeout)
			defer timer.Stop()
			timeout = timer.C
		}

		for {
			select {
			case <-watchCtx.Done():
				return
			case res := <-ch:
				if timer != nil {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(opts.Timeout)
				}
				w.emit(watchCtx, res)
			case <-timeout:
				w.emit(watchCtx, Result{Err: domain.ErrPositionTimeout})
				timer.Reset(opts.Timeout)
			}
		}
	}()

	return w, nil
}

// Subscribers reports how many waiters are currently attached.
func (r *Relay) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Close stops delivery to every waiter. Pending CurrentPosition calls end
// on their own timeout or context.
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.subs = make(map[uint64]chan Result)
}

// Watch is a running position subscription. Results is closed after Stop.
type Watch struct {
	results chan Result
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

func (w *Watch) Results() <-chan Result {
	return w.results
}

func (w *Watch) emit(ctx context.Context, res Result) {
	select {
	case w.results <- res:
	case <-ctx.Done():
	}
}

// Stop cancels the subscription and waits for its goroutine to exit. Safe
// to call more than once.
func (w *Watch) Stop() {
	w.once.Do(func() {
		w.cancel()
		<-w.done
	})
}
