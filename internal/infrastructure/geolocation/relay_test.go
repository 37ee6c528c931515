package geolocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geolocation"
)

func fix(lat, lng float64) valueobject.Position {
	return valueobject.NewPosition(lat, lng, nil, time.Now())
}

func waitForSubscribers(t *testing.T, r *geolocation.Relay, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return r.Subscribers() >= n }, time.Second, 5*time.Millisecond)
}

func TestErrorFromCode(t *testing.T) {
	assert.ErrorIs(t, geolocation.ErrorFromCode(geolocation.CodePermissionDenied), domain.ErrPermissionDenied)
	assert.ErrorIs(t, geolocation.ErrorFromCode(geolocation.CodePositionUnavailable), domain.ErrPositionUnavailable)
	assert.ErrorIs(t, geolocation.ErrorFromCode(geolocation.CodeTimeout), domain.ErrPositionTimeout)
	assert.ErrorIs(t, geolocation.ErrorFromCode(42), domain.ErrPositionUnavailable)
}

func TestRelay_CurrentPosition(t *testing.T) {
	ctx := context.Background()

	t.Run("waits for the next report", func(t *testing.T) {
		r := geolocation.NewRelay()
		done := make(chan valueobject.Position, 1)
		go func() {
			pos, err := r.CurrentPosition(ctx, geolocation.Options{Timeout: time.Second})
			assert.NoError(t, err)
			done <- pos
		}()

		waitForSubscribers(t, r, 1)
		r.ReportPosition(fix(10.1, 106.1))

		select {
		case pos := <-done:
			assert.Equal(t, 10.1, pos.Lat)
		case <-time.After(time.Second):
			t.Fatal("no position delivered")
		}
		assert.Zero(t, r.Subscribers())
	})

	t.Run("returns a fresh cached fix immediately", func(t *testing.T) {
		r := geolocation.NewRelay()
		r.ReportPosition(fix(10.2, 106.2))

		pos, err := r.CurrentPosition(ctx, geolocation.Options{Timeout: time.Millisecond, MaximumAge: time.Minute})
		require.NoError(t, err)
		assert.Equal(t, 10.2, pos.Lat)
	})

	t.Run("ignores cache when maximum age is zero", func(t *testing.T) {
		r := geolocation.NewRelay()
		r.ReportPosition(fix(10.2, 106.2))

		_, err := r.CurrentPosition(ctx, geolocation.Options{Timeout: 10 * time.Millisecond})
		assert.ErrorIs(t, err, domain.ErrPositionTimeout)
	})

	t.Run("times out", func(t *testing.T) {
		r := geolocation.NewRelay()
		_, err := r.CurrentPosition(ctx, geolocation.Options{Timeout: 10 * time.Millisecond})
		assert.ErrorIs(t, err, domain.ErrPositionTimeout)
	})

	t.Run("delivers reported errors", func(t *testing.T) {
		r := geolocation.NewRelay()
		errc := make(chan error, 1)
		go func() {
			_, err := r.CurrentPosition(ctx, geolocation.Options{Timeout: time.Second})
			errc <- err
		}()

		waitForSubscribers(t, r, 1)
		r.ReportError(geolocation.CodePermissionDenied)
		assert.ErrorIs(t, <-errc, domain.ErrPermissionDenied)
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		r := geolocation.NewRelay()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := r.CurrentPosition(cctx, geolocation.Options{Timeout: time.Second})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("fails once closed", func(t *testing.T) {
		r := geolocation.NewRelay()
		r.Close()

		_, err := r.CurrentPosition(ctx, geolocation.Options{Timeout: time.Second})
		assert.ErrorIs(t, err, domain.ErrPositionUnavailable)
	})
}

func TestRelay_WatchPosition(t *testing.T) {
	ctx := context.Background()

	t.Run("streams every report", func(t *testing.T) {
		r := geolocation.NewRelay()
		w, err := r.WatchPosition(ctx, geolocation.Options{})
		require.NoError(t, err)
		defer w.Stop()

		waitForSubscribers(t, r, 1)
		r.ReportPosition(fix(1, 1))
		r.ReportPosition(fix(2, 2))

		first := <-w.Results()
		second := <-w.Results()
		assert.Equal(t, 1.0, first.Position.Lat)
		assert.Equal(t, 2.0, second.Position.Lat)
	})

	t.Run("emits timeout when reports stop", func(t *testing.T) {
		r := geolocation.NewRelay()
		w, err := r.WatchPosition(ctx, geolocation.Options{Timeout: 10 * time.Millisecond})
		require.NoError(t, err)
		defer w.Stop()

		select {
		case res := <-w.Results():
			assert.ErrorIs(t, res.Err, domain.ErrPositionTimeout)
		case <-time.After(time.Second):
			t.Fatal("no timeout emitted")
		}
	})

	t.Run("stop detaches and closes results", func(t *testing.T) {
		r := geolocation.NewRelay()
		w, err := r.WatchPosition(ctx, geolocation.Options{})
		require.NoError(t, err)
		waitForSubscribers(t, r, 1)

		w.Stop()
		w.Stop()

		_, open := <-w.Results()
		assert.False(t, open)
		assert.Zero(t, r.Subscribers())
	})

	t.Run("refuses a closed relay", func(t *testing.T) {
		r := geolocation.NewRelay()
		r.Close()

		_, err := r.WatchPosition(ctx, geolocation.Options{})
		assert.ErrorIs(t, err, domain.ErrSessionClosed)
	})
}

func TestHub(t *testing.T) {
	h := geolocation.NewHub()

	a := h.Relay("a")
	assert.Same(t, a, h.Relay("a"))
	assert.NotSame(t, a, h.Relay("b"))
	assert.Equal(t, 2, h.Len())

	h.Remove("a")
	h.Remove("missing")
	assert.Equal(t, 1, h.Len())

	_, err := a.WatchPosition(context.Background(), geolocation.Options{})
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
}
