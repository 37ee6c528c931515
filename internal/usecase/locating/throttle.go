package locating

import (
	"time"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

const (
	DefaultMinDistance = 50.0
	DefaultMinInterval = 10 * time.Second
)

// Throttle drops location updates that neither moved far enough nor came
// late enough after the last accepted one. Not safe for concurrent use.
type Throttle struct {
	minDistance float64
	minInterval time.Duration

	last     *valueobject.Coordinate
	lastTime time.Time
}

func NewThrottle(minDistance float64, minInterval time.Duration) *Throttle {
	return &Throttle{
		minDistance: minDistance,
		minInterval: minInterval,
	}
}

// Allow records c as the latest accepted update when it passes either threshold.
func (t *Throttle) Allow(c valueobject.Coordinate, now time.Time) bool {
	if t.last != nil {
		moved := valueobject.ApproxDistanceMeters(*t.last, c)
		if moved <= t.minDistance && now.Sub(t.lastTime) <= t.minInterval {
			return false
		}
	}
	t.last = &c
	t.lastTime = now
	return true
}

func (t *Throttle) LastAccepted() time.Time {
	return t.lastTime
}

func (t *Throttle) Reset() {
	t.last = nil
	t.lastTime = time.Time{}
}
