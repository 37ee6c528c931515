package geoip

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

type detector interface {
	Detect(ctx context.Context, ip string) (*valueobject.Locale, error)
}

// CachedDetector remembers successful lookups per IP. Failures are not cached.
type CachedDetector struct {
	next  detector
	cache *cache.Cache
}

func NewCachedDetector(next detector, ttl time.Duration) *CachedDetector {
	return &CachedDetector{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (d *CachedDetector) Detect(ctx context.Context, ip string) (*valueobject.Locale, error) {
	if cached, ok := d.cache.Get(ip); ok {
		loc := cached.(valueobject.Locale)
		return &loc, nil
	}

	loc, err := d.next.Detect(ctx, ip)
	if err != nil {
		return nil, err
	}
	d.cache.SetDefault(ip, *loc)
	return loc, nil
}
