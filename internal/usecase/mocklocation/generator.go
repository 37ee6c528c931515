package mocklocation

import (
	"math/rand/v2"
	"sync"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

// Generator derives simulated locations from the catalog. Safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate picks a catalog entry uniformly and jitters both axes by up to
// MaxJitter. Address and district are copied from the seed.
func (g *Generator) Generate() valueobject.Location {
	g.mu.Lock()
	idx := g.rng.IntN(len(catalog))
	dLat := (g.rng.Float64()*2 - 1) * MaxJitter
	dLng := (g.rng.Float64()*2 - 1) * MaxJitter
	g.mu.Unlock()

	seed := catalog[idx]
	return valueobject.NewLocation(seed.Latitude+dLat, seed.Longitude+dLng, seed.Address, seed.District)
}
