package skiplist

import (
	"math/rand"
	"time"
)

// Option configures a Map.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func defaultConfig() config {
	return config{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand sets the source of coin flips. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("skiplist: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds the coin flips for a reproducible tower layout.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
