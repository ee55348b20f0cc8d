package mt64

import "time"

// SeedProvider supplies the seed for a new engine.
type SeedProvider interface {
	Seed() uint64
}

// SeedFunc adapts a function to SeedProvider.
type SeedFunc func() uint64

// Seed calls f.
func (f SeedFunc) Seed() uint64 {
	return f()
}

// FixedSeed always provides the same seed.
type FixedSeed uint64

// Seed returns s.
func (s FixedSeed) Seed() uint64 {
	return uint64(s)
}

// ClockSeed derives seeds from the wall clock in Unix milliseconds.
type ClockSeed struct {
	// Now returns the current time.
	// Default: time.Now
	Now func() time.Time
}

// Seed returns the current time in milliseconds since the Unix epoch.
func (c ClockSeed) Seed() uint64 {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return uint64(now().UnixMilli())
}

// Config configures engine construction.
type Config struct {
	// Seed initializes the state when Provider is nil.
	// Default: DefaultSeed
	Seed uint64

	// Provider supplies the seed at construction time and takes precedence
	// over Seed.
	// Default: nil
	Provider SeedProvider
}

// DefaultConfig returns a configuration that seeds with DefaultSeed.
func DefaultConfig() Config {
	return Config{
		Seed: DefaultSeed,
	}
}

// NewWithConfig creates an engine from cfg.
func NewWithConfig(cfg Config) *Engine {
	if cfg.Provider != nil {
		return New(cfg.Provider.Seed())
	}
	return New(cfg.Seed)
}

// NewFromProvider creates an engine seeded by p. A nil provider falls back
// to ClockSeed.
func NewFromProvider(p SeedProvider) *Engine {
	if p == nil {
		p = ClockSeed{}
	}
	return New(p.Seed())
}
