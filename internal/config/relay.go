package config

import (
	"errors"
	"math"
	"time"
)

type Relay struct {
	BatchSize uint32        `env:"RELAY_BATCH_SIZE" envDefault:"100"`
	Interval  time.Duration `env:"RELAY_INTERVAL" envDefault:"1s"`
	// Processed outbox rows older than Retention are deleted every PruneInterval.
	Retention     time.Duration `env:"RELAY_RETENTION" envDefault:"168h"`
	PruneInterval time.Duration `env:"RELAY_PRUNE_INTERVAL" envDefault:"1h"`
}

// Validate reports whether the relay loop can run with this configuration.
func (r Relay) Validate() error {
	if r.BatchSize == 0 || r.BatchSize > math.MaxInt32 {
		return errors.New("RELAY_BATCH_SIZE must be between 1 and 2147483647")
	}
	if r.Interval <= 0 {
		return errors.New("RELAY_INTERVAL must be positive")
	}
	if r.Retention < 0 {
		return errors.New("RELAY_RETENTION must not be negative")
	}
	if r.PruneInterval < 0 {
		return errors.New("RELAY_PRUNE_INTERVAL must not be negative")
	}
	return nil
}
