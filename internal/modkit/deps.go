// Package modkit provides module wiring and core deps
package modkit

import (
	"draftforge/internal/platform/clock"
	"draftforge/internal/platform/config"
	"draftforge/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Clock clock.Clock
}

// Tick returns the configured clock, defaulting to the system clock so tests
// can use zero-value Deps
func (d Deps) Tick() clock.Clock {
	if d.Clock == nil {
		return clock.System{}
	}
	return d.Clock
}
