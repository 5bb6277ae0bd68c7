// Package service implements the archive writer
package service

import (
	"context"
	"time"

	"draftforge/internal/platform/clock"
	"draftforge/internal/services/archive/domain"
)

// Repo is the persistence seam the writer consumes
type Repo interface {
	Allocate(date time.Time) (domain.Slot, error)
	WritePair(slot domain.Slot, specJSON []byte, code, ext string) error
}

// Service implements domain.WriterPort
type Service interface {
	domain.WriterPort
}

// Config controls the writer
type Config struct {
	// Ext is the code file extension without the dot
	Ext string
}

// Svc allocates a slot and persists artifact pairs
type Svc struct {
	repo Repo
	cfg  Config
	tick clock.Clock
}

// New constructs the service
func New(repo Repo, cfg Config, tick clock.Clock) *Svc {
	if cfg.Ext == "" {
		cfg.Ext = "ts"
	}
	if tick == nil {
		tick = clock.System{}
	}
	return &Svc{repo: repo, cfg: cfg, tick: tick}
}

// Write allocates the next free slot for today and persists the pair
func (s *Svc) Write(_ context.Context, pair domain.Pair) (domain.Slot, error) {
	slot, err := s.repo.Allocate(s.tick.Now())
	if err != nil {
		return domain.Slot{}, err
	}
	if err := s.repo.WritePair(slot, pair.SpecJSON, pair.Code, s.cfg.Ext); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}
