// Package service implements the channel notifier
package service

import (
	"context"

	"draftforge/internal/adapters/teams"
	"draftforge/internal/services/notify/domain"
)

// Sender is the subset of the Teams client the notifier consumes
type Sender interface {
	Post(ctx context.Context, webhookURL string, msg teams.Message) error
}

// Service implements domain.NotifierPort
type Service interface {
	domain.NotifierPort
}

// Config controls the notifier
type Config struct {
	WebhookURL string
}

// Svc posts adaptive cards to the notification webhook
type Svc struct {
	sender Sender
	cfg    Config
}

// New constructs the service
func New(sender Sender, cfg Config) *Svc {
	return &Svc{sender: sender, cfg: cfg}
}

// DocumentUpdated posts a single-text-block card naming the updated page.
// One send, no retry; the caller decides whether the error matters
func (s *Svc) DocumentUpdated(ctx context.Context, info domain.PageInfo) error {
	msg := teams.CardMessage("새로운 문서가 업데이트되었습니다: " + info.Title)
	return s.sender.Post(ctx, s.cfg.WebhookURL, msg)
}
