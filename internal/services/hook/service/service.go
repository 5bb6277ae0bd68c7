// Package service implements the webhook pipeline orchestrator
package service

import (
	"context"
	"encoding/json"

	"draftforge/internal/core/dedup"
	"draftforge/internal/core/extract"
	"draftforge/internal/core/signature"
	perr "draftforge/internal/platform/errors"
	"draftforge/internal/platform/logger"
	archivedom "draftforge/internal/services/archive/domain"
	draftdom "draftforge/internal/services/draft/domain"
	"draftforge/internal/services/hook/domain"
	notifydom "draftforge/internal/services/notify/domain"
	pagesdom "draftforge/internal/services/pages/domain"
	pagessvc "draftforge/internal/services/pages/service"
)

// Service implements domain.WebhookPort
type Service interface {
	domain.WebhookPort
}

// Config controls the pipeline
type Config struct {
	// Secret is the base64 shared secret for the notification channel
	Secret string
}

// Ports are the downstream capabilities the pipeline orchestrates
type Ports struct {
	Reader      pagesdom.ReaderPort
	Transformer draftdom.TransformPort
	Writer      archivedom.WriterPort
	Notifier    notifydom.NotifierPort
}

// Svc runs the signature -> dedup -> extract -> read -> transform ->
// archive -> notify chain for one delivery at a time. Deliveries are
// independent; only the dedup set is shared between them
type Svc struct {
	ports Ports
	seen  *dedup.Set
	cfg   Config
	log   logger.Logger
}

// New constructs the service
func New(ports Ports, seen *dedup.Set, cfg Config) *Svc {
	if seen == nil {
		seen = dedup.New(nil)
	}
	return &Svc{
		ports: ports,
		seen:  seen,
		cfg:   cfg,
		log:   *logger.Named("hook"),
	}
}

// Handle runs the pipeline for d. The webhook acknowledgment has already
// been sent by the time this runs, so every error here is terminal for the
// delivery and observable only through logs and the final notification
func (s *Svc) Handle(ctx context.Context, d domain.Delivery) (domain.Result, error) {
	if !signature.Verify(s.cfg.Secret, d.Raw, d.Auth) {
		return domain.Result{}, perr.Unauthorizedf("hmac verification failed")
	}
	if d.ID == "" || d.Text == "" {
		return domain.Result{}, perr.InvalidArgf("delivery missing id or text")
	}
	if s.seen.Seen(d.ID) {
		return domain.Result{}, perr.Duplicatef("delivery %s already processed", d.ID)
	}

	pageID := extract.PageID(d.Text)
	if pageID == "" {
		return domain.Result{}, perr.NotFoundf("no page id in delivery text")
	}

	content, err := s.ports.Reader.GetContent(ctx, pageID)
	if err != nil {
		return domain.Result{}, err
	}
	if content.BodyText == "" {
		return domain.Result{}, perr.NotFoundf("page %s body is empty", pageID)
	}

	artifact, err := s.ports.Transformer.Transform(ctx, content.Title, content.BodyText)
	if err != nil {
		return domain.Result{}, err
	}

	specJSON, err := json.MarshalIndent(artifact.Spec, "", "  ")
	if err != nil {
		return domain.Result{}, perr.Wrap(err, perr.ErrorCodeArchive, "spec marshal failed")
	}
	slot, err := s.ports.Writer.Write(ctx, archivedom.Pair{SpecJSON: specJSON, Code: artifact.Code})
	if err != nil {
		return domain.Result{}, err
	}

	// Notification failures never roll back the archive write
	info := notifydom.PageInfo{
		ID:    pageID,
		Title: content.Title,
		URL:   pagessvc.PageURL(pageID),
	}
	if err := s.ports.Notifier.DocumentUpdated(ctx, info); err != nil {
		s.log.Warn().Err(err).Str("page_id", pageID).Msg("notification failed")
	}

	s.log.Info().
		Str("delivery_id", d.ID).
		Str("page_id", pageID).
		Str("folder", slot.FolderName).
		Msg("webhook processed")

	return domain.Result{PageID: pageID, Title: content.Title, FolderName: slot.FolderName}, nil
}
