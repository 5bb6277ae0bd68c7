// Package service implements the spec/code transformer
package service

import (
	"context"
	"strings"

	"draftforge/internal/adapters/openai"
	"draftforge/internal/core/fence"
	perr "draftforge/internal/platform/errors"
	"draftforge/internal/platform/logger"
	"draftforge/internal/services/draft/domain"
)

// Completer is the subset of the model client the transformer consumes
type Completer interface {
	Complete(ctx context.Context, req openai.Request) (string, error)
}

// Service implements domain.TransformPort
type Service interface {
	domain.TransformPort
}

// Config controls the transformer
type Config struct {
	MaxTokens   int
	Temperature float64

	// Offline skips the model call and synthesizes code locally from a
	// specification object supplied as the document body
	Offline bool
}

// Svc transforms documents into artifact pairs
type Svc struct {
	model Completer
	cfg   Config
	log   logger.Logger
}

// New constructs the service
func New(model Completer, cfg Config) *Svc {
	return &Svc{
		model: model,
		cfg:   cfg,
		log:   *logger.Named("draft"),
	}
}

// Transform produces a specification/code pair for one document. The model
// call is not retried on malformed output; the delivery fails and a resend
// retries it
func (s *Svc) Transform(ctx context.Context, title, bodyText string) (domain.Artifact, error) {
	if s.cfg.Offline {
		return s.synthesize(bodyText)
	}

	reply, err := s.model.Complete(ctx, openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPromptPrefix + bodyText},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return domain.Artifact{}, err
	}
	if strings.TrimSpace(reply) == "" {
		return domain.Artifact{}, perr.Transformf("model reply is empty")
	}

	parsed, err := fence.Parse(reply)
	if err != nil {
		s.log.Error().Err(err).Str("title", title).Msg("model reply violated two-block contract")
		return domain.Artifact{}, err
	}
	return domain.Artifact{Spec: parsed.Spec, SpecRaw: parsed.SpecRaw, Code: parsed.Code}, nil
}
