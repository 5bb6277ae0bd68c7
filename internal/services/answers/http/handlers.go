// Package http provides http transport for the question channel
package http

import (
	stdhttp "net/http"

	"draftforge/internal/core/extract"
	"draftforge/internal/core/signature"
	"draftforge/internal/modkit/httpkit"
	perr "draftforge/internal/platform/errors"
	"draftforge/internal/platform/logger"
	pnet "draftforge/internal/platform/net"
	phttp "draftforge/internal/platform/net/http"
	"draftforge/internal/platform/net/http/bind"
	"draftforge/internal/platform/net/middleware"
	svc "draftforge/internal/services/answers/service"
)

// Register mounts the question endpoint on the given router
func Register(r httpkit.Router, s svc.Service, secret string) {
	h := &handlers{svc: s, secret: secret}
	r.Post("/teams/question", phttp.Handle(h.question))
}

type handlers struct {
	svc    svc.Service
	secret string
}

type inbound struct {
	Text string `json:"text" validate:"required"`
}

// @Summary Teams question webhook
// @Tags Teams
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "answer"
// @Router /teams/question [post]
//
// question answers synchronously: the webhook response IS the answer, so
// unlike the ingest path this one blocks on the model call
func (h *handlers) question(r *stdhttp.Request) phttp.Response {
	ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))

	raw := middleware.RawBodyFrom(ctx)
	if !signature.Verify(h.secret, raw, r.Header.Get("Authorization")) {
		logger.C(ctx).Error().Msg("question hmac verification failed")
		return phttp.Error(perr.Unauthorizedf("hmac verification failed"))
	}

	in, err := bind.ParseJSON[inbound](r)
	if err != nil {
		return phttp.Error(err)
	}
	question := extract.Question(in.Text)
	if question == "" {
		return phttp.Error(perr.Newf(perr.ErrorCodeValidation, "question text is required"))
	}

	answer, err := h.svc.Answer(ctx, question)
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("question answering failed")
		return phttp.Error(err)
	}

	return phttp.Raw(stdhttp.StatusOK, map[string]string{
		"type": "message",
		"text": "Q: " + question + "\n\nA: " + answer,
	})
}
