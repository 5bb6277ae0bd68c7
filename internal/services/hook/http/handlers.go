// Package http provides http transport for the webhook channel
package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"

	"draftforge/internal/modkit/httpkit"
	perr "draftforge/internal/platform/errors"
	"draftforge/internal/platform/logger"
	pnet "draftforge/internal/platform/net"
	phttp "draftforge/internal/platform/net/http"
	"draftforge/internal/platform/net/middleware"
	"draftforge/internal/services/hook/domain"
	svc "draftforge/internal/services/hook/service"
)

// ack is the fixed body the channel receives before the pipeline runs
var ack = map[string]string{
	"type": "message",
	"text": "요청을 받았습니다. 처리 중입니다...",
}

// Register mounts the webhook endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Post("/teams/webhook", phttp.Handle(h.webhook))
}

type handlers struct{ svc svc.Service }

type inbound struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// @Summary Teams webhook ingest
// @Tags Teams
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "ack"
// @Router /teams/webhook [post]
//
// webhook acks immediately and runs the pipeline detached; this path never
// produces any status but 200
func (h *handlers) webhook(r *stdhttp.Request) phttp.Response {
	raw := middleware.RawBodyFrom(r.Context())

	var in inbound
	// decode failures leave the fields empty and surface downstream as an
	// invalid delivery
	_ = json.Unmarshal(raw, &in)

	d := domain.Delivery{
		ID:   in.ID,
		Text: in.Text,
		Raw:  raw,
		Auth: r.Header.Get("Authorization"),
	}

	// keep the request id but shed the request lifetime; the pipeline
	// outlives the response
	ctx := context.WithoutCancel(r.Context())
	ctx = logger.WithRequest(ctx, pnet.RequestID(r.Context()))
	go func() {
		if _, err := h.svc.Handle(ctx, d); err != nil {
			logPipelineError(ctx, err)
		}
	}()

	return phttp.Raw(stdhttp.StatusOK, ack)
}

func logPipelineError(ctx context.Context, err error) {
	log := logger.C(ctx)
	switch perr.CodeOf(err) {
	case perr.ErrorCodeDuplicate:
		log.Info().Err(err).Msg("duplicate delivery skipped")
	case perr.ErrorCodeUnauthorized:
		log.Error().Err(err).Msg("delivery rejected")
	case perr.ErrorCodeNotFound, perr.ErrorCodeInvalidArgument:
		log.Warn().Err(err).Msg("delivery dropped")
	default:
		log.Error().Err(err).Msg("webhook pipeline failed")
	}
}
