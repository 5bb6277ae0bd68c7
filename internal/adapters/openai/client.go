// Package openai provides a minimal chat-completions client for draftforge
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "draftforge/internal/platform/errors"
	"draftforge/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.openai.com"
	modelDefault   = "gpt-3.5-turbo"
	defaultTimeout = 120 * time.Second
)

// Message is one role-tagged chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a chat-completions call
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the chat completions endpoint
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("openai"),
	}
}

// Model returns the configured model identifier
func (c *Client) Model() string { return c.opts.Model }

// Complete sends the messages and returns the first completion's text
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		req.Model = c.opts.Model
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "openai marshal failed")
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.opts.BaseURL+"/v1/chat/completions", bytes.NewReader(payload),
	)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "openai new request failed")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("model", req.Model).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("openai http response")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", perr.Newf(perr.ErrorCodeUnavailable, "openai unexpected status %d body %s", resp.StatusCode, string(body))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "openai decode failed")
	}
	if len(out.Choices) == 0 {
		return "", perr.Transformf("openai returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
