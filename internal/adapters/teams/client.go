// Package teams posts message envelopes to Teams incoming webhooks
package teams

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

const defaultTimeout = 10 * time.Second

// Message is the outer webhook envelope
type Message struct {
	Type        string       `json:"type"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment carries one adaptive card
type Attachment struct {
	ContentType string       `json:"contentType"`
	Content     AdaptiveCard `json:"content"`
}

// AdaptiveCard is the card body; only text blocks are used here
type AdaptiveCard struct {
	Type string      `json:"type"`
	Body []TextBlock `json:"body"`
}

// TextBlock is one line of card content
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CardMessage wraps text in a single-block adaptive card envelope
func CardMessage(text string) Message {
	return Message{
		Type: "message",
		Attachments: []Attachment{{
			ContentType: "application/vnd.microsoft.card.adaptive",
			Content: AdaptiveCard{
				Type: "AdaptiveCard",
				Body: []TextBlock{{Type: "TextBlock", Text: text}},
			},
		}},
	}
}

// TextMessage wraps plain text in the minimal envelope
func TextMessage(text string) Message {
	return Message{Text: text}
}

// Options configures the Client
type Options struct {
	Timeout time.Duration
}

// Client posts messages to incoming-webhook URLs. The URL is per call
// because notification and question channels are distinct webhooks.
type Client struct {
	http *http.Client
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		log:  *logger.Named("teams"),
	}
}

// Post sends one message envelope to webhookURL
func (c *Client) Post(ctx context.Context, webhookURL string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "teams marshal failed")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "teams new request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNotify, "teams do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("teams http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Newf(perr.ErrorCodeNotify, "teams unexpected status %d body %s", resp.StatusCode, string(body))
	}
	return nil
}
