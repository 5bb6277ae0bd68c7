// Package notion provides a minimal Notion REST client for draftforge
package notion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "draftforge/internal/platform/errors"
	"draftforge/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.notion.com"
	versionDefault = "2022-06-28"
	defaultTimeout = 15 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL string
	Token   string

	// Notion-Version header; the API refuses requests without one
	Version string

	Timeout time.Duration
}

// Client is a thin client over the two Notion endpoints the reader needs
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
	if o.Version == "" {
		o.Version = versionDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("notion"),
	}
}

// RetrievePage fetches a page object by id
func (c *Client) RetrievePage(ctx context.Context, pageID string) (Page, error) {
	var page Page
	if err := c.getJSON(ctx, "/v1/pages/"+url.PathEscape(pageID), &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// ListChildren fetches one page of a block's children. cursor is the
// continuation cursor from a previous call, empty for the first page.
func (c *Client) ListChildren(ctx context.Context, blockID, cursor string) (ChildrenPage, error) {
	path := "/v1/blocks/" + url.PathEscape(blockID) + "/children"
	if cursor != "" {
		path += "?start_cursor=" + url.QueryEscape(cursor)
	}
	var out ChildrenPage
	if err := c.getJSON(ctx, path, &out); err != nil {
		return ChildrenPage{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "notion new request failed")
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	req.Header.Set("Notion-Version", c.opts.Version)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "notion do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("notion http response")

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeJSON, "notion decode failed")
		}
		return nil
	case http.StatusNotFound:
		return perr.NotFoundf("notion object not found %s", path)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Newf(perr.ErrorCodeUnavailable, "notion unexpected status %d body %s", resp.StatusCode, string(body))
	}
}
