package module

import (
	"time"

	"draftforge/internal/platform/config"
)

// Options controls the pages reader
type Options struct {
	BaseURL string
	Token   string
	Version string
	Timeout time.Duration

	// QAPageID is the fixed page the question channel answers from
	QAPageID string
}

// FromConfig reads with NOTION_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("NOTION_")
	return Options{
		BaseURL:  c.MayString("BASE_URL", ""),
		Token:    c.MustString("API_KEY"),
		Version:  c.MayString("VERSION", ""),
		Timeout:  c.MayDuration("TIMEOUT", 15*time.Second),
		QAPageID: c.MayString("QA_PAGE_ID", ""),
	}
}
