package module

import (
	"time"

	"draftforge/internal/platform/config"
)

// Options controls the draft transformer
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	Offline     bool
}

// FromConfig reads with OPENAI_ prefix; the offline switch lives under DRAFT_
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("OPENAI_")
	return Options{
		BaseURL:     c.MayString("BASE_URL", ""),
		APIKey:      c.MustString("API_KEY"),
		Model:       c.MayString("MODEL", "gpt-3.5-turbo"),
		MaxTokens:   c.MayInt("MAX_TOKENS", 2000),
		Temperature: c.MayFloat("TEMPERATURE", 0.7),
		Timeout:     c.MayDuration("TIMEOUT", 120*time.Second),
		Offline:     cfg.Prefix("DRAFT_").MayBool("OFFLINE", false),
	}
}
