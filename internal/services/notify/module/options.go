package module

import (
	"time"

	"draftforge/internal/platform/config"
)

// Options controls the notifier
type Options struct {
	WebhookURL string
	Timeout    time.Duration
}

// FromConfig reads with TEAMS_ prefix. The webhook URL must parse as an
// absolute URL; a typo here would otherwise surface only on the first send
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("TEAMS_")
	return Options{
		WebhookURL: c.MustURL("WEBHOOK_URL").String(),
		Timeout:    c.MayDuration("TIMEOUT", 10*time.Second),
	}
}
