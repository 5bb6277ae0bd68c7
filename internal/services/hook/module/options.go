package module

import "draftforge/internal/platform/config"

// Options controls the webhook pipeline
type Options struct {
	Secret string
}

// FromConfig reads with TEAMS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("TEAMS_")
	return Options{
		Secret: c.MustString("WEBHOOK_SECRET"),
	}
}
