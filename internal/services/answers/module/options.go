package module

import (
	"time"

	"draftforge/internal/platform/config"
)

// Options controls the answers service
type Options struct {
	QAPageID     string
	Secret       string
	Model        string
	ModelAPIKey  string
	ModelBaseURL string
	ModelTimeout time.Duration
}

// FromConfig reads the question channel secret from TEAMS_, the QA page
// from NOTION_, and the model settings from OPENAI_
func FromConfig(cfg config.Conf) Options {
	ai := cfg.Prefix("OPENAI_")
	return Options{
		QAPageID:     cfg.Prefix("NOTION_").MayString("QA_PAGE_ID", ""),
		Secret:       cfg.Prefix("TEAMS_").MustString("QUESTION_WEBHOOK_SECRET"),
		Model:        ai.MayString("MODEL", "gpt-3.5-turbo"),
		ModelAPIKey:  ai.MustString("API_KEY"),
		ModelBaseURL: ai.MayString("BASE_URL", ""),
		ModelTimeout: ai.MayDuration("TIMEOUT", 120*time.Second),
	}
}
