package module

import dom "draftforge/internal/services/hook/domain"

// Ports holds the ports exposed by the hook module
type Ports struct {
	Webhook dom.WebhookPort
}
