// Package domain defines the webhook pipeline ports and types
package domain

import "context"

// Delivery is one inbound webhook delivery. Raw holds the exact body bytes
// as received; ID and Text are the parsed fields
type Delivery struct {
	ID   string
	Text string
	Raw  []byte
	Auth string
}

// Result describes a completed pipeline run
type Result struct {
	PageID     string
	Title      string
	FolderName string
}

// WebhookPort runs the full pipeline for one delivery
type WebhookPort interface {
	Handle(ctx context.Context, d Delivery) (Result, error)
}
