// Package domain defines the notification ports and types
package domain

import "context"

// PageInfo identifies the document a notification is about
type PageInfo struct {
	ID    string
	Title string
	URL   string
}

// NotifierPort sends the document-updated card to the channel
type NotifierPort interface {
	DocumentUpdated(ctx context.Context, info PageInfo) error
}
