// Package domain defines the document reading ports and types
package domain

import "context"

// Content is a document's readable projection
type Content struct {
	Title    string
	BodyText string
}

// ReaderPort reads a document's title and body text by page id
type ReaderPort interface {
	GetContent(ctx context.Context, pageID string) (Content, error)
}
