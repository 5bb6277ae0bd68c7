// Package service implements the document content reader
package service

import (
	"context"
	"strings"

	"draftforge/internal/adapters/notion"
	pstrings "draftforge/internal/platform/strings"
	"draftforge/internal/services/pages/domain"
)

// TitleFallback is used when a page has no title segments
const TitleFallback = "제목 없음"

// Store is the subset of the Notion client the reader consumes
type Store interface {
	RetrievePage(ctx context.Context, pageID string) (notion.Page, error)
	ListChildren(ctx context.Context, blockID, cursor string) (notion.ChildrenPage, error)
}

// Service implements domain.ReaderPort
type Service interface {
	domain.ReaderPort
}

// Svc reads page content from a Store
type Svc struct {
	store Store
}

// New constructs the service
func New(store Store) *Svc {
	return &Svc{store: store}
}

// GetContent returns the page title and its body text in depth-first
// pre-order over the block tree. A block's own text always precedes the
// text of its children
func (s *Svc) GetContent(ctx context.Context, pageID string) (domain.Content, error) {
	page, err := s.store.RetrievePage(ctx, pageID)
	if err != nil {
		return domain.Content{}, err
	}
	title := pstrings.EmptyToNil(page.Title())
	if title == "" {
		title = TitleFallback
	}

	blocks, err := s.allChildren(ctx, pageID)
	if err != nil {
		return domain.Content{}, err
	}
	body, err := s.collect(ctx, blocks)
	if err != nil {
		return domain.Content{}, err
	}
	return domain.Content{Title: title, BodyText: body}, nil
}

// allChildren drains every page of one block's children listing before any
// recursion happens, so sibling order survives pagination
func (s *Svc) allChildren(ctx context.Context, blockID string) ([]notion.Block, error) {
	var blocks []notion.Block
	cursor := ""
	for {
		page, err := s.store.ListChildren(ctx, blockID, cursor)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, page.Results...)
		if !page.HasMore {
			return blocks, nil
		}
		cursor = page.NextCursor
	}
}

func (s *Svc) collect(ctx context.Context, blocks []notion.Block) (string, error) {
	var b strings.Builder
	for _, blk := range blocks {
		if text, ok := blk.Text(); ok {
			b.WriteString(text)
			b.WriteString("\n")
		}
		if blk.HasChildren {
			children, err := s.allChildren(ctx, blk.ID)
			if err != nil {
				return "", err
			}
			childText, err := s.collect(ctx, children)
			if err != nil {
				return "", err
			}
			b.WriteString(childText)
		}
	}
	return b.String(), nil
}

// PageURL composes the browser URL for a page id
func PageURL(pageID string) string {
	return "https://www.notion.so/" + strings.ReplaceAll(pageID, "-", "")
}
