package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"draftforge/internal/adapters/notion"
	"draftforge/internal/services/pages/service"
)

// fakeStore serves a canned page and block tree keyed by block id, with
// optional pagination splits
type fakeStore struct {
	page     notion.Page
	pageErr  error
	children map[string][]notion.Block

	// pageSize forces pagination when > 0
	pageSize int
	calls    int
}

func (f *fakeStore) RetrievePage(_ context.Context, _ string) (notion.Page, error) {
	if f.pageErr != nil {
		return notion.Page{}, f.pageErr
	}
	return f.page, nil
}

func (f *fakeStore) ListChildren(_ context.Context, blockID, cursor string) (notion.ChildrenPage, error) {
	f.calls++
	all := f.children[blockID]
	start := 0
	if cursor != "" {
		if err := json.Unmarshal([]byte(cursor), &start); err != nil {
			panic("bad test cursor: " + cursor)
		}
	}
	if f.pageSize <= 0 || start+f.pageSize >= len(all) {
		return notion.ChildrenPage{Results: all[start:]}, nil
	}
	next, _ := json.Marshal(start + f.pageSize)
	return notion.ChildrenPage{
		Results:    all[start : start+f.pageSize],
		HasMore:    true,
		NextCursor: string(next),
	}, nil
}

func textBlock(id, typ, text string, hasChildren bool) notion.Block {
	raw := []byte(`{
		"id": "` + id + `",
		"type": "` + typ + `",
		"has_children": ` + boolLit(hasChildren) + `,
		"` + typ + `": {"rich_text": [{"plain_text": "` + text + `"}]}
	}`)
	var b notion.Block
	if err := json.Unmarshal(raw, &b); err != nil {
		panic(err)
	}
	return b
}

func boolLit(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func titledPage(title string) notion.Page {
	var p notion.Page
	raw := `{"id":"p-1","properties":{"title":{"type":"title","title":[{"plain_text":"` + title + `"}]}}}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		panic(err)
	}
	return p
}

func TestGetContentPreOrder(t *testing.T) {
	t.Parallel()

	// A -> [B, C(children: [D])] must read as A B C D
	store := &fakeStore{
		page: titledPage("doc"),
		children: map[string][]notion.Block{
			"root": {
				textBlock("a", "paragraph", "A", false),
				textBlock("b", "heading_1", "B", false),
				textBlock("c", "toggle", "C", true),
			},
			"c": {
				textBlock("d", "bulleted_list_item", "D", false),
			},
		},
	}
	svc := service.New(store)

	got, err := svc.GetContent(context.Background(), "root")
	if err != nil {
		t.Fatalf("get content failed: %v", err)
	}
	if got.BodyText != "A\nB\nC\nD\n" {
		t.Fatalf("expected pre-order A B C D got %q", got.BodyText)
	}
	if got.Title != "doc" {
		t.Fatalf("expected title doc got %q", got.Title)
	}
}

func TestGetContentFollowsPagination(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		page:     titledPage("doc"),
		pageSize: 1,
		children: map[string][]notion.Block{
			"root": {
				textBlock("a", "paragraph", "one", false),
				textBlock("b", "paragraph", "two", false),
				textBlock("c", "paragraph", "three", false),
			},
		},
	}
	svc := service.New(store)

	got, err := svc.GetContent(context.Background(), "root")
	if err != nil {
		t.Fatalf("get content failed: %v", err)
	}
	if got.BodyText != "one\ntwo\nthree\n" {
		t.Fatalf("pagination lost sibling order: %q", got.BodyText)
	}
	if store.calls < 3 {
		t.Fatalf("expected the cursor to be followed, got %d listing calls", store.calls)
	}
}

func TestGetContentSkipsUnreadableBlocks(t *testing.T) {
	t.Parallel()

	divider := notion.Block{ID: "x", Type: "divider"}
	store := &fakeStore{
		page: titledPage("doc"),
		children: map[string][]notion.Block{
			"root": {
				textBlock("a", "paragraph", "kept", false),
				divider,
				textBlock("b", "code", "also kept", false),
			},
		},
	}
	svc := service.New(store)

	got, err := svc.GetContent(context.Background(), "root")
	if err != nil {
		t.Fatalf("get content failed: %v", err)
	}
	if got.BodyText != "kept\nalso kept\n" {
		t.Fatalf("allow-list not applied: %q", got.BodyText)
	}
}

func TestGetContentTitleFallback(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		page:     notion.Page{ID: "p-1"},
		children: map[string][]notion.Block{},
	}
	svc := service.New(store)

	got, err := svc.GetContent(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get content failed: %v", err)
	}
	if got.Title != service.TitleFallback {
		t.Fatalf("expected fallback title got %q", got.Title)
	}
}

func TestGetContentWhitespaceTitleFallsBack(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		page: notion.Page{
			ID: "p-1",
			Properties: map[string]notion.TitleProperty{
				"title": {Type: "title", Title: []notion.RichText{{PlainText: "  \t "}}},
			},
		},
		children: map[string][]notion.Block{},
	}
	svc := service.New(store)

	got, err := svc.GetContent(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get content failed: %v", err)
	}
	if got.Title != service.TitleFallback {
		t.Fatalf("expected fallback for blank title got %q", got.Title)
	}
}

func TestPageURL(t *testing.T) {
	t.Parallel()

	got := service.PageURL("1fc5a2fa-a754-8079-8e1f-ffb9ac24b700")
	want := "https://www.notion.so/1fc5a2faa75480798e1fffb9ac24b700"
	if got != want {
		t.Fatalf("PageURL = %q want %q", got, want)
	}
}
