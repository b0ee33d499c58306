package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"game-news/cmd/api/clients/notionclient"
)

type fakeContentSource struct {
	pages  []notionclient.Page
	blocks []notionclient.Block
}

func (s *fakeContentSource) QueryPages(_ context.Context) ([]notionclient.Page, error) {
	return s.pages, nil
}

func (s *fakeContentSource) GetPage(_ context.Context, pageID string) (*notionclient.Page, error) {
	for _, page := range s.pages {
		if page.ID == pageID {
			p := page
			return &p, nil
		}
	}
	return nil, notionclient.ErrNotFound
}

func (s *fakeContentSource) ListBlocks(_ context.Context, pageID string) ([]notionclient.Block, error) {
	return s.blocks, nil
}

func textBlock(blockType, text string) notionclient.Block {
	return notionclient.Block{
		Type: blockType,
		Paragraph: &notionclient.RichTextPayload{
			RichText: []notionclient.RichText{{PlainText: text}},
		},
	}
}

func TestListPublishedFiltersByStatus(t *testing.T) {
	source := &fakeContentSource{
		pages: []notionclient.Page{
			{ID: "a", Title: "A", Status: "Published"},
			{ID: "b", Title: "B", Status: "Draft"},
			{ID: "c", Title: "C", Status: "완료"},
			{ID: "d", Title: "D", Status: "publish"},
			{ID: "e", Title: "E", Status: "완료됨"},
			{ID: "f", Title: "F", Status: "PUBLISHED"},
		},
	}
	svc := NewBlogService(source)

	pages, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "c", "d", "f"}
	if len(pages) != len(want) {
		t.Fatalf("expected %d published pages, got %d", len(want), len(pages))
	}
	for i, id := range want {
		if pages[i].ID != id {
			t.Fatalf("expected page %q at index %d, got %q", id, i, pages[i].ID)
		}
	}
}

func TestGetPageDetailHidesUnpublishedPage(t *testing.T) {
	source := &fakeContentSource{
		pages: []notionclient.Page{
			{ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", Title: "Draft page", Status: "Draft"},
		},
	}
	svc := NewBlogService(source)

	_, err := svc.GetPageDetail(context.Background(), "aaaaaaaabbbbccccddddeeeeeeeeeeee")
	if !errors.Is(err, notionclient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unpublished page, got %v", err)
	}
}

func TestGetPageDetailRendersSanitizedHTML(t *testing.T) {
	source := &fakeContentSource{
		pages: []notionclient.Page{
			{ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", Title: "게임 뉴스 공지", Status: "완료"},
		},
		blocks: []notionclient.Block{
			textBlock("paragraph", "첫 문단"),
			{
				Type: "heading_2",
				Heading2: &notionclient.RichTextPayload{
					RichText: []notionclient.RichText{{PlainText: "소제목"}},
				},
			},
			textBlock("paragraph", "<script>alert(1)</script>"),
		},
	}
	svc := NewBlogService(source)

	detail, err := svc.GetPageDetail(context.Background(), "aaaaaaaabbbbccccddddeeeeeeeeeeee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Title != "게임 뉴스 공지" {
		t.Fatalf("unexpected title %q", detail.Title)
	}
	if !strings.Contains(detail.ContentHTML, "첫 문단") {
		t.Fatalf("expected paragraph text in HTML: %s", detail.ContentHTML)
	}
	if !strings.Contains(detail.ContentHTML, "<h2") {
		t.Fatalf("expected h2 heading in HTML: %s", detail.ContentHTML)
	}
	if strings.Contains(detail.ContentHTML, "<script>") {
		t.Fatalf("script tag must be sanitized: %s", detail.ContentHTML)
	}
}
