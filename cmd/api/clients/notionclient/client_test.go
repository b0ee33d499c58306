package notionclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("NOTION_API_KEY", "secret-key-for-test")
	t.Setenv("NOTION_DATABASE_ID", "aaaaaaaabbbbccccddddeeeeeeeeeeee")
	t.Setenv("NOTION_BASE_URL", server.URL)

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestFormatID(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{
			in:   "aaaaaaaabbbbccccddddeeeeeeeeeeee",
			want: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		},
		{
			in:   "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
			want: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		},
		{
			// 32자가 아니면 손대지 않는다.
			in:   "short-id",
			want: "short-id",
		},
	}

	for _, testCase := range testCases {
		if got := FormatID(testCase.in); got != testCase.want {
			t.Fatalf("FormatID(%q) = %q, want %q", testCase.in, got, testCase.want)
		}
	}
}

func TestQueryPagesExtractsProperties(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/databases/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/query" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if version := r.Header.Get("Notion-Version"); version != "2022-06-28" {
			t.Fatalf("unexpected Notion-Version %q", version)
		}

		io.WriteString(w, `{
			"results": [
				{
					"id": "page-1",
					"properties": {
						"name": {"type": "title", "title": [{"plain_text": "첫 글"}]},
						"status": {"type": "select", "select": {"name": "Published"}},
						"createdat": {"type": "date", "date": {"start": "2025-08-01"}}
					}
				},
				{
					"id": "page-2",
					"properties": {
						"Name": {"type": "title", "title": [{"plain_text": "초안"}]},
						"Status": {"type": "checkbox", "checkbox": true},
						"Createdat": {"type": "created_time", "created_time": "2025-07-01T09:00:00Z"}
					}
				},
				{
					"id": "page-3",
					"properties": {}
				}
			]
		}`)
	}))

	pages, err := client.QueryPages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}

	if pages[0].Title != "첫 글" || pages[0].Status != "Published" || pages[0].CreatedAt != "2025-08-01" {
		t.Fatalf("unexpected page 1: %+v", pages[0])
	}
	// 체크박스 true 는 완료 상태로 읽는다. 대문자 표기 속성명도 허용한다.
	if pages[1].Status != "완료" || pages[1].CreatedAt != "2025-07-01T09:00:00Z" {
		t.Fatalf("unexpected page 2: %+v", pages[1])
	}
	// 속성이 없으면 기본값으로 채운다.
	if pages[2].Title != "Untitled" || pages[2].Status != "Draft" {
		t.Fatalf("unexpected page 3: %+v", pages[2])
	}
}

func TestListBlocksFollowsCursor(t *testing.T) {
	var requests int

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if size := r.URL.Query().Get("page_size"); size != "100" {
			t.Fatalf("expected page_size 100, got %q", size)
		}

		switch r.URL.Query().Get("start_cursor") {
		case "":
			io.WriteString(w, `{
				"results": [{"id": "b1", "type": "paragraph", "paragraph": {"rich_text": []}}],
				"has_more": true,
				"next_cursor": "cursor-2"
			}`)
		case "cursor-2":
			io.WriteString(w, `{
				"results": [{"id": "b2", "type": "divider"}],
				"has_more": false,
				"next_cursor": null
			}`)
		default:
			t.Fatalf("unexpected cursor %q", r.URL.Query().Get("start_cursor"))
		}
	}))

	blocks, err := client.ListBlocks(context.Background(), "aaaaaaaabbbbccccddddeeeeeeeeeeee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests, got %d", requests)
	}
	if len(blocks) != 2 || blocks[0].ID != "b1" || blocks[1].ID != "b2" {
		t.Fatalf("unexpected blocks %+v", blocks)
	}
}

func TestGetPageMapsNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object":"error","status":404}`)
	}))

	_, err := client.GetPage(context.Background(), "aaaaaaaabbbbccccddddeeeeeeeeeeee")
	if err == nil {
		t.Fatalf("expected error for missing page")
	}
}
