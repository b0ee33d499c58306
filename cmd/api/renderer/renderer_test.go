package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"game-news/cmd/api/clients/notionclient"
	"game-news/cmd/api/renderer"
)

func span(text string) []notionclient.RichText {
	return []notionclient.RichText{{PlainText: text}}
}

func TestBlockToMarkdown(t *testing.T) {
	href := "https://example.com"

	testCases := []struct {
		name  string
		block notionclient.Block
		want  string
	}{
		{
			name:  "paragraph",
			block: notionclient.Block{Type: "paragraph", Paragraph: &notionclient.RichTextPayload{RichText: span("본문")}},
			want:  "본문",
		},
		{
			name:  "heading levels",
			block: notionclient.Block{Type: "heading_2", Heading2: &notionclient.RichTextPayload{RichText: span("소제목")}},
			want:  "## 소제목",
		},
		{
			name:  "bulleted list item",
			block: notionclient.Block{Type: "bulleted_list_item", BulletedListItem: &notionclient.RichTextPayload{RichText: span("항목")}},
			want:  "- 항목",
		},
		{
			name:  "quote",
			block: notionclient.Block{Type: "quote", Quote: &notionclient.RichTextPayload{RichText: span("인용")}},
			want:  "> 인용",
		},
		{
			name: "code block keeps language",
			block: notionclient.Block{Type: "code", Code: &notionclient.CodePayload{
				RichText: span("fmt.Println(\"hi\")"),
				Language: "go",
			}},
			want: "```go\nfmt.Println(\"hi\")\n```",
		},
		{
			name: "external image with caption",
			block: notionclient.Block{Type: "image", Image: &notionclient.ImagePayload{
				Type:     "external",
				External: &notionclient.FileRef{URL: "https://example.com/a.png"},
				Caption:  span("스크린샷"),
			}},
			want: "![스크린샷](https://example.com/a.png)",
		},
		{
			name:  "divider",
			block: notionclient.Block{Type: "divider"},
			want:  "---",
		},
		{
			name: "checked to_do",
			block: notionclient.Block{Type: "to_do", ToDo: &notionclient.ToDoPayload{
				RichText: span("할 일"),
				Checked:  true,
			}},
			want: "- [x] 할 일",
		},
		{
			name: "link annotation",
			block: notionclient.Block{Type: "paragraph", Paragraph: &notionclient.RichTextPayload{
				RichText: []notionclient.RichText{{PlainText: "링크", Href: &href}},
			}},
			want: "[링크](https://example.com)",
		},
		{
			name: "stacked annotations",
			block: notionclient.Block{Type: "paragraph", Paragraph: &notionclient.RichTextPayload{
				RichText: []notionclient.RichText{{
					PlainText:   "강조",
					Annotations: notionclient.Annotations{Bold: true, Italic: true},
				}},
			}},
			want: "***강조***",
		},
		{
			name:  "unknown type renders nothing",
			block: notionclient.Block{Type: "synced_block"},
			want:  "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, renderer.BlockToMarkdown(testCase.block))
		})
	}
}

func TestRenderBlocksSanitizesHTML(t *testing.T) {
	blocks := []notionclient.Block{
		{Type: "heading_1", Heading1: &notionclient.RichTextPayload{RichText: span("제목")}},
		{Type: "paragraph", Paragraph: &notionclient.RichTextPayload{RichText: span("<script>alert(1)</script>")}},
		{Type: "paragraph", Paragraph: &notionclient.RichTextPayload{
			RichText: []notionclient.RichText{{
				PlainText:   "밑줄",
				Annotations: notionclient.Annotations{Underline: true},
			}},
		}},
	}

	html, err := renderer.RenderBlocks(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "제목")
	assert.NotContains(t, html, "<script>")
	// UGC 정책은 u 태그를 허용한다.
	assert.Contains(t, html, "<u>밑줄</u>")
}
