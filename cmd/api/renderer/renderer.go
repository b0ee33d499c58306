package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"game-news/cmd/api/clients/notionclient"
)

// 블록 시퀀스를 마크다운으로 변환한 뒤 HTML 로 렌더링한다.
// underline 등 마크다운에 없는 주석은 인라인 HTML 로 내보내므로
// WithUnsafe 로 렌더링하고 bluemonday 로 새니타이즈한다.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var sanitizer = bluemonday.UGCPolicy()

// RenderBlocks 는 블록 시퀀스 전체를 새니타이즈된 HTML 문자열로 렌더링한다.
// 인식하지 못하는 블록 타입은 에러 없이 건너뛴다.
func RenderBlocks(blocks []notionclient.Block) (string, error) {
	md := BlocksToMarkdown(blocks)
	if md == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render blocks: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// BlocksToMarkdown 은 블록들을 빈 줄로 구분된 마크다운 문서로 합친다.
func BlocksToMarkdown(blocks []notionclient.Block) string {
	fragments := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if fragment := BlockToMarkdown(block); fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, "\n\n")
}

// BlockToMarkdown 은 단일 블록을 타입 태그에 따라 마크다운 조각으로 변환한다.
func BlockToMarkdown(block notionclient.Block) string {
	switch block.Type {
	case "paragraph":
		return richTextToMarkdown(payloadText(block.Paragraph))
	case "heading_1":
		return "# " + richTextToMarkdown(payloadText(block.Heading1))
	case "heading_2":
		return "## " + richTextToMarkdown(payloadText(block.Heading2))
	case "heading_3":
		return "### " + richTextToMarkdown(payloadText(block.Heading3))
	case "bulleted_list_item":
		return "- " + richTextToMarkdown(payloadText(block.BulletedListItem))
	case "numbered_list_item":
		return "1. " + richTextToMarkdown(payloadText(block.NumberedListItem))
	case "quote":
		return "> " + richTextToMarkdown(payloadText(block.Quote))
	case "toggle":
		return richTextToMarkdown(payloadText(block.Toggle))
	case "callout":
		return "> " + richTextToMarkdown(payloadText(block.Callout))
	case "code":
		if block.Code == nil {
			return ""
		}
		code := plainText(block.Code.RichText)
		return "```" + block.Code.Language + "\n" + code + "\n```"
	case "image":
		url := block.Image.URL()
		if url == "" {
			return ""
		}
		caption := ""
		if block.Image != nil {
			caption = plainText(block.Image.Caption)
		}
		return fmt.Sprintf("![%s](%s)", caption, url)
	case "divider":
		return "---"
	case "to_do":
		if block.ToDo == nil {
			return ""
		}
		mark := " "
		if block.ToDo.Checked {
			mark = "x"
		}
		return "- [" + mark + "] " + richTextToMarkdown(block.ToDo.RichText)
	default:
		// 지원하지 않는 블록 타입은 아무것도 렌더링하지 않는다.
		return ""
	}
}

// richTextToMarkdown 은 스팬별 스타일 주석을 마크다운/인라인 HTML 로 합성한다.
// 주석은 상호 배타적이지 않으므로 순서대로 감싼다.
func richTextToMarkdown(spans []notionclient.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		if span.PlainText == "" {
			continue
		}

		text := span.PlainText
		if span.Annotations.Code {
			text = "`" + text + "`"
		}
		if span.Annotations.Bold {
			text = "**" + text + "**"
		}
		if span.Annotations.Italic {
			text = "*" + text + "*"
		}
		if span.Annotations.Strikethrough {
			text = "~~" + text + "~~"
		}
		if span.Annotations.Underline {
			// 마크다운에 밑줄 문법이 없어 인라인 HTML 로 내보낸다.
			text = "<u>" + text + "</u>"
		}
		if span.Href != nil && *span.Href != "" {
			text = "[" + text + "](" + *span.Href + ")"
		}
		sb.WriteString(text)
	}
	return sb.String()
}

func payloadText(payload *notionclient.RichTextPayload) []notionclient.RichText {
	if payload == nil {
		return nil
	}
	return payload.RichText
}

func plainText(spans []notionclient.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.PlainText)
	}
	return sb.String()
}
