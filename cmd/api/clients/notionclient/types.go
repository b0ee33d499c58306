package notionclient

import "net/url"

// Page 는 이 시스템이 사용하는 최소한의 페이지 메타데이터다.
// 속성 추출 규칙은 pages.go 의 property 처리 참조.
type Page struct {
	ID        string
	Title     string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// Annotations 는 리치 텍스트 스팬의 스타일 주석이다. 상호 배타적이지 않다.
type Annotations struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Code          bool `json:"code"`
	Strikethrough bool `json:"strikethrough"`
	Underline     bool `json:"underline"`
}

// RichText 는 하나의 텍스트 스팬이다.
type RichText struct {
	PlainText   string      `json:"plain_text"`
	Annotations Annotations `json:"annotations"`
	Href        *string     `json:"href"`
}

// Block 은 타입 태그와 타입별 페이로드를 갖는 콘텐츠 블록이다.
// 이 시스템이 렌더링하지 않는 타입의 페이로드는 nil 로 남는다.
type Block struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	Paragraph        *RichTextPayload `json:"paragraph,omitempty"`
	Heading1         *RichTextPayload `json:"heading_1,omitempty"`
	Heading2         *RichTextPayload `json:"heading_2,omitempty"`
	Heading3         *RichTextPayload `json:"heading_3,omitempty"`
	BulletedListItem *RichTextPayload `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextPayload `json:"numbered_list_item,omitempty"`
	Quote            *RichTextPayload `json:"quote,omitempty"`
	Toggle           *RichTextPayload `json:"toggle,omitempty"`
	Callout          *RichTextPayload `json:"callout,omitempty"`
	Code             *CodePayload     `json:"code,omitempty"`
	Image            *ImagePayload    `json:"image,omitempty"`
	ToDo             *ToDoPayload     `json:"to_do,omitempty"`
}

type RichTextPayload struct {
	RichText []RichText `json:"rich_text"`
}

type CodePayload struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

type ToDoPayload struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// ImagePayload 는 외부 이미지와 Notion 업로드 이미지를 모두 담는다.
type ImagePayload struct {
	Type     string     `json:"type"`
	External *FileRef   `json:"external,omitempty"`
	File     *FileRef   `json:"file,omitempty"`
	Caption  []RichText `json:"caption,omitempty"`
}

type FileRef struct {
	URL string `json:"url"`
}

// URL 은 이미지 소스 타입에 맞는 주소를 반환한다.
func (p *ImagePayload) URL() string {
	if p == nil {
		return ""
	}
	if p.External != nil && p.External.URL != "" {
		return p.External.URL
	}
	if p.File != nil {
		return p.File.URL
	}
	return ""
}

func urlValues(query map[string]string) url.Values {
	if len(query) == 0 {
		return nil
	}
	values := url.Values{}
	for k, v := range query {
		values.Set(k, v)
	}
	return values
}
