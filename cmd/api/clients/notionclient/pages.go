package notionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// rawPage / rawProperty 는 Notion 페이지 응답의 와이어 표현이다.
// 운영 중인 데이터베이스가 속성 타입을 바꿔온 이력이 있어서
// (select ↔ status ↔ rich_text ↔ checkbox) 모든 변형을 허용한다.
type rawPage struct {
	ID         string                 `json:"id"`
	Properties map[string]rawProperty `json:"properties"`
}

type rawProperty struct {
	Type           string       `json:"type"`
	Title          []RichText   `json:"title"`
	Select         *selectValue `json:"select"`
	Status         *selectValue `json:"status"`
	RichText       []RichText   `json:"rich_text"`
	Checkbox       *bool        `json:"checkbox"`
	Date           *dateValue   `json:"date"`
	CreatedTime    string       `json:"created_time"`
	LastEditedTime string       `json:"last_edited_time"`
}

type selectValue struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type queryResponse struct {
	Results []rawPage `json:"results"`
}

// QueryPages 는 컬렉션을 createdat 속성 내림차순으로 쿼리해 페이지 메타데이터 목록을 반환한다.
// 발행 여부 필터링은 호출자(블로그 서비스)가 수행한다.
func (c *Client) QueryPages(ctx context.Context) ([]Page, error) {
	body := struct {
		Sorts []sortSpec `json:"sorts"`
	}{
		Sorts: []sortSpec{{Property: "createdat", Direction: "descending"}},
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/v1/databases/"+c.databaseID+"/query", nil, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}

	var out queryResponse
	if err := c.decode(resp, "QueryPages", &out); err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(out.Results))
	for _, raw := range out.Results {
		pages = append(pages, pageFromRaw(raw))
	}
	return pages, nil
}

type sortSpec struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// GetPage 는 단일 페이지 메타데이터를 조회한다. 없으면 ErrNotFound.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	formatted := FormatID(pageID)

	var raw rawPage
	if err := c.get(ctx, "/v1/pages/"+formatted, nil, "GetPage", &raw); err != nil {
		return nil, err
	}

	page := pageFromRaw(raw)
	page.ID = formatted
	return &page, nil
}

// pageFromRaw 는 속성 맵에서 title/status/createdat/updatedat 을 추출한다.
func pageFromRaw(raw rawPage) Page {
	page := Page{
		ID:     raw.ID,
		Title:  "Untitled",
		Status: "Draft",
	}

	// 제목은 이름과 무관하게 title 타입 속성 중 첫 번째 것을 쓴다.
	for _, prop := range raw.Properties {
		if prop.Type == "title" && len(prop.Title) > 0 && prop.Title[0].PlainText != "" {
			page.Title = prop.Title[0].PlainText
			break
		}
	}

	if prop, ok := lookupProperty(raw.Properties, "status"); ok {
		switch {
		case prop.Type == "select" && prop.Select != nil && prop.Select.Name != "":
			page.Status = prop.Select.Name
		case prop.Type == "status" && prop.Status != nil && prop.Status.Name != "":
			page.Status = prop.Status.Name
		case prop.Type == "rich_text" && len(prop.RichText) > 0:
			page.Status = joinPlainText(prop.RichText)
		case prop.Type == "checkbox" && prop.Checkbox != nil:
			if *prop.Checkbox {
				page.Status = "완료"
			}
		}
	}

	if prop, ok := lookupProperty(raw.Properties, "createdat"); ok {
		switch {
		case prop.Type == "date" && prop.Date != nil:
			page.CreatedAt = prop.Date.Start
		case prop.Type == "created_time" && prop.CreatedTime != "":
			page.CreatedAt = prop.CreatedTime
		}
	}

	if prop, ok := lookupProperty(raw.Properties, "updatedat"); ok {
		switch {
		case prop.Type == "date" && prop.Date != nil:
			page.UpdatedAt = prop.Date.Start
		case prop.Type == "last_edited_time" && prop.LastEditedTime != "":
			page.UpdatedAt = prop.LastEditedTime
		}
	}

	return page
}

// lookupProperty 는 소문자/첫글자 대문자 두 표기를 모두 허용한다.
func lookupProperty(props map[string]rawProperty, name string) (rawProperty, bool) {
	if prop, ok := props[name]; ok {
		return prop, true
	}
	capitalized := strings.ToUpper(name[:1]) + name[1:]
	prop, ok := props[capitalized]
	return prop, ok
}

func joinPlainText(spans []RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.PlainText)
	}
	return sb.String()
}
