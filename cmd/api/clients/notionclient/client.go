package notionclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"game-news/cmd/api/httpclient"
)

// Client는 Notion REST API를 호출하는 얇은 클라이언트다.
//
// - 데이터베이스(페이지 컬렉션) 쿼리, 페이지 메타데이터 조회, 블록 목록 조회만 사용한다.
// - 블록을 화면 조각으로 바꾸는 일은 renderer 패키지가 담당한다.

const notionVersion = "2022-06-28"

type Client struct {
	base       *httpclient.BaseClient
	databaseID string
}

var (
	ErrNotFound = errors.New("page not found")

	// ErrNotConfigured 는 NOTION_API_KEY / NOTION_DATABASE_ID 가 비어 있을 때 반환된다.
	ErrNotConfigured = errors.New("notion is not configured")
)

// NewFromEnv 는 환경변수에서 API 키와 데이터베이스 ID를 읽어 클라이언트를 생성한다.
// NOTION_BASE_URL 은 프록시나 테스트 서버를 가리킬 때만 설정한다.
func NewFromEnv() (*Client, error) {
	apiKey := os.Getenv("NOTION_API_KEY")
	databaseID := os.Getenv("NOTION_DATABASE_ID")
	if apiKey == "" || databaseID == "" {
		return nil, ErrNotConfigured
	}

	baseURL := os.Getenv("NOTION_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.notion.com"
	}

	base := httpclient.NewBaseClient(baseURL)
	base.DefaultHeaders.Set("Authorization", "Bearer "+apiKey)
	base.DefaultHeaders.Set("Notion-Version", notionVersion)

	return &Client{
		base:       base,
		databaseID: FormatID(databaseID),
	}, nil
}

// FormatID 는 하이픈 유무가 섞여 들어오는 Notion ID를 8-4-4-4-12 UUID 형태로 정규화한다.
func FormatID(id string) string {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) != 32 {
		return id
	}
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		clean[0:8], clean[8:12], clean[12:16], clean[16:20], clean[20:])
}

func (c *Client) decode(resp *http.Response, op string, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("notion %s: %w", op, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("notion %s: status=%d body=%s", op, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion %s: decode: %w", op, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, relPath string, query map[string]string, op string, out any) error {
	values := urlValues(query)
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, values, nil)
	if err != nil {
		return err
	}
	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	return c.decode(resp, op, out)
}
