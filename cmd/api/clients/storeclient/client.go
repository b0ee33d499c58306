package storeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"game-news/cmd/api/httpclient"
)

// Client는 Supabase PostgREST API를 호출하는 얇은 클라이언트다.
//
// - 스토리지 엔진이나 SQL 을 전혀 알지 않고, 문서화된 REST 계약만 사용한다.
// - 공개 피드 조회는 anon 키, 검수(모더레이션) 변경은 service role 키를 사용한다.
//
// baseURL 예: https://xyzcompany.supabase.co

type Client struct {
	base *httpclient.BaseClient
}

var (
	ErrNotFound = errors.New("resource not found")

	// ErrConflict 는 유니크 제약 위반 시 반환된다. (예: 같은 포스트 중복 추천)
	ErrConflict = errors.New("resource already exists")

	// ErrNotConfigured 는 스토어 URL/키 환경변수가 비어 있을 때 반환된다.
	// 공개 피드는 이 에러를 표시 가능한 오류 상태로 강등시키고, 크래시하지 않는다.
	ErrNotConfigured = errors.New("store is not configured")
)

func newClient(key string) (*Client, error) {
	baseURL := os.Getenv("SUPABASE_URL")
	if baseURL == "" || key == "" {
		return nil, ErrNotConfigured
	}

	base := httpclient.NewBaseClient(baseURL)
	base.DefaultHeaders.Set("apikey", key)
	base.DefaultHeaders.Set("Authorization", "Bearer "+key)
	return &Client{base: base}, nil
}

// NewFromEnv 는 비특권(anon) 키를 사용하는 읽기용 클라이언트를 생성한다.
func NewFromEnv() (*Client, error) {
	return newClient(os.Getenv("SUPABASE_ANON_KEY"))
}

// NewServiceFromEnv 는 행 수준 권한(RLS)을 우회하는 service role 키 클라이언트를 생성한다.
// 검수 워크플로우와 아카이버 전용이다.
func NewServiceFromEnv() (*Client, error) {
	return newClient(os.Getenv("SUPABASE_SERVICE_KEY"))
}

// Health 는 posts 테이블에 대한 HEAD 요청으로 스토어 연결 상태를 확인한다.
func (c *Client) Health(ctx context.Context) error {
	query := url.Values{}
	query.Set("select", "id")

	req, err := c.base.NewRequest(ctx, http.MethodHead, "/rest/v1/posts", query, nil)
	if err != nil {
		return err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer httpclient.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("store health: status=%d", resp.StatusCode)
	}
	return nil
}

// decodeRows 는 PostgREST 배열 응답을 디코딩한다. 2xx 이외의 상태는 에러로 변환한다.
func decodeRows[T any](resp *http.Response, op string) ([]T, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp, op)
	}

	var out []T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("store %s: decode: %w", op, err)
	}
	return out, nil
}

// statusError 는 실패 응답을 본문 일부와 함께 에러로 감싼다.
func statusError(resp *http.Response, op string) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotAcceptable {
		return fmt.Errorf("store %s: %w", op, ErrNotFound)
	}
	if resp.StatusCode == http.StatusConflict {
		return fmt.Errorf("store %s: %w", op, ErrConflict)
	}
	return fmt.Errorf("store %s: status=%d body=%s", op, resp.StatusCode, strings.TrimSpace(string(b)))
}

// parseContentRangeTotal 은 "0-24/3573" 또는 "*/0" 형태의 Content-Range 헤더에서
// 전체 행 수를 파싱한다.
func parseContentRangeTotal(header string) (int64, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 || idx+1 >= len(header) {
		return 0, fmt.Errorf("unexpected Content-Range %q", header)
	}
	total := header[idx+1:]
	if total == "*" {
		return 0, fmt.Errorf("store did not return an exact count: %q", header)
	}
	return strconv.ParseInt(total, 10, 64)
}
