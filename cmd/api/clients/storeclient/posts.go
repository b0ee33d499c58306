package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"game-news/cmd/api/httpclient"
)

// ListPosts 는 발행된 포스트 전체를 created_at 내림차순으로 조회한다.
// category 가 비어 있지 않으면 대소문자를 구분하는 완전 일치 필터를 건다.
func (c *Client) ListPosts(ctx context.Context, category string) ([]Post, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")
	if category != "" {
		query.Set("category", "eq."+category)
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/posts", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows[Post](resp, "ListPosts")
}

// ListPostCategories 는 posts 의 category 컬럼만 조회한다.
// PostgREST 에 distinct 가 없으므로 중복 제거는 호출자가 수행한다.
func (c *Client) ListPostCategories(ctx context.Context) ([]string, error) {
	query := url.Values{}
	query.Set("select", "category")

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/posts", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[struct {
		Category string `json:"category"`
	}](resp, "ListPostCategories")
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Category)
	}
	return out, nil
}

// InsertPosts 는 하나 이상의 포스트 행을 한 번의 요청으로 삽입한다.
// 실패 시 이 단계에서 부분 삽입은 커밋되지 않는다.
func (c *Client) InsertPosts(ctx context.Context, posts []NewPost) error {
	buf, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/rest/v1/posts", nil, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer httpclient.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp, "InsertPosts")
	}
	return nil
}

// DeletePost 는 발행된 포스트를 식별자로 삭제한다. 일치 행이 없으면 ErrNotFound.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	query := url.Values{}
	query.Set("id", "eq."+postID)

	req, err := c.base.NewRequest(ctx, http.MethodDelete, "/rest/v1/posts", query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	rows, err := decodeRows[Post](resp, "DeletePost")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("store DeletePost: %w", ErrNotFound)
	}
	return nil
}

// CountPosts 는 Prefer: count=exact HEAD 요청으로 전체 행 수를 조회한다.
func (c *Client) CountPosts(ctx context.Context) (int64, error) {
	return c.countTable(ctx, "posts")
}

// CountUpvotes 는 upvotes 테이블의 전체 행 수를 조회한다. (용량 리포트용)
func (c *Client) CountUpvotes(ctx context.Context) (int64, error) {
	return c.countTable(ctx, "upvotes")
}

// CountPendingPosts 는 posts_pending 테이블의 전체 행 수를 조회한다.
func (c *Client) CountPendingPosts(ctx context.Context) (int64, error) {
	return c.countTable(ctx, "posts_pending")
}

func (c *Client) countTable(ctx context.Context, table string) (int64, error) {
	query := url.Values{}
	query.Set("select", "id")

	req, err := c.base.NewRequest(ctx, http.MethodHead, "/rest/v1/"+table, query, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.base.Do(req)
	if err != nil {
		return 0, err
	}
	defer httpclient.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("store count %s: status=%d", table, resp.StatusCode)
	}
	return parseContentRangeTotal(resp.Header.Get("Content-Range"))
}

// ListPostsOlderThan 은 cutoff 이전에 생성된 포스트를 최대 limit 건 조회한다.
// limit 이 0 이하면 전체를 조회한다. (아카이버 전용)
func (c *Client) ListPostsOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]Post, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("created_at", "lt."+cutoff.UTC().Format(time.RFC3339))
	query.Set("order", "created_at.desc")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/posts", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows[Post](resp, "ListPostsOlderThan")
}

// DeletePostsByIDs 는 식별자 집합으로 포스트를 일괄 삭제하고 삭제된 행 수를 반환한다.
func (c *Client) DeletePostsByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := url.Values{}
	query.Set("id", "in.("+strings.Join(ids, ",")+")")

	req, err := c.base.NewRequest(ctx, http.MethodDelete, "/rest/v1/posts", query, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.base.Do(req)
	if err != nil {
		return 0, err
	}
	rows, err := decodeRows[Post](resp, "DeletePostsByIDs")
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// UpsertPosts 는 original_link 충돌 시 기존 행을 덮어쓰는 방식으로 포스트를 복원한다.
// id 와 created_at 까지 행 전체를 그대로 싣는다. (아카이브 CSV 복원 전용)
func (c *Client) UpsertPosts(ctx context.Context, posts []ArchivedPost) error {
	buf, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("on_conflict", "original_link")

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/rest/v1/posts", query, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer httpclient.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp, "UpsertPosts")
	}
	return nil
}
