package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ApproveUpdate 는 승인 시 posts_pending 상태 갱신 바디다. review_note 는 건드리지 않는다.
type ApproveUpdate struct {
	Status     string    `json:"status"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// RejectUpdate 는 거부 시 상태 갱신 바디다.
// ReviewNote 가 nil 이면 컬럼을 명시적으로 null 로 쓴다.
type RejectUpdate struct {
	Status     string    `json:"status"`
	ReviewedAt time.Time `json:"reviewed_at"`
	ReviewNote *string   `json:"review_note"`
}

// ListPending 은 검수 대기 행을 created_at 내림차순으로 조회한다.
// status 가 비어 있지 않으면 완전 일치 필터를 건다. ("all" 처리는 호출자 몫)
func (c *Client) ListPending(ctx context.Context, status string) ([]PendingPost, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")
	if status != "" {
		query.Set("status", "eq."+status)
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/posts_pending", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows[PendingPost](resp, "ListPending")
}

// GetPending 은 단일 검수 대기 행을 식별자로 조회한다. 없으면 ErrNotFound.
func (c *Client) GetPending(ctx context.Context, pendingID string) (*PendingPost, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+pendingID)

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/posts_pending", query, nil)
	if err != nil {
		return nil, err
	}
	// 단일 객체 표현을 요청한다. 일치 행이 없으면 PostgREST 가 406 을 반환한다.
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp, "GetPending")
	}

	var out PendingPost
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("store GetPending: decode: %w", err)
	}
	return &out, nil
}

// ListPendingByIDs 는 식별자 집합 중 status 가 정확히 pending 인 행만 조회한다.
// 이미 결정된 행은 조용히 제외된다.
func (c *Client) ListPendingByIDs(ctx context.Context, ids []string) ([]PendingPost, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "in.("+strings.Join(ids, ",")+")")
	query.Set("status", "eq."+StatusPending)

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/posts_pending", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows[PendingPost](resp, "ListPendingByIDs")
}

// UpdatePending 은 단일 행의 상태를 갱신하고 갱신된 행 수를 반환한다.
// 0 이면 해당 식별자의 행이 없는 것이다.
func (c *Client) UpdatePending(ctx context.Context, pendingID string, update any) (int, error) {
	query := url.Values{}
	query.Set("id", "eq."+pendingID)
	return c.patchPending(ctx, query, update, "UpdatePending")
}

// UpdatePendingByIDs 는 식별자 집합의 상태를 일괄 갱신한다.
// status=pending 가드가 걸려 있어 이미 결정된 행은 다시 쓰지 않는다.
func (c *Client) UpdatePendingByIDs(ctx context.Context, ids []string, update ApproveUpdate) (int, error) {
	query := url.Values{}
	query.Set("id", "in.("+strings.Join(ids, ",")+")")
	query.Set("status", "eq."+StatusPending)
	return c.patchPending(ctx, query, update, "UpdatePendingByIDs")
}

func (c *Client) patchPending(ctx context.Context, query url.Values, update any, op string) (int, error) {
	buf, err := json.Marshal(update)
	if err != nil {
		return 0, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPatch, "/rest/v1/posts_pending", query, bytes.NewReader(buf))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	// 갱신된 행 수를 확인하기 위해 representation 을 요청한다.
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.base.Do(req)
	if err != nil {
		return 0, err
	}
	rows, err := decodeRows[PendingPost](resp, op)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
