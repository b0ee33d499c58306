package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"game-news/cmd/api/httpclient"
)

// InsertUpvote 는 (user, post) 추천 행을 추가한다.
// 복합 키 중복이면 스토어가 제약 위반을 반환하고 그대로 에러로 감싼다.
func (c *Client) InsertUpvote(ctx context.Context, postID, userID string) error {
	body := struct {
		PostID string `json:"post_id"`
		UserID string `json:"user_id"`
	}{PostID: postID, UserID: userID}

	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/rest/v1/upvotes", nil, bytes.NewReader(buf))
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
		return statusError(resp, "InsertUpvote")
	}
	return nil
}

// DeleteUpvote 는 본인의 추천 행을 삭제한다. 없으면 ErrNotFound.
func (c *Client) DeleteUpvote(ctx context.Context, postID, userID string) error {
	query := url.Values{}
	query.Set("post_id", "eq."+postID)
	query.Set("user_id", "eq."+userID)

	req, err := c.base.NewRequest(ctx, http.MethodDelete, "/rest/v1/upvotes", query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	rows, err := decodeRows[Upvote](resp, "DeleteUpvote")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUpvotesByPost 는 post_id 로 그룹한 추천 수 집계를 한 번의 쿼리로 조회한다.
// 포스트별 개별 카운트 쿼리 N 회를 대체한다.
func (c *Client) CountUpvotesByPost(ctx context.Context) ([]UpvoteCount, error) {
	query := url.Values{}
	query.Set("select", "post_id,count()")

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/upvotes", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows[UpvoteCount](resp, "CountUpvotesByPost")
}

// ListUpvotedPostIDs 는 주어진 사용자가 추천한 post_id 집합을 조회한다.
func (c *Client) ListUpvotedPostIDs(ctx context.Context, userID string) ([]string, error) {
	query := url.Values{}
	query.Set("select", "post_id")
	query.Set("user_id", "eq."+userID)

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/rest/v1/upvotes", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[struct {
		PostID string `json:"post_id"`
	}](resp, "ListUpvotedPostIDs")
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.PostID)
	}
	return out, nil
}
