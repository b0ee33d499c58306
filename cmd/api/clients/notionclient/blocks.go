package notionclient

import (
	"context"
	"strconv"
)

const blockPageSize = 100

type blockListResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// ListBlocks 는 페이지의 전체 블록을 문서 순서대로 조회한다.
// 페이지 크기 100으로 next_cursor 가 사라질 때까지 커서를 따라간다.
func (c *Client) ListBlocks(ctx context.Context, pageID string) ([]Block, error) {
	formatted := FormatID(pageID)

	var blocks []Block
	cursor := ""
	for {
		query := map[string]string{
			"page_size": strconv.Itoa(blockPageSize),
		}
		if cursor != "" {
			query["start_cursor"] = cursor
		}

		var out blockListResponse
		if err := c.get(ctx, "/v1/blocks/"+formatted+"/children", query, "ListBlocks", &out); err != nil {
			return nil, err
		}

		blocks = append(blocks, out.Results...)

		if out.NextCursor == nil || *out.NextCursor == "" {
			return blocks, nil
		}
		cursor = *out.NextCursor
	}
}
