package services

import (
	"context"
	"strings"

	"game-news/cmd/api/clients/notionclient"
	"game-news/cmd/api/dto"
	"game-news/cmd/api/renderer"
)

// BlogService 는 외부 콘텐츠 API 를 읽어 블로그 목록과 상세를 제공한다.
type BlogService struct {
	content ContentSource
}

func NewBlogService(content ContentSource) *BlogService {
	return &BlogService{content: content}
}

// isPublished 는 페이지의 발행 여부를 판정한다.
// 상태 문자열을 소문자로 접었을 때 "published"/"publish" 이거나,
// 한국어 상태값이 정확히 "완료" 인 경우에만 발행으로 본다.
func isPublished(page notionclient.Page) bool {
	lowered := strings.ToLower(page.Status)
	return lowered == "published" || lowered == "publish" || page.Status == "완료"
}

// ListPublished 는 발행 페이지만 담은 목록을 생성 시각 내림차순으로 반환한다.
// 미발행 페이지는 존재 자체가 노출되지 않는다.
func (s *BlogService) ListPublished(ctx context.Context) ([]dto.BlogPageDTO, error) {
	pages, err := s.content.QueryPages(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlogPageDTO, 0, len(pages))
	for _, page := range pages {
		if !isPublished(page) {
			continue
		}
		out = append(out, dto.BlogPageDTO{
			ID:        page.ID,
			Title:     page.Title,
			CreatedAt: page.CreatedAt,
			UpdatedAt: page.UpdatedAt,
		})
	}
	return out, nil
}

// GetPageDetail 은 페이지 메타데이터와 블록 시퀀스를 조회해 정제된 HTML 로
// 렌더링한다. 미발행 페이지는 목록과 동일하게 존재하지 않는 것으로 처리한다.
func (s *BlogService) GetPageDetail(ctx context.Context, pageID string) (*dto.BlogPageDetailDTO, error) {
	pageID = notionclient.FormatID(pageID)

	page, err := s.content.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if !isPublished(*page) {
		return nil, notionclient.ErrNotFound
	}

	blocks, err := s.content.ListBlocks(ctx, pageID)
	if err != nil {
		return nil, err
	}

	html, err := renderer.RenderBlocks(blocks)
	if err != nil {
		return nil, err
	}

	return &dto.BlogPageDetailDTO{
		BlogPageDTO: dto.BlogPageDTO{
			ID:        page.ID,
			Title:     page.Title,
			CreatedAt: page.CreatedAt,
			UpdatedAt: page.UpdatedAt,
		},
		ContentHTML: html,
	}, nil
}
