package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"game-news/cmd/api/dto"
	"game-news/config"
)

// 요청 쿼리로 키울 수 있는 페이지 크기의 상한이다.
const maxPageSize = 100

// FeedService 는 공개 피드 조회와 추천 수/추천 여부 보강을 담당한다.
type FeedService struct {
	store FeedStore
}

func NewFeedService(store FeedStore) *FeedService {
	return &FeedService{store: store}
}

// List 는 카테고리 필터가 적용된 피드 한 페이지를 반환한다.
//
// 목록 조회와 추천 수 집계는 포스트 수와 무관하게 고정 개수의 스토어 요청으로
// 끝난다. viewerID 가 있으면 해당 사용자의 추천 포스트 집합을 함께 조회해
// is_upvoted 를 채운다. 비로그인 조회에서는 is_upvoted 가 생략된다.
//
// 정렬은 created_at 내림차순이며 스토어 쿼리가 보장한다. Total 은 필터 적용
// 후 전체 건수다.
func (s *FeedService) List(ctx context.Context, category string, page, pageSize int, viewerID string) (*dto.Pagination[dto.PostDTO], error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = config.FeedPageSize()
	}
	// "all" 은 필터 없음과 동의어다.
	if category == "all" {
		category = ""
	}

	g, gctx := errgroup.WithContext(ctx)

	var (
		rows       []dto.PostDTO
		total      int64
		countsByID map[string]int64
		upvotedSet map[string]struct{}
	)

	g.Go(func() error {
		list, err := s.store.ListPosts(gctx, category)
		if err != nil {
			return err
		}
		total = int64(len(list))
		rows = make([]dto.PostDTO, 0, len(list))
		for _, p := range list {
			rows = append(rows, dto.PostDTO{
				ID:           p.ID,
				Title:        p.Title,
				Summary:      p.Summary,
				OriginalLink: p.OriginalLink,
				Category:     p.Category,
				Tags:         p.Tags,
				CreatedAt:    p.CreatedAt,
				ViewCount:    p.ViewCount,
			})
		}
		return nil
	})

	g.Go(func() error {
		counts, err := s.store.CountUpvotesByPost(gctx)
		if err != nil {
			return err
		}
		countsByID = make(map[string]int64, len(counts))
		for _, c := range counts {
			countsByID[c.PostID] = c.Count
		}
		return nil
	})

	if viewerID != "" {
		g.Go(func() error {
			ids, err := s.store.ListUpvotedPostIDs(gctx, viewerID)
			if err != nil {
				return err
			}
			upvotedSet = make(map[string]struct{}, len(ids))
			for _, id := range ids {
				upvotedSet[id] = struct{}{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].UpvoteCount = countsByID[rows[i].ID]
		if viewerID != "" {
			_, ok := upvotedSet[rows[i].ID]
			upvoted := ok
			rows[i].IsUpvoted = &upvoted
		}
	}

	// 페이지 범위를 벗어나면 빈 목록을 반환한다. (에러가 아니다)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return &dto.Pagination[dto.PostDTO]{
		Data:     rows[start:end],
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// Categories 는 발행된 포스트에 존재하는 카테고리 라벨의 중복 제거, 정렬된
// 목록을 반환한다. 포스트가 없으면 빈 목록이다.
func (s *FeedService) Categories(ctx context.Context) (*dto.CategoryListDTO, error) {
	labels, err := s.store.ListPostCategories(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(labels))
	uniq := make([]string, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		uniq = append(uniq, label)
	}
	sort.Strings(uniq)

	return &dto.CategoryListDTO{Categories: uniq}, nil
}
