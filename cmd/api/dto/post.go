package dto

import "time"

// PostDTO exposes the minimal fields needed for the public feed.
// UpvoteCount/IsUpvoted are filled only by the enriched feed variant;
// IsUpvoted additionally requires an authenticated viewer.
type PostDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	OriginalLink string    `json:"original_link"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ViewCount    int64     `json:"view_count,omitempty"`
	UpvoteCount  int64     `json:"upvote_count"`
	IsUpvoted    *bool     `json:"is_upvoted,omitempty"`
}

// CategoryListDTO 는 사이드바용 카테고리 라벨 목록이다. (중복 제거, 정렬됨)
type CategoryListDTO struct {
	Categories []string `json:"categories"`
}
