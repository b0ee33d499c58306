package storeclient

import "time"

// PendingPost 상태 값. pending 이 초기 상태이며 approved/rejected 는 종결 상태다.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Post 는 공개 피드에 노출되는 발행 완료 기사 행이다.
// id 와 created_at 은 스토어가 삽입 시점에 부여한다.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	OriginalLink string    `json:"original_link"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ViewCount    int64     `json:"view_count,omitempty"`
}

// NewPost 는 posts 테이블에 삽입할 행이다. 네 개 필드는 승인 시점의
// PendingPost 에서 그대로 복사된다. 그 외 컬럼은 스토어가 채운다.
type NewPost struct {
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	OriginalLink string `json:"original_link"`
	Category     string `json:"category"`
}

// ArchivedPost 는 CSV 아카이브에서 복원하는 전체 행이다. id 와 created_at 을
// 그대로 실어 보내야 복원된 글이 피드의 원래 위치를 유지한다.
type ArchivedPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	OriginalLink string    `json:"original_link"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingPost 는 크롤러가 제출한 검수 대기 행이다.
type PendingPost struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	OriginalLink string     `json:"original_link"`
	Category     string     `json:"category"`
	CreatedAt    time.Time  `json:"created_at"`
	Status       string     `json:"status"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	ReviewNote   *string    `json:"review_note"`
}

// Upvote 는 (user, post) 당 최대 한 건인 추천 행이다.
type Upvote struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UpvoteCount 는 post_id 별 집계 결과 행이다.
type UpvoteCount struct {
	PostID string `json:"post_id"`
	Count  int64  `json:"count"`
}
