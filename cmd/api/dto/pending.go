package dto

import "time"

// PendingPostDTO 는 검수 화면에 노출되는 대기 행이다.
type PendingPostDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	OriginalLink string     `json:"original_link"`
	Category     string     `json:"category"`
	CreatedAt    time.Time  `json:"created_at"`
	Status       string     `json:"status" example:"pending"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote   *string    `json:"review_note,omitempty"`
}

// ReviewResultDTO 는 검수 작업의 공통 결과 형식이다.
// 실패는 호출 경계 밖으로 throw 되지 않고 이 형식으로 변환된다.
type ReviewResultDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	// Count 는 일괄 승인에서 실제로 승인된 행 수이다. (요청 수보다 적을 수 있다)
	Count int `json:"count,omitempty"`
}

// RejectRequestDTO 는 거부 요청 바디다. note 는 선택이다.
type RejectRequestDTO struct {
	Note string `json:"note"`
}

// BulkApproveRequestDTO 는 일괄 승인 요청 바디다.
type BulkApproveRequestDTO struct {
	IDs []string `json:"ids"`
}
