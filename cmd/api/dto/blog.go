package dto

// BlogPageDTO 는 블로그 목록의 한 항목이다.
type BlogPageDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// BlogPageDetailDTO 는 블록 시퀀스를 렌더링한 HTML 을 포함한 상세 페이지다.
type BlogPageDetailDTO struct {
	BlogPageDTO
	ContentHTML string `json:"content_html"`
}
