package services

import (
	"context"
	"fmt"
	"time"

	"game-news/cmd/api/clients/storeclient"
	"game-news/cmd/api/dto"
	"game-news/internal/logger"
)

// ReviewService 는 크롤러가 제출한 대기 기사에 대한 검수 워크플로우를 담당한다.
//
// 상태 기계: pending 이 초기 상태이며 approved/rejected 는 종결 상태다.
// 종결 상태에서 빠져나오는 전이는 어떤 작업에서도 노출하지 않는다.
//
// 실패는 호출 경계 밖으로 throw 하지 않고 ReviewResultDTO{success:false, error}
// 로 변환한다. 에러 메시지는 실패한 단계(fetch/insert/update)를 드러낸다.
type ReviewService struct {
	store ReviewStore
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

// Approve 는 대기 기사를 승인해 공개 피드로 승격시킨다.
//
// (a) 대기 행 조회 (없으면 실패)
// (b) title/summary/original_link/category 를 그대로 복사한 포스트 행 삽입
// (c) 대기 행 상태를 approved 로 갱신, reviewed_at 기록
//
// (b)와 (c)는 단일 트랜잭션이 아니다. (c)에서 실패하면 포스트는 존재하지만
// 원본 대기 행은 pending 으로 남는 정합성 공백이 생긴다. 자동 복구 경로는
// 없으며, 운영자가 수동 복구할 수 있도록 에러 레벨로 남긴다.
func (s *ReviewService) Approve(ctx context.Context, pendingID string) dto.ReviewResultDTO {
	pending, err := s.store.GetPending(ctx, pendingID)
	if err != nil {
		return failure(fmt.Sprintf("failed to fetch: %v", err))
	}

	newPost := storeclient.NewPost{
		Title:        pending.Title,
		Summary:      pending.Summary,
		OriginalLink: pending.OriginalLink,
		Category:     pending.Category,
	}

	if err := s.store.InsertPosts(ctx, []storeclient.NewPost{newPost}); err != nil {
		return failure(fmt.Sprintf("insert failed: %v", err))
	}

	update := storeclient.ApproveUpdate{
		Status:     storeclient.StatusApproved,
		ReviewedAt: time.Now().UTC(),
	}
	if _, err := s.store.UpdatePending(ctx, pendingID, update); err != nil {
		logger.ErrorWithFields("approve left an inconsistent state: post inserted but pending row not updated", logger.Fields{
			"pending_id":    pendingID,
			"original_link": pending.OriginalLink,
			"error":         err.Error(),
		})
		return failure(fmt.Sprintf("failed to update status: %v", err))
	}

	return dto.ReviewResultDTO{Success: true, Count: 1}
}

// Reject 는 대기 기사를 거부한다. 포스트는 생성되지 않는다.
// note 가 빈 문자열이면 review_note 는 null 로 기록된다.
// 두 번 호출해도 같은 종결 상태를 다시 쓸 뿐이며, pending 여부를 사전 검사하지 않는다.
func (s *ReviewService) Reject(ctx context.Context, pendingID, note string) dto.ReviewResultDTO {
	update := storeclient.RejectUpdate{
		Status:     storeclient.StatusRejected,
		ReviewedAt: time.Now().UTC(),
	}
	if note != "" {
		update.ReviewNote = &note
	}

	affected, err := s.store.UpdatePending(ctx, pendingID, update)
	if err != nil {
		return failure(fmt.Sprintf("failed to reject post: %v", err))
	}
	if affected == 0 {
		return failure("pending post not found")
	}

	return dto.ReviewResultDTO{Success: true, Count: 1}
}

// BulkApprove 는 식별자 집합을 일괄 승인한다.
//
// - 빈 입력은 스토어 호출 없이 즉시 실패한다.
// - 현재 상태가 정확히 pending 인 행만 대상으로 하며, 이미 결정된 행은
//   조용히 제외된다. 결과의 Count 는 실제 승인된 행 수다.
// - 일괄 삽입 실패는 작업 전체를 중단시킨다. 그 단계에서 부분 삽입은
//   커밋되지 않지만, 이후 상태 갱신 실패는 단건 승인과 같은 정합성 공백을
//   배치 단위로 남긴다.
func (s *ReviewService) BulkApprove(ctx context.Context, pendingIDs []string) dto.ReviewResultDTO {
	if len(pendingIDs) == 0 {
		return failure("no posts selected")
	}

	pendingPosts, err := s.store.ListPendingByIDs(ctx, pendingIDs)
	if err != nil {
		return failure(fmt.Sprintf("failed to fetch posts: %v", err))
	}
	if len(pendingPosts) == 0 {
		return failure("no pending posts found")
	}

	postsToInsert := make([]storeclient.NewPost, 0, len(pendingPosts))
	approvedIDs := make([]string, 0, len(pendingPosts))
	for _, pending := range pendingPosts {
		postsToInsert = append(postsToInsert, storeclient.NewPost{
			Title:        pending.Title,
			Summary:      pending.Summary,
			OriginalLink: pending.OriginalLink,
			Category:     pending.Category,
		})
		approvedIDs = append(approvedIDs, pending.ID)
	}

	if err := s.store.InsertPosts(ctx, postsToInsert); err != nil {
		return failure(fmt.Sprintf("bulk insert failed: %v", err))
	}

	update := storeclient.ApproveUpdate{
		Status:     storeclient.StatusApproved,
		ReviewedAt: time.Now().UTC(),
	}
	if _, err := s.store.UpdatePendingByIDs(ctx, approvedIDs, update); err != nil {
		logger.ErrorWithFields("bulk approve left an inconsistent state: posts inserted but pending rows not updated", logger.Fields{
			"pending_ids": approvedIDs,
			"error":       err.Error(),
		})
		return failure(fmt.Sprintf("failed to update status: %v", err))
	}

	logger.InfoWithFields("bulk approved posts", logger.Fields{"count": len(pendingPosts)})

	return dto.ReviewResultDTO{Success: true, Count: len(pendingPosts)}
}

// ListPending 은 검수 화면용 대기 목록을 조회한다.
// status 가 "all" 또는 빈 문자열이면 전체를, 그 외에는 해당 상태만 반환한다.
func (s *ReviewService) ListPending(ctx context.Context, status string) ([]dto.PendingPostDTO, error) {
	if status == "all" {
		status = ""
	}

	rows, err := s.store.ListPending(ctx, status)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PendingPostDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.PendingPostDTO{
			ID:           row.ID,
			Title:        row.Title,
			Summary:      row.Summary,
			OriginalLink: row.OriginalLink,
			Category:     row.Category,
			CreatedAt:    row.CreatedAt,
			Status:       row.Status,
			ReviewedAt:   row.ReviewedAt,
			ReviewNote:   row.ReviewNote,
		})
	}
	return out, nil
}

// DeletePost 는 발행된 포스트를 명시적으로 삭제한다. 유일한 포스트 삭제 경로다.
func (s *ReviewService) DeletePost(ctx context.Context, postID string) dto.ReviewResultDTO {
	if err := s.store.DeletePost(ctx, postID); err != nil {
		return failure(fmt.Sprintf("failed to delete post: %v", err))
	}
	return dto.ReviewResultDTO{Success: true, Count: 1}
}

func failure(msg string) dto.ReviewResultDTO {
	return dto.ReviewResultDTO{Success: false, Error: msg}
}
