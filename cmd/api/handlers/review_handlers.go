package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/dto"
	"game-news/cmd/api/services"
)

// ListPendingHandler godoc
// @Summary      검수 대기 목록 조회
// @Description  크롤러가 제출한 대기 기사 목록을 상태 필터와 함께 조회합니다.
// @Tags         admin
// @Security     BearerAuth
// @Param        status  query  string  false  "상태 필터 (pending/approved/rejected/all, 기본 pending)"
// @Produce      json
// @Success      200  {array}   dto.PendingPostDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /admin/review [get]
func ListPendingHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.DefaultQuery("status", "pending")

		rows, err := svc.ListPending(c.Request.Context(), status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_pending"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ApproveHandler godoc
// @Summary      대기 기사 승인
// @Description  대기 기사를 승인해 공개 피드로 승격시킵니다.
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "대기 기사 ID"
// @Produce      json
// @Success      200  {object}  dto.ReviewResultDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /admin/review/{id}/approve [post]
func ApproveHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := svc.Approve(c.Request.Context(), c.Param("id"))
		c.JSON(reviewStatus(result), result)
	}
}

// RejectHandler godoc
// @Summary      대기 기사 거부
// @Description  대기 기사를 거부합니다. note 는 선택이며 비어 있으면 사유 없이 기록됩니다.
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  string                 true   "대기 기사 ID"
// @Param        request  body  dto.RejectRequestDTO   false  "거부 사유"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ReviewResultDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /admin/review/{id}/reject [post]
func RejectHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RejectRequestDTO
		// 바디가 없는 거부 요청도 허용한다.
		_ = c.ShouldBindJSON(&req)

		result := svc.Reject(c.Request.Context(), c.Param("id"), req.Note)
		c.JSON(reviewStatus(result), result)
	}
}

// BulkApproveHandler godoc
// @Summary      대기 기사 일괄 승인
// @Description  선택한 대기 기사들을 일괄 승인합니다. 이미 결정된 기사는 조용히 제외되며 count 는 실제 승인된 수입니다.
// @Tags         admin
// @Security     BearerAuth
// @Param        request  body  dto.BulkApproveRequestDTO  true  "대기 기사 ID 목록"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ReviewResultDTO
// @Failure      400  {object}  dto.ReviewResultDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /admin/review/bulk-approve [post]
func BulkApproveHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BulkApproveRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ReviewResultDTO{Success: false, Error: "invalid request body"})
			return
		}

		result := svc.BulkApprove(c.Request.Context(), req.IDs)
		c.JSON(reviewStatus(result), result)
	}
}

// DeletePostHandler godoc
// @Summary      발행 포스트 삭제
// @Description  공개 피드에서 포스트를 삭제합니다. 포스트를 제거하는 유일한 경로입니다.
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "포스트 ID"
// @Produce      json
// @Success      200  {object}  dto.ReviewResultDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /admin/posts/{id} [delete]
func DeletePostHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := svc.DeletePost(c.Request.Context(), c.Param("id"))
		c.JSON(reviewStatus(result), result)
	}
}

// 검수 결과는 실패여도 바디로 사유를 전달한다. 상태 코드는 성공 여부만 구분한다.
func reviewStatus(result dto.ReviewResultDTO) int {
	if result.Success {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}
