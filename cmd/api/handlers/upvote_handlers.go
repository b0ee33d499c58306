package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/dto"
	"game-news/cmd/api/services"
)

// AddUpvoteHandler godoc
// @Summary      포스트 추천
// @Description  현재 로그인한 사용자가 지정된 포스트를 추천합니다. 사용자/포스트 당 한 번만 가능합니다.
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "포스트 ID"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/upvote [post]
func AddUpvoteHandler(svc *services.UpvoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("subject")

		err := svc.Add(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, services.ErrAlreadyUpvoted) {
				c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "already_upvoted"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_add_upvote"})
			return
		}

		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "upvote_created"})
	}
}

// RemoveUpvoteHandler godoc
// @Summary      포스트 추천 취소
// @Description  현재 로그인한 사용자의 추천을 취소합니다.
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "포스트 ID"
// @Produce      json
// @Success      204  {string}  string  "콘텐츠 없음"
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/upvote [delete]
func RemoveUpvoteHandler(svc *services.UpvoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("subject")

		err := svc.Remove(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, services.ErrUpvoteNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "upvote_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_remove_upvote"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
