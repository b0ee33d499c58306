package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/auth"
	"game-news/cmd/api/services"
)

// ListPostsHandler godoc
// @Summary      공개 피드 조회
// @Description  승인된 게임 뉴스 포스트를 최신순으로 페이지 단위 조회합니다. 토큰이 있으면 각 포스트에 본인 추천 여부가 포함됩니다.
// @Tags         posts
// @Param        page       query  int     false  "페이지 번호 (1부터 시작)"
// @Param        page_size  query  int     false  "페이지 크기 (최대 100, 기본값은 서버 설정)"
// @Param        category   query  string  false  "카테고리 라벨 (정확히 일치)"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.FeedService, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
		category := c.Query("category")

		// 토큰은 선택 사항이다. 유효하지 않으면 비로그인 조회로 취급한다.
		viewerID := ""
		if token, err := auth.ExtractBearerToken(c); err == nil && jwtManager != nil {
			if subject, _, err := jwtManager.Parse(token); err == nil {
				viewerID = subject
			}
		}

		result, err := svc.List(c.Request.Context(), category, page, pageSize, viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_posts"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListCategoriesHandler godoc
// @Summary      카테고리 목록 조회
// @Description  발행된 포스트에 존재하는 카테고리 라벨 목록을 조회합니다. (중복 제거, 정렬됨)
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.CategoryListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
