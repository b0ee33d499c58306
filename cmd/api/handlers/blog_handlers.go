package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/clients/notionclient"
	"game-news/cmd/api/services"
)

// ListBlogPagesHandler godoc
// @Summary      블로그 목록 조회
// @Description  발행된 블로그 페이지 목록을 생성 시각 내림차순으로 조회합니다.
// @Tags         blog
// @Produce      json
// @Success      200  {array}   dto.BlogPageDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /blog [get]
func ListBlogPagesHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pages, err := svc.ListPublished(c.Request.Context())
		if err != nil {
			if errors.Is(err, notionclient.ErrNotConfigured) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "blog_not_configured"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blog_pages"})
			return
		}
		c.JSON(http.StatusOK, pages)
	}
}

// GetBlogPageHandler godoc
// @Summary      블로그 페이지 상세 조회
// @Description  페이지 메타데이터와 본문을 정제된 HTML 로 조회합니다. 미발행 페이지는 404 입니다.
// @Tags         blog
// @Param        pageId  path  string  true  "페이지 ID (하이픈 유무 무관)"
// @Produce      json
// @Success      200  {object}  dto.BlogPageDetailDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/{pageId} [get]
func GetBlogPageHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.GetPageDetail(c.Request.Context(), c.Param("pageId"))
		if err != nil {
			if errors.Is(err, notionclient.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "page_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_blog_page"})
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
