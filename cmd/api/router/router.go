package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"game-news/cmd/api/auth"
	"game-news/cmd/api/clients/notionclient"
	"game-news/cmd/api/clients/storeclient"
	"game-news/cmd/api/handlers"
	"game-news/cmd/api/middleware"
	"game-news/cmd/api/services"
	"game-news/internal/logger"
	_ "game-news/docs"
)

// New 는 모든 클라이언트와 서비스를 조립해 라우터를 구성한다.
//
// 외부 백엔드 설정이 빠져 있어도 서버는 기동된다. 해당 기능 그룹만
// 503 으로 강등되며, 나머지 라우트는 정상 동작한다.
func New() *gin.Engine {
	r := gin.Default()

	// 익명 키 클라이언트는 공개 피드/추천용, 서비스 키 클라이언트는 검수용이다.
	store, storeErr := storeclient.NewFromEnv()
	adminStore, adminStoreErr := storeclient.NewServiceFromEnv()
	content, contentErr := notionclient.NewFromEnv()
	jwtManager, jwtErr := auth.NewJWTManagerFromEnv()

	for name, err := range map[string]error{
		"store":       storeErr,
		"admin store": adminStoreErr,
		"content":     contentErr,
		"jwt":         jwtErr,
	} {
		if err != nil {
			logger.WarnWithFields("backend unavailable, routes degraded to 503", logger.Fields{
				"backend": name,
				"error":   err.Error(),
			})
		}
	}

	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if storeErr != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "not_configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := store.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		feedSvc := services.NewFeedService(store)
		feed := api.Group("", requireBackend(storeErr))
		feed.GET("/posts", handlers.ListPostsHandler(feedSvc, jwtManager))
		feed.GET("/categories", handlers.ListCategoriesHandler(feedSvc))

		upvoteSvc := services.NewUpvoteService(store)
		upvotes := api.Group("", requireBackend(storeErr, jwtErr), middleware.UserAuth(jwtManager))
		upvotes.POST("/posts/:id/upvote", handlers.AddUpvoteHandler(upvoteSvc))
		upvotes.DELETE("/posts/:id/upvote", handlers.RemoveUpvoteHandler(upvoteSvc))

		blogSvc := services.NewBlogService(content)
		blog := api.Group("", requireBackend(contentErr))
		blog.GET("/blog", handlers.ListBlogPagesHandler(blogSvc))
		blog.GET("/blog/:pageId", handlers.GetBlogPageHandler(blogSvc))

		authSvc := services.NewAuthService(jwtManager)
		api.POST("/admin/login", requireBackend(jwtErr), handlers.AdminLoginHandler(authSvc))

		reviewSvc := services.NewReviewService(adminStore)
		admin := api.Group("/admin", requireBackend(adminStoreErr, jwtErr), middleware.AdminAuth(jwtManager))
		admin.GET("/review", handlers.ListPendingHandler(reviewSvc))
		admin.POST("/review/:id/approve", handlers.ApproveHandler(reviewSvc))
		admin.POST("/review/:id/reject", handlers.RejectHandler(reviewSvc))
		admin.POST("/review/bulk-approve", handlers.BulkApproveHandler(reviewSvc))
		admin.DELETE("/posts/:id", handlers.DeletePostHandler(reviewSvc))
	}

	return r
}

// requireBackend 는 조립 시점에 실패한 백엔드에 의존하는 라우트를 503 으로 막는다.
func requireBackend(errs ...error) gin.HandlerFunc {
	var failed error
	for _, err := range errs {
		if err != nil {
			failed = err
			break
		}
	}

	return func(c *gin.Context) {
		if failed != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "backend_not_configured"})
			return
		}
		c.Next()
	}
}
