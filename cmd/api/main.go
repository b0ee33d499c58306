package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"game-news/cmd/api/router"
	"game-news/config"
	_ "game-news/docs" // swag will generate this package
)

// @title           Game News API
// @version         1.0
// @description     게임 뉴스 피드, 블로그, 검수 워크플로우 API
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()

	r := router.New()

	// 브라우저 프론트엔드가 다른 오리진에서 호출하므로 CORS 를 허용한다.
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	if err := http.ListenAndServe(":8080", handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
