package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/auth"
	"game-news/internal/logger"
)

// AdminAuth 는 요청 헤더의 세션 토큰을 검증하고, role 이 'admin'인지 확인한다.
func AdminAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		subject, role, err := jwtManager.Parse(token)
		if err != nil {
			logger.Log.Warnf("session token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			logger.Log.Warnf("access denied: subject %s has role %s, want admin", subject, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		// 컨텍스트에 세션 정보 저장
		c.Set("subject", subject)
		c.Set("role", role)

		c.Next()
	}
}

// UserAuth 는 업보트 토글처럼 사용자 식별만 필요한 엔드포인트용이다.
// 유효한 토큰이면 role 과 무관하게 subject 를 컨텍스트에 저장한다.
func UserAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		subject, role, err := jwtManager.Parse(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set("subject", subject)
		c.Set("role", role)

		c.Next()
	}
}
