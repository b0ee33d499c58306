package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authorization 헤더 검증 실패 사유. 응답 JSON 의 error 코드로 그대로 노출된다.
var (
	ErrMissingHeader = errors.New("missing_session_token")
	ErrInvalidFormat = errors.New("malformed_authorization_header")
	ErrEmptyToken    = errors.New("empty_session_token")
)

// ExtractBearerToken 은 Authorization 헤더에서 Bearer 세션 토큰을 꺼낸다.
// 스킴은 대소문자를 가리지 않는다.
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingHeader
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// AbortWithUnauthorized 는 401 과 error 코드 JSON 으로 요청을 중단시킨다.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
