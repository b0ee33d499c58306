package services

import (
	"crypto/subtle"
	"errors"
	"os"

	"game-news/cmd/api/auth"
)

// ErrInvalidPassword 는 관리자 비밀번호 불일치 시 반환된다.
// 핸들러는 이를 401 로 변환하며, 어떤 경우에도 기대값을 노출하지 않는다.
var ErrInvalidPassword = errors.New("invalid password")

// ErrPasswordNotConfigured 는 ADMIN_PASSWORD 가 설정되지 않은 경우 반환된다.
// 비밀번호 미설정 상태에서는 빈 문자열 비교로 뚫리지 않도록 로그인을 전면 차단한다.
var ErrPasswordNotConfigured = errors.New("admin password is not configured")

// AuthService 는 환경변수 기반 단일 비밀번호의 관리자 게이트를 담당한다.
// 사용자 계정 체계는 없으며, 성공 시 admin 역할의 세션 토큰을 발급한다.
type AuthService struct {
	jwtManager *auth.JWTManager
}

func NewAuthService(jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{jwtManager: jwtManager}
}

// Login 은 입력 비밀번호를 ADMIN_PASSWORD 와 정확히 비교해 세션 토큰을 발급한다.
func (s *AuthService) Login(password string) (string, error) {
	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		return "", ErrPasswordNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return "", ErrInvalidPassword
	}

	return s.jwtManager.Sign("admin", auth.RoleAdmin)
}
