package services

import (
	"errors"
	"testing"

	"game-news/cmd/api/auth"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	manager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewAuthService(manager)
}

func TestLoginIssuesAdminToken(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "correct-horse")
	svc := newTestAuthService(t)

	token, err := svc.Login("correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}

	manager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subject, role, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if subject != "admin" || role != auth.RoleAdmin {
		t.Fatalf("expected admin token, got subject=%q role=%q", subject, role)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "correct-horse")
	svc := newTestAuthService(t)

	for _, password := range []string{"", "wrong", "correct-horse ", "Correct-horse"} {
		if _, err := svc.Login(password); !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword for %q, got %v", password, err)
		}
	}
}

func TestLoginFailsClosedWithoutConfiguredPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	svc := newTestAuthService(t)

	// 비밀번호가 설정되지 않았을 때 빈 문자열로 로그인되면 안 된다.
	if _, err := svc.Login(""); !errors.Is(err, ErrPasswordNotConfigured) {
		t.Fatalf("expected ErrPasswordNotConfigured, got %v", err)
	}
}
