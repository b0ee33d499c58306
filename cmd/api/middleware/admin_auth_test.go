package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"game-news/cmd/api/auth"
)

func newTestJWTManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	manager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return manager
}

func performRequest(handler gin.HandlerFunc, authorization string) (*httptest.ResponseRecorder, bool) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	router := gin.New()

	reached := false
	router.GET("/protected", handler, func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(recorder, request)

	return recorder, reached
}

func TestAdminAuthAllowsAdminToken(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.Sign("admin", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	recorder, reached := performRequest(AdminAuth(manager), "Bearer "+token)
	if !reached {
		t.Fatalf("expected handler to be reached")
	}
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	manager := newTestJWTManager(t)

	recorder, reached := performRequest(AdminAuth(manager), "")
	if reached {
		t.Fatalf("handler must not be reached without a token")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.Sign("user-1", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	recorder, reached := performRequest(AdminAuth(manager), "Bearer "+token)
	if reached {
		t.Fatalf("handler must not be reached with a user token")
	}
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", recorder.Code)
	}
}

func TestUserAuthAcceptsAnyValidToken(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.Sign("user-1", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	recorder, reached := performRequest(UserAuth(manager), "Bearer "+token)
	if !reached {
		t.Fatalf("expected handler to be reached")
	}
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
}

func TestUserAuthRejectsGarbageToken(t *testing.T) {
	manager := newTestJWTManager(t)

	recorder, reached := performRequest(UserAuth(manager), "Bearer not-a-token")
	if reached {
		t.Fatalf("handler must not be reached with a garbage token")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}
