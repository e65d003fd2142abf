package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerready_backend/internal/config"
	"careerready_backend/internal/model"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}
}

// viewerEcho reports who the middleware identified, or "anonymous".
func viewerEcho(c *gin.Context) {
	if claims := util.GetUserFromContext(c); claims != nil {
		c.String(http.StatusOK, claims.UserID)
		return
	}
	c.String(http.StatusOK, "anonymous")
}

func TestTryAuthMiddlewareIdentifiesViewer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := authTestConfig()
	router := gin.New()
	router.GET("/view", TryAuthMiddleware(cfg), viewerEcho)

	user := &model.User{Email: "viewer@example.com"}
	user.ID = "viewer-1"
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "viewer-1" {
		t.Errorf("expected claims for viewer-1, got %q", w.Body.String())
	}
}

func TestTryAuthMiddlewareNeverRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := authTestConfig()
	router := gin.New()
	router.GET("/view", TryAuthMiddleware(cfg), viewerEcho)

	cases := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/view", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if w.Body.String() != "anonymous" {
				t.Errorf("expected anonymous view, got %q", w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := authTestConfig()
	router := gin.New()
	router.GET("/private", AuthMiddleware(cfg), viewerEcho)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
