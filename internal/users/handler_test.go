package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/bootstrap"
	"jobportal-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		SeedUsername:    "test",
		SeedPassword:    "test",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postLogin(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLoginSeededUserReturnsToken(t *testing.T) {
	router := newTestRouter(t)

	resp := postLogin(t, router, `{"username":"test","password":"test"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatalf("expected token in response")
	}
	if len(strings.Split(payload.Token, ".")) != 3 {
		t.Fatalf("expected a signed token, got %q", payload.Token)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"username":"test","password":"wrong"}`,
		`{"username":"nobody","password":"test"}`,
	} {
		resp := postLogin(t, router, body)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status 401, got %d", body, resp.Code)
		}
	}
}
