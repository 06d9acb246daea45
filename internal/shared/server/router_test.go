package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/bootstrap"
	"jobportal-backend/internal/shared/config"
)

func buildRouter(t *testing.T, adminAuth bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		SeedUsername:    "test",
		SeedPassword:    "test",
		AdminAuth:       adminAuth,
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestHealthEndpoint(t *testing.T) {
	router := buildRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestAdminRoutesOpenByDefault(t *testing.T) {
	router := buildRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAdminRoutesEnforcedWhenEnabled(t *testing.T) {
	router := buildRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	// Applicant-facing routes stay open even with the flag enabled.
	reqJobs := httptest.NewRequest(http.MethodGet, "/api/joboffers", nil)
	respJobs := httptest.NewRecorder()
	router.ServeHTTP(respJobs, reqJobs)

	if respJobs.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public route, got %d", respJobs.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := buildRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}
