package joboffers_test

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

func TestListJobOffersEmpty(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/joboffers", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var offers []any
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(offers) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(offers))
	}
}

func TestCreateJobOfferRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	body := `{"job_title":"Chef","job_description":"d"}`
	req := httptest.NewRequest(http.MethodPost, "/api/job", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID             int64  `json:"id"`
		JobTitle       string `json:"job_title"`
		JobDescription string `json:"job_description"`
		StagesCount    int    `json:"stages_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.StagesCount != 0 {
		t.Fatalf("expected stages_count 0, got %d", created.StagesCount)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/job/1", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var fetched struct {
		ID             int64  `json:"id"`
		JobTitle       string `json:"job_title"`
		JobDescription string `json:"job_description"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, fetched.ID)
	}
	if fetched.JobTitle != "Chef" {
		t.Fatalf("expected job_title Chef, got %q", fetched.JobTitle)
	}
	if fetched.JobDescription != "d" {
		t.Fatalf("expected job_description d, got %q", fetched.JobDescription)
	}
}

func TestGetJobOfferNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/job/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCreateJobOfferRequiresTitle(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/job", strings.NewReader(`{"job_description":"d"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
