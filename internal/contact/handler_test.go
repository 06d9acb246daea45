package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/contact"
)

type fakeDispatcher struct {
	sent []contact.Message
	err  error
}

func (d *fakeDispatcher) Send(ctx context.Context, msg contact.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, msg)
	return nil
}

func newContactRouter(dispatcher contact.Dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	contact.NewHandler(dispatcher, "office@hospitoolity.com").RegisterRoutes(api)
	return router
}

func TestContactDispatchRedirects(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	router := newContactRouter(dispatcher)

	body := `{"name":"Ada","email":"ada@example.com","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/thanksmail" {
		t.Fatalf("expected redirect to /thanksmail, got %q", loc)
	}

	if len(dispatcher.sent) != 1 {
		t.Fatalf("expected one dispatched message, got %d", len(dispatcher.sent))
	}
	msg := dispatcher.sent[0]
	if msg.To != "office@hospitoolity.com" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.Subject != "Contact Us Message from Ada" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.From != "ada@example.com" || msg.Body != "hello" {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestContactDispatchFailure(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("relay down")}
	router := newContactRouter(dispatcher)

	body := `{"name":"Ada","email":"ada@example.com","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "dispatch_error") {
		t.Fatalf("expected dispatch_error code, got %s", resp.Body.String())
	}
	if strings.Contains(resp.Body.String(), "relay down") {
		t.Fatalf("relay detail must not leak to the caller: %s", resp.Body.String())
	}
}

func TestContactRejectsInvalidBody(t *testing.T) {
	router := newContactRouter(&fakeDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
