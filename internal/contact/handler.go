package contact

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/shared/metrics"
	"jobportal-backend/internal/shared/server/respond"
	"jobportal-backend/internal/shared/telemetry"
)

const thanksPath = "/thanksmail"

// Handler wires the contact-form route to a Dispatcher.
type Handler struct {
	Dispatcher Dispatcher
	Recipient  string
}

// NewHandler constructs a Handler.
func NewHandler(dispatcher Dispatcher, recipient string) *Handler {
	return &Handler{Dispatcher: dispatcher, Recipient: recipient}
}

// RegisterRoutes attaches the contact route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.send)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	msg := Message{
		From:    req.Email,
		To:      h.Recipient,
		Subject: fmt.Sprintf("Contact Us Message from %s", req.Name),
		Body:    req.Message,
	}

	if err := h.Dispatcher.Send(c.Request.Context(), msg); err != nil {
		telemetry.Error("contact.dispatch.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		metrics.IncContactDispatch("error")
		respond.Error(c, http.StatusInternalServerError, "dispatch_error", "failed to send email", nil)
		return
	}

	metrics.IncContactDispatch("ok")
	c.Redirect(http.StatusFound, thanksPath)
}
