package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the users service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the login route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid credentials", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"token": token})
}
