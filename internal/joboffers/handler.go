package joboffers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job offer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/joboffers", h.list)
	rg.GET("/job/:id", h.get)
	rg.POST("/job", h.create)
}

func (h *Handler) list(c *gin.Context) {
	offers, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job offers", nil)
		return
	}
	respond.JSON(c, http.StatusOK, offers)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		return
	}
	c.Set("jobOfferId", id)

	offer, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, offer)
}

type createRequest struct {
	JobTitle         string `json:"job_title"`
	JobDescription   string `json:"job_description"`
	Responsibilities string `json:"responsibilities"`
	Requirements     string `json:"requirements"`
	Benefits         string `json:"benefits"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	offer, err := h.Svc.Create(c.Request.Context(), JobOffer{
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Benefits:         req.Benefits,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job_title is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to add job offer", nil)
		}
		return
	}
	c.Set("jobOfferId", offer.ID)

	respond.JSON(c, http.StatusCreated, offer)
}
