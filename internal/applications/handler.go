package applications

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/shared/metrics"
	"jobportal-backend/internal/shared/server/respond"
)

const (
	resumeContentType   = "application/pdf"
	resumeFileName      = "resume.pdf"
	coverLetterFileName = "cover_letter.txt"

	defaultMaxUploadBytes = 10 << 20
)

// Handler wires HTTP handlers to the application service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterPublicRoutes attaches the applicant-facing submission route.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/application", h.submit)
}

// RegisterAdminRoutes attaches the administrative application routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.POST("/check-cv", h.checkCV)
	rg.DELETE("/delete-application/:id", h.delete)
	rg.GET("/download-cover-letter/:id", h.downloadCoverLetter)
	rg.GET("/download-resume/:id", h.downloadResume)
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch applications", nil)
		return
	}
	respond.JSON(c, http.StatusOK, apps)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume", nil)
		return
	}
	defer file.Close()

	resume, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume", nil)
		return
	}

	sub := Submission{
		ApplicantName:  c.PostForm("applicant_name"),
		ApplicantEmail: c.PostForm("email"),
		PhoneNumber:    c.PostForm("phone_number"),
		JobOfferID:     c.PostForm("job_offer_id"),
		CoverLetter:    c.PostForm("cover_letter"),
		AgreeToTerms:   c.PostForm("agreeToTerms"),
	}

	id, err := h.Svc.Submit(c.Request.Context(), sub, resume)
	if err != nil {
		switch {
		case errors.Is(err, ErrResumeRequired):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume is required", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid application fields", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to add application", nil)
		}
		return
	}
	c.Set("applicationId", id)
	metrics.IncApplicationSubmitted()

	c.Status(http.StatusOK)
}

type checkCVRequest struct {
	ID int64 `json:"id"`
}

func (h *Handler) checkCV(c *gin.Context) {
	var req checkCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("applicationId", req.ID)

	if err := h.Svc.MarkCvChecked(c.Request.Context(), req.ID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to check CV", nil)
		return
	}
	respond.Text(c, http.StatusOK, "CV checked successfully")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid application id", nil)
		return
	}
	c.Set("applicationId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete application", nil)
		return
	}
	respond.Text(c, http.StatusOK, "Application deleted successfully")
}

func (h *Handler) downloadCoverLetter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
		return
	}
	c.Set("applicationId", id)

	coverLetter, err := h.Svc.CoverLetter(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch cover letter", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+coverLetterFileName+`"`)
	c.Data(http.StatusOK, "text/plain", []byte(coverLetter))
}

func (h *Handler) downloadResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return
	}
	c.Set("applicationId", id)

	resume, err := h.Svc.Resume(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+resumeFileName+`"`)
	c.Data(http.StatusOK, resumeContentType, resume)
}
