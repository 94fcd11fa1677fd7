package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// SubmissionService is the triage surface the HTTP handlers depend on.
type SubmissionService interface {
	Create(ctx context.Context, body []byte) (*entity.Submission, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Submission, int, error)
	Transition(ctx context.Context, id uuid.UUID, to constants.SubmissionStatus, adminNotes *string) (*entity.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubmissionHandler struct {
	svc    SubmissionService
	logger *slog.Logger
}

func NewSubmissionHandler(svc SubmissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, logger: logger}
}

// Create is the public nomination endpoint; the service validates the raw
// body against its schema.
func (h *SubmissionHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Warn("http.submission.body_read_failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}
	sub, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *SubmissionHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	items, total, err := h.svc.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	sub, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

type transitionBody struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

func (h *SubmissionHandler) Transition(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var body transitionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	sub, err := h.svc.Transition(c.Request.Context(), id, constants.SubmissionStatus(body.Status), body.AdminNotes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
