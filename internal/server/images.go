package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// ImageService is the moderation surface the HTTP handlers depend on.
type ImageService interface {
	List(ctx context.Context, listingID uuid.UUID) ([]entity.Image, error)
	Add(ctx context.Context, listingID uuid.UUID, url, altText string) (*entity.Image, error)
	Moderate(ctx context.Context, id uuid.UUID, status constants.ImageStatus) (*entity.Image, error)
	UpdateAltText(ctx context.Context, id uuid.UUID, altText string) (*entity.Image, error)
	SetHero(ctx context.Context, listingID, imageID uuid.UUID) (*entity.Image, error)
	Reorder(ctx context.Context, listingID uuid.UUID, imageIDs []uuid.UUID) ([]entity.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ImageHandler struct {
	svc    ImageService
	logger *slog.Logger
}

func NewImageHandler(svc ImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{svc: svc, logger: logger}
}

func (h *ImageHandler) List(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	imgs, err := h.svc.List(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": imgs})
}

type addImageBody struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}

func (h *ImageHandler) Add(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var body addImageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	img, err := h.svc.Add(c.Request.Context(), id, body.URL, body.AltText)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

type moderateImageBody struct {
	Status string `json:"status"`
}

func (h *ImageHandler) Moderate(c *gin.Context) {
	imageID, ok := pathUUID(c, "imageID")
	if !ok {
		return
	}
	var body moderateImageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	img, err := h.svc.Moderate(c.Request.Context(), imageID, constants.ImageStatus(body.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

type altTextBody struct {
	AltText string `json:"alt_text"`
}

func (h *ImageHandler) UpdateAltText(c *gin.Context) {
	imageID, ok := pathUUID(c, "imageID")
	if !ok {
		return
	}
	var body altTextBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	img, err := h.svc.UpdateAltText(c.Request.Context(), imageID, body.AltText)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

type reorderBody struct {
	ImageIDs []uuid.UUID `json:"image_ids"`
}

func (h *ImageHandler) Reorder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var body reorderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	imgs, err := h.svc.Reorder(c.Request.Context(), id, body.ImageIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": imgs})
}

func (h *ImageHandler) SetHero(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	imageID, ok := pathUUID(c, "imageID")
	if !ok {
		return
	}
	img, err := h.svc.SetHero(c.Request.Context(), id, imageID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *ImageHandler) Delete(c *gin.Context) {
	imageID, ok := pathUUID(c, "imageID")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), imageID); err != nil {
		h.logger.Error("http.image.delete_failed", "image_id", imageID, "error", err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
