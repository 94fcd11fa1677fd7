package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/extraction"
	"github.com/bestofgoa/bok/internal/listings"
	"github.com/bestofgoa/bok/internal/repository"
)

// ListingService is the workflow surface the HTTP handlers depend on.
type ListingService interface {
	StartExtraction(ctx context.Context, et constants.EntityType, req listings.StartExtractionRequest) (*listings.StartResult, error)
	ExtractionStatus(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.JobSnapshot, error)
	GetReview(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error)
	UpdateReview(ctx context.Context, et constants.EntityType, id uuid.UUID, req listings.UpdateReviewRequest) (*entity.Listing, error)
	Publish(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error)
	Unpublish(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error)
	Delete(ctx context.Context, et constants.EntityType, id uuid.UUID) (*listings.DeleteReport, error)
	CheckDuplicate(ctx context.Context, et constants.EntityType, placeID, name, area string) (*entity.DuplicateResult, error)
	List(ctx context.Context, req *repository.ListListingsRequest) ([]*entity.Listing, int, error)
}

// Exporter produces the admin XLSX download.
type Exporter interface {
	ExportListingsXLSX(ctx context.Context, et constants.EntityType, active *bool) ([]byte, error)
}

type ListingHandler struct {
	svc      ListingService
	exporter Exporter
	logger   *slog.Logger
}

func NewListingHandler(svc ListingService, exporter Exporter, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{svc: svc, exporter: exporter, logger: logger}
}

type startExtractionBody struct {
	PlaceID     string          `json:"place_id"`
	SearchQuery string          `json:"search_query"`
	PlaceData   json.RawMessage `json:"place_data"`
	Override    bool            `json:"override"`
}

func (h *ListingHandler) StartExtraction(c *gin.Context) {
	var body startExtractionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.svc.StartExtraction(c.Request.Context(), entityType(c), listings.StartExtractionRequest{
		PlaceID:     body.PlaceID,
		SearchQuery: body.SearchQuery,
		PlaceData:   body.PlaceData,
		Override:    body.Override,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) && res != nil && res.Duplicate != nil {
			c.JSON(http.StatusConflict, res.Duplicate)
			return
		}
		h.logger.Error("http.start_extraction.failed", "entity_type", entityType(c), "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"entity_id": res.EntityID})
}

func (h *ListingHandler) ExtractionStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	snap, err := h.svc.ExtractionStatus(c.Request.Context(), entityType(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ListingHandler) GetReview(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	l, err := h.svc.GetReview(c.Request.Context(), entityType(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

type faqBody struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// updateReviewBody mirrors the editable review fields. Absent keys leave
// the stored value untouched.
type updateReviewBody struct {
	Name             *string    `json:"name"`
	Address          *string    `json:"address"`
	Area             *string    `json:"area"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
	Phone            *string    `json:"phone"`
	Email            *string    `json:"email"`
	Website          *string    `json:"website"`
	Instagram        *string    `json:"instagram"`
	Facebook         *string    `json:"facebook"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"short_description"`
	MetaTitle        *string    `json:"meta_title"`
	MetaDescription  *string    `json:"meta_description"`
	MetaKeywords     *string    `json:"meta_keywords"`
	PriceLevel       *int       `json:"price_level"`
	OpeningHours     *string    `json:"opening_hours"`
	BokScore         *float64   `json:"bok_score"`
	Verified         *bool      `json:"verified"`
	Featured         *bool      `json:"featured"`
	Attributes       *[]string  `json:"attributes"`
	FAQs             *[]faqBody `json:"faqs"`
}

func (h *ListingHandler) UpdateReview(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var body updateReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := listings.UpdateReviewRequest{
		UpdateListingRequest: repository.UpdateListingRequest{
			Name:             body.Name,
			Address:          body.Address,
			Area:             body.Area,
			Latitude:         body.Latitude,
			Longitude:        body.Longitude,
			Phone:            body.Phone,
			Email:            body.Email,
			Website:          body.Website,
			Instagram:        body.Instagram,
			Facebook:         body.Facebook,
			Description:      body.Description,
			ShortDescription: body.ShortDescription,
			MetaTitle:        body.MetaTitle,
			MetaDescription:  body.MetaDescription,
			MetaKeywords:     body.MetaKeywords,
			PriceLevel:       body.PriceLevel,
			OpeningHours:     body.OpeningHours,
			BokScore:         body.BokScore,
			Verified:         body.Verified,
			Featured:         body.Featured,
		},
		AttributeNames: body.Attributes,
	}
	if body.FAQs != nil {
		faqs := make([]entity.FAQ, len(*body.FAQs))
		for i, f := range *body.FAQs {
			faqs[i] = entity.FAQ{Question: f.Question, Answer: f.Answer}
		}
		req.FAQs = &faqs
	}

	l, err := h.svc.UpdateReview(c.Request.Context(), entityType(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *ListingHandler) Publish(c *gin.Context) {
	h.setActive(c, true)
}

func (h *ListingHandler) Unpublish(c *gin.Context) {
	h.setActive(c, false)
}

func (h *ListingHandler) setActive(c *gin.Context, active bool) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var (
		l   *entity.Listing
		err error
	)
	if active {
		l, err = h.svc.Publish(c.Request.Context(), entityType(c), id)
	} else {
		l, err = h.svc.Unpublish(c.Request.Context(), entityType(c), id)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	report, err := h.svc.Delete(c.Request.Context(), entityType(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ListingHandler) CheckDuplicate(c *gin.Context) {
	var q extraction.DuplicateQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	res, err := h.svc.CheckDuplicate(c.Request.Context(), entityType(c), q.PlaceID, q.Name, q.Area)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ListingHandler) List(c *gin.Context) {
	req := &repository.ListListingsRequest{
		EntityType: entityType(c),
		Area:       c.Query("area"),
		Search:     c.Query("q"),
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be a boolean"})
			return
		}
		req.Active = &active
	}
	req.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	req.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (h *ListingHandler) Export(c *gin.Context) {
	var active *bool
	if v := c.Query("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be a boolean"})
			return
		}
		active = &b
	}

	et := entityType(c)
	data, err := h.exporter.ExportListingsXLSX(c.Request.Context(), et, active)
	if err != nil {
		h.logger.Error("http.export.failed", "entity_type", et, "error", err)
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-listings-%s.xlsx", et, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
