// Package runner is the client for the external extraction engine. The
// engine owns the pipeline itself (provider fetches, AI enrichment, image
// processing) and writes results to the shared database; this API only
// starts jobs and reads their progress.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// StartJobRequest tells the engine which listing stub to populate.
type StartJobRequest struct {
	EntityType  constants.EntityType `json:"entity_type"`
	EntityID    uuid.UUID            `json:"entity_id"`
	PlaceID     string               `json:"place_id,omitempty"`
	SearchQuery string               `json:"search_query,omitempty"`
	PlaceData   json.RawMessage      `json:"place_data,omitempty"`
}

// Runner is the engine surface the HTTP handlers depend on.
type Runner interface {
	StartJob(ctx context.Context, req StartJobRequest) error
	JobStatus(ctx context.Context, et constants.EntityType, entityID uuid.UUID) (*entity.JobSnapshot, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) StartJob(ctx context.Context, req StartJobRequest) error {
	url := fmt.Sprintf("%s/extract", c.baseURL)
	if err := c.doJSON(ctx, http.MethodPost, url, req, nil); err != nil {
		c.logger.Error("runner.start.failed", "entity_type", req.EntityType, "entity_id", req.EntityID, "error", err)
		return fmt.Errorf("start extraction job: %w", err)
	}
	c.logger.Info("runner.start.ok", "entity_type", req.EntityType, "entity_id", req.EntityID)
	return nil
}

func (c *Client) JobStatus(ctx context.Context, et constants.EntityType, entityID uuid.UUID) (*entity.JobSnapshot, error) {
	var snap entity.JobSnapshot
	url := fmt.Sprintf("%s/status/%s/%s", c.baseURL, et, entityID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &snap); err != nil {
		return nil, fmt.Errorf("fetch job status: %w", err)
	}
	return &snap, nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		reader = bytes.NewReader(bs)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Debug("runner.http.response",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
