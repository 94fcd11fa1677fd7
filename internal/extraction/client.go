package extraction

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

// StartRequest is the start-extraction payload. PlaceData carries the raw
// search result for the selected candidate; Override skips the server-side
// duplicate guard after the operator confirmed the warning.
type StartRequest struct {
	PlaceID     string          `json:"place_id"`
	SearchQuery string          `json:"search_query,omitempty"`
	PlaceData   json.RawMessage `json:"place_data,omitempty"`
	Override    bool            `json:"override,omitempty"`
}

// StartResponse identifies the eagerly created listing stub.
type StartResponse struct {
	EntityID uuid.UUID `json:"entity_id"`
}

// Client talks to the directory API over HTTP/JSON. It implements
// StatusClient and DuplicateChecker for the watcher and the guard.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// StartExtraction triggers an extraction job for a candidate and returns the
// identifier of the listing stub created for it.
func (c *Client) StartExtraction(ctx context.Context, et constants.EntityType, req StartRequest) (uuid.UUID, error) {
	var resp StartResponse
	url := fmt.Sprintf("%s/api/v1/%s/start-extraction", c.baseURL, et)
	if err := c.doJSON(ctx, http.MethodPost, url, req, &resp); err != nil {
		return uuid.Nil, err
	}
	return resp.EntityID, nil
}

// JobStatus fetches the current snapshot of a listing's extraction job.
func (c *Client) JobStatus(ctx context.Context, et constants.EntityType, entityID uuid.UUID) (*entity.JobSnapshot, error) {
	var snap entity.JobSnapshot
	url := fmt.Sprintf("%s/api/v1/%s/extraction-status/%s", c.baseURL, et, entityID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// FetchRecord loads the fully resolved listing from its canonical read
// endpoint (the comprehensive reload).
func (c *Client) FetchRecord(ctx context.Context, et constants.EntityType, entityID uuid.UUID) (*entity.Listing, error) {
	var l entity.Listing
	url := fmt.Sprintf("%s/api/v1/%s/%s/review", c.baseURL, et, entityID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CheckDuplicate queries the duplicate-check endpoint for a candidate.
func (c *Client) CheckDuplicate(ctx context.Context, et constants.EntityType, q DuplicateQuery) (*entity.DuplicateResult, error) {
	var res entity.DuplicateResult
	url := fmt.Sprintf("%s/api/v1/%s/check-duplicate", c.baseURL, et)
	if err := c.doJSON(ctx, http.MethodPost, url, q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// doJSON sends one JSON request and decodes a JSON response. Non-2xx
// responses become errors carrying the status code.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	reqID := uuid.New().String()
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
		c.logger.Warn("api.http.send_error", "req_id", reqID, "url", url, "error", err)
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("api.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Debug("api.http.response",
		"req_id", reqID,
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(raw),
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
