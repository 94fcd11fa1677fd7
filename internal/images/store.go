package images

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// HTTPStore removes stored assets by issuing DELETE requests against their
// URLs, the contract our media server exposes for processed images.
type HTTPStore struct {
	http   *http.Client
	token  string
	logger *slog.Logger
}

func NewHTTPStore(token string, logger *slog.Logger) *HTTPStore {
	return &HTTPStore{
		http:   &http.Client{Timeout: 30 * time.Second},
		token:  token,
		logger: logger,
	}
}

func (s *HTTPStore) Remove(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	// a missing object counts as removed
	if resp.StatusCode/100 != 2 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	s.logger.Debug("store.removed", "url", url, "status", resp.StatusCode)
	return nil
}
