package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const applicationsPerJobPath = "/api/analytics/applications"

// ErrApplicationsPerJob is returned for every non-OK response.
var ErrApplicationsPerJob = errors.New("Failed to fetch applications per job")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the analytics API under baseURL. The
// httpClient is used as given; no timeout is added.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// GetApplicationsPerJob returns the decoded JSON body as is.
func (c *Client) GetApplicationsPerJob(ctx context.Context) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+applicationsPerJobPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create applications request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send applications request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrApplicationsPerJob
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read applications response: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("decode applications response: %w", err)
	}
	return parsed, nil
}
