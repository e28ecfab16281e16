package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Errors raised while talking to the homework status endpoint.
var ErrConnectionFailure = fmt.Errorf("practicum API connection failure")
var ErrMalformedResponse = fmt.Errorf("malformed practicum API response")
var ErrIncorrectSchema = fmt.Errorf("expected key missing in practicum API response")

// UpstreamError reports a non-200 answer from the status endpoint.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == http.StatusNotFound {
		return "practicum API endpoint unavailable: status 404"
	}
	return fmt.Sprintf("practicum API answered with status %d", e.StatusCode)
}

// Client fetches homework statuses from the Practicum API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// Fetch performs one GET against the status endpoint, asking for updates
// newer than fromDate. The decoded body is returned without schema checks;
// CheckResponse validates it.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}
	defer resp.Body.Close()

	c.logger.WithField("status_code", resp.StatusCode).Debug("Status endpoint answered")

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return raw, nil
}
