package openstreetmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"facility-services/internal/providers/breaker"

	"github.com/sony/gobreaker"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Overview/
// Sample requests:
//
//	https://nominatim.openstreetmap.org/reverse?lat=48.137&lon=11.575&format=jsonv2&addressdetails=1
//	https://nominatim.openstreetmap.org/search?q=Marienplatz+M%C3%BCnchen&format=jsonv2&addressdetails=1&countrycodes=de
const (
	baseURL          = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "facility-services/1.0"
)

// ErrNotFound is returned by Reverse when Nominatim has no address for the point
var ErrNotFound = errors.New("no address found")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a Nominatim client. Nominatim's usage policy requires an
// identifying User-Agent on every request.
func NewClient(base, userAgent string, timeout, breakerTimeout time.Duration, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		userAgent:  userAgent,
		breaker:    breaker.New("nominatim", breakerTimeout, logger),
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Reverse resolves a coordinate to an address in the requested language
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64, language string) (*LookupAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
	)

	var apiResp LookupAPIResponse
	if err := c.get(ctx, "/reverse", q, language, &apiResp); err != nil {
		return nil, err
	}
	// Nominatim answers 200 with an error body for points in the sea
	if apiResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, apiResp.Error)
	}

	c.logger.Debug("successfully fetched OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}

// Search geocodes a free-text address, restricted to countryCodes when set
func (c *Client) Search(ctx context.Context, query string, limit int, language, countryCodes string) (SearchAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	if countryCodes != "" {
		q.Set("countrycodes", countryCodes)
	}

	c.logger.Debug("searching OpenStreetMap", "query", query, "limit", limit)

	var apiResp SearchAPIResponse
	if err := c.get(ctx, "/search", q, language, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully searched OpenStreetMap", "query", query, "results", len(apiResp))

	return apiResp, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, language string, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	_, err = breaker.Execute(c.breaker, func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		if language != "" {
			req.Header.Set("Accept-Language", language)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("failed to fetch OpenStreetMap data", "path", path, "error", err)
			return struct{}{}, fmt.Errorf("failed to fetch: %w", err)
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			c.logger.Error("OpenStreetMap API returned error",
				"status_code", resp.StatusCode,
				"path", path,
				"response_body", string(body),
			)
			return struct{}{}, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.logger.Error("failed to decode OpenStreetMap response", "path", path, "error", err)
			return struct{}{}, fmt.Errorf("failed to decode response: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}
