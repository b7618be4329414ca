package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"facility-services/internal/providers/breaker"

	"github.com/sony/gobreaker"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=48.1372&longitude=11.5756
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
)

type ElevationClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
}

func NewElevationClient(baseURL string, timeout, breakerTimeout time.Duration, logger *slog.Logger) *ElevationClient {
	if baseURL == "" {
		baseURL = baseElevationURL
	}
	return &ElevationClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    breaker.New("openmeteo-elevation", breakerTimeout, logger),
	}
}

func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (*ElevationAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', 6, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', 6, 64))
	u.RawQuery = q.Encode()

	return breaker.Execute(c.breaker, func() (*ElevationAPIResponse, error) {
		var apiResp ElevationAPIResponse
		if err := getJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
			return nil, err
		}
		return &apiResp, nil
	})
}
