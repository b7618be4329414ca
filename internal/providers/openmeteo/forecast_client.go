package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"facility-services/internal/providers/breaker"

	"github.com/sony/gobreaker"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.14&longitude=11.58&hourly=temperature_2m,weather_code,precipitation,soil_temperature_0cm&timezone=Europe%2FBerlin&forecast_days=3
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var hourlyVars = []string{
	"temperature_2m",
	"weather_code",
	"precipitation",
	"precipitation_probability",
	"relative_humidity_2m",
	"wind_speed_10m",
	"wind_direction_10m",
	"cloud_cover",
	"soil_temperature_0cm",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, timeout, breakerTimeout time.Duration, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    breaker.New("openmeteo-forecast", breakerTimeout, logger),
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches the hourly forecast in metric units. Times in the
// response are local to timezone.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude, elevationMeters float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	q.Set("elevation", strconv.FormatFloat(elevationMeters, 'f', 0, 64))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timezone", timezone)
	q.Set("timeformat", "iso8601")
	q.Set("temperature_unit", "celsius")
	q.Set("wind_speed_unit", "kmh")
	q.Set("precipitation_unit", "mm")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast", "url", u.String())

	return breaker.Execute(c.breaker, func() (*ForecastAPIResponse, error) {
		var apiResp ForecastAPIResponse
		if err := getJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
			c.logger.Error("failed to fetch forecast", "error", err)
			return nil, err
		}
		c.logger.Debug("successfully fetched forecast",
			"latitude", latitude,
			"longitude", longitude,
			"hours", len(apiResp.Hourly.Time),
		)
		return &apiResp, nil
	})
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
