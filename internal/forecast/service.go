// Package forecast combines location lookup, the hourly forecast and the
// winter calculators into a single outlook for a coordinate.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"facility-services/internal/config"
	"facility-services/internal/i18n"
	"facility-services/internal/icerisk"
	"facility-services/internal/location"
	"facility-services/internal/providers/openmeteo"
	"facility-services/internal/snowfall"
	"facility-services/internal/timezone"
	"facility-services/internal/types"
)

const hourLayout = "2006-01-02T15:04"

var ErrNoForecastData = errors.New("forecast contains no usable hours")

type ForecastProvider interface {
	// GetForecast fetches the hourly forecast for the given coordinate, elevation and timezone
	GetForecast(ctx context.Context, latitude, longitude, elevationMeters float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetWinterOutlook(ctx context.Context, latitude, longitude float64, tr *i18n.Translator) (*Outlook, error)
}

type outlookService struct {
	forecastProvider ForecastProvider
	locationService  location.Service
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

func NewOutlookService(cfg *config.Config, locationService location.Service, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	p := cfg.Providers
	client := openmeteo.NewForecastClient(p.OpenMeteoURL, p.Timeout, p.BreakerTimeout, logger)
	return NewOutlookServiceWithProviders(client, locationService, tzSvc, cfg, logger), nil
}

func NewOutlookServiceWithProviders(
	forecastProvider ForecastProvider,
	locationService location.Service,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &outlookService{
		forecastProvider: forecastProvider,
		locationService:  locationService,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "outlook-service"),
		now:              time.Now,
	}
}

func (s *outlookService) GetWinterOutlook(ctx context.Context, latitude, longitude float64, tr *i18n.Translator) (*Outlook, error) {
	point, err := s.locationService.GetForecastPoint(ctx, latitude, longitude, tr.Language())
	if err != nil {
		return nil, err
	}

	loc, err := s.timezoneService.GetLocation(latitude, longitude)
	if err != nil {
		s.logger.Error("failed to determine timezone",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to determine timezone: %w", err)
	}

	s.logger.Debug("determined timezone for location",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", loc.String(),
	)

	apiResponse, err := s.forecastProvider.GetForecast(
		ctx,
		latitude,
		longitude,
		point.Elevation.Meters,
		s.cfg.App.ForecastDays,
		loc.String(),
	)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	now := s.now().In(loc)
	hours := toObservations(apiResponse.Hourly, loc)
	if len(hours) == 0 {
		return nil, ErrNoForecastData
	}

	current := currentConditions(apiResponse.Hourly, loc, now)
	assessment := icerisk.ClassifyIn(tr, current.Temperature, current.Precipitation, current.RelativeHumidity)

	return &Outlook{
		GeneratedAt:   now.UTC(),
		ForecastPoint: *point,
		Timezone:      loc.String(),
		Current:       current,
		IceRisk:       assessment,
		Deicing:       icerisk.RecommendDeicingIn(tr, assessment.Risk),
		Snowfall:      snowfall.Analyze(hours, now),
		Hours:         hours,
	}, nil
}

// toObservations converts the columnar hourly series into rows. Hours with an
// unparseable timestamp or without a temperature are dropped; a null
// temperature must not read as 0 °C.
func toObservations(h openmeteo.Hourly, loc *time.Location) []snowfall.Observation {
	out := make([]snowfall.Observation, 0, len(h.Time))
	for i, ts := range h.Time {
		t, err := time.ParseInLocation(hourLayout, ts, loc)
		if err != nil {
			continue
		}
		temperature := at(h.Temperature2M, i)
		if temperature == nil {
			continue
		}
		out = append(out, snowfall.Observation{
			Timestamp:                t,
			Temperature:              *temperature,
			Condition:                weatherAt(h.WeatherCode, i).Condition,
			Precipitation:            value(at(h.Precipitation, i)),
			PrecipitationProbability: at(h.PrecipitationProbability, i),
			RelativeHumidity:         at(h.RelativeHumidity2M, i),
			WindSpeed:                at(h.WindSpeed10M, i),
			CloudCover:               at(h.CloudCover, i),
			SoilTemperature:          at(h.SoilTemperature0Cm, i),
		})
	}
	return out
}

// currentConditions picks the most recent hour with a temperature that is not after now
func currentConditions(h openmeteo.Hourly, loc *time.Location, now time.Time) Current {
	nowIndex := -1
	for i, ts := range h.Time {
		t, err := time.ParseInLocation(hourLayout, ts, loc)
		if err != nil || at(h.Temperature2M, i) == nil {
			continue
		}
		if t.After(now) {
			// Before the first usable hour the forecast starts with it
			if nowIndex < 0 {
				nowIndex = i
			}
			break
		}
		nowIndex = i
	}

	timestamp, _ := time.ParseInLocation(hourLayout, at(h.Time, nowIndex), loc)

	return Current{
		Timestamp:        timestamp,
		Temperature:      value(at(h.Temperature2M, nowIndex)),
		Precipitation:    value(at(h.Precipitation, nowIndex)),
		RelativeHumidity: at(h.RelativeHumidity2M, nowIndex),
		Weather:          weatherAt(h.WeatherCode, nowIndex),
		Wind:             types.NewWind(at(h.WindSpeed10M, nowIndex), at(h.WindDirection10M, nowIndex)),
		SoilTemperature:  at(h.SoilTemperature0Cm, nowIndex),
	}
}

// weatherAt reports an unknown condition for a missing weather code
func weatherAt(codes []*int, i int) types.Weather {
	if code := at(codes, i); code != nil {
		return types.NewWeather(*code)
	}
	return types.Weather{Code: -1, Condition: types.GetWeatherCondition(-1)}
}

func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// at tolerates series shorter than the time axis
func at[T any](s []T, i int) T {
	if i < 0 || i >= len(s) {
		var zero T
		return zero
	}
	return s[i]
}
