// Package location geocodes customer addresses and builds forecast points
// (coordinates, elevation and address) for the winter outlook.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"facility-services/internal/config"
	"facility-services/internal/providers/openmeteo"
	"facility-services/internal/providers/openstreetmap"
	"facility-services/internal/types"
)

const (
	searchLimit = 5
	// The company only serves the DACH region
	searchCountries = "de,at,ch"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrEmptyAddress     = errors.New("address must not be empty")
	ErrNoResults        = errors.New("no matching address found")
)

// Service provides location and elevation data
type Service interface {
	// Search geocodes a free-text address
	Search(ctx context.Context, address, language string) ([]types.Place, error)
	// GetForecastPoint retrieves elevation and address for a coordinate
	GetForecastPoint(ctx context.Context, latitude, longitude float64, language string) (*types.ForecastPoint, error)
}

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

// GeocodeProvider defines the interface for forward and reverse geocoding
type GeocodeProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64, language string) (*openstreetmap.LookupAPIResponse, error)
	Search(ctx context.Context, query string, limit int, language, countryCodes string) (openstreetmap.SearchAPIResponse, error)
}

type locationService struct {
	elevationProvider ElevationProvider
	geocodeProvider   GeocodeProvider
	logger            *slog.Logger
}

// NewLocationService creates a location service with real provider clients
func NewLocationService(cfg config.ProvidersConfig, logger *slog.Logger) Service {
	return &locationService{
		elevationProvider: openmeteo.NewElevationClient(cfg.ElevationURL, cfg.Timeout, cfg.BreakerTimeout, logger),
		geocodeProvider:   openstreetmap.NewClient(cfg.NominatimURL, cfg.UserAgent, cfg.Timeout, cfg.BreakerTimeout, logger),
		logger:            logger.With("component", "location-service"),
	}
}

// NewLocationServiceWithProviders creates a location service with custom providers.
// This is useful for testing with mock providers.
func NewLocationServiceWithProviders(
	elevationProvider ElevationProvider,
	geocodeProvider GeocodeProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		elevationProvider: elevationProvider,
		geocodeProvider:   geocodeProvider,
		logger:            logger.With("component", "location-service"),
	}
}

// ValidateCoords returns every coordinate problem at once. NaN fails every
// range comparison, so it is rejected explicitly.
func ValidateCoords(latitude, longitude float64) error {
	var errs []error
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		errs = append(errs, ErrInvalidLatitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		errs = append(errs, ErrInvalidLongitude)
	}
	return errors.Join(errs...)
}

func (s *locationService) Search(ctx context.Context, address, language string) ([]types.Place, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	resp, err := s.geocodeProvider.Search(ctx, address, searchLimit, language, searchCountries)
	if err != nil {
		return nil, fmt.Errorf("failed to search address: %w", err)
	}
	if len(resp) == 0 {
		return nil, ErrNoResults
	}

	places := make([]types.Place, 0, len(resp))
	for _, r := range resp {
		place, err := translatePlace(r)
		if err != nil {
			s.logger.Warn("skipping unparseable search result", "display_name", r.DisplayName, "error", err)
			continue
		}
		places = append(places, place)
	}
	if len(places) == 0 {
		return nil, ErrNoResults
	}

	return places, nil
}

// GetForecastPoint calls both providers in parallel
func (s *locationService) GetForecastPoint(ctx context.Context, latitude, longitude float64, language string) (*types.ForecastPoint, error) {
	if err := ValidateCoords(latitude, longitude); err != nil {
		return nil, err
	}

	var (
		wg            sync.WaitGroup
		elevationResp *openmeteo.ElevationAPIResponse
		locationResp  *openstreetmap.LookupAPIResponse
		elevationErr  error
		locationErr   error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		elevationResp, elevationErr = s.elevationProvider.GetElevation(ctx, latitude, longitude)
		if elevationErr != nil {
			elevationErr = fmt.Errorf("failed to get elevation: %w", elevationErr)
		}
	}()

	go func() {
		defer wg.Done()
		locationResp, locationErr = s.geocodeProvider.Reverse(ctx, latitude, longitude, language)
		if locationErr != nil {
			locationErr = fmt.Errorf("failed to get location: %w", locationErr)
		}
	}()

	wg.Wait()

	if err := errors.Join(elevationErr, locationErr); err != nil {
		return nil, err
	}

	elevation, err := translateElevation(elevationResp)
	if err != nil {
		return nil, err
	}

	locationInfo, err := translateLocationInfo(locationResp)
	if err != nil {
		return nil, err
	}

	return &types.ForecastPoint{
		Coordinates: types.NewCoords(latitude, longitude),
		Elevation:   elevation,
		Location:    locationInfo,
	}, nil
}

// translateElevation converts an Open-Meteo elevation response (meters)
func translateElevation(resp *openmeteo.ElevationAPIResponse) (types.Elevation, error) {
	if resp == nil {
		return types.Elevation{}, fmt.Errorf("elevation response is nil")
	}
	if len(resp.Elevation) == 0 {
		return types.Elevation{}, fmt.Errorf("no elevation data in response")
	}
	return types.NewElevationFromMeters(resp.Elevation[0]), nil
}

func translateLocationInfo(resp *openstreetmap.LookupAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	name := resp.DisplayName
	if resp.Name != "" {
		name = resp.Name
	}

	return types.LocationInfo{
		Name:        name,
		Street:      resp.Address.Street(),
		Postcode:    resp.Address.Postcode,
		City:        resp.Address.Locality(),
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}, nil
}

func translatePlace(resp openstreetmap.LookupAPIResponse) (types.Place, error) {
	lat, err := strconv.ParseFloat(resp.Lat, 64)
	if err != nil {
		return types.Place{}, fmt.Errorf("invalid latitude %q: %w", resp.Lat, err)
	}
	lon, err := strconv.ParseFloat(resp.Lon, 64)
	if err != nil {
		return types.Place{}, fmt.Errorf("invalid longitude %q: %w", resp.Lon, err)
	}

	info, err := translateLocationInfo(&resp)
	if err != nil {
		return types.Place{}, err
	}

	return types.Place{
		DisplayName: resp.DisplayName,
		Coordinates: types.NewCoords(lat, lon),
		Location:    info,
		Importance:  resp.Importance,
	}, nil
}
