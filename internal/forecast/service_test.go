package forecast

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"facility-services/internal/config"
	"facility-services/internal/i18n"
	"facility-services/internal/icerisk"
	"facility-services/internal/location"
	"facility-services/internal/providers/openmeteo"
	"facility-services/internal/snowfall"
	"facility-services/internal/types"
)

var berlin = time.FixedZone("Europe/Berlin", 3600)

type mockForecastProvider struct {
	response    *openmeteo.ForecastAPIResponse
	err         error
	gotTimezone string
	gotDays     int
	gotElev     float64
}

func (m *mockForecastProvider) GetForecast(ctx context.Context, latitude, longitude, elevationMeters float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error) {
	m.gotTimezone = timezone
	m.gotDays = forecastDays
	m.gotElev = elevationMeters
	return m.response, m.err
}

type mockLocationService struct {
	point *types.ForecastPoint
	err   error
}

func (m *mockLocationService) Search(ctx context.Context, address, language string) ([]types.Place, error) {
	return nil, nil
}

func (m *mockLocationService) GetForecastPoint(ctx context.Context, latitude, longitude float64, language string) (*types.ForecastPoint, error) {
	return m.point, m.err
}

type mockTimezoneService struct {
	err error
}

func (m *mockTimezoneService) GetTimezone(latitude, longitude float64) (string, error) {
	return berlin.String(), m.err
}

func (m *mockTimezoneService) GetLocation(latitude, longitude float64) (*time.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return berlin, nil
}

func ptr[T any](v T) *T {
	return &v
}

func floats(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func codes(vs ...int) []*int {
	out := make([]*int, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func snowyMorning() *openmeteo.ForecastAPIResponse {
	return &openmeteo.ForecastAPIResponse{
		Timezone: "Europe/Berlin",
		Hourly: openmeteo.Hourly{
			Time:                     []string{"2025-01-15T10:00", "2025-01-15T11:00", "2025-01-15T12:00", "2025-01-15T13:00", "2025-01-15T14:00"},
			Temperature2M:            floats(-1, -2, -3, -3, 0),
			WeatherCode:              codes(3, 71, 75, 73, 3),
			Precipitation:            floats(0, 0.5, 2, 1, 0),
			PrecipitationProbability: []*float64{ptr(10.0), ptr(90.0), ptr(95.0), ptr(80.0), nil},
			RelativeHumidity2M:       []float64{85, 90, 93, 92, 88},
			WindSpeed10M:             []float64{5, 8, 12, 10, 6},
			WindDirection10M:         []float64{90, 270, 280, 290, 300},
			CloudCover:               floats(100, 100, 100, 100, 80),
			SoilTemperature0Cm:       []*float64{ptr(-1.0), ptr(-1.0), ptr(-1.0), nil, nil},
		},
	}
}

func newTestService(provider ForecastProvider, locSvc location.Service, tzSvc *mockTimezoneService) Service {
	cfg := &config.Config{App: config.AppConfig{ForecastDays: 2}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOutlookServiceWithProviders(provider, locSvc, tzSvc, cfg, logger).(*outlookService)
	svc.now = func() time.Time {
		return time.Date(2025, time.January, 15, 11, 30, 0, 0, berlin)
	}
	return svc
}

func munich() *types.ForecastPoint {
	return &types.ForecastPoint{
		Coordinates: types.NewCoords(48.1372, 11.5756),
		Elevation:   types.NewElevationFromMeters(519),
		Location:    types.LocationInfo{Name: "Marienplatz", City: "München", CountryCode: "de"},
	}
}

func TestOutlookService_GetWinterOutlook(t *testing.T) {
	provider := &mockForecastProvider{response: snowyMorning()}
	svc := newTestService(provider, &mockLocationService{point: munich()}, &mockTimezoneService{})

	got, err := svc.GetWinterOutlook(context.Background(), 48.1372, 11.5756, i18n.Default().Translator("en"))
	if err != nil {
		t.Fatalf("GetWinterOutlook() unexpected error = %v", err)
	}

	if provider.gotTimezone != "Europe/Berlin" {
		t.Errorf("timezone passed to provider = %q, want Europe/Berlin", provider.gotTimezone)
	}
	if provider.gotDays != 2 {
		t.Errorf("forecast days = %d, want 2", provider.gotDays)
	}
	if provider.gotElev != 519 {
		t.Errorf("elevation = %v, want 519", provider.gotElev)
	}

	if len(got.Hours) != 5 {
		t.Errorf("len(Hours) = %d, want 5", len(got.Hours))
	}

	// 11:00 is the current hour at 11:30
	if got.Current.Temperature != -2 || got.Current.Weather.Condition != "light snow" {
		t.Errorf("Current = %+v, want the 11:00 hour", got.Current)
	}
	if got.Current.Wind.Direction.Cardinal != "W" {
		t.Errorf("Current.Wind.Direction = %v, want W", got.Current.Wind.Direction.Cardinal)
	}

	if got.IceRisk.Risk != icerisk.High || got.IceRisk.Reason != icerisk.ReasonFrostWithPrecipitation {
		t.Errorf("IceRisk = %+v, want high frost_with_precipitation", got.IceRisk)
	}
	if got.Deicing.SaltKgPer100m2 != 4 {
		t.Errorf("Deicing.SaltKgPer100m2 = %v, want 4", got.Deicing.SaltKgPer100m2)
	}
	if got.IceRisk.Description == "icerisk."+icerisk.ReasonFrostWithPrecipitation {
		t.Error("IceRisk.Description was not translated")
	}

	// Only the hours after 11:30 count: 2 * 10 / 10 + 1 * 10 / 10
	p := got.Snowfall
	if !p.WillSnow || !p.NeedsService {
		t.Errorf("Snowfall = %+v, want snow and service", p)
	}
	if p.TotalAmountCm != 3.0 {
		t.Errorf("TotalAmountCm = %v, want 3.0", p.TotalAmountCm)
	}
	wantStart := time.Date(2025, time.January, 15, 12, 0, 0, 0, berlin)
	wantEnd := time.Date(2025, time.January, 15, 14, 0, 0, 0, berlin)
	if p.StartTime == nil || !p.StartTime.Equal(wantStart) {
		t.Errorf("StartTime = %v, want %v", p.StartTime, wantStart)
	}
	if p.EndTime == nil || !p.EndTime.Equal(wantEnd) {
		t.Errorf("EndTime = %v, want %v", p.EndTime, wantEnd)
	}
}

func TestOutlookService_Errors(t *testing.T) {
	tests := []struct {
		name     string
		provider *mockForecastProvider
		location *mockLocationService
		timezone *mockTimezoneService
		wantErr  error
	}{
		{
			name:     "location error is passed through",
			provider: &mockForecastProvider{response: snowyMorning()},
			location: &mockLocationService{err: location.ErrInvalidLatitude},
			timezone: &mockTimezoneService{},
			wantErr:  location.ErrInvalidLatitude,
		},
		{
			name:     "timezone error",
			provider: &mockForecastProvider{response: snowyMorning()},
			location: &mockLocationService{point: munich()},
			timezone: &mockTimezoneService{err: errTest},
			wantErr:  errTest,
		},
		{
			name:     "provider error",
			provider: &mockForecastProvider{err: errTest},
			location: &mockLocationService{point: munich()},
			timezone: &mockTimezoneService{},
			wantErr:  errTest,
		},
		{
			name:     "empty forecast",
			provider: &mockForecastProvider{response: &openmeteo.ForecastAPIResponse{}},
			location: &mockLocationService{point: munich()},
			timezone: &mockTimezoneService{},
			wantErr:  ErrNoForecastData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.provider, tt.location, tt.timezone)
			_, err := svc.GetWinterOutlook(context.Background(), 48.1, 11.5, i18n.Default().Translator())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetWinterOutlook() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

var errTest = errors.New("upstream unavailable")

func TestToObservations_ShortSeries(t *testing.T) {
	h := openmeteo.Hourly{
		Time:          []string{"2025-01-15T10:00", "garbage", "2025-01-15T12:00"},
		Temperature2M: floats(-4, -4, -1),
		WeatherCode:   codes(71, 71),
	}

	got := toObservations(h, berlin)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (unparseable hour dropped)", len(got))
	}
	if got[0].Temperature != -4 || got[0].Condition != "light snow" {
		t.Errorf("first = %+v", got[0])
	}
	// Missing precipitation falls back to zero, missing soil temperature to nil
	if got[1].Precipitation != 0 || got[1].SoilTemperature != nil {
		t.Errorf("second = %+v", got[1])
	}
	if got[1].Condition != "unknown" {
		t.Errorf("second condition = %q, want unknown for a missing code", got[1].Condition)
	}
}

func TestToObservations_NullTemperatureIsDropped(t *testing.T) {
	h := openmeteo.Hourly{
		Time:          []string{"2025-01-15T12:00", "2025-01-15T13:00", "2025-01-15T14:00"},
		Temperature2M: []*float64{ptr(4.0), nil, ptr(5.0)},
		WeatherCode:   codes(61, 61, 61),
		Precipitation: floats(1, 1, 1),
	}

	got := toObservations(h, berlin)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (hour without temperature dropped)", len(got))
	}
	for _, o := range got {
		if o.Temperature <= 0 {
			t.Errorf("observation %v has temperature %v, want the reported value", o.Timestamp, o.Temperature)
		}
	}

	// Rain at 4-5 °C is no reason for winter service
	now := time.Date(2025, time.January, 15, 11, 0, 0, 0, berlin)
	if p := snowfall.Analyze(got, now); p.NeedsService {
		t.Errorf("Analyze() = %+v, a null temperature must not read as frost", p)
	}
}

func TestCurrentConditions_SkipsNullTemperature(t *testing.T) {
	h := snowyMorning().Hourly
	h.Temperature2M = []*float64{ptr(-1.0), nil, ptr(-3.0), ptr(-3.0), ptr(0.0)}

	now := time.Date(2025, time.January, 15, 11, 30, 0, 0, berlin)
	got := currentConditions(h, berlin, now)
	if got.Temperature != -1 || got.Timestamp.Hour() != 10 {
		t.Errorf("Current = %+v, want the 10:00 hour", got)
	}
}

func TestCurrentConditions_BeforeFirstHour(t *testing.T) {
	h := snowyMorning().Hourly
	now := time.Date(2025, time.January, 15, 6, 0, 0, 0, berlin)
	got := currentConditions(h, berlin, now)
	if got.Temperature != -1 {
		t.Errorf("Temperature = %v, want the first hour", got.Temperature)
	}
}
