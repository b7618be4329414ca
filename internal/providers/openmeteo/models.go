package openmeteo

// ForecastAPIResponse is the subset of the forecast API used for winter outlooks.
// Nullable series use pointers because the API sends null for missing hours.
type ForecastAPIResponse struct {
	Latitude             float64     `json:"latitude"`
	Longitude            float64     `json:"longitude"`
	Elevation            float64     `json:"elevation"`
	GenerationTimeMs     float64     `json:"generationtime_ms"`
	UtcOffsetSeconds     int         `json:"utc_offset_seconds"`
	Timezone             string      `json:"timezone"`
	TimezoneAbbreviation string      `json:"timezone_abbreviation"`
	HourlyUnits          HourlyUnits `json:"hourly_units"`
	Hourly               Hourly      `json:"hourly"`
}

type HourlyUnits struct {
	Time               string `json:"time"`
	Temperature2M      string `json:"temperature_2m"`
	Precipitation      string `json:"precipitation"`
	WindSpeed10M       string `json:"wind_speed_10m"`
	SoilTemperature0Cm string `json:"soil_temperature_0cm"`
}

type Hourly struct {
	Time                     []string   `json:"time"`
	Temperature2M            []*float64 `json:"temperature_2m"`
	WeatherCode              []*int     `json:"weather_code"`
	Precipitation            []*float64 `json:"precipitation"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	RelativeHumidity2M       []float64  `json:"relative_humidity_2m"`
	WindSpeed10M             []float64  `json:"wind_speed_10m"`
	WindDirection10M         []float64  `json:"wind_direction_10m"`
	CloudCover               []*float64 `json:"cloud_cover"`
	SoilTemperature0Cm       []*float64 `json:"soil_temperature_0cm"`
}

type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}
