package forecast

import (
	"time"

	"facility-services/internal/icerisk"
	"facility-services/internal/snowfall"
	"facility-services/internal/types"
)

// Outlook is the winter-service view of a location's forecast
type Outlook struct {
	GeneratedAt   time.Time              `json:"generated_at"`
	ForecastPoint types.ForecastPoint    `json:"forecast_point"`
	Timezone      string                 `json:"timezone" example:"Europe/Berlin"`
	Current       Current                `json:"current"`
	IceRisk       icerisk.Assessment     `json:"ice_risk"`
	Deicing       icerisk.Recommendation `json:"deicing"`
	Snowfall      snowfall.Prediction    `json:"snowfall"`
	Hours         []snowfall.Observation `json:"hours"`
}

// Current is the forecast hour containing now
type Current struct {
	Timestamp        time.Time     `json:"timestamp"`
	Temperature      float64       `json:"temperature"`
	Precipitation    float64       `json:"precipitation"`
	RelativeHumidity float64       `json:"relative_humidity"`
	Weather          types.Weather `json:"weather"`
	Wind             types.Wind    `json:"wind"`
	SoilTemperature  *float64      `json:"soil_temperature,omitempty"`
}
