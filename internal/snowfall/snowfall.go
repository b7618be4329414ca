// Package snowfall turns an hourly weather forecast into a snowfall window,
// an accumulation estimate and a winter-service decision.
package snowfall

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Observation is one forecast hour
type Observation struct {
	Timestamp                time.Time `json:"timestamp" binding:"required"`
	Temperature              float64   `json:"temperature" example:"-2.5"`
	Condition                string    `json:"condition" example:"light snow"`
	Precipitation            float64   `json:"precipitation" example:"0.8"`
	PrecipitationProbability *float64  `json:"precipitation_probability,omitempty" example:"70"`
	RelativeHumidity         float64   `json:"relative_humidity" example:"88"`
	WindSpeed                float64   `json:"wind_speed" example:"12"`
	CloudCover               *float64  `json:"cloud_cover,omitempty" example:"100"`
	SoilTemperature          *float64  `json:"soil_temperature,omitempty" example:"-0.5"`
}

// Prediction summarises the future part of a forecast
type Prediction struct {
	WillSnow      bool       `json:"will_snow"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	TotalAmountCm float64    `json:"total_amount_cm" example:"3.4"`
	NeedsService  bool       `json:"needs_service"`
}

var snowConditions = []string{
	"snow",
	"light snow",
	"moderate snow",
	"heavy snow",
	"snow showers",
	"snow grains",
	"sleet",
	"light sleet",
	"heavy sleet",
}

var iceConditions = []string{
	"freezing rain",
	"freezing drizzle",
	"ice pellets",
	"hail",
}

// IsSnow reports whether a condition text describes falling snow
func IsSnow(condition string) bool {
	return containsAny(condition, snowConditions)
}

// IsIce reports whether a condition text describes freezing precipitation
func IsIce(condition string) bool {
	return containsAny(condition, iceConditions)
}

func containsAny(condition string, vocabulary []string) bool {
	c := strings.ToLower(condition)
	for _, v := range vocabulary {
		if strings.Contains(c, v) {
			return true
		}
	}
	return false
}

// snowToLiquidRatio is the centimetres of snow per centimetre of water.
// Air near freezing produces wetter, denser snow.
func snowToLiquidRatio(temperature float64) float64 {
	switch {
	case temperature <= -3:
		return 10
	case temperature <= -1:
		return 8
	case temperature <= 0:
		return 7
	default:
		return 5
	}
}

// state is threaded through the fold over the forecast
type state struct {
	prediction Prediction
	snowing    bool
	totalCm    float64
}

func (s *state) step(o Observation) {
	snow := IsSnow(o.Condition)
	ice := IsIce(o.Condition)

	var canStick bool
	if o.SoilTemperature != nil {
		canStick = *o.SoilTemperature <= 0
	} else {
		canStick = o.Temperature <= -2 && (snow || ice)
	}

	iceRisk := ice ||
		(o.Temperature <= 0 && o.Precipitation > 0) ||
		(o.Temperature <= 2 && o.SoilTemperature != nil && *o.SoilTemperature <= 0 && o.Precipitation > 0)

	if (snow && canStick) || iceRisk {
		s.prediction.NeedsService = true
	}

	switch {
	case snow && !s.snowing:
		s.prediction.WillSnow = true
		if s.prediction.StartTime == nil {
			start := o.Timestamp
			s.prediction.StartTime = &start
		}
		s.snowing = true
	case !snow && s.snowing:
		s.snowing = false
		end := o.Timestamp
		s.prediction.EndTime = &end
	}

	if s.snowing && canStick && o.Precipitation > 0 {
		s.totalCm += o.Precipitation * snowToLiquidRatio(o.Temperature) / 10
	}

	// Snow is already lying and it keeps freezing
	if o.Temperature <= 0 && s.totalCm > 0 {
		s.prediction.NeedsService = true
	}
}

// Analyze evaluates the observations after now. The input slice is not
// modified and may be in any order.
func Analyze(observations []Observation, now time.Time) Prediction {
	future := make([]Observation, 0, len(observations))
	for _, o := range observations {
		if o.Timestamp.After(now) {
			future = append(future, o)
		}
	}
	slices.SortStableFunc(future, func(a, b Observation) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	var s state
	for _, o := range future {
		s.step(o)
	}

	if s.snowing {
		end := future[len(future)-1].Timestamp
		s.prediction.EndTime = &end
	}

	s.prediction.TotalAmountCm = roundTenth(s.totalCm)

	return s.prediction
}

// AnalyzeNow is Analyze relative to the current time
func AnalyzeNow(observations []Observation) Prediction {
	return Analyze(observations, time.Now())
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
