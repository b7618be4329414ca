// Package icerisk classifies the risk of slippery surfaces from basic weather
// values and recommends de-icing material quantities for each risk level.
package icerisk

import (
	"encoding/json"
	"fmt"
	"strings"

	"facility-services/internal/i18n"
)

// Risk is an ordered hazard level, Low < Medium < High
type Risk int

const (
	Low Risk = iota + 1
	Medium
	High
)

var riskNames = map[Risk]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

func (r Risk) String() string {
	if name, ok := riskNames[r]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(r))
}

// ParseRisk accepts the English names plus the German labels used on the site
func ParseRisk(s string) (Risk, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "gering", "niedrig":
		return Low, true
	case "medium", "mittel":
		return Medium, true
	case "high", "hoch":
		return High, true
	default:
		return 0, false
	}
}

func (r Risk) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Risk) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseRisk(s)
	if !ok {
		return fmt.Errorf("unknown risk level %q", s)
	}
	*r = parsed
	return nil
}

// Reason codes identify which rule of the ladder matched
const (
	ReasonFrostWithPrecipitation = "frost_with_precipitation"
	ReasonSustainedFrost         = "sustained_frost"
	ReasonHoarfrost              = "hoarfrost"
	ReasonRefreezingWetness      = "refreezing_wetness"
	ReasonFallingTemperature     = "falling_temperature"
	ReasonNoSignificantRisk      = "no_significant_risk"
)

// Assessment is the result of classifying one set of weather values
type Assessment struct {
	Risk        Risk   `json:"risk" swaggertype:"string" enums:"low,medium,high"`
	Reason      string `json:"reason" example:"frost_with_precipitation"`
	Description string `json:"description"`
}

type conditions struct {
	temperature   float64
	precipitation float64
	humidity      float64
}

type rule struct {
	matches func(c conditions) bool
	risk    Risk
	reason  string
}

// ladder is evaluated top to bottom and the first matching rule wins.
// Later rules rely on earlier ones having failed.
var ladder = []rule{
	{
		matches: func(c conditions) bool { return c.temperature <= 0 && c.precipitation > 0 },
		risk:    High,
		reason:  ReasonFrostWithPrecipitation,
	},
	{
		matches: func(c conditions) bool { return c.temperature <= -3 },
		risk:    High,
		reason:  ReasonSustainedFrost,
	},
	{
		matches: func(c conditions) bool { return c.temperature <= 0 && c.humidity > 80 },
		risk:    Medium,
		reason:  ReasonHoarfrost,
	},
	{
		matches: func(c conditions) bool {
			return c.temperature <= 0 || (c.temperature <= 3 && c.precipitation > 0)
		},
		risk:   Medium,
		reason: ReasonRefreezingWetness,
	},
	{
		matches: func(c conditions) bool { return c.temperature <= 3 },
		risk:    Low,
		reason:  ReasonFallingTemperature,
	},
}

var fallthroughRule = rule{risk: Low, reason: ReasonNoSignificantRisk}

// Classify assesses the ice risk for a temperature in °C, precipitation in mm
// and relative humidity in percent. Every real input yields a result.
// The description is in the default site language.
func Classify(temperature, precipitation, humidity float64) Assessment {
	return ClassifyIn(i18n.Default().Translator(), temperature, precipitation, humidity)
}

// ClassifyIn is Classify with the description rendered by tr
func ClassifyIn(tr *i18n.Translator, temperature, precipitation, humidity float64) Assessment {
	c := conditions{
		temperature:   temperature,
		precipitation: precipitation,
		humidity:      humidity,
	}

	matched := fallthroughRule
	for _, r := range ladder {
		if r.matches(c) {
			matched = r
			break
		}
	}

	return Assessment{
		Risk:        matched.risk,
		Reason:      matched.reason,
		Description: tr.Text("icerisk." + matched.reason),
	}
}
