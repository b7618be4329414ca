package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather represents weather conditions with a code and a condition text.
// Condition uses the lowercase vocabulary the snowfall analyzer matches on.
type Weather struct {
	Code      int    `json:"code"`
	Condition string `json:"condition"`
}

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// weatherConditions maps weather codes to their condition text
var weatherConditions = map[WeatherCode]string{
	ClearSky:                     "clear sky",
	MainlyClear:                  "mainly clear",
	PartlyCloudy:                 "partly cloudy",
	Overcast:                     "overcast",
	Fog:                          "fog",
	DepositingRimeFog:            "depositing rime fog",
	DrizzleLight:                 "light drizzle",
	DrizzleModerate:              "moderate drizzle",
	DrizzleDense:                 "dense drizzle",
	FreezingDrizzleLight:         "light freezing drizzle",
	FreezingDrizzleDense:         "dense freezing drizzle",
	RainSlight:                   "light rain",
	RainModerate:                 "moderate rain",
	RainHeavy:                    "heavy rain",
	FreezingRainLight:            "light freezing rain",
	FreezingRainHeavy:            "heavy freezing rain",
	SnowFallSlight:               "light snow",
	SnowFallModerate:             "moderate snow",
	SnowFallHeavy:                "heavy snow",
	SnowGrains:                   "snow grains",
	RainShowersSlight:            "light rain showers",
	RainShowersModerate:          "moderate rain showers",
	RainShowersViolent:           "violent rain showers",
	SnowShowersSlight:            "light snow showers",
	SnowShowersHeavy:             "heavy snow showers",
	ThunderstormSlightOrModerate: "thunderstorm",
	ThunderstormWithSlightHail:   "thunderstorm with light hail",
	ThunderstormWithHeavyHail:    "thunderstorm with heavy hail",
}

// GetWeatherCondition returns the condition text for a given weather code
func GetWeatherCondition(code int) string {
	if cond, ok := weatherConditions[WeatherCode(code)]; ok {
		return cond
	}
	return "unknown"
}

// NewWeather creates a Weather instance from a weather code
func NewWeather(code int) Weather {
	return Weather{
		Code:      code,
		Condition: GetWeatherCondition(code),
	}
}
