package types

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

type Wind struct {
	SpeedKph  float64       `json:"speed_kph"`
	Direction WindDirection `json:"direction"`
}

type WindDirection struct {
	Degrees  float64 `json:"degrees"`
	Cardinal string  `json:"cardinal"`
}

func NewWindDirection(degrees float64) WindDirection {
	if degrees < 0 || degrees >= 360 {
		return WindDirection{
			Degrees:  -1,
			Cardinal: "Unknown",
		}
	}

	index := int(degrees/22.5+.5) % 16 // .5 for rounding
	return WindDirection{
		Degrees:  degrees,
		Cardinal: cardinalDirections[index],
	}
}

func NewWind(speedKph, directionDegrees float64) Wind {
	return Wind{
		SpeedKph:  speedKph,
		Direction: NewWindDirection(directionDegrees),
	}
}
