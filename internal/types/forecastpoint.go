package types

// ForecastPoint represents a geographic location with metadata
// used for weather forecasting
type ForecastPoint struct {
	Coordinates Coords       `json:"coordinates"`
	Elevation   Elevation    `json:"elevation"`
	Location    LocationInfo `json:"location"`
}
