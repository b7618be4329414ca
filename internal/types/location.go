package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name" example:"Marienplatz"`
	Street      string `json:"street,omitempty" example:"Marienplatz 8"`
	Postcode    string `json:"postcode,omitempty" example:"80331"`
	City        string `json:"city,omitempty" example:"München"`
	State       string `json:"state,omitempty" example:"Bayern"`
	Country     string `json:"country" example:"Deutschland"`
	CountryCode string `json:"country_code" example:"de"`
}

// Place is a single forward geocoding match
type Place struct {
	DisplayName string       `json:"display_name"`
	Coordinates Coords       `json:"coordinates"`
	Location    LocationInfo `json:"location"`
	Importance  float64      `json:"importance"`
}
