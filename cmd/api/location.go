package main

import (
	"errors"
	"net/http"

	"facility-services/internal/location"
	"facility-services/internal/providers/openstreetmap"
	_ "facility-services/internal/types" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// GeocodeInput defines the query parameters for the geocode endpoint.
// Either address or both coordinates are required.
type GeocodeInput struct {
	Address   string   `form:"address"`   // Free-text address
	Latitude  *float64 `form:"latitude"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude"` // Longitude in decimal degrees
}

var errMissingGeocodeInput = errors.New("either address or latitude and longitude are required")

// handleGeocode godoc
// @Summary Look up an address or coordinate
// @Description With address: forward geocoding restricted to Germany, Austria and Switzerland, returns a list of places. With latitude and longitude: returns the forecast point (coordinates, elevation and address).
// @Tags location
// @Produce json
// @Param address query string false "Free-text address" example(Marienplatz 8, München)
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(48.1372)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(11.5756)
// @Param lang query string false "Response language" Enums(de, en)
// @Success 200 {array} types.Place
// @Success 200 {object} types.ForecastPoint
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	language := app.translator(c).Language()

	switch {
	case input.Latitude != nil && input.Longitude != nil:
		point, err := app.locationService.GetForecastPoint(c.Request.Context(), *input.Latitude, *input.Longitude, language)
		if err != nil {
			app.respondLocationError(c, err, "failed to get forecast point")
			return
		}
		c.JSON(http.StatusOK, point)

	case input.Address != "":
		places, err := app.locationService.Search(c.Request.Context(), input.Address, language)
		if err != nil {
			app.respondLocationError(c, err, "failed to search address")
			return
		}
		c.JSON(http.StatusOK, places)

	default:
		badRequest(c, errMissingGeocodeInput)
	}
}

func (app *App) respondLocationError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, location.ErrInvalidLatitude),
		errors.Is(err, location.ErrInvalidLongitude),
		errors.Is(err, location.ErrEmptyAddress):
		badRequest(c, err)
	case errors.Is(err, location.ErrNoResults), errors.Is(err, openstreetmap.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		app.logger.Error(msg, "path", c.FullPath(), "error", err)
		c.JSON(upstreamStatus(err), ErrorResponse{Error: msg})
	}
}
