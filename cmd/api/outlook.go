package main

import (
	"errors"
	"net/http"

	"facility-services/internal/forecast"
	"facility-services/internal/location"

	"github.com/gin-gonic/gin"
)

// OutlookInput defines the query parameters for the winter outlook endpoint
type OutlookInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleWinterOutlook godoc
// @Summary Get the winter outlook for a location
// @Description Current ice risk with de-icing dosage and the snowfall prediction for the coming days
// @Tags forecast
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(48.1372)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(11.5756)
// @Param lang query string false "Response language" Enums(de, en)
// @Success 200 {object} forecast.Outlook
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/winter-outlook [get]
func (app *App) handleWinterOutlook(c *gin.Context) {
	var input OutlookInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	outlook, err := app.outlookService.GetWinterOutlook(c.Request.Context(), *input.Latitude, *input.Longitude, app.translator(c))
	if err != nil {
		if errors.Is(err, location.ErrInvalidLatitude) || errors.Is(err, location.ErrInvalidLongitude) {
			badRequest(c, err)
			return
		}
		if errors.Is(err, forecast.ErrNoForecastData) {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
			return
		}

		app.logger.Error("failed to get winter outlook",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(upstreamStatus(err), ErrorResponse{Error: "failed to get winter outlook"})
		return
	}

	c.JSON(http.StatusOK, outlook)
}
