package main

import (
	"errors"
	"net/http"
	"time"

	"facility-services/internal/costs"
	"facility-services/internal/icerisk"
	"facility-services/internal/snowfall"

	"github.com/gin-gonic/gin"
)

// EstimateRequest is the input of the winter service cost calculator
type EstimateRequest struct {
	Area      float64 `json:"area" example:"2000"`                                     // Area to clear in m²
	SnowDepth string  `json:"snow_depth" example:"mittel" enums:"leicht,mittel,stark"` // Expected snow conditions
	Frequency int     `json:"frequency" example:"10"`                                  // Clearings per season
}

// handleEstimate godoc
// @Summary Estimate winter service costs
// @Description Compare doing winter service yourself with hiring a professional crew. Areas must be between 1000 and 1000000 m² and frequency between 1 and 365.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Calculator input"
// @Success 200 {object} costs.Comparison
// @Failure 400 {object} ErrorResponse
// @Router /api/winter-service/estimate [post]
func (app *App) handleEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// An unparseable depth is reported by Validate as missing
	depth, _ := costs.ParseDepth(req.SnowDepth)
	if err := costs.Validate(req.Area, depth, req.Frequency); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, costs.Estimate(req.Area, depth, req.Frequency))
}

// IceRiskInput defines the query parameters of the ice risk endpoint
type IceRiskInput struct {
	Temperature   *float64 `form:"temperature" binding:"required"` // Air temperature in °C
	Precipitation float64  `form:"precipitation"`                  // Precipitation in mm
	Humidity      float64  `form:"humidity"`                       // Relative humidity in percent
}

// IceRiskResponse pairs the assessment with the matching de-icing dosage
type IceRiskResponse struct {
	icerisk.Assessment
	Deicing icerisk.Recommendation `json:"deicing"`
}

// handleIceRisk godoc
// @Summary Classify ice risk
// @Description Classify the risk of slippery surfaces and recommend de-icing material per 100 m²
// @Tags calculators
// @Produce json
// @Param temperature query number true "Air temperature in °C" example(-1.5)
// @Param precipitation query number false "Precipitation in mm" example(0.4)
// @Param humidity query number false "Relative humidity in percent" example(85)
// @Param lang query string false "Response language" Enums(de, en)
// @Success 200 {object} IceRiskResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ice-risk [get]
func (app *App) handleIceRisk(c *gin.Context) {
	var input IceRiskInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	tr := app.translator(c)
	assessment := icerisk.ClassifyIn(tr, *input.Temperature, input.Precipitation, input.Humidity)

	c.JSON(http.StatusOK, IceRiskResponse{
		Assessment: assessment,
		Deicing:    icerisk.RecommendDeicingIn(tr, assessment.Risk),
	})
}

var errUnknownRisk = errors.New("risk must be one of low, medium, high")

// handleDeicing godoc
// @Summary Recommend de-icing material
// @Description De-icing salt and granulate quantities per 100 m² for a risk level
// @Tags calculators
// @Produce json
// @Param risk query string true "Risk level" Enums(low, medium, high)
// @Param lang query string false "Response language" Enums(de, en)
// @Success 200 {object} icerisk.Recommendation
// @Failure 400 {object} ErrorResponse
// @Router /api/deicing [get]
func (app *App) handleDeicing(c *gin.Context) {
	risk, ok := icerisk.ParseRisk(c.Query("risk"))
	if !ok {
		badRequest(c, errUnknownRisk)
		return
	}
	c.JSON(http.StatusOK, icerisk.RecommendDeicingIn(app.translator(c), risk))
}

// SnowfallRequest carries hourly observations to analyze
type SnowfallRequest struct {
	Observations []snowfall.Observation `json:"observations" binding:"dive"`
	// Reference time; hours at or before it are ignored. Defaults to the server time.
	Now *time.Time `json:"now,omitempty"`
}

// handleAnalyzeSnowfall godoc
// @Summary Analyze snowfall
// @Description Estimate the snowfall window, accumulation and whether winter service is needed from hourly observations
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body SnowfallRequest true "Hourly observations"
// @Success 200 {object} snowfall.Prediction
// @Failure 400 {object} ErrorResponse
// @Router /api/snowfall/analyze [post]
func (app *App) handleAnalyzeSnowfall(c *gin.Context) {
	var req SnowfallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	c.JSON(http.StatusOK, snowfall.Analyze(req.Observations, now))
}
