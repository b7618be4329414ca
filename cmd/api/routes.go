package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	api := app.router.Group("/api", app.negotiateLanguage())

	// Calculators
	api.POST("/winter-service/estimate", app.handleEstimate)
	api.GET("/ice-risk", app.handleIceRisk)
	api.GET("/deicing", app.handleDeicing)
	api.POST("/snowfall/analyze", app.handleAnalyzeSnowfall)

	// Forecast and location endpoints
	api.GET("/winter-outlook", app.handleWinterOutlook)
	api.GET("/geocode", app.handleGeocode)

	// Website
	api.GET("/services", app.handleServices)
	api.POST("/contact", app.handleContact)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
