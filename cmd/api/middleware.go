package main

import (
	"log/slog"
	"time"

	"facility-services/internal/i18n"

	"github.com/gin-gonic/gin"
)

const translatorKey = "translator"

// requestLogger logs one line per request through slog
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			logger.Error("request", attrs...)
		case status >= 400:
			logger.Warn("request", attrs...)
		default:
			logger.Debug("request", attrs...)
		}
	}
}

// negotiateLanguage picks the response language. The lang query parameter
// wins over the Accept-Language header.
func (app *App) negotiateLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		tr := app.catalog.Translator(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(translatorKey, tr)
		c.Header("Content-Language", tr.Language())
		c.Next()
	}
}

func (app *App) translator(c *gin.Context) *i18n.Translator {
	if v, ok := c.Get(translatorKey); ok {
		if tr, ok := v.(*i18n.Translator); ok {
			return tr
		}
	}
	return app.catalog.Translator()
}
