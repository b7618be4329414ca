package main

import (
	"errors"
	"net/http"
	"time"

	"facility-services/internal/contact"
	"facility-services/internal/costs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleServices godoc
// @Summary List offered services
// @Description The service catalogue with names in the negotiated language
// @Tags website
// @Produce json
// @Param lang query string false "Response language" Enums(de, en)
// @Success 200 {array} contact.Offering
// @Router /api/services [get]
func (app *App) handleServices(c *gin.Context) {
	c.JSON(http.StatusOK, contact.Catalogue(app.translator(c)))
}

// ContactResponse reports the outcome of a contact form submission
type ContactResponse struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error,omitempty"`
	ID       *uuid.UUID        `json:"id,omitempty" swaggertype:"string"`
	SentAt   *time.Time        `json:"sent_at,omitempty"`
	Estimate *costs.Comparison `json:"estimate,omitempty"`
}

// handleContact godoc
// @Summary Submit the contact form
// @Description Forwards an enquiry to the office by e-mail. Winter service enquiries may include a cost calculator quote.
// @Tags website
// @Accept json
// @Produce json
// @Param request body contact.Submission true "Contact form"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} ContactResponse
// @Failure 500 {object} ContactResponse
// @Router /api/contact [post]
func (app *App) handleContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, ContactResponse{Error: err.Error()})
		return
	}

	receipt, err := app.contactService.Submit(c.Request.Context(), sub, app.translator(c))
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrUnknownCategory),
			errors.Is(err, contact.ErrInvalidQuote),
			errors.Is(err, contact.ErrMissingField):
			c.JSON(http.StatusBadRequest, ContactResponse{Error: err.Error()})
		default:
			app.logger.Error("failed to submit contact form", "category", sub.Category, "error", err)
			c.JSON(upstreamStatus(err), ContactResponse{Error: "failed to send message"})
		}
		return
	}

	c.JSON(http.StatusOK, ContactResponse{
		Success:  true,
		ID:       &receipt.ID,
		SentAt:   &receipt.SentAt,
		Estimate: receipt.Estimate,
	})
}
