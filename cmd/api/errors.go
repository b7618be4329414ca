package main

import (
	"net/http"

	"facility-services/internal/providers/breaker"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error   string   `json:"error" example:"invalid request"`
	Details []string `json:"details,omitempty"`
}

// newErrorResponse flattens errors.Join results into Details
func newErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		resp.Error = "invalid request"
		for _, e := range joined.Unwrap() {
			resp.Details = append(resp.Details, e.Error())
		}
	}
	return resp
}

// upstreamStatus is 503 while a provider breaker is open, 500 otherwise
func upstreamStatus(err error) int {
	if breaker.IsOpen(err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, newErrorResponse(err))
}
