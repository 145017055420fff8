// Package handlers – response utilities.
//
// Every error leaving this API is a JSON object with a single message string
// and the fixed status for its domain kind; no stack traces, driver codes, or
// internal identifiers reach the wire. Success helpers keep the payload
// shapes uniform across endpoints.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{ "message": "Article does not exist" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	// Message is the fixed, human-readable text of the domain error kind.
	Message string `json:"message" example:"Article does not exist"`
}

// fail aborts the request with the classified domain error.
//
// The status and message come from the domain taxonomy. An error outside the
// taxonomy (which classification should have prevented) is reported as the
// generic 400 and logged with the request-scoped logger, so unexpected
// failures surface in logs without leaking to clients.
func fail(c *gin.Context, err error) {
	msg := domain.ErrBadRequest.Error()
	if domain.IsDomainErr(err) {
		msg = err.Error()
	} else {
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("unclassified error reached handler")
	}
	c.AbortWithStatusJSON(domain.StatusFor(err), ErrorResponse{Message: msg})
}

// Fail is the exported variant of fail(). The router uses it for the
// transport-level fallbacks (unmatched path, wrong method).
func Fail(c *gin.Context, err error) { fail(c, err) }

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response with an empty body.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
