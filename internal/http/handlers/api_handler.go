// API directory handler.
//
// GET /api returns a machine-readable listing of every developed endpoint.
// Each entry carries a description and, where relevant, the accepted query
// parameters and an example body, so the root of the API doubles as its
// quick-reference documentation.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EndpointDoc describes one route in the API directory.
type EndpointDoc struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	ExampleBody string   `json:"exampleBody,omitempty"`
}

// apiDirectory is keyed by "METHOD /path". Kept in sync by hand with the
// routes registered in httpapi.RegisterRoutes.
var apiDirectory = map[string]EndpointDoc{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"GET /api/articles": {
		Description: "serves an array of all articles, each with its comment_count",
		Queries:     []string{"sort_by", "order", "topic"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article including its comment_count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "increments an article's votes by the signed inc_votes delta and serves the updated article",
		ExampleBody: `{ "inc_votes": 10 }`,
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for the given article",
	},
	"POST /api/articles/:article_id/comments": {
		Description: "creates a comment on the given article and serves the new comment",
		ExampleBody: `{ "username": "icellusedkars", "body": "This is a test" }`,
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the given comment and serves no content",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user profile",
	},
}

// APIDirectory godoc
// @ID          apiDirectory
// @Summary     List available endpoints
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  map[string]handlers.EndpointDoc
// @Router      / [get]
func (h *Handlers) APIDirectory(c *gin.Context) {
	ok(c, http.StatusOK, apiDirectory)
}
