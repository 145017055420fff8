// Topic HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

// TopicsResponse wraps the topic collection.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ListTopics godoc
// @ID          listTopics
// @Summary     List all topics
// @Description Returns every topic with its slug and description.
// @Tags        Topics
// @Produce     json
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topicSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}
