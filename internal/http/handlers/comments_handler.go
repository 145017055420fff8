// Comment HTTP handlers.
//
// Endpoints:
//   - GET    /api/articles/:id/comments  (list, article-existence aware)
//   - POST   /api/articles/:id/comments  (create)
//   - DELETE /api/comments/:id           (hard delete)
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/request"
)

// CommentsResponse wraps an article's comment collection.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List an article's comments
// @Description Returns the comments on an article. A valid article with no
// @Description comments yields an empty list; an absent article is an error.
// @Tags        Comments
// @Produce     json
// @Param       id  path  int  true  "article id"
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse "Invalid id / article absent"
// @Router      /articles/{id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := request.ParseID(c.Param("article_id"))
	if err != nil {
		fail(c, err)
		return
	}

	comments, err := h.commentSvc.ListForArticle(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: comments})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Comment on an article
// @Description Creates a comment from {"username", "body"}. Unknown article
// @Description ids and usernames are rejected by the store's foreign keys.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       id    path  int                               true  "article id"
// @Param       body  body  object{username=string,body=string}  true  "new comment"
// @Success     201  {object}  domain.Comment
// @Failure     400  {object}  handlers.ErrorResponse "Invalid id/body/foreign key"
// @Router      /articles/{id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	id, err := request.ParseID(c.Param("article_id"))
	if err != nil {
		fail(c, err)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		fail(c, domain.ErrInvalidInput)
		return
	}
	body, err := request.ParseNewComment(raw)
	if err != nil {
		fail(c, err)
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), id, body.Username, body.Body)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, comment)
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Description Hard-deletes exactly one comment. Deleting an absent id,
// @Description including a repeat delete, is an error.
// @Tags        Comments
// @Param       id  path  int  true  "comment id"
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse "Invalid id / comment absent"
// @Router      /comments/{id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := request.ParseID(c.Param("comment_id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.commentSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
