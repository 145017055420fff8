// Article HTTP handlers.
//
// Endpoints:
//   - GET   /api/articles       (filtered, sorted collection)
//   - GET   /api/articles/:id   (single article with comment count)
//   - PATCH /api/articles/:id   (atomic vote delta)
//
// Each handler walks received → validated → executed → responded, dropping
// into the error path from either the validation or the execution step. On
// the first validation failure the handler stops with that single error.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/request"
)

// ArticlesResponse wraps the article collection.
type ArticlesResponse struct {
	Articles []domain.ArticleWithCount `json:"articles"`
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns articles with live comment counts, optionally filtered
// @Description by topic and ordered by a sortable column. Ties on the sort key
// @Description break by ascending article_id.
// @Tags        Articles
// @Produce     json
// @Param       sort_by  query  string  false  "sort column"  Enums(article_id, title, author, topic, created_at, votes, comment_count)
// @Param       order    query  string  false  "sort direction"  Enums(asc, desc)
// @Param       topic    query  string  false  "topic slug filter"
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse "Invalid sort/order/topic"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	params, err := request.ParseListParams(c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		fail(c, err)
		return
	}

	articles, err := h.articleSvc.List(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: articles})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get one article
// @Description Returns the article including its derived comment_count.
// @Tags        Articles
// @Produce     json
// @Param       id  path  int  true  "article id"
// @Success     200  {object}  domain.ArticleWithCount
// @Failure     400  {object}  handlers.ErrorResponse "Invalid id / article absent"
// @Router      /articles/{id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := request.ParseID(c.Param("article_id"))
	if err != nil {
		fail(c, err)
		return
	}

	article, err := h.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, article)
}

// PatchArticleVotes godoc
// @ID          patchArticleVotes
// @Summary     Adjust an article's votes
// @Description Applies {"inc_votes": n} as a single atomic increment and
// @Description returns the updated article without comment_count.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       id    path  int                     true  "article id"
// @Param       body  body  object{inc_votes=int}   true  "vote delta"
// @Success     201  {object}  domain.Article
// @Failure     400  {object}  handlers.ErrorResponse "Invalid id/body / article absent"
// @Router      /articles/{id} [patch]
func (h *Handlers) PatchArticleVotes(c *gin.Context) {
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
	delta, err := request.ParseVotePatch(raw)
	if err != nil {
		fail(c, err)
		return
	}

	article, err := h.articleSvc.PatchVotes(c.Request.Context(), id, delta)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, article)
}
