package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/request"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------- service stubs ----------

type stubTopicSvc struct {
	list func(ctx context.Context) ([]domain.Topic, error)
}

func (s stubTopicSvc) List(ctx context.Context) ([]domain.Topic, error) { return s.list(ctx) }

type stubArticleSvc struct {
	list  func(ctx context.Context, p request.ListParams) ([]domain.ArticleWithCount, error)
	get   func(ctx context.Context, id int) (*domain.ArticleWithCount, error)
	patch func(ctx context.Context, id, delta int) (*domain.Article, error)
}

func (s stubArticleSvc) List(ctx context.Context, p request.ListParams) ([]domain.ArticleWithCount, error) {
	return s.list(ctx, p)
}
func (s stubArticleSvc) Get(ctx context.Context, id int) (*domain.ArticleWithCount, error) {
	return s.get(ctx, id)
}
func (s stubArticleSvc) PatchVotes(ctx context.Context, id, delta int) (*domain.Article, error) {
	return s.patch(ctx, id, delta)
}

type stubCommentSvc struct {
	list   func(ctx context.Context, articleID int) ([]domain.Comment, error)
	create func(ctx context.Context, articleID int, username, body string) (*domain.Comment, error)
	del    func(ctx context.Context, id int) error
}

func (s stubCommentSvc) ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	return s.list(ctx, articleID)
}
func (s stubCommentSvc) Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error) {
	return s.create(ctx, articleID, username, body)
}
func (s stubCommentSvc) Delete(ctx context.Context, id int) error { return s.del(ctx, id) }

type stubUserSvc struct {
	list func(ctx context.Context) ([]domain.User, error)
	get  func(ctx context.Context, username string) (*domain.User, error)
}

func (s stubUserSvc) List(ctx context.Context) ([]domain.User, error) { return s.list(ctx) }
func (s stubUserSvc) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.get(ctx, username)
}

// newRouter registers the API routes directly against a Handlers value so the
// handler logic is exercised without the full middleware stack.
func newRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.GET("/topics", h.ListTopics)
	api.GET("/articles", h.ListArticles)
	api.GET("/articles/:article_id", h.GetArticle)
	api.PATCH("/articles/:article_id", h.PatchArticleVotes)
	api.GET("/articles/:article_id/comments", h.ListComments)
	api.POST("/articles/:article_id/comments", h.CreateComment)
	api.DELETE("/comments/:comment_id", h.DeleteComment)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:username", h.GetUser)
	api.GET("", h.APIDirectory)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body == "" {
		rdr = bytes.NewReader(nil)
	} else {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func wantMessage(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status: got %d want %d (body %s)", w.Code, status, w.Body.String())
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	if er.Message != msg {
		t.Fatalf("message: got %q want %q", er.Message, msg)
	}
}

// ---------- topics ----------

func TestListTopics_OK(t *testing.T) {
	h := New(stubTopicSvc{list: func(context.Context) ([]domain.Topic, error) {
		return []domain.Topic{{Slug: "mitch", Description: "legend"}}, nil
	}}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodGet, "/api/topics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var body TopicsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Topics) != 1 || body.Topics[0].Slug != "mitch" {
		t.Fatalf("body: %+v", body)
	}
}

// ---------- articles ----------

func TestListArticles_PassesValidatedParams(t *testing.T) {
	var got request.ListParams
	h := New(stubTopicSvc{}, stubArticleSvc{
		list: func(_ context.Context, p request.ListParams) ([]domain.ArticleWithCount, error) {
			got = p
			return []domain.ArticleWithCount{}, nil
		},
	}, stubCommentSvc{}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodGet, "/api/articles?sort_by=votes&order=ASC&topic=cats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	if got.SortBy != "votes" || got.Order != "asc" || got.Topic != "cats" {
		t.Fatalf("params: %+v", got)
	}
	if !strings.Contains(w.Body.String(), `"articles":[]`) {
		t.Fatalf("empty collection must serialize as [], got %s", w.Body.String())
	}
}

func TestListArticles_InvalidSort(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodGet, "/api/articles?sort_by=bananas", "")
	wantMessage(t, w, http.StatusBadRequest, "Invalid sort field")
}

func TestListArticles_InvalidOrder(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodGet, "/api/articles?order=sideways", "")
	wantMessage(t, w, http.StatusBadRequest, "Invalid order field")
}

func TestListArticles_UnknownTopic(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{
		list: func(context.Context, request.ListParams) ([]domain.ArticleWithCount, error) {
			return nil, domain.ErrInvalidTopicValue
		},
	}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodGet, "/api/articles?topic=bananas", "")
	wantMessage(t, w, http.StatusBadRequest, "Invalid topic value")
}

func TestGetArticle_OK(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{
		get: func(_ context.Context, id int) (*domain.ArticleWithCount, error) {
			return &domain.ArticleWithCount{ArticleID: id, Title: "t", Votes: 100, CommentCount: 11, CreatedAt: time.Now()}, nil
		},
	}, stubCommentSvc{}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodGet, "/api/articles/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var a domain.ArticleWithCount
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.ArticleID != 1 || a.CommentCount != 11 {
		t.Fatalf("body: %+v", a)
	}
}

func TestGetArticle_MalformedID(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodGet, "/api/articles/notAnId", "")
	wantMessage(t, w, http.StatusBadRequest, "Invalid input")
}

func TestGetArticle_Missing(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{
		get: func(context.Context, int) (*domain.ArticleWithCount, error) {
			return nil, domain.ErrArticleNotFound
		},
	}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodGet, "/api/articles/99999", "")
	wantMessage(t, w, http.StatusBadRequest, "Article does not exist")
}

func TestPatchArticleVotes_Created(t *testing.T) {
	var gotID, gotDelta int
	h := New(stubTopicSvc{}, stubArticleSvc{
		patch: func(_ context.Context, id, delta int) (*domain.Article, error) {
			gotID, gotDelta = id, delta
			return &domain.Article{ArticleID: id, Votes: 100 + delta}, nil
		},
	}, stubCommentSvc{}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodPatch, "/api/articles/1", `{"inc_votes": 10}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d want 201", w.Code)
	}
	if gotID != 1 || gotDelta != 10 {
		t.Fatalf("service args: id=%d delta=%d", gotID, gotDelta)
	}
	var a domain.Article
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Votes != 110 {
		t.Fatalf("votes: got %d", a.Votes)
	}
	// The patched representation omits the derived count.
	if strings.Contains(w.Body.String(), "comment_count") {
		t.Fatalf("patched article must not carry comment_count: %s", w.Body.String())
	}
}

func TestPatchArticleVotes_BodyErrors(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})
	r := newRouter(h)

	w := do(t, r, http.MethodPatch, "/api/articles/1", `{"this_is_wrong": 1}`)
	wantMessage(t, w, http.StatusBadRequest, "Invalid field body")

	w = do(t, r, http.MethodPatch, "/api/articles/1", `{"inc_votes": "honey"}`)
	wantMessage(t, w, http.StatusBadRequest, "Invalid input")

	w = do(t, r, http.MethodPatch, "/api/articles/apple", `{"inc_votes": 40}`)
	wantMessage(t, w, http.StatusBadRequest, "Invalid input")
}

func TestPatchArticleVotes_Missing(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{
		patch: func(context.Context, int, int) (*domain.Article, error) {
			return nil, domain.ErrArticleNotFound
		},
	}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodPatch, "/api/articles/99999", `{"inc_votes": 40}`)
	wantMessage(t, w, http.StatusBadRequest, "Article does not exist")
}

// ---------- comments ----------

func TestListComments_OK(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{
		list: func(_ context.Context, articleID int) ([]domain.Comment, error) {
			return []domain.Comment{{CommentID: 2, ArticleID: articleID, Author: "butter_bridge", Body: "x"}}, nil
		},
	}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodGet, "/api/articles/1/comments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var body CommentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Comments) != 1 || body.Comments[0].CommentID != 2 {
		t.Fatalf("body: %+v", body)
	}
}

func TestListComments_Errors(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{
		list: func(context.Context, int) ([]domain.Comment, error) {
			return nil, domain.ErrArticleNotFound
		},
	}, stubUserSvc{})
	r := newRouter(h)

	w := do(t, r, http.MethodGet, "/api/articles/99999/comments", "")
	wantMessage(t, w, http.StatusBadRequest, "Article does not exist")

	w = do(t, r, http.MethodGet, "/api/articles/bad/comments", "")
	wantMessage(t, w, http.StatusBadRequest, "Invalid input")
}

func TestCreateComment_Created(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{
		create: func(_ context.Context, articleID int, username, body string) (*domain.Comment, error) {
			return &domain.Comment{CommentID: 19, ArticleID: articleID, Author: username, Body: body, CreatedAt: time.Now()}, nil
		},
	}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodPost, "/api/articles/2/comments",
		`{"username": "icellusedkars", "body": "This is a test"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d want 201", w.Code)
	}
	var c domain.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.CommentID != 19 || c.ArticleID != 2 || c.Author != "icellusedkars" {
		t.Fatalf("body: %+v", c)
	}
}

func TestCreateComment_BodyErrors(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})
	r := newRouter(h)

	w := do(t, r, http.MethodPost, "/api/articles/2/comments", `{"wrong": "a", "body": "b"}`)
	wantMessage(t, w, http.StatusBadRequest, "Invalid field body")

	w = do(t, r, http.MethodPost, "/api/articles/2/comments", `{"username": null, "body": null}`)
	wantMessage(t, w, http.StatusBadRequest, "Fields cannot be null values")

	w = do(t, r, http.MethodPost, "/api/articles/bad/comments", `{"username": "a", "body": "b"}`)
	wantMessage(t, w, http.StatusBadRequest, "Invalid input")
}

func TestCreateComment_ForeignKey(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{
		create: func(context.Context, int, string, string) (*domain.Comment, error) {
			return nil, domain.ErrForeignKeyViolation
		},
	}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodPost, "/api/articles/99999/comments",
		`{"username": "ghost", "body": "b"}`)
	wantMessage(t, w, http.StatusBadRequest, "Value/s violate foreign key restraint")
}

func TestDeleteComment_NoContent(t *testing.T) {
	var gotID int
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{
		del: func(_ context.Context, id int) error {
			gotID = id
			return nil
		},
	}, stubUserSvc{})

	w := do(t, newRouter(h), http.MethodDelete, "/api/comments/3", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status: got %d want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("204 must carry no body, got %q", w.Body.String())
	}
	if gotID != 3 {
		t.Fatalf("service arg: id=%d", gotID)
	}
}

func TestDeleteComment_Errors(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{
		del: func(context.Context, int) error { return domain.ErrCommentNotFound },
	}, stubUserSvc{})
	r := newRouter(h)

	w := do(t, r, http.MethodDelete, "/api/comments/99999", "")
	wantMessage(t, w, http.StatusBadRequest, "Comment does not exist")

	w = do(t, r, http.MethodDelete, "/api/comments/bad", "")
	wantMessage(t, w, http.StatusBadRequest, "Invalid input")
}

// ---------- users ----------

func TestGetUser_OK(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{
		get: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, Name: "jonny"}, nil
		},
	})
	w := do(t, newRouter(h), http.MethodGet, "/api/users/butter_bridge", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var u domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Username != "butter_bridge" {
		t.Fatalf("body: %+v", u)
	}
}

func TestGetUser_Missing(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{
		get: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})
	// Numeric-looking usernames are looked up verbatim, never parsed.
	w := do(t, newRouter(h), http.MethodGet, "/api/users/1", "")
	wantMessage(t, w, http.StatusBadRequest, "User does not exist")
}

// ---------- api directory ----------

func TestAPIDirectory(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{})
	w := do(t, newRouter(h), http.MethodGet, "/api", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var dir map[string]EndpointDoc
	if err := json.Unmarshal(w.Body.Bytes(), &dir); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{
		"GET /api", "GET /api/topics", "GET /api/articles",
		"GET /api/articles/:article_id", "PATCH /api/articles/:article_id",
		"GET /api/articles/:article_id/comments", "POST /api/articles/:article_id/comments",
		"DELETE /api/comments/:comment_id", "GET /api/users", "GET /api/users/:username",
	} {
		entry, ok := dir[key]
		if !ok {
			t.Fatalf("directory missing %q", key)
		}
		if entry.Description == "" {
			t.Fatalf("directory entry %q has no description", key)
		}
	}
	if len(dir["GET /api/articles"].Queries) != 3 {
		t.Fatalf("articles queries: %v", dir["GET /api/articles"].Queries)
	}
}

// ---------- fail() ----------

func TestFail_UnclassifiedErrorDegradesToBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, errors.New("driver: disk I/O error"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Bad request") {
		t.Fatalf("expected generic message, got %s", body)
	}
	if strings.Contains(body, "disk I/O") {
		t.Fatalf("raw error leaked to client: %s", body)
	}
}
