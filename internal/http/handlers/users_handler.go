// User HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

// UsersResponse wraps the user collection.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List all users
// @Tags        Users
// @Produce     json
// @Success     200  {object}  handlers.UsersResponse
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, UsersResponse{Users: users})
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a user profile
// @Description Usernames are opaque keys; any unknown value reports the same
// @Description "does not exist" error.
// @Tags        Users
// @Produce     json
// @Param       username  path  string  true  "username"
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse "User absent"
// @Router      /users/{username} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	user, err := h.userSvc.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, user)
}
