package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) feed(c *gin.Context) {
	user := h.getUser(c)

	posts, err := h.services.Post.Feed(c.Request.Context(), user.ID, pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) profileFollow(c *gin.Context) {
	user := h.getUser(c)
	username := c.Param("username")

	if err := h.services.Follow.Follow(c.Request.Context(), *user, username); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}

func (h *Handler) profileUnfollow(c *gin.Context) {
	user := h.getUser(c)
	username := c.Param("username")

	if err := h.services.Follow.Unfollow(c.Request.Context(), *user, username); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}
