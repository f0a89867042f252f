package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// index serves the global listing through the page cache: within the TTL the
// stored body is returned unchanged even if posts were created or edited in
// the meantime.
func (h *Handler) index(c *gin.Context) {
	page := pageParam(c)

	if body, err := h.cache.Get(c.Request.Context(), pagecache.IndexKey(page)); err == nil {
		c.Data(http.StatusOK, jsonContentType, body)
		return
	}

	posts, err := h.services.Post.ListIndex(c.Request.Context(), page)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	body, err := json.Marshal(posts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	// The body is stored under the page it resolved to, so requests for
	// pages beyond the range cannot grow the key space.
	_ = h.cache.Set(c.Request.Context(), pagecache.IndexKey(posts.Number), body, h.indexTTL)

	c.Data(http.StatusOK, jsonContentType, body)
}

func (h *Handler) groupPosts(c *gin.Context) {
	resp, err := h.services.Post.ListByGroup(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) profile(c *gin.Context) {
	resp, err := h.services.Post.ListByAuthor(c.Request.Context(), c.Param("username"), h.getUser(c), pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) postDetail(c *gin.Context) {
	id, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		return
	}

	resp, err := h.services.Post.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) postCreateForm(c *gin.Context) {
	groups, err := h.services.Post.Groups(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostFormResponse{Groups: groups})
}

func (h *Handler) postCreate(c *gin.Context) {
	user := h.getUser(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if _, err := h.services.Post.Create(c.Request.Context(), *user, input, image); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", user.Username))
}

func (h *Handler) postEditForm(c *gin.Context) {
	user := h.getUser(c)

	id, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		return
	}

	detail, err := h.services.Post.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Only the author gets the prefilled form; everyone else lands back on
	// the post detail page.
	if detail.Post.Author.ID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
		return
	}

	groups, err := h.services.Post.Groups(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostFormResponse{Groups: groups, Post: &detail.Post})
}

func (h *Handler) postEdit(c *gin.Context) {
	user := h.getUser(c)

	id, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var input dto.UpdatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if _, err := h.services.Post.Update(c.Request.Context(), id, *user, input, image); err != nil {
		if err == service.ErrNotPostAuthor {
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
			return
		}

		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
}
