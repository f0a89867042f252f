package handler

import (
	"fmt"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) addComment(c *gin.Context) {
	user := h.getUser(c)

	id, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var input dto.AddCommentRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if _, err := h.services.Comment.Create(c.Request.Context(), id, *user, input.Text); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
}
