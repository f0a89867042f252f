package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidID = errors.New("provided an invalid ID")
	errPageNotFound = errors.New("page not found")
)

func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch err {
	case service.ErrPostNotFound, service.ErrGroupNotFound, service.ErrUserNotFound:
		status = http.StatusNotFound
	case service.ErrTextIsRequired, service.ErrCannotFollowSelf:
		status = http.StatusBadRequest
	case service.ErrInvalidCredentials:
		status = http.StatusUnauthorized
	case service.ErrEmailOrUsernameTaken:
		status = http.StatusConflict
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
