package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// authMiddleware resolves the requesting user and aborts anonymous requests
// with a redirect to the sign-in page, without touching any state.
func (h *Handler) authMiddleware(c *gin.Context) {
	accessToken := extractAccessToken(c)
	if accessToken == "" {
		c.Redirect(http.StatusFound, signInPath)
		c.Abort()
		return
	}

	user, err := h.services.Auth.UserFromAccessToken(c.Request.Context(), accessToken)
	if err != nil {
		c.Redirect(http.StatusFound, signInPath)
		c.Abort()
		return
	}

	c.Set("user", *user)

	c.Next()
}

// identifyMiddleware resolves the requesting user if a valid token is present
// and lets the request through either way.
func (h *Handler) identifyMiddleware(c *gin.Context) {
	accessToken := extractAccessToken(c)
	if accessToken != "" {
		if user, err := h.services.Auth.UserFromAccessToken(c.Request.Context(), accessToken); err == nil {
			c.Set("user", *user)
		}
	}

	c.Next()
}

func extractAccessToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}

	return ""
}
