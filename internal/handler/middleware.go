package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	if !h.store.Users.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Next()
}

func (h *Handler) adminMiddleware(c *gin.Context) {
	if !h.store.Users.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	if !h.store.Users.IsAdmin() {
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, errNoAccess.Error()))
		c.Abort()
		return
	}

	c.Next()
}
