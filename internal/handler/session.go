package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) sessionGet(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SessionResponse{
		Authenticated: h.store.Users.IsAuthenticated(),
		IsAdmin:       h.store.Users.IsAdmin(),
	})
}

func (h *Handler) sessionDelete(c *gin.Context) {
	if _, err := h.store.Users.Logout(c.Request.Context()); err != nil {
		h.logger.Sugar().Errorf("failed to log out: %s", err.Error())
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, errLogoutFailed.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "signed out"))
}
