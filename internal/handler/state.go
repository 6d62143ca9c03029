package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) stateGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *Handler) stateGetSlice(c *gin.Context) {
	name := strings.TrimSpace(c.Param("slice"))

	snapshot, ok := h.store.SliceSnapshot(name)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errUnknownSlice.Error()))
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
