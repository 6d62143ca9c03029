package handler

import (
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-gonic/gin"
)

func (h *Handler) categoryCreate(c *gin.Context) {
	var input dto.CategoryRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Category.Create(c.Request.Context(), input)
	h.respondIntent(c, store.SliceCategory, outcomes, err)
}

func (h *Handler) categoryList(c *gin.Context) {
	outcomes, err := h.store.Category.List(c.Request.Context())
	h.respondIntent(c, store.SliceCategory, outcomes, err)
}

func (h *Handler) categoryGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Category.Fetch(c.Request.Context(), id)
	h.respondIntent(c, store.SliceCategory, outcomes, err)
}

func (h *Handler) categoryUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input dto.CategoryRequest
	if !bindJSON(c, &input) {
		return
	}
	input.ID = id

	outcomes, err := h.store.Category.Update(c.Request.Context(), input)
	h.respondIntent(c, store.SliceCategory, outcomes, err)
}

func (h *Handler) categoryDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Category.Delete(c.Request.Context(), id)
	h.respondIntent(c, store.SliceCategory, outcomes, err)
}
