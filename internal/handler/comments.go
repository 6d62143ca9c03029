package handler

import (
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	var input dto.CreateCommentRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Comment.Create(c.Request.Context(), input)
	h.respondIntent(c, store.SliceComment, outcomes, err)
}

func (h *Handler) commentsGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Comment.Fetch(c.Request.Context(), id)
	h.respondIntent(c, store.SliceComment, outcomes, err)
}

// commentsEdit passes an empty description through; the comment slice
// rejects it without calling the remote API.
func (h *Handler) commentsEdit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input dto.UpdateCommentRequest
	if !bindJSON(c, &input) {
		return
	}
	input.ID = id

	outcomes, err := h.store.Comment.Update(c.Request.Context(), input)
	h.respondIntent(c, store.SliceComment, outcomes, err)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Comment.Delete(c.Request.Context(), id)
	h.respondIntent(c, store.SliceComment, outcomes, err)
}
