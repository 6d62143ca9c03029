package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-gonic/gin"
)

// postsCreate takes a multipart form; the image part is optional.
func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if file, fileHeader, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		input.Image = &dto.Upload{Filename: fileHeader.Filename, Content: file}
	}

	outcomes, err := h.store.Post.Create(c.Request.Context(), input)
	h.respondIntent(c, store.SlicePost, outcomes, err)
}

func (h *Handler) postsList(c *gin.Context) {
	outcomes, err := h.store.Post.List(c.Request.Context(), c.Query("category"))
	h.respondIntent(c, store.SlicePost, outcomes, err)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Post.Details(c.Request.Context(), id)
	h.respondIntent(c, store.SlicePost, outcomes, err)
}

func (h *Handler) postsEdit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input dto.UpdatePostRequest
	if !bindJSON(c, &input) {
		return
	}
	input.ID = id

	outcomes, err := h.store.Post.Update(c.Request.Context(), input)
	h.respondIntent(c, store.SlicePost, outcomes, err)
}

func (h *Handler) postsDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Post.Delete(c.Request.Context(), id)
	h.respondIntent(c, store.SlicePost, outcomes, err)
}

func (h *Handler) postsLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Post.ToggleLike(c.Request.Context(), id)
	h.respondIntent(c, store.SlicePost, outcomes, err)
}

func (h *Handler) postsUnlike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Post.ToggleUnlike(c.Request.Context(), id)
	h.respondIntent(c, store.SlicePost, outcomes, err)
}
