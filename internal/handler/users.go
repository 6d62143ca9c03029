package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersRegister(c *gin.Context) {
	var input dto.RegisterRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.Register(c.Request.Context(), input)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersLogin(c *gin.Context) {
	var input dto.LoginRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.Login(c.Request.Context(), input)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersList(c *gin.Context) {
	outcomes, err := h.store.Users.List(c.Request.Context())
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Users.Profile(c.Request.Context(), id)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Users.Details(c.Request.Context(), id)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersUpdate(c *gin.Context) {
	var input dto.UpdateProfileRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.Update(c.Request.Context(), input)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersUpdatePassword(c *gin.Context) {
	var input dto.UpdatePasswordRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.UpdatePassword(c.Request.Context(), input.Password)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersFollow(c *gin.Context) {
	var input dto.FollowRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.Follow(c.Request.Context(), input.FollowID)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersUnfollow(c *gin.Context) {
	var input dto.UnfollowRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.Unfollow(c.Request.Context(), input.UnFollowID)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersUploadPhoto(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errNoImage.Error()))
		return
	}
	defer file.Close()

	outcomes, err := h.store.Users.UploadPhoto(c.Request.Context(), &dto.Upload{Filename: fileHeader.Filename, Content: file})
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersBlock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Users.Block(c.Request.Context(), id)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersUnblock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	outcomes, err := h.store.Users.Unblock(c.Request.Context(), id)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersPasswordToken(c *gin.Context) {
	var input dto.PasswordResetTokenRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.PasswordResetToken(c.Request.Context(), input.Email)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}

func (h *Handler) usersPasswordReset(c *gin.Context) {
	var input dto.PasswordResetRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Users.PasswordReset(c.Request.Context(), input)
	h.respondIntent(c, store.SliceUsers, outcomes, err)
}
