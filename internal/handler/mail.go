package handler

import (
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-gonic/gin"
)

func (h *Handler) mailSend(c *gin.Context) {
	var input dto.SendMailRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Mail.Send(c.Request.Context(), input)
	h.respondIntent(c, store.SliceMail, outcomes, err)
}

func (h *Handler) verificationSendToken(c *gin.Context) {
	outcomes, err := h.store.Verification.SendToken(c.Request.Context())
	h.respondIntent(c, store.SliceVerification, outcomes, err)
}

func (h *Handler) verificationVerify(c *gin.Context) {
	var input dto.VerifyAccountRequest
	if !bindJSON(c, &input) {
		return
	}

	outcomes, err := h.store.Verification.Verify(c.Request.Context(), input.Token)
	h.respondIntent(c, store.SliceVerification, outcomes, err)
}
