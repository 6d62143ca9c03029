package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-gonic/gin"
)

// respondIntent writes the outcomes of an intent and the slice it reduced.
// Rejections are part of the state and answer 200; a fault answers 502.
func (h *Handler) respondIntent(c *gin.Context, slice string, outcomes []store.Outcome, err error) {
	state, _ := h.store.SliceSnapshot(slice)

	resp := dto.IntentResponse{
		Outcomes: make([]dto.OutcomeResponse, 0, len(outcomes)),
		State:    state,
	}
	for _, outcome := range outcomes {
		out := dto.OutcomeResponse{
			Kind:    outcome.Kind.String(),
			Signal:  outcome.Signal,
			Payload: outcome.Payload,
		}
		if outcome.Err != nil {
			out.Error = outcome.Err.Error()
		}
		resp.Outcomes = append(resp.Outcomes, out)
	}

	if err != nil {
		h.logger.Sugar().Errorf("failed to reach the remote API from %s: %s", slice, err.Error())
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func idParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return "", false
	}
	return id, true
}

func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return false
	}
	return true
}
