package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message godoc
// @Summary     Send an admin chat message
// @Description Classifies the message and either answers locally (logout, close chat, back)
// @Description or forwards it to the department, batch or page-navigation workflow.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Chat message"
// @Success     200 {object} messageResp
// @Failure     400 {object} messageResp "No message provided"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} messageResp "Workflow failure"
// @Router      /ai/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		status, msg := h.mapError(err)
		c.JSON(status, messageResp{Message: msg})
		return
	}

	output, err := h.uc.HandleMessage(ctx, req.toInput())
	if err != nil {
		status, msg := h.mapError(err)
		if status >= http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		}
		c.JSON(status, messageResp{Message: msg})
		return
	}

	c.JSON(http.StatusOK, h.newMessageResp(output))
}
