package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/assistant"
)

func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, assistant.ErrEmptyMessage
	}
	if req.Message == "" {
		return req, assistant.ErrEmptyMessage
	}
	return req, nil
}
