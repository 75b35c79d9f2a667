package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "student-id-card-generation/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("name is required")
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequestError("invalid batch id")
	}
	return id, nil
}
