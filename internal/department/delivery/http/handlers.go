package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/pkg/response"
)

// List godoc
// @Summary     List departments
// @Tags        Departments
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /admin/departments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a department
// @Tags        Departments
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Department"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - department already exists"
// @Router      /admin/departments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, h.newCreateResp(output))
}

// Delete godoc
// @Summary     Delete a department
// @Tags        Departments
// @Produce     json
// @Param       id path int true "Department ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /admin/departments/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
