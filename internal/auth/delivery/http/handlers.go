package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/pkg/response"
)

// AdminExists godoc
// @Summary     Check whether the admin account exists
// @Tags        Auth
// @Produce     json
// @Success     200 {object} adminExistsResp
// @Router      /create_admin [GET]
func (h *handler) AdminExists(c *gin.Context) {
	ctx := c.Request.Context()

	exists, err := h.uc.AdminExists(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, adminExistsResp{AdminExists: exists})
}

// CreateAdmin godoc
// @Summary     Create the admin account
// @Description Only one admin can exist.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body createAdminReq true "Admin"
// @Success     201 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Admin already exists"
// @Router      /create_admin [POST]
func (h *handler) CreateAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateAdminReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.CreateAdmin(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateAdmin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, loginResp{User: newUserResp(output.User)})
}

// Login godoc
// @Summary     Log in
// @Description Sets the HttpOnly session cookie. A caller that is already logged in gets the current user back.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid email or password"
// @Router      /login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	if sc, ok := middleware.GetScope(c); ok && sc.IsAuthenticated() {
		response.OK(c, loginResp{User: newScopeResp(sc)})
		return
	}

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, output.SessionID)
	response.OK(c, loginResp{User: newUserResp(output.User)})
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /logout [GET]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sc, ok := middleware.GetScope(c); ok {
		if err := h.uc.Logout(ctx, sc.SessionID); err != nil {
			h.l.Warnf(ctx, "uc.Logout: %v", err)
		}
	}

	h.clearSessionCookie(c)
	response.OK(c, nil)
}

// Dashboard godoc
// @Summary     Admin dashboard
// @Tags        Auth
// @Produce     json
// @Success     200 {object} dashboardResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /admin [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := middleware.GetScope(c)
	output, err := h.uc.Dashboard(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(sc, output))
}
