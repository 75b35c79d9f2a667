package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/auth"
	"student-id-card-generation/pkg/session"
)

func (h *handler) processCreateAdminReq(c *gin.Context) (createAdminReq, error) {
	var req createAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, auth.ErrFieldsRequired
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		return req, auth.ErrCredentialsMissing
	}
	return req, nil
}

func (h *handler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, h.signer.Sign(sessionID), int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", h.cookie.Secure, true)
}
