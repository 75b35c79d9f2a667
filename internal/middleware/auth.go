package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/model"
	"student-id-card-generation/pkg/response"
	"student-id-card-generation/pkg/session"
)

const scopeKey = "scope"

// OptionalAuth loads the session behind the request cookie, if any, without
// rejecting anonymous callers.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, ok := m.loadScope(c); ok {
			c.Set(scopeKey, sc)
		}
		c.Next()
	}
}

// Auth rejects requests without a valid session with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.loadScope(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// RequireRole must run after Auth. It answers 401 for anonymous callers and
// 403 when the session role is not one of roles.
func (m Middleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok || !sc.IsAuthenticated() {
			response.Unauthorized(c)
			return
		}
		if !sc.HasRole(roles...) {
			m.l.Warnf(c.Request.Context(), "middleware.RequireRole: user %s has role %s", sc.UserID, sc.Role)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// GetScope returns the principal stored by Auth or OptionalAuth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func (m Middleware) loadScope(c *gin.Context) (model.Scope, bool) {
	ctx := c.Request.Context()

	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie == "" {
		return model.Scope{}, false
	}
	id, err := m.signer.Verify(cookie)
	if err != nil {
		m.l.Warnf(ctx, "middleware.Auth: %v", err)
		return model.Scope{}, false
	}
	data, err := m.sessions.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			m.l.Errorf(ctx, "middleware.Auth sessions.Get: %v", err)
		}
		return model.Scope{}, false
	}
	role, ok := model.ParseRole(data.Role)
	if !ok {
		m.l.Warnf(ctx, "middleware.Auth: unknown role %q in session %s", data.Role, id)
		return model.Scope{}, false
	}
	return model.Scope{
		UserID:    data.UserID,
		Name:      data.Name,
		Role:      role,
		SessionID: id,
	}, true
}
