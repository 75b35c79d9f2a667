package model

// Scope is the authenticated principal attached to a request.
type Scope struct {
	UserID    string
	Name      string
	Role      Role
	SessionID string
}

// IsAuthenticated reports whether the scope belongs to a logged-in user.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}

// HasRole reports whether the scope's role is one of roles.
func (s Scope) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
