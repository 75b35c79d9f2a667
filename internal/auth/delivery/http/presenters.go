package http

import (
	"student-id-card-generation/internal/auth"
	"student-id-card-generation/internal/model"
)

// --- Request DTOs ---

type createAdminReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r createAdminReq) toInput() auth.CreateAdminInput {
	return auth.CreateAdminInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type adminExistsResp struct {
	AdminExists bool `json:"admin_exists"`
}

type userResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

func newUserResp(u auth.User) userResp {
	return userResp{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func newScopeResp(sc model.Scope) userResp {
	return userResp{ID: sc.UserID, Name: sc.Name, Role: string(sc.Role)}
}

type loginResp struct {
	User userResp `json:"user"`
}

type dashboardResp struct {
	User        userResp `json:"user"`
	Students    int      `json:"students"`
	Batches     int      `json:"batches"`
	Departments int      `json:"departments"`
}

func (h *handler) newDashboardResp(sc model.Scope, out auth.DashboardOutput) dashboardResp {
	return dashboardResp{
		User:        newScopeResp(sc),
		Students:    out.Counts.Students,
		Batches:     out.Counts.Batches,
		Departments: out.Counts.Departments,
	}
}
