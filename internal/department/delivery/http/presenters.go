package http

import "student-id-card-generation/internal/department"

type createReq struct {
	Name   string `json:"name"   binding:"required,max=255"`
	Degree string `json:"degree" binding:"required,max=255"`
}

func (r createReq) toInput() department.CreateInput {
	return department.CreateInput{Name: r.Name, Degree: r.Degree}
}

type departmentResp struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Degree string `json:"degree"`
}

func newDepartmentResp(d department.Department) departmentResp {
	return departmentResp{ID: d.ID, Name: d.Name, Degree: d.Degree}
}

type createResp struct {
	Department departmentResp `json:"department"`
}

func (h *handler) newCreateResp(out department.CreateOutput) createResp {
	return createResp{Department: newDepartmentResp(out.Department)}
}

type listResp struct {
	Departments []departmentResp `json:"departments"`
}

func (h *handler) newListResp(out department.ListOutput) listResp {
	departments := make([]departmentResp, len(out.Departments))
	for i, d := range out.Departments {
		departments[i] = newDepartmentResp(d)
	}
	return listResp{Departments: departments}
}
