package http

import (
	"student-id-card-generation/internal/department"
	pkgErrors "student-id-card-generation/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case department.ErrNameRequired:
		return pkgErrors.NewBadRequestError(err.Error())
	case department.ErrDuplicateName, department.ErrDepartmentInUse:
		return pkgErrors.NewConflictError(err.Error())
	case department.ErrDepartmentNotFound:
		return pkgErrors.NewNotFoundError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
