package http

import (
	"student-id-card-generation/internal/batch"
	pkgErrors "student-id-card-generation/pkg/errors"
)

// mapError translates batch use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case batch.ErrNameRequired:
		return pkgErrors.NewBadRequestError(err.Error())
	case batch.ErrDuplicateName:
		return pkgErrors.NewConflictError(err.Error())
	case batch.ErrBatchNotFound:
		return pkgErrors.NewNotFoundError(err.Error())
	case batch.ErrBatchInUse:
		return pkgErrors.NewConflictError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
