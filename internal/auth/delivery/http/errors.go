package http

import (
	"net/http"

	"student-id-card-generation/internal/auth"
	pkgErrors "student-id-card-generation/pkg/errors"
)

// mapError translates auth use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrFieldsRequired, auth.ErrCredentialsMissing:
		return pkgErrors.NewBadRequestError(err.Error())
	case auth.ErrAdminExists:
		return pkgErrors.NewConflictError(err.Error())
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
