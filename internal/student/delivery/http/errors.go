package http

import (
	"errors"
	"net/http"

	"student-id-card-generation/internal/student"
	pkgErrors "student-id-card-generation/pkg/errors"
)

// mapError translates student use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var refErr *student.MissingReferencesError
	if errors.As(err, &refErr) {
		return pkgErrors.NewBadRequestError(refErr.Error())
	}

	switch {
	case errors.Is(err, student.ErrMissingRequiredFields),
		errors.Is(err, student.ErrMissingColumns),
		errors.Is(err, student.ErrNoFile),
		errors.Is(err, student.ErrUnsupportedImageType),
		errors.Is(err, student.ErrUnsupportedImportFile),
		errors.Is(err, student.ErrInvalidImportFile):
		return pkgErrors.NewBadRequestError(err.Error())
	case errors.Is(err, student.ErrImageTooLarge),
		errors.Is(err, student.ErrImportFileTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, student.ErrDuplicateRollNo),
		errors.Is(err, student.ErrDuplicateStudent):
		return pkgErrors.NewConflictError(err.Error())
	case errors.Is(err, student.ErrStudentNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	default:
		if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
			return httpErr
		}
		return pkgErrors.ErrInternalServerError
	}
}

// uploadImageError gives the status and message of the bare upload_image reply.
func (h *handler) uploadImageError(err error) (int, string) {
	switch {
	case errors.Is(err, student.ErrNoFile):
		return http.StatusBadRequest, "No file provided"
	case errors.Is(err, student.ErrUnsupportedImageType):
		return http.StatusBadRequest, "Unsupported image type"
	}
	mapped, _ := pkgErrors.AsHTTPError(h.mapError(err))
	return mapped.StatusCode, mapped.Message
}
