package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/student"
	pkgErrors "student-id-card-generation/pkg/errors"
)

const (
	registerImageField = "student_image"
	uploadImageField   = "image"
	importFileField    = "file"
)

func (h *handler) processStudentReq(c *gin.Context) (studentReq, error) {
	var req studentReq
	if err := c.ShouldBind(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("invalid student data")
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("invalid filter")
	}
	return req, nil
}

func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("invalid filter")
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequestError("invalid student id")
	}
	return id, nil
}

// processFile opens the multipart file named field. It returns nil when the
// request carries no such file.
func (h *handler) processFile(c *gin.Context, field string) (*student.Image, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, pkgErrors.NewBadRequestError("invalid multipart form")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &student.Image{Filename: fh.Filename, Size: fh.Size, Content: f}, nil
}

// closeFile releases a file opened by processFile.
func closeFile(img *student.Image) {
	if img == nil {
		return
	}
	if c, ok := img.Content.(io.Closer); ok {
		_ = c.Close()
	}
}
