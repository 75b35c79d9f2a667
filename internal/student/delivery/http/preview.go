package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"student-id-card-generation/internal/student"
	pkgErrors "student-id-card-generation/pkg/errors"
)

type idCardView struct {
	Name       string
	FatherName string
	RollNo     string
	Department string
	Degree     string
	Batch      string
	Year       string
	CNIC       string
	BloodGroup string
	Address    string
	Contact    string
	ImageURL   string
	QRCodeURL  string
}

func newIDCardView(card student.IDCard) idCardView {
	s := card.Student
	return idCardView{
		Name:       s.Name,
		FatherName: s.FatherName,
		RollNo:     s.RollNo,
		Department: s.Department,
		Degree:     card.Degree,
		Batch:      s.Batch,
		Year:       s.Year,
		CNIC:       s.CNIC,
		BloodGroup: s.BloodGroup,
		Address:    s.Address,
		Contact:    s.EmergencyContact,
		ImageURL:   card.ImageURL,
		QRCodeURL:  card.QRCodeURL,
	}
}

// IDPreview godoc
// @Summary     Printable ID card
// @Tags        Students
// @Produce     html
// @Param       id path int true "Student ID"
// @Success     200 {string} string "HTML"
// @Failure     404 {string} string "Not Found"
// @Router      /admin/id_preview/{id} [GET]
func (h *handler) IDPreview(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	output, err := h.uc.IDCard(ctx, id)
	if err != nil {
		h.renderError(c, h.mapError(err))
		return
	}

	c.Render(http.StatusOK, render.HTML{
		Template: h.preview,
		Name:     previewTemplate,
		Data:     newIDCardView(output.Card),
	})
}

func (h *handler) renderError(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		httpErr = pkgErrors.ErrInternalServerError
	}
	c.String(httpErr.StatusCode, httpErr.Message)
}
