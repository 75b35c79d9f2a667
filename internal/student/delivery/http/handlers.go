package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/student"
	"student-id-card-generation/pkg/response"
)

// Register godoc
// @Summary     Register a student
// @Description Public self-registration. The photo is optional.
// @Tags        Students
// @Accept      multipart/form-data
// @Produce     json
// @Param       name              formData string true  "Name"
// @Param       father_name       formData string true  "Father name"
// @Param       cnic              formData string true  "CNIC"
// @Param       caste             formData string true  "Caste"
// @Param       roll_no           formData string true  "Roll number"
// @Param       batch             formData string true  "Batch name"
// @Param       department        formData string true  "Department name"
// @Param       year              formData string true  "Year"
// @Param       student_image     formData file   false "Photo (png, jpg, jpeg, gif)"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - roll number already registered"
// @Failure     413 {object} response.Resp "Photo too large"
// @Router      /student/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStudentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	img, err := h.processFile(c, registerImageField)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	defer closeFile(img)

	output, err := h.uc.Register(ctx, student.RegisterInput{Fields: req.toFields(), Image: img})
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(output.Student))
}

// Create godoc
// @Summary     Add a student
// @Description Manual entry by an admin, without a photo.
// @Tags        Students
// @Accept      json
// @Produce     json
// @Param       body body studentReq true "Student"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /admin/students [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStudentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, student.CreateInput{Fields: req.toFields()})
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(output.Student))
}

// List godoc
// @Summary     List students
// @Tags        Students
// @Produce     json
// @Param       batch      query string false "Exact batch name"
// @Param       department query string false "Exact department name"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /admin/students [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a student
// @Tags        Students
// @Produce     json
// @Param       id path int true "Student ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /admin/students/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Student))
}

// Update godoc
// @Summary     Update a student
// @Description Multipart form. A new student_image replaces the stored photo.
// @Tags        Students
// @Accept      multipart/form-data
// @Produce     json
// @Param       id            path     int  true  "Student ID"
// @Param       student_image formData file false "New photo"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /admin/students/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processStudentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	img, err := h.processFile(c, registerImageField)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	defer closeFile(img)

	output, err := h.uc.Update(ctx, student.UpdateInput{ID: id, Fields: req.toFields(), Image: img})
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Student))
}

// Delete godoc
// @Summary     Delete a student
// @Tags        Students
// @Produce     json
// @Param       id path int true "Student ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /admin/students/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// UploadImage godoc
// @Summary     Upload a student photo
// @Tags        Students
// @Accept      multipart/form-data
// @Produce     json
// @Param       id    path     int  true "Student ID"
// @Param       image formData file true "Photo"
// @Success     200 {object} uploadImageResp
// @Failure     400 {object} uploadImageResp "No file provided or unsupported type"
// @Failure     404 {object} uploadImageResp "Not Found"
// @Router      /admin/upload_image/{id} [POST]
func (h *handler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		status, msg := h.uploadImageError(err)
		c.JSON(status, uploadImageResp{Status: "error", Message: msg})
		return
	}
	img, err := h.processFile(c, uploadImageField)
	if err != nil {
		status, msg := h.uploadImageError(err)
		c.JSON(status, uploadImageResp{Status: "error", Message: msg})
		return
	}
	defer closeFile(img)

	input := student.UploadImageInput{ID: id}
	if img != nil {
		input.Image = *img
	}
	output, err := h.uc.UploadImage(ctx, input)
	if err != nil {
		status, msg := h.uploadImageError(err)
		if status >= http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.UploadImage: %v", err)
		}
		c.JSON(status, uploadImageResp{Status: "error", Message: msg})
		return
	}

	c.JSON(http.StatusOK, uploadImageResp{Status: "ok", ImagePath: output.ImageURL})
}

// Import godoc
// @Summary     Import students from CSV or XLSX
// @Description Upserts by roll number. Stops without writing when a batch or department is unknown.
// @Tags        Students
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Spreadsheet (.csv or .xlsx)"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /admin/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := h.processFile(c, importFileField)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	if file == nil {
		response.Error(c, h.mapError(student.ErrNoFile))
		return
	}
	defer closeFile(file)

	output, err := h.uc.Import(ctx, student.ImportInput{
		Filename: file.Filename,
		Size:     file.Size,
		Content:  file.Content,
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Generate godoc
// @Summary     Generate QR codes
// @Description Renders a QR code for every student matching the filter. An empty filter matches everyone.
// @Tags        Students
// @Accept      json
// @Produce     json
// @Param       body body generateReq false "Filter"
// @Success     200 {object} generateResp
// @Router      /admin/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// IDCard godoc
// @Summary     ID card data
// @Tags        Students
// @Produce     json
// @Param       id path int true "Student ID"
// @Success     200 {object} idCardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /admin/id_card/{id} [GET]
func (h *handler) IDCard(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.IDCard(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIDCardResp(output))
}
