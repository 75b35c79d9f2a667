package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-id-card-generation/internal/student"
	"student-id-card-generation/pkg/log"
)

type stubUseCase struct {
	err error

	registered student.RegisterInput
	imageBody  string
	uploaded   student.UploadImageInput
	imported   student.ImportInput
	generated  student.GenerateInput
}

func (s *stubUseCase) Register(ctx context.Context, in student.RegisterInput) (student.CreateOutput, error) {
	s.registered = in
	if in.Image != nil {
		b, _ := io.ReadAll(in.Image.Content)
		s.imageBody = string(b)
	}
	if s.err != nil {
		return student.CreateOutput{}, s.err
	}
	return student.CreateOutput{Student: student.Student{ID: 7, Fields: in.Fields}}, nil
}

func (s *stubUseCase) Create(ctx context.Context, in student.CreateInput) (student.CreateOutput, error) {
	if s.err != nil {
		return student.CreateOutput{}, s.err
	}
	return student.CreateOutput{Student: student.Student{ID: 8, Fields: in.Fields}}, nil
}

func (s *stubUseCase) List(ctx context.Context, in student.ListInput) (student.ListOutput, error) {
	return student.ListOutput{Students: []student.Student{{ID: 1, Fields: student.Fields{Name: "Ali", Batch: in.Batch}}}}, s.err
}

func (s *stubUseCase) Detail(ctx context.Context, id int64) (student.DetailOutput, error) {
	if s.err != nil {
		return student.DetailOutput{}, s.err
	}
	return student.DetailOutput{Student: student.Student{ID: id}}, nil
}

func (s *stubUseCase) Update(ctx context.Context, in student.UpdateInput) (student.UpdateOutput, error) {
	return student.UpdateOutput{Student: student.Student{ID: in.ID, Fields: in.Fields}}, s.err
}

func (s *stubUseCase) Delete(ctx context.Context, id int64) error { return s.err }

func (s *stubUseCase) UploadImage(ctx context.Context, in student.UploadImageInput) (student.UploadImageOutput, error) {
	s.uploaded = in
	if in.Image.Content == nil {
		return student.UploadImageOutput{}, student.ErrNoFile
	}
	if s.err != nil {
		return student.UploadImageOutput{}, s.err
	}
	return student.UploadImageOutput{
		ImagePath: "uploads/student_images/3_a.png",
		ImageURL:  "/static/uploads/student_images/3_a.png",
	}, nil
}

func (s *stubUseCase) Import(ctx context.Context, in student.ImportInput) (student.ImportOutput, error) {
	s.imported = in
	if s.err != nil {
		return student.ImportOutput{}, s.err
	}
	return student.ImportOutput{Inserted: 2, Updated: 1, Skipped: 1}, nil
}

func (s *stubUseCase) Generate(ctx context.Context, in student.GenerateInput) (student.GenerateOutput, error) {
	s.generated = in
	return student.GenerateOutput{Students: []student.Student{{ID: 1, QRCode: "qr_codes/qr_1.png"}}}, s.err
}

func (s *stubUseCase) IDCard(ctx context.Context, id int64) (student.IDCardOutput, error) {
	if s.err != nil {
		return student.IDCardOutput{}, s.err
	}
	return student.IDCardOutput{Card: student.IDCard{
		Student:   student.Student{ID: id, Fields: student.Fields{Name: "Ali <Raza>", RollNo: "21BSCS01"}},
		Degree:    student.DefaultDegree,
		QRCodeURL: "/static/qr_codes/qr_1.png",
	}}, nil
}

func newTestEngine(uc student.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.POST("/student/register", h.Register)
	r.POST("/admin/students", h.Create)
	r.GET("/admin/students", h.List)
	r.GET("/admin/students/:id", h.Detail)
	r.PUT("/admin/students/:id", h.Update)
	r.DELETE("/admin/students/:id", h.Delete)
	r.POST("/admin/upload_image/:id", h.UploadImage)
	r.POST("/admin/import", h.Import)
	r.POST("/admin/generate", h.Generate)
	r.GET("/admin/id_card/:id", h.IDCard)
	r.GET("/admin/id_preview/:id", h.IDPreview)
	return r
}

// multipartBody builds a form with fields and an optional file.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func do(r *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	fields := map[string]string{"name": "Ali", "roll_no": "21BSCS01", "blood_group": "B+"}

	t.Run("with photo", func(t *testing.T) {
		uc := &stubUseCase{}
		body, ct := multipartBody(t, fields, "student_image", "me.png", "png-bytes")
		w := do(newTestEngine(uc), http.MethodPost, "/student/register", body, ct)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "Ali", uc.registered.Fields.Name)
		assert.Equal(t, "B+", uc.registered.Fields.BloodGroup)
		require.NotNil(t, uc.registered.Image)
		assert.Equal(t, "me.png", uc.registered.Image.Filename)
		assert.Equal(t, "png-bytes", uc.imageBody)

		var resp struct {
			Data detailResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Data.Student.ID)
		assert.Equal(t, "21BSCS01", resp.Data.Student.RollNo)
	})

	t.Run("without photo", func(t *testing.T) {
		uc := &stubUseCase{}
		body, ct := multipartBody(t, fields, "", "", "")
		w := do(newTestEngine(uc), http.MethodPost, "/student/register", body, ct)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Nil(t, uc.registered.Image)
	})

	errCases := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", student.ErrMissingRequiredFields, http.StatusBadRequest},
		{"duplicate", student.ErrDuplicateRollNo, http.StatusConflict},
		{"bad type", student.ErrUnsupportedImageType, http.StatusBadRequest},
		{"too large", student.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
		{"storage failure", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			body, ct := multipartBody(t, fields, "", "", "")
			w := do(newTestEngine(&stubUseCase{err: tc.err}), http.MethodPost, "/student/register", body, ct)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCreateAndListHandlers(t *testing.T) {
	uc := &stubUseCase{}
	r := newTestEngine(uc)

	w := do(r, http.MethodPost, "/admin/students", strings.NewReader(`{"name":"Sara","roll_no":"22X","father_name":"F"}`), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data detailResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "F", created.Data.Student.FatherName)

	w = do(r, http.MethodGet, "/admin/students?batch=2021", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data listResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data.Students, 1)
	assert.Equal(t, "2021", listed.Data.Students[0].Batch)
}

func TestDetailAndDeleteHandlers(t *testing.T) {
	assert.Equal(t, http.StatusOK, do(newTestEngine(&stubUseCase{}), http.MethodGet, "/admin/students/4", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(newTestEngine(&stubUseCase{}), http.MethodGet, "/admin/students/x", nil, "").Code)
	assert.Equal(t, http.StatusNotFound,
		do(newTestEngine(&stubUseCase{err: student.ErrStudentNotFound}), http.MethodDelete, "/admin/students/4", nil, "").Code)
}

func TestUploadImageHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &stubUseCase{}
		body, ct := multipartBody(t, nil, "image", "a.png", "x")
		w := do(newTestEngine(uc), http.MethodPost, "/admin/upload_image/3", body, ct)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","image_path":"/static/uploads/student_images/3_a.png"}`, w.Body.String())
		assert.Equal(t, int64(3), uc.uploaded.ID)
	})

	t.Run("no file", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"other": "1"}, "", "", "")
		w := do(newTestEngine(&stubUseCase{}), http.MethodPost, "/admin/upload_image/3", body, ct)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"No file provided"}`, w.Body.String())
	})

	t.Run("unsupported type", func(t *testing.T) {
		body, ct := multipartBody(t, nil, "image", "a.bmp", "x")
		w := do(newTestEngine(&stubUseCase{err: student.ErrUnsupportedImageType}), http.MethodPost, "/admin/upload_image/3", body, ct)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"Unsupported image type"}`, w.Body.String())
	})

	t.Run("unknown student", func(t *testing.T) {
		body, ct := multipartBody(t, nil, "image", "a.png", "x")
		w := do(newTestEngine(&stubUseCase{err: student.ErrStudentNotFound}), http.MethodPost, "/admin/upload_image/3", body, ct)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"student not found"}`, w.Body.String())
	})
}

func TestImportHandler(t *testing.T) {
	t.Run("counts", func(t *testing.T) {
		uc := &stubUseCase{}
		body, ct := multipartBody(t, nil, "file", "students.csv", "name,roll_no\n")
		w := do(newTestEngine(uc), http.MethodPost, "/admin/import", body, ct)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data importResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, importResp{Inserted: 2, Updated: 1, Skipped: 1}, resp.Data)
		assert.Equal(t, "students.csv", uc.imported.Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		body, ct := multipartBody(t, nil, "", "", "")
		w := do(newTestEngine(&stubUseCase{}), http.MethodPost, "/admin/import", body, ct)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing references", func(t *testing.T) {
		refErr := &student.MissingReferencesError{Batches: []string{"2019"}, Departments: []string{"civil"}}
		body, ct := multipartBody(t, nil, "file", "s.csv", "x")
		w := do(newTestEngine(&stubUseCase{err: refErr}), http.MethodPost, "/admin/import", body, ct)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "⚠️ Import stopped. Missing batches: 2019 | Missing departments: civil", resp.Message)
	})
}

func TestGenerateHandler(t *testing.T) {
	uc := &stubUseCase{}
	r := newTestEngine(uc)

	w := do(r, http.MethodPost, "/admin/generate", strings.NewReader(`{"batch":"2021","department":"Software"}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, student.GenerateInput{Batch: "2021", Department: "Software"}, uc.generated)

	w = do(r, http.MethodPost, "/admin/generate", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, student.GenerateInput{}, uc.generated)
}

func TestIDCardHandlers(t *testing.T) {
	r := newTestEngine(&stubUseCase{})

	w := do(r, http.MethodGet, "/admin/id_card/5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data idCardResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, student.DefaultDegree, resp.Data.Degree)
	assert.Equal(t, "/static/qr_codes/qr_1.png", resp.Data.QRCodeURL)

	w = do(r, http.MethodGet, "/admin/id_preview/5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Ali &lt;Raza&gt;")
	assert.Contains(t, body, `src="/static/qr_codes/qr_1.png"`)
	assert.Contains(t, body, student.DefaultDegree)

	w = do(newTestEngine(&stubUseCase{err: student.ErrStudentNotFound}), http.MethodGet, "/admin/id_preview/5", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
