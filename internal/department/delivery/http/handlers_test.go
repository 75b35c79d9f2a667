package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/department"
	"student-id-card-generation/pkg/log"
)

type stubUseCase struct {
	createErr error
	deleteErr error
	created   department.CreateInput
}

func (s *stubUseCase) Create(ctx context.Context, in department.CreateInput) (department.CreateOutput, error) {
	s.created = in
	if s.createErr != nil {
		return department.CreateOutput{}, s.createErr
	}
	return department.CreateOutput{Department: department.Department{ID: 1, Name: in.Name, Degree: in.Degree}}, nil
}

func (s *stubUseCase) List(ctx context.Context) (department.ListOutput, error) {
	return department.ListOutput{Departments: []department.Department{{ID: 1, Name: "Software", Degree: "BS"}}}, nil
}

func (s *stubUseCase) Delete(ctx context.Context, id int64) error { return s.deleteErr }

func (s *stubUseCase) Missing(ctx context.Context, names []string) ([]string, error) {
	return nil, nil
}

func newTestEngine(uc department.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.GET("/departments", h.List)
	r.POST("/departments", h.Create)
	r.DELETE("/departments/:id", h.Delete)
	return r
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{name: "created", body: `{"name":"Software","degree":"BS"}`, wantStatus: http.StatusCreated},
		{name: "missing degree", body: `{"name":"Software"}`, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"name":"Software","degree":"BS"}`, createErr: department.ErrDuplicateName, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(&stubUseCase{createErr: tt.createErr})
			req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	r := newTestEngine(&stubUseCase{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Departments) != 1 || body.Data.Departments[0].Degree != "BS" {
		t.Errorf("departments = %+v", body.Data.Departments)
	}
}

func TestDeleteHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		deleteErr  error
		wantStatus int
	}{
		{name: "ok", path: "/departments/3", wantStatus: http.StatusOK},
		{name: "bad id", path: "/departments/abc", wantStatus: http.StatusBadRequest},
		{name: "not found", path: "/departments/3", deleteErr: department.ErrDepartmentNotFound, wantStatus: http.StatusNotFound},
		{name: "in use", path: "/departments/3", deleteErr: department.ErrDepartmentInUse, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(&stubUseCase{deleteErr: tt.deleteErr})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
