package model_test

import (
	"testing"

	"student-id-card-generation/internal/model"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want model.Role
		ok   bool
	}{
		{"admin", model.RoleAdmin, true},
		{" Admin ", model.RoleAdmin, true},
		{"TEACHER", model.RoleTeacher, true},
		{"student", model.RoleStudent, true},
		{"superuser", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := model.ParseRole(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestScope(t *testing.T) {
	var anon model.Scope
	if anon.IsAuthenticated() {
		t.Error("zero scope must not be authenticated")
	}

	sc := model.Scope{UserID: "u1", Role: model.RoleTeacher}
	if !sc.IsAuthenticated() {
		t.Error("expected authenticated scope")
	}
	if sc.HasRole(model.RoleAdmin) {
		t.Error("teacher must not match admin")
	}
	if !sc.HasRole(model.RoleAdmin, model.RoleTeacher) {
		t.Error("expected teacher to match")
	}
}
