package http

import (
	"embed"
	"html/template"

	"student-id-card-generation/internal/student"
	"student-id-card-generation/pkg/log"
)

//go:embed templates/id_card.html
var templateFS embed.FS

const previewTemplate = "id_card.html"

type handler struct {
	l       log.Logger
	uc      student.UseCase
	preview *template.Template
}

// New creates a new HTTP handler for the student domain.
func New(l log.Logger, uc student.UseCase) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		preview: template.Must(template.ParseFS(templateFS, "templates/"+previewTemplate)),
	}
}
