package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Render writes the named page template. Template failures after headers
// are flushed can only be logged.
func Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "err", err)
	}
}

// StaticHandler serves the embedded static assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
