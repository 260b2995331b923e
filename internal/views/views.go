package views

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/apopescu/daily-journal/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NavItem is one entry in the page navigation.
type NavItem struct {
	Label string
	URL   string
}

// Nav derives the navigation items for a single render from the request's
// authenticated flag. It is a pure function: nav state is never stored
// between requests.
func Nav(authenticated bool) []NavItem {
	items := []NavItem{
		{Label: "HOME", URL: "/"},
		{Label: "ABOUT", URL: "/about"},
	}
	if authenticated {
		return append(items,
			NavItem{Label: "COMPOSE", URL: "/compose"},
			NavItem{Label: "LOG OUT", URL: "/logout"},
		)
	}
	return append(items,
		NavItem{Label: "LOG IN", URL: "/login"},
		NavItem{Label: "REGISTER", URL: "/register"},
	)
}

// Data is the payload every template renders against.
type Data struct {
	Nav     []NavItem
	Errors  []string
	Posts   []models.Post
	Post    *models.Post
	Message string
}

// Renderer executes the embedded HTML templates.
type Renderer struct {
	templates *template.Template
}

func New() *Renderer {
	t := template.Must(template.New("").Funcs(template.FuncMap{
		"preview": preview,
	}).ParseFS(templatesFS, "templates/*.html"))
	return &Renderer{templates: t}
}

// Render executes the named template. The output is buffered so a template
// failure produces a clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, name string, data Data) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// RenderError renders the error page with the given status.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string, authenticated bool) {
	var buf bytes.Buffer
	data := Data{Nav: Nav(authenticated), Message: message}
	if err := r.templates.ExecuteTemplate(&buf, "error.html", data); err != nil {
		log.Printf("render error page: %v", err)
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// preview truncates post content for the home page listing.
func preview(content string) string {
	const max = 100
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + " ..."
}
