package plotpage

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templates     *template.Template
	templatesOnce sync.Once
	templatesErr  error
)

// getTemplates parses the embedded templates once.
func getTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		var parseErr error

		templates, parseErr = template.New("").ParseFS(templateFS, "templates/*.html")
		if parseErr != nil {
			templatesErr = fmt.Errorf("parse templates: %w", parseErr)
		}
	})

	return templates, templatesErr
}

// renderTemplate renders a named template with the given data.
func renderTemplate(name string, data any) (template.HTML, error) {
	tmpl, err := getTemplates()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	execErr := tmpl.ExecuteTemplate(&buf, name, data)
	if execErr != nil {
		return "", fmt.Errorf("execute template %s: %w", name, execErr)
	}

	return template.HTML(buf.String()), nil
}

// pageData feeds the page template.
type pageData struct {
	Title       string
	ProjectName string
	Theme       ThemeConfig
	ExtraCSS    template.CSS
	Header      template.HTML
	Content     template.HTML
}

// headerData feeds the header template.
type headerData struct {
	ProjectName string
	Subtitle    string
	Title       string
	Description string
}

// sectionData feeds the section template.
type sectionData struct {
	Title    string
	Subtitle string
	Chart    template.HTML
	Hint     *hintData
}

// hintData feeds the hint block within a section.
type hintData struct {
	Title string
	Items []template.HTML
}
