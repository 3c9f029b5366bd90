// Package renderer turns portfolio reports into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/estate"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the root of the embedded templates.
var templates, _ = fs.Sub(templatesFS, "templates")

// funcs returns the template functions formatting amounts with f.
func funcs(f estate.Formatter) template.FuncMap {
	return template.FuncMap{
		"money": f.Format,
		"short": f.FormatShort,
		"fixed": func(p estate.Percent, places int) string { return p.Fixed(places) },
		"sign": func(m estate.Money) string {
			if m.IsNegative() {
				return "Negative"
			}
			return "Positive"
		},
	}
}

// RenderDashboard renders the home screen.
func RenderDashboard(d *estate.Dashboard, f estate.Formatter) string {
	partials := map[string]string{
		"dashboard_hero":      "dashboard_hero.md",
		"dashboard_cashflow":  "dashboard_cashflow.md",
		"dashboard_attention": "dashboard_attention.md",
		"dashboard_breakdown": "dashboard_breakdown.md",
	}
	if len(d.Attention) == 0 {
		partials["dashboard_attention"] = ""
	}
	return renderTemplate("dashboard", "dashboard.md", partials, funcs(f), d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, fm template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(fm).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
