// Package templates embeds the page templates. Every page is parsed together
// with base.html and partials.html.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

const (
	baseTemplate     = "base.html"
	partialsTemplate = "partials.html"
)

//go:embed *.html
var files embed.FS

//go:embed static
var static embed.FS

var timeNow = time.Now

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

// stars renders a 1-5 rating as filled and empty stars.
func stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func rupees(amount float64) string {
	return fmt.Sprintf("₹%.0f", amount)
}

func isActive(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

var funcs = template.FuncMap{
	"sub":      sub,
	"add":      add,
	"dict":     dict,
	"stars":    stars,
	"rupees":   rupees,
	"isActive": isActive,
	"join":     strings.Join,
	"today":    func() string { return domain.FormatDate(timeNow()) },
}

// Static holds the stylesheet and other assets served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load parses every page template from the embedded files.
func Load() (map[string]*template.Template, error) {
	return load(files)
}

func load(fsys fs.FS) (map[string]*template.Template, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, e := range entries {
		name := e.Name()
		if path.Ext(name) != ".html" || name == baseTemplate || name == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(funcs).ParseFS(fsys, baseTemplate, name, partialsTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
