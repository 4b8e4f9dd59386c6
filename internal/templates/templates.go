package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/veneer-dev/veneer/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string

	// Description is a short project description.
	Description string

	// Author is the site author written into veneer.json.
	Author string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"full":    fullTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.Newf(errors.CategoryCLI, "unknown template %q", name).
			WithSuggestion("Available templates: minimal, full")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	for relPath, content := range t.Files {
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}

		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	return nil
}

// minimalTemplate returns the minimal template: one page, no assets.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single-page site",
		Files: map[string]string{
			"veneer.json": `{
  "site": {
    "name": "{{.ProjectName}}",
    "author": "{{.Author}}"
  }
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.23

require github.com/veneer-dev/veneer v0.1.0
`,
			".gitignore": `dist/
`,
			"main.go": `package main

import (
	"log"

	"github.com/veneer-dev/veneer/pkg/markup"
	"github.com/veneer-dev/veneer/pkg/publish"
)

func main() {
	site := publish.NewSite("{{.ProjectName}}")

	site.Add(publish.Page{
		Title: "Home",
		Path:  "/",
		Body: markup.Block(func() markup.Node {
			return markup.Group{
				markup.Span("Welcome to {{.ProjectName}}."),
				markup.Spacer(markup.SpacingMedium),
				markup.Button("Get started").Role(markup.RolePrimary),
			}
		}).Class("container", "py-5"),
	})

	publisher := publish.Publisher{OutputDir: "dist"}
	if err := publisher.Publish(site); err != nil {
		log.Fatal(err)
	}
}
`,
		},
	}
}

// fullTemplate returns the full template with a navbar, two pages, and
// a stylesheet.
func fullTemplate() *Template {
	return &Template{
		Name:        "full",
		Description: "A multi-page starter with shared navigation and assets",
		Files: map[string]string{
			"veneer.json": `{
  "site": {
    "name": "{{.ProjectName}}",
    "author": "{{.Author}}"
  },
  "build": {
    "assets": "assets"
  }
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.23

require github.com/veneer-dev/veneer v0.1.0
`,
			".gitignore": `dist/
`,
			"assets/site.css": `main {
  max-width: 48rem;
}
`,
			"main.go": `package main

import (
	"log"

	"github.com/veneer-dev/veneer/pkg/publish"

	"{{.ModulePath}}/site"
)

func main() {
	s := publish.NewSite("{{.ProjectName}}")
	s.StyleSheets = append(s.StyleSheets, "/site.css")

	s.Add(site.Home())
	s.Add(site.About())

	publisher := publish.Publisher{OutputDir: "dist", AssetsDir: "assets"}
	if err := publisher.Publish(s); err != nil {
		log.Fatal(err)
	}
}
`,
			"site/nav.go": `package site

import "github.com/veneer-dev/veneer/pkg/markup"

// Nav is the shared top navigation.
func Nav() markup.Node {
	return markup.Block(func() markup.Node {
		return markup.Group{
			markup.Link("/", "{{.ProjectName}}").Class("navbar-brand"),
			markup.Link("/about/", "About").Class("nav-link"),
		}
	}).Class("navbar", "navbar-expand", "bg-body-tertiary", "px-3")
}
`,
			"site/home.go": `package site

import (
	"github.com/veneer-dev/veneer/pkg/actions"
	"github.com/veneer-dev/veneer/pkg/markup"
	"github.com/veneer-dev/veneer/pkg/publish"
)

// Home is the landing page.
func Home() publish.Page {
	return publish.Page{
		Title: "Home",
		Path:  "/",
		Body: markup.Block(func() markup.Node {
			return markup.Group{
				Nav(),
				markup.Spacer(markup.SpacingLarge),
				markup.Span("Welcome to {{.ProjectName}}."),
				markup.Spacer(markup.SpacingMedium),
				markup.Button("Say hello").
					Role(markup.RolePrimary).
					On("click", actions.Alert{Message: "Hello!"}),
			}
		}).Class("container"),
	}
}
`,
			"site/about.go": `package site

import (
	"github.com/veneer-dev/veneer/pkg/markup"
	"github.com/veneer-dev/veneer/pkg/publish"
)

// About describes the site.
func About() publish.Page {
	return publish.Page{
		Title: "About",
		Path:  "/about",
		Body: markup.Block(func() markup.Node {
			return markup.Group{
				Nav(),
				markup.Spacer(markup.SpacingLarge),
				markup.Span("{{.Description}}"),
			}
		}).Class("container"),
	}
}
`,
		},
	}
}
