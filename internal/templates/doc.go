// Package templates provides project scaffolding templates.
//
// This package contains embedded templates for creating new veneer
// projects. Templates include all necessary files for a working site.
//
// # Available Templates
//
//   - minimal: A single-page site
//   - full: A multi-page starter with shared navigation and assets
//
// # Usage
//
//	tmpl, err := templates.Get("full")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, config); err != nil {
//	    return err
//	}
//
// # Template Variables
//
// Templates support variable substitution:
//
//	{{.ProjectName}}     - Name of the project
//	{{.ModulePath}}      - Go module path
//	{{.Description}}     - Project description
//	{{.Author}}          - Site author
package templates
