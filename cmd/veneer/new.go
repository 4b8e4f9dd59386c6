package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/veneer-dev/veneer/internal/errors"
	"github.com/veneer-dev/veneer/internal/templates"
)

func newCmd() *cobra.Command {
	var (
		template    string
		module      string
		description string
		author      string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new veneer project",
		Long: `Create a new veneer project with the specified name.

Templates:
  minimal   A single-page site
  full      A multi-page starter with shared navigation and assets (default)

Examples:
  veneer new my-site
  veneer new my-site --template=minimal
  veneer new my-site --module=github.com/me/my-site`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], template, module, description, author)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "full", "Project template (minimal, full)")
	cmd.Flags().StringVarP(&module, "module", "m", "", "Go module path (default example.com/<name>)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Site author")

	return cmd
}

var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

func runNew(name, templateName, module, description, author string) error {
	printBanner()
	fmt.Println("  Creating a new veneer site...")
	fmt.Println()

	if !projectNamePattern.MatchString(name) {
		return errors.New("E403").
			WithDetail("'" + name + "' is not a valid project name").
			WithSuggestion("Use lowercase letters, numbers, and hyphens")
	}

	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("E402").
			WithDetail("Directory '" + name + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	if module == "" {
		module = "example.com/" + name
	}
	if description == "" {
		description = "A veneer site"
	}

	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	info("Creating project directory...")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return err
	}

	info("Scaffolding %s template...", tmpl.Name)
	err = tmpl.Create(projectDir, templates.Config{
		ProjectName: name,
		ModulePath:  module,
		Description: description,
		Author:      author,
	})
	if err != nil {
		os.RemoveAll(projectDir)
		return err
	}

	fmt.Println()
	success("Created %s", name)
	fmt.Println()
	info("Next steps:")
	info("  cd %s", name)
	info("  go mod tidy")
	info("  veneer dev")
	fmt.Println()

	return nil
}
