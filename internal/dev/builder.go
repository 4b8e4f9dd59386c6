package dev

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/veneer-dev/veneer/internal/errors"
)

// buildTimeout bounds a single run of the site program.
const buildTimeout = 2 * time.Minute

// BuilderConfig configures the site builder.
type BuilderConfig struct {
	// ProjectDir is the root directory of the site project.
	ProjectDir string

	// Env are additional environment variables for the site program.
	Env []string
}

// BuildResult contains the result of a build.
type BuildResult struct {
	// Success indicates if the build succeeded.
	Success bool

	// Duration is how long the build took.
	Duration time.Duration

	// Output is the combined output of the toolchain and site program.
	Output string

	// Errors are the compiler diagnostics parsed from Output.
	Errors []BuildError

	// Error is the build error, if any.
	Error error
}

// SiteBuilder regenerates the output directory by running the site
// program. A veneer site is an ordinary Go program that publishes itself
// and exits, so a build is `go run .` in the project directory.
type SiteBuilder struct {
	config BuilderConfig
}

// NewSiteBuilder creates a new site builder.
func NewSiteBuilder(config BuilderConfig) *SiteBuilder {
	return &SiteBuilder{config: config}
}

// Build runs the site program once.
func (b *SiteBuilder) Build(ctx context.Context) BuildResult {
	start := time.Now()

	if _, err := exec.LookPath("go"); err != nil {
		return BuildResult{
			Duration: time.Since(start),
			Error:    errors.New("E404").Wrap(err),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, buildTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "run", ".")
	cmd.Dir = b.config.ProjectDir
	cmd.Env = append(os.Environ(), b.config.Env...)

	// Capture output
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	output := stderr.String()
	if output == "" {
		output = stdout.String()
	}

	if err != nil {
		buildErrs := ParseBuildOutput(output)
		verr := errors.New("E101").WithDetail(output).Wrap(err)
		if first := FirstBuildError(buildErrs); first != nil {
			verr = verr.WithLocation(first.File, first.Line)
		}
		return BuildResult{
			Success:  false,
			Duration: duration,
			Output:   output,
			Errors:   buildErrs,
			Error:    verr,
		}
	}

	return BuildResult{
		Success:  true,
		Duration: duration,
		Output:   output,
	}
}
