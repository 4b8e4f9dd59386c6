package dev

import (
	"fmt"
	"regexp"
	"strconv"
)

// BuildError is a single compiler diagnostic.
type BuildError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *BuildError) Error() string {
	if e.File == "" {
		return e.Message
	}
	if e.Column > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

// buildErrorPattern matches Go compiler diagnostics:
//
//	main.go:10:5: undefined: foo
//	./site/pages.go:3: syntax error: unexpected }
var buildErrorPattern = regexp.MustCompile(`(?m)^([^\s:]+\.go):(\d+)(?::(\d+))?:\s*(.+)$`)

// ParseBuildOutput extracts compiler diagnostics from toolchain output.
// Lines that are not diagnostics (package headers, program output) are
// skipped.
func ParseBuildOutput(output string) []BuildError {
	matches := buildErrorPattern.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return nil
	}

	errs := make([]BuildError, 0, len(matches))
	for _, match := range matches {
		line, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		column := 0
		if match[3] != "" {
			column, _ = strconv.Atoi(match[3])
		}
		errs = append(errs, BuildError{
			File:    match[1],
			Line:    line,
			Column:  column,
			Message: match[4],
		})
	}
	return errs
}

// FirstBuildError returns the first diagnostic, or nil if there are none.
func FirstBuildError(errs []BuildError) *BuildError {
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}
