// Package errors provides structured, actionable error messages for
// veneer.
//
// Every operational failure carries a stable code, a plain-language
// message, an optional suggestion, and a documentation link. The CLI
// prints errors through Format, which renders all of that for the
// terminal.
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: veneer.json problems (missing file, bad JSON, bad values)
//   - build: failures while running the site program
//   - publish: failures while writing pages and copying assets
//   - deploy: failures while uploading the output directory
//   - dev: dev server and file watcher failures
//   - cli: command usage problems
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E002").
//	    WithLocation("veneer.json", 7).
//	    WithSuggestion("Remove the trailing comma after the last field")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E002: Config file is not valid JSON
//	//
//	//   veneer.json:7
//	//
//	//   veneer.json could not be parsed. Check for trailing commas and
//	//   unquoted keys.
//	//
//	//   Hint: Remove the trailing comma after the last field
//	//
//	//   Learn more: https://veneer.dev/docs/errors/E002
package errors
