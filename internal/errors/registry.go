package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No veneer.json was found in this directory. Run `veneer new <name>` to create a project, or run the command from inside one.",
		DocURL:   "https://veneer.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Config file is not valid JSON",
		Detail:   "veneer.json could not be parsed. Check for trailing commas and unquoted keys.",
		DocURL:   "https://veneer.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A veneer.json field has a value outside its allowed range.",
		DocURL:   "https://veneer.dev/docs/errors/E003",
	},

	// ============================================
	// Build & Publish Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryBuild,
		Message:  "Site build failed",
		Detail:   "The site program exited with an error before producing output.",
		DocURL:   "https://veneer.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryPublish,
		Message:  "Cannot create output directory",
		Detail:   "The output directory could not be created or is not writable.",
		DocURL:   "https://veneer.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryPublish,
		Message:  "Asset copy failed",
		Detail:   "A file under the assets directory could not be copied into the output directory.",
		DocURL:   "https://veneer.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryPublish,
		Message:  "Duplicate page path",
		Detail:   "Two pages resolve to the same output file. Page paths must be unique within a site.",
		DocURL:   "https://veneer.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategoryPublish,
		Message:  "Page write failed",
		Detail:   "A rendered page could not be written to the output directory.",
		DocURL:   "https://veneer.dev/docs/errors/E105",
	},

	// ============================================
	// Deploy Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryDeploy,
		Message:  "No deploy target configured",
		Detail:   "Deploying needs a bucket, either in veneer.json under deploy.bucket or via --bucket.",
		DocURL:   "https://veneer.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryDeploy,
		Message:  "Upload failed",
		Detail:   "An object could not be uploaded to the deploy target.",
		DocURL:   "https://veneer.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryDeploy,
		Message:  "AWS credentials not available",
		Detail:   "No AWS credentials were found in the environment, shared config, or instance metadata.",
		DocURL:   "https://veneer.dev/docs/errors/E203",
	},

	// ============================================
	// Dev Server Errors (E300-E319)
	// ============================================

	"E301": {
		Category: CategoryDev,
		Message:  "Port already in use",
		Detail:   "The dev server could not bind its port. Stop the other process or pass --port.",
		DocURL:   "https://veneer.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryDev,
		Message:  "File watcher failed",
		Detail:   "The project directory could not be watched for changes.",
		DocURL:   "https://veneer.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategoryDev,
		Message:  "Rebuild failed",
		Detail:   "The site failed to rebuild after a change. The previous output is still being served.",
		DocURL:   "https://veneer.dev/docs/errors/E303",
	},

	// ============================================
	// CLI Errors (E400-E419)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Not a veneer project",
		Detail:   "This command must run inside a directory containing veneer.json.",
		DocURL:   "https://veneer.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Target directory already exists",
		Detail:   "Refusing to scaffold into an existing directory.",
		DocURL:   "https://veneer.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryCLI,
		Message:  "Invalid project name",
		Detail:   "Project names must be valid directory names and Go module path segments.",
		DocURL:   "https://veneer.dev/docs/errors/E403",
	},
	"E404": {
		Category: CategoryCLI,
		Message:  "Go not found",
		Detail:   "Go is not installed or not in PATH. Building a site runs the project's own Go program.",
		DocURL:   "https://veneer.dev/docs/errors/E404",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
