package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Conversion errors (E001-E099)
	// ============================================

	"E001": {
		Category:   CategoryConvert,
		Message:    "Maximum tree depth exceeded",
		Detail:     "The source markup nests deeper than the configured limit. Extremely deep trees usually indicate malformed or adversarial input.",
		Suggestion: "Raise maxDepth in domify.json if the input is legitimate.",
		DocURL:     "https://domify.dev/docs/errors/E001",
	},
	"E002": {
		Category:   CategoryConvert,
		Message:    "Input markup could not be parsed",
		Detail:     "The input could not be read as HTML.",
		Suggestion: "Check the input for truncation or a non-HTML payload.",
		DocURL:     "https://domify.dev/docs/errors/E002",
	},

	// ============================================
	// Config errors (C001-C099)
	// ============================================

	"C001": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No domify.json was found in the current directory or any parent.",
		Suggestion: "Run from a project directory containing domify.json, or pass --config.",
		DocURL:     "https://domify.dev/docs/errors/C001",
	},
	"C002": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "domify.json exists but could not be parsed.",
		Suggestion: "Validate the JSON syntax of domify.json.",
		DocURL:     "https://domify.dev/docs/errors/C002",
	},
	"C003": {
		Category:   CategoryConfig,
		Message:    "Invalid registry entry",
		Detail:     "A registry entry maps a tag to an empty component name.",
		Suggestion: "Give every registry tag a non-empty component name.",
		DocURL:     "https://domify.dev/docs/errors/C003",
	},

	// ============================================
	// Server errors (S001-S099)
	// ============================================

	"S001": {
		Category:   CategoryServer,
		Message:    "Server failed to start",
		Suggestion: "Check that the configured host and port are available.",
		DocURL:     "https://domify.dev/docs/errors/S001",
	},

	// ============================================
	// CLI errors (L001-L099)
	// ============================================

	"L001": {
		Category:   CategoryCLI,
		Message:    "Input could not be read",
		Suggestion: "Check the input path, or pipe markup on stdin.",
		DocURL:     "https://domify.dev/docs/errors/L001",
	},
	"L002": {
		Category: CategoryCLI,
		Message:  "Unknown output format",
		Detail:   "Supported formats are json, html, and msgpack.",
		DocURL:   "https://domify.dev/docs/errors/L002",
	},
	"L003": {
		Category:   CategoryCLI,
		Message:    "Output could not be written",
		Suggestion: "Check the output path and permissions.",
		DocURL:     "https://domify.dev/docs/errors/L003",
	},
}
