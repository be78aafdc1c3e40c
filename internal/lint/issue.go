package lint

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "oklchlint"
	Text        string       `json:"Text"`        // "unknown OKLCH utility \"bg-11-hi-primary\": ..."
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion

	Token   string `json:"Token,omitempty"`   // "hover:bg-11-hi-primary", as written
	Binding string `json:"Binding,omitempty"` // "bg"; empty for hue-context classes
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/templates/dashboard.html"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the class token)
}

// Replacement provides automated fix suggestion
type Replacement struct {
	NewText      string // "bg-1-hi-primary"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported in the (linter) suffix of every issue.
const LinterName = "oklchlint"

// Issue message formats
const (
	IssueUnknownUtility  = "unknown OKLCH utility %q: %s"
	IssueDisabledUtility = "OKLCH utility %q is not generated: %s"
)
