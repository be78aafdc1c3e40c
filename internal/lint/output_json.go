package lint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	Top       []JSONTopUsage `json:"top_utilities"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains utility usage statistics
type JSONStats struct {
	TokensFound     int            `json:"tokens_found"`
	UtilityRefs     int            `json:"utility_references"`
	UniqueUtilities int            `json:"unique_utilities"`
	TotalUtilities  int            `json:"total_utilities"`
	CoveragePercent float64        `json:"coverage_percentage"`
	UsageByKind     map[string]int `json:"usage_by_kind"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Binding    string `json:"binding,omitempty"`
	Source     string `json:"source,omitempty"`     // Optional source line
	Suggestion string `json:"suggestion,omitempty"` // Optional replacement token
}

// JSONTopUsage is one entry of the most-used utilities list
type JSONTopUsage struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	var errors, warnings int
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}

		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Binding:    issue.Binding,
			Source:     source,
			Suggestion: suggestion,
		}
	}

	byKind := make(map[string]int, len(result.UsageByKind))
	for kind, n := range result.UsageByKind {
		byKind[string(kind)] = n
	}

	top := make([]JSONTopUsage, len(result.TopUtilities))
	for i, u := range result.TopUtilities {
		top[i] = JSONTopUsage{Class: u.ClassName, Occurrences: u.Occurrences}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TokensFound:     result.TokensFound,
			UtilityRefs:     result.UtilityRefs,
			UniqueUtilities: result.UniqueUtilities,
			TotalUtilities:  result.TotalUtilities,
			CoveragePercent: result.CoveragePercent,
			UsageByKind:     byKind,
		},
		Issues: jsonIssues,
		Top:    top,
	}
}
