package lint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignTo(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"bg-5-lo-primary\">",
			column:     15,
			want:       "              ", // 14 spaces
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"text-0-hi-accent\">",
			column:     18,
			want:       "\t\t               ", // 2 tabs + 15 spaces
		},
		{
			name:       "start of line",
			sourceLine: "class=\"bg-lc-2\"",
			column:     1,
			want:       "",
		},
		{
			name:       "column 0",
			sourceLine: "some line",
			column:     0,
			want:       "",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, alignTo(tt.sourceLine, tt.column))
		})
	}
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "^", marker(0))
	assert.Equal(t, "^", marker(1))
	assert.Equal(t, "^~~~", marker(4))

	assert.Equal(t, 13, markerWidth(Issue{Token: "hover:bg-lc-8"}))
	assert.Equal(t, 4, markerWidth(Issue{Replacement: &Replacement{InlineLength: 4}}))
	assert.Equal(t, 1, markerWidth(Issue{}))
}

func TestPrintIssue(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, LintConfig{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	reporter.PrintIssues([]Issue{{
		FromLinter:  LinterName,
		Text:        `unknown OKLCH utility "bg-11-hi-primary": luminance "11" is not defined`,
		Severity:    SeverityError,
		SourceLines: []string{`<div class="bg-11-hi-primary">`},
		Pos:         IssuePos{Filename: "page.html", Line: 3, Column: 13},
		Replacement: &Replacement{NewText: "bg-1-hi-primary", InlineLength: 16},
		Token:       "bg-11-hi-primary",
		Binding:     "bg",
	}})

	assert.Equal(t,
		`page.html:3:13: unknown OKLCH utility "bg-11-hi-primary": luminance "11" is not defined (oklchlint)`+"\n"+
			"\t<div class=\"bg-11-hi-primary\">\n"+
			"\t            ^~~~~~~~~~~~~~~~\n"+
			"\t            bg-1-hi-primary\n",
		buf.String())
}

func TestPrintIssueVariantToken(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true}

	reporter.PrintIssues([]Issue{{
		Text:        `unknown OKLCH utility "bg-lc-99"`,
		Severity:    SeverityError,
		SourceLines: []string{"\t<a class=\"hover:bg-lc-99\">"},
		Pos:         IssuePos{Filename: "nav.templ", Line: 1, Column: 12},
		Token:       "hover:bg-lc-99",
	}})

	assert.Contains(t, buf.String(), "\t\t          ^~~~~~~~~~~~~~\n")
	assert.NotContains(t, buf.String(), "(oklchlint)")
}

func TestPrintIssueWithoutSourceLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues([]Issue{{
		Text:        `unknown OKLCH hue context "hue-dangr"`,
		Severity:    SeverityError,
		SourceLines: []string{`<div class="hue-dangr">`},
		Pos:         IssuePos{Filename: "a.html", Line: 1, Column: 13},
		Replacement: &Replacement{NewText: "hue-danger", InlineLength: 9},
	}})

	assert.Equal(t, "a.html:1:13: unknown OKLCH hue context \"hue-dangr\"\n\t-> hue-danger\n", buf.String())
}

func TestPrintIssuesSortsByPosition(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues([]Issue{
		{Text: "third", Pos: IssuePos{Filename: "b.html", Line: 1, Column: 1}},
		{Text: "second", Pos: IssuePos{Filename: "a.html", Line: 2, Column: 1}},
		{Text: "first", Pos: IssuePos{Filename: "a.html", Line: 1, Column: 5}},
	})

	assert.Equal(t, "a.html:1:5: first\na.html:2:1: second\nb.html:1:1: third\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   string
	}{
		{
			name:   "no issues",
			result: LintResult{},
			want:   "0 issues:",
		},
		{
			name: "mixed severities",
			result: LintResult{Issues: []Issue{
				{FromLinter: LinterName, Severity: SeverityError},
				{FromLinter: LinterName, Severity: SeverityWarning},
			}},
			want: "2 issues (1 error, 1 warning):",
		},
		{
			name: "truncated",
			result: LintResult{
				Issues:         []Issue{{FromLinter: LinterName, Severity: SeverityError}},
				TruncatedCount: 3,
			},
			want: "1 issue (3 issues truncated):",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(tt.result)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPrintSummaryBindingBreakdown(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(LintResult{Issues: []Issue{
		{Severity: SeverityError, Binding: "text"},
		{Severity: SeverityError, Binding: "bg", Replacement: &Replacement{NewText: "bg-1-hi-primary"}},
		{Severity: SeverityWarning, Binding: "bg"},
		{Severity: SeverityError, Binding: "bg", Replacement: &Replacement{NewText: "bg-lc-5"}},
		{Severity: SeverityError, Binding: ""},
	}})

	assert.Equal(t, "\n"+
		"5 issues (4 errors, 1 warning):\n"+
		"* bg-*: 2 errors, 1 warning\n"+
		"* hue-*: 1 error\n"+
		"* text-*: 1 error\n"+
		"\n"+
		"Hint: 2 issues have a suggested replacement\n",
		buf.String())
}

func TestPrintSummaryFixableHint(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(LintResult{Issues: []Issue{
		{Severity: SeverityError, Binding: "bg", Replacement: &Replacement{NewText: "bg-c-hi"}},
	}})
	assert.Contains(t, buf.String(), "Hint: 1 issue has a suggested replacement\n")

	buf.Reset()
	reporter.PrintSummary(LintResult{Issues: []Issue{{Severity: SeverityWarning, Binding: "bg"}}})
	assert.NotContains(t, buf.String(), "Hint:")
	assert.Contains(t, buf.String(), "* bg-*: 1 warning\n")
}

func TestPluralizeCount(t *testing.T) {
	require.Equal(t, "1 error", pluralizeCount(1, "error", "errors"))
	require.Equal(t, "0 errors", pluralizeCount(0, "error", "errors"))
	require.Equal(t, "2 errors", pluralizeCount(2, "error", "errors"))
}
