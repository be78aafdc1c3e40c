package lint

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints issues one per line, golangci-lint style, with the source
// line, a marker under the offending utility and the suggested replacement
// aligned beneath it.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors honours --color, then NO_COLOR, then FORCE_COLOR, then a TTY on stdout.
func shouldUseColors(config LintConfig) bool {
	switch {
	case config.UseColors:
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	case os.Getenv("FORCE_COLOR") != "":
		return true
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// PrintIssues prints issues ordered by file, line and column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue writes:
//
//	page.html:3:13: unknown OKLCH utility "bg-11-hi-primary": ... (oklchlint)
//		<div class="bg-11-hi-primary">
//		            ^~~~~~~~~~~~~~~~
//		            bg-1-hi-primary
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	suffix := ""
	if r.printLinterName {
		suffix = " (" + issue.FromLinter + ")"
	}

	textStyle := StyleYellow
	if issue.Severity == SeverityError {
		textStyle = StyleRed
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(textStyle, issue.Text, r.useColors),
		RenderStyle(StyleGray, suffix, r.useColors))

	if !r.printLines || len(issue.SourceLines) == 0 {
		if issue.Replacement != nil {
			fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleGreen, "-> "+issue.Replacement.NewText, r.useColors))
		}
		return
	}

	line := issue.SourceLines[0]
	pad := alignTo(line, issue.Pos.Column)
	fmt.Fprintf(r.w, "\t%s\n", line)
	fmt.Fprintf(r.w, "\t%s%s\n", pad, RenderStyle(StyleYellow, marker(markerWidth(issue)), r.useColors))
	if issue.Replacement != nil {
		fmt.Fprintf(r.w, "\t%s%s\n", pad, RenderStyle(StyleGreen, issue.Replacement.NewText, r.useColors))
	}
}

// alignTo returns whitespace that reaches column (1-based) of line, copying
// tabs so the result lines up however the terminal expands them.
func alignTo(line string, column int) string {
	n := column - 1
	if n <= 0 {
		return ""
	}
	if n > len(line) {
		n = len(line)
	}

	var sb strings.Builder
	for _, ch := range line[:n] {
		if ch == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// markerWidth is the length of the token the issue points at.
func markerWidth(issue Issue) int {
	switch {
	case issue.Token != "":
		return len(issue.Token)
	case issue.Replacement != nil && issue.Replacement.InlineLength > 0:
		return issue.Replacement.InlineLength
	}
	return 1
}

// marker underlines width characters: ^~~~
func marker(width int) string {
	if width < 1 {
		width = 1
	}
	return "^" + strings.Repeat("~", width-1)
}

// PrintSummary prints the issue totals followed by how many issues each
// binding produced, so a misnamed palette entry shows up as one hot binding.
func (r *Reporter) PrintSummary(result LintResult) {
	total := len(result.Issues)

	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}
	header := pluralizeCount(total, "issue", "issues")
	switch {
	case len(details) > 0 && result.TruncatedCount > 0:
		header += fmt.Sprintf(" (%s; %s truncated)", strings.Join(details, ", "),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	case len(details) > 0:
		header += " (" + strings.Join(details, ", ") + ")"
	case result.TruncatedCount > 0:
		header += fmt.Sprintf(" (%s truncated)", pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, header+":")

	for _, b := range bindingBreakdown(result.Issues) {
		fmt.Fprintf(r.w, "* %s: %s\n", b.label(), b.counts())
	}

	if fixable := countFixable(result.Issues); fixable > 0 {
		fmt.Fprintln(r.w)
		hint := fmt.Sprintf("Hint: %d issues have a suggested replacement", fixable)
		if fixable == 1 {
			hint = "Hint: 1 issue has a suggested replacement"
		}
		fmt.Fprintln(r.w, RenderStyle(StyleGray, hint, r.useColors))
	}
}

// bindingIssues tallies issues for one binding prefix
type bindingIssues struct {
	binding  string
	errors   int
	warnings int
}

func (b bindingIssues) label() string {
	if b.binding == "" {
		return "hue-*"
	}
	return b.binding + "-*"
}

func (b bindingIssues) counts() string {
	parts := make([]string, 0, 2)
	if b.errors > 0 {
		parts = append(parts, pluralizeCount(b.errors, "error", "errors"))
	}
	if b.warnings > 0 {
		parts = append(parts, pluralizeCount(b.warnings, "warning", "warnings"))
	}
	return strings.Join(parts, ", ")
}

// bindingBreakdown groups issues by binding, most issues first
func bindingBreakdown(issues []Issue) []bindingIssues {
	byBinding := make(map[string]*bindingIssues)
	for _, issue := range issues {
		b, ok := byBinding[issue.Binding]
		if !ok {
			b = &bindingIssues{binding: issue.Binding}
			byBinding[issue.Binding] = b
		}
		if issue.Severity == SeverityError {
			b.errors++
		} else {
			b.warnings++
		}
	}

	out := make([]bindingIssues, 0, len(byBinding))
	for _, b := range byBinding {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].errors+out[i].warnings, out[j].errors+out[j].warnings
		if ti != tj {
			return ti > tj
		}
		return out[i].binding < out[j].binding
	})
	return out
}

func countFixable(issues []Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.Replacement != nil {
			n++
		}
	}
	return n
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
