package lint

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/oklchgen"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "OKLCH Utility Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:       %d (%d skipped)\n", result.FilesScanned, result.FilesSkipped)
	fmt.Fprintf(r.w, "Class Tokens:        %d\n", result.TokensFound)
	fmt.Fprintf(r.w, "Utility References:  %d\n", result.UtilityRefs)
	fmt.Fprintf(r.w, "Unique Utilities:    %d of %d (%.1f%%)\n",
		result.UniqueUtilities, result.TotalUtilities, result.CoveragePercent)
	fmt.Fprintf(r.w, "Errors:              %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:            %d\n", result.WarningCount)
}

// PrintUsageByKind shows how references split across utility families
func (r *VerboseReporter) PrintUsageByKind(result LintResult) {
	if len(result.UsageByKind) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Usage by Family", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	kinds := make([]oklchgen.UtilityKind, 0, len(result.UsageByKind))
	for kind := range result.UsageByKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		n := result.UsageByKind[kind]
		fmt.Fprintf(r.w, "%-14s %5d  %s\n", kind, n, bar(n, result.UtilityRefs, 20))
	}
}

// PrintTopUtilities shows the most referenced utilities
func (r *VerboseReporter) PrintTopUtilities(result LintResult) {
	if len(result.TopUtilities) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Most Used Utilities", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	for i, u := range result.TopUtilities {
		fmt.Fprintf(r.w, "%d. %s - %d occurrences\n", i+1, u.ClassName, u.Occurrences)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// bar renders n/total as a fixed-width progress bar
func bar(n, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := n * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
