// Package lint checks templates for OKLCH utility classes that the generator
// does not produce.
//
// # Candidate Detection
//
// Tailwind and hand-written classes share the bg-/text-/border- namespaces, so
// the linter only reports tokens that are clearly meant to be OKLCH utilities:
//
//  1. The token starts with a binding prefix (longest prefix first: border-b before border)
//  2. The remainder is a decomposed setter (lc-X, c-X, h-X), or
//  3. A three-segment remainder where at least two segments are known stops, or
//  4. A two-segment remainder where one segment is known and the other is a
//     near miss of a known stop.
//
// A hue-X token with a single segment is always a hue context. Tailwind's
// hue-rotate-15 has more segments and never matches.
//
// Tokens like bg-red-500 or text-xl never match, so they are never reported.
//
// # Results
//
//   - Valid:    the class is in the table
//   - Disabled: the class exists in the full vocabulary but its family is turned off (warning)
//   - Unknown:  the class looks like a utility but is not generated (error, with a suggestion)
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"go.uber.org/zap"

	"github.com/yacobolo/oklchgen"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (e.g., "web/templates/**/*.html")
	Palette   oklchgen.Palette
	Options   oklchgen.BuildOptions
	Strict    bool // Exit with code 1 on any issue, not only errors

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (oklchlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)

	Logger *zap.Logger // nil disables logging
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	FilesScanned    int
	FilesSkipped    int
	TokensFound     int                          // Every class token seen
	UtilityRefs     int                          // Tokens that are valid OKLCH utilities
	UniqueUtilities int                          // Distinct valid utilities used
	TotalUtilities  int                          // Size of the generated table
	CoveragePercent float64                      // UniqueUtilities / TotalUtilities
	UsageByKind     map[oklchgen.UtilityKind]int // Valid references per utility family

	// Issues in golangci-lint format
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	TopUtilities []UtilityUsage // Most frequently used utilities
	Warnings     []string
}

// UtilityUsage counts references to one utility
type UtilityUsage struct {
	ClassName   string
	Occurrences int
}

// similarityThreshold is the minimum strutil similarity for a suggestion.
const similarityThreshold = 0.5

// Lint scans the configured files and reports OKLCH utility misuse
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Step 1: Build the configured table and the full vocabulary table
	table, err := oklchgen.BuildTable(config.Palette, config.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to build utility table: %w", err)
	}
	full, err := oklchgen.BuildTable(config.Palette, oklchgen.DefaultBuildOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to build utility table: %w", err)
	}

	// Step 2: Scan files for class tokens
	references, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	log.Debug("Scanned files",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped),
		zap.Int("tokens", len(references)))

	// Step 3: Classify every token
	c := newClassifier(table, full)
	result := c.analyze(references)
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	if len(config.ScanPaths) > 0 && stats.FilesDiscovered == 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no files matched %s", strings.Join(config.ScanPaths, ", ")))
	}

	// Step 4: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// classifier resolves tokens against the utility tables
type classifier struct {
	table       *oklchgen.Table
	full        *oklchgen.Table
	palette     oklchgen.Palette
	prefixes    []string // longest first
	levenshtein *metrics.Levenshtein
}

func newClassifier(table, full *oklchgen.Table) *classifier {
	palette := table.Palette()
	prefixes := make([]string, 0, len(palette.Properties))
	for _, p := range palette.Properties {
		prefixes = append(prefixes, p.Prefix)
	}
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i]) > len(prefixes[j])
	})

	return &classifier{
		table:       table,
		full:        full,
		palette:     palette,
		prefixes:    prefixes,
		levenshtein: metrics.NewLevenshtein(),
	}
}

// analyze classifies all references and assembles the result
func (c *classifier) analyze(refs []ClassReference) *LintResult {
	result := &LintResult{
		TokensFound:    len(refs),
		TotalUtilities: c.table.Len(),
		UsageByKind:    make(map[oklchgen.UtilityKind]int),
	}
	usage := make(map[string]int)

	for _, ref := range refs {
		if u, ok := c.table.Lookup(ref.ClassName); ok {
			result.UtilityRefs++
			result.UsageByKind[u.Kind]++
			usage[u.Class]++
			continue
		}

		issue, ok := c.check(ref)
		if !ok {
			continue
		}
		result.Issues = append(result.Issues, issue)
		if issue.Severity == SeverityError {
			result.ErrorCount++
		} else {
			result.WarningCount++
		}
	}

	result.UniqueUtilities = len(usage)
	if result.TotalUtilities > 0 {
		result.CoveragePercent = float64(result.UniqueUtilities) / float64(result.TotalUtilities) * 100
	}
	result.TopUtilities = topUtilities(usage, 10)
	return result
}

// check returns an issue for a token that looks like an OKLCH utility but is not generated
func (c *classifier) check(ref ClassReference) (Issue, bool) {
	if u, ok := c.full.Lookup(ref.ClassName); ok {
		return c.newIssue(ref, u.Prefix, SeverityWarning,
			fmt.Sprintf(IssueDisabledUtility, ref.ClassName, disabledReason(u.Kind)), ""), true
	}

	if hue, ok := strings.CutPrefix(ref.ClassName, "hue-"); ok && hue != "" && !strings.Contains(hue, "-") {
		return c.hueContextIssue(ref, hue), true
	}

	for _, prefix := range c.prefixes {
		if !strings.HasPrefix(ref.ClassName, prefix+"-") {
			continue
		}
		segments := strings.Split(strings.TrimPrefix(ref.ClassName, prefix+"-"), "-")
		reason, suggestion, ok := c.diagnose(prefix, segments)
		if !ok {
			continue
		}
		text := fmt.Sprintf(IssueUnknownUtility, ref.ClassName, reason)
		if suggestion != "" {
			text += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		return c.newIssue(ref, prefix, SeverityError, text, suggestion), true
	}

	return Issue{}, false
}

// hueContextIssue reports a hue-X context naming an undefined hue
func (c *classifier) hueContextIssue(ref ClassReference, hue string) Issue {
	text := fmt.Sprintf(IssueUnknownUtility, ref.ClassName, fmt.Sprintf("hue %q is not defined", hue))
	suggestion := ""
	if best, score := c.closest(hue, c.hueNames()); score >= similarityThreshold {
		if candidate := oklchgen.HueContextClass(best); c.table.Has(candidate) {
			suggestion = candidate
			text += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
	}
	return c.newIssue(ref, "", SeverityError, text, suggestion)
}

// axis describes one class segment position
type axis struct {
	name  string
	vocab []string
}

// diagnose decides whether segments form a misspelled utility for prefix
func (c *classifier) diagnose(prefix string, segments []string) (reason, suggestion string, ok bool) {
	lum := axis{name: "luminance", vocab: c.luminanceNames()}
	chroma := axis{name: "chroma", vocab: c.chromaNames()}
	hue := axis{name: "hue", vocab: c.hueNames()}

	var axes []axis
	var build func(fixed []string) string
	switch {
	case len(segments) == 2 && segments[0] == "lc":
		axes = []axis{lum}
		build = func(s []string) string { return prefix + "-lc-" + s[0] }
	case len(segments) == 2 && segments[0] == "c":
		axes = []axis{chroma}
		build = func(s []string) string { return prefix + "-c-" + s[0] }
	case len(segments) == 2 && segments[0] == "h":
		axes = []axis{hue}
		build = func(s []string) string { return prefix + "-h-" + s[0] }
	case len(segments) == 3:
		axes = []axis{lum, chroma, hue}
		build = func(s []string) string { return oklchgen.ShorthandClass(prefix, s[0], s[1], s[2]) }
	case len(segments) == 2:
		axes = []axis{lum, chroma}
		build = func(s []string) string { return oklchgen.TwoAxisClass(prefix, s[0], s[1]) }
	default:
		return "", "", false
	}

	values := segments
	if len(axes) == 1 {
		values = segments[1:]
	}

	known := 0
	nearMiss := true
	fixed := make([]string, len(values))
	var problems []string
	for i, v := range values {
		if contains(axes[i].vocab, v) {
			known++
			fixed[i] = v
			continue
		}
		problems = append(problems, fmt.Sprintf("%s %q is not defined", axes[i].name, v))
		best, score := c.closest(v, axes[i].vocab)
		if score < similarityThreshold {
			nearMiss = false
		}
		fixed[i] = best
	}

	switch len(axes) {
	case 1:
		// lc-/c-/h- setters are unambiguous
	case 3:
		if known < 2 {
			return "", "", false
		}
	case 2:
		if known < 1 || !nearMiss {
			return "", "", false
		}
	}

	if nearMiss {
		if candidate := build(fixed); c.table.Has(candidate) {
			suggestion = candidate
		}
	}
	return strings.Join(problems, ", "), suggestion, true
}

// closest returns the vocabulary entry most similar to v
func (c *classifier) closest(v string, vocab []string) (string, float64) {
	best, bestScore := "", 0.0
	for _, candidate := range vocab {
		score := strutil.Similarity(v, candidate, c.levenshtein)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore
}

func (c *classifier) luminanceNames() []string {
	names := make([]string, 0, len(c.palette.Luminances))
	for _, l := range c.palette.Luminances {
		names = append(names, l.Name)
	}
	return names
}

func (c *classifier) chromaNames() []string {
	names := make([]string, 0, len(c.palette.Chromas))
	for _, ch := range c.palette.Chromas {
		names = append(names, ch.Name)
	}
	return names
}

func (c *classifier) hueNames() []string {
	names := make([]string, 0, len(c.palette.Hues))
	for _, h := range c.palette.Hues {
		names = append(names, h.Name)
	}
	return names
}

func (c *classifier) newIssue(ref ClassReference, binding, severity, text, suggestion string) Issue {
	issue := Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.LineContent},
		Token:       ref.Token,
		Binding:     binding,
		Pos: IssuePos{
			Filename: GetRelativePath(ref.Location.File),
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
	if suggestion != "" {
		issue.Replacement = &Replacement{
			NewText:      strings.Replace(ref.Token, ref.ClassName, suggestion, 1),
			InlineLength: len(ref.Token),
		}
	}
	return issue
}

func disabledReason(kind oklchgen.UtilityKind) string {
	switch kind {
	case oklchgen.KindShorthandLC:
		return "two-axis shorthands are disabled"
	case oklchgen.KindAxisL, oklchgen.KindAxisC, oklchgen.KindAxisH:
		return "single-axis utilities are disabled"
	case oklchgen.KindHueContext:
		return "hue-context utilities are disabled"
	default:
		return "utility family is disabled"
	}
}

// topUtilities returns the n most used utilities, ties broken by name
func topUtilities(usage map[string]int, n int) []UtilityUsage {
	out := make([]UtilityUsage, 0, len(usage))
	for class, count := range usage {
		out = append(out, UtilityUsage{ClassName: class, Occurrences: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].ClassName < out[j].ClassName
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// limitIssues applies MaxIssuesPerLinter and MaxSameIssues
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	var limited []Issue
	sameCount := make(map[string]int)
	truncated := 0

	for _, issue := range issues {
		if config.MaxSameIssues > 0 {
			sameCount[issue.Text]++
			if sameCount[issue.Text] > config.MaxSameIssues {
				truncated++
				continue
			}
		}
		if config.MaxIssuesPerLinter > 0 && len(limited) >= config.MaxIssuesPerLinter {
			truncated++
			continue
		}
		limited = append(limited, issue)
	}

	return limited, truncated
}

// contains checks if a string slice contains a value
func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
