package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference represents a single class token found in a template
type ClassReference struct {
	Token       string       // As written: "hover:bg-lc-8"
	ClassName   string       // Variants stripped: "bg-lc-8"
	Location    FileLocation // Where it was found
	LineContent string       // The full line for context
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int // 1-based column (exact start of the token)
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// Patterns for finding class attribute values. Group 1 is the class string.
	classPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bclass(?:Name)?="([^"]*)"`),
		regexp.MustCompile(`\bclass(?:Name)?='([^']*)'`),
		regexp.MustCompile("\\bclass(?:Name)?=\\{\\s*[\"`]([^\"`]*)[\"`]\\s*\\}"),
	}

	// Helper calls whose string arguments are class lists:
	// templ.Classes("a", "b"), clsx("a"), cn("a b")
	classCallPattern = regexp.MustCompile(`\b(?:templ\.Classes|clsx|cn|classNames)\(([^)]*)\)`)
	// Astro directive: class:list={["a", { "b": cond }]}
	classListPattern = regexp.MustCompile(`\bclass:list=\{(.*)\}`)
	stringLiteral    = regexp.MustCompile("\"([^\"]*)\"|'([^']*)'|`([^`]*)`")

	// Group 1 of each holds string literals that are class lists
	literalPatterns = []*regexp.Regexp{classCallPattern, classListPattern}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*(//|<!--|\*)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated reports whether a file is generator output that should not be linted
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".gen.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip generated files
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}

	// Absolute paths (like /tmp/...) should not be affected by project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class tokens
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			// Unreadable files are counted as skipped
			stats.FilesScanned--
			stats.FilesSkipped++
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands globs and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class tokens
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassesFromLine extracts every class token from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference
	covered := make(map[int]bool) // start offsets of class strings already handled

	addSpan := func(start, end int) {
		if covered[start] {
			return
		}
		covered[start] = true
		refs = append(refs, tokensInSpan(line, start, end, lineNum, file)...)
	}

	for _, pattern := range classPatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(line, -1) {
			if len(match) >= 4 && match[2] >= 0 {
				addSpan(match[2], match[3])
			}
		}
	}

	for _, pattern := range literalPatterns {
		for _, call := range pattern.FindAllStringSubmatchIndex(line, -1) {
			argsStart := call[2]
			args := line[call[2]:call[3]]
			for _, lit := range stringLiteral.FindAllStringSubmatchIndex(args, -1) {
				for g := 2; g+1 < len(lit); g += 2 {
					if lit[g] >= 0 {
						addSpan(argsStart+lit[g], argsStart+lit[g+1])
					}
				}
			}
		}
	}

	return refs
}

// tokensInSpan splits line[start:end] on whitespace, keeping exact columns
func tokensInSpan(line string, start, end, lineNum int, file string) []ClassReference {
	var refs []ClassReference
	i := start
	for i < end {
		for i < end && isSpace(line[i]) {
			i++
		}
		j := i
		for j < end && !isSpace(line[j]) {
			j++
		}
		if j > i {
			token := line[i:j]
			refs = append(refs, ClassReference{
				Token:     token,
				ClassName: stripVariants(token),
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: i + 1,
				},
				LineContent: line,
			})
		}
		i = j
	}
	return refs
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// stripVariants removes variant prefixes ("md:hover:") and importance markers ("!").
// Tokens with arbitrary values ("bg-[...]") are returned unchanged.
func stripVariants(token string) string {
	if strings.ContainsAny(token, "[]{}$") {
		return token
	}
	if i := strings.LastIndexByte(token, ':'); i >= 0 {
		token = token[i+1:]
	}
	token = strings.TrimPrefix(token, "!")
	token = strings.TrimSuffix(token, "!")
	return token
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
