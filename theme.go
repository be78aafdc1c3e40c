package oklchgen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// Theme maps a block selector (":root", "@theme", ".dark", nested blocks
// joined by a space) to the custom properties declared directly in it.
type Theme map[string]map[string]string

// themeState maintains context while lexing a theme stylesheet
type themeState struct {
	lexer   *css.Lexer
	theme   Theme
	stack   []string
	prelude strings.Builder
}

// ParseTheme extracts custom property declarations from CSS content.
func ParseTheme(content string) (Theme, error) {
	s := &themeState{
		lexer: css.NewLexer(parse.NewInputString(content)),
		theme: make(Theme),
	}

	for {
		tt, text := s.lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := s.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("lex theme: %w", err)
			}
			return s.theme, nil
		case css.CommentToken:
		case css.LeftBraceToken:
			s.stack = append(s.stack, normalizeSelector(s.prelude.String()))
			s.prelude.Reset()
		case css.RightBraceToken:
			s.pop()
		case css.SemicolonToken:
			s.prelude.Reset()
		case css.CustomPropertyNameToken, css.IdentToken:
			name := string(text)
			if len(s.stack) > 0 && strings.HasPrefix(name, "--") && strings.TrimSpace(s.prelude.String()) == "" {
				s.handleDeclaration(name)
				continue
			}
			s.prelude.Write(text)
		default:
			s.prelude.Write(text)
		}
	}
}

// ParseThemeFile reads and parses a theme stylesheet.
func ParseThemeFile(path string) (Theme, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(string(content))
}

func (s *themeState) pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.prelude.Reset()
}

// handleDeclaration reads ": value" up to ; or } and records it for the current block.
func (s *themeState) handleDeclaration(name string) {
	tt, text := s.nextSignificant()
	if tt != css.ColonToken {
		s.prelude.WriteString(name)
		s.prelude.Write(text)
		return
	}

	block := strings.Join(s.stack, " ")
	var value strings.Builder
	for {
		tt, text := s.lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken, css.RightBraceToken:
			s.record(block, name, value.String())
			if tt == css.RightBraceToken {
				s.pop()
			}
			return
		case css.CommentToken:
		case css.WhitespaceToken:
			value.WriteByte(' ')
		default:
			value.Write(text)
		}
	}
}

func (s *themeState) nextSignificant() (css.TokenType, []byte) {
	for {
		tt, text := s.lexer.Next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, text
		}
	}
}

func (s *themeState) record(block, name, value string) {
	props, ok := s.theme[block]
	if !ok {
		props = make(map[string]string)
		s.theme[block] = props
	}
	props[name] = strings.Join(strings.Fields(value), " ")
}

func normalizeSelector(sel string) string {
	return strings.Join(strings.Fields(sel), " ")
}

// isRootBlock reports whether declarations in block apply to the light/default scope.
func isRootBlock(block string) bool {
	return block == ":root" || block == "html" || block == "@theme" || strings.HasPrefix(block, "@theme ")
}

func isDarkBlock(block, darkSelector string) bool {
	if darkSelector != "" && (block == darkSelector || block == ":root"+darkSelector || block == "html"+darkSelector) {
		return true
	}
	compact := strings.ReplaceAll(block, " ", "")
	return strings.Contains(compact, "prefers-color-scheme:dark")
}

// ApplyTheme returns a copy of p with the theme's overrides applied. Unknown
// names produce warnings; values that are not numbers produce errors.
func (p Palette) ApplyTheme(th Theme) (Palette, []string, error) {
	out := p.Clone()
	var warnings []string
	var err error

	blocks := make([]string, 0, len(th))
	for block := range th {
		blocks = append(blocks, block)
	}
	sort.Strings(blocks)

	for _, block := range blocks {
		dark := isDarkBlock(block, p.DarkSelector)
		if !dark && !isRootBlock(block) {
			continue
		}

		names := make([]string, 0, len(th[block]))
		for name := range th[block] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			raw := th[block][name]
			w, aerr := out.applyOverride(name, raw, dark)
			if w != "" {
				warnings = append(warnings, fmt.Sprintf("%s in %s: %s", name, block, w))
			}
			err = multierr.Append(err, aerr)
		}
	}

	if err != nil {
		return p, warnings, fmt.Errorf("apply theme: %w", err)
	}
	return out, warnings, nil
}

func (p *Palette) applyOverride(name, raw string, dark bool) (string, error) {
	switch {
	case name == "--lc-range-start" || name == "--lc-range-end":
		v, err := parseThemeNumber(name, raw, "")
		if err != nil {
			return "", err
		}
		r := &p.Light
		if dark {
			r = &p.Dark
		}
		if name == "--lc-range-start" {
			r.Start = v
		} else {
			r.End = v
		}
		return "", nil

	case dark && isPaletteVar(name):
		return "only --lc-range-start and --lc-range-end are applied in dark scope", nil

	case strings.HasPrefix(name, "--hue-"):
		hue := strings.TrimPrefix(name, "--hue-")
		for i := range p.Hues {
			if p.Hues[i].Name == hue {
				v, err := parseThemeNumber(name, raw, "deg")
				if err != nil {
					return "", err
				}
				p.Hues[i].Degrees = v
				return "", nil
			}
		}
		return fmt.Sprintf("unknown hue %q", hue), nil

	case strings.HasPrefix(name, "--c-"):
		chroma := strings.TrimPrefix(name, "--c-")
		for i := range p.Chromas {
			if p.Chromas[i].Name == chroma {
				v, err := parseThemeNumber(name, raw, "")
				if err != nil {
					return "", err
				}
				p.Chromas[i].Value = v
				return "", nil
			}
		}
		return fmt.Sprintf("unknown chroma %q", chroma), nil

	case strings.HasPrefix(name, "--l-"):
		lum := strings.TrimPrefix(name, "--l-")
		for i := range p.Luminances {
			if p.Luminances[i].Name != lum {
				continue
			}
			if p.Luminances[i].IsStep() {
				return "step luminance follows the range; override --lc-range-start/--lc-range-end instead", nil
			}
			v, err := parseThemeNumber(name, raw, "")
			if err != nil {
				return "", err
			}
			p.Luminances[i].Value = &v
			return "", nil
		}
		return fmt.Sprintf("unknown luminance %q", lum), nil
	}
	return "", nil
}

func isPaletteVar(name string) bool {
	return strings.HasPrefix(name, "--hue-") || strings.HasPrefix(name, "--c-") || strings.HasPrefix(name, "--l-")
}

func parseThemeNumber(name, raw, unit string) (float64, error) {
	s := strings.TrimSpace(raw)
	if unit != "" {
		s = strings.TrimSuffix(s, unit)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &NameError{Axis: "theme", Name: name, Reason: fmt.Sprintf("value %q is not a number", raw)}
	}
	return v, nil
}
