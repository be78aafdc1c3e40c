package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yacobolo/oklchgen"
)

// Options controls the swatch matrix
type Options struct {
	Chroma    string // Chroma stop to render (empty = palette default)
	Dark      bool   // Resolve steps with the dark range
	Values    bool   // Print oklch() strings instead of swatches
	UseColors bool   // Paint swatch backgrounds
}

// Swatch is one cell of the matrix
type Swatch struct {
	Hue     string
	Step    int
	Color   oklchgen.OKLCH
	Hex     string
	InGamut bool
}

// Matrix holds every hue resolved at every contrast step for one chroma stop
type Matrix struct {
	Chroma string
	Range  oklchgen.LuminanceRange
	Rows   [][]Swatch // one row per hue, ScaleSteps+1 cells each
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// BuildMatrix resolves the palette hues across the contrast scale
func BuildMatrix(p oklchgen.Palette, opts Options) (*Matrix, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	name := opts.Chroma
	if name == "" {
		name = p.Defaults.Chroma
	}
	chroma, ok := p.Chroma(name)
	if !ok {
		return nil, fmt.Errorf("unknown chroma stop %q", name)
	}

	r := p.Light
	if opts.Dark {
		r = p.Dark
	}

	m := &Matrix{Chroma: chroma.Name, Range: r}
	for _, h := range p.Hues {
		row := make([]Swatch, 0, oklchgen.ScaleSteps+1)
		for step := 0; step <= oklchgen.ScaleSteps; step++ {
			c := oklchgen.OKLCH{L: oklchgen.LuValue(step, r), C: chroma.Value, H: h.Degrees}
			rgb, inGamut := ToSRGB(c)
			row = append(row, Swatch{
				Hue:     h.Name,
				Step:    step,
				Color:   c,
				Hex:     rgb.Hex(),
				InGamut: inGamut,
			})
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

// Clipped counts swatches outside the sRGB gamut
func (m *Matrix) Clipped() int {
	n := 0
	for _, row := range m.Rows {
		for _, s := range row {
			if !s.InGamut {
				n++
			}
		}
	}
	return n
}

// RenderMatrix writes the hue x step matrix for the palette
func RenderMatrix(w io.Writer, p oklchgen.Palette, opts Options) error {
	m, err := BuildMatrix(p, opts)
	if err != nil {
		return err
	}

	mode := "light"
	if opts.Dark {
		mode = "dark"
	}

	labelWidth := 0
	for _, h := range p.Hues {
		labelWidth = max(labelWidth, len(h.Name))
	}

	cellWidth := 9 // "#rrggbb* "
	if opts.Values {
		cellWidth = 0
		for _, row := range m.Rows {
			for _, s := range row {
				cellWidth = max(cellWidth, len(s.Color.String())+2)
			}
		}
	}

	title := fmt.Sprintf("chroma %s, %s range %s -> %s", m.Chroma, mode,
		strconv.FormatFloat(m.Range.Start, 'f', -1, 64), strconv.FormatFloat(m.Range.End, 'f', -1, 64))
	fmt.Fprintln(w, render(headerStyle, title, opts.UseColors))

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth+1))
	for step := 0; step <= oklchgen.ScaleSteps; step++ {
		header.WriteString(pad(strconv.Itoa(step), cellWidth))
	}
	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	for _, row := range m.Rows {
		var line strings.Builder
		line.WriteString(render(labelStyle, pad(row[0].Hue, labelWidth+1), opts.UseColors))
		for _, s := range row {
			line.WriteString(cell(s, cellWidth, opts))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	if n := m.Clipped(); n > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, render(noteStyle,
			fmt.Sprintf("* %d of %d swatches are outside sRGB and were clipped", n, len(m.Rows)*(oklchgen.ScaleSteps+1)),
			opts.UseColors))
	}
	return nil
}

func cell(s Swatch, width int, opts Options) string {
	text := s.Hex
	if opts.Values {
		text = s.Color.String()
	}
	if !s.InGamut && !opts.UseColors {
		text += "*"
	}

	if !opts.UseColors {
		return pad(text, width)
	}

	fg := "#000000"
	if s.Color.L < 0.6 {
		fg = "#ffffff"
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color(fg))
	return style.Render(pad(text, width-1)) + " "
}

func render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
