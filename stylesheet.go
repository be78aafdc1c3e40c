package oklchgen

import (
	"bufio"
	"io"
)

// CSSOptions controls stylesheet rendering.
type CSSOptions struct {
	Layer string // wrap utilities in @layer {Layer} { ... } when set
}

const generatedHeader = "Generated by oklchgen. DO NOT EDIT."

// WriteCSS renders the table as a stylesheet: root variables, dark-mode range,
// then one rule per utility in table order.
func WriteCSS(w io.Writer, t *Table, opts CSSOptions) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("/* " + generatedHeader + " */\n\n")
	writeRule(bw, ":root", t.Root, "")
	if t.DarkSelector != "" && len(t.Dark) > 0 {
		bw.WriteString("\n")
		writeRule(bw, t.DarkSelector, t.Dark, "")
	}

	indent := ""
	if opts.Layer != "" {
		bw.WriteString("\n@layer " + opts.Layer + " {\n")
		indent = "  "
	}
	for i, u := range t.Utilities {
		if i > 0 || opts.Layer == "" {
			bw.WriteString("\n")
		}
		writeRule(bw, "."+u.Class, u.Declarations, indent)
	}
	if opts.Layer != "" {
		bw.WriteString("}\n")
	}

	return bw.Flush()
}

func writeRule(bw *bufio.Writer, selector string, decls []Declaration, indent string) {
	bw.WriteString(indent + selector + " {\n")
	for _, d := range decls {
		bw.WriteString(indent + "  " + d.Property + ": " + d.Value + ";\n")
	}
	bw.WriteString(indent + "}\n")
}
