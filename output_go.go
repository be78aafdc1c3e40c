package oklchgen

import (
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"
)

// WriteGoConstants emits gofmt'ed Go source with one constant per utility
// class and an AllClasses set, so templates can reference utilities by name.
func WriteGoConstants(w io.Writer, t *Table, pkg string) error {
	if pkg == "" {
		pkg = "ui"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by oklchgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "// Package %s exposes the generated OKLCH utility classes.\n", pkg)
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	seen := make(map[string]string, len(t.Utilities))
	current := ""
	for _, u := range t.Utilities {
		name := toGoName(u.Class)
		if other, dup := seen[name]; dup {
			return fmt.Errorf("classes %q and %q both map to Go name %s", other, u.Class, name)
		}
		seen[name] = u.Class

		group := strings.TrimSpace(u.Prefix + " " + string(u.Kind))
		if group != current {
			if current != "" {
				sb.WriteString(")\n\n")
			}
			fmt.Fprintf(&sb, "// %s utilities\nconst (\n", group)
			current = group
		}
		fmt.Fprintf(&sb, "\t%s = %q\n", name, u.Class)
	}
	if current != "" {
		sb.WriteString(")\n\n")
	}

	sb.WriteString("// AllClasses lists every generated utility class.\n")
	sb.WriteString("var AllClasses = map[string]bool{\n")
	for _, u := range t.Utilities {
		fmt.Fprintf(&sb, "\t%q: true,\n", u.Class)
	}
	sb.WriteString("}\n")

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// toGoName converts kebab-case to PascalCase
func toGoName(className string) string {
	parts := strings.FieldsFunc(className, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	return strings.Join(parts, "")
}
