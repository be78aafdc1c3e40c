// Package oklchgen generates OKLCH color utility classes along three
// orthogonal axes: luminance, chroma and hue.
//
// # Utilities
//
// For every property binding (bg, text, border, ...) the table contains:
//
//   - bg-5-hi-primary  shorthand: sets --bg-l, --bg-c, --bg-h and the color
//   - bg-5-hi          two-axis shorthand: the hue is inherited from an ancestor
//   - bg-lc-5, bg-c-hi, bg-h-primary  single-axis setters
//
// hue-primary sets the hue variable of every binding without painting
// anything, so a container can choose the hue for two-axis children:
//
//	<section class="hue-accent"><p class="text-5-mlo bg-2-mid">...</p></section>
//
// Every binding utility re-applies background-color: oklch(var(--bg-l) var(--bg-c) var(--bg-h)),
// so a child can override one axis and inherit the other two. The :root block
// registers defaults for every axis variable, which is what makes a lone
// bg-lc-8 or bg-5-hi resolve without an ancestor.
//
// # Luminance
//
// Numeric stops 0..10 interpolate between --lc-range-start and --lc-range-end
// (see LuValue); base and fore alias 0 and 10. Named stops lo/mlo/mid/mhi/hi
// are fixed lightness values. The dark selector flips the range and declares
// the step variables again, because a custom property holding calc() is
// computed on the element that declares it. .dark therefore re-themes the
// scale on html and on any subtree alike.
//
// # Generation
//
//	table, err := oklchgen.BuildTable(oklchgen.DefaultPalette(), oklchgen.DefaultBuildOptions())
//	if err != nil {
//		return err
//	}
//	err = oklchgen.WriteCSS(os.Stdout, table, oklchgen.CSSOptions{Layer: "utilities"})
//
// Generate wraps the same steps and writes css, json and Go constant artifacts.
//
// # CLI Tool
//
//	go install github.com/yacobolo/oklchgen/cmd/oklchgen@latest
package oklchgen
