package oklchgen

import (
	"encoding/json"
	"io"
)

// JSONVersion identifies the export schema.
const JSONVersion = "1"

// JSONOutput is the machine-readable form of a table, shaped like the object
// handed to a utility-registration API: class -> { property: value }.
type JSONOutput struct {
	Version      string                       `json:"version"`
	Root         map[string]string            `json:"root"`
	DarkSelector string                       `json:"dark_selector,omitempty"`
	Dark         map[string]string            `json:"dark,omitempty"`
	Utilities    map[string]map[string]string `json:"utilities"`
	Stats        JSONStats                    `json:"stats"`
}

// JSONStats summarizes the export
type JSONStats struct {
	Total  int                 `json:"total"`
	ByKind map[UtilityKind]int `json:"by_kind"`
}

// WriteJSON writes the table as indented JSON. Map keys are sorted by
// encoding/json, so the output is stable.
func WriteJSON(w io.Writer, t *Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(t))
}

func buildJSONOutput(t *Table) JSONOutput {
	out := JSONOutput{
		Version:      JSONVersion,
		Root:         declMap(t.Root),
		DarkSelector: t.DarkSelector,
		Dark:         declMap(t.Dark),
		Utilities:    make(map[string]map[string]string, len(t.Utilities)),
		Stats: JSONStats{
			Total:  t.Len(),
			ByKind: t.CountByKind(),
		},
	}
	for _, u := range t.Utilities {
		out.Utilities["."+u.Class] = declMap(u.Declarations)
	}
	return out
}

func declMap(decls []Declaration) map[string]string {
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}
