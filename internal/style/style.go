package style

import "github.com/refmark/refmark/internal/bib"

// Sort keys for the bibliography layout.
const (
	SortCitationNumber = "citation-number"
)

// EtAl holds the truncation thresholds for one rendering context.
// When a name list has at least Min names, only the first UseFirst are
// rendered, followed by the localized et-al term. A zero Min disables
// truncation.
type EtAl struct {
	Min      int `json:"et-al-min,omitempty"`
	UseFirst int `json:"et-al-use-first,omitempty"`
}

// Truncates reports whether a list of n names is subject to et-al
// truncation under these thresholds.
func (e EtAl) Truncates(n int) bool {
	return e.Min > 0 && n >= e.Min
}

// Layout is one of the two top-level rule sets of a style. Citation and
// bibliography layouts carry independent delimiter, affix, sort, and
// et-al settings; the thresholds may differ between the two contexts.
type Layout struct {
	Prefix    string `json:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty"`
	Delimiter string `json:"delimiter,omitempty"`
	Sort      string `json:"sort,omitempty"`     // bibliography only; SortCitationNumber
	Collapse  bool   `json:"collapse,omitempty"` // citation only; compress numeric runs
	EtAl      EtAl   `json:"et-al,omitempty"`
	Rules     []Node `json:"layout,omitempty"` // bibliography body; citations render numbers
}

// Style is the immutable rule set for one citation style. Loaded once,
// validated by the compiler, and never mutated during rendering.
type Style struct {
	Name    string          `json:"name"`
	Version string          `json:"version,omitempty"`
	Macros  map[string]Node `json:"macros"`
	Terms   bib.Terms       `json:"terms,omitempty"` // overrides onto bib.DefaultTerms

	Citation     Layout `json:"citation"`
	Bibliography Layout `json:"bibliography"`
}

// LocaleTerms returns the effective term table: bundled defaults with
// the style's overrides applied.
func (s *Style) LocaleTerms() bib.Terms {
	return bib.DefaultTerms().Override(s.Terms)
}
