package harness

import (
	"fmt"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/compiler"
	"github.com/refmark/refmark/internal/engine"
)

// Result captures the rendered output of one scenario run.
type Result struct {
	// Citations holds the rendered citation groups in document order.
	Citations []string

	// Bibliography holds one rendered line per cited entry, in
	// citation-number order.
	Bibliography []string
}

// Run executes a scenario: loads and validates the style, renders every
// citation group in order through one session, then renders the
// bibliography. Style configuration errors fail the run; rendering
// itself cannot fail.
func Run(scenario *Scenario) (*Result, error) {
	st, err := compiler.LoadFile(scenario.Style)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	byID := make(map[string]bib.Entry, len(scenario.Entries))
	for _, e := range scenario.Entries {
		byID[e.ID] = e
	}

	session := engine.NewSession(st)
	result := &Result{}
	for _, group := range scenario.Citations {
		entries := make([]bib.Entry, len(group))
		for i, id := range group {
			entries[i] = byID[id] // existence checked by LoadScenario
		}
		result.Citations = append(result.Citations, session.RenderCitation(entries).String())
	}

	for _, line := range session.RenderBibliography() {
		result.Bibliography = append(result.Bibliography, line.String())
	}
	return result, nil
}
