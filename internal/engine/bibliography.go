package engine

import (
	"strings"

	"github.com/refmark/refmark/internal/bib"
)

// RenderBibliography renders every entry cited during the session, one
// RenderedText per entry, ordered by citation-number ascending. That is
// the order in which entries were first cited, regardless of the order
// the entry source supplied them.
//
// Each entry renders through the bibliography layout rules with the
// layout's own et-al thresholds and ends with the layout suffix. The
// presentation layer joins entries with single line breaks; the
// entry-spacing contract is zero blank lines between entries.
func (s *Session) RenderBibliography() []bib.RenderedText {
	layout := s.style.Bibliography
	cited := s.numbers.citedEntries()

	out := make([]bib.RenderedText, 0, len(cited))
	for i := range cited {
		entry := cited[i]
		number, _ := s.numbers.numberOf(entry.ID)
		ctx := renderCtx{entry: &entry, etAl: layout.EtAl, number: number}

		parts := make([]bib.RenderedText, 0, len(layout.Rules))
		for _, rule := range layout.Rules {
			parts = append(parts, s.resolve(rule, ctx))
		}
		body := bib.Join(layout.Delimiter, parts...)
		// Suppress a duplicated terminator: a body already ending in the
		// layout suffix (an abbreviation like "n.d." before ".") keeps it.
		suffix := layout.Suffix
		if suffix != "" && strings.HasSuffix(body.String(), suffix) {
			suffix = ""
		}
		out = append(out, body.Wrap(layout.Prefix, suffix))
	}
	return out
}
