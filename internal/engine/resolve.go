package engine

import (
	"strconv"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// renderCtx is the per-entry state threaded through one resolution
// walk: the entry, the et-al thresholds of the active layout, and the
// citation-number assigned to the entry (0 when not yet cited).
type renderCtx struct {
	entry  *bib.Entry
	etAl   style.EtAl
	number int
}

// resolve walks one rule node and renders it against the context. The
// walk is recursive and purely functional; all formatting (affixes,
// font hints, text case) applies only when the node produced output.
func (s *Session) resolve(node style.Node, ctx renderCtx) bib.RenderedText {
	switch n := node.(type) {
	case style.Text:
		return s.renderText(n, ctx)
	case style.MacroRef:
		// Existence is guaranteed by load-time validation.
		out := s.resolve(s.style.Macros[n.Name], ctx)
		return finish(out, n.Formatting)
	case style.Names:
		return s.renderNames(n, ctx)
	case style.Date:
		return finish(s.renderDate(n, ctx), n.Formatting)
	case style.Number:
		return finish(s.renderNumber(n, ctx), n.Formatting)
	case style.Label:
		return finish(s.renderLabel(n, ctx), n.Formatting)
	case style.Group:
		parts := make([]bib.RenderedText, 0, len(n.Children))
		for _, child := range n.Children {
			parts = append(parts, s.resolve(child, ctx))
		}
		return finish(bib.Join(n.Delimiter, parts...), n.Formatting)
	case style.Conditional:
		return finish(s.dispatch(n, ctx), n.Formatting)
	}
	return bib.RenderedText{}
}

// resolveAll renders a node sequence in order with no delimiter.
func (s *Session) resolveAll(nodes []style.Node, ctx renderCtx) bib.RenderedText {
	parts := make([]bib.RenderedText, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, s.resolve(node, ctx))
	}
	return bib.Join("", parts...)
}

// renderText renders the text variant: a literal, a simple variable, or
// a localized term.
func (s *Session) renderText(n style.Text, ctx renderCtx) bib.RenderedText {
	var value string
	switch {
	case n.Value != "":
		value = n.Value
	case n.Variable == bib.VarCitationNumber:
		if ctx.number > 0 {
			value = strconv.Itoa(ctx.number)
		}
	case n.Variable != "":
		value = ctx.entry.Field(n.Variable)
	case n.Term != "":
		value = s.terms.Lookup(n.Term, false)
	}
	return finish(bib.Plain(value), n.Formatting)
}

// finish applies text case, font hints, and affixes to rendered output.
// Empty output stays empty; affixes never render on their own.
func finish(r bib.RenderedText, f style.Formatting) bib.RenderedText {
	if r.IsEmpty() {
		return bib.RenderedText{}
	}
	if f.TextCase == style.CaseTitle {
		cased := bib.RenderedText{Fragments: make([]bib.Fragment, len(r.Fragments))}
		for i, frag := range r.Fragments {
			frag.Text = titleCase(frag.Text)
			cased.Fragments[i] = frag
		}
		r = cased
	}
	r = r.Restyle(f.FontStyle == style.FontItalic, f.FontStyle == style.FontBold)
	return r.Wrap(f.Prefix, f.Suffix)
}
