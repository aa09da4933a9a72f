package engine

import (
	"strings"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// defaultNameDelimiter separates names when the style gives none.
const defaultNameDelimiter = ", "

// renderNames renders the first non-empty name variable, falling back
// through the substitute chain when every variable is empty. Substitute
// alternatives are evaluated lazily, in order, until one yields
// non-empty output.
func (s *Session) renderNames(n style.Names, ctx renderCtx) bib.RenderedText {
	for _, variable := range n.Variables {
		names := ctx.entry.Names(variable)
		if len(names) == 0 {
			continue
		}
		out := s.formatNameList(names, n, ctx.etAl)
		return finish(out, n.Formatting)
	}

	for _, sub := range n.Substitute {
		if out := s.resolve(sub, ctx); !out.IsEmpty() {
			return finish(out, n.Formatting)
		}
	}

	return bib.RenderedText{}
}

// formatNameList renders one name list under the node options and the
// active layout's et-al thresholds.
func (s *Session) formatNameList(names []bib.Name, n style.Names, etAl style.EtAl) bib.RenderedText {
	delim := n.Options.Delimiter
	if delim == "" {
		delim = defaultNameDelimiter
	}

	rendered := make([]string, len(names))
	for i, name := range names {
		rendered[i] = formatName(name, n.Options)
	}

	var list string
	switch {
	case etAl.Truncates(len(names)):
		shown := rendered[:etAl.UseFirst]
		list = strings.Join(shown, delim) + " " + s.terms.Lookup(bib.TermEtAl, false)
	case len(rendered) > 1 && n.Options.And != "":
		and := "&"
		if n.Options.And == "text" {
			and = s.terms.Lookup(bib.TermAnd, false)
		}
		head := strings.Join(rendered[:len(rendered)-1], delim)
		list = head + " " + and + " " + rendered[len(rendered)-1]
	default:
		list = strings.Join(rendered, delim)
	}

	out := bib.Plain(list)
	if n.Label != "" {
		label := s.terms.Lookup(n.Label, len(names) > 1)
		out = bib.Join(" ", out, bib.Plain(label).Wrap("(", ")"))
	}
	return out
}

// formatName renders one personal name as given family [, suffix],
// with the given name reduced to initials when initialize-with is set.
func formatName(name bib.Name, opts style.NameOptions) string {
	given := name.Given
	if opts.InitializeWith != "" && given != "" {
		given = initialize(given, opts.InitializeWith)
	}

	full := strings.TrimSpace(given + " " + name.Family)
	if name.Suffix != "" {
		full += ", " + name.Suffix
	}
	return full
}

// initialize reduces a given name to initials: "Anne Beth" with
// initialize-with ". " becomes "A. B.". Hyphenated parts keep the
// hyphen: "Jean-Luc" becomes "J.-L.".
func initialize(given, with string) string {
	sep := strings.TrimRight(with, " ")
	join := strings.TrimLeft(with, sep)

	words := strings.Fields(given)
	parts := make([]string, 0, len(words))
	for _, word := range words {
		hyphenated := strings.Split(word, "-")
		initials := make([]string, 0, len(hyphenated))
		for _, h := range hyphenated {
			r := []rune(h)
			if len(r) == 0 {
				continue
			}
			initials = append(initials, string(r[0])+sep)
		}
		parts = append(parts, strings.Join(initials, "-"))
	}
	out := strings.Join(parts, join)
	if join == "" {
		out = strings.Join(parts, " ")
	}
	return strings.TrimSpace(out)
}
