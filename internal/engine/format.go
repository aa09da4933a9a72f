package engine

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// renderDate renders the issued date. An absent date renders the
// localized no-date term; a date miss is never an error.
func (s *Session) renderDate(n style.Date, ctx renderCtx) bib.RenderedText {
	d := ctx.entry.Issued
	if d.IsZero() {
		return bib.Plain(s.terms.Lookup(bib.TermNoDate, false))
	}

	switch n.Form {
	case style.DateFormFull:
		parts := make([]string, 0, 3)
		if d.Day > 0 {
			parts = append(parts, strconv.Itoa(d.Day))
		}
		if d.Month != "" {
			parts = append(parts, d.Month)
		}
		parts = append(parts, strconv.Itoa(d.Year))
		return bib.Plain(strings.Join(parts, " "))
	default: // style.DateFormYear
		return bib.Plain(strconv.Itoa(d.Year))
	}
}

// renderNumber renders a numeric variable. In ordinal form a numeric
// value becomes an ordinal, and when the variable is the edition it is
// followed by the localized edition term ("3rd ed."); a textual value
// renders verbatim.
func (s *Session) renderNumber(n style.Number, ctx renderCtx) bib.RenderedText {
	value := ctx.entry.Field(n.Variable)
	if value == "" {
		return bib.RenderedText{}
	}

	if n.Ordinal {
		if num, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			out := ordinal(num)
			if n.Variable == bib.VarEdition {
				out += " " + s.terms.Lookup(bib.TermEdition, false)
			}
			return bib.Plain(out)
		}
	}
	return bib.Plain(value)
}

// renderLabel renders a localized term agreeing in number with the
// associated variable. Nothing renders when the variable is absent.
func (s *Session) renderLabel(n style.Label, ctx renderCtx) bib.RenderedText {
	value := ctx.entry.Field(n.Variable)
	if value == "" {
		return bib.RenderedText{}
	}
	return bib.Plain(s.terms.Lookup(n.Term, pluralValue(value)))
}

// pluralValue reports whether a numeric field value denotes more than
// one unit: a range ("12-19"), a list ("3, 7"), or an ampersand pair.
func pluralValue(value string) bool {
	return strings.ContainsAny(value, "-,&") ||
		strings.Contains(value, "–") || // en dash range
		strings.Contains(value, " and ")
}

// ordinal renders n in English ordinal form: 1st, 2nd, 3rd, 4th, with
// the 11-13 exception.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// titleCase upper-cases the first letter of each word without
// down-casing anything already capitalized, so acronyms survive.
func titleCase(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}
