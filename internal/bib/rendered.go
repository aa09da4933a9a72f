package bib

import "strings"

// Fragment is one run of styled text. Style hints are carried through
// to the presentation layer; String() drops them.
type Fragment struct {
	Text   string `json:"text"`
	Italic bool   `json:"italic,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
}

// RenderedText is the output unit of every formatting primitive: an
// ordered fragment sequence. Treat values as immutable once returned;
// builders below always allocate fresh slices.
type RenderedText struct {
	Fragments []Fragment `json:"fragments"`
}

// Plain wraps a string in an unstyled RenderedText. An empty string
// yields the empty RenderedText.
func Plain(s string) RenderedText {
	if s == "" {
		return RenderedText{}
	}
	return RenderedText{Fragments: []Fragment{{Text: s}}}
}

// Styled wraps a string with font hints applied.
func Styled(s string, italic, bold bool) RenderedText {
	if s == "" {
		return RenderedText{}
	}
	return RenderedText{Fragments: []Fragment{{Text: s, Italic: italic, Bold: bold}}}
}

// IsEmpty reports whether the rendered text carries no visible output.
func (r RenderedText) IsEmpty() bool {
	for _, f := range r.Fragments {
		if f.Text != "" {
			return false
		}
	}
	return true
}

// String joins all fragments into the plain-text form.
func (r RenderedText) String() string {
	var b strings.Builder
	for _, f := range r.Fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Join concatenates the non-empty parts separated by delim. Empty parts
// are dropped so no stray delimiters appear; this is the group-join
// contract every enclosing rule relies on.
func Join(delim string, parts ...RenderedText) RenderedText {
	var out RenderedText
	for _, p := range parts {
		if p.IsEmpty() {
			continue
		}
		if len(out.Fragments) > 0 && delim != "" {
			out.Fragments = append(out.Fragments, Fragment{Text: delim})
		}
		out.Fragments = append(out.Fragments, p.Fragments...)
	}
	return out
}

// Wrap surrounds non-empty rendered text with a plain prefix and
// suffix. Empty input stays empty: affixes never render on their own.
func (r RenderedText) Wrap(prefix, suffix string) RenderedText {
	if r.IsEmpty() {
		return RenderedText{}
	}
	out := RenderedText{Fragments: make([]Fragment, 0, len(r.Fragments)+2)}
	if prefix != "" {
		out.Fragments = append(out.Fragments, Fragment{Text: prefix})
	}
	out.Fragments = append(out.Fragments, r.Fragments...)
	if suffix != "" {
		out.Fragments = append(out.Fragments, Fragment{Text: suffix})
	}
	return out
}

// Restyle returns a copy with font hints OR-ed onto every fragment.
func (r RenderedText) Restyle(italic, bold bool) RenderedText {
	if !italic && !bold {
		return r
	}
	out := RenderedText{Fragments: make([]Fragment, len(r.Fragments))}
	for i, f := range r.Fragments {
		f.Italic = f.Italic || italic
		f.Bold = f.Bold || bold
		out.Fragments[i] = f
	}
	return out
}
