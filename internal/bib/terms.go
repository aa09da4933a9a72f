package bib

// Term is a localized string with singular and plural forms. Terms
// without number agreement leave Plural empty and always render Single.
type Term struct {
	Single string `json:"single" yaml:"single"`
	Plural string `json:"plural,omitempty" yaml:"plural,omitempty"`
}

// Select returns the form agreeing with plural.
func (t Term) Select(plural bool) string {
	if plural && t.Plural != "" {
		return t.Plural
	}
	return t.Single
}

// Term name constants.
const (
	TermAnd        = "and"
	TermEdition    = "edition"
	TermEditor     = "editor"
	TermEtAl       = "et-al"
	TermIn         = "in"
	TermNoDate     = "no-date"
	TermPage       = "page"
	TermTranslator = "translator"
)

// KnownTerms is the term vocabulary accepted in style files.
var KnownTerms = map[string]bool{
	TermAnd:        true,
	TermEdition:    true,
	TermEditor:     true,
	TermEtAl:       true,
	TermIn:         true,
	TermNoDate:     true,
	TermPage:       true,
	TermTranslator: true,
}

// Terms maps term names to localized forms.
type Terms map[string]Term

// DefaultTerms returns the bundled English locale. A style file may
// override individual terms; everything else falls back to these.
func DefaultTerms() Terms {
	return Terms{
		TermAnd:        {Single: "and"},
		TermEdition:    {Single: "ed."},
		TermEditor:     {Single: "ed.", Plural: "eds."},
		TermEtAl:       {Single: "et al."},
		TermIn:         {Single: "in"},
		TermNoDate:     {Single: "n.d."},
		TermPage:       {Single: "p.", Plural: "pp."},
		TermTranslator: {Single: "trans."},
	}
}

// Lookup returns the term form for name, agreeing with plural. Unknown
// names return the empty string: a missing term is a soft miss like any
// other absent field.
func (t Terms) Lookup(name string, plural bool) string {
	term, ok := t[name]
	if !ok {
		return ""
	}
	return term.Select(plural)
}

// Override returns a copy of t with the given overrides applied.
func (t Terms) Override(overrides Terms) Terms {
	out := make(Terms, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
