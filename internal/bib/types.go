package bib

// Entry type constants. The set mirrors the types the bundled style
// dispatches on; unknown types are legal and fall to the default
// conditional branch at render time.
const (
	TypeArticleJournal = "article-journal"
	TypeBook           = "book"
	TypeChapter        = "chapter"
	TypeLegalCase      = "legal_case"
	TypeLegislation    = "legislation"
	TypeManuscript     = "manuscript"
	TypePaperConf      = "paper-conference"
	TypePatent         = "patent"
	TypeReport         = "report"
	TypeThesis         = "thesis"
	TypeWebpage        = "webpage"
)

// KnownTypes is the entry-type vocabulary accepted in style predicates.
// An entry itself may carry any type; this set only gates what a style
// file is allowed to name in a type-membership test.
var KnownTypes = map[string]bool{
	TypeArticleJournal: true,
	TypeBook:           true,
	TypeChapter:        true,
	TypeLegalCase:      true,
	TypeLegislation:    true,
	TypeManuscript:     true,
	TypePaperConf:      true,
	TypePatent:         true,
	TypeReport:         true,
	TypeThesis:         true,
	TypeWebpage:        true,
}

// Name represents one personal name in an author/editor/translator list.
type Name struct {
	Family string `json:"family" yaml:"family"`
	Given  string `json:"given,omitempty" yaml:"given,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Date represents an issued date. Year alone is the common case; Month
// is a localized month name (e.g. "May") and Day a day of month, both
// optional. A zero Year means the date is absent.
type Date struct {
	Year  int    `json:"year" yaml:"year"`
	Month string `json:"month,omitempty" yaml:"month,omitempty"`
	Day   int    `json:"day,omitempty" yaml:"day,omitempty"`
}

// IsZero reports whether no date is present.
func (d *Date) IsZero() bool {
	return d == nil || d.Year == 0
}

// Entry is one bibliographic record. ID is the stable identity used for
// citation-number reuse; it never participates in rendering.
type Entry struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`

	Authors     []Name `json:"author,omitempty" yaml:"author,omitempty"`
	Editors     []Name `json:"editor,omitempty" yaml:"editor,omitempty"`
	Translators []Name `json:"translator,omitempty" yaml:"translator,omitempty"`

	Title               string `json:"title,omitempty" yaml:"title,omitempty"`
	ContainerTitle      string `json:"container-title,omitempty" yaml:"container-title,omitempty"`
	ContainerTitleShort string `json:"container-title-short,omitempty" yaml:"container-title-short,omitempty"`

	Issued *Date `json:"issued,omitempty" yaml:"issued,omitempty"`

	Publisher      string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublisherPlace string `json:"publisher-place,omitempty" yaml:"publisher-place,omitempty"`

	Volume    string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Page      string `json:"page,omitempty" yaml:"page,omitempty"`
	PageFirst string `json:"page-first,omitempty" yaml:"page-first,omitempty"`
	Edition   string `json:"edition,omitempty" yaml:"edition,omitempty"`
	Genre     string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Number    string `json:"number,omitempty" yaml:"number,omitempty"`
}

// Variable names addressable from a style file. "citation-number" is
// assigned at render time and is never part of the input record.
const (
	VarAuthor              = "author"
	VarEditor              = "editor"
	VarTranslator          = "translator"
	VarTitle               = "title"
	VarContainerTitle      = "container-title"
	VarContainerTitleShort = "container-title-short"
	VarIssued              = "issued"
	VarPublisher           = "publisher"
	VarPublisherPlace      = "publisher-place"
	VarVolume              = "volume"
	VarPage                = "page"
	VarPageFirst           = "page-first"
	VarEdition             = "edition"
	VarGenre               = "genre"
	VarNumber              = "number"
	VarCitationNumber      = "citation-number"
)

// KnownVariables is the variable vocabulary accepted in style files.
var KnownVariables = map[string]bool{
	VarAuthor:              true,
	VarEditor:              true,
	VarTranslator:          true,
	VarTitle:               true,
	VarContainerTitle:      true,
	VarContainerTitleShort: true,
	VarIssued:              true,
	VarPublisher:           true,
	VarPublisherPlace:      true,
	VarVolume:              true,
	VarPage:                true,
	VarPageFirst:           true,
	VarEdition:             true,
	VarGenre:               true,
	VarNumber:              true,
	VarCitationNumber:      true,
}

// Names returns the name list bound to a name variable, or nil for any
// other variable.
func (e *Entry) Names(variable string) []Name {
	switch variable {
	case VarAuthor:
		return e.Authors
	case VarEditor:
		return e.Editors
	case VarTranslator:
		return e.Translators
	}
	return nil
}

// Field returns the textual value of a simple (non-name, non-date)
// variable. Absent fields return the empty string; that emptiness is
// the "soft miss" every primitive propagates.
func (e *Entry) Field(variable string) string {
	switch variable {
	case VarTitle:
		return e.Title
	case VarContainerTitle:
		return e.ContainerTitle
	case VarContainerTitleShort:
		return e.ContainerTitleShort
	case VarPublisher:
		return e.Publisher
	case VarPublisherPlace:
		return e.PublisherPlace
	case VarVolume:
		return e.Volume
	case VarPage:
		return e.Page
	case VarPageFirst:
		return e.PageFirst
	case VarEdition:
		return e.Edition
	case VarGenre:
		return e.Genre
	case VarNumber:
		return e.Number
	}
	return ""
}
