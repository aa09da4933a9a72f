package style

// Node is one rule in the style tree. The variant set is closed: Text,
// MacroRef, Names, Date, Number, Label, Group, and Conditional.
type Node interface {
	node()
}

// Formatting carries the affix and style hints shared by most variants.
// Affixes only render when the node produced non-empty output.
type Formatting struct {
	Prefix    string `json:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty"`
	FontStyle string `json:"font-style,omitempty"` // "italic" | "bold"
	TextCase  string `json:"text-case,omitempty"`  // "title"
}

// Font style and text case values accepted in style files.
const (
	FontItalic = "italic"
	FontBold   = "bold"

	CaseTitle = "title"
)

// Text renders either a literal value, a simple variable, or a
// localized term. Exactly one of Value/Variable/Term is set.
type Text struct {
	Formatting
	Value    string `json:"value,omitempty"`
	Variable string `json:"variable,omitempty"`
	Term     string `json:"term,omitempty"`
}

// MacroRef renders a named macro from Style.Macros. The compiler
// guarantees the reference resolves and that the macro graph is
// acyclic, so the engine may look it up without a fallback path.
type MacroRef struct {
	Formatting
	Name string `json:"macro"`
}

// NameOptions controls the name-list primitive.
type NameOptions struct {
	Delimiter      string `json:"delimiter,omitempty"`       // between names, default ", "
	And            string `json:"and,omitempty"`             // "text" -> localized and, "symbol" -> "&"
	InitializeWith string `json:"initialize-with,omitempty"` // e.g. ". " for "J. R."
}

// Names renders the first non-empty name variable in Variables, with an
// optional role label and the Substitute fallback chain when every
// variable is empty.
type Names struct {
	Formatting
	Variables  []string    `json:"names"`
	Options    NameOptions `json:"options,omitempty"`
	Label      string      `json:"label,omitempty"` // term name, e.g. "editor"
	Substitute []Node      `json:"substitute,omitempty"`
}

// Date part forms.
const (
	DateFormYear = "year"           // "2020"
	DateFormFull = "day-month-year" // "3 May 2019"
)

// Date renders the issued date, or the localized no-date term when the
// entry carries none.
type Date struct {
	Formatting
	Variable string `json:"date"`
	Form     string `json:"form,omitempty"` // DateFormYear (default) or DateFormFull
}

// Number renders a numeric variable. With Ordinal set, a numeric value
// renders as an ordinal followed by the localized edition term; textual
// values render verbatim.
type Number struct {
	Formatting
	Variable string `json:"number"`
	Ordinal  bool   `json:"ordinal,omitempty"`
}

// Label renders a localized term whose singular/plural form agrees with
// the value of Variable. It renders nothing when the variable is empty.
type Label struct {
	Formatting
	Term     string `json:"label"`
	Variable string `json:"variable"`
}

// Group renders its children joined by Delimiter, dropping empty
// children so no stray delimiters appear. An all-empty group is empty
// and its affixes do not render.
type Group struct {
	Formatting
	Delimiter string `json:"delimiter,omitempty"`
	Children  []Node `json:"group"`
}

// Predicate kinds for conditional branches.
const (
	PredTypeIn    = "type"
	PredIsNumeric = "is-numeric"
	PredElse      = "else"
)

// Branch is one (predicate, children) pair of a Conditional.
type Branch struct {
	Kind     string   `json:"kind"`               // PredTypeIn | PredIsNumeric | PredElse
	Types    []string `json:"types,omitempty"`    // PredTypeIn
	Variable string   `json:"variable,omitempty"` // PredIsNumeric
	Children []Node   `json:"render"`
}

// Conditional selects exactly one branch. Branches are kept in
// declaration order and evaluated first-match-wins; overlapping
// predicates resolve deterministically to the earliest one.
type Conditional struct {
	Formatting
	Branches []Branch `json:"choose"`
}

func (Text) node()        {}
func (MacroRef) node()    {}
func (Names) node()       {}
func (Date) node()        {}
func (Number) node()      {}
func (Label) node()       {}
func (Group) node()       {}
func (Conditional) node() {}
