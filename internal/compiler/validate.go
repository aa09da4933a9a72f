package compiler

import (
	"fmt"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// Validation error codes (E100-E199)
const (
	// Style-level errors (E100-E109)
	ErrStyleNameEmpty  = "E100" // style name is required
	ErrMissingLayout   = "E101" // citation/bibliography layout missing rules
	ErrInvalidSortKey  = "E102" // unsupported bibliography sort key
	ErrInvalidEtAl     = "E103" // inconsistent et-al thresholds
	ErrInvalidTermName = "E104" // unknown term name in overrides

	// Rule-node errors (E110-E119)
	ErrUndefinedMacro   = "E110" // reference to a macro that does not exist
	ErrMacroCycle       = "E111" // cyclic macro reference graph
	ErrUnknownVariable  = "E112" // variable outside the supported vocabulary
	ErrUnknownTerm      = "E113" // term outside the supported vocabulary
	ErrUnknownEntryType = "E114" // entry type outside the supported vocabulary
	ErrInvalidNameVar   = "E115" // names node bound to a non-name variable
	ErrInvalidDateForm  = "E116" // unsupported date form
	ErrInvalidBranch    = "E117" // malformed conditional branch
)

// ValidationError represents a style configuration error found at load
// time. Rendering must not proceed when any are returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// nameVariables are the variables a names node may bind.
var nameVariables = map[string]bool{
	bib.VarAuthor:     true,
	bib.VarEditor:     true,
	bib.VarTranslator: true,
}

// Validate checks a compiled style against the supported vocabulary.
// Returns all errors found (does not fail-fast).
func Validate(s *style.Style) []ValidationError {
	var errs []ValidationError

	if s.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "style name is required and must be non-empty",
			Code:    ErrStyleNameEmpty,
		})
	}

	for term := range s.Terms {
		if !bib.KnownTerms[term] {
			errs = append(errs, ValidationError{
				Field:   "terms." + term,
				Message: fmt.Sprintf("unknown term name: %q", term),
				Code:    ErrInvalidTermName,
			})
		}
	}

	// E101: the citation layout needs no rules (it renders numbers),
	// the bibliography layout does.
	if len(s.Bibliography.Rules) == 0 {
		errs = append(errs, ValidationError{
			Field:   "bibliography.layout",
			Message: "bibliography layout requires at least one rule",
			Code:    ErrMissingLayout,
		})
	}

	if s.Bibliography.Sort != "" && s.Bibliography.Sort != style.SortCitationNumber {
		errs = append(errs, ValidationError{
			Field:   "bibliography.sort",
			Message: fmt.Sprintf("unsupported sort key: %q", s.Bibliography.Sort),
			Code:    ErrInvalidSortKey,
		})
	}

	for _, layout := range []struct {
		field string
		etAl  style.EtAl
	}{
		{"citation", s.Citation.EtAl},
		{"bibliography", s.Bibliography.EtAl},
	} {
		if layout.etAl.Min > 0 && (layout.etAl.UseFirst < 1 || layout.etAl.UseFirst >= layout.etAl.Min) {
			errs = append(errs, ValidationError{
				Field:   layout.field + ".et-al-use-first",
				Message: fmt.Sprintf("et-al-use-first must be in [1, et-al-min): got %d with et-al-min %d", layout.etAl.UseFirst, layout.etAl.Min),
				Code:    ErrInvalidEtAl,
			})
		}
	}

	for name, node := range s.Macros {
		errs = append(errs, validateNode(node, s, "macros."+name)...)
	}
	for i, node := range s.Citation.Rules {
		errs = append(errs, validateNode(node, s, fmt.Sprintf("citation.layout[%d]", i))...)
	}
	for i, node := range s.Bibliography.Rules {
		errs = append(errs, validateNode(node, s, fmt.Sprintf("bibliography.layout[%d]", i))...)
	}

	errs = append(errs, AnalyzeMacroCycles(s.Macros)...)

	return errs
}

// validateNode walks one rule node recursively.
func validateNode(node style.Node, s *style.Style, field string) []ValidationError {
	var errs []ValidationError

	switch n := node.(type) {
	case style.Text:
		if n.Variable != "" && !bib.KnownVariables[n.Variable] {
			errs = append(errs, unknownVariable(field, n.Variable))
		}
		if n.Term != "" && !bib.KnownTerms[n.Term] {
			errs = append(errs, unknownTerm(field, n.Term))
		}

	case style.MacroRef:
		if _, ok := s.Macros[n.Name]; !ok {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("undefined macro reference: %q", n.Name),
				Code:    ErrUndefinedMacro,
			})
		}

	case style.Names:
		for _, v := range n.Variables {
			if !nameVariables[v] {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("names cannot bind variable %q: not a name variable", v),
					Code:    ErrInvalidNameVar,
				})
			}
		}
		if n.Label != "" && !bib.KnownTerms[n.Label] {
			errs = append(errs, unknownTerm(field, n.Label))
		}
		for i, sub := range n.Substitute {
			errs = append(errs, validateNode(sub, s, fmt.Sprintf("%s.substitute[%d]", field, i))...)
		}

	case style.Date:
		if n.Variable != bib.VarIssued {
			errs = append(errs, unknownVariable(field, n.Variable))
		}
		switch n.Form {
		case "", style.DateFormYear, style.DateFormFull:
		default:
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unsupported date form: %q", n.Form),
				Code:    ErrInvalidDateForm,
			})
		}

	case style.Number:
		if !bib.KnownVariables[n.Variable] {
			errs = append(errs, unknownVariable(field, n.Variable))
		}

	case style.Label:
		if !bib.KnownTerms[n.Term] {
			errs = append(errs, unknownTerm(field, n.Term))
		}
		if !bib.KnownVariables[n.Variable] {
			errs = append(errs, unknownVariable(field, n.Variable))
		}

	case style.Group:
		for i, child := range n.Children {
			errs = append(errs, validateNode(child, s, fmt.Sprintf("%s.group[%d]", field, i))...)
		}

	case style.Conditional:
		for i, branch := range n.Branches {
			branchField := fmt.Sprintf("%s.choose[%d]", field, i)
			switch branch.Kind {
			case style.PredTypeIn:
				if len(branch.Types) == 0 {
					errs = append(errs, ValidationError{
						Field:   branchField,
						Message: "type-membership branch requires at least one type",
						Code:    ErrInvalidBranch,
					})
				}
				for _, typ := range branch.Types {
					if !bib.KnownTypes[typ] {
						errs = append(errs, ValidationError{
							Field:   branchField,
							Message: fmt.Sprintf("unknown entry type in predicate: %q", typ),
							Code:    ErrUnknownEntryType,
						})
					}
				}
			case style.PredIsNumeric:
				if !bib.KnownVariables[branch.Variable] {
					errs = append(errs, unknownVariable(branchField, branch.Variable))
				}
			case style.PredElse:
			default:
				errs = append(errs, ValidationError{
					Field:   branchField,
					Message: fmt.Sprintf("unknown predicate kind: %q", branch.Kind),
					Code:    ErrInvalidBranch,
				})
			}
			for j, child := range branch.Children {
				errs = append(errs, validateNode(child, s, fmt.Sprintf("%s.render[%d]", branchField, j))...)
			}
		}
	}

	return errs
}

func unknownVariable(field, variable string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unknown variable name: %q", variable),
		Code:    ErrUnknownVariable,
	}
}

func unknownTerm(field, term string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unknown term name: %q", term),
		Code:    ErrUnknownTerm,
	}
}
