package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// CompileError reports a structural problem while parsing a CUE style
// definition into IR.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError converts a CUE error into a CompileError with position
// information when available.
func formatCUEError(err error) error {
	var pos token.Pos
	if positions := errors.Positions(errors.Promote(err, "cue")); len(positions) > 0 {
		pos = positions[0]
	}
	return &CompileError{Field: "cue", Message: errors.Details(err, nil), Pos: pos}
}

// Compile parses a CUE value into a Style. The value should be the
// style struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileBytes(data)
//	s, err := compiler.Compile(v.LookupPath(cue.ParsePath("style")))
//
// Compile only builds the IR; call Validate on the result before
// rendering with it.
func Compile(v cue.Value) (*style.Style, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	s := &style.Style{Macros: map[string]style.Node{}}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{Field: "name", Message: "style name is required", Pos: v.Pos()}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	s.Name = name

	if versionVal := v.LookupPath(cue.ParsePath("version")); versionVal.Exists() {
		if s.Version, err = versionVal.String(); err != nil {
			return nil, formatCUEError(err)
		}
	}

	if termsVal := v.LookupPath(cue.ParsePath("terms")); termsVal.Exists() {
		if s.Terms, err = parseTerms(termsVal); err != nil {
			return nil, err
		}
	}

	if macrosVal := v.LookupPath(cue.ParsePath("macros")); macrosVal.Exists() {
		iter, err := macrosVal.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			macroName := iter.Selector().Unquoted()
			node, err := parseNodeList(iter.Value(), "macros."+macroName)
			if err != nil {
				return nil, err
			}
			s.Macros[macroName] = node
		}
	}

	if s.Citation, err = parseLayout(v.LookupPath(cue.ParsePath("citation")), "citation"); err != nil {
		return nil, err
	}
	if s.Bibliography, err = parseLayout(v.LookupPath(cue.ParsePath("bibliography")), "bibliography"); err != nil {
		return nil, err
	}

	return s, nil
}

// parseTerms parses term overrides: either a bare string (singular
// only) or {single: ..., plural: ...}.
func parseTerms(v cue.Value) (bib.Terms, error) {
	terms := bib.Terms{}
	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		name := iter.Selector().Unquoted()
		tv := iter.Value()
		if single, err := tv.String(); err == nil {
			terms[name] = bib.Term{Single: single}
			continue
		}
		var term bib.Term
		if sv := tv.LookupPath(cue.ParsePath("single")); sv.Exists() {
			if term.Single, err = sv.String(); err != nil {
				return nil, formatCUEError(err)
			}
		}
		if pv := tv.LookupPath(cue.ParsePath("plural")); pv.Exists() {
			if term.Plural, err = pv.String(); err != nil {
				return nil, formatCUEError(err)
			}
		}
		terms[name] = term
	}
	return terms, nil
}

// parseLayout parses one top-level layout block.
func parseLayout(v cue.Value, field string) (style.Layout, error) {
	var layout style.Layout
	if !v.Exists() {
		return layout, &CompileError{Field: field, Message: "layout is required"}
	}
	if err := v.Err(); err != nil {
		return layout, formatCUEError(err)
	}

	var err error
	if layout.Prefix, err = optString(v, "prefix"); err != nil {
		return layout, err
	}
	if layout.Suffix, err = optString(v, "suffix"); err != nil {
		return layout, err
	}
	if layout.Delimiter, err = optString(v, "delimiter"); err != nil {
		return layout, err
	}
	if layout.Sort, err = optString(v, "sort"); err != nil {
		return layout, err
	}
	if layout.Collapse, err = optBool(v, "collapse"); err != nil {
		return layout, err
	}
	if layout.EtAl.Min, err = optInt(v, "et-al-min"); err != nil {
		return layout, err
	}
	if layout.EtAl.UseFirst, err = optInt(v, "et-al-use-first"); err != nil {
		return layout, err
	}

	if rulesVal := v.LookupPath(cue.ParsePath("layout")); rulesVal.Exists() {
		rules, err := parseNodes(rulesVal, field+".layout")
		if err != nil {
			return layout, err
		}
		layout.Rules = rules
	}

	return layout, nil
}

// parseNodeList parses a CUE list of nodes into a single node: a
// one-element list yields the element, longer lists an implicit group.
func parseNodeList(v cue.Value, field string) (style.Node, error) {
	nodes, err := parseNodes(v, field)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return style.Group{Children: nodes}, nil
}

// parseNodes parses a CUE list of rule nodes.
func parseNodes(v cue.Value, field string) ([]style.Node, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var nodes []style.Node
	i := 0
	for iter.Next() {
		node, err := parseNode(iter.Value(), fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		i++
	}
	if len(nodes) == 0 {
		return nil, &CompileError{Field: field, Message: "rule list must not be empty", Pos: v.Pos()}
	}
	return nodes, nil
}

// parseNode parses one rule node. The variant is discriminated by the
// presence of its tag field: group, choose, macro, names, date, number,
// label, and finally text (value/variable/term).
func parseNode(v cue.Value, field string) (style.Node, error) {
	fmtOpts, err := parseFormatting(v)
	if err != nil {
		return nil, err
	}

	switch {
	case v.LookupPath(cue.ParsePath(`group`)).Exists():
		children, err := parseNodes(v.LookupPath(cue.ParsePath("group")), field+".group")
		if err != nil {
			return nil, err
		}
		delim, err := optString(v, "delimiter")
		if err != nil {
			return nil, err
		}
		return style.Group{Formatting: fmtOpts, Delimiter: delim, Children: children}, nil

	case v.LookupPath(cue.ParsePath("choose")).Exists():
		return parseConditional(v, fmtOpts, field)

	case v.LookupPath(cue.ParsePath("macro")).Exists():
		name, err := v.LookupPath(cue.ParsePath("macro")).String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return style.MacroRef{Formatting: fmtOpts, Name: name}, nil

	case v.LookupPath(cue.ParsePath("names")).Exists():
		return parseNames(v, fmtOpts, field)

	case v.LookupPath(cue.ParsePath("date")).Exists():
		variable, err := v.LookupPath(cue.ParsePath("date")).String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		form, err := optString(v, "form")
		if err != nil {
			return nil, err
		}
		return style.Date{Formatting: fmtOpts, Variable: variable, Form: form}, nil

	case v.LookupPath(cue.ParsePath("number")).Exists():
		variable, err := v.LookupPath(cue.ParsePath("number")).String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		ordinal, err := optBool(v, "ordinal")
		if err != nil {
			return nil, err
		}
		return style.Number{Formatting: fmtOpts, Variable: variable, Ordinal: ordinal}, nil

	case v.LookupPath(cue.ParsePath("label")).Exists():
		term, err := v.LookupPath(cue.ParsePath("label")).String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		variable, err := optString(v, "variable")
		if err != nil {
			return nil, err
		}
		if variable == "" {
			return nil, &CompileError{Field: field, Message: "label requires a variable for number agreement", Pos: v.Pos()}
		}
		return style.Label{Formatting: fmtOpts, Term: term, Variable: variable}, nil

	default:
		return parseText(v, fmtOpts, field)
	}
}

// parseText parses the text variant: exactly one of value, variable, or
// term must be present.
func parseText(v cue.Value, fmtOpts style.Formatting, field string) (style.Node, error) {
	text := style.Text{Formatting: fmtOpts}
	var err error
	if text.Value, err = optString(v, "value"); err != nil {
		return nil, err
	}
	if text.Variable, err = optString(v, "variable"); err != nil {
		return nil, err
	}
	if text.Term, err = optString(v, "term"); err != nil {
		return nil, err
	}

	set := 0
	for _, s := range []string{text.Value, text.Variable, text.Term} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, &CompileError{
			Field:   field,
			Message: "text node requires exactly one of value, variable, or term",
			Pos:     v.Pos(),
		}
	}
	return text, nil
}

// parseNames parses the names variant, including the substitute
// fallback chain.
func parseNames(v cue.Value, fmtOpts style.Formatting, field string) (style.Node, error) {
	names := style.Names{Formatting: fmtOpts}

	iter, err := v.LookupPath(cue.ParsePath("names")).List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		variable, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		names.Variables = append(names.Variables, variable)
	}
	if len(names.Variables) == 0 {
		return nil, &CompileError{Field: field, Message: "names requires at least one name variable", Pos: v.Pos()}
	}

	if names.Options.Delimiter, err = optString(v, "delimiter"); err != nil {
		return nil, err
	}
	if names.Options.And, err = optString(v, "and"); err != nil {
		return nil, err
	}
	if names.Options.InitializeWith, err = optString(v, "initialize-with"); err != nil {
		return nil, err
	}
	if names.Label, err = optString(v, "label"); err != nil {
		return nil, err
	}

	if subVal := v.LookupPath(cue.ParsePath("substitute")); subVal.Exists() {
		subs, err := parseNodes(subVal, field+".substitute")
		if err != nil {
			return nil, err
		}
		names.Substitute = subs
	}

	return names, nil
}

// parseConditional parses the choose variant. Branch order in the CUE
// list is the evaluation order; it is never re-sorted.
func parseConditional(v cue.Value, fmtOpts style.Formatting, field string) (style.Node, error) {
	cond := style.Conditional{Formatting: fmtOpts}

	iter, err := v.LookupPath(cue.ParsePath("choose")).List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	i := 0
	for iter.Next() {
		bv := iter.Value()
		branchField := fmt.Sprintf("%s.choose[%d]", field, i)
		branch := style.Branch{}

		switch {
		case bv.LookupPath(cue.ParsePath("types")).Exists():
			branch.Kind = style.PredTypeIn
			typesIter, err := bv.LookupPath(cue.ParsePath("types")).List()
			if err != nil {
				return nil, formatCUEError(err)
			}
			for typesIter.Next() {
				typ, err := typesIter.Value().String()
				if err != nil {
					return nil, formatCUEError(err)
				}
				branch.Types = append(branch.Types, typ)
			}
		case bv.LookupPath(cue.ParsePath(`"is-numeric"`)).Exists():
			branch.Kind = style.PredIsNumeric
			if branch.Variable, err = optString(bv, "is-numeric"); err != nil {
				return nil, err
			}
		case bv.LookupPath(cue.ParsePath("else")).Exists():
			branch.Kind = style.PredElse
		default:
			return nil, &CompileError{
				Field:   branchField,
				Message: "branch requires one of types, is-numeric, or else",
				Pos:     bv.Pos(),
			}
		}

		children, err := parseNodes(bv.LookupPath(cue.ParsePath("render")), branchField+".render")
		if err != nil {
			return nil, err
		}
		branch.Children = children

		cond.Branches = append(cond.Branches, branch)
		i++
	}
	if len(cond.Branches) == 0 {
		return nil, &CompileError{Field: field, Message: "choose requires at least one branch", Pos: v.Pos()}
	}

	return cond, nil
}

// parseFormatting parses the shared affix and style-hint fields.
func parseFormatting(v cue.Value) (style.Formatting, error) {
	var f style.Formatting
	var err error
	if f.Prefix, err = optString(v, "prefix"); err != nil {
		return f, err
	}
	if f.Suffix, err = optString(v, "suffix"); err != nil {
		return f, err
	}
	if f.FontStyle, err = optString(v, "font-style"); err != nil {
		return f, err
	}
	if f.TextCase, err = optString(v, "text-case"); err != nil {
		return f, err
	}
	return f, nil
}

func optString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(fmt.Sprintf("%q", field)))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func optBool(v cue.Value, field string) (bool, error) {
	fv := v.LookupPath(cue.ParsePath(fmt.Sprintf("%q", field)))
	if !fv.Exists() {
		return false, nil
	}
	b, err := fv.Bool()
	if err != nil {
		return false, formatCUEError(err)
	}
	return b, nil
}

func optInt(v cue.Value, field string) (int, error) {
	fv := v.LookupPath(cue.ParsePath(fmt.Sprintf("%q", field)))
	if !fv.Exists() {
		return 0, nil
	}
	n, err := fv.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return int(n), nil
}
