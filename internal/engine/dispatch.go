package engine

import (
	"slices"
	"strconv"
	"strings"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// dispatch selects exactly one conditional branch and renders it.
// Branches are evaluated in declaration order and the first match wins;
// overlapping predicates resolve deterministically to the earliest one.
//
// A conditional with no matching branch and no else renders an empty
// body. That is a style-design smell, not a failure: it is logged as a
// warning and the document renders on.
func (s *Session) dispatch(n style.Conditional, ctx renderCtx) bib.RenderedText {
	for _, branch := range n.Branches {
		if matches(branch, ctx.entry) {
			return s.resolveAll(branch.Children, ctx)
		}
	}

	s.logger.Warn("no conditional branch matched and no else branch exists",
		"session", s.token,
		"entry", ctx.entry.ID,
		"type", ctx.entry.Type)
	return bib.RenderedText{}
}

// matches evaluates one branch predicate against the entry. An unknown
// entry type simply fails every type-membership test and falls through
// to the else branch. That is expected behavior, not an error.
func matches(branch style.Branch, e *bib.Entry) bool {
	switch branch.Kind {
	case style.PredTypeIn:
		return slices.Contains(branch.Types, e.Type)
	case style.PredIsNumeric:
		_, err := strconv.Atoi(strings.TrimSpace(e.Field(branch.Variable)))
		return err == nil
	case style.PredElse:
		return true
	}
	return false
}
