// Package bib provides the foundational types for refmark.
//
// This package contains the bibliographic record model, the rendered
// text representation, and the localized term table. All other internal
// packages import bib; bib imports nothing internal. This keeps the
// record model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Entry.Type is always present; every other field is optional
//   - Name lists preserve input order; duplicates are legal
//   - RenderedText is immutable once produced
//   - An absent field renders as an empty RenderedText, never an error
package bib
