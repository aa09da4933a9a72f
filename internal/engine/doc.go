// Package engine implements the refmark style interpreter.
//
// The engine walks a validated style tree and renders entries into
// styled text. It has two halves:
//
// Pure primitives:
// Name, date, number, and label formatting, macro resolution, and
// conditional dispatch are stateless. They may run in parallel across
// independent entries. An absent or malformed field always yields an
// empty RenderedText (the "soft miss") so enclosing groups drop it
// without stray delimiters. Field misses are never errors.
//
// Session state:
// The only mutable state is the session-wide citation-number counter.
// Each first-seen entry receives the next integer; repeated citation
// reuses the assigned number. Assignment is serialized under a single
// mutex so citation order determines numbering order even when callers
// render citation groups concurrently.
//
// Conditional branches are evaluated in declaration order, first match
// wins. A conditional with no matching branch and no else renders an
// empty body and logs a warning; a well-formed style always supplies
// an else branch.
package engine
