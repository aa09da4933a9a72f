// Package style defines the compiled intermediate representation of a
// citation style: an immutable tree of tagged rule-node variants plus
// the two top-level layouts (citation and bibliography).
//
// The tree is data, not behavior. Each node variant carries only the
// options its own primitive needs; the engine walks the tree
// recursively with no shared mutable state. Styles are produced by the
// compiler package, validated once at load time, and read-only for the
// lifetime of a rendering session.
package style
