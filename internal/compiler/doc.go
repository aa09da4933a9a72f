// Package compiler turns a CUE style definition into the compiled
// style IR and validates it at load time.
//
// Every configuration error a style can carry, from an undefined macro
// reference or a macro cycle to an unknown variable, term, or entry
// type, is detected here before any rendering starts. The engine assumes a
// validated style and performs no defensive checks of its own.
package compiler
