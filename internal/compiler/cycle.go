package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/refmark/refmark/internal/style"
)

// AnalyzeMacroCycles performs static cycle analysis on the macro
// reference graph. A macro that reaches itself, directly or through
// other macros, can never terminate during resolution, so cycles are
// load-time configuration errors, not warnings.
//
// The algorithm:
//  1. Build macro -> referenced-macro dependency graph
//  2. Use Tarjan's algorithm to find strongly connected components
//  3. Report each SCC with size > 1 or a self-loop as an error
//
// A DAG (no cycles) returns an empty error list.
func AnalyzeMacroCycles(macros map[string]style.Node) []ValidationError {
	if len(macros) == 0 {
		return nil
	}

	graph := buildMacroGraph(macros)
	sccs := tarjanSCC(graph)

	var errs []ValidationError
	for _, scc := range sccs {
		if len(scc) > 1 || (len(scc) == 1 && hasSelfLoop(scc[0], graph)) {
			errs = append(errs, cycleError(scc, graph))
		}
	}
	return errs
}

// macroGraph maps macro name -> macros it references.
type macroGraph map[string][]string

// buildMacroGraph constructs the macro dependency graph. References to
// undefined macros are skipped here; Validate reports those separately.
func buildMacroGraph(macros map[string]style.Node) macroGraph {
	graph := make(macroGraph, len(macros))
	for name, node := range macros {
		refs := collectMacroRefs(node, nil)
		edges := make([]string, 0, len(refs))
		for _, ref := range refs {
			if _, ok := macros[ref]; ok {
				edges = append(edges, ref)
			}
		}
		graph[name] = edges
	}
	return graph
}

// collectMacroRefs gathers every macro reference reachable from node.
func collectMacroRefs(node style.Node, refs []string) []string {
	switch n := node.(type) {
	case style.MacroRef:
		refs = append(refs, n.Name)
	case style.Names:
		for _, sub := range n.Substitute {
			refs = collectMacroRefs(sub, refs)
		}
	case style.Group:
		for _, child := range n.Children {
			refs = collectMacroRefs(child, refs)
		}
	case style.Conditional:
		for _, branch := range n.Branches {
			for _, child := range branch.Children {
				refs = collectMacroRefs(child, refs)
			}
		}
	}
	return refs
}

// hasSelfLoop checks if a node has an edge to itself.
func hasSelfLoop(node string, graph macroGraph) bool {
	for _, neighbor := range graph[node] {
		if neighbor == node {
			return true
		}
	}
	return false
}

// tarjanSCC finds strongly connected components using Tarjan's
// algorithm. Single-node SCCs without self-loops are NOT cycles.
func tarjanSCC(graph macroGraph) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	// Visit nodes in sorted order so error output is deterministic.
	nodes := make([]string, 0, len(graph))
	for node := range graph {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	for _, node := range nodes {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}

// cycleError converts an SCC into a ValidationError describing the
// cycle path.
func cycleError(scc []string, graph macroGraph) ValidationError {
	if len(scc) == 1 {
		name := scc[0]
		return ValidationError{
			Field:   "macros." + name,
			Message: fmt.Sprintf("macro references itself: %s -> %s", name, name),
			Code:    ErrMacroCycle,
		}
	}

	path := reconstructCyclePath(scc, graph)
	return ValidationError{
		Field:   "macros." + path[0],
		Message: fmt.Sprintf("cyclic macro references: %s", strings.Join(path, " -> ")),
		Code:    ErrMacroCycle,
	}
}

// reconstructCyclePath builds a representative cycle path from an SCC:
// start at the lexically first member, follow edges inside the SCC
// until the start repeats.
func reconstructCyclePath(scc []string, graph macroGraph) []string {
	sccSet := make(map[string]bool, len(scc))
	for _, node := range scc {
		sccSet[node] = true
	}

	sorted := append([]string(nil), scc...)
	sort.Strings(sorted)
	start := sorted[0]

	current := start
	path := []string{current}
	visited := make(map[string]bool)

	for {
		visited[current] = true

		var next string
		for _, neighbor := range graph[current] {
			if sccSet[neighbor] && (!visited[neighbor] || neighbor == start) {
				next = neighbor
				break
			}
		}
		if next == "" {
			break
		}

		path = append(path, next)
		if next == start {
			break
		}
		current = next
	}

	return path
}
