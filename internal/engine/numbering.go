package engine

import (
	"sync"

	"github.com/refmark/refmark/internal/bib"
)

// numberer owns the session-wide citation-number assignment: a
// monotonic counter plus the first-seen map from entry identity to
// number. Assignment is linearized under one mutex so that citation
// order determines numbering order, even with concurrent callers.
type numberer struct {
	mu    sync.Mutex
	next  int
	byID  map[string]int
	cited []bib.Entry // first-seen order, i.e. ascending citation-number
}

func newNumberer() *numberer {
	return &numberer{byID: map[string]int{}}
}

// assign returns the citation-number for the entry, allocating the next
// integer on first sight. Identity is the entry ID; a re-cited ID keeps
// its original number and its first-seen record, regardless of content.
func (n *numberer) assign(e bib.Entry) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	if num, ok := n.byID[e.ID]; ok {
		return num
	}
	n.next++
	n.byID[e.ID] = n.next
	n.cited = append(n.cited, e)
	return n.next
}

// numberOf returns the assigned number without allocating.
func (n *numberer) numberOf(id string) (int, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	num, ok := n.byID[id]
	return num, ok
}

// citedEntries returns the entries in citation-number order.
func (n *numberer) citedEntries() []bib.Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]bib.Entry, len(n.cited))
	copy(out, n.cited)
	return out
}
