package engine

import (
	"sort"
	"strconv"

	"github.com/refmark/refmark/internal/bib"
)

// rangeDash joins collapsed citation-number runs ("1–3").
const rangeDash = "–"

// RenderCitation formats one in-text citation group. Each first-seen
// entry is assigned the next session-wide citation-number; re-cited
// entries reuse their number. The group's numbers are sorted ascending,
// deduplicated, optionally collapsed into ranges, joined with the
// citation layout delimiter, and wrapped in the layout affixes.
//
// An empty group renders empty.
func (s *Session) RenderCitation(entries []bib.Entry) bib.RenderedText {
	if len(entries) == 0 {
		return bib.RenderedText{}
	}

	numbers := make([]int, 0, len(entries))
	for _, e := range entries {
		numbers = append(numbers, s.numbers.assign(e))
	}
	sort.Ints(numbers)
	numbers = dedupe(numbers)

	layout := s.style.Citation
	var parts []bib.RenderedText
	if layout.Collapse {
		for _, r := range collapseRuns(numbers) {
			parts = append(parts, bib.Plain(r))
		}
	} else {
		for _, n := range numbers {
			parts = append(parts, bib.Plain(strconv.Itoa(n)))
		}
	}

	return bib.Join(layout.Delimiter, parts...).Wrap(layout.Prefix, layout.Suffix)
}

// dedupe removes repeated numbers from a sorted slice. Citing the same
// entry twice within one group contributes its number once.
func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, n := range sorted {
		if i == 0 || n != sorted[i-1] {
			out = append(out, n)
		}
	}
	return out
}

// collapseRuns compresses runs of three or more consecutive numbers
// into "first–last". Two consecutive numbers stay separate; a range
// notation for a pair would not be shorter.
func collapseRuns(sorted []int) []string {
	var out []string
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if j-i >= 2 {
			out = append(out, strconv.Itoa(sorted[i])+rangeDash+strconv.Itoa(sorted[j]))
			i = j + 1
			continue
		}
		out = append(out, strconv.Itoa(sorted[i]))
		i++
	}
	return out
}
