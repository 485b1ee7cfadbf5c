package matcher

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ContainsAll reports whether text contains every keyword, ignoring case and
// Unicode composition. It is false when no keyword is given.
func ContainsAll(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	fold := cases.Fold()
	folded := foldKey(fold, text)
	for _, k := range keywords {
		if !strings.Contains(folded, foldKey(fold, k)) {
			return false
		}
	}
	return true
}

func foldKey(fold cases.Caser, s string) string {
	return fold.String(norm.NFC.String(s))
}

// OrderCandidates moves candidates that are already matched, or that contain
// all selected keywords, ahead of the rest. The sort is stable and nothing
// moves while no keyword is selected.
func OrderCandidates(candidates, keywords, matches []string) []string {
	out := cloneStrings(candidates)
	if len(keywords) == 0 {
		return out
	}
	type ranked struct {
		text string
		top  bool
	}
	items := make([]ranked, len(out))
	for i, c := range out {
		items[i] = ranked{text: c, top: slices.Contains(matches, c) || ContainsAll(c, keywords)}
	}
	slices.SortStableFunc(items, func(a, b ranked) int {
		switch {
		case a.top == b.top:
			return 0
		case a.top:
			return -1
		default:
			return 1
		}
	})
	for i, it := range items {
		out[i] = it.text
	}
	return out
}
