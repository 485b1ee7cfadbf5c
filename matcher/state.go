package matcher

import "slices"

// State is the annotation cursor plus the current selections. Transitions
// return a new State and never write into the receiver's slices, so a State
// can be kept as a snapshot.
type State struct {
	// Index is the current record; -1 before the first advance, len(records)
	// once every record has been handled.
	Index        int
	Keywords     []string
	Matches      []string
	PastKeywords []string
}

// NewState returns the state before the first record, seeded with the
// keywords chosen in earlier runs.
func NewState(pastKeywords []string) State {
	return State{Index: -1, PastKeywords: cloneStrings(pastKeywords)}
}

// Active reports whether the cursor points at one of n records.
func (s State) Active(n int) bool {
	return s.Index >= 0 && s.Index < n
}

// Exhausted reports whether all n records have been handled.
func (s State) Exhausted(n int) bool {
	return s.Index >= n
}

// Advance moves to the next record and clears the selections. Past keywords
// found in the new sentence are selected up front, in past-keyword order.
func (s State) Advance(records []SentenceRecord) State {
	next := State{Index: s.Index + 1, PastKeywords: s.PastKeywords}
	if next.Index > len(records) {
		next.Index = len(records)
	}
	if next.Index < len(records) {
		words := records[next.Index].Keywords
		for _, k := range s.PastKeywords {
			if slices.Contains(words, k) {
				next.Keywords = append(next.Keywords, k)
			}
		}
	}
	return next
}

// ToggleKeyword selects keyword, or deselects it when already selected.
func (s State) ToggleKeyword(keyword string) State {
	s.Keywords = toggle(s.Keywords, keyword)
	return s
}

// ToggleMatch selects candidate, or deselects it when already selected.
func (s State) ToggleMatch(candidate string) State {
	s.Matches = toggle(s.Matches, candidate)
	return s
}

// Remember adds the selected keywords to the past keywords.
func (s State) Remember() State {
	past := cloneStrings(s.PastKeywords)
	for _, k := range s.Keywords {
		if !slices.Contains(past, k) {
			past = append(past, k)
		}
	}
	s.PastKeywords = past
	return s
}

func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		out := make([]string, 0, len(values)-1)
		out = append(out, values[:i]...)
		return append(out, values[i+1:]...)
	}
	out := make([]string, len(values), len(values)+1)
	copy(out, values)
	return append(out, v)
}
