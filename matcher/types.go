package matcher

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedRow is returned when a CSV row has fewer columns than required.
	ErrMalformedRow = errors.New("malformed row")
	// ErrExhausted is returned when an operation needs a current sentence but none is left.
	ErrExhausted = errors.New("no sentence left to annotate")
	// ErrMissingConfig is returned when a required configuration value is empty.
	ErrMissingConfig = errors.New("missing configuration value")
	// ErrUnknownItem is returned when a toggled keyword or candidate does not belong to the current sentence.
	ErrUnknownItem = errors.New("not part of the current sentence")
)

// SentenceGroup is a primary sentence and the candidates paired with it in the source file.
type SentenceGroup struct {
	Primary    string
	Candidates []string
}

// SentenceRecord is a group prepared for annotation.
type SentenceRecord struct {
	Sentence   string   `json:"sentence"`
	Keywords   []string `json:"keywords"`
	Candidates []string `json:"candidates"`
}

// KeywordItem is a keyword as presented to the operator.
type KeywordItem struct {
	Text     string
	Selected bool
}

// CandidateItem is a candidate as presented to the operator.
type CandidateItem struct {
	Text        string
	Checked     bool
	Highlighted bool
}

// View is the render model derived from the session state.
type View struct {
	Position   int
	Total      int
	Sentence   string
	Keywords   []KeywordItem
	Candidates []CandidateItem
	Selected   []string
	Matches    []string
	Exhausted  bool
	CanSave    bool
	Status     string
}

const (
	statusActive    = "Select a keyword to filter by:"
	statusExhausted = "No sentence to display."
)

// SelectedLabel formats the selected keywords line shown under the sentence.
func (v View) SelectedLabel() string {
	if len(v.Selected) == 0 {
		return "Selected keywords: None"
	}
	return "Selected keywords: " + strings.Join(v.Selected, ", ")
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
