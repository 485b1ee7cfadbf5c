package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "keeps apostrophes", in: "Cats, dogs' food!", want: []string{"Cats", "dogs'", "food"}},
		{name: "contraction", in: "Don't stop.", want: []string{"Don't", "stop"}},
		{name: "inner punctuation", in: "e-mail (draft)", want: []string{"email", "draft"}},
		{name: "repeated spaces", in: "a  b ", want: []string{"a", "b"}},
		{name: "non ascii kept", in: "café — olé", want: []string{"café", "—", "olé"}},
		{name: "only punctuation", in: "?!", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestUnprocessedSkipsProcessedSentences(t *testing.T) {
	groups := []SentenceGroup{
		{Primary: "Done already.", Candidates: []string{"x"}},
		{Primary: "Still open, sadly.", Candidates: []string{"y", "z"}},
	}
	processed := ProcessedLog{Sentences: map[string]struct{}{"Done already.": {}}}

	got := Unprocessed(groups, processed)

	assert.Equal(t, []SentenceRecord{{
		Sentence:   "Still open, sadly.",
		Keywords:   []string{"Still", "open", "sadly"},
		Candidates: []string{"y", "z"},
	}}, got)
}
