package matcher

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ProcessedLog is what previous runs recorded in the processed-sentence log.
type ProcessedLog struct {
	Sentences map[string]struct{}
	Keywords  []string
}

// Contains reports whether the sentence was already annotated.
func (p ProcessedLog) Contains(sentence string) bool {
	_, ok := p.Sentences[sentence]
	return ok
}

// GroupSentencesFile opens path and groups its rows with GroupSentences.
func GroupSentencesFile(path string) ([]SentenceGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentence source: %w", err)
	}
	defer f.Close()
	groups, err := GroupSentences(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return groups, nil
}

// GroupSentences reads headerless "sentence_1,sentence_2" rows and starts a new
// group every time the first column changes. Rows must be sorted by the first
// column, otherwise one sentence can end up in several groups.
func GroupSentences(r io.Reader) ([]SentenceGroup, error) {
	var groups []SentenceGroup
	err := readPairs(r, func(first, second string) {
		if n := len(groups); n > 0 && groups[n-1].Primary == first {
			groups[n-1].Candidates = append(groups[n-1].Candidates, second)
			return
		}
		groups = append(groups, SentenceGroup{Primary: first, Candidates: []string{second}})
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// LoadProcessedFile reads the processed-sentence log. A missing file is an
// empty log: it is created by the first save.
func LoadProcessedFile(path string) (ProcessedLog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ProcessedLog{Sentences: map[string]struct{}{}}, nil
		}
		return ProcessedLog{}, fmt.Errorf("open processed log: %w", err)
	}
	defer f.Close()
	processed, err := LoadProcessed(f)
	if err != nil {
		return ProcessedLog{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return processed, nil
}

// LoadProcessed reads headerless "sentence,kw1|kw2" rows. Keywords are
// deduplicated in first-seen order and empty keywords are skipped.
func LoadProcessed(r io.Reader) (ProcessedLog, error) {
	out := ProcessedLog{Sentences: map[string]struct{}{}}
	seen := make(map[string]struct{})
	err := readPairs(r, func(sentence, keywords string) {
		out.Sentences[sentence] = struct{}{}
		for _, k := range strings.Split(keywords, KeywordSeparator) {
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out.Keywords = append(out.Keywords, k)
		}
	})
	if err != nil {
		return ProcessedLog{}, err
	}
	return out, nil
}

// readPairs calls fn with the first two columns of every row. Extra columns
// are ignored; a row with fewer than two columns stops the read.
func readPairs(r io.Reader, fn func(first, second string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse csv: %w", err)
		}
		if len(row) < 2 {
			line, _ := reader.FieldPos(0)
			return fmt.Errorf("line %d: %w: want 2 columns, got %d", line, ErrMalformedRow, len(row))
		}
		fn(row[0], row[1])
	}
}
