package matcher

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// PairAccepted is the label column written for every selected pair.
const PairAccepted = "1"

// CSVRecorder appends annotations to the processed-sentence log and the
// selected-pairs log. The two files are written one after the other; a
// failure between them leaves the first write in place.
type CSVRecorder struct {
	ProcessedPath string
	PairsPath     string
}

// NewCSVRecorder returns a recorder for the given log files.
func NewCSVRecorder(processedPath, pairsPath string) *CSVRecorder {
	return &CSVRecorder{ProcessedPath: processedPath, PairsPath: pairsPath}
}

// Record appends "sentence,kw1|kw2" to the processed log and one
// "sentence,match,1" row per match to the pairs log.
func (r *CSVRecorder) Record(sentence string, keywords, matches []string) error {
	processed := [][]string{{sentence, strings.Join(keywords, KeywordSeparator)}}
	if err := appendRows(r.ProcessedPath, processed); err != nil {
		return fmt.Errorf("append processed log: %w", err)
	}
	if len(matches) == 0 {
		return nil
	}
	pairs := make([][]string, len(matches))
	for i, m := range matches {
		pairs[i] = []string{sentence, m, PairAccepted}
	}
	if err := appendRows(r.PairsPath, pairs); err != nil {
		return fmt.Errorf("append selected pairs: %w", err)
	}
	return nil
}

func appendRows(path string, rows [][]string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return csv.NewWriter(f).WriteAll(rows)
}
