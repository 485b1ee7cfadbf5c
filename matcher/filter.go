package matcher

// NewRecord prepares a group for annotation.
func NewRecord(group SentenceGroup) SentenceRecord {
	return SentenceRecord{
		Sentence:   group.Primary,
		Keywords:   Tokenize(group.Primary),
		Candidates: cloneStrings(group.Candidates),
	}
}

// Unprocessed returns records for the groups whose primary sentence is not in
// the processed log, keeping the source order.
func Unprocessed(groups []SentenceGroup, processed ProcessedLog) []SentenceRecord {
	out := make([]SentenceRecord, 0, len(groups))
	for _, g := range groups {
		if processed.Contains(g.Primary) {
			continue
		}
		out = append(out, NewRecord(g))
	}
	return out
}
