package matcher

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Recorder persists one accepted annotation.
type Recorder interface {
	Record(sentence string, keywords, matches []string) error
}

// Session drives the annotation of a fixed list of records. Observers are
// told about every transition with a freshly derived View; they never hold
// state of their own. A Session is not safe for concurrent use.
type Session struct {
	records   []SentenceRecord
	state     State
	recorder  Recorder
	logger    *zap.Logger
	observers []func(View)
	saved     int
}

// NewSession prepares a session positioned before the first record. Call
// Start to load it.
func NewSession(records []SentenceRecord, pastKeywords []string, recorder Recorder, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		records:  records,
		state:    NewState(pastKeywords),
		recorder: recorder,
		logger:   logger,
	}
}

// Subscribe registers fn to receive the view after every transition.
func (s *Session) Subscribe(fn func(View)) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Start loads the first record. It does nothing once the session has started.
func (s *Session) Start() View {
	if s.state.Index < 0 {
		s.advance()
	}
	return s.View()
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return s.state
}

// Total returns the number of records in the session.
func (s *Session) Total() int {
	return len(s.records)
}

// Saved returns how many records were saved in this session.
func (s *Session) Saved() int {
	return s.saved
}

// PastKeywords returns the keywords chosen so far, including earlier runs.
func (s *Session) PastKeywords() []string {
	return cloneStrings(s.state.PastKeywords)
}

// Exhausted reports whether every record has been handled.
func (s *Session) Exhausted() bool {
	return s.state.Exhausted(len(s.records))
}

// Current returns the record being annotated.
func (s *Session) Current() (SentenceRecord, bool) {
	if !s.state.Active(len(s.records)) {
		return SentenceRecord{}, false
	}
	return s.records[s.state.Index], true
}

// ToggleKeyword selects or deselects a keyword of the current sentence.
func (s *Session) ToggleKeyword(keyword string) error {
	rec, ok := s.Current()
	if !ok {
		return ErrExhausted
	}
	if !slices.Contains(rec.Keywords, keyword) {
		return fmt.Errorf("keyword %q: %w", keyword, ErrUnknownItem)
	}
	s.state = s.state.ToggleKeyword(keyword)
	s.logger.Debug("selected keywords", zap.Strings("keywords", s.state.Keywords))
	s.notify()
	return nil
}

// ToggleMatch selects or deselects a candidate of the current sentence.
func (s *Session) ToggleMatch(candidate string) error {
	rec, ok := s.Current()
	if !ok {
		return ErrExhausted
	}
	if !slices.Contains(rec.Candidates, candidate) {
		return fmt.Errorf("candidate %q: %w", candidate, ErrUnknownItem)
	}
	s.state = s.state.ToggleMatch(candidate)
	s.logger.Info("selected matches", zap.String("matches", strings.Join(s.state.Matches, ", ")))
	s.notify()
	return nil
}

// Save records the current sentence with its selections and moves on. When
// the recorder fails the state is left untouched so the save can be retried.
func (s *Session) Save() error {
	rec, ok := s.Current()
	if !ok {
		return ErrExhausted
	}
	keywords := cloneStrings(s.state.Keywords)
	matches := cloneStrings(s.state.Matches)
	s.logger.Info("saving",
		zap.String("sentence", rec.Sentence),
		zap.Strings("keywords", keywords),
		zap.Strings("matches", matches))
	if s.recorder != nil {
		if err := s.recorder.Record(rec.Sentence, keywords, matches); err != nil {
			return fmt.Errorf("save sentence #%d: %w", s.state.Index+1, err)
		}
	}
	s.saved++
	s.state = s.state.Remember()
	s.advance()
	return nil
}

// View derives the render model from the current state.
func (s *Session) View() View {
	v := View{
		Position:  s.state.Index + 1,
		Total:     len(s.records),
		Selected:  cloneStrings(s.state.Keywords),
		Matches:   cloneStrings(s.state.Matches),
		Exhausted: s.Exhausted(),
		Status:    statusExhausted,
	}
	rec, ok := s.Current()
	if !ok {
		return v
	}
	v.Sentence = rec.Sentence
	v.CanSave = true
	v.Status = statusActive
	v.Keywords = make([]KeywordItem, len(rec.Keywords))
	for i, k := range rec.Keywords {
		v.Keywords[i] = KeywordItem{Text: k, Selected: slices.Contains(s.state.Keywords, k)}
	}
	ordered := OrderCandidates(rec.Candidates, s.state.Keywords, s.state.Matches)
	v.Candidates = make([]CandidateItem, len(ordered))
	for i, c := range ordered {
		v.Candidates[i] = CandidateItem{
			Text:        c,
			Checked:     slices.Contains(s.state.Matches, c),
			Highlighted: ContainsAll(c, s.state.Keywords),
		}
	}
	return v
}

func (s *Session) advance() {
	s.state = s.state.Advance(s.records)
	if rec, ok := s.Current(); ok {
		s.logger.Info("loading sentence", zap.Int("number", s.state.Index+1), zap.Int("total", len(s.records)))
		if len(s.state.Keywords) > 0 {
			s.logger.Info("preselected keywords", zap.String("keywords", strings.Join(s.state.Keywords, ", ")))
		}
		s.logger.Debug("sentence", zap.String("text", rec.Sentence))
	} else {
		s.logger.Info("no sentence left to annotate", zap.Int("saved", s.saved))
	}
	s.notify()
}

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}
	v := s.View()
	for _, fn := range s.observers {
		fn(v)
	}
}
