package matcher

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Dataset is what the tool reads from disk at startup.
type Dataset struct {
	Groups    []SentenceGroup
	Processed ProcessedLog
	Records   []SentenceRecord
}

// SortedPastKeywords returns the past keywords in lexical order.
func (d Dataset) SortedPastKeywords() []string {
	out := cloneStrings(d.Processed.Keywords)
	slices.Sort(out)
	return out
}

// LoadDataset reads the sentence source and the processed log and keeps the
// groups that still need annotating.
func LoadDataset(cfg Config) (Dataset, error) {
	groups, err := GroupSentencesFile(cfg.SentenceSourceFile)
	if err != nil {
		return Dataset{}, err
	}
	processed, err := LoadProcessedFile(cfg.ProcessedSentenceFile)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{
		Groups:    groups,
		Processed: processed,
		Records:   Unprocessed(groups, processed),
	}, nil
}

// Service wires the dataset, the recorder and the annotation session.
type Service struct {
	cfg     Config
	data    Dataset
	session *Session
	logger  *zap.Logger
}

// NewService loads the dataset described by cfg and opens a session over the
// unprocessed records. The session is not started.
func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := LoadDataset(cfg)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("past keywords", zap.String("keywords", strings.Join(data.SortedPastKeywords(), ", ")))
	logger.Info("unrated sentences", zap.Int("count", len(data.Records)), zap.Int("groups", len(data.Groups)))

	recorder := NewCSVRecorder(cfg.ProcessedSentenceFile, cfg.SelectedPairsFile)
	return &Service{
		cfg:     cfg,
		data:    data,
		session: NewSession(data.Records, data.Processed.Keywords, recorder, logger),
		logger:  logger,
	}, nil
}

// Config returns the configuration the service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// Dataset returns the data loaded at startup.
func (s *Service) Dataset() Dataset {
	return s.data
}

// Session returns the annotation session.
func (s *Service) Session() *Session {
	return s.session
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}
