package app

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yashubustudio/sentencematcher/matcher"
)

type saved struct {
	sentence string
	keywords []string
	matches  []string
}

type memoryRecorder struct {
	rows []saved
	err  error
}

func (m *memoryRecorder) Record(sentence string, keywords, matches []string) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, saved{sentence: sentence, keywords: keywords, matches: matches})
	return nil
}

type harness struct {
	ui       *uiState
	session  *matcher.Session
	recorder *memoryRecorder
	quits    int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	records := []matcher.SentenceRecord{
		matcher.NewRecord(matcher.SentenceGroup{Primary: "The cat sleeps.", Candidates: []string{"A dog barks.", "The cat naps."}}),
		matcher.NewRecord(matcher.SentenceGroup{Primary: "Birds sing.", Candidates: []string{"A bird is singing."}}),
	}
	h := &harness{recorder: &memoryRecorder{}}
	h.session = matcher.NewSession(records, nil, h.recorder, nil)
	h.ui = buildUI(a, h.session, binding.NewString(), func() { h.quits++ })
	h.session.Start()
	return h
}

func TestUIRendersFirstSentence(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "Select a keyword to filter by:", h.ui.status.Text)
	assert.Equal(t, "1/2", h.ui.position.Text)
	assert.Equal(t, "The cat sleeps.", h.ui.sentence.Text)
	assert.Equal(t, "Selected keywords: None", h.ui.selected.Text)
	require.Len(t, h.ui.keywordBtns, 3)
	assert.Equal(t, "cat", h.ui.keywordBtns[1].Text)
	assert.Equal(t, []string{"A dog barks.", "The cat naps."}, h.ui.candTexts)
	assert.False(t, h.ui.saveBtn.Disabled())
}

func TestUIKeywordTapReordersCandidates(t *testing.T) {
	h := newHarness(t)

	test.Tap(h.ui.keywordBtns[1])

	assert.Equal(t, "Selected keywords: cat", h.ui.selected.Text)
	assert.Equal(t, widget.SuccessImportance, h.ui.keywordBtns[1].Importance)
	assert.Equal(t, []string{"The cat naps.", "A dog barks."}, h.ui.candTexts)
}

func TestUISaveWritesSelection(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.ui.keywordBtns[1])
	test.Tap(h.ui.candChecks[0])

	test.Tap(h.ui.saveBtn)

	require.Len(t, h.recorder.rows, 1)
	assert.Equal(t, saved{sentence: "The cat sleeps.", keywords: []string{"cat"}, matches: []string{"The cat naps."}}, h.recorder.rows[0])
	assert.Equal(t, "2/2", h.ui.position.Text)
	assert.Equal(t, "Birds sing.", h.ui.sentence.Text)
	assert.False(t, h.ui.candChecks[0].Checked)
}

func TestUIExhaustedDisablesSave(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.ui.saveBtn)
	test.Tap(h.ui.saveBtn)

	assert.True(t, h.ui.saveBtn.Disabled())
	assert.Equal(t, "No sentence to display.", h.ui.status.Text)
	assert.Empty(t, h.ui.keywordBtns)
	assert.Empty(t, h.ui.candChecks)
	assert.Len(t, h.recorder.rows, 2)
}

func TestUIKeyboardShortcuts(t *testing.T) {
	h := newHarness(t)
	onKey := h.ui.w.Canvas().OnTypedKey()

	onKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Len(t, h.recorder.rows, 1)
	assert.Equal(t, 0, h.quits)

	onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 1, h.quits)
}

func TestUIReturnExitsWhenExhausted(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.ui.saveBtn)
	test.Tap(h.ui.saveBtn)

	h.ui.w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, 1, h.quits)
	assert.Len(t, h.recorder.rows, 2)
}

func TestUIExitButtonQuits(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.ui.exitBtn)
	assert.Equal(t, 1, h.quits)
}

func TestUISaveFailureKeepsSentence(t *testing.T) {
	h := newHarness(t)
	h.recorder.err = errors.New("read-only file system")

	test.Tap(h.ui.saveBtn)

	assert.Equal(t, "1/2", h.ui.position.Text)
	assert.Empty(t, h.recorder.rows)
}
