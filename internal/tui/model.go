// Package tui renders an annotation session in the terminal. It follows the
// bubbletea loop: key messages call into the session and the model re-reads
// the derived view afterwards.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"yashubustudio/sentencematcher/matcher"
)

type focusArea int

const (
	focusKeywords focusArea = iota
	focusCandidates
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	sentenceStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 0, 1, 0)
	keywordStyle   = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle  = keywordStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3CB371"))
	cursorStyle    = lipgloss.NewStyle().Underline(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3CB371"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// Model is the bubbletea model for one session.
type Model struct {
	session *matcher.Session
	view    matcher.View
	keys    keyMap
	help    help.Model

	focus      focusArea
	kwCursor   int
	candCursor int
	err        error
	quitting   bool
}

// New starts the session and returns a model showing its first sentence.
func New(session *matcher.Session) Model {
	return Model{
		session: session,
		view:    session.Start(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Run drives the session in the terminal until the operator exits.
func Run(session *matcher.Session) error {
	_, err := tea.NewProgram(New(session), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		if m.view.Exhausted {
			m.quitting = true
			return m, tea.Quit
		}
		m.apply(m.session.Save())
		m.kwCursor, m.candCursor = 0, 0
	case key.Matches(msg, m.keys.Switch):
		if m.focus == focusKeywords {
			m.focus = focusCandidates
		} else {
			m.focus = focusKeywords
		}
	case key.Matches(msg, m.keys.Left):
		m.focus = focusKeywords
		m.kwCursor = clamp(m.kwCursor-1, len(m.view.Keywords))
	case key.Matches(msg, m.keys.Right):
		m.focus = focusKeywords
		m.kwCursor = clamp(m.kwCursor+1, len(m.view.Keywords))
	case key.Matches(msg, m.keys.Up):
		m.focus = focusCandidates
		m.candCursor = clamp(m.candCursor-1, len(m.view.Candidates))
	case key.Matches(msg, m.keys.Down):
		m.focus = focusCandidates
		m.candCursor = clamp(m.candCursor+1, len(m.view.Candidates))
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	}
	return m, nil
}

func (m *Model) toggle() {
	if m.focus == focusKeywords {
		if m.kwCursor < len(m.view.Keywords) {
			m.apply(m.session.ToggleKeyword(m.view.Keywords[m.kwCursor].Text))
		}
		return
	}
	if m.candCursor >= len(m.view.Candidates) {
		return
	}
	text := m.view.Candidates[m.candCursor].Text
	m.apply(m.session.ToggleMatch(text))
	// keep the cursor on the toggled candidate when the list reorders
	for i, c := range m.view.Candidates {
		if c.Text == text {
			m.candCursor = i
			break
		}
	}
}

func (m *Model) apply(err error) {
	if errors.Is(err, matcher.ErrExhausted) {
		err = nil
	}
	m.err = err
	m.view = m.session.View()
	m.kwCursor = clamp(m.kwCursor, len(m.view.Keywords))
	m.candCursor = clamp(m.candCursor, len(m.view.Candidates))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sentence Matcher"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.view.Status))
	b.WriteString("\n\n")

	if !m.view.Exhausted && m.view.CanSave {
		b.WriteString(sentenceStyle.Render(fmt.Sprintf("%d/%d  %s", m.view.Position, m.view.Total, m.view.Sentence)))
		b.WriteString("\n")
		b.WriteString(m.renderKeywords())
		b.WriteString("\n")
		b.WriteString(m.view.SelectedLabel())
		b.WriteString("\n\n")
		b.WriteString(m.renderCandidates())
	} else {
		b.WriteString(fmt.Sprintf("Saved %d sentence(s) this session.\n", m.session.Saved()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderKeywords() string {
	parts := make([]string, len(m.view.Keywords))
	for i, kw := range m.view.Keywords {
		style := keywordStyle
		if kw.Selected {
			style = selectedStyle
		}
		text := kw.Text
		if m.focus == focusKeywords && i == m.kwCursor {
			text = cursorStyle.Render(text)
		}
		parts[i] = style.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderCandidates() string {
	var b strings.Builder
	for i, c := range m.view.Candidates {
		pointer := "  "
		if m.focus == focusCandidates && i == m.candCursor {
			pointer = "> "
		}
		box := "[ ] "
		if c.Checked {
			box = "[x] "
		}
		text := c.Text
		if c.Highlighted {
			text = highlightStyle.Render(text)
		}
		b.WriteString(pointer + box + text + "\n")
	}
	return b.String()
}

func clamp(v, n int) int {
	if n <= 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
