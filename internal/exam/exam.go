// Package exam is the interactive exam screen: one session presented
// question by question with navigation, answer locking, an optional
// countdown and an end-of-session summary.
package exam

import (
	"fmt"
	"strconv"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/ui/components"
)

// Outcome is how the exam screen was left.
type Outcome int

const (
	// OutcomeFinished means the session was submitted and scored.
	OutcomeFinished Outcome = iota

	// OutcomeSaved means the session was saved for later resumption.
	OutcomeSaved

	// OutcomeDiscarded means the session was abandoned. Answered questions
	// still count as reviewed.
	OutcomeDiscarded
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseJump
	phaseQuitConfirm
	phaseFinishConfirm
	phaseSummary
)

// Model is the exam screen's Bubble Tea model.
type Model struct {
	session *quiz.Session
	options components.OptionList
	jump    textinput.Model
	phase   phase
	outcome Outcome
	width   int
	height  int
}

// New creates the exam model over a session. The session may be fresh or a
// resumed snapshot; answered questions render locked.
func New(session *quiz.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", len(session.Questions))
	ti.CharLimit = 4

	m := &Model{
		session: session,
		jump:    ti,
	}
	m.loadCurrent()
	return m
}

// Outcome reports how the screen was left. Valid after the program exits.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// loadCurrent rebuilds the option list for the question under the cursor.
func (m *Model) loadCurrent() {
	q := m.session.Current()
	if q == nil {
		return
	}
	var confirmed []int
	if sel, ok := m.session.Answers[q.ID]; ok {
		confirmed = sel
	}
	m.options = components.NewOptionList(*q, confirmed)
}

func (m *Model) Init() tea.Cmd {
	if m.session.Config.TimerEnabled {
		return tickCmd()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == phaseSummary {
		return m, nil
	}
	m.session.Tick()
	if m.session.Status == quiz.StatusFinished {
		// Countdown hit zero with auto-submit configured.
		m.outcome = OutcomeFinished
		m.phase = phaseSummary
		return m, nil
	}
	return m, tickCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.outcome = OutcomeDiscarded
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSummary:
		switch key {
		case "q", "enter", "esc":
			return m, tea.Quit
		}
		return m, nil

	case phaseQuitConfirm:
		switch key {
		case "s":
			m.outcome = OutcomeSaved
			return m, tea.Quit
		case "d":
			m.outcome = OutcomeDiscarded
			return m, tea.Quit
		case "c", "esc":
			m.phase = phaseQuestion
		}
		return m, nil

	case phaseFinishConfirm:
		switch key {
		case "y", "enter":
			return m.finish()
		case "n", "esc":
			m.phase = phaseQuestion
		}
		return m, nil

	case phaseJump:
		switch key {
		case "enter":
			if n, err := strconv.Atoi(m.jump.Value()); err == nil && m.session.Jump(n-1) {
				m.loadCurrent()
			}
			m.jump.SetValue("")
			m.phase = phaseQuestion
			return m, nil
		case "esc":
			m.jump.SetValue("")
			m.phase = phaseQuestion
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd

	case phaseFeedback:
		switch key {
		case "enter", "n":
			m.phase = phaseQuestion
			if m.session.Next() {
				m.loadCurrent()
			}
		case "esc", "q":
			m.phase = phaseQuitConfirm
		}
		return m, nil
	}

	// phaseQuestion.
	switch key {
	case "esc", "q":
		m.phase = phaseQuitConfirm
		return m, nil
	case "n", "right", "tab":
		if m.session.Next() {
			m.loadCurrent()
		}
		return m, nil
	case "p", "left", "shift+tab":
		if m.session.Prev() {
			m.loadCurrent()
		}
		return m, nil
	case "g":
		m.phase = phaseJump
		return m, m.jump.Focus()
	case "f":
		if m.session.AllAnswered() {
			return m.finish()
		}
		m.phase = phaseFinishConfirm
		return m, nil
	}

	var confirmed bool
	m.options, confirmed = m.options.Update(msg)
	if confirmed {
		q := m.session.Current()
		if q != nil {
			if err := m.session.Confirm(q.ID, m.options.Selected); err == nil && m.session.Config.InstantFeedback {
				m.phase = phaseFeedback
				return m, nil
			}
		}
		if m.session.AllAnswered() {
			return m.finish()
		}
		if m.session.Next() {
			m.loadCurrent()
		}
	}
	return m, nil
}

func (m *Model) finish() (tea.Model, tea.Cmd) {
	m.session.Finish()
	m.outcome = OutcomeFinished
	m.phase = phaseSummary
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Run presents the session and blocks until the screen exits. The session
// is mutated in place; the returned outcome tells the caller whether to
// persist it, score it, or drop it.
func Run(session *quiz.Session) (Outcome, error) {
	m := New(session)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return OutcomeDiscarded, fmt.Errorf("run exam screen: %w", err)
	}
	return m.Outcome(), nil
}
