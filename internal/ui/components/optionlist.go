// Package components holds the reusable exam UI widgets.
package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// OptionList renders a question's options with a movable highlight.
// Single-choice and true/false questions pick one option with enter;
// multiple-choice questions toggle options with space and confirm with
// enter. Once locked the list shows correctness coloring.
type OptionList struct {
	Question quiz.Question
	Cursor   int
	Checked  map[int]bool
	Locked   bool

	// Selected holds the confirmed indices once Locked.
	Selected []int
}

// NewOptionList creates an OptionList for the given question. A previously
// confirmed answer locks the list immediately.
func NewOptionList(q quiz.Question, confirmed []int) OptionList {
	ol := OptionList{
		Question: q,
		Checked:  make(map[int]bool),
	}
	if confirmed != nil {
		ol.Locked = true
		ol.Selected = confirmed
		for _, i := range confirmed {
			ol.Checked[i] = true
		}
	}
	return ol
}

func (ol OptionList) multi() bool {
	return ol.Question.Type == quiz.MultipleChoice
}

// Update handles navigation and selection. It reports confirmed=true on
// the update that locks in an answer; Selected then holds the indices.
func (ol OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if ol.Locked {
		return ol, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return ol, false
	}

	switch kmsg.String() {
	case "up", "k":
		if ol.Cursor > 0 {
			ol.Cursor--
		}
	case "down", "j":
		if ol.Cursor < len(ol.Question.Options)-1 {
			ol.Cursor++
		}
	case "space", " ":
		if ol.multi() {
			ol.Checked[ol.Cursor] = !ol.Checked[ol.Cursor]
		}
	case "enter":
		if ol.multi() {
			var sel []int
			for i := range ol.Question.Options {
				if ol.Checked[i] {
					sel = append(sel, i)
				}
			}
			if len(sel) == 0 {
				return ol, false
			}
			ol.Selected = sel
		} else {
			ol.Selected = []int{ol.Cursor}
			ol.Checked[ol.Cursor] = true
		}
		ol.Locked = true
		return ol, true
	}
	return ol, false
}

// View renders the option rows. reveal shows correctness coloring for a
// locked list; before the lock (or with feedback deferred) options render
// with selection styling only.
func (ol OptionList) View(reveal bool) string {
	correct := make(map[int]bool, len(ol.Question.CorrectIndices))
	for _, i := range ol.Question.CorrectIndices {
		correct[i] = true
	}

	var s string
	for i, opt := range ol.Question.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		marker := " "
		if ol.multi() {
			marker = "[ ]"
			if ol.Checked[i] {
				marker = "[x]"
			}
		} else if ol.Checked[i] {
			marker = "●"
		}

		prefix := "  "
		if i == ol.Cursor && !ol.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case ol.Locked && reveal && correct[i]:
			s += theme.Correct.Render(line) + "\n"
		case ol.Locked && reveal && ol.Checked[i]:
			s += theme.Incorrect.Render(line) + "\n"
		case ol.Locked:
			if ol.Checked[i] {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Subtitle.Render(line) + "\n"
			}
		case i == ol.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
