package components

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/psinha/quizforge/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func singleQ() quiz.Question {
	return quiz.Question{
		ID: "q", Text: "pick", Type: quiz.SingleChoice,
		Options: []string{"a", "b", "c"}, CorrectIndices: []int{1},
	}
}

func multiQ() quiz.Question {
	return quiz.Question{
		ID: "q", Text: "pick two", Type: quiz.MultipleChoice,
		Options: []string{"a", "b", "c"}, CorrectIndices: []int{0, 2},
	}
}

func TestSingleChoiceConfirm(t *testing.T) {
	ol := NewOptionList(singleQ(), nil)

	ol, confirmed := ol.Update(keyPress('j'))
	if confirmed {
		t.Fatal("navigation confirmed an answer")
	}
	if ol.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", ol.Cursor)
	}

	ol, confirmed = ol.Update(enterKey())
	if !confirmed || !ol.Locked {
		t.Fatal("enter did not confirm and lock")
	}
	if !reflect.DeepEqual(ol.Selected, []int{1}) {
		t.Errorf("selected = %v, want [1]", ol.Selected)
	}
}

func TestMultiChoiceToggleAndConfirm(t *testing.T) {
	ol := NewOptionList(multiQ(), nil)

	ol, _ = ol.Update(tea.KeyPressMsg{Code: ' ', Text: " "}) // toggle a
	ol, _ = ol.Update(keyPress('j'))
	ol, _ = ol.Update(keyPress('j'))
	ol, _ = ol.Update(tea.KeyPressMsg{Code: ' ', Text: " "}) // toggle c

	ol, confirmed := ol.Update(enterKey())
	if !confirmed {
		t.Fatal("enter did not confirm")
	}
	if !reflect.DeepEqual(ol.Selected, []int{0, 2}) {
		t.Errorf("selected = %v, want [0 2]", ol.Selected)
	}
}

func TestMultiChoiceEmptySelectionRejected(t *testing.T) {
	ol := NewOptionList(multiQ(), nil)
	ol, confirmed := ol.Update(enterKey())
	if confirmed || ol.Locked {
		t.Error("empty multi-choice selection was confirmed")
	}
}

func TestLockedListIgnoresInput(t *testing.T) {
	ol := NewOptionList(singleQ(), []int{2})
	if !ol.Locked {
		t.Fatal("list with a confirmed answer not locked")
	}
	ol, confirmed := ol.Update(keyPress('k'))
	if confirmed || ol.Cursor != 0 {
		t.Error("locked list reacted to input")
	}
}
