package extract

import (
	"reflect"
	"testing"

	"github.com/psinha/quizforge/internal/quiz"
)

func TestMapType(t *testing.T) {
	cases := []struct {
		in   any
		want quiz.QuestionType
	}{
		{"single", quiz.SingleChoice},
		{"Single Choice", quiz.SingleChoice},
		{"multiple", quiz.MultipleChoice},
		{"Multiple Choice", quiz.MultipleChoice},
		{"checkbox", quiz.MultipleChoice},
		{"多选题", quiz.MultipleChoice},
		{"truefalse", quiz.TrueFalse},
		{"True/False", quiz.TrueFalse},
		{"judgment", quiz.TrueFalse},
		{"判断题", quiz.TrueFalse},
		{"essay", quiz.SingleChoice},
		{"", quiz.SingleChoice},
		{nil, quiz.SingleChoice},
		{float64(2), quiz.SingleChoice},
	}
	for _, tc := range cases {
		if got := MapType(tc.in); got != tc.want {
			t.Errorf("MapType(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanOption(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"A. Paris", "Paris"},
		{"b) London", "London"},
		{"3、 東京", "東京"},
		{"D． Berlin", "Berlin"},
		{"  Madrid  ", "Madrid"},
		{"Rome", "Rome"},
		{float64(42), "42"},
	}
	for _, tc := range cases {
		if got := cleanOption(tc.in); got != tc.want {
			t.Errorf("cleanOption(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeQuestionMixedIndexForms(t *testing.T) {
	raw := rawQuestion{
		Text:           "Pick two",
		Type:           "multiple",
		Options:        []any{"a", "b", "c"},
		CorrectIndices: []any{"1", float64(0)},
		Explanation:    "e",
	}
	q, ok := normalizeQuestion(raw)
	if !ok {
		t.Fatal("normalizeQuestion rejected a valid question")
	}
	if !reflect.DeepEqual(q.CorrectIndices, []int{0, 1}) {
		t.Errorf("CorrectIndices = %v, want [0 1]", q.CorrectIndices)
	}
}

func TestNormalizeQuestionRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  rawQuestion
	}{
		{"empty text", rawQuestion{Options: []any{"a", "b"}, CorrectIndices: []any{0}}},
		{"one option", rawQuestion{Text: "q", Options: []any{"a"}, CorrectIndices: []any{0}}},
		{"no correct", rawQuestion{Text: "q", Options: []any{"a", "b"}}},
		{"out of range", rawQuestion{Text: "q", Options: []any{"a", "b"}, CorrectIndices: []any{float64(5)}}},
		{"uncoercible index", rawQuestion{Text: "q", Options: []any{"a", "b"}, CorrectIndices: []any{"first"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := normalizeQuestion(tc.raw); ok {
				t.Error("expected rejection, got ok")
			}
		})
	}
}

func TestNormalizeQuestionDropsOutOfRangeKeepsRest(t *testing.T) {
	raw := rawQuestion{
		Text:           "q",
		Type:           "multiple",
		Options:        []any{"a", "b"},
		CorrectIndices: []any{float64(1), float64(7)},
		Explanation:    "e",
	}
	q, ok := normalizeQuestion(raw)
	if !ok {
		t.Fatal("question rejected despite one valid index")
	}
	if !reflect.DeepEqual(q.CorrectIndices, []int{1}) {
		t.Errorf("CorrectIndices = %v, want [1]", q.CorrectIndices)
	}
}
