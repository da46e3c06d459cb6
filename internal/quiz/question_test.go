package quiz

import "testing"

func TestQuestionValidate(t *testing.T) {
	valid := Question{
		ID:             "q",
		Text:           "pick one",
		Type:           SingleChoice,
		Options:        []string{"a", "b"},
		CorrectIndices: []int{1},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty text", func(q *Question) { q.Text = "" }},
		{"one option", func(q *Question) { q.Options = []string{"a"} }},
		{"no correct", func(q *Question) { q.CorrectIndices = nil }},
		{"index too high", func(q *Question) { q.CorrectIndices = []int{2} }},
		{"negative index", func(q *Question) { q.CorrectIndices = []int{-1} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			q.Options = append([]string(nil), valid.Options...)
			q.CorrectIndices = append([]int(nil), valid.CorrectIndices...)
			tc.mutate(&q)
			if err := q.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
