package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/psinha/quizforge/internal/quiz"
)

// rawQuestion is one question as the model returned it, before
// normalization. Fields are loosely typed: models occasionally emit the
// type as a number or null and indices as strings.
type rawQuestion struct {
	Text           string `json:"text"`
	Type           any    `json:"type"`
	Options        []any  `json:"options"`
	CorrectIndices []any  `json:"correctIndices"`
	Explanation    string `json:"explanation"`
}

// chunkOutput is the decoded per-chunk response.
type chunkOutput struct {
	Questions []rawQuestion `json:"questions"`
}

// MapType normalizes a raw type value to one of the three question types
// by case-insensitive substring match. Anything unrecognized, missing or
// non-string is a single-choice question.
func MapType(v any) quiz.QuestionType {
	s, ok := v.(string)
	if !ok {
		return quiz.SingleChoice
	}
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "multiple"),
		strings.Contains(s, "check"),
		strings.Contains(s, "多选"):
		return quiz.MultipleChoice
	case strings.Contains(s, "true"),
		strings.Contains(s, "false"),
		strings.Contains(s, "judgment"),
		strings.Contains(s, "判断"):
		return quiz.TrueFalse
	default:
		return quiz.SingleChoice
	}
}

// listMarker matches leading option labels like "A.", "b)", "3、" or "D．".
var listMarker = regexp.MustCompile(`^\s*(?:[A-Za-z]|[0-9]+)\s*[.)、．:：]\s*`)

// cleanOption stringifies and trims one option, dropping any list-marker
// prefix the model left in despite the prompt instruction.
func cleanOption(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(listMarker.ReplaceAllString(s, ""))
}

// normalizeQuestion converts one raw question to the domain form. Returns
// false when the question is unusable: fewer than two options, or no
// in-range correct index survives coercion.
func normalizeQuestion(raw rawQuestion) (quiz.Question, bool) {
	q := quiz.Question{
		Text:        strings.TrimSpace(raw.Text),
		Type:        MapType(raw.Type),
		Explanation: strings.TrimSpace(raw.Explanation),
	}
	if q.Text == "" {
		return quiz.Question{}, false
	}

	for _, opt := range raw.Options {
		if s := cleanOption(opt); s != "" {
			q.Options = append(q.Options, s)
		}
	}
	if len(q.Options) < 2 {
		return quiz.Question{}, false
	}

	for _, i := range quiz.NormalizeIndices(raw.CorrectIndices) {
		if i >= 0 && i < len(q.Options) {
			q.CorrectIndices = append(q.CorrectIndices, i)
		}
	}
	if len(q.CorrectIndices) == 0 {
		return quiz.Question{}, false
	}

	return q, true
}
