package quiz

import "fmt"

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	// SingleChoice questions have exactly one correct option.
	SingleChoice QuestionType = "single"

	// MultipleChoice questions have one or more correct options and the
	// answer is only correct when all of them (and nothing else) are picked.
	MultipleChoice QuestionType = "multiple"

	// TrueFalse questions are a two-option special case of single choice.
	TrueFalse QuestionType = "truefalse"
)

// Question is one extracted practice question. Immutable once placed in a
// bank; sessions hold their own snapshot of the questions they serve.
type Question struct {
	// ID is unique within a bank. Assigned by the extraction pipeline from
	// the extraction timestamp and the question's position in the merged
	// sequence, so identical input yields identical IDs within a batch.
	ID string `json:"id"`

	// Text is the question prompt, in the source document's language.
	Text string `json:"text"`

	Type QuestionType `json:"type"`

	// Options are the answer choices, list markers already stripped.
	Options []string `json:"options"`

	// CorrectIndices are zero-based indices into Options. Always non-empty
	// and always within range for a valid question.
	CorrectIndices []int `json:"correct_indices"`

	// Explanation is shown after the question is answered.
	Explanation string `json:"explanation"`
}

// Validate checks the structural invariants: at least two options, a
// non-empty correct set, and every correct index within the option range.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question %s: empty text", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: %d options, need at least 2", q.ID, len(q.Options))
	}
	if len(q.CorrectIndices) == 0 {
		return fmt.Errorf("question %s: no correct indices", q.ID)
	}
	for _, i := range q.CorrectIndices {
		if i < 0 || i >= len(q.Options) {
			return fmt.Errorf("question %s: correct index %d out of range [0,%d)", q.ID, i, len(q.Options))
		}
	}
	return nil
}
