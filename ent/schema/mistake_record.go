package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/psinha/quizforge/internal/quiz"
)

// MistakeRecord tracks one question that is below mastery. A row exists if
// and only if the question is currently tracked; graduation deletes it.
type MistakeRecord struct {
	ent.Schema
}

func (MistakeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty(),
		field.JSON("question", quiz.Question{}).
			Comment("Question snapshot, so review works after bank deletion"),
		field.Int("consecutive_correct").
			Default(0).
			Comment("Resets on any wrong answer; the record graduates at the mastery threshold"),
		field.Time("last_reviewed_at"),
		field.String("bank_name").
			Comment("Display name of the originating bank"),
	}
}

func (MistakeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("last_reviewed_at"),
	}
}
