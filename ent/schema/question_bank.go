package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/psinha/quizforge/internal/quiz"
)

// QuestionBank is a named, persisted collection of extracted questions.
// Questions are stored as a JSON snapshot; banks are renamed or deleted but
// their question sequence is never mutated in place.
type QuestionBank struct {
	ent.Schema
}

func (QuestionBank) Fields() []ent.Field {
	return []ent.Field{
		field.String("bank_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable identifier, independent of the row ID"),
		field.String("name").
			NotEmpty().
			Comment("User-editable display name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.JSON("questions", []quiz.Question{}).
			Comment("Ordered question snapshot"),
	}
}

func (QuestionBank) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bank_id"),
		index.Fields("created_at"),
	}
}
