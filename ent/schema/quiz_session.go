package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/psinha/quizforge/internal/quiz"
)

// QuizSession is a saved exam attempt: the question snapshot plus the full
// resumable state (cursor, answers, timer counters, config).
type QuizSession struct {
	ent.Schema
}

func (QuizSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("status").
			Default(string(quiz.StatusActive)),
		field.Int("cursor").
			Default(0),
		field.Int("remaining_secs").
			Default(0),
		field.Int("elapsed_secs").
			Default(0),
		field.Time("started_at"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.JSON("questions", []quiz.Question{}).
			Comment("Snapshot decoupled from the originating bank"),
		field.JSON("answers", map[string][]int{}).
			Comment("Question ID to selected option indices"),
		field.JSON("config", quiz.Config{}),
	}
}

func (QuizSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("updated_at"),
	}
}
