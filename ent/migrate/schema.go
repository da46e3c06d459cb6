// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// MistakeRecordsColumns holds the columns for the "mistake_records" table.
	MistakeRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeJSON},
		{Name: "consecutive_correct", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime},
		{Name: "bank_name", Type: field.TypeString},
	}
	// MistakeRecordsTable holds the schema information for the "mistake_records" table.
	MistakeRecordsTable = &schema.Table{
		Name:       "mistake_records",
		Columns:    MistakeRecordsColumns,
		PrimaryKey: []*schema.Column{MistakeRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistakerecord_question_id",
				Unique:  false,
				Columns: []*schema.Column{MistakeRecordsColumns[1]},
			},
			{
				Name:    "mistakerecord_last_reviewed_at",
				Unique:  false,
				Columns: []*schema.Column{MistakeRecordsColumns[4]},
			},
		},
	}
	// QuestionBanksColumns holds the columns for the "question_banks" table.
	QuestionBanksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bank_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "questions", Type: field.TypeJSON},
	}
	// QuestionBanksTable holds the schema information for the "question_banks" table.
	QuestionBanksTable = &schema.Table{
		Name:       "question_banks",
		Columns:    QuestionBanksColumns,
		PrimaryKey: []*schema.Column{QuestionBanksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionbank_bank_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionBanksColumns[1]},
			},
			{
				Name:    "questionbank_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionBanksColumns[3]},
			},
		},
	}
	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	QuizSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "cursor", Type: field.TypeInt, Default: 0},
		{Name: "remaining_secs", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_secs", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "config", Type: field.TypeJSON},
	}
	// QuizSessionsTable holds the schema information for the "quiz_sessions" table.
	QuizSessionsTable = &schema.Table{
		Name:       "quiz_sessions",
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsession_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[1]},
			},
			{
				Name:    "quizsession_updated_at",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MistakeRecordsTable,
		QuestionBanksTable,
		QuizSessionsTable,
	}
)

func init() {
}
