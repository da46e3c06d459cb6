// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/psinha/quizforge/ent/mistakerecord"
	"github.com/psinha/quizforge/internal/quiz"
)

// MistakeRecord is the model entity for the MistakeRecord schema.
type MistakeRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Question snapshot, so review works after bank deletion
	Question quiz.Question `json:"question,omitempty"`
	// Resets on any wrong answer; the record graduates at the mastery threshold
	ConsecutiveCorrect int `json:"consecutive_correct,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt time.Time `json:"last_reviewed_at,omitempty"`
	// Display name of the originating bank
	BankName     string `json:"bank_name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MistakeRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mistakerecord.FieldQuestion:
			values[i] = new([]byte)
		case mistakerecord.FieldID, mistakerecord.FieldConsecutiveCorrect:
			values[i] = new(sql.NullInt64)
		case mistakerecord.FieldQuestionID, mistakerecord.FieldBankName:
			values[i] = new(sql.NullString)
		case mistakerecord.FieldLastReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MistakeRecord fields.
func (_m *MistakeRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mistakerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mistakerecord.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case mistakerecord.FieldQuestion:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Question); err != nil {
					return fmt.Errorf("unmarshal field question: %w", err)
				}
			}
		case mistakerecord.FieldConsecutiveCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_correct", values[i])
			} else if value.Valid {
				_m.ConsecutiveCorrect = int(value.Int64)
			}
		case mistakerecord.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = value.Time
			}
		case mistakerecord.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MistakeRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MistakeRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MistakeRecord.
// Note that you need to call MistakeRecord.Unwrap() before calling this method if this MistakeRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MistakeRecord) Update() *MistakeRecordUpdateOne {
	return NewMistakeRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MistakeRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MistakeRecord) Unwrap() *MistakeRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MistakeRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MistakeRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MistakeRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(fmt.Sprintf("%v", _m.Question))
	builder.WriteString(", ")
	builder.WriteString("consecutive_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_reviewed_at=")
	builder.WriteString(_m.LastReviewedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("bank_name=")
	builder.WriteString(_m.BankName)
	builder.WriteByte(')')
	return builder.String()
}

// MistakeRecords is a parsable slice of MistakeRecord.
type MistakeRecords []*MistakeRecord
