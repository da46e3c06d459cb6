// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/psinha/quizforge/ent/llmrequestevent"
	"github.com/psinha/quizforge/ent/mistakerecord"
	"github.com/psinha/quizforge/ent/questionbank"
	"github.com/psinha/quizforge/ent/quizsession"
	"github.com/psinha/quizforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	mistakerecordFields := schema.MistakeRecord{}.Fields()
	_ = mistakerecordFields
	// mistakerecordDescQuestionID is the schema descriptor for question_id field.
	mistakerecordDescQuestionID := mistakerecordFields[0].Descriptor()
	// mistakerecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	mistakerecord.QuestionIDValidator = mistakerecordDescQuestionID.Validators[0].(func(string) error)
	// mistakerecordDescConsecutiveCorrect is the schema descriptor for consecutive_correct field.
	mistakerecordDescConsecutiveCorrect := mistakerecordFields[2].Descriptor()
	// mistakerecord.DefaultConsecutiveCorrect holds the default value on creation for the consecutive_correct field.
	mistakerecord.DefaultConsecutiveCorrect = mistakerecordDescConsecutiveCorrect.Default.(int)
	questionbankFields := schema.QuestionBank{}.Fields()
	_ = questionbankFields
	// questionbankDescBankID is the schema descriptor for bank_id field.
	questionbankDescBankID := questionbankFields[0].Descriptor()
	// questionbank.BankIDValidator is a validator for the "bank_id" field. It is called by the builders before save.
	questionbank.BankIDValidator = questionbankDescBankID.Validators[0].(func(string) error)
	// questionbankDescName is the schema descriptor for name field.
	questionbankDescName := questionbankFields[1].Descriptor()
	// questionbank.NameValidator is a validator for the "name" field. It is called by the builders before save.
	questionbank.NameValidator = questionbankDescName.Validators[0].(func(string) error)
	// questionbankDescCreatedAt is the schema descriptor for created_at field.
	questionbankDescCreatedAt := questionbankFields[2].Descriptor()
	// questionbank.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionbank.DefaultCreatedAt = questionbankDescCreatedAt.Default.(func() time.Time)
	quizsessionFields := schema.QuizSession{}.Fields()
	_ = quizsessionFields
	// quizsessionDescSessionID is the schema descriptor for session_id field.
	quizsessionDescSessionID := quizsessionFields[0].Descriptor()
	// quizsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsession.SessionIDValidator = quizsessionDescSessionID.Validators[0].(func(string) error)
	// quizsessionDescName is the schema descriptor for name field.
	quizsessionDescName := quizsessionFields[1].Descriptor()
	// quizsession.NameValidator is a validator for the "name" field. It is called by the builders before save.
	quizsession.NameValidator = quizsessionDescName.Validators[0].(func(string) error)
	// quizsessionDescStatus is the schema descriptor for status field.
	quizsessionDescStatus := quizsessionFields[2].Descriptor()
	// quizsession.DefaultStatus holds the default value on creation for the status field.
	quizsession.DefaultStatus = quizsessionDescStatus.Default.(string)
	// quizsessionDescCursor is the schema descriptor for cursor field.
	quizsessionDescCursor := quizsessionFields[3].Descriptor()
	// quizsession.DefaultCursor holds the default value on creation for the cursor field.
	quizsession.DefaultCursor = quizsessionDescCursor.Default.(int)
	// quizsessionDescRemainingSecs is the schema descriptor for remaining_secs field.
	quizsessionDescRemainingSecs := quizsessionFields[4].Descriptor()
	// quizsession.DefaultRemainingSecs holds the default value on creation for the remaining_secs field.
	quizsession.DefaultRemainingSecs = quizsessionDescRemainingSecs.Default.(int)
	// quizsessionDescElapsedSecs is the schema descriptor for elapsed_secs field.
	quizsessionDescElapsedSecs := quizsessionFields[5].Descriptor()
	// quizsession.DefaultElapsedSecs holds the default value on creation for the elapsed_secs field.
	quizsession.DefaultElapsedSecs = quizsessionDescElapsedSecs.Default.(int)
	// quizsessionDescUpdatedAt is the schema descriptor for updated_at field.
	quizsessionDescUpdatedAt := quizsessionFields[7].Descriptor()
	// quizsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quizsession.DefaultUpdatedAt = quizsessionDescUpdatedAt.Default.(func() time.Time)
	// quizsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quizsession.UpdateDefaultUpdatedAt = quizsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
