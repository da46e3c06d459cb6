// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MistakeRecord is the predicate function for mistakerecord builders.
type MistakeRecord func(*sql.Selector)

// QuestionBank is the predicate function for questionbank builders.
type QuestionBank func(*sql.Selector)

// QuizSession is the predicate function for quizsession builders.
type QuizSession func(*sql.Selector)
