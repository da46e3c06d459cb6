// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/psinha/quizforge/ent/mistakerecord"
	"github.com/psinha/quizforge/ent/predicate"
	"github.com/psinha/quizforge/internal/quiz"
)

// MistakeRecordUpdate is the builder for updating MistakeRecord entities.
type MistakeRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeRecordMutation
}

// Where appends a list predicates to the MistakeRecordUpdate builder.
func (_u *MistakeRecordUpdate) Where(ps ...predicate.MistakeRecord) *MistakeRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *MistakeRecordUpdate) SetQuestionID(v string) *MistakeRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableQuestionID(v *string) *MistakeRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *MistakeRecordUpdate) SetQuestion(v quiz.Question) *MistakeRecordUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableQuestion(v *quiz.Question) *MistakeRecordUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *MistakeRecordUpdate) SetConsecutiveCorrect(v int) *MistakeRecordUpdate {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableConsecutiveCorrect(v *int) *MistakeRecordUpdate {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *MistakeRecordUpdate) AddConsecutiveCorrect(v int) *MistakeRecordUpdate {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *MistakeRecordUpdate) SetLastReviewedAt(v time.Time) *MistakeRecordUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableLastReviewedAt(v *time.Time) *MistakeRecordUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *MistakeRecordUpdate) SetBankName(v string) *MistakeRecordUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableBankName(v *string) *MistakeRecordUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// Mutation returns the MistakeRecordMutation object of the builder.
func (_u *MistakeRecordUpdate) Mutation() *MistakeRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeRecordUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := mistakerecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.question": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakerecord.Table, mistakerecord.Columns, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(mistakerecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(mistakerecord.FieldQuestion, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(mistakerecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(mistakerecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(mistakerecord.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(mistakerecord.FieldBankName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeRecordUpdateOne is the builder for updating a single MistakeRecord entity.
type MistakeRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeRecordMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *MistakeRecordUpdateOne) SetQuestionID(v string) *MistakeRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableQuestionID(v *string) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *MistakeRecordUpdateOne) SetQuestion(v quiz.Question) *MistakeRecordUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableQuestion(v *quiz.Question) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *MistakeRecordUpdateOne) SetConsecutiveCorrect(v int) *MistakeRecordUpdateOne {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableConsecutiveCorrect(v *int) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *MistakeRecordUpdateOne) AddConsecutiveCorrect(v int) *MistakeRecordUpdateOne {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *MistakeRecordUpdateOne) SetLastReviewedAt(v time.Time) *MistakeRecordUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableLastReviewedAt(v *time.Time) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *MistakeRecordUpdateOne) SetBankName(v string) *MistakeRecordUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableBankName(v *string) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// Mutation returns the MistakeRecordMutation object of the builder.
func (_u *MistakeRecordUpdateOne) Mutation() *MistakeRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeRecordUpdate builder.
func (_u *MistakeRecordUpdateOne) Where(ps ...predicate.MistakeRecord) *MistakeRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeRecordUpdateOne) Select(field string, fields ...string) *MistakeRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MistakeRecord entity.
func (_u *MistakeRecordUpdateOne) Save(ctx context.Context) (*MistakeRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeRecordUpdateOne) SaveX(ctx context.Context) *MistakeRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeRecordUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := mistakerecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.question": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeRecordUpdateOne) sqlSave(ctx context.Context) (_node *MistakeRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakerecord.Table, mistakerecord.Columns, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MistakeRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistakerecord.FieldID)
		for _, f := range fields {
			if !mistakerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistakerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(mistakerecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(mistakerecord.FieldQuestion, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(mistakerecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(mistakerecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(mistakerecord.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(mistakerecord.FieldBankName, field.TypeString, value)
	}
	_node = &MistakeRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
