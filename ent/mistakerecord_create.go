// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/psinha/quizforge/ent/mistakerecord"
	"github.com/psinha/quizforge/internal/quiz"
)

// MistakeRecordCreate is the builder for creating a MistakeRecord entity.
type MistakeRecordCreate struct {
	config
	mutation *MistakeRecordMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *MistakeRecordCreate) SetQuestionID(v string) *MistakeRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *MistakeRecordCreate) SetQuestion(v quiz.Question) *MistakeRecordCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_c *MistakeRecordCreate) SetConsecutiveCorrect(v int) *MistakeRecordCreate {
	_c.mutation.SetConsecutiveCorrect(v)
	return _c
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_c *MistakeRecordCreate) SetNillableConsecutiveCorrect(v *int) *MistakeRecordCreate {
	if v != nil {
		_c.SetConsecutiveCorrect(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *MistakeRecordCreate) SetLastReviewedAt(v time.Time) *MistakeRecordCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *MistakeRecordCreate) SetBankName(v string) *MistakeRecordCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// Mutation returns the MistakeRecordMutation object of the builder.
func (_c *MistakeRecordCreate) Mutation() *MistakeRecordMutation {
	return _c.mutation
}

// Save creates the MistakeRecord in the database.
func (_c *MistakeRecordCreate) Save(ctx context.Context) (*MistakeRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeRecordCreate) SaveX(ctx context.Context) *MistakeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeRecordCreate) defaults() {
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		v := mistakerecord.DefaultConsecutiveCorrect
		_c.mutation.SetConsecutiveCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeRecordCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "MistakeRecord.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := mistakerecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "MistakeRecord.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "MistakeRecord.consecutive_correct"`)}
	}
	if _, ok := _c.mutation.LastReviewedAt(); !ok {
		return &ValidationError{Name: "last_reviewed_at", err: errors.New(`ent: missing required field "MistakeRecord.last_reviewed_at"`)}
	}
	if _, ok := _c.mutation.BankName(); !ok {
		return &ValidationError{Name: "bank_name", err: errors.New(`ent: missing required field "MistakeRecord.bank_name"`)}
	}
	return nil
}

func (_c *MistakeRecordCreate) sqlSave(ctx context.Context) (*MistakeRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MistakeRecordCreate) createSpec() (*MistakeRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MistakeRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistakerecord.Table, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(mistakerecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(mistakerecord.FieldQuestion, field.TypeJSON, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(mistakerecord.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(mistakerecord.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(mistakerecord.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	return _node, _spec
}

// MistakeRecordCreateBulk is the builder for creating many MistakeRecord entities in bulk.
type MistakeRecordCreateBulk struct {
	config
	err      error
	builders []*MistakeRecordCreate
}

// Save creates the MistakeRecord entities in the database.
func (_c *MistakeRecordCreateBulk) Save(ctx context.Context) ([]*MistakeRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MistakeRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MistakeRecordCreateBulk) SaveX(ctx context.Context) []*MistakeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
