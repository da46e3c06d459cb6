// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/psinha/quizforge/ent/questionbank"
	"github.com/psinha/quizforge/internal/quiz"
)

// QuestionBankCreate is the builder for creating a QuestionBank entity.
type QuestionBankCreate struct {
	config
	mutation *QuestionBankMutation
	hooks    []Hook
}

// SetBankID sets the "bank_id" field.
func (_c *QuestionBankCreate) SetBankID(v string) *QuestionBankCreate {
	_c.mutation.SetBankID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *QuestionBankCreate) SetName(v string) *QuestionBankCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionBankCreate) SetCreatedAt(v time.Time) *QuestionBankCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionBankCreate) SetNillableCreatedAt(v *time.Time) *QuestionBankCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuestionBankCreate) SetQuestions(v []quiz.Question) *QuestionBankCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// Mutation returns the QuestionBankMutation object of the builder.
func (_c *QuestionBankCreate) Mutation() *QuestionBankMutation {
	return _c.mutation
}

// Save creates the QuestionBank in the database.
func (_c *QuestionBankCreate) Save(ctx context.Context) (*QuestionBank, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionBankCreate) SaveX(ctx context.Context) *QuestionBank {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionBankCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionBankCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionBankCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionbank.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionBankCreate) check() error {
	if _, ok := _c.mutation.BankID(); !ok {
		return &ValidationError{Name: "bank_id", err: errors.New(`ent: missing required field "QuestionBank.bank_id"`)}
	}
	if v, ok := _c.mutation.BankID(); ok {
		if err := questionbank.BankIDValidator(v); err != nil {
			return &ValidationError{Name: "bank_id", err: fmt.Errorf(`ent: validator failed for field "QuestionBank.bank_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "QuestionBank.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := questionbank.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "QuestionBank.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionBank.created_at"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "QuestionBank.questions"`)}
	}
	return nil
}

func (_c *QuestionBankCreate) sqlSave(ctx context.Context) (*QuestionBank, error) {
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

func (_c *QuestionBankCreate) createSpec() (*QuestionBank, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionBank{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionbank.Table, sqlgraph.NewFieldSpec(questionbank.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BankID(); ok {
		_spec.SetField(questionbank.FieldBankID, field.TypeString, value)
		_node.BankID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(questionbank.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionbank.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(questionbank.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	return _node, _spec
}

// QuestionBankCreateBulk is the builder for creating many QuestionBank entities in bulk.
type QuestionBankCreateBulk struct {
	config
	err      error
	builders []*QuestionBankCreate
}

// Save creates the QuestionBank entities in the database.
func (_c *QuestionBankCreateBulk) Save(ctx context.Context) ([]*QuestionBank, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionBank, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionBankMutation)
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
func (_c *QuestionBankCreateBulk) SaveX(ctx context.Context) []*QuestionBank {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionBankCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionBankCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
