// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/psinha/quizforge/ent/quizsession"
	"github.com/psinha/quizforge/internal/quiz"
)

// QuizSessionCreate is the builder for creating a QuizSession entity.
type QuizSessionCreate struct {
	config
	mutation *QuizSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuizSessionCreate) SetSessionID(v string) *QuizSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *QuizSessionCreate) SetName(v string) *QuizSessionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuizSessionCreate) SetStatus(v string) *QuizSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableStatus(v *string) *QuizSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCursor sets the "cursor" field.
func (_c *QuizSessionCreate) SetCursor(v int) *QuizSessionCreate {
	_c.mutation.SetCursor(v)
	return _c
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCursor(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetCursor(*v)
	}
	return _c
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_c *QuizSessionCreate) SetRemainingSecs(v int) *QuizSessionCreate {
	_c.mutation.SetRemainingSecs(v)
	return _c
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableRemainingSecs(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetRemainingSecs(*v)
	}
	return _c
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_c *QuizSessionCreate) SetElapsedSecs(v int) *QuizSessionCreate {
	_c.mutation.SetElapsedSecs(v)
	return _c
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableElapsedSecs(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetElapsedSecs(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QuizSessionCreate) SetStartedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuizSessionCreate) SetUpdatedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableUpdatedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuizSessionCreate) SetQuestions(v []quiz.Question) *QuizSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *QuizSessionCreate) SetAnswers(v map[string][]int) *QuizSessionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *QuizSessionCreate) SetConfig(v quiz.Config) *QuizSessionCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_c *QuizSessionCreate) Mutation() *QuizSessionMutation {
	return _c.mutation
}

// Save creates the QuizSession in the database.
func (_c *QuizSessionCreate) Save(ctx context.Context) (*QuizSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSessionCreate) SaveX(ctx context.Context) *QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := quizsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		v := quizsession.DefaultCursor
		_c.mutation.SetCursor(v)
	}
	if _, ok := _c.mutation.RemainingSecs(); !ok {
		v := quizsession.DefaultRemainingSecs
		_c.mutation.SetRemainingSecs(v)
	}
	if _, ok := _c.mutation.ElapsedSecs(); !ok {
		v := quizsession.DefaultElapsedSecs
		_c.mutation.SetElapsedSecs(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quizsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "QuizSession.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := quizsession.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "QuizSession.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuizSession.status"`)}
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		return &ValidationError{Name: "cursor", err: errors.New(`ent: missing required field "QuizSession.cursor"`)}
	}
	if _, ok := _c.mutation.RemainingSecs(); !ok {
		return &ValidationError{Name: "remaining_secs", err: errors.New(`ent: missing required field "QuizSession.remaining_secs"`)}
	}
	if _, ok := _c.mutation.ElapsedSecs(); !ok {
		return &ValidationError{Name: "elapsed_secs", err: errors.New(`ent: missing required field "QuizSession.elapsed_secs"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "QuizSession.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuizSession.updated_at"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "QuizSession.questions"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "QuizSession.answers"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "QuizSession.config"`)}
	}
	return nil
}

func (_c *QuizSessionCreate) sqlSave(ctx context.Context) (*QuizSession, error) {
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

func (_c *QuizSessionCreate) createSpec() (*QuizSession, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsession.Table, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(quizsession.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Cursor(); ok {
		_spec.SetField(quizsession.FieldCursor, field.TypeInt, value)
		_node.Cursor = value
	}
	if value, ok := _c.mutation.RemainingSecs(); ok {
		_spec.SetField(quizsession.FieldRemainingSecs, field.TypeInt, value)
		_node.RemainingSecs = value
	}
	if value, ok := _c.mutation.ElapsedSecs(); ok {
		_spec.SetField(quizsession.FieldElapsedSecs, field.TypeInt, value)
		_node.ElapsedSecs = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(quizsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quizsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(quizsession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(quizsession.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(quizsession.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	return _node, _spec
}

// QuizSessionCreateBulk is the builder for creating many QuizSession entities in bulk.
type QuizSessionCreateBulk struct {
	config
	err      error
	builders []*QuizSessionCreate
}

// Save creates the QuizSession entities in the database.
func (_c *QuizSessionCreateBulk) Save(ctx context.Context) ([]*QuizSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSessionMutation)
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
func (_c *QuizSessionCreateBulk) SaveX(ctx context.Context) []*QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
