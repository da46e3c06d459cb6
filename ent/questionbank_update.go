// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/psinha/quizforge/ent/predicate"
	"github.com/psinha/quizforge/ent/questionbank"
	"github.com/psinha/quizforge/internal/quiz"
)

// QuestionBankUpdate is the builder for updating QuestionBank entities.
type QuestionBankUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionBankMutation
}

// Where appends a list predicates to the QuestionBankUpdate builder.
func (_u *QuestionBankUpdate) Where(ps ...predicate.QuestionBank) *QuestionBankUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *QuestionBankUpdate) SetName(v string) *QuestionBankUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QuestionBankUpdate) SetNillableName(v *string) *QuestionBankUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuestionBankUpdate) SetQuestions(v []quiz.Question) *QuestionBankUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuestionBankUpdate) AppendQuestions(v []quiz.Question) *QuestionBankUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// Mutation returns the QuestionBankMutation object of the builder.
func (_u *QuestionBankUpdate) Mutation() *QuestionBankMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionBankUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionBankUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionBankUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionBankUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionBankUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := questionbank.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "QuestionBank.name": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionBankUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionbank.Table, questionbank.Columns, sqlgraph.NewFieldSpec(questionbank.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(questionbank.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(questionbank.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbank.FieldQuestions, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionbank.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionBankUpdateOne is the builder for updating a single QuestionBank entity.
type QuestionBankUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionBankMutation
}

// SetName sets the "name" field.
func (_u *QuestionBankUpdateOne) SetName(v string) *QuestionBankUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QuestionBankUpdateOne) SetNillableName(v *string) *QuestionBankUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuestionBankUpdateOne) SetQuestions(v []quiz.Question) *QuestionBankUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuestionBankUpdateOne) AppendQuestions(v []quiz.Question) *QuestionBankUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// Mutation returns the QuestionBankMutation object of the builder.
func (_u *QuestionBankUpdateOne) Mutation() *QuestionBankMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionBankUpdate builder.
func (_u *QuestionBankUpdateOne) Where(ps ...predicate.QuestionBank) *QuestionBankUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionBankUpdateOne) Select(field string, fields ...string) *QuestionBankUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionBank entity.
func (_u *QuestionBankUpdateOne) Save(ctx context.Context) (*QuestionBank, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionBankUpdateOne) SaveX(ctx context.Context) *QuestionBank {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionBankUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionBankUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionBankUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := questionbank.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "QuestionBank.name": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionBankUpdateOne) sqlSave(ctx context.Context) (_node *QuestionBank, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionbank.Table, questionbank.Columns, sqlgraph.NewFieldSpec(questionbank.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionBank.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionbank.FieldID)
		for _, f := range fields {
			if !questionbank.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionbank.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(questionbank.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(questionbank.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbank.FieldQuestions, value)
		})
	}
	_node = &QuestionBank{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionbank.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
