// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/psinha/quizforge/ent/predicate"
	"github.com/psinha/quizforge/ent/quizsession"
	"github.com/psinha/quizforge/internal/quiz"
)

// QuizSessionUpdate is the builder for updating QuizSession entities.
type QuizSessionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSessionMutation
}

// Where appends a list predicates to the QuizSessionUpdate builder.
func (_u *QuizSessionUpdate) Where(ps ...predicate.QuizSession) *QuizSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *QuizSessionUpdate) SetName(v string) *QuizSessionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableName(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizSessionUpdate) SetStatus(v string) *QuizSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableStatus(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *QuizSessionUpdate) SetCursor(v int) *QuizSessionUpdate {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableCursor(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *QuizSessionUpdate) AddCursor(v int) *QuizSessionUpdate {
	_u.mutation.AddCursor(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *QuizSessionUpdate) SetRemainingSecs(v int) *QuizSessionUpdate {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableRemainingSecs(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *QuizSessionUpdate) AddRemainingSecs(v int) *QuizSessionUpdate {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *QuizSessionUpdate) SetElapsedSecs(v int) *QuizSessionUpdate {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableElapsedSecs(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *QuizSessionUpdate) AddElapsedSecs(v int) *QuizSessionUpdate {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizSessionUpdate) SetStartedAt(v time.Time) *QuizSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableStartedAt(v *time.Time) *QuizSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizSessionUpdate) SetUpdatedAt(v time.Time) *QuizSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizSessionUpdate) SetQuestions(v []quiz.Question) *QuizSessionUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizSessionUpdate) AppendQuestions(v []quiz.Question) *QuizSessionUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizSessionUpdate) SetAnswers(v map[string][]int) *QuizSessionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *QuizSessionUpdate) SetConfig(v quiz.Config) *QuizSessionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableConfig(v *quiz.Config) *QuizSessionUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_u *QuizSessionUpdate) Mutation() *QuizSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := quizsession.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "QuizSession.name": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsession.Table, quizsession.Columns, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(quizsession.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(quizsession.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(quizsession.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(quizsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(quizsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(quizsession.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(quizsession.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quizsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizsession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizsession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizsession.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(quizsession.FieldConfig, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSessionUpdateOne is the builder for updating a single QuizSession entity.
type QuizSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSessionMutation
}

// SetName sets the "name" field.
func (_u *QuizSessionUpdateOne) SetName(v string) *QuizSessionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableName(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizSessionUpdateOne) SetStatus(v string) *QuizSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableStatus(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *QuizSessionUpdateOne) SetCursor(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableCursor(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *QuizSessionUpdateOne) AddCursor(v int) *QuizSessionUpdateOne {
	_u.mutation.AddCursor(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *QuizSessionUpdateOne) SetRemainingSecs(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableRemainingSecs(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *QuizSessionUpdateOne) AddRemainingSecs(v int) *QuizSessionUpdateOne {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *QuizSessionUpdateOne) SetElapsedSecs(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableElapsedSecs(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *QuizSessionUpdateOne) AddElapsedSecs(v int) *QuizSessionUpdateOne {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizSessionUpdateOne) SetStartedAt(v time.Time) *QuizSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableStartedAt(v *time.Time) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizSessionUpdateOne) SetUpdatedAt(v time.Time) *QuizSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizSessionUpdateOne) SetQuestions(v []quiz.Question) *QuizSessionUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizSessionUpdateOne) AppendQuestions(v []quiz.Question) *QuizSessionUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizSessionUpdateOne) SetAnswers(v map[string][]int) *QuizSessionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *QuizSessionUpdateOne) SetConfig(v quiz.Config) *QuizSessionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableConfig(v *quiz.Config) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_u *QuizSessionUpdateOne) Mutation() *QuizSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSessionUpdate builder.
func (_u *QuizSessionUpdateOne) Where(ps ...predicate.QuizSession) *QuizSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSessionUpdateOne) Select(field string, fields ...string) *QuizSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSession entity.
func (_u *QuizSessionUpdateOne) Save(ctx context.Context) (*QuizSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionUpdateOne) SaveX(ctx context.Context) *QuizSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := quizsession.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "QuizSession.name": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionUpdateOne) sqlSave(ctx context.Context) (_node *QuizSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsession.Table, quizsession.Columns, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsession.FieldID)
		for _, f := range fields {
			if !quizsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsession.FieldID {
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
		_spec.SetField(quizsession.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(quizsession.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(quizsession.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(quizsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(quizsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(quizsession.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(quizsession.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quizsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizsession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizsession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizsession.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(quizsession.FieldConfig, field.TypeJSON, value)
	}
	_node = &QuizSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
