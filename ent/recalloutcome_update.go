// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallkit/recallkit/ent/predicate"
	"github.com/recallkit/recallkit/ent/recalloutcome"
)

// RecallOutcomeUpdate is the builder for updating RecallOutcome entities.
type RecallOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *RecallOutcomeMutation
}

// Where appends a list predicates to the RecallOutcomeUpdate builder.
func (_u *RecallOutcomeUpdate) Where(ps ...predicate.RecallOutcome) *RecallOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the RecallOutcomeMutation object of the builder.
func (_u *RecallOutcomeUpdate) Mutation() *RecallOutcomeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecallOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecallOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallOutcomeUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.session"`)
	}
	if _u.mutation.RecallPointCleared() && len(_u.mutation.RecallPointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.recall_point"`)
	}
	return nil
}

func (_u *RecallOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recalloutcome.Table, recalloutcome.Columns, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(recalloutcome.FieldRating, field.TypeEnum)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(recalloutcome.FieldReasoning, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recalloutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecallOutcomeUpdateOne is the builder for updating a single RecallOutcome entity.
type RecallOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecallOutcomeMutation
}

// Mutation returns the RecallOutcomeMutation object of the builder.
func (_u *RecallOutcomeUpdateOne) Mutation() *RecallOutcomeMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecallOutcomeUpdate builder.
func (_u *RecallOutcomeUpdateOne) Where(ps ...predicate.RecallOutcome) *RecallOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecallOutcomeUpdateOne) Select(field string, fields ...string) *RecallOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecallOutcome entity.
func (_u *RecallOutcomeUpdateOne) Save(ctx context.Context) (*RecallOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallOutcomeUpdateOne) SaveX(ctx context.Context) *RecallOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecallOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallOutcomeUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.session"`)
	}
	if _u.mutation.RecallPointCleared() && len(_u.mutation.RecallPointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.recall_point"`)
	}
	return nil
}

func (_u *RecallOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *RecallOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recalloutcome.Table, recalloutcome.Columns, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecallOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recalloutcome.FieldID)
		for _, f := range fields {
			if !recalloutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recalloutcome.FieldID {
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
	if _u.mutation.RatingCleared() {
		_spec.ClearField(recalloutcome.FieldRating, field.TypeEnum)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(recalloutcome.FieldReasoning, field.TypeString)
	}
	_node = &RecallOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recalloutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
