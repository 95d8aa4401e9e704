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
	"github.com/recallkit/recallkit/ent/predicate"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/ent/recallpoint"
)

// RecallPointUpdate is the builder for updating RecallPoint entities.
type RecallPointUpdate struct {
	config
	hooks    []Hook
	mutation *RecallPointMutation
}

// Where appends a list predicates to the RecallPointUpdate builder.
func (_u *RecallPointUpdate) Where(ps ...predicate.RecallPoint) *RecallPointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *RecallPointUpdate) SetContent(v string) *RecallPointUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableContent(v *string) *RecallPointUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *RecallPointUpdate) SetContext(v string) *RecallPointUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableContext(v *string) *RecallPointUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RecallPointUpdate) SetDifficulty(v float64) *RecallPointUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableDifficulty(v *float64) *RecallPointUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *RecallPointUpdate) AddDifficulty(v float64) *RecallPointUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetStability sets the "stability" field.
func (_u *RecallPointUpdate) SetStability(v float64) *RecallPointUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableStability(v *float64) *RecallPointUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *RecallPointUpdate) AddStability(v float64) *RecallPointUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDue sets the "due" field.
func (_u *RecallPointUpdate) SetDue(v time.Time) *RecallPointUpdate {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableDue(v *time.Time) *RecallPointUpdate {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *RecallPointUpdate) SetLastReview(v time.Time) *RecallPointUpdate {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableLastReview(v *time.Time) *RecallPointUpdate {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *RecallPointUpdate) ClearLastReview() *RecallPointUpdate {
	_u.mutation.ClearLastReview()
	return _u
}

// SetReps sets the "reps" field.
func (_u *RecallPointUpdate) SetReps(v int) *RecallPointUpdate {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableReps(v *int) *RecallPointUpdate {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *RecallPointUpdate) AddReps(v int) *RecallPointUpdate {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *RecallPointUpdate) SetLapses(v int) *RecallPointUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableLapses(v *int) *RecallPointUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *RecallPointUpdate) AddLapses(v int) *RecallPointUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetState sets the "state" field.
func (_u *RecallPointUpdate) SetState(v recallpoint.State) *RecallPointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RecallPointUpdate) SetNillableState(v *recallpoint.State) *RecallPointUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRecallHistory sets the "recall_history" field.
func (_u *RecallPointUpdate) SetRecallHistory(v []map[string]interface{}) *RecallPointUpdate {
	_u.mutation.SetRecallHistory(v)
	return _u
}

// AppendRecallHistory appends value to the "recall_history" field.
func (_u *RecallPointUpdate) AppendRecallHistory(v []map[string]interface{}) *RecallPointUpdate {
	_u.mutation.AppendRecallHistory(v)
	return _u
}

// ClearRecallHistory clears the value of the "recall_history" field.
func (_u *RecallPointUpdate) ClearRecallHistory() *RecallPointUpdate {
	_u.mutation.ClearRecallHistory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecallPointUpdate) SetUpdatedAt(v time.Time) *RecallPointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by IDs.
func (_u *RecallPointUpdate) AddOutcomeIDs(ids ...string) *RecallPointUpdate {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the RecallOutcome entity.
func (_u *RecallPointUpdate) AddOutcomes(v ...*RecallOutcome) *RecallPointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the RecallPointMutation object of the builder.
func (_u *RecallPointUpdate) Mutation() *RecallPointMutation {
	return _u.mutation
}

// ClearOutcomes clears all "outcomes" edges to the RecallOutcome entity.
func (_u *RecallPointUpdate) ClearOutcomes() *RecallPointUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to RecallOutcome entities by IDs.
func (_u *RecallPointUpdate) RemoveOutcomeIDs(ids ...string) *RecallPointUpdate {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to RecallOutcome entities.
func (_u *RecallPointUpdate) RemoveOutcomes(v ...*RecallOutcome) *RecallPointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecallPointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallPointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecallPointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallPointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecallPointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recallpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallPointUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := recallpoint.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "RecallPoint.state": %w`, err)}
		}
	}
	if _u.mutation.RecallSetCleared() && len(_u.mutation.RecallSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallPoint.recall_set"`)
	}
	return nil
}

func (_u *RecallPointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recallpoint.Table, recallpoint.Columns, sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(recallpoint.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(recallpoint.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(recallpoint.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(recallpoint.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(recallpoint.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(recallpoint.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(recallpoint.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(recallpoint.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(recallpoint.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(recallpoint.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(recallpoint.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(recallpoint.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(recallpoint.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(recallpoint.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecallHistory(); ok {
		_spec.SetField(recallpoint.FieldRecallHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecallHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recallpoint.FieldRecallHistory, value)
		})
	}
	if _u.mutation.RecallHistoryCleared() {
		_spec.ClearField(recallpoint.FieldRecallHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recallpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recallpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecallPointUpdateOne is the builder for updating a single RecallPoint entity.
type RecallPointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecallPointMutation
}

// SetContent sets the "content" field.
func (_u *RecallPointUpdateOne) SetContent(v string) *RecallPointUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableContent(v *string) *RecallPointUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *RecallPointUpdateOne) SetContext(v string) *RecallPointUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableContext(v *string) *RecallPointUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RecallPointUpdateOne) SetDifficulty(v float64) *RecallPointUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableDifficulty(v *float64) *RecallPointUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *RecallPointUpdateOne) AddDifficulty(v float64) *RecallPointUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetStability sets the "stability" field.
func (_u *RecallPointUpdateOne) SetStability(v float64) *RecallPointUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableStability(v *float64) *RecallPointUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *RecallPointUpdateOne) AddStability(v float64) *RecallPointUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDue sets the "due" field.
func (_u *RecallPointUpdateOne) SetDue(v time.Time) *RecallPointUpdateOne {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableDue(v *time.Time) *RecallPointUpdateOne {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *RecallPointUpdateOne) SetLastReview(v time.Time) *RecallPointUpdateOne {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableLastReview(v *time.Time) *RecallPointUpdateOne {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *RecallPointUpdateOne) ClearLastReview() *RecallPointUpdateOne {
	_u.mutation.ClearLastReview()
	return _u
}

// SetReps sets the "reps" field.
func (_u *RecallPointUpdateOne) SetReps(v int) *RecallPointUpdateOne {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableReps(v *int) *RecallPointUpdateOne {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *RecallPointUpdateOne) AddReps(v int) *RecallPointUpdateOne {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *RecallPointUpdateOne) SetLapses(v int) *RecallPointUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableLapses(v *int) *RecallPointUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *RecallPointUpdateOne) AddLapses(v int) *RecallPointUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetState sets the "state" field.
func (_u *RecallPointUpdateOne) SetState(v recallpoint.State) *RecallPointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RecallPointUpdateOne) SetNillableState(v *recallpoint.State) *RecallPointUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRecallHistory sets the "recall_history" field.
func (_u *RecallPointUpdateOne) SetRecallHistory(v []map[string]interface{}) *RecallPointUpdateOne {
	_u.mutation.SetRecallHistory(v)
	return _u
}

// AppendRecallHistory appends value to the "recall_history" field.
func (_u *RecallPointUpdateOne) AppendRecallHistory(v []map[string]interface{}) *RecallPointUpdateOne {
	_u.mutation.AppendRecallHistory(v)
	return _u
}

// ClearRecallHistory clears the value of the "recall_history" field.
func (_u *RecallPointUpdateOne) ClearRecallHistory() *RecallPointUpdateOne {
	_u.mutation.ClearRecallHistory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecallPointUpdateOne) SetUpdatedAt(v time.Time) *RecallPointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by IDs.
func (_u *RecallPointUpdateOne) AddOutcomeIDs(ids ...string) *RecallPointUpdateOne {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the RecallOutcome entity.
func (_u *RecallPointUpdateOne) AddOutcomes(v ...*RecallOutcome) *RecallPointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the RecallPointMutation object of the builder.
func (_u *RecallPointUpdateOne) Mutation() *RecallPointMutation {
	return _u.mutation
}

// ClearOutcomes clears all "outcomes" edges to the RecallOutcome entity.
func (_u *RecallPointUpdateOne) ClearOutcomes() *RecallPointUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to RecallOutcome entities by IDs.
func (_u *RecallPointUpdateOne) RemoveOutcomeIDs(ids ...string) *RecallPointUpdateOne {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to RecallOutcome entities.
func (_u *RecallPointUpdateOne) RemoveOutcomes(v ...*RecallOutcome) *RecallPointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Where appends a list predicates to the RecallPointUpdate builder.
func (_u *RecallPointUpdateOne) Where(ps ...predicate.RecallPoint) *RecallPointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecallPointUpdateOne) Select(field string, fields ...string) *RecallPointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecallPoint entity.
func (_u *RecallPointUpdateOne) Save(ctx context.Context) (*RecallPoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallPointUpdateOne) SaveX(ctx context.Context) *RecallPoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecallPointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallPointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecallPointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recallpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallPointUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := recallpoint.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "RecallPoint.state": %w`, err)}
		}
	}
	if _u.mutation.RecallSetCleared() && len(_u.mutation.RecallSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallPoint.recall_set"`)
	}
	return nil
}

func (_u *RecallPointUpdateOne) sqlSave(ctx context.Context) (_node *RecallPoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recallpoint.Table, recallpoint.Columns, sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecallPoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recallpoint.FieldID)
		for _, f := range fields {
			if !recallpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recallpoint.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(recallpoint.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(recallpoint.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(recallpoint.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(recallpoint.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(recallpoint.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(recallpoint.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(recallpoint.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(recallpoint.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(recallpoint.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(recallpoint.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(recallpoint.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(recallpoint.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(recallpoint.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(recallpoint.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecallHistory(); ok {
		_spec.SetField(recallpoint.FieldRecallHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecallHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recallpoint.FieldRecallHistory, value)
		})
	}
	if _u.mutation.RecallHistoryCleared() {
		_spec.ClearField(recallpoint.FieldRecallHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recallpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecallPoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recallpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
