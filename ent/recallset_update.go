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
	"github.com/recallkit/recallkit/ent/predicate"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/ent/studysession"
)

// RecallSetUpdate is the builder for updating RecallSet entities.
type RecallSetUpdate struct {
	config
	hooks    []Hook
	mutation *RecallSetMutation
}

// Where appends a list predicates to the RecallSetUpdate builder.
func (_u *RecallSetUpdate) Where(ps ...predicate.RecallSet) *RecallSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RecallSetUpdate) SetName(v string) *RecallSetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecallSetUpdate) SetNillableName(v *string) *RecallSetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecallSetUpdate) SetDescription(v string) *RecallSetUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecallSetUpdate) SetNillableDescription(v *string) *RecallSetUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecallSetUpdate) SetStatus(v recallset.Status) *RecallSetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecallSetUpdate) SetNillableStatus(v *recallset.Status) *RecallSetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDiscussionPrompt sets the "discussion_prompt" field.
func (_u *RecallSetUpdate) SetDiscussionPrompt(v string) *RecallSetUpdate {
	_u.mutation.SetDiscussionPrompt(v)
	return _u
}

// SetNillableDiscussionPrompt sets the "discussion_prompt" field if the given value is not nil.
func (_u *RecallSetUpdate) SetNillableDiscussionPrompt(v *string) *RecallSetUpdate {
	if v != nil {
		_u.SetDiscussionPrompt(*v)
	}
	return _u
}

// ClearDiscussionPrompt clears the value of the "discussion_prompt" field.
func (_u *RecallSetUpdate) ClearDiscussionPrompt() *RecallSetUpdate {
	_u.mutation.ClearDiscussionPrompt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecallSetUpdate) SetUpdatedAt(v time.Time) *RecallSetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPointIDs adds the "points" edge to the RecallPoint entity by IDs.
func (_u *RecallSetUpdate) AddPointIDs(ids ...string) *RecallSetUpdate {
	_u.mutation.AddPointIDs(ids...)
	return _u
}

// AddPoints adds the "points" edges to the RecallPoint entity.
func (_u *RecallSetUpdate) AddPoints(v ...*RecallPoint) *RecallSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPointIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the StudySession entity by IDs.
func (_u *RecallSetUpdate) AddSessionIDs(ids ...string) *RecallSetUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the StudySession entity.
func (_u *RecallSetUpdate) AddSessions(v ...*StudySession) *RecallSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the RecallSetMutation object of the builder.
func (_u *RecallSetUpdate) Mutation() *RecallSetMutation {
	return _u.mutation
}

// ClearPoints clears all "points" edges to the RecallPoint entity.
func (_u *RecallSetUpdate) ClearPoints() *RecallSetUpdate {
	_u.mutation.ClearPoints()
	return _u
}

// RemovePointIDs removes the "points" edge to RecallPoint entities by IDs.
func (_u *RecallSetUpdate) RemovePointIDs(ids ...string) *RecallSetUpdate {
	_u.mutation.RemovePointIDs(ids...)
	return _u
}

// RemovePoints removes "points" edges to RecallPoint entities.
func (_u *RecallSetUpdate) RemovePoints(v ...*RecallPoint) *RecallSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePointIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the StudySession entity.
func (_u *RecallSetUpdate) ClearSessions() *RecallSetUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to StudySession entities by IDs.
func (_u *RecallSetUpdate) RemoveSessionIDs(ids ...string) *RecallSetUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to StudySession entities.
func (_u *RecallSetUpdate) RemoveSessions(v ...*StudySession) *RecallSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecallSetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecallSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecallSetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recallset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallSetUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recallset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecallSet.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecallSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recallset.Table, recallset.Columns, sqlgraph.NewFieldSpec(recallset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recallset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recallset.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recallset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscussionPrompt(); ok {
		_spec.SetField(recallset.FieldDiscussionPrompt, field.TypeString, value)
	}
	if _u.mutation.DiscussionPromptCleared() {
		_spec.ClearField(recallset.FieldDiscussionPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recallset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPointsIDs(); len(nodes) > 0 && !_u.mutation.PointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recallset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecallSetUpdateOne is the builder for updating a single RecallSet entity.
type RecallSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecallSetMutation
}

// SetName sets the "name" field.
func (_u *RecallSetUpdateOne) SetName(v string) *RecallSetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecallSetUpdateOne) SetNillableName(v *string) *RecallSetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecallSetUpdateOne) SetDescription(v string) *RecallSetUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecallSetUpdateOne) SetNillableDescription(v *string) *RecallSetUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecallSetUpdateOne) SetStatus(v recallset.Status) *RecallSetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecallSetUpdateOne) SetNillableStatus(v *recallset.Status) *RecallSetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDiscussionPrompt sets the "discussion_prompt" field.
func (_u *RecallSetUpdateOne) SetDiscussionPrompt(v string) *RecallSetUpdateOne {
	_u.mutation.SetDiscussionPrompt(v)
	return _u
}

// SetNillableDiscussionPrompt sets the "discussion_prompt" field if the given value is not nil.
func (_u *RecallSetUpdateOne) SetNillableDiscussionPrompt(v *string) *RecallSetUpdateOne {
	if v != nil {
		_u.SetDiscussionPrompt(*v)
	}
	return _u
}

// ClearDiscussionPrompt clears the value of the "discussion_prompt" field.
func (_u *RecallSetUpdateOne) ClearDiscussionPrompt() *RecallSetUpdateOne {
	_u.mutation.ClearDiscussionPrompt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecallSetUpdateOne) SetUpdatedAt(v time.Time) *RecallSetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPointIDs adds the "points" edge to the RecallPoint entity by IDs.
func (_u *RecallSetUpdateOne) AddPointIDs(ids ...string) *RecallSetUpdateOne {
	_u.mutation.AddPointIDs(ids...)
	return _u
}

// AddPoints adds the "points" edges to the RecallPoint entity.
func (_u *RecallSetUpdateOne) AddPoints(v ...*RecallPoint) *RecallSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPointIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the StudySession entity by IDs.
func (_u *RecallSetUpdateOne) AddSessionIDs(ids ...string) *RecallSetUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the StudySession entity.
func (_u *RecallSetUpdateOne) AddSessions(v ...*StudySession) *RecallSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the RecallSetMutation object of the builder.
func (_u *RecallSetUpdateOne) Mutation() *RecallSetMutation {
	return _u.mutation
}

// ClearPoints clears all "points" edges to the RecallPoint entity.
func (_u *RecallSetUpdateOne) ClearPoints() *RecallSetUpdateOne {
	_u.mutation.ClearPoints()
	return _u
}

// RemovePointIDs removes the "points" edge to RecallPoint entities by IDs.
func (_u *RecallSetUpdateOne) RemovePointIDs(ids ...string) *RecallSetUpdateOne {
	_u.mutation.RemovePointIDs(ids...)
	return _u
}

// RemovePoints removes "points" edges to RecallPoint entities.
func (_u *RecallSetUpdateOne) RemovePoints(v ...*RecallPoint) *RecallSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePointIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the StudySession entity.
func (_u *RecallSetUpdateOne) ClearSessions() *RecallSetUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to StudySession entities by IDs.
func (_u *RecallSetUpdateOne) RemoveSessionIDs(ids ...string) *RecallSetUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to StudySession entities.
func (_u *RecallSetUpdateOne) RemoveSessions(v ...*StudySession) *RecallSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the RecallSetUpdate builder.
func (_u *RecallSetUpdateOne) Where(ps ...predicate.RecallSet) *RecallSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecallSetUpdateOne) Select(field string, fields ...string) *RecallSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecallSet entity.
func (_u *RecallSetUpdateOne) Save(ctx context.Context) (*RecallSet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallSetUpdateOne) SaveX(ctx context.Context) *RecallSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecallSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecallSetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recallset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallSetUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recallset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecallSet.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecallSetUpdateOne) sqlSave(ctx context.Context) (_node *RecallSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recallset.Table, recallset.Columns, sqlgraph.NewFieldSpec(recallset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecallSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recallset.FieldID)
		for _, f := range fields {
			if !recallset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recallset.FieldID {
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
		_spec.SetField(recallset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recallset.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recallset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscussionPrompt(); ok {
		_spec.SetField(recallset.FieldDiscussionPrompt, field.TypeString, value)
	}
	if _u.mutation.DiscussionPromptCleared() {
		_spec.ClearField(recallset.FieldDiscussionPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recallset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPointsIDs(); len(nodes) > 0 && !_u.mutation.PointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecallSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recallset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
