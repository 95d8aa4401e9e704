// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallkit/recallkit/ent/rabbitholeevent"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/ent/sessionmessage"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetRecallSetID sets the "recall_set_id" field.
func (_c *StudySessionCreate) SetRecallSetID(v string) *StudySessionCreate {
	_c.mutation.SetRecallSetID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudySessionCreate) SetStatus(v studysession.Status) *StudySessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableStatus(v *studysession.Status) *StudySessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTargetPointIds sets the "target_point_ids" field.
func (_c *StudySessionCreate) SetTargetPointIds(v []string) *StudySessionCreate {
	_c.mutation.SetTargetPointIds(v)
	return _c
}

// SetRecalledPointIds sets the "recalled_point_ids" field.
func (_c *StudySessionCreate) SetRecalledPointIds(v []string) *StudySessionCreate {
	_c.mutation.SetRecalledPointIds(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StudySessionCreate) SetStartedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableStartedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetResumedAt sets the "resumed_at" field.
func (_c *StudySessionCreate) SetResumedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetResumedAt(v)
	return _c
}

// SetNillableResumedAt sets the "resumed_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableResumedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetResumedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *StudySessionCreate) SetEndedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableEndedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudySessionCreate) SetID(v string) *StudySessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecallSet sets the "recall_set" edge to the RecallSet entity.
func (_c *StudySessionCreate) SetRecallSet(v *RecallSet) *StudySessionCreate {
	return _c.SetRecallSetID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the SessionMessage entity by IDs.
func (_c *StudySessionCreate) AddMessageIDs(ids ...string) *StudySessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the SessionMessage entity.
func (_c *StudySessionCreate) AddMessages(v ...*SessionMessage) *StudySessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddRabbitholeEventIDs adds the "rabbithole_events" edge to the RabbitholeEvent entity by IDs.
func (_c *StudySessionCreate) AddRabbitholeEventIDs(ids ...string) *StudySessionCreate {
	_c.mutation.AddRabbitholeEventIDs(ids...)
	return _c
}

// AddRabbitholeEvents adds the "rabbithole_events" edges to the RabbitholeEvent entity.
func (_c *StudySessionCreate) AddRabbitholeEvents(v ...*RabbitholeEvent) *StudySessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRabbitholeEventIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by IDs.
func (_c *StudySessionCreate) AddOutcomeIDs(ids ...string) *StudySessionCreate {
	_c.mutation.AddOutcomeIDs(ids...)
	return _c
}

// AddOutcomes adds the "outcomes" edges to the RecallOutcome entity.
func (_c *StudySessionCreate) AddOutcomes(v ...*RecallOutcome) *StudySessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeIDs(ids...)
}

// SetMetricsID sets the "metrics" edge to the SessionMetrics entity by ID.
func (_c *StudySessionCreate) SetMetricsID(id string) *StudySessionCreate {
	_c.mutation.SetMetricsID(id)
	return _c
}

// SetNillableMetricsID sets the "metrics" edge to the SessionMetrics entity by ID if the given value is not nil.
func (_c *StudySessionCreate) SetNillableMetricsID(id *string) *StudySessionCreate {
	if id != nil {
		_c = _c.SetMetricsID(*id)
	}
	return _c
}

// SetMetrics sets the "metrics" edge to the SessionMetrics entity.
func (_c *StudySessionCreate) SetMetrics(v *SessionMetrics) *StudySessionCreate {
	return _c.SetMetricsID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := studysession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := studysession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.RecallSetID(); !ok {
		return &ValidationError{Name: "recall_set_id", err: errors.New(`ent: missing required field "StudySession.recall_set_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudySession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := studysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudySession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetPointIds(); !ok {
		return &ValidationError{Name: "target_point_ids", err: errors.New(`ent: missing required field "StudySession.target_point_ids"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StudySession.started_at"`)}
	}
	if len(_c.mutation.RecallSetIDs()) == 0 {
		return &ValidationError{Name: "recall_set", err: errors.New(`ent: missing required edge "StudySession.recall_set"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StudySession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TargetPointIds(); ok {
		_spec.SetField(studysession.FieldTargetPointIds, field.TypeJSON, value)
		_node.TargetPointIds = value
	}
	if value, ok := _c.mutation.RecalledPointIds(); ok {
		_spec.SetField(studysession.FieldRecalledPointIds, field.TypeJSON, value)
		_node.RecalledPointIds = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.ResumedAt(); ok {
		_spec.SetField(studysession.FieldResumedAt, field.TypeTime, value)
		_node.ResumedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(studysession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if nodes := _c.mutation.RecallSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.RecallSetTable,
			Columns: []string{studysession.RecallSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecallSetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RabbitholeEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholeEventsTable,
			Columns: []string{studysession.RabbitholeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   studysession.MetricsTable,
			Columns: []string{studysession.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
