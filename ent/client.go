// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/recallkit/recallkit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recallkit/recallkit/ent/rabbitholeevent"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/ent/sessionmessage"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// RabbitholeEvent is the client for interacting with the RabbitholeEvent builders.
	RabbitholeEvent *RabbitholeEventClient
	// RecallOutcome is the client for interacting with the RecallOutcome builders.
	RecallOutcome *RecallOutcomeClient
	// RecallPoint is the client for interacting with the RecallPoint builders.
	RecallPoint *RecallPointClient
	// RecallSet is the client for interacting with the RecallSet builders.
	RecallSet *RecallSetClient
	// SessionMessage is the client for interacting with the SessionMessage builders.
	SessionMessage *SessionMessageClient
	// SessionMetrics is the client for interacting with the SessionMetrics builders.
	SessionMetrics *SessionMetricsClient
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.RabbitholeEvent = NewRabbitholeEventClient(c.config)
	c.RecallOutcome = NewRecallOutcomeClient(c.config)
	c.RecallPoint = NewRecallPointClient(c.config)
	c.RecallSet = NewRecallSetClient(c.config)
	c.SessionMessage = NewSessionMessageClient(c.config)
	c.SessionMetrics = NewSessionMetricsClient(c.config)
	c.StudySession = NewStudySessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		RabbitholeEvent: NewRabbitholeEventClient(cfg),
		RecallOutcome:   NewRecallOutcomeClient(cfg),
		RecallPoint:     NewRecallPointClient(cfg),
		RecallSet:       NewRecallSetClient(cfg),
		SessionMessage:  NewSessionMessageClient(cfg),
		SessionMetrics:  NewSessionMetricsClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		RabbitholeEvent: NewRabbitholeEventClient(cfg),
		RecallOutcome:   NewRecallOutcomeClient(cfg),
		RecallPoint:     NewRecallPointClient(cfg),
		RecallSet:       NewRecallSetClient(cfg),
		SessionMessage:  NewSessionMessageClient(cfg),
		SessionMetrics:  NewSessionMetricsClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		RabbitholeEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.RabbitholeEvent, c.RecallOutcome, c.RecallPoint, c.RecallSet,
		c.SessionMessage, c.SessionMetrics, c.StudySession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.RabbitholeEvent, c.RecallOutcome, c.RecallPoint, c.RecallSet,
		c.SessionMessage, c.SessionMetrics, c.StudySession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RabbitholeEventMutation:
		return c.RabbitholeEvent.mutate(ctx, m)
	case *RecallOutcomeMutation:
		return c.RecallOutcome.mutate(ctx, m)
	case *RecallPointMutation:
		return c.RecallPoint.mutate(ctx, m)
	case *RecallSetMutation:
		return c.RecallSet.mutate(ctx, m)
	case *SessionMessageMutation:
		return c.SessionMessage.mutate(ctx, m)
	case *SessionMetricsMutation:
		return c.SessionMetrics.mutate(ctx, m)
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RabbitholeEventClient is a client for the RabbitholeEvent schema.
type RabbitholeEventClient struct {
	config
}

// NewRabbitholeEventClient returns a client for the RabbitholeEvent from the given config.
func NewRabbitholeEventClient(c config) *RabbitholeEventClient {
	return &RabbitholeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rabbitholeevent.Hooks(f(g(h())))`.
func (c *RabbitholeEventClient) Use(hooks ...Hook) {
	c.hooks.RabbitholeEvent = append(c.hooks.RabbitholeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rabbitholeevent.Intercept(f(g(h())))`.
func (c *RabbitholeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RabbitholeEvent = append(c.inters.RabbitholeEvent, interceptors...)
}

// Create returns a builder for creating a RabbitholeEvent entity.
func (c *RabbitholeEventClient) Create() *RabbitholeEventCreate {
	mutation := newRabbitholeEventMutation(c.config, OpCreate)
	return &RabbitholeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RabbitholeEvent entities.
func (c *RabbitholeEventClient) CreateBulk(builders ...*RabbitholeEventCreate) *RabbitholeEventCreateBulk {
	return &RabbitholeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RabbitholeEventClient) MapCreateBulk(slice any, setFunc func(*RabbitholeEventCreate, int)) *RabbitholeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RabbitholeEventCreateBulk{err: fmt.Errorf("calling to RabbitholeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RabbitholeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RabbitholeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RabbitholeEvent.
func (c *RabbitholeEventClient) Update() *RabbitholeEventUpdate {
	mutation := newRabbitholeEventMutation(c.config, OpUpdate)
	return &RabbitholeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RabbitholeEventClient) UpdateOne(_m *RabbitholeEvent) *RabbitholeEventUpdateOne {
	mutation := newRabbitholeEventMutation(c.config, OpUpdateOne, withRabbitholeEvent(_m))
	return &RabbitholeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RabbitholeEventClient) UpdateOneID(id string) *RabbitholeEventUpdateOne {
	mutation := newRabbitholeEventMutation(c.config, OpUpdateOne, withRabbitholeEventID(id))
	return &RabbitholeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RabbitholeEvent.
func (c *RabbitholeEventClient) Delete() *RabbitholeEventDelete {
	mutation := newRabbitholeEventMutation(c.config, OpDelete)
	return &RabbitholeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RabbitholeEventClient) DeleteOne(_m *RabbitholeEvent) *RabbitholeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RabbitholeEventClient) DeleteOneID(id string) *RabbitholeEventDeleteOne {
	builder := c.Delete().Where(rabbitholeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RabbitholeEventDeleteOne{builder}
}

// Query returns a query builder for RabbitholeEvent.
func (c *RabbitholeEventClient) Query() *RabbitholeEventQuery {
	return &RabbitholeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRabbitholeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RabbitholeEvent entity by its id.
func (c *RabbitholeEventClient) Get(ctx context.Context, id string) (*RabbitholeEvent, error) {
	return c.Query().Where(rabbitholeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RabbitholeEventClient) GetX(ctx context.Context, id string) *RabbitholeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a RabbitholeEvent.
func (c *RabbitholeEventClient) QuerySession(_m *RabbitholeEvent) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rabbitholeevent.Table, rabbitholeevent.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rabbitholeevent.SessionTable, rabbitholeevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RabbitholeEventClient) Hooks() []Hook {
	return c.hooks.RabbitholeEvent
}

// Interceptors returns the client interceptors.
func (c *RabbitholeEventClient) Interceptors() []Interceptor {
	return c.inters.RabbitholeEvent
}

func (c *RabbitholeEventClient) mutate(ctx context.Context, m *RabbitholeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RabbitholeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RabbitholeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RabbitholeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RabbitholeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RabbitholeEvent mutation op: %q", m.Op())
	}
}

// RecallOutcomeClient is a client for the RecallOutcome schema.
type RecallOutcomeClient struct {
	config
}

// NewRecallOutcomeClient returns a client for the RecallOutcome from the given config.
func NewRecallOutcomeClient(c config) *RecallOutcomeClient {
	return &RecallOutcomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recalloutcome.Hooks(f(g(h())))`.
func (c *RecallOutcomeClient) Use(hooks ...Hook) {
	c.hooks.RecallOutcome = append(c.hooks.RecallOutcome, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recalloutcome.Intercept(f(g(h())))`.
func (c *RecallOutcomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecallOutcome = append(c.inters.RecallOutcome, interceptors...)
}

// Create returns a builder for creating a RecallOutcome entity.
func (c *RecallOutcomeClient) Create() *RecallOutcomeCreate {
	mutation := newRecallOutcomeMutation(c.config, OpCreate)
	return &RecallOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecallOutcome entities.
func (c *RecallOutcomeClient) CreateBulk(builders ...*RecallOutcomeCreate) *RecallOutcomeCreateBulk {
	return &RecallOutcomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecallOutcomeClient) MapCreateBulk(slice any, setFunc func(*RecallOutcomeCreate, int)) *RecallOutcomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecallOutcomeCreateBulk{err: fmt.Errorf("calling to RecallOutcomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecallOutcomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecallOutcomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecallOutcome.
func (c *RecallOutcomeClient) Update() *RecallOutcomeUpdate {
	mutation := newRecallOutcomeMutation(c.config, OpUpdate)
	return &RecallOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecallOutcomeClient) UpdateOne(_m *RecallOutcome) *RecallOutcomeUpdateOne {
	mutation := newRecallOutcomeMutation(c.config, OpUpdateOne, withRecallOutcome(_m))
	return &RecallOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecallOutcomeClient) UpdateOneID(id string) *RecallOutcomeUpdateOne {
	mutation := newRecallOutcomeMutation(c.config, OpUpdateOne, withRecallOutcomeID(id))
	return &RecallOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecallOutcome.
func (c *RecallOutcomeClient) Delete() *RecallOutcomeDelete {
	mutation := newRecallOutcomeMutation(c.config, OpDelete)
	return &RecallOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecallOutcomeClient) DeleteOne(_m *RecallOutcome) *RecallOutcomeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecallOutcomeClient) DeleteOneID(id string) *RecallOutcomeDeleteOne {
	builder := c.Delete().Where(recalloutcome.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecallOutcomeDeleteOne{builder}
}

// Query returns a query builder for RecallOutcome.
func (c *RecallOutcomeClient) Query() *RecallOutcomeQuery {
	return &RecallOutcomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecallOutcome},
		inters: c.Interceptors(),
	}
}

// Get returns a RecallOutcome entity by its id.
func (c *RecallOutcomeClient) Get(ctx context.Context, id string) (*RecallOutcome, error) {
	return c.Query().Where(recalloutcome.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecallOutcomeClient) GetX(ctx context.Context, id string) *RecallOutcome {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a RecallOutcome.
func (c *RecallOutcomeClient) QuerySession(_m *RecallOutcome) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recalloutcome.Table, recalloutcome.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recalloutcome.SessionTable, recalloutcome.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecallPoint queries the recall_point edge of a RecallOutcome.
func (c *RecallOutcomeClient) QueryRecallPoint(_m *RecallOutcome) *RecallPointQuery {
	query := (&RecallPointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recalloutcome.Table, recalloutcome.FieldID, id),
			sqlgraph.To(recallpoint.Table, recallpoint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recalloutcome.RecallPointTable, recalloutcome.RecallPointColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecallOutcomeClient) Hooks() []Hook {
	return c.hooks.RecallOutcome
}

// Interceptors returns the client interceptors.
func (c *RecallOutcomeClient) Interceptors() []Interceptor {
	return c.inters.RecallOutcome
}

func (c *RecallOutcomeClient) mutate(ctx context.Context, m *RecallOutcomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecallOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecallOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecallOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecallOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecallOutcome mutation op: %q", m.Op())
	}
}

// RecallPointClient is a client for the RecallPoint schema.
type RecallPointClient struct {
	config
}

// NewRecallPointClient returns a client for the RecallPoint from the given config.
func NewRecallPointClient(c config) *RecallPointClient {
	return &RecallPointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recallpoint.Hooks(f(g(h())))`.
func (c *RecallPointClient) Use(hooks ...Hook) {
	c.hooks.RecallPoint = append(c.hooks.RecallPoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recallpoint.Intercept(f(g(h())))`.
func (c *RecallPointClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecallPoint = append(c.inters.RecallPoint, interceptors...)
}

// Create returns a builder for creating a RecallPoint entity.
func (c *RecallPointClient) Create() *RecallPointCreate {
	mutation := newRecallPointMutation(c.config, OpCreate)
	return &RecallPointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecallPoint entities.
func (c *RecallPointClient) CreateBulk(builders ...*RecallPointCreate) *RecallPointCreateBulk {
	return &RecallPointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecallPointClient) MapCreateBulk(slice any, setFunc func(*RecallPointCreate, int)) *RecallPointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecallPointCreateBulk{err: fmt.Errorf("calling to RecallPointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecallPointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecallPointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecallPoint.
func (c *RecallPointClient) Update() *RecallPointUpdate {
	mutation := newRecallPointMutation(c.config, OpUpdate)
	return &RecallPointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecallPointClient) UpdateOne(_m *RecallPoint) *RecallPointUpdateOne {
	mutation := newRecallPointMutation(c.config, OpUpdateOne, withRecallPoint(_m))
	return &RecallPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecallPointClient) UpdateOneID(id string) *RecallPointUpdateOne {
	mutation := newRecallPointMutation(c.config, OpUpdateOne, withRecallPointID(id))
	return &RecallPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecallPoint.
func (c *RecallPointClient) Delete() *RecallPointDelete {
	mutation := newRecallPointMutation(c.config, OpDelete)
	return &RecallPointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecallPointClient) DeleteOne(_m *RecallPoint) *RecallPointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecallPointClient) DeleteOneID(id string) *RecallPointDeleteOne {
	builder := c.Delete().Where(recallpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecallPointDeleteOne{builder}
}

// Query returns a query builder for RecallPoint.
func (c *RecallPointClient) Query() *RecallPointQuery {
	return &RecallPointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecallPoint},
		inters: c.Interceptors(),
	}
}

// Get returns a RecallPoint entity by its id.
func (c *RecallPointClient) Get(ctx context.Context, id string) (*RecallPoint, error) {
	return c.Query().Where(recallpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecallPointClient) GetX(ctx context.Context, id string) *RecallPoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecallSet queries the recall_set edge of a RecallPoint.
func (c *RecallPointClient) QueryRecallSet(_m *RecallPoint) *RecallSetQuery {
	query := (&RecallSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recallpoint.Table, recallpoint.FieldID, id),
			sqlgraph.To(recallset.Table, recallset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recallpoint.RecallSetTable, recallpoint.RecallSetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomes queries the outcomes edge of a RecallPoint.
func (c *RecallPointClient) QueryOutcomes(_m *RecallPoint) *RecallOutcomeQuery {
	query := (&RecallOutcomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recallpoint.Table, recallpoint.FieldID, id),
			sqlgraph.To(recalloutcome.Table, recalloutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recallpoint.OutcomesTable, recallpoint.OutcomesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecallPointClient) Hooks() []Hook {
	return c.hooks.RecallPoint
}

// Interceptors returns the client interceptors.
func (c *RecallPointClient) Interceptors() []Interceptor {
	return c.inters.RecallPoint
}

func (c *RecallPointClient) mutate(ctx context.Context, m *RecallPointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecallPointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecallPointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecallPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecallPointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecallPoint mutation op: %q", m.Op())
	}
}

// RecallSetClient is a client for the RecallSet schema.
type RecallSetClient struct {
	config
}

// NewRecallSetClient returns a client for the RecallSet from the given config.
func NewRecallSetClient(c config) *RecallSetClient {
	return &RecallSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recallset.Hooks(f(g(h())))`.
func (c *RecallSetClient) Use(hooks ...Hook) {
	c.hooks.RecallSet = append(c.hooks.RecallSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recallset.Intercept(f(g(h())))`.
func (c *RecallSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecallSet = append(c.inters.RecallSet, interceptors...)
}

// Create returns a builder for creating a RecallSet entity.
func (c *RecallSetClient) Create() *RecallSetCreate {
	mutation := newRecallSetMutation(c.config, OpCreate)
	return &RecallSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecallSet entities.
func (c *RecallSetClient) CreateBulk(builders ...*RecallSetCreate) *RecallSetCreateBulk {
	return &RecallSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecallSetClient) MapCreateBulk(slice any, setFunc func(*RecallSetCreate, int)) *RecallSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecallSetCreateBulk{err: fmt.Errorf("calling to RecallSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecallSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecallSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecallSet.
func (c *RecallSetClient) Update() *RecallSetUpdate {
	mutation := newRecallSetMutation(c.config, OpUpdate)
	return &RecallSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecallSetClient) UpdateOne(_m *RecallSet) *RecallSetUpdateOne {
	mutation := newRecallSetMutation(c.config, OpUpdateOne, withRecallSet(_m))
	return &RecallSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecallSetClient) UpdateOneID(id string) *RecallSetUpdateOne {
	mutation := newRecallSetMutation(c.config, OpUpdateOne, withRecallSetID(id))
	return &RecallSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecallSet.
func (c *RecallSetClient) Delete() *RecallSetDelete {
	mutation := newRecallSetMutation(c.config, OpDelete)
	return &RecallSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecallSetClient) DeleteOne(_m *RecallSet) *RecallSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecallSetClient) DeleteOneID(id string) *RecallSetDeleteOne {
	builder := c.Delete().Where(recallset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecallSetDeleteOne{builder}
}

// Query returns a query builder for RecallSet.
func (c *RecallSetClient) Query() *RecallSetQuery {
	return &RecallSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecallSet},
		inters: c.Interceptors(),
	}
}

// Get returns a RecallSet entity by its id.
func (c *RecallSetClient) Get(ctx context.Context, id string) (*RecallSet, error) {
	return c.Query().Where(recallset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecallSetClient) GetX(ctx context.Context, id string) *RecallSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPoints queries the points edge of a RecallSet.
func (c *RecallSetClient) QueryPoints(_m *RecallSet) *RecallPointQuery {
	query := (&RecallPointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recallset.Table, recallset.FieldID, id),
			sqlgraph.To(recallpoint.Table, recallpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recallset.PointsTable, recallset.PointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a RecallSet.
func (c *RecallSetClient) QuerySessions(_m *RecallSet) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recallset.Table, recallset.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recallset.SessionsTable, recallset.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecallSetClient) Hooks() []Hook {
	return c.hooks.RecallSet
}

// Interceptors returns the client interceptors.
func (c *RecallSetClient) Interceptors() []Interceptor {
	return c.inters.RecallSet
}

func (c *RecallSetClient) mutate(ctx context.Context, m *RecallSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecallSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecallSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecallSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecallSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecallSet mutation op: %q", m.Op())
	}
}

// SessionMessageClient is a client for the SessionMessage schema.
type SessionMessageClient struct {
	config
}

// NewSessionMessageClient returns a client for the SessionMessage from the given config.
func NewSessionMessageClient(c config) *SessionMessageClient {
	return &SessionMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionmessage.Hooks(f(g(h())))`.
func (c *SessionMessageClient) Use(hooks ...Hook) {
	c.hooks.SessionMessage = append(c.hooks.SessionMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionmessage.Intercept(f(g(h())))`.
func (c *SessionMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionMessage = append(c.inters.SessionMessage, interceptors...)
}

// Create returns a builder for creating a SessionMessage entity.
func (c *SessionMessageClient) Create() *SessionMessageCreate {
	mutation := newSessionMessageMutation(c.config, OpCreate)
	return &SessionMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionMessage entities.
func (c *SessionMessageClient) CreateBulk(builders ...*SessionMessageCreate) *SessionMessageCreateBulk {
	return &SessionMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionMessageClient) MapCreateBulk(slice any, setFunc func(*SessionMessageCreate, int)) *SessionMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionMessageCreateBulk{err: fmt.Errorf("calling to SessionMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionMessage.
func (c *SessionMessageClient) Update() *SessionMessageUpdate {
	mutation := newSessionMessageMutation(c.config, OpUpdate)
	return &SessionMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionMessageClient) UpdateOne(_m *SessionMessage) *SessionMessageUpdateOne {
	mutation := newSessionMessageMutation(c.config, OpUpdateOne, withSessionMessage(_m))
	return &SessionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionMessageClient) UpdateOneID(id string) *SessionMessageUpdateOne {
	mutation := newSessionMessageMutation(c.config, OpUpdateOne, withSessionMessageID(id))
	return &SessionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionMessage.
func (c *SessionMessageClient) Delete() *SessionMessageDelete {
	mutation := newSessionMessageMutation(c.config, OpDelete)
	return &SessionMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionMessageClient) DeleteOne(_m *SessionMessage) *SessionMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionMessageClient) DeleteOneID(id string) *SessionMessageDeleteOne {
	builder := c.Delete().Where(sessionmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionMessageDeleteOne{builder}
}

// Query returns a query builder for SessionMessage.
func (c *SessionMessageClient) Query() *SessionMessageQuery {
	return &SessionMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionMessage entity by its id.
func (c *SessionMessageClient) Get(ctx context.Context, id string) (*SessionMessage, error) {
	return c.Query().Where(sessionmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionMessageClient) GetX(ctx context.Context, id string) *SessionMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionMessage.
func (c *SessionMessageClient) QuerySession(_m *SessionMessage) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionmessage.Table, sessionmessage.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionmessage.SessionTable, sessionmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionMessageClient) Hooks() []Hook {
	return c.hooks.SessionMessage
}

// Interceptors returns the client interceptors.
func (c *SessionMessageClient) Interceptors() []Interceptor {
	return c.inters.SessionMessage
}

func (c *SessionMessageClient) mutate(ctx context.Context, m *SessionMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionMessage mutation op: %q", m.Op())
	}
}

// SessionMetricsClient is a client for the SessionMetrics schema.
type SessionMetricsClient struct {
	config
}

// NewSessionMetricsClient returns a client for the SessionMetrics from the given config.
func NewSessionMetricsClient(c config) *SessionMetricsClient {
	return &SessionMetricsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionmetrics.Hooks(f(g(h())))`.
func (c *SessionMetricsClient) Use(hooks ...Hook) {
	c.hooks.SessionMetrics = append(c.hooks.SessionMetrics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionmetrics.Intercept(f(g(h())))`.
func (c *SessionMetricsClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionMetrics = append(c.inters.SessionMetrics, interceptors...)
}

// Create returns a builder for creating a SessionMetrics entity.
func (c *SessionMetricsClient) Create() *SessionMetricsCreate {
	mutation := newSessionMetricsMutation(c.config, OpCreate)
	return &SessionMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionMetrics entities.
func (c *SessionMetricsClient) CreateBulk(builders ...*SessionMetricsCreate) *SessionMetricsCreateBulk {
	return &SessionMetricsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionMetricsClient) MapCreateBulk(slice any, setFunc func(*SessionMetricsCreate, int)) *SessionMetricsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionMetricsCreateBulk{err: fmt.Errorf("calling to SessionMetricsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionMetricsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionMetricsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionMetrics.
func (c *SessionMetricsClient) Update() *SessionMetricsUpdate {
	mutation := newSessionMetricsMutation(c.config, OpUpdate)
	return &SessionMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionMetricsClient) UpdateOne(_m *SessionMetrics) *SessionMetricsUpdateOne {
	mutation := newSessionMetricsMutation(c.config, OpUpdateOne, withSessionMetrics(_m))
	return &SessionMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionMetricsClient) UpdateOneID(id string) *SessionMetricsUpdateOne {
	mutation := newSessionMetricsMutation(c.config, OpUpdateOne, withSessionMetricsID(id))
	return &SessionMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionMetrics.
func (c *SessionMetricsClient) Delete() *SessionMetricsDelete {
	mutation := newSessionMetricsMutation(c.config, OpDelete)
	return &SessionMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionMetricsClient) DeleteOne(_m *SessionMetrics) *SessionMetricsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionMetricsClient) DeleteOneID(id string) *SessionMetricsDeleteOne {
	builder := c.Delete().Where(sessionmetrics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionMetricsDeleteOne{builder}
}

// Query returns a query builder for SessionMetrics.
func (c *SessionMetricsClient) Query() *SessionMetricsQuery {
	return &SessionMetricsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionMetrics},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionMetrics entity by its id.
func (c *SessionMetricsClient) Get(ctx context.Context, id string) (*SessionMetrics, error) {
	return c.Query().Where(sessionmetrics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionMetricsClient) GetX(ctx context.Context, id string) *SessionMetrics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionMetrics.
func (c *SessionMetricsClient) QuerySession(_m *SessionMetrics) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionmetrics.Table, sessionmetrics.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, sessionmetrics.SessionTable, sessionmetrics.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionMetricsClient) Hooks() []Hook {
	return c.hooks.SessionMetrics
}

// Interceptors returns the client interceptors.
func (c *SessionMetricsClient) Interceptors() []Interceptor {
	return c.inters.SessionMetrics
}

func (c *SessionMetricsClient) mutate(ctx context.Context, m *SessionMetricsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionMetrics mutation op: %q", m.Op())
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(_m *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(_m))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id string) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(_m *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id string) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id string) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id string) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecallSet queries the recall_set edge of a StudySession.
func (c *StudySessionClient) QueryRecallSet(_m *StudySession) *RecallSetQuery {
	query := (&RecallSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(recallset.Table, recallset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, studysession.RecallSetTable, studysession.RecallSetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a StudySession.
func (c *StudySessionClient) QueryMessages(_m *StudySession) *SessionMessageQuery {
	query := (&SessionMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(sessionmessage.Table, sessionmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studysession.MessagesTable, studysession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRabbitholeEvents queries the rabbithole_events edge of a StudySession.
func (c *StudySessionClient) QueryRabbitholeEvents(_m *StudySession) *RabbitholeEventQuery {
	query := (&RabbitholeEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(rabbitholeevent.Table, rabbitholeevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studysession.RabbitholeEventsTable, studysession.RabbitholeEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomes queries the outcomes edge of a StudySession.
func (c *StudySessionClient) QueryOutcomes(_m *StudySession) *RecallOutcomeQuery {
	query := (&RecallOutcomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(recalloutcome.Table, recalloutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studysession.OutcomesTable, studysession.OutcomesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMetrics queries the metrics edge of a StudySession.
func (c *StudySessionClient) QueryMetrics(_m *StudySession) *SessionMetricsQuery {
	query := (&SessionMetricsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(sessionmetrics.Table, sessionmetrics.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, studysession.MetricsTable, studysession.MetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		RabbitholeEvent, RecallOutcome, RecallPoint, RecallSet, SessionMessage,
		SessionMetrics, StudySession []ent.Hook
	}
	inters struct {
		RabbitholeEvent, RecallOutcome, RecallPoint, RecallSet, SessionMessage,
		SessionMetrics, StudySession []ent.Interceptor
	}
)
