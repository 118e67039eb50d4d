// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cloudshift-ai/cloudshift/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRecord is the client for interacting with the AgentRecord builders.
	AgentRecord *AgentRecordClient
	// MigrationProcess is the client for interacting with the MigrationProcess builders.
	MigrationProcess *MigrationProcessClient
	// PhaseRun is the client for interacting with the PhaseRun builders.
	PhaseRun *PhaseRunClient
	// QueueMessage is the client for interacting with the QueueMessage builders.
	QueueMessage *QueueMessageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRecord = NewAgentRecordClient(c.config)
	c.MigrationProcess = NewMigrationProcessClient(c.config)
	c.PhaseRun = NewPhaseRunClient(c.config)
	c.QueueMessage = NewQueueMessageClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AgentRecord:      NewAgentRecordClient(cfg),
		MigrationProcess: NewMigrationProcessClient(cfg),
		PhaseRun:         NewPhaseRunClient(cfg),
		QueueMessage:     NewQueueMessageClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AgentRecord:      NewAgentRecordClient(cfg),
		MigrationProcess: NewMigrationProcessClient(cfg),
		PhaseRun:         NewPhaseRunClient(cfg),
		QueueMessage:     NewQueueMessageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRecord.
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
	c.AgentRecord.Use(hooks...)
	c.MigrationProcess.Use(hooks...)
	c.PhaseRun.Use(hooks...)
	c.QueueMessage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentRecord.Intercept(interceptors...)
	c.MigrationProcess.Intercept(interceptors...)
	c.PhaseRun.Intercept(interceptors...)
	c.QueueMessage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRecordMutation:
		return c.AgentRecord.mutate(ctx, m)
	case *MigrationProcessMutation:
		return c.MigrationProcess.mutate(ctx, m)
	case *PhaseRunMutation:
		return c.PhaseRun.mutate(ctx, m)
	case *QueueMessageMutation:
		return c.QueueMessage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRecordClient is a client for the AgentRecord schema.
type AgentRecordClient struct {
	config
}

// NewAgentRecordClient returns a client for the AgentRecord from the given config.
func NewAgentRecordClient(c config) *AgentRecordClient {
	return &AgentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrecord.Hooks(f(g(h())))`.
func (c *AgentRecordClient) Use(hooks ...Hook) {
	c.hooks.AgentRecord = append(c.hooks.AgentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrecord.Intercept(f(g(h())))`.
func (c *AgentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRecord = append(c.inters.AgentRecord, interceptors...)
}

// Create returns a builder for creating a AgentRecord entity.
func (c *AgentRecordClient) Create() *AgentRecordCreate {
	mutation := newAgentRecordMutation(c.config, OpCreate)
	return &AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRecord entities.
func (c *AgentRecordClient) CreateBulk(builders ...*AgentRecordCreate) *AgentRecordCreateBulk {
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRecordClient) MapCreateBulk(slice any, setFunc func(*AgentRecordCreate, int)) *AgentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRecordCreateBulk{err: fmt.Errorf("calling to AgentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRecord.
func (c *AgentRecordClient) Update() *AgentRecordUpdate {
	mutation := newAgentRecordMutation(c.config, OpUpdate)
	return &AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRecordClient) UpdateOne(_m *AgentRecord) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecord(_m))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRecordClient) UpdateOneID(id string) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecordID(id))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRecord.
func (c *AgentRecordClient) Delete() *AgentRecordDelete {
	mutation := newAgentRecordMutation(c.config, OpDelete)
	return &AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRecordClient) DeleteOne(_m *AgentRecord) *AgentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRecordClient) DeleteOneID(id string) *AgentRecordDeleteOne {
	builder := c.Delete().Where(agentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRecordDeleteOne{builder}
}

// Query returns a query builder for AgentRecord.
func (c *AgentRecordClient) Query() *AgentRecordQuery {
	return &AgentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRecord entity by its id.
func (c *AgentRecordClient) Get(ctx context.Context, id string) (*AgentRecord, error) {
	return c.Query().Where(agentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRecordClient) GetX(ctx context.Context, id string) *AgentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcess queries the process edge of a AgentRecord.
func (c *AgentRecordClient) QueryProcess(_m *AgentRecord) *MigrationProcessQuery {
	query := (&MigrationProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrecord.Table, agentrecord.FieldID, id),
			sqlgraph.To(migrationprocess.Table, migrationprocess.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrecord.ProcessTable, agentrecord.ProcessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRecordClient) Hooks() []Hook {
	return c.hooks.AgentRecord
}

// Interceptors returns the client interceptors.
func (c *AgentRecordClient) Interceptors() []Interceptor {
	return c.inters.AgentRecord
}

func (c *AgentRecordClient) mutate(ctx context.Context, m *AgentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRecord mutation op: %q", m.Op())
	}
}

// MigrationProcessClient is a client for the MigrationProcess schema.
type MigrationProcessClient struct {
	config
}

// NewMigrationProcessClient returns a client for the MigrationProcess from the given config.
func NewMigrationProcessClient(c config) *MigrationProcessClient {
	return &MigrationProcessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `migrationprocess.Hooks(f(g(h())))`.
func (c *MigrationProcessClient) Use(hooks ...Hook) {
	c.hooks.MigrationProcess = append(c.hooks.MigrationProcess, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `migrationprocess.Intercept(f(g(h())))`.
func (c *MigrationProcessClient) Intercept(interceptors ...Interceptor) {
	c.inters.MigrationProcess = append(c.inters.MigrationProcess, interceptors...)
}

// Create returns a builder for creating a MigrationProcess entity.
func (c *MigrationProcessClient) Create() *MigrationProcessCreate {
	mutation := newMigrationProcessMutation(c.config, OpCreate)
	return &MigrationProcessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MigrationProcess entities.
func (c *MigrationProcessClient) CreateBulk(builders ...*MigrationProcessCreate) *MigrationProcessCreateBulk {
	return &MigrationProcessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MigrationProcessClient) MapCreateBulk(slice any, setFunc func(*MigrationProcessCreate, int)) *MigrationProcessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MigrationProcessCreateBulk{err: fmt.Errorf("calling to MigrationProcessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MigrationProcessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MigrationProcessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MigrationProcess.
func (c *MigrationProcessClient) Update() *MigrationProcessUpdate {
	mutation := newMigrationProcessMutation(c.config, OpUpdate)
	return &MigrationProcessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MigrationProcessClient) UpdateOne(_m *MigrationProcess) *MigrationProcessUpdateOne {
	mutation := newMigrationProcessMutation(c.config, OpUpdateOne, withMigrationProcess(_m))
	return &MigrationProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MigrationProcessClient) UpdateOneID(id string) *MigrationProcessUpdateOne {
	mutation := newMigrationProcessMutation(c.config, OpUpdateOne, withMigrationProcessID(id))
	return &MigrationProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MigrationProcess.
func (c *MigrationProcessClient) Delete() *MigrationProcessDelete {
	mutation := newMigrationProcessMutation(c.config, OpDelete)
	return &MigrationProcessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MigrationProcessClient) DeleteOne(_m *MigrationProcess) *MigrationProcessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MigrationProcessClient) DeleteOneID(id string) *MigrationProcessDeleteOne {
	builder := c.Delete().Where(migrationprocess.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MigrationProcessDeleteOne{builder}
}

// Query returns a query builder for MigrationProcess.
func (c *MigrationProcessClient) Query() *MigrationProcessQuery {
	return &MigrationProcessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMigrationProcess},
		inters: c.Interceptors(),
	}
}

// Get returns a MigrationProcess entity by its id.
func (c *MigrationProcessClient) Get(ctx context.Context, id string) (*MigrationProcess, error) {
	return c.Query().Where(migrationprocess.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MigrationProcessClient) GetX(ctx context.Context, id string) *MigrationProcess {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPhaseRuns queries the phase_runs edge of a MigrationProcess.
func (c *MigrationProcessClient) QueryPhaseRuns(_m *MigrationProcess) *PhaseRunQuery {
	query := (&PhaseRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(migrationprocess.Table, migrationprocess.FieldID, id),
			sqlgraph.To(phaserun.Table, phaserun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, migrationprocess.PhaseRunsTable, migrationprocess.PhaseRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentRecords queries the agent_records edge of a MigrationProcess.
func (c *MigrationProcessClient) QueryAgentRecords(_m *MigrationProcess) *AgentRecordQuery {
	query := (&AgentRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(migrationprocess.Table, migrationprocess.FieldID, id),
			sqlgraph.To(agentrecord.Table, agentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, migrationprocess.AgentRecordsTable, migrationprocess.AgentRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MigrationProcessClient) Hooks() []Hook {
	return c.hooks.MigrationProcess
}

// Interceptors returns the client interceptors.
func (c *MigrationProcessClient) Interceptors() []Interceptor {
	return c.inters.MigrationProcess
}

func (c *MigrationProcessClient) mutate(ctx context.Context, m *MigrationProcessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MigrationProcessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MigrationProcessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MigrationProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MigrationProcessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MigrationProcess mutation op: %q", m.Op())
	}
}

// PhaseRunClient is a client for the PhaseRun schema.
type PhaseRunClient struct {
	config
}

// NewPhaseRunClient returns a client for the PhaseRun from the given config.
func NewPhaseRunClient(c config) *PhaseRunClient {
	return &PhaseRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phaserun.Hooks(f(g(h())))`.
func (c *PhaseRunClient) Use(hooks ...Hook) {
	c.hooks.PhaseRun = append(c.hooks.PhaseRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phaserun.Intercept(f(g(h())))`.
func (c *PhaseRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhaseRun = append(c.inters.PhaseRun, interceptors...)
}

// Create returns a builder for creating a PhaseRun entity.
func (c *PhaseRunClient) Create() *PhaseRunCreate {
	mutation := newPhaseRunMutation(c.config, OpCreate)
	return &PhaseRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhaseRun entities.
func (c *PhaseRunClient) CreateBulk(builders ...*PhaseRunCreate) *PhaseRunCreateBulk {
	return &PhaseRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseRunClient) MapCreateBulk(slice any, setFunc func(*PhaseRunCreate, int)) *PhaseRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseRunCreateBulk{err: fmt.Errorf("calling to PhaseRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhaseRun.
func (c *PhaseRunClient) Update() *PhaseRunUpdate {
	mutation := newPhaseRunMutation(c.config, OpUpdate)
	return &PhaseRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseRunClient) UpdateOne(_m *PhaseRun) *PhaseRunUpdateOne {
	mutation := newPhaseRunMutation(c.config, OpUpdateOne, withPhaseRun(_m))
	return &PhaseRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseRunClient) UpdateOneID(id string) *PhaseRunUpdateOne {
	mutation := newPhaseRunMutation(c.config, OpUpdateOne, withPhaseRunID(id))
	return &PhaseRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhaseRun.
func (c *PhaseRunClient) Delete() *PhaseRunDelete {
	mutation := newPhaseRunMutation(c.config, OpDelete)
	return &PhaseRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseRunClient) DeleteOne(_m *PhaseRun) *PhaseRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseRunClient) DeleteOneID(id string) *PhaseRunDeleteOne {
	builder := c.Delete().Where(phaserun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseRunDeleteOne{builder}
}

// Query returns a query builder for PhaseRun.
func (c *PhaseRunClient) Query() *PhaseRunQuery {
	return &PhaseRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhaseRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PhaseRun entity by its id.
func (c *PhaseRunClient) Get(ctx context.Context, id string) (*PhaseRun, error) {
	return c.Query().Where(phaserun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseRunClient) GetX(ctx context.Context, id string) *PhaseRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcess queries the process edge of a PhaseRun.
func (c *PhaseRunClient) QueryProcess(_m *PhaseRun) *MigrationProcessQuery {
	query := (&MigrationProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phaserun.Table, phaserun.FieldID, id),
			sqlgraph.To(migrationprocess.Table, migrationprocess.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phaserun.ProcessTable, phaserun.ProcessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhaseRunClient) Hooks() []Hook {
	return c.hooks.PhaseRun
}

// Interceptors returns the client interceptors.
func (c *PhaseRunClient) Interceptors() []Interceptor {
	return c.inters.PhaseRun
}

func (c *PhaseRunClient) mutate(ctx context.Context, m *PhaseRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhaseRun mutation op: %q", m.Op())
	}
}

// QueueMessageClient is a client for the QueueMessage schema.
type QueueMessageClient struct {
	config
}

// NewQueueMessageClient returns a client for the QueueMessage from the given config.
func NewQueueMessageClient(c config) *QueueMessageClient {
	return &QueueMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuemessage.Hooks(f(g(h())))`.
func (c *QueueMessageClient) Use(hooks ...Hook) {
	c.hooks.QueueMessage = append(c.hooks.QueueMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuemessage.Intercept(f(g(h())))`.
func (c *QueueMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueMessage = append(c.inters.QueueMessage, interceptors...)
}

// Create returns a builder for creating a QueueMessage entity.
func (c *QueueMessageClient) Create() *QueueMessageCreate {
	mutation := newQueueMessageMutation(c.config, OpCreate)
	return &QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueMessage entities.
func (c *QueueMessageClient) CreateBulk(builders ...*QueueMessageCreate) *QueueMessageCreateBulk {
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueMessageClient) MapCreateBulk(slice any, setFunc func(*QueueMessageCreate, int)) *QueueMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueMessageCreateBulk{err: fmt.Errorf("calling to QueueMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueMessage.
func (c *QueueMessageClient) Update() *QueueMessageUpdate {
	mutation := newQueueMessageMutation(c.config, OpUpdate)
	return &QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueMessageClient) UpdateOne(_m *QueueMessage) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessage(_m))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueMessageClient) UpdateOneID(id string) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessageID(id))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueMessage.
func (c *QueueMessageClient) Delete() *QueueMessageDelete {
	mutation := newQueueMessageMutation(c.config, OpDelete)
	return &QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueMessageClient) DeleteOne(_m *QueueMessage) *QueueMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueMessageClient) DeleteOneID(id string) *QueueMessageDeleteOne {
	builder := c.Delete().Where(queuemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueMessageDeleteOne{builder}
}

// Query returns a query builder for QueueMessage.
func (c *QueueMessageClient) Query() *QueueMessageQuery {
	return &QueueMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueMessage entity by its id.
func (c *QueueMessageClient) Get(ctx context.Context, id string) (*QueueMessage, error) {
	return c.Query().Where(queuemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueMessageClient) GetX(ctx context.Context, id string) *QueueMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueMessageClient) Hooks() []Hook {
	return c.hooks.QueueMessage
}

// Interceptors returns the client interceptors.
func (c *QueueMessageClient) Interceptors() []Interceptor {
	return c.inters.QueueMessage
}

func (c *QueueMessageClient) mutate(ctx context.Context, m *QueueMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueMessage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRecord, MigrationProcess, PhaseRun, QueueMessage []ent.Hook
	}
	inters struct {
		AgentRecord, MigrationProcess, PhaseRun, QueueMessage []ent.Interceptor
	}
)
