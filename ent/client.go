// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/kurt-labs/kurt/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/fetchdocument"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Claim is the client for interacting with the Claim builders.
	Claim *ClaimClient
	// ClaimEntity is the client for interacting with the ClaimEntity builders.
	ClaimEntity *ClaimEntityClient
	// ClaimGroup is the client for interacting with the ClaimGroup builders.
	ClaimGroup *ClaimGroupClient
	// ClaimResolution is the client for interacting with the ClaimResolution builders.
	ClaimResolution *ClaimResolutionClient
	// Discovery is the client for interacting with the Discovery builders.
	Discovery *DiscoveryClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentEntity is the client for interacting with the DocumentEntity builders.
	DocumentEntity *DocumentEntityClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// EntityResolution is the client for interacting with the EntityResolution builders.
	EntityResolution *EntityResolutionClient
	// FetchDocument is the client for interacting with the FetchDocument builders.
	FetchDocument *FetchDocumentClient
	// SectionExtraction is the client for interacting with the SectionExtraction builders.
	SectionExtraction *SectionExtractionClient
	// StepEvent is the client for interacting with the StepEvent builders.
	StepEvent *StepEventClient
	// StepLog is the client for interacting with the StepLog builders.
	StepLog *StepLogClient
	// WorkflowRun is the client for interacting with the WorkflowRun builders.
	WorkflowRun *WorkflowRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Claim = NewClaimClient(c.config)
	c.ClaimEntity = NewClaimEntityClient(c.config)
	c.ClaimGroup = NewClaimGroupClient(c.config)
	c.ClaimResolution = NewClaimResolutionClient(c.config)
	c.Discovery = NewDiscoveryClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.DocumentEntity = NewDocumentEntityClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.EntityResolution = NewEntityResolutionClient(c.config)
	c.FetchDocument = NewFetchDocumentClient(c.config)
	c.SectionExtraction = NewSectionExtractionClient(c.config)
	c.StepEvent = NewStepEventClient(c.config)
	c.StepLog = NewStepLogClient(c.config)
	c.WorkflowRun = NewWorkflowRunClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Claim:             NewClaimClient(cfg),
		ClaimEntity:       NewClaimEntityClient(cfg),
		ClaimGroup:        NewClaimGroupClient(cfg),
		ClaimResolution:   NewClaimResolutionClient(cfg),
		Discovery:         NewDiscoveryClient(cfg),
		Document:          NewDocumentClient(cfg),
		DocumentEntity:    NewDocumentEntityClient(cfg),
		Entity:            NewEntityClient(cfg),
		EntityResolution:  NewEntityResolutionClient(cfg),
		FetchDocument:     NewFetchDocumentClient(cfg),
		SectionExtraction: NewSectionExtractionClient(cfg),
		StepEvent:         NewStepEventClient(cfg),
		StepLog:           NewStepLogClient(cfg),
		WorkflowRun:       NewWorkflowRunClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Claim:             NewClaimClient(cfg),
		ClaimEntity:       NewClaimEntityClient(cfg),
		ClaimGroup:        NewClaimGroupClient(cfg),
		ClaimResolution:   NewClaimResolutionClient(cfg),
		Discovery:         NewDiscoveryClient(cfg),
		Document:          NewDocumentClient(cfg),
		DocumentEntity:    NewDocumentEntityClient(cfg),
		Entity:            NewEntityClient(cfg),
		EntityResolution:  NewEntityResolutionClient(cfg),
		FetchDocument:     NewFetchDocumentClient(cfg),
		SectionExtraction: NewSectionExtractionClient(cfg),
		StepEvent:         NewStepEventClient(cfg),
		StepLog:           NewStepLogClient(cfg),
		WorkflowRun:       NewWorkflowRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Claim.
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
		c.Claim, c.ClaimEntity, c.ClaimGroup, c.ClaimResolution, c.Discovery,
		c.Document, c.DocumentEntity, c.Entity, c.EntityResolution, c.FetchDocument,
		c.SectionExtraction, c.StepEvent, c.StepLog, c.WorkflowRun,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Claim, c.ClaimEntity, c.ClaimGroup, c.ClaimResolution, c.Discovery,
		c.Document, c.DocumentEntity, c.Entity, c.EntityResolution, c.FetchDocument,
		c.SectionExtraction, c.StepEvent, c.StepLog, c.WorkflowRun,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClaimMutation:
		return c.Claim.mutate(ctx, m)
	case *ClaimEntityMutation:
		return c.ClaimEntity.mutate(ctx, m)
	case *ClaimGroupMutation:
		return c.ClaimGroup.mutate(ctx, m)
	case *ClaimResolutionMutation:
		return c.ClaimResolution.mutate(ctx, m)
	case *DiscoveryMutation:
		return c.Discovery.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentEntityMutation:
		return c.DocumentEntity.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *EntityResolutionMutation:
		return c.EntityResolution.mutate(ctx, m)
	case *FetchDocumentMutation:
		return c.FetchDocument.mutate(ctx, m)
	case *SectionExtractionMutation:
		return c.SectionExtraction.mutate(ctx, m)
	case *StepEventMutation:
		return c.StepEvent.mutate(ctx, m)
	case *StepLogMutation:
		return c.StepLog.mutate(ctx, m)
	case *WorkflowRunMutation:
		return c.WorkflowRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClaimClient is a client for the Claim schema.
type ClaimClient struct {
	config
}

// NewClaimClient returns a client for the Claim from the given config.
func NewClaimClient(c config) *ClaimClient {
	return &ClaimClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claim.Hooks(f(g(h())))`.
func (c *ClaimClient) Use(hooks ...Hook) {
	c.hooks.Claim = append(c.hooks.Claim, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claim.Intercept(f(g(h())))`.
func (c *ClaimClient) Intercept(interceptors ...Interceptor) {
	c.inters.Claim = append(c.inters.Claim, interceptors...)
}

// Create returns a builder for creating a Claim entity.
func (c *ClaimClient) Create() *ClaimCreate {
	mutation := newClaimMutation(c.config, OpCreate)
	return &ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Claim entities.
func (c *ClaimClient) CreateBulk(builders ...*ClaimCreate) *ClaimCreateBulk {
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimClient) MapCreateBulk(slice any, setFunc func(*ClaimCreate, int)) *ClaimCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimCreateBulk{err: fmt.Errorf("calling to ClaimClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Claim.
func (c *ClaimClient) Update() *ClaimUpdate {
	mutation := newClaimMutation(c.config, OpUpdate)
	return &ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimClient) UpdateOne(_m *Claim) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaim(_m))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimClient) UpdateOneID(id string) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaimID(id))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Claim.
func (c *ClaimClient) Delete() *ClaimDelete {
	mutation := newClaimMutation(c.config, OpDelete)
	return &ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimClient) DeleteOne(_m *Claim) *ClaimDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimClient) DeleteOneID(id string) *ClaimDeleteOne {
	builder := c.Delete().Where(claim.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimDeleteOne{builder}
}

// Query returns a query builder for Claim.
func (c *ClaimClient) Query() *ClaimQuery {
	return &ClaimQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaim},
		inters: c.Interceptors(),
	}
}

// Get returns a Claim entity by its id.
func (c *ClaimClient) Get(ctx context.Context, id string) (*Claim, error) {
	return c.Query().Where(claim.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimClient) GetX(ctx context.Context, id string) *Claim {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Claim.
func (c *ClaimClient) QueryDocument(_m *Claim) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claim.Table, claim.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, claim.DocumentTable, claim.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClaimEntities queries the claim_entities edge of a Claim.
func (c *ClaimClient) QueryClaimEntities(_m *Claim) *ClaimEntityQuery {
	query := (&ClaimEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claim.Table, claim.FieldID, id),
			sqlgraph.To(claimentity.Table, claimentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, claim.ClaimEntitiesTable, claim.ClaimEntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClaimClient) Hooks() []Hook {
	return c.hooks.Claim
}

// Interceptors returns the client interceptors.
func (c *ClaimClient) Interceptors() []Interceptor {
	return c.inters.Claim
}

func (c *ClaimClient) mutate(ctx context.Context, m *ClaimMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Claim mutation op: %q", m.Op())
	}
}

// ClaimEntityClient is a client for the ClaimEntity schema.
type ClaimEntityClient struct {
	config
}

// NewClaimEntityClient returns a client for the ClaimEntity from the given config.
func NewClaimEntityClient(c config) *ClaimEntityClient {
	return &ClaimEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claimentity.Hooks(f(g(h())))`.
func (c *ClaimEntityClient) Use(hooks ...Hook) {
	c.hooks.ClaimEntity = append(c.hooks.ClaimEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claimentity.Intercept(f(g(h())))`.
func (c *ClaimEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimEntity = append(c.inters.ClaimEntity, interceptors...)
}

// Create returns a builder for creating a ClaimEntity entity.
func (c *ClaimEntityClient) Create() *ClaimEntityCreate {
	mutation := newClaimEntityMutation(c.config, OpCreate)
	return &ClaimEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimEntity entities.
func (c *ClaimEntityClient) CreateBulk(builders ...*ClaimEntityCreate) *ClaimEntityCreateBulk {
	return &ClaimEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimEntityClient) MapCreateBulk(slice any, setFunc func(*ClaimEntityCreate, int)) *ClaimEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimEntityCreateBulk{err: fmt.Errorf("calling to ClaimEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimEntity.
func (c *ClaimEntityClient) Update() *ClaimEntityUpdate {
	mutation := newClaimEntityMutation(c.config, OpUpdate)
	return &ClaimEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimEntityClient) UpdateOne(_m *ClaimEntity) *ClaimEntityUpdateOne {
	mutation := newClaimEntityMutation(c.config, OpUpdateOne, withClaimEntity(_m))
	return &ClaimEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimEntityClient) UpdateOneID(id string) *ClaimEntityUpdateOne {
	mutation := newClaimEntityMutation(c.config, OpUpdateOne, withClaimEntityID(id))
	return &ClaimEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimEntity.
func (c *ClaimEntityClient) Delete() *ClaimEntityDelete {
	mutation := newClaimEntityMutation(c.config, OpDelete)
	return &ClaimEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimEntityClient) DeleteOne(_m *ClaimEntity) *ClaimEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimEntityClient) DeleteOneID(id string) *ClaimEntityDeleteOne {
	builder := c.Delete().Where(claimentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimEntityDeleteOne{builder}
}

// Query returns a query builder for ClaimEntity.
func (c *ClaimEntityClient) Query() *ClaimEntityQuery {
	return &ClaimEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimEntity entity by its id.
func (c *ClaimEntityClient) Get(ctx context.Context, id string) (*ClaimEntity, error) {
	return c.Query().Where(claimentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimEntityClient) GetX(ctx context.Context, id string) *ClaimEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClaim queries the claim edge of a ClaimEntity.
func (c *ClaimEntityClient) QueryClaim(_m *ClaimEntity) *ClaimQuery {
	query := (&ClaimClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claimentity.Table, claimentity.FieldID, id),
			sqlgraph.To(claim.Table, claim.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, claimentity.ClaimTable, claimentity.ClaimColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntity queries the entity edge of a ClaimEntity.
func (c *ClaimEntityClient) QueryEntity(_m *ClaimEntity) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claimentity.Table, claimentity.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, claimentity.EntityTable, claimentity.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClaimEntityClient) Hooks() []Hook {
	return c.hooks.ClaimEntity
}

// Interceptors returns the client interceptors.
func (c *ClaimEntityClient) Interceptors() []Interceptor {
	return c.inters.ClaimEntity
}

func (c *ClaimEntityClient) mutate(ctx context.Context, m *ClaimEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimEntity mutation op: %q", m.Op())
	}
}

// ClaimGroupClient is a client for the ClaimGroup schema.
type ClaimGroupClient struct {
	config
}

// NewClaimGroupClient returns a client for the ClaimGroup from the given config.
func NewClaimGroupClient(c config) *ClaimGroupClient {
	return &ClaimGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claimgroup.Hooks(f(g(h())))`.
func (c *ClaimGroupClient) Use(hooks ...Hook) {
	c.hooks.ClaimGroup = append(c.hooks.ClaimGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claimgroup.Intercept(f(g(h())))`.
func (c *ClaimGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimGroup = append(c.inters.ClaimGroup, interceptors...)
}

// Create returns a builder for creating a ClaimGroup entity.
func (c *ClaimGroupClient) Create() *ClaimGroupCreate {
	mutation := newClaimGroupMutation(c.config, OpCreate)
	return &ClaimGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimGroup entities.
func (c *ClaimGroupClient) CreateBulk(builders ...*ClaimGroupCreate) *ClaimGroupCreateBulk {
	return &ClaimGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimGroupClient) MapCreateBulk(slice any, setFunc func(*ClaimGroupCreate, int)) *ClaimGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimGroupCreateBulk{err: fmt.Errorf("calling to ClaimGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimGroup.
func (c *ClaimGroupClient) Update() *ClaimGroupUpdate {
	mutation := newClaimGroupMutation(c.config, OpUpdate)
	return &ClaimGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimGroupClient) UpdateOne(_m *ClaimGroup) *ClaimGroupUpdateOne {
	mutation := newClaimGroupMutation(c.config, OpUpdateOne, withClaimGroup(_m))
	return &ClaimGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimGroupClient) UpdateOneID(id string) *ClaimGroupUpdateOne {
	mutation := newClaimGroupMutation(c.config, OpUpdateOne, withClaimGroupID(id))
	return &ClaimGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimGroup.
func (c *ClaimGroupClient) Delete() *ClaimGroupDelete {
	mutation := newClaimGroupMutation(c.config, OpDelete)
	return &ClaimGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimGroupClient) DeleteOne(_m *ClaimGroup) *ClaimGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimGroupClient) DeleteOneID(id string) *ClaimGroupDeleteOne {
	builder := c.Delete().Where(claimgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimGroupDeleteOne{builder}
}

// Query returns a query builder for ClaimGroup.
func (c *ClaimGroupClient) Query() *ClaimGroupQuery {
	return &ClaimGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimGroup entity by its id.
func (c *ClaimGroupClient) Get(ctx context.Context, id string) (*ClaimGroup, error) {
	return c.Query().Where(claimgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimGroupClient) GetX(ctx context.Context, id string) *ClaimGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClaimGroupClient) Hooks() []Hook {
	return c.hooks.ClaimGroup
}

// Interceptors returns the client interceptors.
func (c *ClaimGroupClient) Interceptors() []Interceptor {
	return c.inters.ClaimGroup
}

func (c *ClaimGroupClient) mutate(ctx context.Context, m *ClaimGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimGroup mutation op: %q", m.Op())
	}
}

// ClaimResolutionClient is a client for the ClaimResolution schema.
type ClaimResolutionClient struct {
	config
}

// NewClaimResolutionClient returns a client for the ClaimResolution from the given config.
func NewClaimResolutionClient(c config) *ClaimResolutionClient {
	return &ClaimResolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claimresolution.Hooks(f(g(h())))`.
func (c *ClaimResolutionClient) Use(hooks ...Hook) {
	c.hooks.ClaimResolution = append(c.hooks.ClaimResolution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claimresolution.Intercept(f(g(h())))`.
func (c *ClaimResolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimResolution = append(c.inters.ClaimResolution, interceptors...)
}

// Create returns a builder for creating a ClaimResolution entity.
func (c *ClaimResolutionClient) Create() *ClaimResolutionCreate {
	mutation := newClaimResolutionMutation(c.config, OpCreate)
	return &ClaimResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimResolution entities.
func (c *ClaimResolutionClient) CreateBulk(builders ...*ClaimResolutionCreate) *ClaimResolutionCreateBulk {
	return &ClaimResolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimResolutionClient) MapCreateBulk(slice any, setFunc func(*ClaimResolutionCreate, int)) *ClaimResolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimResolutionCreateBulk{err: fmt.Errorf("calling to ClaimResolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimResolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimResolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimResolution.
func (c *ClaimResolutionClient) Update() *ClaimResolutionUpdate {
	mutation := newClaimResolutionMutation(c.config, OpUpdate)
	return &ClaimResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimResolutionClient) UpdateOne(_m *ClaimResolution) *ClaimResolutionUpdateOne {
	mutation := newClaimResolutionMutation(c.config, OpUpdateOne, withClaimResolution(_m))
	return &ClaimResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimResolutionClient) UpdateOneID(id string) *ClaimResolutionUpdateOne {
	mutation := newClaimResolutionMutation(c.config, OpUpdateOne, withClaimResolutionID(id))
	return &ClaimResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimResolution.
func (c *ClaimResolutionClient) Delete() *ClaimResolutionDelete {
	mutation := newClaimResolutionMutation(c.config, OpDelete)
	return &ClaimResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimResolutionClient) DeleteOne(_m *ClaimResolution) *ClaimResolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimResolutionClient) DeleteOneID(id string) *ClaimResolutionDeleteOne {
	builder := c.Delete().Where(claimresolution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimResolutionDeleteOne{builder}
}

// Query returns a query builder for ClaimResolution.
func (c *ClaimResolutionClient) Query() *ClaimResolutionQuery {
	return &ClaimResolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimResolution},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimResolution entity by its id.
func (c *ClaimResolutionClient) Get(ctx context.Context, id string) (*ClaimResolution, error) {
	return c.Query().Where(claimresolution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimResolutionClient) GetX(ctx context.Context, id string) *ClaimResolution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClaimResolutionClient) Hooks() []Hook {
	return c.hooks.ClaimResolution
}

// Interceptors returns the client interceptors.
func (c *ClaimResolutionClient) Interceptors() []Interceptor {
	return c.inters.ClaimResolution
}

func (c *ClaimResolutionClient) mutate(ctx context.Context, m *ClaimResolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimResolution mutation op: %q", m.Op())
	}
}

// DiscoveryClient is a client for the Discovery schema.
type DiscoveryClient struct {
	config
}

// NewDiscoveryClient returns a client for the Discovery from the given config.
func NewDiscoveryClient(c config) *DiscoveryClient {
	return &DiscoveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `discovery.Hooks(f(g(h())))`.
func (c *DiscoveryClient) Use(hooks ...Hook) {
	c.hooks.Discovery = append(c.hooks.Discovery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `discovery.Intercept(f(g(h())))`.
func (c *DiscoveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Discovery = append(c.inters.Discovery, interceptors...)
}

// Create returns a builder for creating a Discovery entity.
func (c *DiscoveryClient) Create() *DiscoveryCreate {
	mutation := newDiscoveryMutation(c.config, OpCreate)
	return &DiscoveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Discovery entities.
func (c *DiscoveryClient) CreateBulk(builders ...*DiscoveryCreate) *DiscoveryCreateBulk {
	return &DiscoveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiscoveryClient) MapCreateBulk(slice any, setFunc func(*DiscoveryCreate, int)) *DiscoveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiscoveryCreateBulk{err: fmt.Errorf("calling to DiscoveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiscoveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiscoveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Discovery.
func (c *DiscoveryClient) Update() *DiscoveryUpdate {
	mutation := newDiscoveryMutation(c.config, OpUpdate)
	return &DiscoveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiscoveryClient) UpdateOne(_m *Discovery) *DiscoveryUpdateOne {
	mutation := newDiscoveryMutation(c.config, OpUpdateOne, withDiscovery(_m))
	return &DiscoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiscoveryClient) UpdateOneID(id string) *DiscoveryUpdateOne {
	mutation := newDiscoveryMutation(c.config, OpUpdateOne, withDiscoveryID(id))
	return &DiscoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Discovery.
func (c *DiscoveryClient) Delete() *DiscoveryDelete {
	mutation := newDiscoveryMutation(c.config, OpDelete)
	return &DiscoveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiscoveryClient) DeleteOne(_m *Discovery) *DiscoveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiscoveryClient) DeleteOneID(id string) *DiscoveryDeleteOne {
	builder := c.Delete().Where(discovery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiscoveryDeleteOne{builder}
}

// Query returns a query builder for Discovery.
func (c *DiscoveryClient) Query() *DiscoveryQuery {
	return &DiscoveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiscovery},
		inters: c.Interceptors(),
	}
}

// Get returns a Discovery entity by its id.
func (c *DiscoveryClient) Get(ctx context.Context, id string) (*Discovery, error) {
	return c.Query().Where(discovery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiscoveryClient) GetX(ctx context.Context, id string) *Discovery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiscoveryClient) Hooks() []Hook {
	return c.hooks.Discovery
}

// Interceptors returns the client interceptors.
func (c *DiscoveryClient) Interceptors() []Interceptor {
	return c.inters.Discovery
}

func (c *DiscoveryClient) mutate(ctx context.Context, m *DiscoveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiscoveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiscoveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiscoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiscoveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Discovery mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id string) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id string) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id string) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id string) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumentEntities queries the document_entities edge of a Document.
func (c *DocumentClient) QueryDocumentEntities(_m *Document) *DocumentEntityQuery {
	query := (&DocumentEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documententity.Table, documententity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.DocumentEntitiesTable, document.DocumentEntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClaims queries the claims edge of a Document.
func (c *DocumentClient) QueryClaims(_m *Document) *ClaimQuery {
	query := (&ClaimClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(claim.Table, claim.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ClaimsTable, document.ClaimsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentEntityClient is a client for the DocumentEntity schema.
type DocumentEntityClient struct {
	config
}

// NewDocumentEntityClient returns a client for the DocumentEntity from the given config.
func NewDocumentEntityClient(c config) *DocumentEntityClient {
	return &DocumentEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documententity.Hooks(f(g(h())))`.
func (c *DocumentEntityClient) Use(hooks ...Hook) {
	c.hooks.DocumentEntity = append(c.hooks.DocumentEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documententity.Intercept(f(g(h())))`.
func (c *DocumentEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentEntity = append(c.inters.DocumentEntity, interceptors...)
}

// Create returns a builder for creating a DocumentEntity entity.
func (c *DocumentEntityClient) Create() *DocumentEntityCreate {
	mutation := newDocumentEntityMutation(c.config, OpCreate)
	return &DocumentEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentEntity entities.
func (c *DocumentEntityClient) CreateBulk(builders ...*DocumentEntityCreate) *DocumentEntityCreateBulk {
	return &DocumentEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentEntityClient) MapCreateBulk(slice any, setFunc func(*DocumentEntityCreate, int)) *DocumentEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentEntityCreateBulk{err: fmt.Errorf("calling to DocumentEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentEntity.
func (c *DocumentEntityClient) Update() *DocumentEntityUpdate {
	mutation := newDocumentEntityMutation(c.config, OpUpdate)
	return &DocumentEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentEntityClient) UpdateOne(_m *DocumentEntity) *DocumentEntityUpdateOne {
	mutation := newDocumentEntityMutation(c.config, OpUpdateOne, withDocumentEntity(_m))
	return &DocumentEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentEntityClient) UpdateOneID(id string) *DocumentEntityUpdateOne {
	mutation := newDocumentEntityMutation(c.config, OpUpdateOne, withDocumentEntityID(id))
	return &DocumentEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentEntity.
func (c *DocumentEntityClient) Delete() *DocumentEntityDelete {
	mutation := newDocumentEntityMutation(c.config, OpDelete)
	return &DocumentEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentEntityClient) DeleteOne(_m *DocumentEntity) *DocumentEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentEntityClient) DeleteOneID(id string) *DocumentEntityDeleteOne {
	builder := c.Delete().Where(documententity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentEntityDeleteOne{builder}
}

// Query returns a query builder for DocumentEntity.
func (c *DocumentEntityClient) Query() *DocumentEntityQuery {
	return &DocumentEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentEntity entity by its id.
func (c *DocumentEntityClient) Get(ctx context.Context, id string) (*DocumentEntity, error) {
	return c.Query().Where(documententity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentEntityClient) GetX(ctx context.Context, id string) *DocumentEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentEntity.
func (c *DocumentEntityClient) QueryDocument(_m *DocumentEntity) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documententity.Table, documententity.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documententity.DocumentTable, documententity.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntity queries the entity edge of a DocumentEntity.
func (c *DocumentEntityClient) QueryEntity(_m *DocumentEntity) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documententity.Table, documententity.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documententity.EntityTable, documententity.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentEntityClient) Hooks() []Hook {
	return c.hooks.DocumentEntity
}

// Interceptors returns the client interceptors.
func (c *DocumentEntityClient) Interceptors() []Interceptor {
	return c.inters.DocumentEntity
}

func (c *DocumentEntityClient) mutate(ctx context.Context, m *DocumentEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentEntity mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumentEntities queries the document_entities edge of a Entity.
func (c *EntityClient) QueryDocumentEntities(_m *Entity) *DocumentEntityQuery {
	query := (&DocumentEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(documententity.Table, documententity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.DocumentEntitiesTable, entity.DocumentEntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClaimEntities queries the claim_entities edge of a Entity.
func (c *EntityClient) QueryClaimEntities(_m *Entity) *ClaimEntityQuery {
	query := (&ClaimEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(claimentity.Table, claimentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.ClaimEntitiesTable, entity.ClaimEntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// EntityResolutionClient is a client for the EntityResolution schema.
type EntityResolutionClient struct {
	config
}

// NewEntityResolutionClient returns a client for the EntityResolution from the given config.
func NewEntityResolutionClient(c config) *EntityResolutionClient {
	return &EntityResolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityresolution.Hooks(f(g(h())))`.
func (c *EntityResolutionClient) Use(hooks ...Hook) {
	c.hooks.EntityResolution = append(c.hooks.EntityResolution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityresolution.Intercept(f(g(h())))`.
func (c *EntityResolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityResolution = append(c.inters.EntityResolution, interceptors...)
}

// Create returns a builder for creating a EntityResolution entity.
func (c *EntityResolutionClient) Create() *EntityResolutionCreate {
	mutation := newEntityResolutionMutation(c.config, OpCreate)
	return &EntityResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityResolution entities.
func (c *EntityResolutionClient) CreateBulk(builders ...*EntityResolutionCreate) *EntityResolutionCreateBulk {
	return &EntityResolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityResolutionClient) MapCreateBulk(slice any, setFunc func(*EntityResolutionCreate, int)) *EntityResolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityResolutionCreateBulk{err: fmt.Errorf("calling to EntityResolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityResolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityResolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityResolution.
func (c *EntityResolutionClient) Update() *EntityResolutionUpdate {
	mutation := newEntityResolutionMutation(c.config, OpUpdate)
	return &EntityResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityResolutionClient) UpdateOne(_m *EntityResolution) *EntityResolutionUpdateOne {
	mutation := newEntityResolutionMutation(c.config, OpUpdateOne, withEntityResolution(_m))
	return &EntityResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityResolutionClient) UpdateOneID(id string) *EntityResolutionUpdateOne {
	mutation := newEntityResolutionMutation(c.config, OpUpdateOne, withEntityResolutionID(id))
	return &EntityResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityResolution.
func (c *EntityResolutionClient) Delete() *EntityResolutionDelete {
	mutation := newEntityResolutionMutation(c.config, OpDelete)
	return &EntityResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityResolutionClient) DeleteOne(_m *EntityResolution) *EntityResolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityResolutionClient) DeleteOneID(id string) *EntityResolutionDeleteOne {
	builder := c.Delete().Where(entityresolution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityResolutionDeleteOne{builder}
}

// Query returns a query builder for EntityResolution.
func (c *EntityResolutionClient) Query() *EntityResolutionQuery {
	return &EntityResolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityResolution},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityResolution entity by its id.
func (c *EntityResolutionClient) Get(ctx context.Context, id string) (*EntityResolution, error) {
	return c.Query().Where(entityresolution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityResolutionClient) GetX(ctx context.Context, id string) *EntityResolution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityResolutionClient) Hooks() []Hook {
	return c.hooks.EntityResolution
}

// Interceptors returns the client interceptors.
func (c *EntityResolutionClient) Interceptors() []Interceptor {
	return c.inters.EntityResolution
}

func (c *EntityResolutionClient) mutate(ctx context.Context, m *EntityResolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityResolution mutation op: %q", m.Op())
	}
}

// FetchDocumentClient is a client for the FetchDocument schema.
type FetchDocumentClient struct {
	config
}

// NewFetchDocumentClient returns a client for the FetchDocument from the given config.
func NewFetchDocumentClient(c config) *FetchDocumentClient {
	return &FetchDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fetchdocument.Hooks(f(g(h())))`.
func (c *FetchDocumentClient) Use(hooks ...Hook) {
	c.hooks.FetchDocument = append(c.hooks.FetchDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fetchdocument.Intercept(f(g(h())))`.
func (c *FetchDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.FetchDocument = append(c.inters.FetchDocument, interceptors...)
}

// Create returns a builder for creating a FetchDocument entity.
func (c *FetchDocumentClient) Create() *FetchDocumentCreate {
	mutation := newFetchDocumentMutation(c.config, OpCreate)
	return &FetchDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FetchDocument entities.
func (c *FetchDocumentClient) CreateBulk(builders ...*FetchDocumentCreate) *FetchDocumentCreateBulk {
	return &FetchDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FetchDocumentClient) MapCreateBulk(slice any, setFunc func(*FetchDocumentCreate, int)) *FetchDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FetchDocumentCreateBulk{err: fmt.Errorf("calling to FetchDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FetchDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FetchDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FetchDocument.
func (c *FetchDocumentClient) Update() *FetchDocumentUpdate {
	mutation := newFetchDocumentMutation(c.config, OpUpdate)
	return &FetchDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FetchDocumentClient) UpdateOne(_m *FetchDocument) *FetchDocumentUpdateOne {
	mutation := newFetchDocumentMutation(c.config, OpUpdateOne, withFetchDocument(_m))
	return &FetchDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FetchDocumentClient) UpdateOneID(id string) *FetchDocumentUpdateOne {
	mutation := newFetchDocumentMutation(c.config, OpUpdateOne, withFetchDocumentID(id))
	return &FetchDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FetchDocument.
func (c *FetchDocumentClient) Delete() *FetchDocumentDelete {
	mutation := newFetchDocumentMutation(c.config, OpDelete)
	return &FetchDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FetchDocumentClient) DeleteOne(_m *FetchDocument) *FetchDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FetchDocumentClient) DeleteOneID(id string) *FetchDocumentDeleteOne {
	builder := c.Delete().Where(fetchdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FetchDocumentDeleteOne{builder}
}

// Query returns a query builder for FetchDocument.
func (c *FetchDocumentClient) Query() *FetchDocumentQuery {
	return &FetchDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFetchDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a FetchDocument entity by its id.
func (c *FetchDocumentClient) Get(ctx context.Context, id string) (*FetchDocument, error) {
	return c.Query().Where(fetchdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FetchDocumentClient) GetX(ctx context.Context, id string) *FetchDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FetchDocumentClient) Hooks() []Hook {
	return c.hooks.FetchDocument
}

// Interceptors returns the client interceptors.
func (c *FetchDocumentClient) Interceptors() []Interceptor {
	return c.inters.FetchDocument
}

func (c *FetchDocumentClient) mutate(ctx context.Context, m *FetchDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FetchDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FetchDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FetchDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FetchDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FetchDocument mutation op: %q", m.Op())
	}
}

// SectionExtractionClient is a client for the SectionExtraction schema.
type SectionExtractionClient struct {
	config
}

// NewSectionExtractionClient returns a client for the SectionExtraction from the given config.
func NewSectionExtractionClient(c config) *SectionExtractionClient {
	return &SectionExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sectionextraction.Hooks(f(g(h())))`.
func (c *SectionExtractionClient) Use(hooks ...Hook) {
	c.hooks.SectionExtraction = append(c.hooks.SectionExtraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sectionextraction.Intercept(f(g(h())))`.
func (c *SectionExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SectionExtraction = append(c.inters.SectionExtraction, interceptors...)
}

// Create returns a builder for creating a SectionExtraction entity.
func (c *SectionExtractionClient) Create() *SectionExtractionCreate {
	mutation := newSectionExtractionMutation(c.config, OpCreate)
	return &SectionExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SectionExtraction entities.
func (c *SectionExtractionClient) CreateBulk(builders ...*SectionExtractionCreate) *SectionExtractionCreateBulk {
	return &SectionExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SectionExtractionClient) MapCreateBulk(slice any, setFunc func(*SectionExtractionCreate, int)) *SectionExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SectionExtractionCreateBulk{err: fmt.Errorf("calling to SectionExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SectionExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SectionExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SectionExtraction.
func (c *SectionExtractionClient) Update() *SectionExtractionUpdate {
	mutation := newSectionExtractionMutation(c.config, OpUpdate)
	return &SectionExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SectionExtractionClient) UpdateOne(_m *SectionExtraction) *SectionExtractionUpdateOne {
	mutation := newSectionExtractionMutation(c.config, OpUpdateOne, withSectionExtraction(_m))
	return &SectionExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SectionExtractionClient) UpdateOneID(id string) *SectionExtractionUpdateOne {
	mutation := newSectionExtractionMutation(c.config, OpUpdateOne, withSectionExtractionID(id))
	return &SectionExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SectionExtraction.
func (c *SectionExtractionClient) Delete() *SectionExtractionDelete {
	mutation := newSectionExtractionMutation(c.config, OpDelete)
	return &SectionExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SectionExtractionClient) DeleteOne(_m *SectionExtraction) *SectionExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SectionExtractionClient) DeleteOneID(id string) *SectionExtractionDeleteOne {
	builder := c.Delete().Where(sectionextraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SectionExtractionDeleteOne{builder}
}

// Query returns a query builder for SectionExtraction.
func (c *SectionExtractionClient) Query() *SectionExtractionQuery {
	return &SectionExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSectionExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a SectionExtraction entity by its id.
func (c *SectionExtractionClient) Get(ctx context.Context, id string) (*SectionExtraction, error) {
	return c.Query().Where(sectionextraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SectionExtractionClient) GetX(ctx context.Context, id string) *SectionExtraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SectionExtractionClient) Hooks() []Hook {
	return c.hooks.SectionExtraction
}

// Interceptors returns the client interceptors.
func (c *SectionExtractionClient) Interceptors() []Interceptor {
	return c.inters.SectionExtraction
}

func (c *SectionExtractionClient) mutate(ctx context.Context, m *SectionExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SectionExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SectionExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SectionExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SectionExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SectionExtraction mutation op: %q", m.Op())
	}
}

// StepEventClient is a client for the StepEvent schema.
type StepEventClient struct {
	config
}

// NewStepEventClient returns a client for the StepEvent from the given config.
func NewStepEventClient(c config) *StepEventClient {
	return &StepEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepevent.Hooks(f(g(h())))`.
func (c *StepEventClient) Use(hooks ...Hook) {
	c.hooks.StepEvent = append(c.hooks.StepEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepevent.Intercept(f(g(h())))`.
func (c *StepEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepEvent = append(c.inters.StepEvent, interceptors...)
}

// Create returns a builder for creating a StepEvent entity.
func (c *StepEventClient) Create() *StepEventCreate {
	mutation := newStepEventMutation(c.config, OpCreate)
	return &StepEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepEvent entities.
func (c *StepEventClient) CreateBulk(builders ...*StepEventCreate) *StepEventCreateBulk {
	return &StepEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepEventClient) MapCreateBulk(slice any, setFunc func(*StepEventCreate, int)) *StepEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepEventCreateBulk{err: fmt.Errorf("calling to StepEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepEvent.
func (c *StepEventClient) Update() *StepEventUpdate {
	mutation := newStepEventMutation(c.config, OpUpdate)
	return &StepEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepEventClient) UpdateOne(_m *StepEvent) *StepEventUpdateOne {
	mutation := newStepEventMutation(c.config, OpUpdateOne, withStepEvent(_m))
	return &StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepEventClient) UpdateOneID(id int) *StepEventUpdateOne {
	mutation := newStepEventMutation(c.config, OpUpdateOne, withStepEventID(id))
	return &StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepEvent.
func (c *StepEventClient) Delete() *StepEventDelete {
	mutation := newStepEventMutation(c.config, OpDelete)
	return &StepEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepEventClient) DeleteOne(_m *StepEvent) *StepEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepEventClient) DeleteOneID(id int) *StepEventDeleteOne {
	builder := c.Delete().Where(stepevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepEventDeleteOne{builder}
}

// Query returns a query builder for StepEvent.
func (c *StepEventClient) Query() *StepEventQuery {
	return &StepEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StepEvent entity by its id.
func (c *StepEventClient) Get(ctx context.Context, id int) (*StepEvent, error) {
	return c.Query().Where(stepevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepEventClient) GetX(ctx context.Context, id int) *StepEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a StepEvent.
func (c *StepEventClient) QueryRun(_m *StepEvent) *WorkflowRunQuery {
	query := (&WorkflowRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepevent.Table, stepevent.FieldID, id),
			sqlgraph.To(workflowrun.Table, workflowrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepevent.RunTable, stepevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepEventClient) Hooks() []Hook {
	return c.hooks.StepEvent
}

// Interceptors returns the client interceptors.
func (c *StepEventClient) Interceptors() []Interceptor {
	return c.inters.StepEvent
}

func (c *StepEventClient) mutate(ctx context.Context, m *StepEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepEvent mutation op: %q", m.Op())
	}
}

// StepLogClient is a client for the StepLog schema.
type StepLogClient struct {
	config
}

// NewStepLogClient returns a client for the StepLog from the given config.
func NewStepLogClient(c config) *StepLogClient {
	return &StepLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `steplog.Hooks(f(g(h())))`.
func (c *StepLogClient) Use(hooks ...Hook) {
	c.hooks.StepLog = append(c.hooks.StepLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `steplog.Intercept(f(g(h())))`.
func (c *StepLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepLog = append(c.inters.StepLog, interceptors...)
}

// Create returns a builder for creating a StepLog entity.
func (c *StepLogClient) Create() *StepLogCreate {
	mutation := newStepLogMutation(c.config, OpCreate)
	return &StepLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepLog entities.
func (c *StepLogClient) CreateBulk(builders ...*StepLogCreate) *StepLogCreateBulk {
	return &StepLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepLogClient) MapCreateBulk(slice any, setFunc func(*StepLogCreate, int)) *StepLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepLogCreateBulk{err: fmt.Errorf("calling to StepLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepLog.
func (c *StepLogClient) Update() *StepLogUpdate {
	mutation := newStepLogMutation(c.config, OpUpdate)
	return &StepLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepLogClient) UpdateOne(_m *StepLog) *StepLogUpdateOne {
	mutation := newStepLogMutation(c.config, OpUpdateOne, withStepLog(_m))
	return &StepLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepLogClient) UpdateOneID(id string) *StepLogUpdateOne {
	mutation := newStepLogMutation(c.config, OpUpdateOne, withStepLogID(id))
	return &StepLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepLog.
func (c *StepLogClient) Delete() *StepLogDelete {
	mutation := newStepLogMutation(c.config, OpDelete)
	return &StepLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepLogClient) DeleteOne(_m *StepLog) *StepLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepLogClient) DeleteOneID(id string) *StepLogDeleteOne {
	builder := c.Delete().Where(steplog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepLogDeleteOne{builder}
}

// Query returns a query builder for StepLog.
func (c *StepLogClient) Query() *StepLogQuery {
	return &StepLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepLog},
		inters: c.Interceptors(),
	}
}

// Get returns a StepLog entity by its id.
func (c *StepLogClient) Get(ctx context.Context, id string) (*StepLog, error) {
	return c.Query().Where(steplog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepLogClient) GetX(ctx context.Context, id string) *StepLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a StepLog.
func (c *StepLogClient) QueryRun(_m *StepLog) *WorkflowRunQuery {
	query := (&WorkflowRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(steplog.Table, steplog.FieldID, id),
			sqlgraph.To(workflowrun.Table, workflowrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, steplog.RunTable, steplog.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepLogClient) Hooks() []Hook {
	return c.hooks.StepLog
}

// Interceptors returns the client interceptors.
func (c *StepLogClient) Interceptors() []Interceptor {
	return c.inters.StepLog
}

func (c *StepLogClient) mutate(ctx context.Context, m *StepLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepLog mutation op: %q", m.Op())
	}
}

// WorkflowRunClient is a client for the WorkflowRun schema.
type WorkflowRunClient struct {
	config
}

// NewWorkflowRunClient returns a client for the WorkflowRun from the given config.
func NewWorkflowRunClient(c config) *WorkflowRunClient {
	return &WorkflowRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowrun.Hooks(f(g(h())))`.
func (c *WorkflowRunClient) Use(hooks ...Hook) {
	c.hooks.WorkflowRun = append(c.hooks.WorkflowRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowrun.Intercept(f(g(h())))`.
func (c *WorkflowRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowRun = append(c.inters.WorkflowRun, interceptors...)
}

// Create returns a builder for creating a WorkflowRun entity.
func (c *WorkflowRunClient) Create() *WorkflowRunCreate {
	mutation := newWorkflowRunMutation(c.config, OpCreate)
	return &WorkflowRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowRun entities.
func (c *WorkflowRunClient) CreateBulk(builders ...*WorkflowRunCreate) *WorkflowRunCreateBulk {
	return &WorkflowRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowRunClient) MapCreateBulk(slice any, setFunc func(*WorkflowRunCreate, int)) *WorkflowRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowRunCreateBulk{err: fmt.Errorf("calling to WorkflowRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowRun.
func (c *WorkflowRunClient) Update() *WorkflowRunUpdate {
	mutation := newWorkflowRunMutation(c.config, OpUpdate)
	return &WorkflowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowRunClient) UpdateOne(_m *WorkflowRun) *WorkflowRunUpdateOne {
	mutation := newWorkflowRunMutation(c.config, OpUpdateOne, withWorkflowRun(_m))
	return &WorkflowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowRunClient) UpdateOneID(id string) *WorkflowRunUpdateOne {
	mutation := newWorkflowRunMutation(c.config, OpUpdateOne, withWorkflowRunID(id))
	return &WorkflowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowRun.
func (c *WorkflowRunClient) Delete() *WorkflowRunDelete {
	mutation := newWorkflowRunMutation(c.config, OpDelete)
	return &WorkflowRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowRunClient) DeleteOne(_m *WorkflowRun) *WorkflowRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowRunClient) DeleteOneID(id string) *WorkflowRunDeleteOne {
	builder := c.Delete().Where(workflowrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowRunDeleteOne{builder}
}

// Query returns a query builder for WorkflowRun.
func (c *WorkflowRunClient) Query() *WorkflowRunQuery {
	return &WorkflowRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowRun},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowRun entity by its id.
func (c *WorkflowRunClient) Get(ctx context.Context, id string) (*WorkflowRun, error) {
	return c.Query().Where(workflowrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowRunClient) GetX(ctx context.Context, id string) *WorkflowRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStepLogs queries the step_logs edge of a WorkflowRun.
func (c *WorkflowRunClient) QueryStepLogs(_m *WorkflowRun) *StepLogQuery {
	query := (&StepLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowrun.Table, workflowrun.FieldID, id),
			sqlgraph.To(steplog.Table, steplog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowrun.StepLogsTable, workflowrun.StepLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepEvents queries the step_events edge of a WorkflowRun.
func (c *WorkflowRunClient) QueryStepEvents(_m *WorkflowRun) *StepEventQuery {
	query := (&StepEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowrun.Table, workflowrun.FieldID, id),
			sqlgraph.To(stepevent.Table, stepevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowrun.StepEventsTable, workflowrun.StepEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowRunClient) Hooks() []Hook {
	return c.hooks.WorkflowRun
}

// Interceptors returns the client interceptors.
func (c *WorkflowRunClient) Interceptors() []Interceptor {
	return c.inters.WorkflowRun
}

func (c *WorkflowRunClient) mutate(ctx context.Context, m *WorkflowRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Claim, ClaimEntity, ClaimGroup, ClaimResolution, Discovery, Document,
		DocumentEntity, Entity, EntityResolution, FetchDocument, SectionExtraction,
		StepEvent, StepLog, WorkflowRun []ent.Hook
	}
	inters struct {
		Claim, ClaimEntity, ClaimGroup, ClaimResolution, Discovery, Document,
		DocumentEntity, Entity, EntityResolution, FetchDocument, SectionExtraction,
		StepEvent, StepLog, WorkflowRun []ent.Interceptor
	}
)
