// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/si-akram/invoice-docai/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DocumentProcessing is the client for interacting with the DocumentProcessing builders.
	DocumentProcessing *DocumentProcessingClient
	// ExtractedEntity is the client for interacting with the ExtractedEntity builders.
	ExtractedEntity *ExtractedEntityClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DocumentProcessing = NewDocumentProcessingClient(c.config)
	c.ExtractedEntity = NewExtractedEntityClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		DocumentProcessing: NewDocumentProcessingClient(cfg),
		ExtractedEntity:    NewExtractedEntityClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		DocumentProcessing: NewDocumentProcessingClient(cfg),
		ExtractedEntity:    NewExtractedEntityClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DocumentProcessing.
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
	c.DocumentProcessing.Use(hooks...)
	c.ExtractedEntity.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DocumentProcessing.Intercept(interceptors...)
	c.ExtractedEntity.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentProcessingMutation:
		return c.DocumentProcessing.mutate(ctx, m)
	case *ExtractedEntityMutation:
		return c.ExtractedEntity.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentProcessingClient is a client for the DocumentProcessing schema.
type DocumentProcessingClient struct {
	config
}

// NewDocumentProcessingClient returns a client for the DocumentProcessing from the given config.
func NewDocumentProcessingClient(c config) *DocumentProcessingClient {
	return &DocumentProcessingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentprocessing.Hooks(f(g(h())))`.
func (c *DocumentProcessingClient) Use(hooks ...Hook) {
	c.hooks.DocumentProcessing = append(c.hooks.DocumentProcessing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentprocessing.Intercept(f(g(h())))`.
func (c *DocumentProcessingClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentProcessing = append(c.inters.DocumentProcessing, interceptors...)
}

// Create returns a builder for creating a DocumentProcessing entity.
func (c *DocumentProcessingClient) Create() *DocumentProcessingCreate {
	mutation := newDocumentProcessingMutation(c.config, OpCreate)
	return &DocumentProcessingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentProcessing entities.
func (c *DocumentProcessingClient) CreateBulk(builders ...*DocumentProcessingCreate) *DocumentProcessingCreateBulk {
	return &DocumentProcessingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentProcessingClient) MapCreateBulk(slice any, setFunc func(*DocumentProcessingCreate, int)) *DocumentProcessingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentProcessingCreateBulk{err: fmt.Errorf("calling to DocumentProcessingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentProcessingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentProcessingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentProcessing.
func (c *DocumentProcessingClient) Update() *DocumentProcessingUpdate {
	mutation := newDocumentProcessingMutation(c.config, OpUpdate)
	return &DocumentProcessingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentProcessingClient) UpdateOne(_m *DocumentProcessing) *DocumentProcessingUpdateOne {
	mutation := newDocumentProcessingMutation(c.config, OpUpdateOne, withDocumentProcessing(_m))
	return &DocumentProcessingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentProcessingClient) UpdateOneID(id int) *DocumentProcessingUpdateOne {
	mutation := newDocumentProcessingMutation(c.config, OpUpdateOne, withDocumentProcessingID(id))
	return &DocumentProcessingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentProcessing.
func (c *DocumentProcessingClient) Delete() *DocumentProcessingDelete {
	mutation := newDocumentProcessingMutation(c.config, OpDelete)
	return &DocumentProcessingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentProcessingClient) DeleteOne(_m *DocumentProcessing) *DocumentProcessingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentProcessingClient) DeleteOneID(id int) *DocumentProcessingDeleteOne {
	builder := c.Delete().Where(documentprocessing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentProcessingDeleteOne{builder}
}

// Query returns a query builder for DocumentProcessing.
func (c *DocumentProcessingClient) Query() *DocumentProcessingQuery {
	return &DocumentProcessingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentProcessing},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentProcessing entity by its id.
func (c *DocumentProcessingClient) Get(ctx context.Context, id int) (*DocumentProcessing, error) {
	return c.Query().Where(documentprocessing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentProcessingClient) GetX(ctx context.Context, id int) *DocumentProcessing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntities queries the entities edge of a DocumentProcessing.
func (c *DocumentProcessingClient) QueryEntities(_m *DocumentProcessing) *ExtractedEntityQuery {
	query := (&ExtractedEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentprocessing.Table, documentprocessing.FieldID, id),
			sqlgraph.To(extractedentity.Table, extractedentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentprocessing.EntitiesTable, documentprocessing.EntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentProcessingClient) Hooks() []Hook {
	return c.hooks.DocumentProcessing
}

// Interceptors returns the client interceptors.
func (c *DocumentProcessingClient) Interceptors() []Interceptor {
	return c.inters.DocumentProcessing
}

func (c *DocumentProcessingClient) mutate(ctx context.Context, m *DocumentProcessingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentProcessingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentProcessingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentProcessingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentProcessingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentProcessing mutation op: %q", m.Op())
	}
}

// ExtractedEntityClient is a client for the ExtractedEntity schema.
type ExtractedEntityClient struct {
	config
}

// NewExtractedEntityClient returns a client for the ExtractedEntity from the given config.
func NewExtractedEntityClient(c config) *ExtractedEntityClient {
	return &ExtractedEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedentity.Hooks(f(g(h())))`.
func (c *ExtractedEntityClient) Use(hooks ...Hook) {
	c.hooks.ExtractedEntity = append(c.hooks.ExtractedEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedentity.Intercept(f(g(h())))`.
func (c *ExtractedEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedEntity = append(c.inters.ExtractedEntity, interceptors...)
}

// Create returns a builder for creating a ExtractedEntity entity.
func (c *ExtractedEntityClient) Create() *ExtractedEntityCreate {
	mutation := newExtractedEntityMutation(c.config, OpCreate)
	return &ExtractedEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedEntity entities.
func (c *ExtractedEntityClient) CreateBulk(builders ...*ExtractedEntityCreate) *ExtractedEntityCreateBulk {
	return &ExtractedEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedEntityClient) MapCreateBulk(slice any, setFunc func(*ExtractedEntityCreate, int)) *ExtractedEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedEntityCreateBulk{err: fmt.Errorf("calling to ExtractedEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedEntity.
func (c *ExtractedEntityClient) Update() *ExtractedEntityUpdate {
	mutation := newExtractedEntityMutation(c.config, OpUpdate)
	return &ExtractedEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedEntityClient) UpdateOne(_m *ExtractedEntity) *ExtractedEntityUpdateOne {
	mutation := newExtractedEntityMutation(c.config, OpUpdateOne, withExtractedEntity(_m))
	return &ExtractedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedEntityClient) UpdateOneID(id int) *ExtractedEntityUpdateOne {
	mutation := newExtractedEntityMutation(c.config, OpUpdateOne, withExtractedEntityID(id))
	return &ExtractedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedEntity.
func (c *ExtractedEntityClient) Delete() *ExtractedEntityDelete {
	mutation := newExtractedEntityMutation(c.config, OpDelete)
	return &ExtractedEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedEntityClient) DeleteOne(_m *ExtractedEntity) *ExtractedEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedEntityClient) DeleteOneID(id int) *ExtractedEntityDeleteOne {
	builder := c.Delete().Where(extractedentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedEntityDeleteOne{builder}
}

// Query returns a query builder for ExtractedEntity.
func (c *ExtractedEntityClient) Query() *ExtractedEntityQuery {
	return &ExtractedEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedEntity entity by its id.
func (c *ExtractedEntityClient) Get(ctx context.Context, id int) (*ExtractedEntity, error) {
	return c.Query().Where(extractedentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedEntityClient) GetX(ctx context.Context, id int) *ExtractedEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcessing queries the processing edge of a ExtractedEntity.
func (c *ExtractedEntityClient) QueryProcessing(_m *ExtractedEntity) *DocumentProcessingQuery {
	query := (&DocumentProcessingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedentity.Table, extractedentity.FieldID, id),
			sqlgraph.To(documentprocessing.Table, documentprocessing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedentity.ProcessingTable, extractedentity.ProcessingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedEntityClient) Hooks() []Hook {
	return c.hooks.ExtractedEntity
}

// Interceptors returns the client interceptors.
func (c *ExtractedEntityClient) Interceptors() []Interceptor {
	return c.inters.ExtractedEntity
}

func (c *ExtractedEntityClient) mutate(ctx context.Context, m *ExtractedEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedEntity mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DocumentProcessing, ExtractedEntity []ent.Hook
	}
	inters struct {
		DocumentProcessing, ExtractedEntity []ent.Interceptor
	}
)
