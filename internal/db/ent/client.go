// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"foliolink/internal/db/ent/migrate"

	"foliolink/internal/db/ent/contactmessage"
	"foliolink/internal/db/ent/pageview"
	"foliolink/internal/db/ent/ratelimitentry"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContactMessage is the client for interacting with the ContactMessage builders.
	ContactMessage *ContactMessageClient
	// PageView is the client for interacting with the PageView builders.
	PageView *PageViewClient
	// RateLimitEntry is the client for interacting with the RateLimitEntry builders.
	RateLimitEntry *RateLimitEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContactMessage = NewContactMessageClient(c.config)
	c.PageView = NewPageViewClient(c.config)
	c.RateLimitEntry = NewRateLimitEntryClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		ContactMessage: NewContactMessageClient(cfg),
		PageView:       NewPageViewClient(cfg),
		RateLimitEntry: NewRateLimitEntryClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		ContactMessage: NewContactMessageClient(cfg),
		PageView:       NewPageViewClient(cfg),
		RateLimitEntry: NewRateLimitEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContactMessage.
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
	c.ContactMessage.Use(hooks...)
	c.PageView.Use(hooks...)
	c.RateLimitEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ContactMessage.Intercept(interceptors...)
	c.PageView.Intercept(interceptors...)
	c.RateLimitEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContactMessageMutation:
		return c.ContactMessage.mutate(ctx, m)
	case *PageViewMutation:
		return c.PageView.mutate(ctx, m)
	case *RateLimitEntryMutation:
		return c.RateLimitEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContactMessageClient is a client for the ContactMessage schema.
type ContactMessageClient struct {
	config
}

// NewContactMessageClient returns a client for the ContactMessage from the given config.
func NewContactMessageClient(c config) *ContactMessageClient {
	return &ContactMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contactmessage.Hooks(f(g(h())))`.
func (c *ContactMessageClient) Use(hooks ...Hook) {
	c.hooks.ContactMessage = append(c.hooks.ContactMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contactmessage.Intercept(f(g(h())))`.
func (c *ContactMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContactMessage = append(c.inters.ContactMessage, interceptors...)
}

// Create returns a builder for creating a ContactMessage entity.
func (c *ContactMessageClient) Create() *ContactMessageCreate {
	mutation := newContactMessageMutation(c.config, OpCreate)
	return &ContactMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContactMessage entities.
func (c *ContactMessageClient) CreateBulk(builders ...*ContactMessageCreate) *ContactMessageCreateBulk {
	return &ContactMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactMessageClient) MapCreateBulk(slice any, setFunc func(*ContactMessageCreate, int)) *ContactMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactMessageCreateBulk{err: fmt.Errorf("calling to ContactMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContactMessage.
func (c *ContactMessageClient) Update() *ContactMessageUpdate {
	mutation := newContactMessageMutation(c.config, OpUpdate)
	return &ContactMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactMessageClient) UpdateOne(cm *ContactMessage) *ContactMessageUpdateOne {
	mutation := newContactMessageMutation(c.config, OpUpdateOne, withContactMessage(cm))
	return &ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactMessageClient) UpdateOneID(id int) *ContactMessageUpdateOne {
	mutation := newContactMessageMutation(c.config, OpUpdateOne, withContactMessageID(id))
	return &ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContactMessage.
func (c *ContactMessageClient) Delete() *ContactMessageDelete {
	mutation := newContactMessageMutation(c.config, OpDelete)
	return &ContactMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactMessageClient) DeleteOne(cm *ContactMessage) *ContactMessageDeleteOne {
	return c.DeleteOneID(cm.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactMessageClient) DeleteOneID(id int) *ContactMessageDeleteOne {
	builder := c.Delete().Where(contactmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactMessageDeleteOne{builder}
}

// Query returns a query builder for ContactMessage.
func (c *ContactMessageClient) Query() *ContactMessageQuery {
	return &ContactMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContactMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ContactMessage entity by its id.
func (c *ContactMessageClient) Get(ctx context.Context, id int) (*ContactMessage, error) {
	return c.Query().Where(contactmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactMessageClient) GetX(ctx context.Context, id int) *ContactMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContactMessageClient) Hooks() []Hook {
	return c.hooks.ContactMessage
}

// Interceptors returns the client interceptors.
func (c *ContactMessageClient) Interceptors() []Interceptor {
	return c.inters.ContactMessage
}

func (c *ContactMessageClient) mutate(ctx context.Context, m *ContactMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContactMessage mutation op: %q", m.Op())
	}
}

// PageViewClient is a client for the PageView schema.
type PageViewClient struct {
	config
}

// NewPageViewClient returns a client for the PageView from the given config.
func NewPageViewClient(c config) *PageViewClient {
	return &PageViewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pageview.Hooks(f(g(h())))`.
func (c *PageViewClient) Use(hooks ...Hook) {
	c.hooks.PageView = append(c.hooks.PageView, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pageview.Intercept(f(g(h())))`.
func (c *PageViewClient) Intercept(interceptors ...Interceptor) {
	c.inters.PageView = append(c.inters.PageView, interceptors...)
}

// Create returns a builder for creating a PageView entity.
func (c *PageViewClient) Create() *PageViewCreate {
	mutation := newPageViewMutation(c.config, OpCreate)
	return &PageViewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PageView entities.
func (c *PageViewClient) CreateBulk(builders ...*PageViewCreate) *PageViewCreateBulk {
	return &PageViewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PageViewClient) MapCreateBulk(slice any, setFunc func(*PageViewCreate, int)) *PageViewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PageViewCreateBulk{err: fmt.Errorf("calling to PageViewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PageViewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PageViewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PageView.
func (c *PageViewClient) Update() *PageViewUpdate {
	mutation := newPageViewMutation(c.config, OpUpdate)
	return &PageViewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PageViewClient) UpdateOne(pv *PageView) *PageViewUpdateOne {
	mutation := newPageViewMutation(c.config, OpUpdateOne, withPageView(pv))
	return &PageViewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PageViewClient) UpdateOneID(id int) *PageViewUpdateOne {
	mutation := newPageViewMutation(c.config, OpUpdateOne, withPageViewID(id))
	return &PageViewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PageView.
func (c *PageViewClient) Delete() *PageViewDelete {
	mutation := newPageViewMutation(c.config, OpDelete)
	return &PageViewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PageViewClient) DeleteOne(pv *PageView) *PageViewDeleteOne {
	return c.DeleteOneID(pv.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PageViewClient) DeleteOneID(id int) *PageViewDeleteOne {
	builder := c.Delete().Where(pageview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PageViewDeleteOne{builder}
}

// Query returns a query builder for PageView.
func (c *PageViewClient) Query() *PageViewQuery {
	return &PageViewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePageView},
		inters: c.Interceptors(),
	}
}

// Get returns a PageView entity by its id.
func (c *PageViewClient) Get(ctx context.Context, id int) (*PageView, error) {
	return c.Query().Where(pageview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PageViewClient) GetX(ctx context.Context, id int) *PageView {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PageViewClient) Hooks() []Hook {
	return c.hooks.PageView
}

// Interceptors returns the client interceptors.
func (c *PageViewClient) Interceptors() []Interceptor {
	return c.inters.PageView
}

func (c *PageViewClient) mutate(ctx context.Context, m *PageViewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PageViewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PageViewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PageViewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PageViewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PageView mutation op: %q", m.Op())
	}
}

// RateLimitEntryClient is a client for the RateLimitEntry schema.
type RateLimitEntryClient struct {
	config
}

// NewRateLimitEntryClient returns a client for the RateLimitEntry from the given config.
func NewRateLimitEntryClient(c config) *RateLimitEntryClient {
	return &RateLimitEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ratelimitentry.Hooks(f(g(h())))`.
func (c *RateLimitEntryClient) Use(hooks ...Hook) {
	c.hooks.RateLimitEntry = append(c.hooks.RateLimitEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ratelimitentry.Intercept(f(g(h())))`.
func (c *RateLimitEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.RateLimitEntry = append(c.inters.RateLimitEntry, interceptors...)
}

// Create returns a builder for creating a RateLimitEntry entity.
func (c *RateLimitEntryClient) Create() *RateLimitEntryCreate {
	mutation := newRateLimitEntryMutation(c.config, OpCreate)
	return &RateLimitEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RateLimitEntry entities.
func (c *RateLimitEntryClient) CreateBulk(builders ...*RateLimitEntryCreate) *RateLimitEntryCreateBulk {
	return &RateLimitEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RateLimitEntryClient) MapCreateBulk(slice any, setFunc func(*RateLimitEntryCreate, int)) *RateLimitEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RateLimitEntryCreateBulk{err: fmt.Errorf("calling to RateLimitEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RateLimitEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RateLimitEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RateLimitEntry.
func (c *RateLimitEntryClient) Update() *RateLimitEntryUpdate {
	mutation := newRateLimitEntryMutation(c.config, OpUpdate)
	return &RateLimitEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RateLimitEntryClient) UpdateOne(rle *RateLimitEntry) *RateLimitEntryUpdateOne {
	mutation := newRateLimitEntryMutation(c.config, OpUpdateOne, withRateLimitEntry(rle))
	return &RateLimitEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RateLimitEntryClient) UpdateOneID(id int) *RateLimitEntryUpdateOne {
	mutation := newRateLimitEntryMutation(c.config, OpUpdateOne, withRateLimitEntryID(id))
	return &RateLimitEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RateLimitEntry.
func (c *RateLimitEntryClient) Delete() *RateLimitEntryDelete {
	mutation := newRateLimitEntryMutation(c.config, OpDelete)
	return &RateLimitEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RateLimitEntryClient) DeleteOne(rle *RateLimitEntry) *RateLimitEntryDeleteOne {
	return c.DeleteOneID(rle.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RateLimitEntryClient) DeleteOneID(id int) *RateLimitEntryDeleteOne {
	builder := c.Delete().Where(ratelimitentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RateLimitEntryDeleteOne{builder}
}

// Query returns a query builder for RateLimitEntry.
func (c *RateLimitEntryClient) Query() *RateLimitEntryQuery {
	return &RateLimitEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRateLimitEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a RateLimitEntry entity by its id.
func (c *RateLimitEntryClient) Get(ctx context.Context, id int) (*RateLimitEntry, error) {
	return c.Query().Where(ratelimitentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RateLimitEntryClient) GetX(ctx context.Context, id int) *RateLimitEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RateLimitEntryClient) Hooks() []Hook {
	return c.hooks.RateLimitEntry
}

// Interceptors returns the client interceptors.
func (c *RateLimitEntryClient) Interceptors() []Interceptor {
	return c.inters.RateLimitEntry
}

func (c *RateLimitEntryClient) mutate(ctx context.Context, m *RateLimitEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RateLimitEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RateLimitEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RateLimitEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RateLimitEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RateLimitEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContactMessage, PageView, RateLimitEntry []ent.Hook
	}
	inters struct {
		ContactMessage, PageView, RateLimitEntry []ent.Interceptor
	}
)
