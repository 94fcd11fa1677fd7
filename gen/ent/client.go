// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/bestofgoa/bok/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bestofgoa/bok/gen/ent/attribute"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/submission"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attribute is the client for interacting with the Attribute builders.
	Attribute *AttributeClient
	// FAQ is the client for interacting with the FAQ builders.
	FAQ *FAQClient
	// Listing is the client for interacting with the Listing builders.
	Listing *ListingClient
	// ListingImage is the client for interacting with the ListingImage builders.
	ListingImage *ListingImageClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attribute = NewAttributeClient(c.config)
	c.FAQ = NewFAQClient(c.config)
	c.Listing = NewListingClient(c.config)
	c.ListingImage = NewListingImageClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		Attribute:    NewAttributeClient(cfg),
		FAQ:          NewFAQClient(cfg),
		Listing:      NewListingClient(cfg),
		ListingImage: NewListingImageClient(cfg),
		Submission:   NewSubmissionClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Attribute:    NewAttributeClient(cfg),
		FAQ:          NewFAQClient(cfg),
		Listing:      NewListingClient(cfg),
		ListingImage: NewListingImageClient(cfg),
		Submission:   NewSubmissionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attribute.
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
	c.Attribute.Use(hooks...)
	c.FAQ.Use(hooks...)
	c.Listing.Use(hooks...)
	c.ListingImage.Use(hooks...)
	c.Submission.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Attribute.Intercept(interceptors...)
	c.FAQ.Intercept(interceptors...)
	c.Listing.Intercept(interceptors...)
	c.ListingImage.Intercept(interceptors...)
	c.Submission.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttributeMutation:
		return c.Attribute.mutate(ctx, m)
	case *FAQMutation:
		return c.FAQ.mutate(ctx, m)
	case *ListingMutation:
		return c.Listing.mutate(ctx, m)
	case *ListingImageMutation:
		return c.ListingImage.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttributeClient is a client for the Attribute schema.
type AttributeClient struct {
	config
}

// NewAttributeClient returns a client for the Attribute from the given config.
func NewAttributeClient(c config) *AttributeClient {
	return &AttributeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attribute.Hooks(f(g(h())))`.
func (c *AttributeClient) Use(hooks ...Hook) {
	c.hooks.Attribute = append(c.hooks.Attribute, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attribute.Intercept(f(g(h())))`.
func (c *AttributeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attribute = append(c.inters.Attribute, interceptors...)
}

// Create returns a builder for creating a Attribute entity.
func (c *AttributeClient) Create() *AttributeCreate {
	mutation := newAttributeMutation(c.config, OpCreate)
	return &AttributeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attribute entities.
func (c *AttributeClient) CreateBulk(builders ...*AttributeCreate) *AttributeCreateBulk {
	return &AttributeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttributeClient) MapCreateBulk(slice any, setFunc func(*AttributeCreate, int)) *AttributeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttributeCreateBulk{err: fmt.Errorf("calling to AttributeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttributeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttributeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attribute.
func (c *AttributeClient) Update() *AttributeUpdate {
	mutation := newAttributeMutation(c.config, OpUpdate)
	return &AttributeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttributeClient) UpdateOne(_m *Attribute) *AttributeUpdateOne {
	mutation := newAttributeMutation(c.config, OpUpdateOne, withAttribute(_m))
	return &AttributeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttributeClient) UpdateOneID(id int) *AttributeUpdateOne {
	mutation := newAttributeMutation(c.config, OpUpdateOne, withAttributeID(id))
	return &AttributeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attribute.
func (c *AttributeClient) Delete() *AttributeDelete {
	mutation := newAttributeMutation(c.config, OpDelete)
	return &AttributeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttributeClient) DeleteOne(_m *Attribute) *AttributeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttributeClient) DeleteOneID(id int) *AttributeDeleteOne {
	builder := c.Delete().Where(attribute.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttributeDeleteOne{builder}
}

// Query returns a query builder for Attribute.
func (c *AttributeClient) Query() *AttributeQuery {
	return &AttributeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttribute},
		inters: c.Interceptors(),
	}
}

// Get returns a Attribute entity by its id.
func (c *AttributeClient) Get(ctx context.Context, id int) (*Attribute, error) {
	return c.Query().Where(attribute.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttributeClient) GetX(ctx context.Context, id int) *Attribute {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryListings queries the listings edge of a Attribute.
func (c *AttributeClient) QueryListings(_m *Attribute) *ListingQuery {
	query := (&ListingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attribute.Table, attribute.FieldID, id),
			sqlgraph.To(listing.Table, listing.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, attribute.ListingsTable, attribute.ListingsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttributeClient) Hooks() []Hook {
	return c.hooks.Attribute
}

// Interceptors returns the client interceptors.
func (c *AttributeClient) Interceptors() []Interceptor {
	return c.inters.Attribute
}

func (c *AttributeClient) mutate(ctx context.Context, m *AttributeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttributeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttributeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttributeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttributeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attribute mutation op: %q", m.Op())
	}
}

// FAQClient is a client for the FAQ schema.
type FAQClient struct {
	config
}

// NewFAQClient returns a client for the FAQ from the given config.
func NewFAQClient(c config) *FAQClient {
	return &FAQClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `faq.Hooks(f(g(h())))`.
func (c *FAQClient) Use(hooks ...Hook) {
	c.hooks.FAQ = append(c.hooks.FAQ, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `faq.Intercept(f(g(h())))`.
func (c *FAQClient) Intercept(interceptors ...Interceptor) {
	c.inters.FAQ = append(c.inters.FAQ, interceptors...)
}

// Create returns a builder for creating a FAQ entity.
func (c *FAQClient) Create() *FAQCreate {
	mutation := newFAQMutation(c.config, OpCreate)
	return &FAQCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FAQ entities.
func (c *FAQClient) CreateBulk(builders ...*FAQCreate) *FAQCreateBulk {
	return &FAQCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FAQClient) MapCreateBulk(slice any, setFunc func(*FAQCreate, int)) *FAQCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FAQCreateBulk{err: fmt.Errorf("calling to FAQClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FAQCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FAQCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FAQ.
func (c *FAQClient) Update() *FAQUpdate {
	mutation := newFAQMutation(c.config, OpUpdate)
	return &FAQUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FAQClient) UpdateOne(_m *FAQ) *FAQUpdateOne {
	mutation := newFAQMutation(c.config, OpUpdateOne, withFAQ(_m))
	return &FAQUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FAQClient) UpdateOneID(id uuid.UUID) *FAQUpdateOne {
	mutation := newFAQMutation(c.config, OpUpdateOne, withFAQID(id))
	return &FAQUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FAQ.
func (c *FAQClient) Delete() *FAQDelete {
	mutation := newFAQMutation(c.config, OpDelete)
	return &FAQDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FAQClient) DeleteOne(_m *FAQ) *FAQDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FAQClient) DeleteOneID(id uuid.UUID) *FAQDeleteOne {
	builder := c.Delete().Where(faq.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FAQDeleteOne{builder}
}

// Query returns a query builder for FAQ.
func (c *FAQClient) Query() *FAQQuery {
	return &FAQQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFAQ},
		inters: c.Interceptors(),
	}
}

// Get returns a FAQ entity by its id.
func (c *FAQClient) Get(ctx context.Context, id uuid.UUID) (*FAQ, error) {
	return c.Query().Where(faq.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FAQClient) GetX(ctx context.Context, id uuid.UUID) *FAQ {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryListing queries the listing edge of a FAQ.
func (c *FAQClient) QueryListing(_m *FAQ) *ListingQuery {
	query := (&ListingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(faq.Table, faq.FieldID, id),
			sqlgraph.To(listing.Table, listing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, faq.ListingTable, faq.ListingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FAQClient) Hooks() []Hook {
	return c.hooks.FAQ
}

// Interceptors returns the client interceptors.
func (c *FAQClient) Interceptors() []Interceptor {
	return c.inters.FAQ
}

func (c *FAQClient) mutate(ctx context.Context, m *FAQMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FAQCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FAQUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FAQUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FAQDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FAQ mutation op: %q", m.Op())
	}
}

// ListingClient is a client for the Listing schema.
type ListingClient struct {
	config
}

// NewListingClient returns a client for the Listing from the given config.
func NewListingClient(c config) *ListingClient {
	return &ListingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listing.Hooks(f(g(h())))`.
func (c *ListingClient) Use(hooks ...Hook) {
	c.hooks.Listing = append(c.hooks.Listing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listing.Intercept(f(g(h())))`.
func (c *ListingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Listing = append(c.inters.Listing, interceptors...)
}

// Create returns a builder for creating a Listing entity.
func (c *ListingClient) Create() *ListingCreate {
	mutation := newListingMutation(c.config, OpCreate)
	return &ListingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Listing entities.
func (c *ListingClient) CreateBulk(builders ...*ListingCreate) *ListingCreateBulk {
	return &ListingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListingClient) MapCreateBulk(slice any, setFunc func(*ListingCreate, int)) *ListingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListingCreateBulk{err: fmt.Errorf("calling to ListingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Listing.
func (c *ListingClient) Update() *ListingUpdate {
	mutation := newListingMutation(c.config, OpUpdate)
	return &ListingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListingClient) UpdateOne(_m *Listing) *ListingUpdateOne {
	mutation := newListingMutation(c.config, OpUpdateOne, withListing(_m))
	return &ListingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListingClient) UpdateOneID(id uuid.UUID) *ListingUpdateOne {
	mutation := newListingMutation(c.config, OpUpdateOne, withListingID(id))
	return &ListingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Listing.
func (c *ListingClient) Delete() *ListingDelete {
	mutation := newListingMutation(c.config, OpDelete)
	return &ListingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListingClient) DeleteOne(_m *Listing) *ListingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListingClient) DeleteOneID(id uuid.UUID) *ListingDeleteOne {
	builder := c.Delete().Where(listing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListingDeleteOne{builder}
}

// Query returns a query builder for Listing.
func (c *ListingClient) Query() *ListingQuery {
	return &ListingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListing},
		inters: c.Interceptors(),
	}
}

// Get returns a Listing entity by its id.
func (c *ListingClient) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return c.Query().Where(listing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListingClient) GetX(ctx context.Context, id uuid.UUID) *Listing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImages queries the images edge of a Listing.
func (c *ListingClient) QueryImages(_m *Listing) *ListingImageQuery {
	query := (&ListingImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, id),
			sqlgraph.To(listingimage.Table, listingimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, listing.ImagesTable, listing.ImagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFaqs queries the faqs edge of a Listing.
func (c *ListingClient) QueryFaqs(_m *Listing) *FAQQuery {
	query := (&FAQClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, id),
			sqlgraph.To(faq.Table, faq.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, listing.FaqsTable, listing.FaqsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttributes queries the attributes edge of a Listing.
func (c *ListingClient) QueryAttributes(_m *Listing) *AttributeQuery {
	query := (&AttributeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, id),
			sqlgraph.To(attribute.Table, attribute.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, listing.AttributesTable, listing.AttributesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ListingClient) Hooks() []Hook {
	return c.hooks.Listing
}

// Interceptors returns the client interceptors.
func (c *ListingClient) Interceptors() []Interceptor {
	return c.inters.Listing
}

func (c *ListingClient) mutate(ctx context.Context, m *ListingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Listing mutation op: %q", m.Op())
	}
}

// ListingImageClient is a client for the ListingImage schema.
type ListingImageClient struct {
	config
}

// NewListingImageClient returns a client for the ListingImage from the given config.
func NewListingImageClient(c config) *ListingImageClient {
	return &ListingImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listingimage.Hooks(f(g(h())))`.
func (c *ListingImageClient) Use(hooks ...Hook) {
	c.hooks.ListingImage = append(c.hooks.ListingImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listingimage.Intercept(f(g(h())))`.
func (c *ListingImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ListingImage = append(c.inters.ListingImage, interceptors...)
}

// Create returns a builder for creating a ListingImage entity.
func (c *ListingImageClient) Create() *ListingImageCreate {
	mutation := newListingImageMutation(c.config, OpCreate)
	return &ListingImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ListingImage entities.
func (c *ListingImageClient) CreateBulk(builders ...*ListingImageCreate) *ListingImageCreateBulk {
	return &ListingImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListingImageClient) MapCreateBulk(slice any, setFunc func(*ListingImageCreate, int)) *ListingImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListingImageCreateBulk{err: fmt.Errorf("calling to ListingImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListingImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListingImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ListingImage.
func (c *ListingImageClient) Update() *ListingImageUpdate {
	mutation := newListingImageMutation(c.config, OpUpdate)
	return &ListingImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListingImageClient) UpdateOne(_m *ListingImage) *ListingImageUpdateOne {
	mutation := newListingImageMutation(c.config, OpUpdateOne, withListingImage(_m))
	return &ListingImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListingImageClient) UpdateOneID(id uuid.UUID) *ListingImageUpdateOne {
	mutation := newListingImageMutation(c.config, OpUpdateOne, withListingImageID(id))
	return &ListingImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ListingImage.
func (c *ListingImageClient) Delete() *ListingImageDelete {
	mutation := newListingImageMutation(c.config, OpDelete)
	return &ListingImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListingImageClient) DeleteOne(_m *ListingImage) *ListingImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListingImageClient) DeleteOneID(id uuid.UUID) *ListingImageDeleteOne {
	builder := c.Delete().Where(listingimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListingImageDeleteOne{builder}
}

// Query returns a query builder for ListingImage.
func (c *ListingImageClient) Query() *ListingImageQuery {
	return &ListingImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListingImage},
		inters: c.Interceptors(),
	}
}

// Get returns a ListingImage entity by its id.
func (c *ListingImageClient) Get(ctx context.Context, id uuid.UUID) (*ListingImage, error) {
	return c.Query().Where(listingimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListingImageClient) GetX(ctx context.Context, id uuid.UUID) *ListingImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryListing queries the listing edge of a ListingImage.
func (c *ListingImageClient) QueryListing(_m *ListingImage) *ListingQuery {
	query := (&ListingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listingimage.Table, listingimage.FieldID, id),
			sqlgraph.To(listing.Table, listing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, listingimage.ListingTable, listingimage.ListingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ListingImageClient) Hooks() []Hook {
	return c.hooks.ListingImage
}

// Interceptors returns the client interceptors.
func (c *ListingImageClient) Interceptors() []Interceptor {
	return c.inters.ListingImage
}

func (c *ListingImageClient) mutate(ctx context.Context, m *ListingImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListingImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListingImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListingImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListingImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ListingImage mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(_m *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(_m))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id uuid.UUID) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(_m *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id uuid.UUID) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id uuid.UUID) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submission mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attribute, FAQ, Listing, ListingImage, Submission []ent.Hook
	}
	inters struct {
		Attribute, FAQ, Listing, ListingImage, Submission []ent.Interceptor
	}
)
