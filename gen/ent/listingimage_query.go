// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/google/uuid"
)

// ListingImageQuery is the builder for querying ListingImage entities.
type ListingImageQuery struct {
	config
	ctx         *QueryContext
	order       []listingimage.OrderOption
	inters      []Interceptor
	predicates  []predicate.ListingImage
	withListing *ListingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ListingImageQuery builder.
func (_q *ListingImageQuery) Where(ps ...predicate.ListingImage) *ListingImageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ListingImageQuery) Limit(limit int) *ListingImageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ListingImageQuery) Offset(offset int) *ListingImageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ListingImageQuery) Unique(unique bool) *ListingImageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ListingImageQuery) Order(o ...listingimage.OrderOption) *ListingImageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryListing chains the current query on the "listing" edge.
func (_q *ListingImageQuery) QueryListing() *ListingQuery {
	query := (&ListingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listingimage.Table, listingimage.FieldID, selector),
			sqlgraph.To(listing.Table, listing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, listingimage.ListingTable, listingimage.ListingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ListingImage entity from the query.
// Returns a *NotFoundError when no ListingImage was found.
func (_q *ListingImageQuery) First(ctx context.Context) (*ListingImage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{listingimage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ListingImageQuery) FirstX(ctx context.Context) *ListingImage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ListingImage ID from the query.
// Returns a *NotFoundError when no ListingImage ID was found.
func (_q *ListingImageQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{listingimage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ListingImageQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ListingImage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ListingImage entity is found.
// Returns a *NotFoundError when no ListingImage entities are found.
func (_q *ListingImageQuery) Only(ctx context.Context) (*ListingImage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{listingimage.Label}
	default:
		return nil, &NotSingularError{listingimage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ListingImageQuery) OnlyX(ctx context.Context) *ListingImage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ListingImage ID in the query.
// Returns a *NotSingularError when more than one ListingImage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ListingImageQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{listingimage.Label}
	default:
		err = &NotSingularError{listingimage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ListingImageQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ListingImages.
func (_q *ListingImageQuery) All(ctx context.Context) ([]*ListingImage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ListingImage, *ListingImageQuery]()
	return withInterceptors[[]*ListingImage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ListingImageQuery) AllX(ctx context.Context) []*ListingImage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ListingImage IDs.
func (_q *ListingImageQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(listingimage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ListingImageQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ListingImageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ListingImageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ListingImageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ListingImageQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ListingImageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ListingImageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ListingImageQuery) Clone() *ListingImageQuery {
	if _q == nil {
		return nil
	}
	return &ListingImageQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]listingimage.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ListingImage{}, _q.predicates...),
		withListing: _q.withListing.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithListing tells the query-builder to eager-load the nodes that are connected to
// the "listing" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingImageQuery) WithListing(opts ...func(*ListingQuery)) *ListingImageQuery {
	query := (&ListingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withListing = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ListingID uuid.UUID `json:"listing_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ListingImage.Query().
//		GroupBy(listingimage.FieldListingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ListingImageQuery) GroupBy(field string, fields ...string) *ListingImageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ListingImageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = listingimage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ListingID uuid.UUID `json:"listing_id,omitempty"`
//	}
//
//	client.ListingImage.Query().
//		Select(listingimage.FieldListingID).
//		Scan(ctx, &v)
func (_q *ListingImageQuery) Select(fields ...string) *ListingImageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ListingImageSelect{ListingImageQuery: _q}
	sbuild.label = listingimage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ListingImageSelect configured with the given aggregations.
func (_q *ListingImageQuery) Aggregate(fns ...AggregateFunc) *ListingImageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ListingImageQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !listingimage.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ListingImageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ListingImage, error) {
	var (
		nodes       = []*ListingImage{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withListing != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ListingImage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ListingImage{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withListing; query != nil {
		if err := _q.loadListing(ctx, query, nodes, nil,
			func(n *ListingImage, e *Listing) { n.Edges.Listing = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ListingImageQuery) loadListing(ctx context.Context, query *ListingQuery, nodes []*ListingImage, init func(*ListingImage), assign func(*ListingImage, *Listing)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ListingImage)
	for i := range nodes {
		fk := nodes[i].ListingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(listing.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "listing_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ListingImageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ListingImageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(listingimage.Table, listingimage.Columns, sqlgraph.NewFieldSpec(listingimage.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listingimage.FieldID)
		for i := range fields {
			if fields[i] != listingimage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withListing != nil {
			_spec.Node.AddColumnOnce(listingimage.FieldListingID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ListingImageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(listingimage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = listingimage.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ListingImageGroupBy is the group-by builder for ListingImage entities.
type ListingImageGroupBy struct {
	selector
	build *ListingImageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ListingImageGroupBy) Aggregate(fns ...AggregateFunc) *ListingImageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ListingImageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ListingImageQuery, *ListingImageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ListingImageGroupBy) sqlScan(ctx context.Context, root *ListingImageQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ListingImageSelect is the builder for selecting fields of ListingImage entities.
type ListingImageSelect struct {
	*ListingImageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ListingImageSelect) Aggregate(fns ...AggregateFunc) *ListingImageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ListingImageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ListingImageQuery, *ListingImageSelect](ctx, _s.ListingImageQuery, _s, _s.inters, v)
}

func (_s *ListingImageSelect) sqlScan(ctx context.Context, root *ListingImageQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
