// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"foliolink/internal/db/ent/predicate"
	"foliolink/internal/db/ent/ratelimitentry"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RateLimitEntryQuery is the builder for querying RateLimitEntry entities.
type RateLimitEntryQuery struct {
	config
	ctx        *QueryContext
	order      []ratelimitentry.OrderOption
	inters     []Interceptor
	predicates []predicate.RateLimitEntry
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RateLimitEntryQuery builder.
func (rleq *RateLimitEntryQuery) Where(ps ...predicate.RateLimitEntry) *RateLimitEntryQuery {
	rleq.predicates = append(rleq.predicates, ps...)
	return rleq
}

// Limit the number of records to be returned by this query.
func (rleq *RateLimitEntryQuery) Limit(limit int) *RateLimitEntryQuery {
	rleq.ctx.Limit = &limit
	return rleq
}

// Offset to start from.
func (rleq *RateLimitEntryQuery) Offset(offset int) *RateLimitEntryQuery {
	rleq.ctx.Offset = &offset
	return rleq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rleq *RateLimitEntryQuery) Unique(unique bool) *RateLimitEntryQuery {
	rleq.ctx.Unique = &unique
	return rleq
}

// Order specifies how the records should be ordered.
func (rleq *RateLimitEntryQuery) Order(o ...ratelimitentry.OrderOption) *RateLimitEntryQuery {
	rleq.order = append(rleq.order, o...)
	return rleq
}

// First returns the first RateLimitEntry entity from the query.
// Returns a *NotFoundError when no RateLimitEntry was found.
func (rleq *RateLimitEntryQuery) First(ctx context.Context) (*RateLimitEntry, error) {
	nodes, err := rleq.Limit(1).All(setContextOp(ctx, rleq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{ratelimitentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) FirstX(ctx context.Context) *RateLimitEntry {
	node, err := rleq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RateLimitEntry ID from the query.
// Returns a *NotFoundError when no RateLimitEntry ID was found.
func (rleq *RateLimitEntryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rleq.Limit(1).IDs(setContextOp(ctx, rleq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{ratelimitentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) FirstIDX(ctx context.Context) int {
	id, err := rleq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RateLimitEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RateLimitEntry entity is found.
// Returns a *NotFoundError when no RateLimitEntry entities are found.
func (rleq *RateLimitEntryQuery) Only(ctx context.Context) (*RateLimitEntry, error) {
	nodes, err := rleq.Limit(2).All(setContextOp(ctx, rleq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{ratelimitentry.Label}
	default:
		return nil, &NotSingularError{ratelimitentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) OnlyX(ctx context.Context) *RateLimitEntry {
	node, err := rleq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RateLimitEntry ID in the query.
// Returns a *NotSingularError when more than one RateLimitEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (rleq *RateLimitEntryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rleq.Limit(2).IDs(setContextOp(ctx, rleq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{ratelimitentry.Label}
	default:
		err = &NotSingularError{ratelimitentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) OnlyIDX(ctx context.Context) int {
	id, err := rleq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RateLimitEntries.
func (rleq *RateLimitEntryQuery) All(ctx context.Context) ([]*RateLimitEntry, error) {
	ctx = setContextOp(ctx, rleq.ctx, ent.OpQueryAll)
	if err := rleq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RateLimitEntry, *RateLimitEntryQuery]()
	return withInterceptors[[]*RateLimitEntry](ctx, rleq, qr, rleq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) AllX(ctx context.Context) []*RateLimitEntry {
	nodes, err := rleq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RateLimitEntry IDs.
func (rleq *RateLimitEntryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if rleq.ctx.Unique == nil && rleq.path != nil {
		rleq.Unique(true)
	}
	ctx = setContextOp(ctx, rleq.ctx, ent.OpQueryIDs)
	if err = rleq.Select(ratelimitentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) IDsX(ctx context.Context) []int {
	ids, err := rleq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rleq *RateLimitEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rleq.ctx, ent.OpQueryCount)
	if err := rleq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rleq, querierCount[*RateLimitEntryQuery](), rleq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) CountX(ctx context.Context) int {
	count, err := rleq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rleq *RateLimitEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rleq.ctx, ent.OpQueryExist)
	switch _, err := rleq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rleq *RateLimitEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := rleq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RateLimitEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rleq *RateLimitEntryQuery) Clone() *RateLimitEntryQuery {
	if rleq == nil {
		return nil
	}
	return &RateLimitEntryQuery{
		config:     rleq.config,
		ctx:        rleq.ctx.Clone(),
		order:      append([]ratelimitentry.OrderOption{}, rleq.order...),
		inters:     append([]Interceptor{}, rleq.inters...),
		predicates: append([]predicate.RateLimitEntry{}, rleq.predicates...),
		// clone intermediate query.
		sql:  rleq.sql.Clone(),
		path: rleq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RateLimitEntry.Query().
//		GroupBy(ratelimitentry.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rleq *RateLimitEntryQuery) GroupBy(field string, fields ...string) *RateLimitEntryGroupBy {
	rleq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RateLimitEntryGroupBy{build: rleq}
	grbuild.flds = &rleq.ctx.Fields
	grbuild.label = ratelimitentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.RateLimitEntry.Query().
//		Select(ratelimitentry.FieldCreatedAt).
//		Scan(ctx, &v)
func (rleq *RateLimitEntryQuery) Select(fields ...string) *RateLimitEntrySelect {
	rleq.ctx.Fields = append(rleq.ctx.Fields, fields...)
	sbuild := &RateLimitEntrySelect{RateLimitEntryQuery: rleq}
	sbuild.label = ratelimitentry.Label
	sbuild.flds, sbuild.scan = &rleq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RateLimitEntrySelect configured with the given aggregations.
func (rleq *RateLimitEntryQuery) Aggregate(fns ...AggregateFunc) *RateLimitEntrySelect {
	return rleq.Select().Aggregate(fns...)
}

func (rleq *RateLimitEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rleq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rleq); err != nil {
				return err
			}
		}
	}
	for _, f := range rleq.ctx.Fields {
		if !ratelimitentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rleq.path != nil {
		prev, err := rleq.path(ctx)
		if err != nil {
			return err
		}
		rleq.sql = prev
	}
	return nil
}

func (rleq *RateLimitEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RateLimitEntry, error) {
	var (
		nodes = []*RateLimitEntry{}
		_spec = rleq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RateLimitEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RateLimitEntry{config: rleq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rleq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (rleq *RateLimitEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rleq.querySpec()
	_spec.Node.Columns = rleq.ctx.Fields
	if len(rleq.ctx.Fields) > 0 {
		_spec.Unique = rleq.ctx.Unique != nil && *rleq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rleq.driver, _spec)
}

func (rleq *RateLimitEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(ratelimitentry.Table, ratelimitentry.Columns, sqlgraph.NewFieldSpec(ratelimitentry.FieldID, field.TypeInt))
	_spec.From = rleq.sql
	if unique := rleq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rleq.path != nil {
		_spec.Unique = true
	}
	if fields := rleq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitentry.FieldID)
		for i := range fields {
			if fields[i] != ratelimitentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := rleq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rleq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rleq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rleq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rleq *RateLimitEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rleq.driver.Dialect())
	t1 := builder.Table(ratelimitentry.Table)
	columns := rleq.ctx.Fields
	if len(columns) == 0 {
		columns = ratelimitentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rleq.sql != nil {
		selector = rleq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rleq.ctx.Unique != nil && *rleq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rleq.predicates {
		p(selector)
	}
	for _, p := range rleq.order {
		p(selector)
	}
	if offset := rleq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rleq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RateLimitEntryGroupBy is the group-by builder for RateLimitEntry entities.
type RateLimitEntryGroupBy struct {
	selector
	build *RateLimitEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rlegb *RateLimitEntryGroupBy) Aggregate(fns ...AggregateFunc) *RateLimitEntryGroupBy {
	rlegb.fns = append(rlegb.fns, fns...)
	return rlegb
}

// Scan applies the selector query and scans the result into the given value.
func (rlegb *RateLimitEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rlegb.build.ctx, ent.OpQueryGroupBy)
	if err := rlegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RateLimitEntryQuery, *RateLimitEntryGroupBy](ctx, rlegb.build, rlegb, rlegb.build.inters, v)
}

func (rlegb *RateLimitEntryGroupBy) sqlScan(ctx context.Context, root *RateLimitEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rlegb.fns))
	for _, fn := range rlegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rlegb.flds)+len(rlegb.fns))
		for _, f := range *rlegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rlegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rlegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RateLimitEntrySelect is the builder for selecting fields of RateLimitEntry entities.
type RateLimitEntrySelect struct {
	*RateLimitEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rles *RateLimitEntrySelect) Aggregate(fns ...AggregateFunc) *RateLimitEntrySelect {
	rles.fns = append(rles.fns, fns...)
	return rles
}

// Scan applies the selector query and scans the result into the given value.
func (rles *RateLimitEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rles.ctx, ent.OpQuerySelect)
	if err := rles.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RateLimitEntryQuery, *RateLimitEntrySelect](ctx, rles.RateLimitEntryQuery, rles, rles.inters, v)
}

func (rles *RateLimitEntrySelect) sqlScan(ctx context.Context, root *RateLimitEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rles.fns))
	for _, fn := range rles.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rles.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rles.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
