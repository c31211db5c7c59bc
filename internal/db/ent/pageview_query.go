// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"foliolink/internal/db/ent/pageview"
	"foliolink/internal/db/ent/predicate"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PageViewQuery is the builder for querying PageView entities.
type PageViewQuery struct {
	config
	ctx        *QueryContext
	order      []pageview.OrderOption
	inters     []Interceptor
	predicates []predicate.PageView
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PageViewQuery builder.
func (pvq *PageViewQuery) Where(ps ...predicate.PageView) *PageViewQuery {
	pvq.predicates = append(pvq.predicates, ps...)
	return pvq
}

// Limit the number of records to be returned by this query.
func (pvq *PageViewQuery) Limit(limit int) *PageViewQuery {
	pvq.ctx.Limit = &limit
	return pvq
}

// Offset to start from.
func (pvq *PageViewQuery) Offset(offset int) *PageViewQuery {
	pvq.ctx.Offset = &offset
	return pvq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (pvq *PageViewQuery) Unique(unique bool) *PageViewQuery {
	pvq.ctx.Unique = &unique
	return pvq
}

// Order specifies how the records should be ordered.
func (pvq *PageViewQuery) Order(o ...pageview.OrderOption) *PageViewQuery {
	pvq.order = append(pvq.order, o...)
	return pvq
}

// First returns the first PageView entity from the query.
// Returns a *NotFoundError when no PageView was found.
func (pvq *PageViewQuery) First(ctx context.Context) (*PageView, error) {
	nodes, err := pvq.Limit(1).All(setContextOp(ctx, pvq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pageview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (pvq *PageViewQuery) FirstX(ctx context.Context) *PageView {
	node, err := pvq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PageView ID from the query.
// Returns a *NotFoundError when no PageView ID was found.
func (pvq *PageViewQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = pvq.Limit(1).IDs(setContextOp(ctx, pvq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pageview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (pvq *PageViewQuery) FirstIDX(ctx context.Context) int {
	id, err := pvq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PageView entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PageView entity is found.
// Returns a *NotFoundError when no PageView entities are found.
func (pvq *PageViewQuery) Only(ctx context.Context) (*PageView, error) {
	nodes, err := pvq.Limit(2).All(setContextOp(ctx, pvq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pageview.Label}
	default:
		return nil, &NotSingularError{pageview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (pvq *PageViewQuery) OnlyX(ctx context.Context) *PageView {
	node, err := pvq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PageView ID in the query.
// Returns a *NotSingularError when more than one PageView ID is found.
// Returns a *NotFoundError when no entities are found.
func (pvq *PageViewQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = pvq.Limit(2).IDs(setContextOp(ctx, pvq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pageview.Label}
	default:
		err = &NotSingularError{pageview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (pvq *PageViewQuery) OnlyIDX(ctx context.Context) int {
	id, err := pvq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PageViews.
func (pvq *PageViewQuery) All(ctx context.Context) ([]*PageView, error) {
	ctx = setContextOp(ctx, pvq.ctx, ent.OpQueryAll)
	if err := pvq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PageView, *PageViewQuery]()
	return withInterceptors[[]*PageView](ctx, pvq, qr, pvq.inters)
}

// AllX is like All, but panics if an error occurs.
func (pvq *PageViewQuery) AllX(ctx context.Context) []*PageView {
	nodes, err := pvq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PageView IDs.
func (pvq *PageViewQuery) IDs(ctx context.Context) (ids []int, err error) {
	if pvq.ctx.Unique == nil && pvq.path != nil {
		pvq.Unique(true)
	}
	ctx = setContextOp(ctx, pvq.ctx, ent.OpQueryIDs)
	if err = pvq.Select(pageview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (pvq *PageViewQuery) IDsX(ctx context.Context) []int {
	ids, err := pvq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (pvq *PageViewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, pvq.ctx, ent.OpQueryCount)
	if err := pvq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, pvq, querierCount[*PageViewQuery](), pvq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (pvq *PageViewQuery) CountX(ctx context.Context) int {
	count, err := pvq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (pvq *PageViewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, pvq.ctx, ent.OpQueryExist)
	switch _, err := pvq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (pvq *PageViewQuery) ExistX(ctx context.Context) bool {
	exist, err := pvq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PageViewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (pvq *PageViewQuery) Clone() *PageViewQuery {
	if pvq == nil {
		return nil
	}
	return &PageViewQuery{
		config:     pvq.config,
		ctx:        pvq.ctx.Clone(),
		order:      append([]pageview.OrderOption{}, pvq.order...),
		inters:     append([]Interceptor{}, pvq.inters...),
		predicates: append([]predicate.PageView{}, pvq.predicates...),
		// clone intermediate query.
		sql:  pvq.sql.Clone(),
		path: pvq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Username string `json:"username,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PageView.Query().
//		GroupBy(pageview.FieldUsername).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (pvq *PageViewQuery) GroupBy(field string, fields ...string) *PageViewGroupBy {
	pvq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PageViewGroupBy{build: pvq}
	grbuild.flds = &pvq.ctx.Fields
	grbuild.label = pageview.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Username string `json:"username,omitempty"`
//	}
//
//	client.PageView.Query().
//		Select(pageview.FieldUsername).
//		Scan(ctx, &v)
func (pvq *PageViewQuery) Select(fields ...string) *PageViewSelect {
	pvq.ctx.Fields = append(pvq.ctx.Fields, fields...)
	sbuild := &PageViewSelect{PageViewQuery: pvq}
	sbuild.label = pageview.Label
	sbuild.flds, sbuild.scan = &pvq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PageViewSelect configured with the given aggregations.
func (pvq *PageViewQuery) Aggregate(fns ...AggregateFunc) *PageViewSelect {
	return pvq.Select().Aggregate(fns...)
}

func (pvq *PageViewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range pvq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, pvq); err != nil {
				return err
			}
		}
	}
	for _, f := range pvq.ctx.Fields {
		if !pageview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if pvq.path != nil {
		prev, err := pvq.path(ctx)
		if err != nil {
			return err
		}
		pvq.sql = prev
	}
	return nil
}

func (pvq *PageViewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PageView, error) {
	var (
		nodes = []*PageView{}
		_spec = pvq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PageView).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PageView{config: pvq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, pvq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (pvq *PageViewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := pvq.querySpec()
	_spec.Node.Columns = pvq.ctx.Fields
	if len(pvq.ctx.Fields) > 0 {
		_spec.Unique = pvq.ctx.Unique != nil && *pvq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, pvq.driver, _spec)
}

func (pvq *PageViewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pageview.Table, pageview.Columns, sqlgraph.NewFieldSpec(pageview.FieldID, field.TypeInt))
	_spec.From = pvq.sql
	if unique := pvq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if pvq.path != nil {
		_spec.Unique = true
	}
	if fields := pvq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageview.FieldID)
		for i := range fields {
			if fields[i] != pageview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := pvq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := pvq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := pvq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := pvq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (pvq *PageViewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(pvq.driver.Dialect())
	t1 := builder.Table(pageview.Table)
	columns := pvq.ctx.Fields
	if len(columns) == 0 {
		columns = pageview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if pvq.sql != nil {
		selector = pvq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if pvq.ctx.Unique != nil && *pvq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range pvq.predicates {
		p(selector)
	}
	for _, p := range pvq.order {
		p(selector)
	}
	if offset := pvq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := pvq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PageViewGroupBy is the group-by builder for PageView entities.
type PageViewGroupBy struct {
	selector
	build *PageViewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pvgb *PageViewGroupBy) Aggregate(fns ...AggregateFunc) *PageViewGroupBy {
	pvgb.fns = append(pvgb.fns, fns...)
	return pvgb
}

// Scan applies the selector query and scans the result into the given value.
func (pvgb *PageViewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pvgb.build.ctx, ent.OpQueryGroupBy)
	if err := pvgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PageViewQuery, *PageViewGroupBy](ctx, pvgb.build, pvgb, pvgb.build.inters, v)
}

func (pvgb *PageViewGroupBy) sqlScan(ctx context.Context, root *PageViewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pvgb.fns))
	for _, fn := range pvgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pvgb.flds)+len(pvgb.fns))
		for _, f := range *pvgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pvgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pvgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PageViewSelect is the builder for selecting fields of PageView entities.
type PageViewSelect struct {
	*PageViewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pvs *PageViewSelect) Aggregate(fns ...AggregateFunc) *PageViewSelect {
	pvs.fns = append(pvs.fns, fns...)
	return pvs
}

// Scan applies the selector query and scans the result into the given value.
func (pvs *PageViewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pvs.ctx, ent.OpQuerySelect)
	if err := pvs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PageViewQuery, *PageViewSelect](ctx, pvs.PageViewQuery, pvs, pvs.inters, v)
}

func (pvs *PageViewSelect) sqlScan(ctx context.Context, root *PageViewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pvs.fns))
	for _, fn := range pvs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pvs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pvs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
