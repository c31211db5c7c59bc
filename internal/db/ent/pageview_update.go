// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/pageview"
	"foliolink/internal/db/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PageViewUpdate is the builder for updating PageView entities.
type PageViewUpdate struct {
	config
	hooks    []Hook
	mutation *PageViewMutation
}

// Where appends a list predicates to the PageViewUpdate builder.
func (pvu *PageViewUpdate) Where(ps ...predicate.PageView) *PageViewUpdate {
	pvu.mutation.Where(ps...)
	return pvu
}

// Mutation returns the PageViewMutation object of the builder.
func (pvu *PageViewUpdate) Mutation() *PageViewMutation {
	return pvu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pvu *PageViewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pvu.sqlSave, pvu.mutation, pvu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pvu *PageViewUpdate) SaveX(ctx context.Context) int {
	affected, err := pvu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pvu *PageViewUpdate) Exec(ctx context.Context) error {
	_, err := pvu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pvu *PageViewUpdate) ExecX(ctx context.Context) {
	if err := pvu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (pvu *PageViewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pageview.Table, pageview.Columns, sqlgraph.NewFieldSpec(pageview.FieldID, field.TypeInt))
	if ps := pvu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if pvu.mutation.ReferrerCleared() {
		_spec.ClearField(pageview.FieldReferrer, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pvu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pvu.mutation.done = true
	return n, nil
}

// PageViewUpdateOne is the builder for updating a single PageView entity.
type PageViewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageViewMutation
}

// Mutation returns the PageViewMutation object of the builder.
func (pvuo *PageViewUpdateOne) Mutation() *PageViewMutation {
	return pvuo.mutation
}

// Where appends a list predicates to the PageViewUpdate builder.
func (pvuo *PageViewUpdateOne) Where(ps ...predicate.PageView) *PageViewUpdateOne {
	pvuo.mutation.Where(ps...)
	return pvuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pvuo *PageViewUpdateOne) Select(field string, fields ...string) *PageViewUpdateOne {
	pvuo.fields = append([]string{field}, fields...)
	return pvuo
}

// Save executes the query and returns the updated PageView entity.
func (pvuo *PageViewUpdateOne) Save(ctx context.Context) (*PageView, error) {
	return withHooks(ctx, pvuo.sqlSave, pvuo.mutation, pvuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pvuo *PageViewUpdateOne) SaveX(ctx context.Context) *PageView {
	node, err := pvuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pvuo *PageViewUpdateOne) Exec(ctx context.Context) error {
	_, err := pvuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pvuo *PageViewUpdateOne) ExecX(ctx context.Context) {
	if err := pvuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (pvuo *PageViewUpdateOne) sqlSave(ctx context.Context) (_node *PageView, err error) {
	_spec := sqlgraph.NewUpdateSpec(pageview.Table, pageview.Columns, sqlgraph.NewFieldSpec(pageview.FieldID, field.TypeInt))
	id, ok := pvuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PageView.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pvuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageview.FieldID)
		for _, f := range fields {
			if !pageview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pageview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pvuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if pvuo.mutation.ReferrerCleared() {
		_spec.ClearField(pageview.FieldReferrer, field.TypeString)
	}
	_node = &PageView{config: pvuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pvuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pvuo.mutation.done = true
	return _node, nil
}
