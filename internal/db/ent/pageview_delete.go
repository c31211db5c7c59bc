// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"foliolink/internal/db/ent/pageview"
	"foliolink/internal/db/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PageViewDelete is the builder for deleting a PageView entity.
type PageViewDelete struct {
	config
	hooks    []Hook
	mutation *PageViewMutation
}

// Where appends a list predicates to the PageViewDelete builder.
func (pvd *PageViewDelete) Where(ps ...predicate.PageView) *PageViewDelete {
	pvd.mutation.Where(ps...)
	return pvd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (pvd *PageViewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, pvd.sqlExec, pvd.mutation, pvd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (pvd *PageViewDelete) ExecX(ctx context.Context) int {
	n, err := pvd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (pvd *PageViewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pageview.Table, sqlgraph.NewFieldSpec(pageview.FieldID, field.TypeInt))
	if ps := pvd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, pvd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	pvd.mutation.done = true
	return affected, err
}

// PageViewDeleteOne is the builder for deleting a single PageView entity.
type PageViewDeleteOne struct {
	pvd *PageViewDelete
}

// Where appends a list predicates to the PageViewDelete builder.
func (pvdo *PageViewDeleteOne) Where(ps ...predicate.PageView) *PageViewDeleteOne {
	pvdo.pvd.mutation.Where(ps...)
	return pvdo
}

// Exec executes the deletion query.
func (pvdo *PageViewDeleteOne) Exec(ctx context.Context) error {
	n, err := pvdo.pvd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pageview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (pvdo *PageViewDeleteOne) ExecX(ctx context.Context) {
	if err := pvdo.Exec(ctx); err != nil {
		panic(err)
	}
}
