// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"foliolink/internal/db/ent/predicate"
	"foliolink/internal/db/ent/ratelimitentry"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RateLimitEntryDelete is the builder for deleting a RateLimitEntry entity.
type RateLimitEntryDelete struct {
	config
	hooks    []Hook
	mutation *RateLimitEntryMutation
}

// Where appends a list predicates to the RateLimitEntryDelete builder.
func (rled *RateLimitEntryDelete) Where(ps ...predicate.RateLimitEntry) *RateLimitEntryDelete {
	rled.mutation.Where(ps...)
	return rled
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rled *RateLimitEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rled.sqlExec, rled.mutation, rled.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rled *RateLimitEntryDelete) ExecX(ctx context.Context) int {
	n, err := rled.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rled *RateLimitEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ratelimitentry.Table, sqlgraph.NewFieldSpec(ratelimitentry.FieldID, field.TypeInt))
	if ps := rled.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rled.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rled.mutation.done = true
	return affected, err
}

// RateLimitEntryDeleteOne is the builder for deleting a single RateLimitEntry entity.
type RateLimitEntryDeleteOne struct {
	rled *RateLimitEntryDelete
}

// Where appends a list predicates to the RateLimitEntryDelete builder.
func (rledo *RateLimitEntryDeleteOne) Where(ps ...predicate.RateLimitEntry) *RateLimitEntryDeleteOne {
	rledo.rled.mutation.Where(ps...)
	return rledo
}

// Exec executes the deletion query.
func (rledo *RateLimitEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := rledo.rled.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ratelimitentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rledo *RateLimitEntryDeleteOne) ExecX(ctx context.Context) {
	if err := rledo.Exec(ctx); err != nil {
		panic(err)
	}
}
