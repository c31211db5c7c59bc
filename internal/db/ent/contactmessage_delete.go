// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"foliolink/internal/db/ent/contactmessage"
	"foliolink/internal/db/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContactMessageDelete is the builder for deleting a ContactMessage entity.
type ContactMessageDelete struct {
	config
	hooks    []Hook
	mutation *ContactMessageMutation
}

// Where appends a list predicates to the ContactMessageDelete builder.
func (cmd *ContactMessageDelete) Where(ps ...predicate.ContactMessage) *ContactMessageDelete {
	cmd.mutation.Where(ps...)
	return cmd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cmd *ContactMessageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cmd.sqlExec, cmd.mutation, cmd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cmd *ContactMessageDelete) ExecX(ctx context.Context) int {
	n, err := cmd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cmd *ContactMessageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contactmessage.Table, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeInt))
	if ps := cmd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cmd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cmd.mutation.done = true
	return affected, err
}

// ContactMessageDeleteOne is the builder for deleting a single ContactMessage entity.
type ContactMessageDeleteOne struct {
	cmd *ContactMessageDelete
}

// Where appends a list predicates to the ContactMessageDelete builder.
func (cmdo *ContactMessageDeleteOne) Where(ps ...predicate.ContactMessage) *ContactMessageDeleteOne {
	cmdo.cmd.mutation.Where(ps...)
	return cmdo
}

// Exec executes the deletion query.
func (cmdo *ContactMessageDeleteOne) Exec(ctx context.Context) error {
	n, err := cmdo.cmd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contactmessage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cmdo *ContactMessageDeleteOne) ExecX(ctx context.Context) {
	if err := cmdo.Exec(ctx); err != nil {
		panic(err)
	}
}
