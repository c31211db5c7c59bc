// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/predicate"
	"foliolink/internal/db/ent/ratelimitentry"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RateLimitEntryUpdate is the builder for updating RateLimitEntry entities.
type RateLimitEntryUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitEntryMutation
}

// Where appends a list predicates to the RateLimitEntryUpdate builder.
func (rleu *RateLimitEntryUpdate) Where(ps ...predicate.RateLimitEntry) *RateLimitEntryUpdate {
	rleu.mutation.Where(ps...)
	return rleu
}

// Mutation returns the RateLimitEntryMutation object of the builder.
func (rleu *RateLimitEntryUpdate) Mutation() *RateLimitEntryMutation {
	return rleu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rleu *RateLimitEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rleu.sqlSave, rleu.mutation, rleu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rleu *RateLimitEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := rleu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rleu *RateLimitEntryUpdate) Exec(ctx context.Context) error {
	_, err := rleu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rleu *RateLimitEntryUpdate) ExecX(ctx context.Context) {
	if err := rleu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (rleu *RateLimitEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitentry.Table, ratelimitentry.Columns, sqlgraph.NewFieldSpec(ratelimitentry.FieldID, field.TypeInt))
	if ps := rleu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rleu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rleu.mutation.done = true
	return n, nil
}

// RateLimitEntryUpdateOne is the builder for updating a single RateLimitEntry entity.
type RateLimitEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitEntryMutation
}

// Mutation returns the RateLimitEntryMutation object of the builder.
func (rleuo *RateLimitEntryUpdateOne) Mutation() *RateLimitEntryMutation {
	return rleuo.mutation
}

// Where appends a list predicates to the RateLimitEntryUpdate builder.
func (rleuo *RateLimitEntryUpdateOne) Where(ps ...predicate.RateLimitEntry) *RateLimitEntryUpdateOne {
	rleuo.mutation.Where(ps...)
	return rleuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rleuo *RateLimitEntryUpdateOne) Select(field string, fields ...string) *RateLimitEntryUpdateOne {
	rleuo.fields = append([]string{field}, fields...)
	return rleuo
}

// Save executes the query and returns the updated RateLimitEntry entity.
func (rleuo *RateLimitEntryUpdateOne) Save(ctx context.Context) (*RateLimitEntry, error) {
	return withHooks(ctx, rleuo.sqlSave, rleuo.mutation, rleuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rleuo *RateLimitEntryUpdateOne) SaveX(ctx context.Context) *RateLimitEntry {
	node, err := rleuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rleuo *RateLimitEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := rleuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rleuo *RateLimitEntryUpdateOne) ExecX(ctx context.Context) {
	if err := rleuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (rleuo *RateLimitEntryUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitentry.Table, ratelimitentry.Columns, sqlgraph.NewFieldSpec(ratelimitentry.FieldID, field.TypeInt))
	id, ok := rleuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rleuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitentry.FieldID)
		for _, f := range fields {
			if !ratelimitentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rleuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &RateLimitEntry{config: rleuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rleuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rleuo.mutation.done = true
	return _node, nil
}
