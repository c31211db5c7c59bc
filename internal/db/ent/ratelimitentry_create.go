// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/ratelimitentry"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RateLimitEntryCreate is the builder for creating a RateLimitEntry entity.
type RateLimitEntryCreate struct {
	config
	mutation *RateLimitEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (rlec *RateLimitEntryCreate) SetCreatedAt(t time.Time) *RateLimitEntryCreate {
	rlec.mutation.SetCreatedAt(t)
	return rlec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rlec *RateLimitEntryCreate) SetNillableCreatedAt(t *time.Time) *RateLimitEntryCreate {
	if t != nil {
		rlec.SetCreatedAt(*t)
	}
	return rlec
}

// SetIPAddress sets the "ip_address" field.
func (rlec *RateLimitEntryCreate) SetIPAddress(s string) *RateLimitEntryCreate {
	rlec.mutation.SetIPAddress(s)
	return rlec
}

// SetEndpoint sets the "endpoint" field.
func (rlec *RateLimitEntryCreate) SetEndpoint(s string) *RateLimitEntryCreate {
	rlec.mutation.SetEndpoint(s)
	return rlec
}

// Mutation returns the RateLimitEntryMutation object of the builder.
func (rlec *RateLimitEntryCreate) Mutation() *RateLimitEntryMutation {
	return rlec.mutation
}

// Save creates the RateLimitEntry in the database.
func (rlec *RateLimitEntryCreate) Save(ctx context.Context) (*RateLimitEntry, error) {
	rlec.defaults()
	return withHooks(ctx, rlec.sqlSave, rlec.mutation, rlec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rlec *RateLimitEntryCreate) SaveX(ctx context.Context) *RateLimitEntry {
	v, err := rlec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rlec *RateLimitEntryCreate) Exec(ctx context.Context) error {
	_, err := rlec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rlec *RateLimitEntryCreate) ExecX(ctx context.Context) {
	if err := rlec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rlec *RateLimitEntryCreate) defaults() {
	if _, ok := rlec.mutation.CreatedAt(); !ok {
		v := ratelimitentry.DefaultCreatedAt()
		rlec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rlec *RateLimitEntryCreate) check() error {
	if _, ok := rlec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RateLimitEntry.created_at"`)}
	}
	if _, ok := rlec.mutation.IPAddress(); !ok {
		return &ValidationError{Name: "ip_address", err: errors.New(`ent: missing required field "RateLimitEntry.ip_address"`)}
	}
	if v, ok := rlec.mutation.IPAddress(); ok {
		if err := ratelimitentry.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "RateLimitEntry.ip_address": %w`, err)}
		}
	}
	if _, ok := rlec.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "RateLimitEntry.endpoint"`)}
	}
	if v, ok := rlec.mutation.Endpoint(); ok {
		if err := ratelimitentry.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "RateLimitEntry.endpoint": %w`, err)}
		}
	}
	return nil
}

func (rlec *RateLimitEntryCreate) sqlSave(ctx context.Context) (*RateLimitEntry, error) {
	if err := rlec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rlec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rlec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rlec.mutation.id = &_node.ID
	rlec.mutation.done = true
	return _node, nil
}

func (rlec *RateLimitEntryCreate) createSpec() (*RateLimitEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitEntry{config: rlec.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitentry.Table, sqlgraph.NewFieldSpec(ratelimitentry.FieldID, field.TypeInt))
	)
	if value, ok := rlec.mutation.CreatedAt(); ok {
		_spec.SetField(ratelimitentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := rlec.mutation.IPAddress(); ok {
		_spec.SetField(ratelimitentry.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := rlec.mutation.Endpoint(); ok {
		_spec.SetField(ratelimitentry.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	return _node, _spec
}

// RateLimitEntryCreateBulk is the builder for creating many RateLimitEntry entities in bulk.
type RateLimitEntryCreateBulk struct {
	config
	err      error
	builders []*RateLimitEntryCreate
}

// Save creates the RateLimitEntry entities in the database.
func (rlecb *RateLimitEntryCreateBulk) Save(ctx context.Context) ([]*RateLimitEntry, error) {
	if rlecb.err != nil {
		return nil, rlecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rlecb.builders))
	nodes := make([]*RateLimitEntry, len(rlecb.builders))
	mutators := make([]Mutator, len(rlecb.builders))
	for i := range rlecb.builders {
		func(i int, root context.Context) {
			builder := rlecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, rlecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rlecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, rlecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rlecb *RateLimitEntryCreateBulk) SaveX(ctx context.Context) []*RateLimitEntry {
	v, err := rlecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rlecb *RateLimitEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := rlecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rlecb *RateLimitEntryCreateBulk) ExecX(ctx context.Context) {
	if err := rlecb.Exec(ctx); err != nil {
		panic(err)
	}
}
