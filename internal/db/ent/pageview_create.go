// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/pageview"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PageViewCreate is the builder for creating a PageView entity.
type PageViewCreate struct {
	config
	mutation *PageViewMutation
	hooks    []Hook
}

// SetUsername sets the "username" field.
func (pvc *PageViewCreate) SetUsername(s string) *PageViewCreate {
	pvc.mutation.SetUsername(s)
	return pvc
}

// SetPath sets the "path" field.
func (pvc *PageViewCreate) SetPath(s string) *PageViewCreate {
	pvc.mutation.SetPath(s)
	return pvc
}

// SetReferrer sets the "referrer" field.
func (pvc *PageViewCreate) SetReferrer(s string) *PageViewCreate {
	pvc.mutation.SetReferrer(s)
	return pvc
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (pvc *PageViewCreate) SetNillableReferrer(s *string) *PageViewCreate {
	if s != nil {
		pvc.SetReferrer(*s)
	}
	return pvc
}

// SetVisitedAt sets the "visited_at" field.
func (pvc *PageViewCreate) SetVisitedAt(t time.Time) *PageViewCreate {
	pvc.mutation.SetVisitedAt(t)
	return pvc
}

// SetNillableVisitedAt sets the "visited_at" field if the given value is not nil.
func (pvc *PageViewCreate) SetNillableVisitedAt(t *time.Time) *PageViewCreate {
	if t != nil {
		pvc.SetVisitedAt(*t)
	}
	return pvc
}

// Mutation returns the PageViewMutation object of the builder.
func (pvc *PageViewCreate) Mutation() *PageViewMutation {
	return pvc.mutation
}

// Save creates the PageView in the database.
func (pvc *PageViewCreate) Save(ctx context.Context) (*PageView, error) {
	pvc.defaults()
	return withHooks(ctx, pvc.sqlSave, pvc.mutation, pvc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pvc *PageViewCreate) SaveX(ctx context.Context) *PageView {
	v, err := pvc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pvc *PageViewCreate) Exec(ctx context.Context) error {
	_, err := pvc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pvc *PageViewCreate) ExecX(ctx context.Context) {
	if err := pvc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pvc *PageViewCreate) defaults() {
	if _, ok := pvc.mutation.VisitedAt(); !ok {
		v := pageview.DefaultVisitedAt()
		pvc.mutation.SetVisitedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pvc *PageViewCreate) check() error {
	if _, ok := pvc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "PageView.username"`)}
	}
	if v, ok := pvc.mutation.Username(); ok {
		if err := pageview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "PageView.username": %w`, err)}
		}
	}
	if _, ok := pvc.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "PageView.path"`)}
	}
	if v, ok := pvc.mutation.Path(); ok {
		if err := pageview.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "PageView.path": %w`, err)}
		}
	}
	if v, ok := pvc.mutation.Referrer(); ok {
		if err := pageview.ReferrerValidator(v); err != nil {
			return &ValidationError{Name: "referrer", err: fmt.Errorf(`ent: validator failed for field "PageView.referrer": %w`, err)}
		}
	}
	if _, ok := pvc.mutation.VisitedAt(); !ok {
		return &ValidationError{Name: "visited_at", err: errors.New(`ent: missing required field "PageView.visited_at"`)}
	}
	return nil
}

func (pvc *PageViewCreate) sqlSave(ctx context.Context) (*PageView, error) {
	if err := pvc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pvc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pvc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pvc.mutation.id = &_node.ID
	pvc.mutation.done = true
	return _node, nil
}

func (pvc *PageViewCreate) createSpec() (*PageView, *sqlgraph.CreateSpec) {
	var (
		_node = &PageView{config: pvc.config}
		_spec = sqlgraph.NewCreateSpec(pageview.Table, sqlgraph.NewFieldSpec(pageview.FieldID, field.TypeInt))
	)
	if value, ok := pvc.mutation.Username(); ok {
		_spec.SetField(pageview.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := pvc.mutation.Path(); ok {
		_spec.SetField(pageview.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := pvc.mutation.Referrer(); ok {
		_spec.SetField(pageview.FieldReferrer, field.TypeString, value)
		_node.Referrer = value
	}
	if value, ok := pvc.mutation.VisitedAt(); ok {
		_spec.SetField(pageview.FieldVisitedAt, field.TypeTime, value)
		_node.VisitedAt = value
	}
	return _node, _spec
}

// PageViewCreateBulk is the builder for creating many PageView entities in bulk.
type PageViewCreateBulk struct {
	config
	err      error
	builders []*PageViewCreate
}

// Save creates the PageView entities in the database.
func (pvcb *PageViewCreateBulk) Save(ctx context.Context) ([]*PageView, error) {
	if pvcb.err != nil {
		return nil, pvcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pvcb.builders))
	nodes := make([]*PageView, len(pvcb.builders))
	mutators := make([]Mutator, len(pvcb.builders))
	for i := range pvcb.builders {
		func(i int, root context.Context) {
			builder := pvcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageViewMutation)
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
					_, err = mutators[i+1].Mutate(root, pvcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pvcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pvcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pvcb *PageViewCreateBulk) SaveX(ctx context.Context) []*PageView {
	v, err := pvcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pvcb *PageViewCreateBulk) Exec(ctx context.Context) error {
	_, err := pvcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pvcb *PageViewCreateBulk) ExecX(ctx context.Context) {
	if err := pvcb.Exec(ctx); err != nil {
		panic(err)
	}
}
