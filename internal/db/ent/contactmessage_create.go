// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/contactmessage"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContactMessageCreate is the builder for creating a ContactMessage entity.
type ContactMessageCreate struct {
	config
	mutation *ContactMessageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (cmc *ContactMessageCreate) SetCreatedAt(t time.Time) *ContactMessageCreate {
	cmc.mutation.SetCreatedAt(t)
	return cmc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cmc *ContactMessageCreate) SetNillableCreatedAt(t *time.Time) *ContactMessageCreate {
	if t != nil {
		cmc.SetCreatedAt(*t)
	}
	return cmc
}

// SetSenderName sets the "sender_name" field.
func (cmc *ContactMessageCreate) SetSenderName(s string) *ContactMessageCreate {
	cmc.mutation.SetSenderName(s)
	return cmc
}

// SetSenderEmail sets the "sender_email" field.
func (cmc *ContactMessageCreate) SetSenderEmail(s string) *ContactMessageCreate {
	cmc.mutation.SetSenderEmail(s)
	return cmc
}

// SetMessage sets the "message" field.
func (cmc *ContactMessageCreate) SetMessage(s string) *ContactMessageCreate {
	cmc.mutation.SetMessage(s)
	return cmc
}

// SetRecipientEmail sets the "recipient_email" field.
func (cmc *ContactMessageCreate) SetRecipientEmail(s string) *ContactMessageCreate {
	cmc.mutation.SetRecipientEmail(s)
	return cmc
}

// SetRecipientName sets the "recipient_name" field.
func (cmc *ContactMessageCreate) SetRecipientName(s string) *ContactMessageCreate {
	cmc.mutation.SetRecipientName(s)
	return cmc
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (cmc *ContactMessageCreate) SetNillableRecipientName(s *string) *ContactMessageCreate {
	if s != nil {
		cmc.SetRecipientName(*s)
	}
	return cmc
}

// SetIPAddress sets the "ip_address" field.
func (cmc *ContactMessageCreate) SetIPAddress(s string) *ContactMessageCreate {
	cmc.mutation.SetIPAddress(s)
	return cmc
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (cmc *ContactMessageCreate) SetNillableIPAddress(s *string) *ContactMessageCreate {
	if s != nil {
		cmc.SetIPAddress(*s)
	}
	return cmc
}

// SetUserAgent sets the "user_agent" field.
func (cmc *ContactMessageCreate) SetUserAgent(s string) *ContactMessageCreate {
	cmc.mutation.SetUserAgent(s)
	return cmc
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (cmc *ContactMessageCreate) SetNillableUserAgent(s *string) *ContactMessageCreate {
	if s != nil {
		cmc.SetUserAgent(*s)
	}
	return cmc
}

// Mutation returns the ContactMessageMutation object of the builder.
func (cmc *ContactMessageCreate) Mutation() *ContactMessageMutation {
	return cmc.mutation
}

// Save creates the ContactMessage in the database.
func (cmc *ContactMessageCreate) Save(ctx context.Context) (*ContactMessage, error) {
	cmc.defaults()
	return withHooks(ctx, cmc.sqlSave, cmc.mutation, cmc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cmc *ContactMessageCreate) SaveX(ctx context.Context) *ContactMessage {
	v, err := cmc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cmc *ContactMessageCreate) Exec(ctx context.Context) error {
	_, err := cmc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmc *ContactMessageCreate) ExecX(ctx context.Context) {
	if err := cmc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cmc *ContactMessageCreate) defaults() {
	if _, ok := cmc.mutation.CreatedAt(); !ok {
		v := contactmessage.DefaultCreatedAt()
		cmc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmc *ContactMessageCreate) check() error {
	if _, ok := cmc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContactMessage.created_at"`)}
	}
	if _, ok := cmc.mutation.SenderName(); !ok {
		return &ValidationError{Name: "sender_name", err: errors.New(`ent: missing required field "ContactMessage.sender_name"`)}
	}
	if v, ok := cmc.mutation.SenderName(); ok {
		if err := contactmessage.SenderNameValidator(v); err != nil {
			return &ValidationError{Name: "sender_name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.sender_name": %w`, err)}
		}
	}
	if _, ok := cmc.mutation.SenderEmail(); !ok {
		return &ValidationError{Name: "sender_email", err: errors.New(`ent: missing required field "ContactMessage.sender_email"`)}
	}
	if v, ok := cmc.mutation.SenderEmail(); ok {
		if err := contactmessage.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.sender_email": %w`, err)}
		}
	}
	if _, ok := cmc.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ContactMessage.message"`)}
	}
	if _, ok := cmc.mutation.RecipientEmail(); !ok {
		return &ValidationError{Name: "recipient_email", err: errors.New(`ent: missing required field "ContactMessage.recipient_email"`)}
	}
	if v, ok := cmc.mutation.RecipientEmail(); ok {
		if err := contactmessage.RecipientEmailValidator(v); err != nil {
			return &ValidationError{Name: "recipient_email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.recipient_email": %w`, err)}
		}
	}
	if v, ok := cmc.mutation.RecipientName(); ok {
		if err := contactmessage.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.recipient_name": %w`, err)}
		}
	}
	if v, ok := cmc.mutation.IPAddress(); ok {
		if err := contactmessage.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.ip_address": %w`, err)}
		}
	}
	if v, ok := cmc.mutation.UserAgent(); ok {
		if err := contactmessage.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.user_agent": %w`, err)}
		}
	}
	return nil
}

func (cmc *ContactMessageCreate) sqlSave(ctx context.Context) (*ContactMessage, error) {
	if err := cmc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cmc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cmc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cmc.mutation.id = &_node.ID
	cmc.mutation.done = true
	return _node, nil
}

func (cmc *ContactMessageCreate) createSpec() (*ContactMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ContactMessage{config: cmc.config}
		_spec = sqlgraph.NewCreateSpec(contactmessage.Table, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeInt))
	)
	if value, ok := cmc.mutation.CreatedAt(); ok {
		_spec.SetField(contactmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cmc.mutation.SenderName(); ok {
		_spec.SetField(contactmessage.FieldSenderName, field.TypeString, value)
		_node.SenderName = value
	}
	if value, ok := cmc.mutation.SenderEmail(); ok {
		_spec.SetField(contactmessage.FieldSenderEmail, field.TypeString, value)
		_node.SenderEmail = value
	}
	if value, ok := cmc.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := cmc.mutation.RecipientEmail(); ok {
		_spec.SetField(contactmessage.FieldRecipientEmail, field.TypeString, value)
		_node.RecipientEmail = value
	}
	if value, ok := cmc.mutation.RecipientName(); ok {
		_spec.SetField(contactmessage.FieldRecipientName, field.TypeString, value)
		_node.RecipientName = value
	}
	if value, ok := cmc.mutation.IPAddress(); ok {
		_spec.SetField(contactmessage.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := cmc.mutation.UserAgent(); ok {
		_spec.SetField(contactmessage.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	return _node, _spec
}

// ContactMessageCreateBulk is the builder for creating many ContactMessage entities in bulk.
type ContactMessageCreateBulk struct {
	config
	err      error
	builders []*ContactMessageCreate
}

// Save creates the ContactMessage entities in the database.
func (cmcb *ContactMessageCreateBulk) Save(ctx context.Context) ([]*ContactMessage, error) {
	if cmcb.err != nil {
		return nil, cmcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cmcb.builders))
	nodes := make([]*ContactMessage, len(cmcb.builders))
	mutators := make([]Mutator, len(cmcb.builders))
	for i := range cmcb.builders {
		func(i int, root context.Context) {
			builder := cmcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMessageMutation)
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
					_, err = mutators[i+1].Mutate(root, cmcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cmcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cmcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cmcb *ContactMessageCreateBulk) SaveX(ctx context.Context) []*ContactMessage {
	v, err := cmcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cmcb *ContactMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := cmcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmcb *ContactMessageCreateBulk) ExecX(ctx context.Context) {
	if err := cmcb.Exec(ctx); err != nil {
		panic(err)
	}
}
