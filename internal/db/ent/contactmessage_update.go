// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/contactmessage"
	"foliolink/internal/db/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContactMessageUpdate is the builder for updating ContactMessage entities.
type ContactMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMessageMutation
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (cmu *ContactMessageUpdate) Where(ps ...predicate.ContactMessage) *ContactMessageUpdate {
	cmu.mutation.Where(ps...)
	return cmu
}

// SetSenderName sets the "sender_name" field.
func (cmu *ContactMessageUpdate) SetSenderName(s string) *ContactMessageUpdate {
	cmu.mutation.SetSenderName(s)
	return cmu
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableSenderName(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetSenderName(*s)
	}
	return cmu
}

// SetSenderEmail sets the "sender_email" field.
func (cmu *ContactMessageUpdate) SetSenderEmail(s string) *ContactMessageUpdate {
	cmu.mutation.SetSenderEmail(s)
	return cmu
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableSenderEmail(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetSenderEmail(*s)
	}
	return cmu
}

// SetMessage sets the "message" field.
func (cmu *ContactMessageUpdate) SetMessage(s string) *ContactMessageUpdate {
	cmu.mutation.SetMessage(s)
	return cmu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableMessage(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetMessage(*s)
	}
	return cmu
}

// SetRecipientEmail sets the "recipient_email" field.
func (cmu *ContactMessageUpdate) SetRecipientEmail(s string) *ContactMessageUpdate {
	cmu.mutation.SetRecipientEmail(s)
	return cmu
}

// SetNillableRecipientEmail sets the "recipient_email" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableRecipientEmail(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetRecipientEmail(*s)
	}
	return cmu
}

// SetRecipientName sets the "recipient_name" field.
func (cmu *ContactMessageUpdate) SetRecipientName(s string) *ContactMessageUpdate {
	cmu.mutation.SetRecipientName(s)
	return cmu
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableRecipientName(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetRecipientName(*s)
	}
	return cmu
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (cmu *ContactMessageUpdate) ClearRecipientName() *ContactMessageUpdate {
	cmu.mutation.ClearRecipientName()
	return cmu
}

// SetIPAddress sets the "ip_address" field.
func (cmu *ContactMessageUpdate) SetIPAddress(s string) *ContactMessageUpdate {
	cmu.mutation.SetIPAddress(s)
	return cmu
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableIPAddress(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetIPAddress(*s)
	}
	return cmu
}

// ClearIPAddress clears the value of the "ip_address" field.
func (cmu *ContactMessageUpdate) ClearIPAddress() *ContactMessageUpdate {
	cmu.mutation.ClearIPAddress()
	return cmu
}

// SetUserAgent sets the "user_agent" field.
func (cmu *ContactMessageUpdate) SetUserAgent(s string) *ContactMessageUpdate {
	cmu.mutation.SetUserAgent(s)
	return cmu
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableUserAgent(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetUserAgent(*s)
	}
	return cmu
}

// ClearUserAgent clears the value of the "user_agent" field.
func (cmu *ContactMessageUpdate) ClearUserAgent() *ContactMessageUpdate {
	cmu.mutation.ClearUserAgent()
	return cmu
}

// Mutation returns the ContactMessageMutation object of the builder.
func (cmu *ContactMessageUpdate) Mutation() *ContactMessageMutation {
	return cmu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cmu *ContactMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cmu.sqlSave, cmu.mutation, cmu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cmu *ContactMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := cmu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cmu *ContactMessageUpdate) Exec(ctx context.Context) error {
	_, err := cmu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmu *ContactMessageUpdate) ExecX(ctx context.Context) {
	if err := cmu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmu *ContactMessageUpdate) check() error {
	if v, ok := cmu.mutation.SenderName(); ok {
		if err := contactmessage.SenderNameValidator(v); err != nil {
			return &ValidationError{Name: "sender_name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.sender_name": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.SenderEmail(); ok {
		if err := contactmessage.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.sender_email": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.RecipientEmail(); ok {
		if err := contactmessage.RecipientEmailValidator(v); err != nil {
			return &ValidationError{Name: "recipient_email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.recipient_email": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.RecipientName(); ok {
		if err := contactmessage.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.recipient_name": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.IPAddress(); ok {
		if err := contactmessage.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.ip_address": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.UserAgent(); ok {
		if err := contactmessage.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.user_agent": %w`, err)}
		}
	}
	return nil
}

func (cmu *ContactMessageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cmu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeInt))
	if ps := cmu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cmu.mutation.SenderName(); ok {
		_spec.SetField(contactmessage.FieldSenderName, field.TypeString, value)
	}
	if value, ok := cmu.mutation.SenderEmail(); ok {
		_spec.SetField(contactmessage.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := cmu.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := cmu.mutation.RecipientEmail(); ok {
		_spec.SetField(contactmessage.FieldRecipientEmail, field.TypeString, value)
	}
	if value, ok := cmu.mutation.RecipientName(); ok {
		_spec.SetField(contactmessage.FieldRecipientName, field.TypeString, value)
	}
	if cmu.mutation.RecipientNameCleared() {
		_spec.ClearField(contactmessage.FieldRecipientName, field.TypeString)
	}
	if value, ok := cmu.mutation.IPAddress(); ok {
		_spec.SetField(contactmessage.FieldIPAddress, field.TypeString, value)
	}
	if cmu.mutation.IPAddressCleared() {
		_spec.ClearField(contactmessage.FieldIPAddress, field.TypeString)
	}
	if value, ok := cmu.mutation.UserAgent(); ok {
		_spec.SetField(contactmessage.FieldUserAgent, field.TypeString, value)
	}
	if cmu.mutation.UserAgentCleared() {
		_spec.ClearField(contactmessage.FieldUserAgent, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cmu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cmu.mutation.done = true
	return n, nil
}

// ContactMessageUpdateOne is the builder for updating a single ContactMessage entity.
type ContactMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMessageMutation
}

// SetSenderName sets the "sender_name" field.
func (cmuo *ContactMessageUpdateOne) SetSenderName(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetSenderName(s)
	return cmuo
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableSenderName(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetSenderName(*s)
	}
	return cmuo
}

// SetSenderEmail sets the "sender_email" field.
func (cmuo *ContactMessageUpdateOne) SetSenderEmail(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetSenderEmail(s)
	return cmuo
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableSenderEmail(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetSenderEmail(*s)
	}
	return cmuo
}

// SetMessage sets the "message" field.
func (cmuo *ContactMessageUpdateOne) SetMessage(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetMessage(s)
	return cmuo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableMessage(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetMessage(*s)
	}
	return cmuo
}

// SetRecipientEmail sets the "recipient_email" field.
func (cmuo *ContactMessageUpdateOne) SetRecipientEmail(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetRecipientEmail(s)
	return cmuo
}

// SetNillableRecipientEmail sets the "recipient_email" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableRecipientEmail(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetRecipientEmail(*s)
	}
	return cmuo
}

// SetRecipientName sets the "recipient_name" field.
func (cmuo *ContactMessageUpdateOne) SetRecipientName(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetRecipientName(s)
	return cmuo
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableRecipientName(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetRecipientName(*s)
	}
	return cmuo
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (cmuo *ContactMessageUpdateOne) ClearRecipientName() *ContactMessageUpdateOne {
	cmuo.mutation.ClearRecipientName()
	return cmuo
}

// SetIPAddress sets the "ip_address" field.
func (cmuo *ContactMessageUpdateOne) SetIPAddress(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetIPAddress(s)
	return cmuo
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableIPAddress(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetIPAddress(*s)
	}
	return cmuo
}

// ClearIPAddress clears the value of the "ip_address" field.
func (cmuo *ContactMessageUpdateOne) ClearIPAddress() *ContactMessageUpdateOne {
	cmuo.mutation.ClearIPAddress()
	return cmuo
}

// SetUserAgent sets the "user_agent" field.
func (cmuo *ContactMessageUpdateOne) SetUserAgent(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetUserAgent(s)
	return cmuo
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableUserAgent(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetUserAgent(*s)
	}
	return cmuo
}

// ClearUserAgent clears the value of the "user_agent" field.
func (cmuo *ContactMessageUpdateOne) ClearUserAgent() *ContactMessageUpdateOne {
	cmuo.mutation.ClearUserAgent()
	return cmuo
}

// Mutation returns the ContactMessageMutation object of the builder.
func (cmuo *ContactMessageUpdateOne) Mutation() *ContactMessageMutation {
	return cmuo.mutation
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (cmuo *ContactMessageUpdateOne) Where(ps ...predicate.ContactMessage) *ContactMessageUpdateOne {
	cmuo.mutation.Where(ps...)
	return cmuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cmuo *ContactMessageUpdateOne) Select(field string, fields ...string) *ContactMessageUpdateOne {
	cmuo.fields = append([]string{field}, fields...)
	return cmuo
}

// Save executes the query and returns the updated ContactMessage entity.
func (cmuo *ContactMessageUpdateOne) Save(ctx context.Context) (*ContactMessage, error) {
	return withHooks(ctx, cmuo.sqlSave, cmuo.mutation, cmuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cmuo *ContactMessageUpdateOne) SaveX(ctx context.Context) *ContactMessage {
	node, err := cmuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cmuo *ContactMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := cmuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmuo *ContactMessageUpdateOne) ExecX(ctx context.Context) {
	if err := cmuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmuo *ContactMessageUpdateOne) check() error {
	if v, ok := cmuo.mutation.SenderName(); ok {
		if err := contactmessage.SenderNameValidator(v); err != nil {
			return &ValidationError{Name: "sender_name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.sender_name": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.SenderEmail(); ok {
		if err := contactmessage.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.sender_email": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.RecipientEmail(); ok {
		if err := contactmessage.RecipientEmailValidator(v); err != nil {
			return &ValidationError{Name: "recipient_email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.recipient_email": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.RecipientName(); ok {
		if err := contactmessage.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.recipient_name": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.IPAddress(); ok {
		if err := contactmessage.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.ip_address": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.UserAgent(); ok {
		if err := contactmessage.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.user_agent": %w`, err)}
		}
	}
	return nil
}

func (cmuo *ContactMessageUpdateOne) sqlSave(ctx context.Context) (_node *ContactMessage, err error) {
	if err := cmuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeInt))
	id, ok := cmuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContactMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cmuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactmessage.FieldID)
		for _, f := range fields {
			if !contactmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contactmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cmuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cmuo.mutation.SenderName(); ok {
		_spec.SetField(contactmessage.FieldSenderName, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.SenderEmail(); ok {
		_spec.SetField(contactmessage.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.RecipientEmail(); ok {
		_spec.SetField(contactmessage.FieldRecipientEmail, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.RecipientName(); ok {
		_spec.SetField(contactmessage.FieldRecipientName, field.TypeString, value)
	}
	if cmuo.mutation.RecipientNameCleared() {
		_spec.ClearField(contactmessage.FieldRecipientName, field.TypeString)
	}
	if value, ok := cmuo.mutation.IPAddress(); ok {
		_spec.SetField(contactmessage.FieldIPAddress, field.TypeString, value)
	}
	if cmuo.mutation.IPAddressCleared() {
		_spec.ClearField(contactmessage.FieldIPAddress, field.TypeString)
	}
	if value, ok := cmuo.mutation.UserAgent(); ok {
		_spec.SetField(contactmessage.FieldUserAgent, field.TypeString, value)
	}
	if cmuo.mutation.UserAgentCleared() {
		_spec.ClearField(contactmessage.FieldUserAgent, field.TypeString)
	}
	_node = &ContactMessage{config: cmuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cmuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cmuo.mutation.done = true
	return _node, nil
}
