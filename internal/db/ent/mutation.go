// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foliolink/internal/db/ent/contactmessage"
	"foliolink/internal/db/ent/pageview"
	"foliolink/internal/db/ent/predicate"
	"foliolink/internal/db/ent/ratelimitentry"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContactMessage = "ContactMessage"
	TypePageView       = "PageView"
	TypeRateLimitEntry = "RateLimitEntry"
)

// ContactMessageMutation represents an operation that mutates the ContactMessage nodes in the graph.
type ContactMessageMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	sender_name     *string
	sender_email    *string
	message         *string
	recipient_email *string
	recipient_name  *string
	ip_address      *string
	user_agent      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ContactMessage, error)
	predicates      []predicate.ContactMessage
}

var _ ent.Mutation = (*ContactMessageMutation)(nil)

// contactmessageOption allows management of the mutation configuration using functional options.
type contactmessageOption func(*ContactMessageMutation)

// newContactMessageMutation creates new mutation for the ContactMessage entity.
func newContactMessageMutation(c config, op Op, opts ...contactmessageOption) *ContactMessageMutation {
	m := &ContactMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeContactMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactMessageID sets the ID field of the mutation.
func withContactMessageID(id int) contactmessageOption {
	return func(m *ContactMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ContactMessage
		)
		m.oldValue = func(ctx context.Context) (*ContactMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContactMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContactMessage sets the old ContactMessage of the mutation.
func withContactMessage(node *ContactMessage) contactmessageOption {
	return func(m *ContactMessageMutation) {
		m.oldValue = func(context.Context) (*ContactMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContactMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSenderName sets the "sender_name" field.
func (m *ContactMessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *ContactMessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *ContactMessageMutation) ResetSenderName() {
	m.sender_name = nil
}

// SetSenderEmail sets the "sender_email" field.
func (m *ContactMessageMutation) SetSenderEmail(s string) {
	m.sender_email = &s
}

// SenderEmail returns the value of the "sender_email" field in the mutation.
func (m *ContactMessageMutation) SenderEmail() (r string, exists bool) {
	v := m.sender_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderEmail returns the old "sender_email" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldSenderEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderEmail: %w", err)
	}
	return oldValue.SenderEmail, nil
}

// ResetSenderEmail resets all changes to the "sender_email" field.
func (m *ContactMessageMutation) ResetSenderEmail() {
	m.sender_email = nil
}

// SetMessage sets the "message" field.
func (m *ContactMessageMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ContactMessageMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ContactMessageMutation) ResetMessage() {
	m.message = nil
}

// SetRecipientEmail sets the "recipient_email" field.
func (m *ContactMessageMutation) SetRecipientEmail(s string) {
	m.recipient_email = &s
}

// RecipientEmail returns the value of the "recipient_email" field in the mutation.
func (m *ContactMessageMutation) RecipientEmail() (r string, exists bool) {
	v := m.recipient_email
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientEmail returns the old "recipient_email" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldRecipientEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientEmail: %w", err)
	}
	return oldValue.RecipientEmail, nil
}

// ResetRecipientEmail resets all changes to the "recipient_email" field.
func (m *ContactMessageMutation) ResetRecipientEmail() {
	m.recipient_email = nil
}

// SetRecipientName sets the "recipient_name" field.
func (m *ContactMessageMutation) SetRecipientName(s string) {
	m.recipient_name = &s
}

// RecipientName returns the value of the "recipient_name" field in the mutation.
func (m *ContactMessageMutation) RecipientName() (r string, exists bool) {
	v := m.recipient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientName returns the old "recipient_name" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldRecipientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientName: %w", err)
	}
	return oldValue.RecipientName, nil
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (m *ContactMessageMutation) ClearRecipientName() {
	m.recipient_name = nil
	m.clearedFields[contactmessage.FieldRecipientName] = struct{}{}
}

// RecipientNameCleared returns if the "recipient_name" field was cleared in this mutation.
func (m *ContactMessageMutation) RecipientNameCleared() bool {
	_, ok := m.clearedFields[contactmessage.FieldRecipientName]
	return ok
}

// ResetRecipientName resets all changes to the "recipient_name" field.
func (m *ContactMessageMutation) ResetRecipientName() {
	m.recipient_name = nil
	delete(m.clearedFields, contactmessage.FieldRecipientName)
}

// SetIPAddress sets the "ip_address" field.
func (m *ContactMessageMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *ContactMessageMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *ContactMessageMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[contactmessage.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *ContactMessageMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[contactmessage.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *ContactMessageMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, contactmessage.FieldIPAddress)
}

// SetUserAgent sets the "user_agent" field.
func (m *ContactMessageMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *ContactMessageMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *ContactMessageMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[contactmessage.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *ContactMessageMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[contactmessage.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *ContactMessageMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, contactmessage.FieldUserAgent)
}

// Where appends a list predicates to the ContactMessageMutation builder.
func (m *ContactMessageMutation) Where(ps ...predicate.ContactMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContactMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContactMessage).
func (m *ContactMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, contactmessage.FieldCreatedAt)
	}
	if m.sender_name != nil {
		fields = append(fields, contactmessage.FieldSenderName)
	}
	if m.sender_email != nil {
		fields = append(fields, contactmessage.FieldSenderEmail)
	}
	if m.message != nil {
		fields = append(fields, contactmessage.FieldMessage)
	}
	if m.recipient_email != nil {
		fields = append(fields, contactmessage.FieldRecipientEmail)
	}
	if m.recipient_name != nil {
		fields = append(fields, contactmessage.FieldRecipientName)
	}
	if m.ip_address != nil {
		fields = append(fields, contactmessage.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, contactmessage.FieldUserAgent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contactmessage.FieldCreatedAt:
		return m.CreatedAt()
	case contactmessage.FieldSenderName:
		return m.SenderName()
	case contactmessage.FieldSenderEmail:
		return m.SenderEmail()
	case contactmessage.FieldMessage:
		return m.Message()
	case contactmessage.FieldRecipientEmail:
		return m.RecipientEmail()
	case contactmessage.FieldRecipientName:
		return m.RecipientName()
	case contactmessage.FieldIPAddress:
		return m.IPAddress()
	case contactmessage.FieldUserAgent:
		return m.UserAgent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contactmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contactmessage.FieldSenderName:
		return m.OldSenderName(ctx)
	case contactmessage.FieldSenderEmail:
		return m.OldSenderEmail(ctx)
	case contactmessage.FieldMessage:
		return m.OldMessage(ctx)
	case contactmessage.FieldRecipientEmail:
		return m.OldRecipientEmail(ctx)
	case contactmessage.FieldRecipientName:
		return m.OldRecipientName(ctx)
	case contactmessage.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case contactmessage.FieldUserAgent:
		return m.OldUserAgent(ctx)
	}
	return nil, fmt.Errorf("unknown ContactMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contactmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contactmessage.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case contactmessage.FieldSenderEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderEmail(v)
		return nil
	case contactmessage.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case contactmessage.FieldRecipientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientEmail(v)
		return nil
	case contactmessage.FieldRecipientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientName(v)
		return nil
	case contactmessage.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case contactmessage.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	}
	return fmt.Errorf("unknown ContactMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContactMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contactmessage.FieldRecipientName) {
		fields = append(fields, contactmessage.FieldRecipientName)
	}
	if m.FieldCleared(contactmessage.FieldIPAddress) {
		fields = append(fields, contactmessage.FieldIPAddress)
	}
	if m.FieldCleared(contactmessage.FieldUserAgent) {
		fields = append(fields, contactmessage.FieldUserAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMessageMutation) ClearField(name string) error {
	switch name {
	case contactmessage.FieldRecipientName:
		m.ClearRecipientName()
		return nil
	case contactmessage.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case contactmessage.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMessageMutation) ResetField(name string) error {
	switch name {
	case contactmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contactmessage.FieldSenderName:
		m.ResetSenderName()
		return nil
	case contactmessage.FieldSenderEmail:
		m.ResetSenderEmail()
		return nil
	case contactmessage.FieldMessage:
		m.ResetMessage()
		return nil
	case contactmessage.FieldRecipientEmail:
		m.ResetRecipientEmail()
		return nil
	case contactmessage.FieldRecipientName:
		m.ResetRecipientName()
		return nil
	case contactmessage.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case contactmessage.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContactMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContactMessage edge %s", name)
}

// PageViewMutation represents an operation that mutates the PageView nodes in the graph.
type PageViewMutation struct {
	config
	op            Op
	typ           string
	id            *int
	username      *string
	_path         *string
	referrer      *string
	visited_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PageView, error)
	predicates    []predicate.PageView
}

var _ ent.Mutation = (*PageViewMutation)(nil)

// pageviewOption allows management of the mutation configuration using functional options.
type pageviewOption func(*PageViewMutation)

// newPageViewMutation creates new mutation for the PageView entity.
func newPageViewMutation(c config, op Op, opts ...pageviewOption) *PageViewMutation {
	m := &PageViewMutation{
		config:        c,
		op:            op,
		typ:           TypePageView,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageViewID sets the ID field of the mutation.
func withPageViewID(id int) pageviewOption {
	return func(m *PageViewMutation) {
		var (
			err   error
			once  sync.Once
			value *PageView
		)
		m.oldValue = func(ctx context.Context) (*PageView, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PageView.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPageView sets the old PageView of the mutation.
func withPageView(node *PageView) pageviewOption {
	return func(m *PageViewMutation) {
		m.oldValue = func(context.Context) (*PageView, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageViewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageViewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageViewMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageViewMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PageView.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *PageViewMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *PageViewMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the PageView entity.
// If the PageView object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageViewMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *PageViewMutation) ResetUsername() {
	m.username = nil
}

// SetPath sets the "path" field.
func (m *PageViewMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *PageViewMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the PageView entity.
// If the PageView object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageViewMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *PageViewMutation) ResetPath() {
	m._path = nil
}

// SetReferrer sets the "referrer" field.
func (m *PageViewMutation) SetReferrer(s string) {
	m.referrer = &s
}

// Referrer returns the value of the "referrer" field in the mutation.
func (m *PageViewMutation) Referrer() (r string, exists bool) {
	v := m.referrer
	if v == nil {
		return
	}
	return *v, true
}

// OldReferrer returns the old "referrer" field's value of the PageView entity.
// If the PageView object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageViewMutation) OldReferrer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferrer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferrer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferrer: %w", err)
	}
	return oldValue.Referrer, nil
}

// ClearReferrer clears the value of the "referrer" field.
func (m *PageViewMutation) ClearReferrer() {
	m.referrer = nil
	m.clearedFields[pageview.FieldReferrer] = struct{}{}
}

// ReferrerCleared returns if the "referrer" field was cleared in this mutation.
func (m *PageViewMutation) ReferrerCleared() bool {
	_, ok := m.clearedFields[pageview.FieldReferrer]
	return ok
}

// ResetReferrer resets all changes to the "referrer" field.
func (m *PageViewMutation) ResetReferrer() {
	m.referrer = nil
	delete(m.clearedFields, pageview.FieldReferrer)
}

// SetVisitedAt sets the "visited_at" field.
func (m *PageViewMutation) SetVisitedAt(t time.Time) {
	m.visited_at = &t
}

// VisitedAt returns the value of the "visited_at" field in the mutation.
func (m *PageViewMutation) VisitedAt() (r time.Time, exists bool) {
	v := m.visited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitedAt returns the old "visited_at" field's value of the PageView entity.
// If the PageView object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageViewMutation) OldVisitedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitedAt: %w", err)
	}
	return oldValue.VisitedAt, nil
}

// ResetVisitedAt resets all changes to the "visited_at" field.
func (m *PageViewMutation) ResetVisitedAt() {
	m.visited_at = nil
}

// Where appends a list predicates to the PageViewMutation builder.
func (m *PageViewMutation) Where(ps ...predicate.PageView) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageViewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageViewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PageView, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageViewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageViewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PageView).
func (m *PageViewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageViewMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.username != nil {
		fields = append(fields, pageview.FieldUsername)
	}
	if m._path != nil {
		fields = append(fields, pageview.FieldPath)
	}
	if m.referrer != nil {
		fields = append(fields, pageview.FieldReferrer)
	}
	if m.visited_at != nil {
		fields = append(fields, pageview.FieldVisitedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageViewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pageview.FieldUsername:
		return m.Username()
	case pageview.FieldPath:
		return m.Path()
	case pageview.FieldReferrer:
		return m.Referrer()
	case pageview.FieldVisitedAt:
		return m.VisitedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageViewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pageview.FieldUsername:
		return m.OldUsername(ctx)
	case pageview.FieldPath:
		return m.OldPath(ctx)
	case pageview.FieldReferrer:
		return m.OldReferrer(ctx)
	case pageview.FieldVisitedAt:
		return m.OldVisitedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PageView field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageViewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pageview.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case pageview.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case pageview.FieldReferrer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferrer(v)
		return nil
	case pageview.FieldVisitedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PageView field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageViewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageViewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageViewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PageView numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageViewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pageview.FieldReferrer) {
		fields = append(fields, pageview.FieldReferrer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageViewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageViewMutation) ClearField(name string) error {
	switch name {
	case pageview.FieldReferrer:
		m.ClearReferrer()
		return nil
	}
	return fmt.Errorf("unknown PageView nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageViewMutation) ResetField(name string) error {
	switch name {
	case pageview.FieldUsername:
		m.ResetUsername()
		return nil
	case pageview.FieldPath:
		m.ResetPath()
		return nil
	case pageview.FieldReferrer:
		m.ResetReferrer()
		return nil
	case pageview.FieldVisitedAt:
		m.ResetVisitedAt()
		return nil
	}
	return fmt.Errorf("unknown PageView field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageViewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageViewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageViewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageViewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageViewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageViewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageViewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PageView unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageViewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PageView edge %s", name)
}

// RateLimitEntryMutation represents an operation that mutates the RateLimitEntry nodes in the graph.
type RateLimitEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	ip_address    *string
	endpoint      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RateLimitEntry, error)
	predicates    []predicate.RateLimitEntry
}

var _ ent.Mutation = (*RateLimitEntryMutation)(nil)

// ratelimitentryOption allows management of the mutation configuration using functional options.
type ratelimitentryOption func(*RateLimitEntryMutation)

// newRateLimitEntryMutation creates new mutation for the RateLimitEntry entity.
func newRateLimitEntryMutation(c config, op Op, opts ...ratelimitentryOption) *RateLimitEntryMutation {
	m := &RateLimitEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitEntryID sets the ID field of the mutation.
func withRateLimitEntryID(id int) ratelimitentryOption {
	return func(m *RateLimitEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitEntry
		)
		m.oldValue = func(ctx context.Context) (*RateLimitEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitEntry sets the old RateLimitEntry of the mutation.
func withRateLimitEntry(node *RateLimitEntry) ratelimitentryOption {
	return func(m *RateLimitEntryMutation) {
		m.oldValue = func(context.Context) (*RateLimitEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RateLimitEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RateLimitEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RateLimitEntry entity.
// If the RateLimitEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RateLimitEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *RateLimitEntryMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *RateLimitEntryMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the RateLimitEntry entity.
// If the RateLimitEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitEntryMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *RateLimitEntryMutation) ResetIPAddress() {
	m.ip_address = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *RateLimitEntryMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *RateLimitEntryMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the RateLimitEntry entity.
// If the RateLimitEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitEntryMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *RateLimitEntryMutation) ResetEndpoint() {
	m.endpoint = nil
}

// Where appends a list predicates to the RateLimitEntryMutation builder.
func (m *RateLimitEntryMutation) Where(ps ...predicate.RateLimitEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitEntry).
func (m *RateLimitEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitEntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, ratelimitentry.FieldCreatedAt)
	}
	if m.ip_address != nil {
		fields = append(fields, ratelimitentry.FieldIPAddress)
	}
	if m.endpoint != nil {
		fields = append(fields, ratelimitentry.FieldEndpoint)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitentry.FieldCreatedAt:
		return m.CreatedAt()
	case ratelimitentry.FieldIPAddress:
		return m.IPAddress()
	case ratelimitentry.FieldEndpoint:
		return m.Endpoint()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ratelimitentry.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case ratelimitentry.FieldEndpoint:
		return m.OldEndpoint(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ratelimitentry.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case ratelimitentry.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RateLimitEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RateLimitEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitEntryMutation) ResetField(name string) error {
	switch name {
	case ratelimitentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ratelimitentry.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case ratelimitentry.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	}
	return fmt.Errorf("unknown RateLimitEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateLimitEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateLimitEntry edge %s", name)
}
