// Code generated by ent, DO NOT EDIT.

package contactmessage

import (
	"foliolink/internal/db/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderEmail applies equality check predicate on the "sender_email" field. It's identical to SenderEmailEQ.
func SenderEmail(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldSenderEmail, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldMessage, v))
}

// RecipientEmail applies equality check predicate on the "recipient_email" field. It's identical to RecipientEmailEQ.
func RecipientEmail(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldRecipientEmail, v))
}

// RecipientName applies equality check predicate on the "recipient_name" field. It's identical to RecipientNameEQ.
func RecipientName(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldRecipientName, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldIPAddress, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldUserAgent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldSenderName, v))
}

// SenderEmailEQ applies the EQ predicate on the "sender_email" field.
func SenderEmailEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldSenderEmail, v))
}

// SenderEmailNEQ applies the NEQ predicate on the "sender_email" field.
func SenderEmailNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldSenderEmail, v))
}

// SenderEmailIn applies the In predicate on the "sender_email" field.
func SenderEmailIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldSenderEmail, vs...))
}

// SenderEmailNotIn applies the NotIn predicate on the "sender_email" field.
func SenderEmailNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldSenderEmail, vs...))
}

// SenderEmailGT applies the GT predicate on the "sender_email" field.
func SenderEmailGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldSenderEmail, v))
}

// SenderEmailGTE applies the GTE predicate on the "sender_email" field.
func SenderEmailGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldSenderEmail, v))
}

// SenderEmailLT applies the LT predicate on the "sender_email" field.
func SenderEmailLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldSenderEmail, v))
}

// SenderEmailLTE applies the LTE predicate on the "sender_email" field.
func SenderEmailLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldSenderEmail, v))
}

// SenderEmailContains applies the Contains predicate on the "sender_email" field.
func SenderEmailContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldSenderEmail, v))
}

// SenderEmailHasPrefix applies the HasPrefix predicate on the "sender_email" field.
func SenderEmailHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldSenderEmail, v))
}

// SenderEmailHasSuffix applies the HasSuffix predicate on the "sender_email" field.
func SenderEmailHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldSenderEmail, v))
}

// SenderEmailEqualFold applies the EqualFold predicate on the "sender_email" field.
func SenderEmailEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldSenderEmail, v))
}

// SenderEmailContainsFold applies the ContainsFold predicate on the "sender_email" field.
func SenderEmailContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldSenderEmail, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldMessage, v))
}

// RecipientEmailEQ applies the EQ predicate on the "recipient_email" field.
func RecipientEmailEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldRecipientEmail, v))
}

// RecipientEmailNEQ applies the NEQ predicate on the "recipient_email" field.
func RecipientEmailNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldRecipientEmail, v))
}

// RecipientEmailIn applies the In predicate on the "recipient_email" field.
func RecipientEmailIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldRecipientEmail, vs...))
}

// RecipientEmailNotIn applies the NotIn predicate on the "recipient_email" field.
func RecipientEmailNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldRecipientEmail, vs...))
}

// RecipientEmailGT applies the GT predicate on the "recipient_email" field.
func RecipientEmailGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldRecipientEmail, v))
}

// RecipientEmailGTE applies the GTE predicate on the "recipient_email" field.
func RecipientEmailGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldRecipientEmail, v))
}

// RecipientEmailLT applies the LT predicate on the "recipient_email" field.
func RecipientEmailLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldRecipientEmail, v))
}

// RecipientEmailLTE applies the LTE predicate on the "recipient_email" field.
func RecipientEmailLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldRecipientEmail, v))
}

// RecipientEmailContains applies the Contains predicate on the "recipient_email" field.
func RecipientEmailContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldRecipientEmail, v))
}

// RecipientEmailHasPrefix applies the HasPrefix predicate on the "recipient_email" field.
func RecipientEmailHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldRecipientEmail, v))
}

// RecipientEmailHasSuffix applies the HasSuffix predicate on the "recipient_email" field.
func RecipientEmailHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldRecipientEmail, v))
}

// RecipientEmailEqualFold applies the EqualFold predicate on the "recipient_email" field.
func RecipientEmailEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldRecipientEmail, v))
}

// RecipientEmailContainsFold applies the ContainsFold predicate on the "recipient_email" field.
func RecipientEmailContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldRecipientEmail, v))
}

// RecipientNameEQ applies the EQ predicate on the "recipient_name" field.
func RecipientNameEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldRecipientName, v))
}

// RecipientNameNEQ applies the NEQ predicate on the "recipient_name" field.
func RecipientNameNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldRecipientName, v))
}

// RecipientNameIn applies the In predicate on the "recipient_name" field.
func RecipientNameIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldRecipientName, vs...))
}

// RecipientNameNotIn applies the NotIn predicate on the "recipient_name" field.
func RecipientNameNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldRecipientName, vs...))
}

// RecipientNameGT applies the GT predicate on the "recipient_name" field.
func RecipientNameGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldRecipientName, v))
}

// RecipientNameGTE applies the GTE predicate on the "recipient_name" field.
func RecipientNameGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldRecipientName, v))
}

// RecipientNameLT applies the LT predicate on the "recipient_name" field.
func RecipientNameLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldRecipientName, v))
}

// RecipientNameLTE applies the LTE predicate on the "recipient_name" field.
func RecipientNameLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldRecipientName, v))
}

// RecipientNameContains applies the Contains predicate on the "recipient_name" field.
func RecipientNameContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldRecipientName, v))
}

// RecipientNameHasPrefix applies the HasPrefix predicate on the "recipient_name" field.
func RecipientNameHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldRecipientName, v))
}

// RecipientNameHasSuffix applies the HasSuffix predicate on the "recipient_name" field.
func RecipientNameHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldRecipientName, v))
}

// RecipientNameIsNil applies the IsNil predicate on the "recipient_name" field.
func RecipientNameIsNil() predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIsNull(FieldRecipientName))
}

// RecipientNameNotNil applies the NotNil predicate on the "recipient_name" field.
func RecipientNameNotNil() predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotNull(FieldRecipientName))
}

// RecipientNameEqualFold applies the EqualFold predicate on the "recipient_name" field.
func RecipientNameEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldRecipientName, v))
}

// RecipientNameContainsFold applies the ContainsFold predicate on the "recipient_name" field.
func RecipientNameContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldRecipientName, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressIsNil applies the IsNil predicate on the "ip_address" field.
func IPAddressIsNil() predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIsNull(FieldIPAddress))
}

// IPAddressNotNil applies the NotNil predicate on the "ip_address" field.
func IPAddressNotNil() predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotNull(FieldIPAddress))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldIPAddress, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.ContactMessage {
	return predicate.ContactMessage(sql.FieldContainsFold(FieldUserAgent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContactMessage) predicate.ContactMessage {
	return predicate.ContactMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContactMessage) predicate.ContactMessage {
	return predicate.ContactMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContactMessage) predicate.ContactMessage {
	return predicate.ContactMessage(sql.NotPredicates(p))
}
