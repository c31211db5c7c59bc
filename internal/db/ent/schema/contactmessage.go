package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContactMessage holds the schema definition for the ContactMessage entity.
// Append-only audit trail of successfully relayed contact submissions.
type ContactMessage struct {
	ent.Schema
}

// Fields of the ContactMessage.
func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("sender_name").
			MaxLen(100),
		field.String("sender_email").
			MaxLen(255),
		field.Text("message"),
		field.String("recipient_email").
			MaxLen(255),
		field.String("recipient_name").
			MaxLen(100).
			Optional(),
		field.String("ip_address").
			MaxLen(45).
			Optional(),
		field.String("user_agent").
			MaxLen(255).
			Optional(),
	}
}

// Indexes of the ContactMessage.
func (ContactMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_email", "created_at"),
	}
}

// Mixin for the ContactMessage schema.
func (ContactMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}
