package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// CreatedAtMixin adds an immutable creation timestamp.
// The entities here are append-only rows, so there is no updated_at.
type CreatedAtMixin struct {
	mixin.Schema
}

// Fields of the CreatedAtMixin.
func (CreatedAtMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}
