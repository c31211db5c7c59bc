package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PageView holds the schema definition for the PageView entity.
// One row per public portfolio page view, aggregated by the analytics service.
type PageView struct {
	ent.Schema
}

// Fields of the PageView.
func (PageView) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			MaxLen(30).
			Immutable(),
		field.String("path").
			MaxLen(255).
			Immutable(),
		field.String("referrer").
			MaxLen(255).
			Optional().
			Immutable(),
		field.Time("visited_at").
			Immutable().
			Default(time.Now),
	}
}

// Indexes of the PageView.
func (PageView) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username", "visited_at"),
	}
}
