package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitEntry holds the schema definition for the RateLimitEntry entity.
// One row per accepted contact submission; rows are never mutated and are
// pruned once they fall out of the sliding window.
type RateLimitEntry struct {
	ent.Schema
}

// Fields of the RateLimitEntry.
func (RateLimitEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("ip_address").
			MaxLen(45).
			Immutable(),
		field.String("endpoint").
			MaxLen(50).
			Immutable(),
	}
}

// Indexes of the RateLimitEntry.
func (RateLimitEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ip_address", "endpoint", "created_at"),
		index.Fields("created_at"),
	}
}

// Mixin for the RateLimitEntry schema.
func (RateLimitEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}
