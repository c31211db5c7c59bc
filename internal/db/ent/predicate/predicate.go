// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContactMessage is the predicate function for contactmessage builders.
type ContactMessage func(*sql.Selector)

// PageView is the predicate function for pageview builders.
type PageView func(*sql.Selector)

// RateLimitEntry is the predicate function for ratelimitentry builders.
type RateLimitEntry func(*sql.Selector)
