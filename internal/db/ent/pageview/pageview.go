// Code generated by ent, DO NOT EDIT.

package pageview

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pageview type in the database.
	Label = "page_view"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldReferrer holds the string denoting the referrer field in the database.
	FieldReferrer = "referrer"
	// FieldVisitedAt holds the string denoting the visited_at field in the database.
	FieldVisitedAt = "visited_at"
	// Table holds the table name of the pageview in the database.
	Table = "page_views"
)

// Columns holds all SQL columns for pageview fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldPath,
	FieldReferrer,
	FieldVisitedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// PathValidator is a validator for the "path" field. It is called by the builders before save.
	PathValidator func(string) error
	// ReferrerValidator is a validator for the "referrer" field. It is called by the builders before save.
	ReferrerValidator func(string) error
	// DefaultVisitedAt holds the default value on creation for the "visited_at" field.
	DefaultVisitedAt func() time.Time
)

// OrderOption defines the ordering options for the PageView queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByReferrer orders the results by the referrer field.
func ByReferrer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferrer, opts...).ToFunc()
}

// ByVisitedAt orders the results by the visited_at field.
func ByVisitedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitedAt, opts...).ToFunc()
}
