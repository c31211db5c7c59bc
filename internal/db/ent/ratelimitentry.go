// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"foliolink/internal/db/ent/ratelimitentry"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// RateLimitEntry is the model entity for the RateLimitEntry schema.
type RateLimitEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// IPAddress holds the value of the "ip_address" field.
	IPAddress string `json:"ip_address,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint     string `json:"endpoint,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateLimitEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratelimitentry.FieldID:
			values[i] = new(sql.NullInt64)
		case ratelimitentry.FieldIPAddress, ratelimitentry.FieldEndpoint:
			values[i] = new(sql.NullString)
		case ratelimitentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateLimitEntry fields.
func (rle *RateLimitEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratelimitentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			rle.ID = int(value.Int64)
		case ratelimitentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				rle.CreatedAt = value.Time
			}
		case ratelimitentry.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				rle.IPAddress = value.String
			}
		case ratelimitentry.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				rle.Endpoint = value.String
			}
		default:
			rle.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateLimitEntry.
// This includes values selected through modifiers, order, etc.
func (rle *RateLimitEntry) Value(name string) (ent.Value, error) {
	return rle.selectValues.Get(name)
}

// Update returns a builder for updating this RateLimitEntry.
// Note that you need to call RateLimitEntry.Unwrap() before calling this method if this RateLimitEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (rle *RateLimitEntry) Update() *RateLimitEntryUpdateOne {
	return NewRateLimitEntryClient(rle.config).UpdateOne(rle)
}

// Unwrap unwraps the RateLimitEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rle *RateLimitEntry) Unwrap() *RateLimitEntry {
	_tx, ok := rle.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateLimitEntry is not a transactional entity")
	}
	rle.config.driver = _tx.drv
	return rle
}

// String implements the fmt.Stringer.
func (rle *RateLimitEntry) String() string {
	var builder strings.Builder
	builder.WriteString("RateLimitEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rle.ID))
	builder.WriteString("created_at=")
	builder.WriteString(rle.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(rle.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(rle.Endpoint)
	builder.WriteByte(')')
	return builder.String()
}

// RateLimitEntries is a parsable slice of RateLimitEntry.
type RateLimitEntries []*RateLimitEntry
