// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"foliolink/internal/db/ent/pageview"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// PageView is the model entity for the PageView schema.
type PageView struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// Referrer holds the value of the "referrer" field.
	Referrer string `json:"referrer,omitempty"`
	// VisitedAt holds the value of the "visited_at" field.
	VisitedAt    time.Time `json:"visited_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PageView) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pageview.FieldID:
			values[i] = new(sql.NullInt64)
		case pageview.FieldUsername, pageview.FieldPath, pageview.FieldReferrer:
			values[i] = new(sql.NullString)
		case pageview.FieldVisitedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PageView fields.
func (pv *PageView) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pageview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pv.ID = int(value.Int64)
		case pageview.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				pv.Username = value.String
			}
		case pageview.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				pv.Path = value.String
			}
		case pageview.FieldReferrer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referrer", values[i])
			} else if value.Valid {
				pv.Referrer = value.String
			}
		case pageview.FieldVisitedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visited_at", values[i])
			} else if value.Valid {
				pv.VisitedAt = value.Time
			}
		default:
			pv.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PageView.
// This includes values selected through modifiers, order, etc.
func (pv *PageView) Value(name string) (ent.Value, error) {
	return pv.selectValues.Get(name)
}

// Update returns a builder for updating this PageView.
// Note that you need to call PageView.Unwrap() before calling this method if this PageView
// was returned from a transaction, and the transaction was committed or rolled back.
func (pv *PageView) Update() *PageViewUpdateOne {
	return NewPageViewClient(pv.config).UpdateOne(pv)
}

// Unwrap unwraps the PageView entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pv *PageView) Unwrap() *PageView {
	_tx, ok := pv.config.driver.(*txDriver)
	if !ok {
		panic("ent: PageView is not a transactional entity")
	}
	pv.config.driver = _tx.drv
	return pv
}

// String implements the fmt.Stringer.
func (pv *PageView) String() string {
	var builder strings.Builder
	builder.WriteString("PageView(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pv.ID))
	builder.WriteString("username=")
	builder.WriteString(pv.Username)
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(pv.Path)
	builder.WriteString(", ")
	builder.WriteString("referrer=")
	builder.WriteString(pv.Referrer)
	builder.WriteString(", ")
	builder.WriteString("visited_at=")
	builder.WriteString(pv.VisitedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PageViews is a parsable slice of PageView.
type PageViews []*PageView
