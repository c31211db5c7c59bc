// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"foliolink/internal/db/ent/contactmessage"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ContactMessage is the model entity for the ContactMessage schema.
type ContactMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SenderName holds the value of the "sender_name" field.
	SenderName string `json:"sender_name,omitempty"`
	// SenderEmail holds the value of the "sender_email" field.
	SenderEmail string `json:"sender_email,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// RecipientEmail holds the value of the "recipient_email" field.
	RecipientEmail string `json:"recipient_email,omitempty"`
	// RecipientName holds the value of the "recipient_name" field.
	RecipientName string `json:"recipient_name,omitempty"`
	// IPAddress holds the value of the "ip_address" field.
	IPAddress string `json:"ip_address,omitempty"`
	// UserAgent holds the value of the "user_agent" field.
	UserAgent    string `json:"user_agent,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContactMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contactmessage.FieldID:
			values[i] = new(sql.NullInt64)
		case contactmessage.FieldSenderName, contactmessage.FieldSenderEmail, contactmessage.FieldMessage, contactmessage.FieldRecipientEmail, contactmessage.FieldRecipientName, contactmessage.FieldIPAddress, contactmessage.FieldUserAgent:
			values[i] = new(sql.NullString)
		case contactmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContactMessage fields.
func (cm *ContactMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contactmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cm.ID = int(value.Int64)
		case contactmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cm.CreatedAt = value.Time
			}
		case contactmessage.FieldSenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_name", values[i])
			} else if value.Valid {
				cm.SenderName = value.String
			}
		case contactmessage.FieldSenderEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_email", values[i])
			} else if value.Valid {
				cm.SenderEmail = value.String
			}
		case contactmessage.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				cm.Message = value.String
			}
		case contactmessage.FieldRecipientEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_email", values[i])
			} else if value.Valid {
				cm.RecipientEmail = value.String
			}
		case contactmessage.FieldRecipientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_name", values[i])
			} else if value.Valid {
				cm.RecipientName = value.String
			}
		case contactmessage.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				cm.IPAddress = value.String
			}
		case contactmessage.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				cm.UserAgent = value.String
			}
		default:
			cm.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContactMessage.
// This includes values selected through modifiers, order, etc.
func (cm *ContactMessage) Value(name string) (ent.Value, error) {
	return cm.selectValues.Get(name)
}

// Update returns a builder for updating this ContactMessage.
// Note that you need to call ContactMessage.Unwrap() before calling this method if this ContactMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (cm *ContactMessage) Update() *ContactMessageUpdateOne {
	return NewContactMessageClient(cm.config).UpdateOne(cm)
}

// Unwrap unwraps the ContactMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cm *ContactMessage) Unwrap() *ContactMessage {
	_tx, ok := cm.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContactMessage is not a transactional entity")
	}
	cm.config.driver = _tx.drv
	return cm
}

// String implements the fmt.Stringer.
func (cm *ContactMessage) String() string {
	var builder strings.Builder
	builder.WriteString("ContactMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cm.ID))
	builder.WriteString("created_at=")
	builder.WriteString(cm.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sender_name=")
	builder.WriteString(cm.SenderName)
	builder.WriteString(", ")
	builder.WriteString("sender_email=")
	builder.WriteString(cm.SenderEmail)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(cm.Message)
	builder.WriteString(", ")
	builder.WriteString("recipient_email=")
	builder.WriteString(cm.RecipientEmail)
	builder.WriteString(", ")
	builder.WriteString("recipient_name=")
	builder.WriteString(cm.RecipientName)
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(cm.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("user_agent=")
	builder.WriteString(cm.UserAgent)
	builder.WriteByte(')')
	return builder.String()
}

// ContactMessages is a parsable slice of ContactMessage.
type ContactMessages []*ContactMessage
