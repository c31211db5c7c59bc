// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactMessagesColumns holds the columns for the "contact_messages" table.
	ContactMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sender_name", Type: field.TypeString, Size: 100},
		{Name: "sender_email", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "recipient_email", Type: field.TypeString, Size: 255},
		{Name: "recipient_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// ContactMessagesTable holds the schema information for the "contact_messages" table.
	ContactMessagesTable = &schema.Table{
		Name:       "contact_messages",
		Columns:    ContactMessagesColumns,
		PrimaryKey: []*schema.Column{ContactMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactmessage_recipient_email_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactMessagesColumns[5], ContactMessagesColumns[1]},
			},
		},
	}
	// PageViewsColumns holds the columns for the "page_views" table.
	PageViewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Size: 30},
		{Name: "path", Type: field.TypeString, Size: 255},
		{Name: "referrer", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "visited_at", Type: field.TypeTime},
	}
	// PageViewsTable holds the schema information for the "page_views" table.
	PageViewsTable = &schema.Table{
		Name:       "page_views",
		Columns:    PageViewsColumns,
		PrimaryKey: []*schema.Column{PageViewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pageview_username_visited_at",
				Unique:  false,
				Columns: []*schema.Column{PageViewsColumns[1], PageViewsColumns[4]},
			},
		},
	}
	// RateLimitEntriesColumns holds the columns for the "rate_limit_entries" table.
	RateLimitEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ip_address", Type: field.TypeString, Size: 45},
		{Name: "endpoint", Type: field.TypeString, Size: 50},
	}
	// RateLimitEntriesTable holds the schema information for the "rate_limit_entries" table.
	RateLimitEntriesTable = &schema.Table{
		Name:       "rate_limit_entries",
		Columns:    RateLimitEntriesColumns,
		PrimaryKey: []*schema.Column{RateLimitEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitentry_ip_address_endpoint_created_at",
				Unique:  false,
				Columns: []*schema.Column{RateLimitEntriesColumns[2], RateLimitEntriesColumns[3], RateLimitEntriesColumns[1]},
			},
			{
				Name:    "ratelimitentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{RateLimitEntriesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactMessagesTable,
		PageViewsTable,
		RateLimitEntriesTable,
	}
)

func init() {
}
