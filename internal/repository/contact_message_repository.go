package repository

import (
	"context"

	"foliolink/internal/db/ent"
)

// contactMessageRepository implements ContactMessageRepository interface
type contactMessageRepository struct {
	client *ent.Client
}

// NewContactMessageRepository creates a new ContactMessageRepository instance
func NewContactMessageRepository(client *ent.Client) ContactMessageRepository {
	return &contactMessageRepository{
		client: client,
	}
}

// Create appends a relayed submission to the audit trail
func (r *contactMessageRepository) Create(ctx context.Context, record ContactMessageRecord) (*ent.ContactMessage, error) {
	return r.client.ContactMessage.Create().
		SetSenderName(record.SenderName).
		SetSenderEmail(record.SenderEmail).
		SetMessage(record.Message).
		SetRecipientEmail(record.RecipientEmail).
		SetRecipientName(record.RecipientName).
		SetIPAddress(record.IPAddress).
		SetUserAgent(record.UserAgent).
		Save(ctx)
}
