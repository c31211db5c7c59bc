// Code generated by ent, DO NOT EDIT.

package ent

import (
	"foliolink/internal/db/ent/contactmessage"
	"foliolink/internal/db/ent/pageview"
	"foliolink/internal/db/ent/ratelimitentry"
	"foliolink/internal/db/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactmessageMixin := schema.ContactMessage{}.Mixin()
	contactmessageMixinFields0 := contactmessageMixin[0].Fields()
	_ = contactmessageMixinFields0
	contactmessageFields := schema.ContactMessage{}.Fields()
	_ = contactmessageFields
	// contactmessageDescCreatedAt is the schema descriptor for created_at field.
	contactmessageDescCreatedAt := contactmessageMixinFields0[0].Descriptor()
	// contactmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactmessage.DefaultCreatedAt = contactmessageDescCreatedAt.Default.(func() time.Time)
	// contactmessageDescSenderName is the schema descriptor for sender_name field.
	contactmessageDescSenderName := contactmessageFields[0].Descriptor()
	// contactmessage.SenderNameValidator is a validator for the "sender_name" field. It is called by the builders before save.
	contactmessage.SenderNameValidator = contactmessageDescSenderName.Validators[0].(func(string) error)
	// contactmessageDescSenderEmail is the schema descriptor for sender_email field.
	contactmessageDescSenderEmail := contactmessageFields[1].Descriptor()
	// contactmessage.SenderEmailValidator is a validator for the "sender_email" field. It is called by the builders before save.
	contactmessage.SenderEmailValidator = contactmessageDescSenderEmail.Validators[0].(func(string) error)
	// contactmessageDescRecipientEmail is the schema descriptor for recipient_email field.
	contactmessageDescRecipientEmail := contactmessageFields[3].Descriptor()
	// contactmessage.RecipientEmailValidator is a validator for the "recipient_email" field. It is called by the builders before save.
	contactmessage.RecipientEmailValidator = contactmessageDescRecipientEmail.Validators[0].(func(string) error)
	// contactmessageDescRecipientName is the schema descriptor for recipient_name field.
	contactmessageDescRecipientName := contactmessageFields[4].Descriptor()
	// contactmessage.RecipientNameValidator is a validator for the "recipient_name" field. It is called by the builders before save.
	contactmessage.RecipientNameValidator = contactmessageDescRecipientName.Validators[0].(func(string) error)
	// contactmessageDescIPAddress is the schema descriptor for ip_address field.
	contactmessageDescIPAddress := contactmessageFields[5].Descriptor()
	// contactmessage.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	contactmessage.IPAddressValidator = contactmessageDescIPAddress.Validators[0].(func(string) error)
	// contactmessageDescUserAgent is the schema descriptor for user_agent field.
	contactmessageDescUserAgent := contactmessageFields[6].Descriptor()
	// contactmessage.UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	contactmessage.UserAgentValidator = contactmessageDescUserAgent.Validators[0].(func(string) error)
	pageviewFields := schema.PageView{}.Fields()
	_ = pageviewFields
	// pageviewDescUsername is the schema descriptor for username field.
	pageviewDescUsername := pageviewFields[0].Descriptor()
	// pageview.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	pageview.UsernameValidator = pageviewDescUsername.Validators[0].(func(string) error)
	// pageviewDescPath is the schema descriptor for path field.
	pageviewDescPath := pageviewFields[1].Descriptor()
	// pageview.PathValidator is a validator for the "path" field. It is called by the builders before save.
	pageview.PathValidator = pageviewDescPath.Validators[0].(func(string) error)
	// pageviewDescReferrer is the schema descriptor for referrer field.
	pageviewDescReferrer := pageviewFields[2].Descriptor()
	// pageview.ReferrerValidator is a validator for the "referrer" field. It is called by the builders before save.
	pageview.ReferrerValidator = pageviewDescReferrer.Validators[0].(func(string) error)
	// pageviewDescVisitedAt is the schema descriptor for visited_at field.
	pageviewDescVisitedAt := pageviewFields[3].Descriptor()
	// pageview.DefaultVisitedAt holds the default value on creation for the visited_at field.
	pageview.DefaultVisitedAt = pageviewDescVisitedAt.Default.(func() time.Time)
	ratelimitentryMixin := schema.RateLimitEntry{}.Mixin()
	ratelimitentryMixinFields0 := ratelimitentryMixin[0].Fields()
	_ = ratelimitentryMixinFields0
	ratelimitentryFields := schema.RateLimitEntry{}.Fields()
	_ = ratelimitentryFields
	// ratelimitentryDescCreatedAt is the schema descriptor for created_at field.
	ratelimitentryDescCreatedAt := ratelimitentryMixinFields0[0].Descriptor()
	// ratelimitentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ratelimitentry.DefaultCreatedAt = ratelimitentryDescCreatedAt.Default.(func() time.Time)
	// ratelimitentryDescIPAddress is the schema descriptor for ip_address field.
	ratelimitentryDescIPAddress := ratelimitentryFields[0].Descriptor()
	// ratelimitentry.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	ratelimitentry.IPAddressValidator = ratelimitentryDescIPAddress.Validators[0].(func(string) error)
	// ratelimitentryDescEndpoint is the schema descriptor for endpoint field.
	ratelimitentryDescEndpoint := ratelimitentryFields[1].Descriptor()
	// ratelimitentry.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	ratelimitentry.EndpointValidator = ratelimitentryDescEndpoint.Validators[0].(func(string) error)
}
