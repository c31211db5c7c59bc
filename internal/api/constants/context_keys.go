package constants

// Context keys used to pass validated data between middleware and handlers
const (
	ContextKeyContact   = "contact"
	ContextKeyTrack     = "track"
	ContextKeyRequestID = "RequestID"
)
