package contact

// ContactRequest represents a contact form submission for a portfolio owner.
// A missing recipient is deliberately not a binding error: the mail relay
// treats it as a configuration fault, not bad user input.
type ContactRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"omitempty,email,max=255"`
	RecipientName  string `json:"recipient_name" binding:"omitempty,max=100"`
	SenderName     string `json:"sender_name" binding:"omitempty,max=100"`
	SenderEmail    string `json:"sender_email" binding:"omitempty,max=255"`
	Message        string `json:"message" binding:"omitempty,max=5000"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// RateLimitedResponse carries the retry hint returned with a 429.
type RateLimitedResponse struct {
	Message       string `json:"message"`
	RemainingTime int    `json:"remainingTime"`
}
