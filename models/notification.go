package models

// SMSResult is the outcome of a single SMS delivery attempt. A failed attempt
// is data, not an error: batch senders inspect Success and keep going.
type SMSResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Notification status values used in dispatch outcomes.
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Notification recipient types.
const (
	NotificationTypeEmergencyContact = "emergency_contact"
)
