package events

import "time"

const AccountNotificationsTopic = "hr.account.notifications.v1"

const (
	VerificationRequested  = "account.verification_requested"
	PasswordResetRequested = "account.password_reset_requested"
)

// AccountNotificationEvent asks the consumer to email a one-time code.
// The code travels in clear text; only its bcrypt hash is stored.
type AccountNotificationEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	ExpiresAt  time.Time `json:"expires_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
