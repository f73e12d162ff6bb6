package newsletter

import "time"

// Subscription is a newsletter signup. At most one row per email ever
// exists; unsubscribing deactivates the row and resubscribing reactivates
// it under the same id. The unsubscribe token is minted once at first
// subscribe and survives reactivation.
type Subscription struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	SubscribedAt     time.Time `json:"subscribed_at"`
	IsActive         bool      `json:"is_active"`
	UnsubscribeToken string    `json:"unsubscribe_token"`
}
