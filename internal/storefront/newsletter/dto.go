package newsletter

// SubscribeRequest is the createNewsletterSubscription mutation input.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UnsubscribeRequest is the unsubscribeNewsletter mutation input.
type UnsubscribeRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
}
