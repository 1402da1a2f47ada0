package payments

import "encoding/json"

// Webhook event names the processor acts on. Anything else is acknowledged
// and ignored.
const (
	EventPaymentCaptured       = "payment.captured"
	EventSubscriptionActivated = "subscription.activated"
	EventSubscriptionCancelled = "subscription.cancelled"
)

// Notes is the metadata attached to orders at creation time and echoed back
// in webhook entities.
type Notes struct {
	Plan   string `json:"plan"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// PaymentEntity is the payment object inside a payment.* webhook payload.
type PaymentEntity struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Notes  Notes  `json:"notes"`
	Amount int64  `json:"amount"`
}

// SubscriptionEntity is the subscription object inside a subscription.*
// webhook payload. CurrentEnd is a unix timestamp in seconds.
type SubscriptionEntity struct {
	ID         string `json:"id"`
	Notes      Notes  `json:"notes"`
	CurrentEnd int64  `json:"current_end"`
}

// Event is the webhook envelope.
type Event struct {
	Name    string `json:"event"`
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
		Subscription struct {
			Entity SubscriptionEntity `json:"entity"`
		} `json:"subscription"`
	} `json:"payload"`
}

// ParseEvent decodes a webhook body.
func ParseEvent(body []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
