package payments

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/docforge/docforge/internal/store"
	"github.com/docforge/docforge/internal/types"
)

// SubscriptionStore is the slice of profile persistence webhook handling
// needs.
type SubscriptionStore interface {
	UpdateSubscriptionByID(ctx context.Context, userID string, upd store.SubscriptionUpdate) error
	UpdateSubscriptionByEmail(ctx context.Context, email string, upd store.SubscriptionUpdate) error
}

// Processor applies verified webhook events to profiles.
type Processor struct {
	store SubscriptionStore
	// now is swappable in tests.
	now func() time.Time
}

func NewProcessor(s SubscriptionStore) *Processor {
	return &Processor{store: s, now: time.Now}
}

// Handle applies one webhook event. Events with no matching profile key
// (neither userId nor email in the notes) are logged and dropped; unknown
// event names are ignored.
func (p *Processor) Handle(ctx context.Context, ev *Event) error {
	switch ev.Name {
	case EventPaymentCaptured:
		payment := ev.Payload.Payment.Entity
		// One-off payments carry no period; the subscription runs a month
		// from capture.
		periodEnd := p.now().AddDate(0, 1, 0)
		email := payment.Notes.Email
		if email == "" || email == "unknown" {
			email = payment.Email
		}
		return p.apply(ctx, payment.Notes.UserID, email, proUpdate(&periodEnd))

	case EventSubscriptionActivated:
		sub := ev.Payload.Subscription.Entity
		var periodEnd *time.Time
		if sub.CurrentEnd > 0 {
			t := time.Unix(sub.CurrentEnd, 0).UTC()
			periodEnd = &t
		}
		return p.apply(ctx, sub.Notes.UserID, sub.Notes.Email, proUpdate(periodEnd))

	case EventSubscriptionCancelled:
		sub := ev.Payload.Subscription.Entity
		return p.apply(ctx, sub.Notes.UserID, sub.Notes.Email, store.SubscriptionUpdate{
			Status:        types.StatusFree,
			DocsLimit:     store.FreeDocsLimit,
			DocsGenerated: 0,
		})
	}

	log.Printf("payments: ignoring webhook event %q", ev.Name)
	return nil
}

func proUpdate(periodEnd *time.Time) store.SubscriptionUpdate {
	return store.SubscriptionUpdate{
		Status:        types.StatusPro,
		DocsLimit:     store.ProDocsLimit,
		DocsGenerated: 0,
		PeriodEnd:     periodEnd,
	}
}

// apply routes an update to the profile named by userID, falling back to
// email. "unknown" is the placeholder written at order creation and matches
// nothing.
func (p *Processor) apply(ctx context.Context, userID, email string, upd store.SubscriptionUpdate) error {
	if userID != "" && userID != "unknown" {
		return p.store.UpdateSubscriptionByID(ctx, userID, upd)
	}
	if email != "" && email != "unknown" {
		return p.store.UpdateSubscriptionByEmail(ctx, email, upd)
	}
	return fmt.Errorf("event carries no profile key")
}
