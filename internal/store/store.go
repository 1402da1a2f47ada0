// Package store provides PostgreSQL persistence for profiles and saved
// documents.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/docforge/docforge/internal/types"
)

// SubscriptionUpdate is the full replacement state applied to a profile when
// a payment event changes its tier.
type SubscriptionUpdate struct {
	Status        string
	DocsLimit     int
	DocsGenerated int
	PeriodEnd     *time.Time
}

// ProfileStore is the persistence surface for entitlement records.
type ProfileStore interface {
	// GetProfile returns the profile, or nil when no row exists.
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)

	// EnsureProfile creates a free-tier profile row if none exists and
	// returns the current row either way.
	EnsureProfile(ctx context.Context, userID, email string) (*types.Profile, error)

	// ConsumeCredit atomically spends one export credit. It returns false
	// when the profile is at or over its limit; the row is unchanged in
	// that case.
	ConsumeCredit(ctx context.Context, userID string) (bool, error)

	// ResetUsage zeroes docs_generated for a profile.
	ResetUsage(ctx context.Context, userID string) error

	UpdateSubscriptionByID(ctx context.Context, userID string, upd SubscriptionUpdate) error
	UpdateSubscriptionByEmail(ctx context.Context, email string, upd SubscriptionUpdate) error
}

// DocumentStore is the persistence surface for saved documents.
type DocumentStore interface {
	SaveDocument(ctx context.Context, userID, title, content string) (*types.Document, error)
	ListDocuments(ctx context.Context, userID string) ([]types.Document, error)
	DeleteDocument(ctx context.Context, userID string, docID uuid.UUID) error
}
