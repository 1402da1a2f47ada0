// Package quota decides whether a user may export a document. Every export
// spends one credit from the user's profile unless the profile is an admin.
package quota

import (
	"context"
	"log"

	"github.com/docforge/docforge/internal/types"
)

// Store is the slice of profile persistence the gate needs.
type Store interface {
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)
	ConsumeCredit(ctx context.Context, userID string) (bool, error)
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	// Reason is a client-safe explanation, set when Allowed is false.
	Reason  string
	Profile *types.Profile
}

// Gate enforces the per-profile export allowance.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Authorize checks and, for non-admin users, spends one export credit. Any
// storage failure denies the export: a user whose entitlement cannot be read
// must not get free output. An unknown user id is likewise denied; profile
// rows are only created through the ensure-profile operation.
func (g *Gate) Authorize(ctx context.Context, userID string) Decision {
	profile, err := g.store.GetProfile(ctx, userID)
	if err != nil {
		log.Printf("quota: profile lookup failed for %s: %v", userID, err)
		return Decision{Allowed: false, Reason: "Unable to verify export allowance"}
	}
	if profile == nil {
		return Decision{Allowed: false, Reason: "Profile not found"}
	}

	if profile.Role == types.RoleAdmin {
		return Decision{Allowed: true, Profile: profile}
	}

	ok, err := g.store.ConsumeCredit(ctx, userID)
	if err != nil {
		log.Printf("quota: credit consume failed for %s: %v", userID, err)
		return Decision{Allowed: false, Reason: "Unable to verify export allowance", Profile: profile}
	}
	if !ok {
		return Decision{Allowed: false, Reason: "Document limit reached. Upgrade to Pro for more exports.", Profile: profile}
	}

	profile.DocsGenerated++
	return Decision{Allowed: true, Profile: profile}
}
