package types

import "time"

// Subscription tiers stored on a profile.
const (
	StatusFree = "free"
	StatusPro  = "pro"
)

// RoleAdmin marks a profile that bypasses the export quota entirely.
const RoleAdmin = "admin"

// Profile is the per-user entitlement record and the single source of truth
// for export authorization. Rows are created lazily with free-tier defaults
// and mutated only by the quota gate and the payment webhook.
type Profile struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email,omitempty"`
	SubscriptionStatus string     `json:"subscription_status"`
	DocsGenerated      int        `json:"docs_generated"`
	DocsLimit          int        `json:"docs_limit"`
	PeriodEnd          *time.Time `json:"subscription_current_period_end,omitempty"`
	Role               string     `json:"role,omitempty"`
}

// Remaining returns how many exports the profile has left. Admin profiles
// are unlimited.
func (p *Profile) Remaining() int {
	if p.Role == RoleAdmin {
		return -1
	}
	if r := p.DocsLimit - p.DocsGenerated; r > 0 {
		return r
	}
	return 0
}
