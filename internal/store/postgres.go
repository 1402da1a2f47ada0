package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docforge/docforge/internal/types"
)

// Export allowances per tier. The free limit seeds lazily-created rows; the
// pro limit is applied by subscription updates.
const (
	FreeDocsLimit = 1
	ProDocsLimit  = 50
)

// DB wraps a PostgreSQL connection pool and implements ProfileStore and
// DocumentStore.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const profileColumns = `id, COALESCE(email, ''), subscription_status, docs_generated, docs_limit,
	 subscription_current_period_end, COALESCE(role, '')`

func scanProfile(row pgx.Row) (*types.Profile, error) {
	var p types.Profile
	err := row.Scan(&p.ID, &p.Email, &p.SubscriptionStatus, &p.DocsGenerated,
		&p.DocsLimit, &p.PeriodEnd, &p.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &p, nil
}

// GetProfile retrieves a profile by user ID, or nil when no row exists.
func (db *DB) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	return scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, userID))
}

// EnsureProfile creates a free-tier profile if the user has none, then
// returns the current row. Concurrent calls for the same user are safe: the
// insert is a no-op when the row already exists.
func (db *DB) EnsureProfile(ctx context.Context, userID, email string) (*types.Profile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (id, email, subscription_status, docs_generated, docs_limit)
		 VALUES ($1, $2, $3, 0, $4)
		 ON CONFLICT (id) DO NOTHING`,
		userID, email, types.StatusFree, FreeDocsLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	return db.GetProfile(ctx, userID)
}

// ConsumeCredit spends one export credit. The guard lives in the UPDATE
// predicate so two concurrent exports cannot both take the last credit.
func (db *DB) ConsumeCredit(ctx context.Context, userID string) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles
		 SET docs_generated = docs_generated + 1
		 WHERE id = $1 AND docs_generated < docs_limit`,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to consume credit: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ResetUsage zeroes the export counter for a profile.
func (db *DB) ResetUsage(ctx context.Context, userID string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET docs_generated = 0 WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to reset usage: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", userID)
	}
	return nil
}

// UpdateSubscriptionByID applies a tier change keyed on user ID.
func (db *DB) UpdateSubscriptionByID(ctx context.Context, userID string, upd SubscriptionUpdate) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles
		 SET subscription_status = $1, docs_limit = $2, docs_generated = $3,
		     subscription_current_period_end = $4
		 WHERE id = $5`,
		upd.Status, upd.DocsLimit, upd.DocsGenerated, upd.PeriodEnd, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", userID)
	}
	return nil
}

// UpdateSubscriptionByEmail applies a tier change keyed on email. Used when a
// payment event carries no user ID.
func (db *DB) UpdateSubscriptionByEmail(ctx context.Context, email string, upd SubscriptionUpdate) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles
		 SET subscription_status = $1, docs_limit = $2, docs_generated = $3,
		     subscription_current_period_end = $4
		 WHERE email = $5`,
		upd.Status, upd.DocsLimit, upd.DocsGenerated, upd.PeriodEnd, email,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("no profile with email: %s", email)
	}
	return nil
}
