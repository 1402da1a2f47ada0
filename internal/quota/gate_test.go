package quota

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/docforge/docforge/internal/types"
)

// fakeStore implements Store over an in-memory map with the same atomicity
// contract as the SQL implementation: the limit check and the increment
// happen under one lock.
type fakeStore struct {
	mu       sync.Mutex
	profiles map[string]*types.Profile
	getErr   error
	spendErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{profiles: make(map[string]*types.Profile)}
}

func (f *fakeStore) GetProfile(_ context.Context, userID string) (*types.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeStore) ConsumeCredit(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.spendErr != nil {
		return false, f.spendErr
	}
	p, ok := f.profiles[userID]
	if !ok || p.DocsGenerated >= p.DocsLimit {
		return false, nil
	}
	p.DocsGenerated++
	return true, nil
}

func TestAuthorize_SpendsCredit(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &types.Profile{ID: "u1", SubscriptionStatus: types.StatusPro, DocsLimit: 50, DocsGenerated: 10}
	gate := NewGate(store)

	d := gate.Authorize(context.Background(), "u1")
	require.True(t, d.Allowed)
	assert.Equal(t, 11, d.Profile.DocsGenerated)
	assert.Equal(t, 11, store.profiles["u1"].DocsGenerated)
}

func TestAuthorize_UnknownProfileDenied(t *testing.T) {
	store := newFakeStore()
	gate := NewGate(store)

	// No profile row exists for this id; the gate must deny rather than
	// create one. Row creation belongs to the ensure-profile operation.
	d := gate.Authorize(context.Background(), "stranger")
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "Profile not found")
	assert.Empty(t, store.profiles, "a denied lookup must not mint a profile")
}

func TestAuthorize_LimitReached(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &types.Profile{ID: "u1", DocsLimit: 1, DocsGenerated: 1}
	gate := NewGate(store)

	d := gate.Authorize(context.Background(), "u1")
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "Upgrade to Pro")
	assert.Equal(t, 1, store.profiles["u1"].DocsGenerated)
}

func TestAuthorize_AdminBypass(t *testing.T) {
	store := newFakeStore()
	store.profiles["root"] = &types.Profile{ID: "root", Role: types.RoleAdmin, DocsLimit: 1, DocsGenerated: 1}
	gate := NewGate(store)

	for i := 0; i < 3; i++ {
		d := gate.Authorize(context.Background(), "root")
		require.True(t, d.Allowed)
	}
	// Admin exports never touch the counter.
	assert.Equal(t, 1, store.profiles["root"].DocsGenerated)
}

func TestAuthorize_StoreErrorDenies(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	gate := NewGate(store)

	d := gate.Authorize(context.Background(), "u1")
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "Unable to verify")
}

func TestAuthorize_SpendErrorDenies(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &types.Profile{ID: "u1", DocsLimit: 5}
	store.spendErr = errors.New("connection reset")
	gate := NewGate(store)

	d := gate.Authorize(context.Background(), "u1")
	assert.False(t, d.Allowed)
}

func TestAuthorize_ConcurrentExportsNeverOversell(t *testing.T) {
	const limit = 5
	store := newFakeStore()
	store.profiles["u1"] = &types.Profile{ID: "u1", DocsLimit: limit}
	gate := NewGate(store)

	var allowed int64
	var mu sync.Mutex
	var g errgroup.Group
	for i := 0; i < 25; i++ {
		g.Go(func() error {
			if gate.Authorize(context.Background(), "u1").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, limit, allowed)
	assert.Equal(t, limit, store.profiles["u1"].DocsGenerated)
}
