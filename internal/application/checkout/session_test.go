package checkout

import (
	"context"
	"testing"
	"time"

	infraRepo "github.com/papeleria-gasparin/pos-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartNewSale(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	session, err := NewSession(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)
	assert.False(t, session.IsActive())

	session.now = func() time.Time { return time.Unix(1700000000, 0) }

	saleID, err := session.StartNewSale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), saleID)
	assert.True(t, session.IsActive())
	assert.Equal(t, saleID, session.SaleID())
}

func TestSessionPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	session, err := NewSession(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	saleID, err := session.StartNewSale(ctx)
	require.NoError(t, err)

	reloaded, err := NewSession(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)
	assert.True(t, reloaded.IsActive())
	assert.Equal(t, saleID, reloaded.SaleID())
}

func TestSessionStaleActiveFlagReadsAsInactive(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()
	userID := "cashier@gasparin.mx"

	// An active flag with no sale id is stale state from an interrupted run
	require.NoError(t, store.Put(ctx, StateKey(userID, keySaleActive), true))

	session, err := NewSession(ctx, store, userID)
	require.NoError(t, err)
	assert.False(t, session.IsActive())
	assert.Zero(t, session.SaleID())
}

func TestSessionUnreadableStateReadsAsDefaults(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()
	userID := "cashier@gasparin.mx"

	require.NoError(t, store.Put(ctx, StateKey(userID, keySaleActive), "yes"))
	require.NoError(t, store.Put(ctx, StateKey(userID, keyCurrentSaleID), "soon"))

	session, err := NewSession(ctx, store, userID)
	require.NoError(t, err)
	assert.False(t, session.IsActive())
	assert.Zero(t, session.SaleID())
}

func TestSessionEndRemovesPersistedKeys(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()
	userID := "cashier@gasparin.mx"

	session, err := NewSession(ctx, store, userID)
	require.NoError(t, err)
	_, err = session.StartNewSale(ctx)
	require.NoError(t, err)

	cart, err := NewCart(ctx, store, userID)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(ctx, testProduct("Boligrafo", "8.50"), 1))

	require.NoError(t, session.EndSaleSession(ctx))

	assert.False(t, session.IsActive())
	assert.Zero(t, session.SaleID())

	for _, name := range []string{keySaleActive, keyCurrentSaleID, keySaleItems} {
		var dest interface{}
		found, err := store.Get(ctx, StateKey(userID, name), &dest)
		require.NoError(t, err)
		assert.False(t, found, "key %s should be removed", name)
	}
}

func TestRegistrySwitchUserPurgesPreviousUser(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()
	registry := NewRegistry(store)

	sessionA, err := registry.Get(ctx, "a@gasparin.mx")
	require.NoError(t, err)
	_, err = sessionA.OpenSession(ctx, mustDecimal("500.00"))
	require.NoError(t, err)
	require.NoError(t, sessionA.AddToCart(ctx, testProduct("Boligrafo", "8.50"), 1))

	sessionB, err := registry.SwitchUser(ctx, "a@gasparin.mx", "b@gasparin.mx")
	require.NoError(t, err)

	// B starts with defaults
	state := sessionB.Snapshot()
	assert.False(t, state.SessionActive)
	assert.Zero(t, state.SaleID)
	assert.Empty(t, state.Items)

	// A's keys are gone from the store
	for _, name := range []string{keySaleActive, keyCurrentSaleID, keySaleItems} {
		var dest interface{}
		found, err := store.Get(ctx, StateKey("a@gasparin.mx", name), &dest)
		require.NoError(t, err)
		assert.False(t, found, "key %s should be removed", name)
	}
}

func TestRegistryReturnsSameSessionPerUser(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(infraRepo.NewMemoryKVRepository())

	first, err := registry.Get(ctx, "cashier@gasparin.mx")
	require.NoError(t, err)
	second, err := registry.Get(ctx, "cashier@gasparin.mx")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegistryDefaultsToAnonymous(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(infraRepo.NewMemoryKVRepository())

	session, err := registry.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "anonymous", session.UserID())
}
