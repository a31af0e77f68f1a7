package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	infraRepo "github.com/papeleria-gasparin/pos-api/internal/infrastructure/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, price string) CartProduct {
	return CartProduct{
		ID:        uuid.New(),
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestCartAddItemMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cart, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	pen := testProduct("Boligrafo", "8.50")
	require.NoError(t, cart.AddItem(ctx, pen, 1))
	require.NoError(t, cart.AddItem(ctx, pen, 2))
	require.NoError(t, cart.AddItem(ctx, pen, 3))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, "51.00", items[0].Subtotal.StringFixed(2))
}

func TestCartUpdateQuantityClampsToOne(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cart, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	pen := testProduct("Boligrafo", "8.50")
	require.NoError(t, cart.AddItem(ctx, pen, 5))

	require.NoError(t, cart.UpdateQuantity(ctx, pen.ID, 0))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "8.50", items[0].Subtotal.StringFixed(2))
}

func TestCartUpdateQuantityRecomputesSubtotal(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cart, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	notebook := testProduct("Cuaderno", "35.50")
	require.NoError(t, cart.AddItem(ctx, notebook, 1))
	require.NoError(t, cart.UpdateQuantity(ctx, notebook.ID, 4))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "142.00", items[0].Subtotal.StringFixed(2))
}

func TestCartRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cart, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	pen := testProduct("Boligrafo", "8.50")
	glue := testProduct("Pegamento", "22.00")
	require.NoError(t, cart.AddItem(ctx, pen, 1))
	require.NoError(t, cart.AddItem(ctx, glue, 1))

	require.NoError(t, cart.RemoveItem(ctx, pen.ID))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, glue.ID, cart.Items()[0].ProductID)

	// Removing an absent product is a no-op
	require.NoError(t, cart.RemoveItem(ctx, pen.ID))
	require.Len(t, cart.Items(), 1)
}

func TestCartTotalIsSumOfSubtotals(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cart, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	require.NoError(t, cart.AddItem(ctx, testProduct("Cuaderno", "35.50"), 2))
	require.NoError(t, cart.AddItem(ctx, testProduct("Lapiz", "5.00"), 1))

	assert.Equal(t, "76.00", cart.Total().StringFixed(2))
	// Reading twice without mutation yields the same value
	assert.Equal(t, "76.00", cart.Total().StringFixed(2))
}

func TestCartPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cart, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	pen := testProduct("Boligrafo", "8.50")
	require.NoError(t, cart.AddItem(ctx, pen, 3))

	// Simulate a page refresh: a fresh cart over the same store and user
	reloaded, err := NewCart(ctx, store, "cashier@gasparin.mx")
	require.NoError(t, err)

	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, pen.ID, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "25.50", items[0].Subtotal.StringFixed(2))
}

func TestCartFallsBackToEmptyOnUnreadableState(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()
	userID := "cashier@gasparin.mx"

	// A stored value that does not decode as a cart reads as absent
	require.NoError(t, store.Put(ctx, StateKey(userID, keySaleItems), "not-a-cart"))

	cart, err := NewCart(ctx, store, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestCartIsScopedByUser(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryKVRepository()

	cartA, err := NewCart(ctx, store, "a@gasparin.mx")
	require.NoError(t, err)
	require.NoError(t, cartA.AddItem(ctx, testProduct("Boligrafo", "8.50"), 1))

	cartB, err := NewCart(ctx, store, "b@gasparin.mx")
	require.NoError(t, err)
	assert.True(t, cartB.IsEmpty())
}
