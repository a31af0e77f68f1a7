package checkout

import (
	"context"
	"testing"

	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	infraRepo "github.com/papeleria-gasparin/pos-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openedSession(t *testing.T) (*CheckoutSession, context.Context) {
	t.Helper()
	ctx := context.Background()

	cs, err := NewCheckoutSession(ctx, infraRepo.NewMemoryKVRepository(), "cashier@gasparin.mx")
	require.NoError(t, err)

	_, err = cs.OpenSession(ctx, mustDecimal("500.00"))
	require.NoError(t, err)
	return cs, ctx
}

func TestCheckoutRequiresActiveSession(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCheckoutSession(ctx, infraRepo.NewMemoryKVRepository(), "cashier@gasparin.mx")
	require.NoError(t, err)

	err = cs.AddToCart(ctx, testProduct("Boligrafo", "8.50"), 1)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	assert.ErrorIs(t, cs.StartCheckout(), ErrNoActiveSession)
	assert.ErrorIs(t, cs.CloseSession(ctx, mustDecimal("0")), ErrNoActiveSession)
}

func TestCheckoutRefusesEmptyCart(t *testing.T) {
	cs, _ := openedSession(t)

	err := cs.StartCheckout()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, enum.CheckoutStageCart, cs.Snapshot().Stage)
}

func TestCheckoutCashFlow(t *testing.T) {
	cs, ctx := openedSession(t)

	// Cart: 2 @ 35.50 plus 1 @ 5.00 totals 76.00
	notebook := testProduct("Cuaderno", "35.50")
	require.NoError(t, cs.AddToCart(ctx, notebook, 2))
	require.NoError(t, cs.AddToCart(ctx, testProduct("Lapiz", "5.00"), 1))
	assert.Equal(t, "76.00", cs.Snapshot().Total.StringFixed(2))

	require.NoError(t, cs.StartCheckout())
	state := cs.Snapshot()
	assert.Equal(t, enum.CheckoutStagePayment, state.Stage)
	assert.True(t, state.CaptureActive)
	assert.Equal(t, enum.PaymentMethodCash, state.Method)

	// Tender 100.00 cash
	for _, key := range []string{"1", "0", "0"} {
		_, err := cs.PressKey(ctx, key)
		require.NoError(t, err)
	}

	sale, err := cs.ConfirmPayment(ctx)
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, "76.00", sale.Total.StringFixed(2))
	assert.Equal(t, "24.00", sale.ChangeDue.StringFixed(2))
	require.Len(t, sale.Payments, 1)
	assert.Equal(t, enum.PaymentMethodCash, sale.Payments[0].Method)
	assert.Equal(t, "100.00", sale.Payments[0].Amount.StringFixed(2))
	require.Len(t, sale.Items, 2)

	state = cs.Snapshot()
	assert.Equal(t, enum.CheckoutStageConfirmation, state.Stage)
	assert.False(t, state.CaptureActive)
}

func TestCheckoutCardFlow(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())

	require.NoError(t, cs.SelectMethod(enum.PaymentMethodCard))
	assert.Equal(t, "50.00", cs.Snapshot().InputAmount)

	sale, err := cs.ConfirmPayment(ctx)
	require.NoError(t, err)

	require.Len(t, sale.Payments, 1)
	assert.Equal(t, enum.PaymentMethodCard, sale.Payments[0].Method)
	assert.Equal(t, "50.00", sale.Payments[0].Amount.StringFixed(2))
	assert.True(t, sale.ChangeDue.IsZero())
}

func TestCheckoutEnterKeyCompletesPayment(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())

	for _, key := range []string{"6", "0"} {
		_, err := cs.PressKey(ctx, key)
		require.NoError(t, err)
	}

	sale, err := cs.PressKey(ctx, "Enter")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "10.00", sale.ChangeDue.StringFixed(2))
	assert.Equal(t, enum.CheckoutStageConfirmation, cs.Snapshot().Stage)
}

func TestCheckoutInsufficientCash(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())

	_, err := cs.PressKey(ctx, "5")
	require.NoError(t, err)

	_, err = cs.ConfirmPayment(ctx)
	assert.ErrorIs(t, err, ErrInsufficientCash)
	assert.Equal(t, enum.CheckoutStagePayment, cs.Snapshot().Stage)
}

func TestCheckoutReopenPaymentRetakesTender(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())
	require.NoError(t, cs.SelectMethod(enum.PaymentMethodCard))
	_, err := cs.ConfirmPayment(ctx)
	require.NoError(t, err)
	require.Equal(t, enum.CheckoutStageConfirmation, cs.Snapshot().Stage)

	require.NoError(t, cs.ReopenPayment())

	state := cs.Snapshot()
	assert.Equal(t, enum.CheckoutStagePayment, state.Stage)
	assert.True(t, state.CaptureActive)
	assert.Equal(t, enum.PaymentMethodCash, state.Method)
	assert.Equal(t, "", state.InputAmount)
	assert.Empty(t, state.Payments)
	assert.Len(t, state.Items, 1)

	// Only a confirmed checkout can be reopened
	assert.ErrorIs(t, cs.ReopenPayment(), ErrWrongStage)

	// The retaken tender completes normally
	require.NoError(t, cs.SelectMethod(enum.PaymentMethodCard))
	sale, err := cs.ConfirmPayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50.00", sale.Total.StringFixed(2))
}

func TestCheckoutCancelKeepsCart(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())

	require.NoError(t, cs.CancelPayment())

	state := cs.Snapshot()
	assert.Equal(t, enum.CheckoutStageCart, state.Stage)
	assert.False(t, state.CaptureActive)
	assert.Len(t, state.Items, 1)

	// Keys are detached after cancel
	_, err := cs.PressKey(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "", cs.Snapshot().InputAmount)
}

func TestCheckoutStartNewOrderResetsCartAndStage(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())
	require.NoError(t, cs.SelectMethod(enum.PaymentMethodCard))
	_, err := cs.ConfirmPayment(ctx)
	require.NoError(t, err)

	require.NoError(t, cs.StartNewOrder(ctx))

	state := cs.Snapshot()
	assert.Equal(t, enum.CheckoutStageCart, state.Stage)
	assert.Empty(t, state.Items)
	assert.Empty(t, state.Payments)
	assert.True(t, state.ChangeDue.IsZero())

	// Session stays open for the next customer
	assert.True(t, state.SessionActive)
}

func TestCheckoutCaptureResetsOnEachPresentation(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.StartCheckout())
	require.NoError(t, cs.SelectMethod(enum.PaymentMethodTransfer))
	require.NoError(t, cs.CancelPayment())

	require.NoError(t, cs.StartCheckout())
	state := cs.Snapshot()
	assert.Equal(t, enum.PaymentMethodCash, state.Method)
	assert.Equal(t, "", state.InputAmount)
}

func TestCheckoutCloseSessionPurgesState(t *testing.T) {
	cs, ctx := openedSession(t)

	require.NoError(t, cs.AddToCart(ctx, testProduct("Tijeras", "50.00"), 1))
	require.NoError(t, cs.CloseSession(ctx, mustDecimal("550.00")))

	state := cs.Snapshot()
	assert.False(t, state.SessionActive)
	assert.Empty(t, state.Items)
	assert.Equal(t, enum.CheckoutStageCart, state.Stage)
}
