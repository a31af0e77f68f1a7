package checkout

import (
	"testing"

	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineStartsAtCartStage(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, enum.CheckoutStageCart, m.Stage())
	assert.True(t, m.ChangeDue().IsZero())
	assert.Empty(t, m.Payments())
}

func TestMachineRefusesPaymentWithEmptyCart(t *testing.T) {
	m := NewMachine()

	err := m.StartPayment(false)
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, enum.CheckoutStageCart, m.Stage())
	assert.Empty(t, m.Payments())
	assert.True(t, m.ChangeDue().IsZero())
}

func TestMachineCompletePaymentComputesChange(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.StartPayment(true))
	assert.Equal(t, enum.CheckoutStagePayment, m.Stage())

	m.CompletePayment([]Payment{
		{Method: enum.PaymentMethodCash, Amount: mustDecimal("100.00")},
	}, mustDecimal("76.00"))

	assert.Equal(t, enum.CheckoutStageConfirmation, m.Stage())
	assert.Equal(t, "24.00", m.ChangeDue().StringFixed(2))
	require.Len(t, m.Payments(), 1)
	assert.Equal(t, "100.00", m.Payments()[0].Amount.StringFixed(2))
}

func TestMachineSumsMultiplePayments(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.StartPayment(true))

	m.CompletePayment([]Payment{
		{Method: enum.PaymentMethodCash, Amount: mustDecimal("40.00")},
		{Method: enum.PaymentMethodCard, Amount: mustDecimal("40.00")},
	}, mustDecimal("76.00"))

	assert.Equal(t, "4.00", m.ChangeDue().StringFixed(2))
}

func TestMachineCancelReturnsToCartKeepingData(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.StartPayment(true))

	m.CancelPayment()
	assert.Equal(t, enum.CheckoutStageCart, m.Stage())

	// Cancel after completion keeps captured data
	require.NoError(t, m.StartPayment(true))
	m.CompletePayment([]Payment{
		{Method: enum.PaymentMethodCash, Amount: mustDecimal("100.00")},
	}, mustDecimal("76.00"))
	m.CancelPayment()
	assert.Len(t, m.Payments(), 1)
	assert.Equal(t, "24.00", m.ChangeDue().StringFixed(2))
}

func TestMachineStartNewOrderResetsEverything(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.StartPayment(true))
	m.CompletePayment([]Payment{
		{Method: enum.PaymentMethodCash, Amount: mustDecimal("100.00")},
	}, mustDecimal("76.00"))

	m.StartNewOrder()
	assert.Equal(t, enum.CheckoutStageCart, m.Stage())
	assert.Empty(t, m.Payments())
	assert.True(t, m.ChangeDue().IsZero())
}
