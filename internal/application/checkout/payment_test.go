package checkout

import (
	"testing"

	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPaymentCapturePresentResetsState(t *testing.T) {
	var pc PaymentCapture

	pc.Present(mustDecimal("50.00"))
	pc.SelectMethod(enum.PaymentMethodCard)
	pc.Dismiss()

	pc.Present(mustDecimal("80.00"))
	assert.Equal(t, enum.PaymentMethodCash, pc.Method())
	assert.Equal(t, "", pc.Buffer())
	assert.True(t, pc.IsActive())
}

func TestPaymentCaptureDigitEntry(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	pc.AppendDigit('0')
	assert.Equal(t, "0", pc.Buffer())

	// A lone leading zero is replaced, not extended
	pc.AppendDigit('5')
	assert.Equal(t, "5", pc.Buffer())

	pc.AppendDigit('0')
	assert.Equal(t, "50", pc.Buffer())
}

func TestPaymentCaptureBufferLengthCap(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	for i := 0; i < 15; i++ {
		pc.AppendDigit('9')
	}
	assert.Len(t, pc.Buffer(), 10)
}

func TestPaymentCaptureSingleDecimalPoint(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	pc.AppendDigit('5')
	pc.AppendDecimalPoint()
	pc.AppendDecimalPoint()
	pc.AppendDigit('2')
	pc.AppendDecimalPoint()
	assert.Equal(t, "5.2", pc.Buffer())
}

func TestPaymentCaptureDecimalPointOnEmptyBuffer(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	pc.AppendDecimalPoint()
	pc.AppendDigit('5')
	assert.Equal(t, "0.5", pc.Buffer())
	assert.Equal(t, "0.50", pc.ReceivedAmount().StringFixed(2))
}

func TestPaymentCaptureBackspaceAndClear(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	pc.AppendDigit('1')
	pc.AppendDigit('2')
	pc.AppendDigit('3')
	pc.Backspace()
	assert.Equal(t, "12", pc.Buffer())

	pc.ClearAll()
	assert.Equal(t, "", pc.Buffer())

	// Backspace on an empty buffer is a no-op
	pc.Backspace()
	assert.Equal(t, "", pc.Buffer())
}

func TestPaymentCaptureReceivedAmountDefaultsToZero(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	assert.True(t, pc.ReceivedAmount().IsZero())

	pc.AppendDecimalPoint()
	pc.Backspace()
	pc.AppendDigit('7')
	assert.Equal(t, "7.00", pc.ReceivedAmount().StringFixed(2))
}

func TestPaymentCaptureCashSufficiency(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("76.00"))

	pc.AppendDigit('7')
	pc.AppendDigit('5')
	assert.False(t, pc.IsValid())

	_, err := pc.Validate()
	require.ErrorIs(t, err, ErrInsufficientCash)

	pc.ClearAll()
	pc.AppendDigit('7')
	pc.AppendDigit('6')
	assert.True(t, pc.IsValid())
	assert.True(t, pc.ChangeDue().IsZero())
}

func TestPaymentCaptureChangePreviewClampedAtZero(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("76.00"))

	pc.AppendDigit('5')
	assert.True(t, pc.ChangeDue().IsZero())

	pc.ClearAll()
	for _, d := range []byte{'1', '0', '0'} {
		pc.AppendDigit(d)
	}
	assert.Equal(t, "24.00", pc.ChangeDue().StringFixed(2))
}

func TestPaymentCaptureCardAutofillsTotal(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("50.00"))

	pc.SelectMethod(enum.PaymentMethodCard)
	assert.Equal(t, "50.00", pc.Buffer())

	payment, err := pc.Validate()
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentMethodCard, payment.Method)
	assert.Equal(t, "50.00", payment.Amount.StringFixed(2))

	// Switching back to Cash clears the buffer for explicit entry
	pc.SelectMethod(enum.PaymentMethodCash)
	assert.Equal(t, "", pc.Buffer())
}

func TestPaymentCaptureCashRecordsTypedAmount(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("76.00"))

	for _, d := range []byte{'1', '0', '0'} {
		pc.AppendDigit(d)
	}

	payment, err := pc.Validate()
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentMethodCash, payment.Method)
	assert.Equal(t, "100.00", payment.Amount.StringFixed(2))
}

func TestPaymentCaptureKeyboardMirrorsKeypad(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	for _, key := range []string{"4", "2", ".", "5"} {
		result := pc.HandleKey(key)
		assert.True(t, result.Handled)
	}
	assert.Equal(t, "42.5", pc.Buffer())

	result := pc.HandleKey("Backspace")
	assert.True(t, result.Handled)
	assert.Equal(t, "42.", pc.Buffer())

	result = pc.HandleKey("Escape")
	assert.True(t, result.Handled)
	assert.Equal(t, "", pc.Buffer())
}

func TestPaymentCaptureEnterSubmitsOnlyWhenValid(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))

	pc.HandleKey("5")
	result := pc.HandleKey("Enter")
	assert.True(t, result.Handled)
	assert.False(t, result.Submit)

	pc.HandleKey("0")
	result = pc.HandleKey("Enter")
	assert.True(t, result.Handled)
	assert.True(t, result.Submit)
}

func TestPaymentCaptureIgnoresKeysWhenDismissed(t *testing.T) {
	var pc PaymentCapture
	pc.Present(mustDecimal("10.00"))
	pc.Dismiss()

	result := pc.HandleKey("5")
	assert.False(t, result.Handled)
	assert.Equal(t, "", pc.Buffer())
}
