package checkout

import (
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Payment is one tender record. The flow records exactly one per sale, but
// the machine accepts a slice so split tendering stays a local change.
type Payment struct {
	Method enum.PaymentMethod `json:"method"`
	Amount decimal.Decimal    `json:"amount"`
}

// Machine drives the cart to confirmation pipeline:
//
//	Cart -> Payment -> Confirmation
//
// with reverse edges Payment -> Cart (cancel), Confirmation -> Cart (start
// new order) and Confirmation -> Payment (reopen when the completed payment
// could not be recorded). The stage is transient; it is not persisted
// across restarts.
type Machine struct {
	stage     enum.CheckoutStage
	payments  []Payment
	changeDue decimal.Decimal
}

// NewMachine creates a machine at the Cart stage.
func NewMachine() *Machine {
	return &Machine{stage: enum.CheckoutStageCart, changeDue: decimal.Zero}
}

// Stage returns the current checkout stage.
func (m *Machine) Stage() enum.CheckoutStage {
	return m.stage
}

// Payments returns the captured tender records.
func (m *Machine) Payments() []Payment {
	out := make([]Payment, len(m.payments))
	copy(out, m.payments)
	return out
}

// ChangeDue returns the change computed at the last completed payment.
func (m *Machine) ChangeDue() decimal.Decimal {
	return m.changeDue
}

// StartPayment moves to the Payment stage. It refuses when the cart is
// empty, leaving the stage and any captured data untouched.
func (m *Machine) StartPayment(hasItems bool) error {
	if !hasItems {
		return ErrEmptyCart
	}
	m.stage = enum.CheckoutStagePayment
	return nil
}

// CompletePayment stores the tender records, computes change due as the sum
// of payments minus the sale total, and moves to Confirmation. Sufficiency
// was already validated by the payment capture before this is invoked.
func (m *Machine) CompletePayment(payments []Payment, saleTotal decimal.Decimal) {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	m.payments = payments
	m.changeDue = paid.Sub(saleTotal)
	m.stage = enum.CheckoutStageConfirmation
}

// ReopenPayment discards the captured tender and returns from Confirmation
// to the Payment stage so the tender can be retaken.
func (m *Machine) ReopenPayment() {
	m.payments = nil
	m.changeDue = decimal.Zero
	m.stage = enum.CheckoutStagePayment
}

// CancelPayment returns to the Cart stage without clearing the cart or any
// captured data.
func (m *Machine) CancelPayment() {
	m.stage = enum.CheckoutStageCart
}

// StartNewOrder clears payments, resets change due and returns to the Cart
// stage. Clearing the cart itself is the caller's job; the two are invoked
// together in practice but stay independent operations.
func (m *Machine) StartNewOrder() {
	m.payments = nil
	m.changeDue = decimal.Zero
	m.stage = enum.CheckoutStageCart
}
