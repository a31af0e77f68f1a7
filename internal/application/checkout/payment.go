package checkout

import (
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// maxInputLen caps the keypad buffer.
const maxInputLen = 10

// PaymentCapture gathers one tender record for the sale being paid. It
// models the numeric keypad: an input buffer edited by discrete key events,
// fed identically by the on-screen keypad and the physical keyboard.
//
// The keyboard listener is only live while the capture surface is
// presented. Present attaches it and every exit path (successful payment,
// cancel, dismissal) must go through Dismiss so key handling never leaks to
// unrelated screens.
type PaymentCapture struct {
	total  decimal.Decimal
	buffer string
	method enum.PaymentMethod
	active bool
}

// Present activates the capture for a sale total. Each presentation resets
// the method to Cash and clears the buffer.
func (pc *PaymentCapture) Present(total decimal.Decimal) {
	pc.total = total
	pc.method = enum.PaymentMethodCash
	pc.buffer = ""
	pc.active = true
}

// Dismiss deactivates the capture and detaches key handling.
func (pc *PaymentCapture) Dismiss() {
	pc.active = false
}

// IsActive reports whether the capture surface is presented.
func (pc *PaymentCapture) IsActive() bool {
	return pc.active
}

// Method returns the selected tender method.
func (pc *PaymentCapture) Method() enum.PaymentMethod {
	return pc.method
}

// Buffer returns the raw input buffer.
func (pc *PaymentCapture) Buffer() string {
	return pc.buffer
}

// SelectMethod switches the tender method. Card and Transfer are always
// paid in full, so they pre-fill the buffer with the exact total; switching
// back to Cash clears it, requiring explicit entry.
func (pc *PaymentCapture) SelectMethod(method enum.PaymentMethod) {
	pc.method = method
	if method == enum.PaymentMethodCash {
		pc.buffer = ""
	} else {
		pc.buffer = pc.total.StringFixed(2)
	}
}

// AppendDigit appends one digit to the buffer. A lone leading zero is
// replaced rather than extended, and the buffer never grows past ten
// characters.
func (pc *PaymentCapture) AppendDigit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if pc.buffer == "0" {
		pc.buffer = string(d)
		return
	}
	if len(pc.buffer) >= maxInputLen {
		return
	}
	pc.buffer += string(d)
}

// AppendDecimalPoint appends a single decimal point; a second one is
// ignored.
func (pc *PaymentCapture) AppendDecimalPoint() {
	for i := 0; i < len(pc.buffer); i++ {
		if pc.buffer[i] == '.' {
			return
		}
	}
	if len(pc.buffer) >= maxInputLen {
		return
	}
	if pc.buffer == "" {
		pc.buffer = "0."
		return
	}
	pc.buffer += "."
}

// Backspace removes the last character of the buffer.
func (pc *PaymentCapture) Backspace() {
	if pc.buffer != "" {
		pc.buffer = pc.buffer[:len(pc.buffer)-1]
	}
}

// ClearAll empties the buffer.
func (pc *PaymentCapture) ClearAll() {
	pc.buffer = ""
}

// ReceivedAmount parses the buffer, treating empty or unparseable input
// as zero.
func (pc *PaymentCapture) ReceivedAmount() decimal.Decimal {
	if pc.buffer == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(pc.buffer)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ChangeDue is the local preview shown while typing, clamped at zero. The
// authoritative change is computed by the state machine at completion.
func (pc *PaymentCapture) ChangeDue() decimal.Decimal {
	change := pc.ReceivedAmount().Sub(pc.total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// IsValid reports whether the entered amount settles the sale: cash must
// cover the total, any other method just needs a positive amount.
func (pc *PaymentCapture) IsValid() bool {
	received := pc.ReceivedAmount()
	if pc.method == enum.PaymentMethodCash {
		return received.GreaterThanOrEqual(pc.total)
	}
	return received.IsPositive()
}

// Validate builds the tender record. Cash records the typed amount; Card
// and Transfer always record the exact total.
func (pc *PaymentCapture) Validate() (Payment, error) {
	if !pc.IsValid() {
		if pc.method == enum.PaymentMethodCash {
			return Payment{}, ErrInsufficientCash
		}
		return Payment{}, ErrInvalidAmount
	}

	amount := pc.total
	if pc.method == enum.PaymentMethodCash {
		amount = pc.ReceivedAmount()
	}
	return Payment{Method: pc.method, Amount: amount}, nil
}

// KeyResult reports what a key event did.
type KeyResult struct {
	Handled bool
	Submit  bool // Enter on a valid amount; caller completes the payment
}

// HandleKey maps one physical keyboard event onto the buffer, mirroring the
// on-screen keypad exactly. Events are ignored while the capture is not
// presented.
func (pc *PaymentCapture) HandleKey(key string) KeyResult {
	if !pc.active {
		return KeyResult{}
	}

	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		pc.AppendDigit(key[0])
		return KeyResult{Handled: true}
	case ".":
		pc.AppendDecimalPoint()
		return KeyResult{Handled: true}
	case "Backspace", "Delete":
		pc.Backspace()
		return KeyResult{Handled: true}
	case "Escape":
		pc.ClearAll()
		return KeyResult{Handled: true}
	case "Enter":
		if pc.IsValid() {
			return KeyResult{Handled: true, Submit: true}
		}
		return KeyResult{Handled: true}
	}
	return KeyResult{}
}
