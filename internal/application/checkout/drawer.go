package checkout

import "github.com/shopspring/decimal"

// DrawerPrompt is one modal request/response pair for a cash count. The
// opening and closing counts are two independent prompts; reconciliation
// between them belongs to reporting, not here. Amount validation is a
// precondition of Submit.
type DrawerPrompt struct {
	open   bool
	amount *decimal.Decimal
}

// Open presents the prompt.
func (p *DrawerPrompt) Open() {
	p.open = true
}

// Close dismisses the prompt without recording an amount.
func (p *DrawerPrompt) Close() {
	p.open = false
}

// Submit records the counted amount and auto-closes the prompt.
func (p *DrawerPrompt) Submit(amount decimal.Decimal) {
	p.amount = &amount
	p.open = false
}

// IsOpen reports whether the prompt is presented.
func (p *DrawerPrompt) IsOpen() bool {
	return p.open
}

// Amount returns the recorded count, or nil if none was submitted.
func (p *DrawerPrompt) Amount() *decimal.Decimal {
	return p.amount
}

// Drawer carries the opening and closing cash counts of a sale session.
type Drawer struct {
	Opening DrawerPrompt
	Closing DrawerPrompt
}

// Reset discards both counts, for the start of a fresh session.
func (d *Drawer) Reset() {
	d.Opening = DrawerPrompt{}
	d.Closing = DrawerPrompt{}
}
