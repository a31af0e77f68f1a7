package request

import "github.com/shopspring/decimal"

// OpenSessionRequest carries the counted opening cash amount
type OpenSessionRequest struct {
	OpeningAmount decimal.Decimal `json:"opening_amount"`
}

// CloseSessionRequest carries the counted closing cash amount
type CloseSessionRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount"`
}

// AddToCartRequest adds a product to the active cart
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest changes a cart line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SelectMethodRequest switches the tender method during payment
type SelectMethodRequest struct {
	Method int `json:"method"`
}

// PressKeyRequest feeds one keypad or keyboard event to the payment
// capture. Accepted keys: digits, ".", "Backspace", "Delete", "Escape",
// "Enter".
type PressKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// SwitchUserRequest hands the terminal over to another operator. The
// previous operator's persisted POS state is purged.
type SwitchUserRequest struct {
	PreviousStateKey string `json:"previous_state_key" binding:"required"`
}
