package request

import "github.com/shopspring/decimal"

// OrderItemRequest is one requested order line
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest is the payload for order creation
type CreateOrderRequest struct {
	CustomerID    *string            `json:"customer_id"`
	PaymentMethod int                `json:"payment_method"`
	Pay           decimal.Decimal    `json:"pay"`
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
}

// PayDueRequest is the payload for settling part of an order's balance
type PayDueRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PurchaseItemRequest is one requested purchase line
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest is the payload for purchase creation
type CreatePurchaseRequest struct {
	SupplierID *string               `json:"supplier_id"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,dive"`
}
