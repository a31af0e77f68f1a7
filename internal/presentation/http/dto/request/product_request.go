package request

import "github.com/shopspring/decimal"

// CreateProductRequest is the payload for product creation
type CreateProductRequest struct {
	AttributeID   *string         `json:"attribute_id"`
	UnitID        *string         `json:"unit_id"`
	Name          string          `json:"name" binding:"required"`
	Code          string          `json:"code"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	QuantityAlert int             `json:"quantity_alert" binding:"min=0"`
	BuyingPrice   decimal.Decimal `json:"buying_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Notes         *string         `json:"notes"`
}

// UpdateProductRequest is the payload for product updates
type UpdateProductRequest struct {
	AttributeID   *string          `json:"attribute_id"`
	UnitID        *string          `json:"unit_id"`
	Name          *string          `json:"name"`
	Code          *string          `json:"code"`
	Quantity      *int             `json:"quantity"`
	QuantityAlert *int             `json:"quantity_alert"`
	BuyingPrice   *decimal.Decimal `json:"buying_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Notes         *string          `json:"notes"`
}

// CreateAttributeRequest is the payload for attribute creation
type CreateAttributeRequest struct {
	Name    string `json:"name" binding:"required"`
	Options string `json:"options"`
}

// UpdateAttributeRequest is the payload for attribute updates
type UpdateAttributeRequest struct {
	Name    *string `json:"name"`
	Options *string `json:"options"`
}

// CreateUnitRequest is the payload for unit creation
type CreateUnitRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortCode string `json:"short_code"`
}

// UpdateUnitRequest is the payload for unit updates
type UpdateUnitRequest struct {
	Name      *string `json:"name"`
	ShortCode *string `json:"short_code"`
}
