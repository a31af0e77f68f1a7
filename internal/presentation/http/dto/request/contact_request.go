package request

// CustomerRequest is the payload for customer create/update
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
}

// SupplierRequest is the payload for supplier create/update
type SupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	ShopName string `json:"shop_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
