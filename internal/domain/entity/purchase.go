package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase is a restock bought from a supplier.
type Purchase struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID  *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Date        time.Time           `gorm:"type:date;not null" json:"date"`
	PurchaseNo  string              `gorm:"size:100;unique;not null" json:"purchase_no"`
	Status      enum.PurchaseStatus `gorm:"default:0" json:"status"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User     User             `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier        `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Details  []PurchaseDetail `gorm:"foreignKey:PurchaseID" json:"details,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseDetail is a line item in a purchase.
type PurchaseDetail struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase detail
func (pd *PurchaseDetail) BeforeCreate(tx *gorm.DB) error {
	if pd.ID == uuid.Nil {
		pd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseDetail model
func (PurchaseDetail) TableName() string {
	return "purchase_details"
}
