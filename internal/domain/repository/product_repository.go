package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
)

// StockChange pairs a product with a quantity delta applied atomically.
type StockChange struct {
	ProductID uuid.UUID
	Quantity  int
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByCode(ctx context.Context, code string) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Product, int64, error)
	FindLowStock(ctx context.Context, params pagination.PaginationParams) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AtomicDecrementBatch subtracts stock for every change in one
	// transaction, failing the whole batch if any product would go negative.
	AtomicDecrementBatch(ctx context.Context, changes []StockChange) error
	// AtomicIncrementBatch adds stock for every change in one transaction.
	AtomicIncrementBatch(ctx context.Context, changes []StockChange) error
}

// AttributeRepository defines the interface for attribute data access
type AttributeRepository interface {
	Create(ctx context.Context, attribute *entity.Attribute) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Attribute, error)
	FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Attribute, int64, error)
	Update(ctx context.Context, attribute *entity.Attribute) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the interface for unit data access
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Unit, error)
	FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Unit, int64, error)
	Update(ctx context.Context, unit *entity.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
}
