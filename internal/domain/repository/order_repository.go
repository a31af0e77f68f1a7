package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Order, int64, error)
	FindPending(ctx context.Context, params pagination.PaginationParams) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error

	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}

// PurchaseRepository defines the interface for purchase data access
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Purchase, int64, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}
