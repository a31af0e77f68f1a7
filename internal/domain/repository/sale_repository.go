package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SaleRepository defines the interface for finalized sale data access
type SaleRepository interface {
	// Create persists the sale together with its items and payments.
	Create(ctx context.Context, sale *entity.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	FindAll(ctx context.Context, params pagination.PaginationParams, userID *uuid.UUID) ([]*entity.Sale, int64, error)

	SumTotalByDateRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}
