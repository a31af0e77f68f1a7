package service

import (
	"context"
	"time"

	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates the numbers shown on the landing screen
type DashboardService struct {
	saleRepo    repository.SaleRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	saleRepo repository.SaleRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) *DashboardService {
	return &DashboardService{
		saleRepo:    saleRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// DashboardStats holds today's headline numbers plus low stock alerts.
type DashboardStats struct {
	TodaySalesTotal decimal.Decimal   `json:"today_sales_total"`
	TodaySalesCount int64             `json:"today_sales_count"`
	TodayOrderCount int64             `json:"today_order_count"`
	LowStockCount   int64             `json:"low_stock_count"`
	LowStockItems   []*entity.Product `json:"low_stock_items"`
}

// GetStats computes today's totals in the server's local timezone.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	salesTotal, err := s.saleRepo.SumTotalByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	salesCount, err := s.saleRepo.CountByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orderRepo.CountByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	lowStock, lowStockTotal, err := s.productRepo.FindLowStock(ctx, pagination.PaginationParams{Page: 1, PerPage: 10})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodaySalesTotal: salesTotal,
		TodaySalesCount: salesCount,
		TodayOrderCount: orderCount,
		LowStockCount:   lowStockTotal,
		LowStockItems:   lowStock,
	}, nil
}
