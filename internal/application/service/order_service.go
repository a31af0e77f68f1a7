package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/papeleria-gasparin/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// OrderService handles customer order operations
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo}
}

// OrderItemInput is one requested line of a new order
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	PaymentMethod enum.PaymentMethod
	Pay           decimal.Decimal
	Items         []OrderItemInput
}

// CreateOrder creates an order, atomically decrementing stock for every
// line. Prices are read from the catalog at creation time.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	subTotal := decimal.Zero
	totalProducts := 0
	details := make([]entity.OrderDetail, 0, len(input.Items))
	changes := make([]repository.StockChange, 0, len(input.Items))

	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}

		lineTotal := product.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		details = append(details, entity.OrderDetail{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.SellingPrice,
			Total:     lineTotal,
		})
		changes = append(changes, repository.StockChange{ProductID: product.ID, Quantity: item.Quantity})

		subTotal = subTotal.Add(lineTotal)
		totalProducts += item.Quantity
	}

	if err := s.productRepo.AtomicDecrementBatch(ctx, changes); err != nil {
		return nil, err
	}

	total := subTotal
	pay := input.Pay
	if pay.GreaterThan(total) {
		pay = total
	}

	order := &entity.Order{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		OrderDate:     time.Now(),
		OrderStatus:   enum.OrderStatusPending,
		TotalProducts: totalProducts,
		InvoiceNo:     utils.GenerateInvoiceNo("INV"),
		SubTotal:      subTotal,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Pay:           pay,
		Due:           total.Sub(pay),
		Details:       details,
	}

	if order.Due.IsZero() {
		order.OrderStatus = enum.OrderStatusComplete
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Creation failed after stock was taken; put it back.
		_ = s.productRepo.AtomicIncrementBatch(ctx, changes)
		return nil, err
	}

	return s.orderRepo.FindByID(ctx, order.ID)
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with search and pagination
func (s *OrderService) ListOrders(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Order, *pagination.Pagination, error) {
	orders, total, err := s.orderRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return orders, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// ListPendingOrders lists orders that still carry a due balance
func (s *OrderService) ListPendingOrders(ctx context.Context, params pagination.PaginationParams) ([]*entity.Order, *pagination.Pagination, error) {
	orders, total, err := s.orderRepo.FindPending(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	return orders, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// PayDue applies a payment to an order's outstanding balance, completing
// the order when the balance reaches zero.
func (s *OrderService) PayDue(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Order, error) {
	if !amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.OrderStatus == enum.OrderStatusCancel {
		return nil, apperror.NewBadRequestError("Order is cancelled")
	}
	if amount.GreaterThan(order.Due) {
		return nil, apperror.NewBadRequestError("Payment exceeds due amount")
	}

	order.Pay = order.Pay.Add(amount)
	order.Due = order.Due.Sub(amount)
	if order.Due.IsZero() {
		order.OrderStatus = enum.OrderStatusComplete
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder cancels a pending order and restores its stock.
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.OrderStatus == enum.OrderStatusCancel {
		return nil, apperror.NewBadRequestError("Order is already cancelled")
	}
	if order.OrderStatus == enum.OrderStatusComplete {
		return nil, apperror.NewBadRequestError("Completed orders cannot be cancelled")
	}

	changes := make([]repository.StockChange, 0, len(order.Details))
	for _, detail := range order.Details {
		changes = append(changes, repository.StockChange{ProductID: detail.ProductID, Quantity: detail.Quantity})
	}
	if err := s.productRepo.AtomicIncrementBatch(ctx, changes); err != nil {
		return nil, err
	}

	order.OrderStatus = enum.OrderStatusCancel
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
