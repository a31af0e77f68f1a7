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

// PurchaseService handles supplier purchase operations
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// PurchaseItemInput is one requested line of a new purchase
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  decimal.Decimal
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	UserID     uuid.UUID
	SupplierID *uuid.UUID
	Items      []PurchaseItemInput
}

// CreatePurchase records a pending restock. Stock is only incremented when
// the purchase is marked received.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase must have at least one item")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.FindByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	totalAmount := decimal.Zero
	details := make([]entity.PurchaseDetail, 0, len(input.Items))

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}

		lineTotal := item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		details = append(details, entity.PurchaseDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Total:     lineTotal,
		})
		totalAmount = totalAmount.Add(lineTotal)
	}

	purchase := &entity.Purchase{
		UserID:      input.UserID,
		SupplierID:  input.SupplierID,
		Date:        time.Now(),
		PurchaseNo:  utils.GenerateInvoiceNo("PUR"),
		Status:      enum.PurchaseStatusPending,
		TotalAmount: totalAmount,
		Details:     details,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return s.purchaseRepo.FindByID(ctx, purchase.ID)
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases with search and pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Purchase, *pagination.Pagination, error) {
	purchases, total, err := s.purchaseRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return purchases, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// ReceivePurchase marks a pending purchase received and increments stock
// for every line.
func (s *PurchaseService) ReceivePurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	if purchase.Status != enum.PurchaseStatusPending {
		return nil, apperror.NewBadRequestError("Only pending purchases can be received")
	}

	changes := make([]repository.StockChange, 0, len(purchase.Details))
	for _, detail := range purchase.Details {
		changes = append(changes, repository.StockChange{ProductID: detail.ProductID, Quantity: detail.Quantity})
	}
	if err := s.productRepo.AtomicIncrementBatch(ctx, changes); err != nil {
		return nil, err
	}

	purchase.Status = enum.PurchaseStatusReceived
	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// CancelPurchase cancels a pending purchase.
func (s *PurchaseService) CancelPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	if purchase.Status != enum.PurchaseStatusPending {
		return nil, apperror.NewBadRequestError("Only pending purchases can be cancelled")
	}

	purchase.Status = enum.PurchaseStatusCancel
	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}
