package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/papeleria-gasparin/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo   repository.ProductRepository
	attributeRepo repository.AttributeRepository
	unitRepo      repository.UnitRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	attributeRepo repository.AttributeRepository,
	unitRepo repository.UnitRepository,
) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		attributeRepo: attributeRepo,
		unitRepo:      unitRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID        uuid.UUID
	AttributeID   *uuid.UUID
	UnitID        *uuid.UUID
	Name          string
	Code          string
	Quantity      int
	QuantityAlert int
	BuyingPrice   decimal.Decimal
	SellingPrice  decimal.Decimal
	Notes         *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}

	existing, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product code already exists")
	}

	if input.AttributeID != nil {
		attribute, err := s.attributeRepo.FindByID(ctx, *input.AttributeID)
		if err != nil {
			return nil, err
		}
		if attribute == nil {
			return nil, apperror.NewNotFoundError("Attribute")
		}
	}
	if input.UnitID != nil {
		unit, err := s.unitRepo.FindByID(ctx, *input.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, apperror.NewNotFoundError("Unit")
		}
	}

	product := &entity.Product{
		UserID:        input.UserID,
		AttributeID:   input.AttributeID,
		UnitID:        input.UnitID,
		Name:          input.Name,
		Slug:          utils.Slugify(input.Name),
		Code:          code,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		BuyingPrice:   input.BuyingPrice,
		SellingPrice:  input.SellingPrice,
		Notes:         input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with search and pagination
func (s *ProductService) ListProducts(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Product, *pagination.Pagination, error) {
	products, total, err := s.productRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return products, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// ListLowStockProducts lists products at or below their alert threshold
func (s *ProductService) ListLowStockProducts(ctx context.Context, params pagination.PaginationParams) ([]*entity.Product, *pagination.Pagination, error) {
	products, total, err := s.productRepo.FindLowStock(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	return products, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ProductID     uuid.UUID
	AttributeID   *uuid.UUID
	UnitID        *uuid.UUID
	Name          *string
	Code          *string
	Quantity      *int
	QuantityAlert *int
	BuyingPrice   *decimal.Decimal
	SellingPrice  *decimal.Decimal
	Notes         *string
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Code != nil && *input.Code != product.Code {
		existing, err := s.productRepo.FindByCode(ctx, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Product code already exists")
		}
		product.Code = *input.Code
	}

	if input.AttributeID != nil {
		product.AttributeID = input.AttributeID
	}
	if input.UnitID != nil {
		product.UnitID = input.UnitID
	}
	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.BuyingPrice != nil {
		product.BuyingPrice = *input.BuyingPrice
	}
	if input.SellingPrice != nil {
		product.SellingPrice = *input.SellingPrice
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(ctx, product.ID)
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
