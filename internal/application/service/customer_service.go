package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
)

// optionalString maps "" to nil for nullable text columns.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the customer create/update input
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	TaxID   string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if input.Email != "" {
		existing, err := s.customerRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer email already exists")
		}
	}

	customer := &entity.Customer{
		UserID:  userID,
		Name:    input.Name,
		Email:   optionalString(input.Email),
		Phone:   optionalString(input.Phone),
		Address: optionalString(input.Address),
		TaxID:   optionalString(input.TaxID),
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Customer, *pagination.Pagination, error) {
	customers, total, err := s.customerRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return customers, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Email != "" && (customer.Email == nil || *customer.Email != input.Email) {
		existing, err := s.customerRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("Customer email already exists")
		}
	}

	customer.Name = input.Name
	customer.Email = optionalString(input.Email)
	customer.Phone = optionalString(input.Phone)
	customer.Address = optionalString(input.Address)
	customer.TaxID = optionalString(input.TaxID)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the supplier create/update input
type SupplierInput struct {
	Name     string
	ShopName string
	Email    string
	Phone    string
	Address  string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, userID uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	if input.Email != "" {
		existing, err := s.supplierRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Supplier email already exists")
		}
	}

	supplier := &entity.Supplier{
		UserID:   userID,
		Name:     input.Name,
		ShopName: optionalString(input.ShopName),
		Email:    optionalString(input.Email),
		Phone:    optionalString(input.Phone),
		Address:  optionalString(input.Address),
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with search and pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Supplier, *pagination.Pagination, error) {
	suppliers, total, err := s.supplierRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return suppliers, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Email != "" && (supplier.Email == nil || *supplier.Email != input.Email) {
		existing, err := s.supplierRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != supplier.ID {
			return nil, apperror.NewConflictError("Supplier email already exists")
		}
	}

	supplier.Name = input.Name
	supplier.ShopName = optionalString(input.ShopName)
	supplier.Email = optionalString(input.Email)
	supplier.Phone = optionalString(input.Phone)
	supplier.Address = optionalString(input.Address)

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}
