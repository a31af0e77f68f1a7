package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/papeleria-gasparin/pos-api/pkg/utils"
)

// AttributeService handles product attribute operations
type AttributeService struct {
	attributeRepo repository.AttributeRepository
}

// NewAttributeService creates a new attribute service
func NewAttributeService(attributeRepo repository.AttributeRepository) *AttributeService {
	return &AttributeService{attributeRepo: attributeRepo}
}

// CreateAttribute creates a new attribute
func (s *AttributeService) CreateAttribute(ctx context.Context, userID uuid.UUID, name, options string) (*entity.Attribute, error) {
	slug := utils.Slugify(name)

	existing, err := s.attributeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Attribute already exists")
	}

	attribute := &entity.Attribute{
		UserID:  userID,
		Name:    name,
		Slug:    slug,
		Options: options,
	}
	if err := s.attributeRepo.Create(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

// GetAttribute retrieves an attribute by ID
func (s *AttributeService) GetAttribute(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	attribute, err := s.attributeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, apperror.NewNotFoundError("Attribute")
	}
	return attribute, nil
}

// ListAttributes lists attributes with search and pagination
func (s *AttributeService) ListAttributes(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Attribute, *pagination.Pagination, error) {
	attributes, total, err := s.attributeRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return attributes, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// UpdateAttribute updates an attribute
func (s *AttributeService) UpdateAttribute(ctx context.Context, id uuid.UUID, name, options *string) (*entity.Attribute, error) {
	attribute, err := s.attributeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, apperror.NewNotFoundError("Attribute")
	}

	if name != nil {
		attribute.Name = *name
		attribute.Slug = utils.Slugify(*name)
	}
	if options != nil {
		attribute.Options = *options
	}

	if err := s.attributeRepo.Update(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

// DeleteAttribute deletes an attribute
func (s *AttributeService) DeleteAttribute(ctx context.Context, id uuid.UUID) error {
	attribute, err := s.attributeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if attribute == nil {
		return apperror.NewNotFoundError("Attribute")
	}
	return s.attributeRepo.Delete(ctx, id)
}

// UnitService handles unit of measure operations
type UnitService struct {
	unitRepo repository.UnitRepository
}

// NewUnitService creates a new unit service
func NewUnitService(unitRepo repository.UnitRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo}
}

// CreateUnit creates a new unit
func (s *UnitService) CreateUnit(ctx context.Context, userID uuid.UUID, name, shortCode string) (*entity.Unit, error) {
	slug := utils.Slugify(name)

	existing, err := s.unitRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Unit already exists")
	}

	unit := &entity.Unit{
		UserID:    userID,
		Name:      name,
		Slug:      slug,
		ShortCode: shortCode,
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// GetUnit retrieves a unit by ID
func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperror.NewNotFoundError("Unit")
	}
	return unit, nil
}

// ListUnits lists units with search and pagination
func (s *UnitService) ListUnits(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Unit, *pagination.Pagination, error) {
	units, total, err := s.unitRepo.FindAll(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}
	return units, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// UpdateUnit updates a unit
func (s *UnitService) UpdateUnit(ctx context.Context, id uuid.UUID, name, shortCode *string) (*entity.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperror.NewNotFoundError("Unit")
	}

	if name != nil {
		unit.Name = *name
		unit.Slug = utils.Slugify(*name)
	}
	if shortCode != nil {
		unit.ShortCode = *shortCode
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// DeleteUnit deletes a unit
func (s *UnitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if unit == nil {
		return apperror.NewNotFoundError("Unit")
	}
	return s.unitRepo.Delete(ctx, id)
}
