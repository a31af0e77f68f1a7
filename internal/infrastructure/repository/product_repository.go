package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Attribute").Preload("Unit").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// FindByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	var products []*entity.Product
	err := r.db.WithContext(ctx).
		Preload("Attribute").Preload("Unit").
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Attribute").Preload("Unit").
		Order("created_at DESC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) FindLowStock(ctx context.Context, params pagination.PaginationParams) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("quantity <= quantity_alert")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Attribute").Preload("Unit").
		Order("quantity ASC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

// AtomicDecrementBatch atomically decrements stock for multiple products in a
// single transaction. If any product has insufficient stock, the entire
// transaction is rolled back.
func (r *productRepository) AtomicDecrementBatch(ctx context.Context, changes []domainRepo.StockChange) error {
	if len(changes) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND quantity >= ?", change.ProductID, change.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", change.Quantity))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return apperror.ErrInsufficientStock
			}
		}
		return nil
	})
}

// AtomicIncrementBatch atomically increments stock for multiple products
// (used for cancellations and received purchases).
func (r *productRepository) AtomicIncrementBatch(ctx context.Context, changes []domainRepo.StockChange) error {
	if len(changes) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", change.ProductID).
				Update("quantity", gorm.Expr("quantity + ?", change.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type attributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository creates a new attribute repository
func NewAttributeRepository(db *gorm.DB) domainRepo.AttributeRepository {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *entity.Attribute) error {
	return r.db.WithContext(ctx).Create(attribute).Error
}

func (r *attributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	var attribute entity.Attribute
	err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attribute, err
}

func (r *attributeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Attribute, error) {
	var attribute entity.Attribute
	err := r.db.WithContext(ctx).First(&attribute, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attribute, err
}

func (r *attributeRepository) FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Attribute, int64, error) {
	var attributes []*entity.Attribute
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Attribute{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&attributes).Error

	return attributes, total, err
}

func (r *attributeRepository) Update(ctx context.Context, attribute *entity.Attribute) error {
	return r.db.WithContext(ctx).Save(attribute).Error
}

func (r *attributeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Attribute{}, "id = ?", id).Error
}

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) domainRepo.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *unitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	var unit entity.Unit
	err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &unit, err
}

func (r *unitRepository) FindBySlug(ctx context.Context, slug string) (*entity.Unit, error) {
	var unit entity.Unit
	err := r.db.WithContext(ctx).First(&unit, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &unit, err
}

func (r *unitRepository) FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Unit, int64, error) {
	var units []*entity.Unit
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Unit{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&units).Error

	return units, total, err
}

func (r *unitRepository) Update(ctx context.Context, unit *entity.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *unitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Unit{}, "id = ?", id).Error
}
