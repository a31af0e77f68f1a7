package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvRepository struct {
	db *gorm.DB
}

// NewKVRepository creates a Postgres-backed keyed state store
func NewKVRepository(db *gorm.DB) domainRepo.KVRepository {
	return &kvRepository{db: db}
}

func (r *kvRepository) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var row entity.PosState
	err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(row.Value), dest); err != nil {
		// A corrupted value behaves like a missing key so the checkout
		// flow can fall back to its defaults instead of wedging.
		log.Printf("Warning: discarding unreadable state for key %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (r *kvRepository) Put(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	row := entity.PosState{Key: key, Value: string(raw)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&entity.PosState{}, "key = ?", key).Error
}
