package repository

import (
	"context"
	"encoding/json"
	"sync"

	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
)

type memoryKVRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKVRepository creates an in-memory keyed state store. It backs
// tests and single-terminal deployments that run without Postgres.
func NewMemoryKVRepository() domainRepo.KVRepository {
	return &memoryKVRepository{data: make(map[string][]byte)}
}

func (r *memoryKVRepository) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	r.mu.RLock()
	raw, ok := r.data[key]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memoryKVRepository) Put(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data[key] = raw
	r.mu.Unlock()
	return nil
}

func (r *memoryKVRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	delete(r.data, key)
	r.mu.Unlock()
	return nil
}
