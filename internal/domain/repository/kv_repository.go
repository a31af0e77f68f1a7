package repository

import "context"

// KVRepository is the keyed state store backing the POS checkout flow.
// Values round-trip through JSON. Get reports presence explicitly: a key
// whose stored value cannot be decoded is treated as absent.
type KVRepository interface {
	// Get decodes the value stored under key into dest. It returns false
	// when the key does not exist or its value is not valid JSON for dest.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value interface{}) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
