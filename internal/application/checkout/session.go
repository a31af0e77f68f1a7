package checkout

import (
	"context"
	"time"

	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
)

// Session tracks whether a sale session is open and which sale id it carries.
// The invariant is that saleID is non-zero exactly when the session is active.
// The sale id key is deleted, not zeroed, when cleared, so "no session" stays
// distinguishable from "session 0".
type Session struct {
	store    domainRepo.KVRepository
	userID   string
	isActive bool
	saleID   int64

	now func() time.Time
}

// NewSession loads the persisted session state for userID, defaulting to
// inactive when nothing usable is stored.
func NewSession(ctx context.Context, store domainRepo.KVRepository, userID string) (*Session, error) {
	s := &Session{store: store, userID: userID, now: time.Now}

	var active bool
	found, err := store.Get(ctx, StateKey(userID, keySaleActive), &active)
	if err != nil {
		return nil, err
	}
	if found {
		s.isActive = active
	}

	var saleID int64
	found, err = store.Get(ctx, StateKey(userID, keyCurrentSaleID), &saleID)
	if err != nil {
		return nil, err
	}
	if found {
		s.saleID = saleID
	} else {
		// A stored active flag without a sale id is stale state.
		s.isActive = false
	}
	return s, nil
}

// IsActive reports whether a sale session is open.
func (s *Session) IsActive() bool {
	return s.isActive
}

// SaleID returns the current sale id, or 0 when no session is active.
func (s *Session) SaleID() int64 {
	return s.saleID
}

// StartNewSale opens a session and returns its sale id. The id is the
// current epoch second; collisions within the same second are accepted.
func (s *Session) StartNewSale(ctx context.Context) (int64, error) {
	s.saleID = s.now().Unix()
	s.isActive = true

	if err := s.store.Put(ctx, StateKey(s.userID, keySaleActive), s.isActive); err != nil {
		return 0, err
	}
	if err := s.store.Put(ctx, StateKey(s.userID, keyCurrentSaleID), s.saleID); err != nil {
		return 0, err
	}
	return s.saleID, nil
}

// EndSaleSession purges all persisted keys for the owning user, including
// the cart, and resets the in-memory state to defaults.
func (s *Session) EndSaleSession(ctx context.Context) error {
	for _, name := range []string{keySaleActive, keyCurrentSaleID, keySaleItems} {
		if err := s.store.Delete(ctx, StateKey(s.userID, name)); err != nil {
			return err
		}
	}
	s.isActive = false
	s.saleID = 0
	return nil
}
