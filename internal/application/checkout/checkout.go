package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CheckoutSession owns all POS state for one operator: the cart, the sale
// session, the drawer counts, the checkout stage machine and the payment
// capture. One instance exists per authenticated user; the registry hands
// out the same instance for the life of the login.
//
// HTTP handlers run concurrently, so every operation takes the session
// mutex. Within one operation the components mutate atomically with respect
// to each other.
type CheckoutSession struct {
	mu sync.Mutex

	userID  string
	store   domainRepo.KVRepository
	cart    *Cart
	session *Session
	drawer  Drawer
	machine *Machine
	capture PaymentCapture
}

// FinalizedSale is the frozen outcome of a completed checkout, handed to
// the caller for persistence and receipt printing.
type FinalizedSale struct {
	SaleID    int64
	Items     []LineItem
	Total     decimal.Decimal
	Payments  []Payment
	ChangeDue decimal.Decimal
}

// State is a snapshot of the whole checkout surface for rendering.
type State struct {
	UserID         string             `json:"user_id"`
	SessionActive  bool               `json:"session_active"`
	SaleID         int64              `json:"sale_id,omitempty"`
	Stage          enum.CheckoutStage `json:"stage"`
	Items          []LineItem         `json:"items"`
	Total          decimal.Decimal    `json:"total"`
	CaptureActive  bool               `json:"capture_active"`
	Method         enum.PaymentMethod `json:"method"`
	InputAmount    string             `json:"input_amount"`
	ReceivedAmount decimal.Decimal    `json:"received_amount"`
	ChangePreview  decimal.Decimal    `json:"change_preview"`
	ChangeDue      decimal.Decimal    `json:"change_due"`
	Payments       []Payment          `json:"payments,omitempty"`
}

// NewCheckoutSession restores the operator's persisted cart and session
// state, so a restart resumes mid-sale.
func NewCheckoutSession(ctx context.Context, store domainRepo.KVRepository, userID string) (*CheckoutSession, error) {
	cart, err := NewCart(ctx, store, userID)
	if err != nil {
		return nil, err
	}
	session, err := NewSession(ctx, store, userID)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		userID:  userID,
		store:   store,
		cart:    cart,
		session: session,
		machine: NewMachine(),
	}, nil
}

// UserID returns the namespacing user id for this session.
func (cs *CheckoutSession) UserID() string {
	return cs.userID
}

// OpenSession records the opening drawer count and starts a new sale
// session, returning its sale id.
func (cs *CheckoutSession) OpenSession(ctx context.Context, openingAmount decimal.Decimal) (int64, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.drawer.Reset()
	cs.drawer.Opening.Submit(openingAmount)
	return cs.session.StartNewSale(ctx)
}

// CloseSession records the closing drawer count, ends the sale session and
// purges the operator's persisted keys. The cart is gone with them.
func (cs *CheckoutSession) CloseSession(ctx context.Context, closingAmount decimal.Decimal) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.session.IsActive() {
		return ErrNoActiveSession
	}

	cs.drawer.Closing.Submit(closingAmount)
	if err := cs.session.EndSaleSession(ctx); err != nil {
		return err
	}
	cs.cart.items = nil
	cs.machine.StartNewOrder()
	cs.capture.Dismiss()
	return nil
}

// AddToCart merges a product into the cart. Quantities below one default
// to one.
func (cs *CheckoutSession) AddToCart(ctx context.Context, product CartProduct, quantity int) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.session.IsActive() {
		return ErrNoActiveSession
	}
	if quantity < 1 {
		quantity = 1
	}
	return cs.cart.AddItem(ctx, product, quantity)
}

// UpdateCartItem changes a line's quantity.
func (cs *CheckoutSession) UpdateCartItem(ctx context.Context, productID uuid.UUID, quantity int) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.session.IsActive() {
		return ErrNoActiveSession
	}
	return cs.cart.UpdateQuantity(ctx, productID, quantity)
}

// RemoveCartItem drops a line from the cart.
func (cs *CheckoutSession) RemoveCartItem(ctx context.Context, productID uuid.UUID) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.session.IsActive() {
		return ErrNoActiveSession
	}
	return cs.cart.RemoveItem(ctx, productID)
}

// ClearCart empties the cart.
func (cs *CheckoutSession) ClearCart(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.session.IsActive() {
		return ErrNoActiveSession
	}
	return cs.cart.Clear(ctx)
}

// StartCheckout moves to the Payment stage and presents the payment
// capture for the current cart total. An empty cart refuses the move.
func (cs *CheckoutSession) StartCheckout() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.session.IsActive() {
		return ErrNoActiveSession
	}
	if err := cs.machine.StartPayment(!cs.cart.IsEmpty()); err != nil {
		return err
	}
	cs.capture.Present(cs.cart.Total())
	return nil
}

// SelectMethod switches the tender method on the payment capture.
func (cs *CheckoutSession) SelectMethod(method enum.PaymentMethod) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.machine.Stage() != enum.CheckoutStagePayment {
		return ErrWrongStage
	}
	cs.capture.SelectMethod(method)
	return nil
}

// PressKey feeds one key event to the payment capture. Enter on a valid
// amount completes the payment and returns the finalized sale; every other
// event returns nil.
func (cs *CheckoutSession) PressKey(ctx context.Context, key string) (*FinalizedSale, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	result := cs.capture.HandleKey(key)
	if !result.Submit {
		return nil, nil
	}
	return cs.finalizeLocked()
}

// ConfirmPayment validates the entered amount, completes the payment and
// moves to Confirmation, returning the finalized sale for persistence.
func (cs *CheckoutSession) ConfirmPayment(ctx context.Context) (*FinalizedSale, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.machine.Stage() != enum.CheckoutStagePayment {
		return nil, ErrWrongStage
	}
	return cs.finalizeLocked()
}

func (cs *CheckoutSession) finalizeLocked() (*FinalizedSale, error) {
	payment, err := cs.capture.Validate()
	if err != nil {
		return nil, err
	}

	total := cs.cart.Total()
	cs.machine.CompletePayment([]Payment{payment}, total)
	cs.capture.Dismiss()

	return &FinalizedSale{
		SaleID:    cs.session.SaleID(),
		Items:     cs.cart.Items(),
		Total:     total,
		Payments:  cs.machine.Payments(),
		ChangeDue: cs.machine.ChangeDue(),
	}, nil
}

// ReopenPayment returns a confirmed checkout to the Payment stage,
// re-presenting the capture for the cart total. It is the recovery path
// when the finalized sale could not be recorded: the cart is still intact,
// so the operator retakes the tender instead of losing the sale.
func (cs *CheckoutSession) ReopenPayment() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.machine.Stage() != enum.CheckoutStageConfirmation {
		return ErrWrongStage
	}
	cs.machine.ReopenPayment()
	cs.capture.Present(cs.cart.Total())
	return nil
}

// CancelPayment returns to the Cart stage, keeping the cart intact, and
// detaches the payment capture.
func (cs *CheckoutSession) CancelPayment() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.machine.Stage() != enum.CheckoutStagePayment {
		return ErrWrongStage
	}
	cs.machine.CancelPayment()
	cs.capture.Dismiss()
	return nil
}

// StartNewOrder resets the stage machine and clears the cart for the next
// customer. The sale session stays open.
func (cs *CheckoutSession) StartNewOrder(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.machine.StartNewOrder()
	return cs.cart.Clear(ctx)
}

// Snapshot returns the current state of the whole checkout surface.
func (cs *CheckoutSession) Snapshot() State {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return State{
		UserID:         cs.userID,
		SessionActive:  cs.session.IsActive(),
		SaleID:         cs.session.SaleID(),
		Stage:          cs.machine.Stage(),
		Items:          cs.cart.Items(),
		Total:          cs.cart.Total(),
		CaptureActive:  cs.capture.IsActive(),
		Method:         cs.capture.Method(),
		InputAmount:    cs.capture.Buffer(),
		ReceivedAmount: cs.capture.ReceivedAmount(),
		ChangePreview:  cs.capture.ChangeDue(),
		ChangeDue:      cs.machine.ChangeDue(),
		Payments:       cs.machine.Payments(),
	}
}

// purge deletes every persisted key for this session's user.
func (cs *CheckoutSession) purge(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.session.EndSaleSession(ctx)
}

// Registry hands out one CheckoutSession per user id, creating it from
// persisted state on first use.
type Registry struct {
	mu       sync.Mutex
	store    domainRepo.KVRepository
	sessions map[string]*CheckoutSession
}

// NewRegistry creates an empty session registry over the given store.
func NewRegistry(store domainRepo.KVRepository) *Registry {
	return &Registry{
		store:    store,
		sessions: make(map[string]*CheckoutSession),
	}
}

// Get returns the user's checkout session, restoring it from persisted
// state on first access.
func (r *Registry) Get(ctx context.Context, userID string) (*CheckoutSession, error) {
	if userID == "" {
		userID = "anonymous"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cs, ok := r.sessions[userID]; ok {
		return cs, nil
	}

	cs, err := NewCheckoutSession(ctx, r.store, userID)
	if err != nil {
		return nil, err
	}
	r.sessions[userID] = cs
	return cs, nil
}

// SwitchUser purges the previous user's persisted session keys and drops
// the in-memory session, then loads (or defaults) the new user's state.
func (r *Registry) SwitchUser(ctx context.Context, prevUserID, newUserID string) (*CheckoutSession, error) {
	if prevUserID != "" {
		r.mu.Lock()
		prev, ok := r.sessions[prevUserID]
		delete(r.sessions, prevUserID)
		r.mu.Unlock()

		if !ok {
			var err error
			prev, err = NewCheckoutSession(ctx, r.store, prevUserID)
			if err != nil {
				return nil, err
			}
		}
		if err := prev.purge(ctx); err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, newUserID)
}

// Remove drops a user's in-memory session without touching persisted
// state, so a later login resumes it.
func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
}
