package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/application/checkout"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// PosService drives the checkout flow for the terminal. It resolves the
// operator's checkout session from the registry, feeds it catalog products
// and hands finalized checkouts to the sale service for persistence.
//
// Operators are namespaced by their state key (email, falling back to
// username, then "anonymous"), matching how their persisted POS state is
// stored.
type PosService struct {
	registry    *checkout.Registry
	productRepo repository.ProductRepository
	saleService *SaleService
}

// NewPosService creates a new POS service
func NewPosService(registry *checkout.Registry, productRepo repository.ProductRepository, saleService *SaleService) *PosService {
	return &PosService{
		registry:    registry,
		productRepo: productRepo,
		saleService: saleService,
	}
}

// OpenSession opens a sale session with the counted opening cash amount.
func (s *PosService) OpenSession(ctx context.Context, stateKey string, openingAmount decimal.Decimal) (int64, error) {
	if openingAmount.IsNegative() {
		return 0, apperror.NewBadRequestError("Opening amount must be non-negative")
	}
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return 0, err
	}
	return cs.OpenSession(ctx, openingAmount)
}

// CloseSession closes the sale session with the counted closing cash amount.
func (s *PosService) CloseSession(ctx context.Context, stateKey string, closingAmount decimal.Decimal) error {
	if closingAmount.IsNegative() {
		return apperror.NewBadRequestError("Closing amount must be non-negative")
	}
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return err
	}
	return cs.CloseSession(ctx, closingAmount)
}

// GetState returns a snapshot of the operator's checkout surface.
func (s *PosService) GetState(ctx context.Context, stateKey string) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// AddToCart looks up the product in the catalog and merges it into the
// operator's cart at its current selling price.
func (s *PosService) AddToCart(ctx context.Context, stateKey string, productID uuid.UUID, quantity int) (*checkout.State, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}

	err = cs.AddToCart(ctx, checkout.CartProduct{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.SellingPrice,
	}, quantity)
	if err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// UpdateCartItem changes a cart line's quantity.
func (s *PosService) UpdateCartItem(ctx context.Context, stateKey string, productID uuid.UUID, quantity int) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.UpdateCartItem(ctx, productID, quantity); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// RemoveCartItem drops a line from the cart.
func (s *PosService) RemoveCartItem(ctx context.Context, stateKey string, productID uuid.UUID) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.RemoveCartItem(ctx, productID); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// ClearCart empties the operator's cart.
func (s *PosService) ClearCart(ctx context.Context, stateKey string) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.ClearCart(ctx); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// StartCheckout moves the operator to the payment stage.
func (s *PosService) StartCheckout(ctx context.Context, stateKey string) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.StartCheckout(); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// SelectMethod switches the tender method during payment.
func (s *PosService) SelectMethod(ctx context.Context, stateKey string, method enum.PaymentMethod) (*checkout.State, error) {
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.SelectMethod(method); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// PressKey feeds one keypad or keyboard event to the payment capture. If
// the event completes the payment (Enter on a valid amount), the sale is
// recorded under the given database user.
func (s *PosService) PressKey(ctx context.Context, stateKey string, dbUserID uuid.UUID, key string) (*checkout.State, *entity.Sale, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, nil, err
	}

	finalized, err := cs.PressKey(ctx, key)
	if err != nil {
		return nil, nil, err
	}

	var sale *entity.Sale
	if finalized != nil {
		sale, err = s.saleService.RecordSale(ctx, dbUserID, finalized)
		if err != nil {
			// Nothing was persisted and no stock moved. Reopen the
			// payment stage so the tender can be retaken.
			_ = cs.ReopenPayment()
			return nil, nil, err
		}
	}

	state := cs.Snapshot()
	return &state, sale, nil
}

// ConfirmPayment validates the tendered amount, completes the checkout and
// records the sale.
func (s *PosService) ConfirmPayment(ctx context.Context, stateKey string, dbUserID uuid.UUID) (*checkout.State, *entity.Sale, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, nil, err
	}

	finalized, err := cs.ConfirmPayment(ctx)
	if err != nil {
		return nil, nil, err
	}

	sale, err := s.saleService.RecordSale(ctx, dbUserID, finalized)
	if err != nil {
		// Nothing was persisted and no stock moved. Reopen the payment
		// stage so the tender can be retaken.
		_ = cs.ReopenPayment()
		return nil, nil, err
	}

	state := cs.Snapshot()
	return &state, sale, nil
}

// CancelPayment returns to the cart stage, keeping the cart intact.
func (s *PosService) CancelPayment(ctx context.Context, stateKey string) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.CancelPayment(); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// StartNewOrder clears the cart and resets the stage for the next customer.
func (s *PosService) StartNewOrder(ctx context.Context, stateKey string) (*checkout.State, error) {
	cs, err := s.registry.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if err := cs.StartNewOrder(ctx); err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// SwitchUser purges the previous operator's persisted POS state and loads
// the new operator's.
func (s *PosService) SwitchUser(ctx context.Context, prevStateKey, newStateKey string) (*checkout.State, error) {
	cs, err := s.registry.SwitchUser(ctx, prevStateKey, newStateKey)
	if err != nil {
		return nil, err
	}
	state := cs.Snapshot()
	return &state, nil
}

// ForgetUser drops the operator's in-memory session on logout, keeping the
// persisted state so the next login resumes it.
func (s *PosService) ForgetUser(stateKey string) {
	s.registry.Remove(stateKey)
}
