package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/application/checkout"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	infraRepo "github.com/papeleria-gasparin/pos-api/internal/infrastructure/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/papeleria-gasparin/pos-api/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepo struct {
	products     map[uuid.UUID]*entity.Product
	decrementErr error
	decrements   int
}

func (r *stubProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }

func (r *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *stubProductRepo) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) FindAll(ctx context.Context, params pagination.PaginationParams, search string) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) FindLowStock(ctx context.Context, params pagination.PaginationParams) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (r *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *stubProductRepo) AtomicDecrementBatch(ctx context.Context, changes []repository.StockChange) error {
	r.decrements++
	return r.decrementErr
}

func (r *stubProductRepo) AtomicIncrementBatch(ctx context.Context, changes []repository.StockChange) error {
	return nil
}

type stubSaleRepo struct {
	created []*entity.Sale
}

func (r *stubSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.created = append(r.created, sale)
	return nil
}

func (r *stubSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return nil, nil
}

func (r *stubSaleRepo) FindAll(ctx context.Context, params pagination.PaginationParams, userID *uuid.UUID) ([]*entity.Sale, int64, error) {
	return nil, 0, nil
}

func (r *stubSaleRepo) SumTotalByDateRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *stubSaleRepo) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

func posFixture(t *testing.T, productRepo *stubProductRepo, saleRepo *stubSaleRepo) *PosService {
	t.Helper()
	saleService := NewSaleService(saleRepo, productRepo, printer.NewNullPrinter(), 32)
	registry := checkout.NewRegistry(infraRepo.NewMemoryKVRepository())
	return NewPosService(registry, productRepo, saleService)
}

func TestConfirmPaymentReopensPaymentWhenRecordingFails(t *testing.T) {
	ctx := context.Background()
	stateKey := "cashier@gasparin.mx"
	dbUserID := uuid.New()

	scissors := &entity.Product{
		ID:           uuid.New(),
		Name:         "Tijeras",
		SellingPrice: decimal.RequireFromString("50.00"),
	}
	productRepo := &stubProductRepo{
		products:     map[uuid.UUID]*entity.Product{scissors.ID: scissors},
		decrementErr: apperror.ErrInsufficientStock,
	}
	saleRepo := &stubSaleRepo{}
	posService := posFixture(t, productRepo, saleRepo)

	_, err := posService.OpenSession(ctx, stateKey, decimal.RequireFromString("500.00"))
	require.NoError(t, err)
	_, err = posService.AddToCart(ctx, stateKey, scissors.ID, 1)
	require.NoError(t, err)
	_, err = posService.StartCheckout(ctx, stateKey)
	require.NoError(t, err)
	for _, key := range []string{"1", "0", "0"} {
		_, _, err = posService.PressKey(ctx, stateKey, dbUserID, key)
		require.NoError(t, err)
	}

	_, _, err = posService.ConfirmPayment(ctx, stateKey, dbUserID)
	require.Error(t, err)
	require.Empty(t, saleRepo.created)

	// The operator is back on the payment screen with the cart intact
	state, err := posService.GetState(ctx, stateKey)
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStagePayment, state.Stage)
	assert.True(t, state.CaptureActive)
	assert.Len(t, state.Items, 1)

	// Stock frees up; retaking the tender completes the sale
	productRepo.decrementErr = nil
	for _, key := range []string{"1", "0", "0"} {
		_, _, err = posService.PressKey(ctx, stateKey, dbUserID, key)
		require.NoError(t, err)
	}
	state, sale, err := posService.ConfirmPayment(ctx, stateKey, dbUserID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, enum.CheckoutStageConfirmation, state.Stage)
	assert.Equal(t, "50.00", sale.Total.StringFixed(2))
	require.Len(t, saleRepo.created, 1)
}

func TestPressKeySubmitReopensPaymentWhenRecordingFails(t *testing.T) {
	ctx := context.Background()
	stateKey := "cashier@gasparin.mx"
	dbUserID := uuid.New()

	scissors := &entity.Product{
		ID:           uuid.New(),
		Name:         "Tijeras",
		SellingPrice: decimal.RequireFromString("50.00"),
	}
	productRepo := &stubProductRepo{
		products:     map[uuid.UUID]*entity.Product{scissors.ID: scissors},
		decrementErr: apperror.ErrInsufficientStock,
	}
	posService := posFixture(t, productRepo, &stubSaleRepo{})

	_, err := posService.OpenSession(ctx, stateKey, decimal.RequireFromString("500.00"))
	require.NoError(t, err)
	_, err = posService.AddToCart(ctx, stateKey, scissors.ID, 1)
	require.NoError(t, err)
	_, err = posService.StartCheckout(ctx, stateKey)
	require.NoError(t, err)
	for _, key := range []string{"6", "0"} {
		_, _, err = posService.PressKey(ctx, stateKey, dbUserID, key)
		require.NoError(t, err)
	}

	_, _, err = posService.PressKey(ctx, stateKey, dbUserID, "Enter")
	require.Error(t, err)

	// The failed recording leaves a cancelable payment stage behind
	state, err := posService.GetState(ctx, stateKey)
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStagePayment, state.Stage)

	state, err = posService.CancelPayment(ctx, stateKey)
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStageCart, state.Stage)
	assert.Len(t, state.Items, 1)
}
