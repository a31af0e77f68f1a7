package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/application/checkout"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/pagination"
	"github.com/papeleria-gasparin/pos-api/pkg/printer"
)

// SaleService records finalized checkouts and serves sale history.
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	printer      printer.Printer
	receiptWidth int
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	p printer.Printer,
	receiptWidth int,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		printer:      p,
		receiptWidth: receiptWidth,
	}
}

// RecordSale persists a finalized checkout, decrements stock for every
// line and prints the receipt. A printer failure does not fail the sale.
func (s *SaleService) RecordSale(ctx context.Context, userID uuid.UUID, fs *checkout.FinalizedSale) (*entity.Sale, error) {
	changes := make([]repository.StockChange, 0, len(fs.Items))
	items := make([]entity.SaleItem, 0, len(fs.Items))
	for _, item := range fs.Items {
		changes = append(changes, repository.StockChange{ProductID: item.ProductID, Quantity: item.Quantity})
		items = append(items, entity.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	if err := s.productRepo.AtomicDecrementBatch(ctx, changes); err != nil {
		return nil, err
	}

	payments := make([]entity.SalePayment, 0, len(fs.Payments))
	for _, p := range fs.Payments {
		payments = append(payments, entity.SalePayment{
			Method: p.Method,
			Amount: p.Amount,
		})
	}

	sale := &entity.Sale{
		UserID:     userID,
		SaleNumber: fs.SaleID,
		Total:      fs.Total,
		ChangeDue:  fs.ChangeDue,
		Items:      items,
		Payments:   payments,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, changes)
		return nil, err
	}

	if err := s.printer.Print(s.buildReceipt(sale)); err != nil {
		log.Printf("Warning: failed to print receipt for sale %d: %v", sale.SaleNumber, err)
	}

	return sale, nil
}

func (s *SaleService) buildReceipt(sale *entity.Sale) []byte {
	doc := printer.NewDocument(s.receiptWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PAPELERIA GASPARIN").
		SetBold(false).
		Text(time.Now().Format("02/01/2006 15:04")).
		Text(fmt.Sprintf("Venta #%d", sale.SaleNumber)).
		SetAlign(printer.AlignLeft).
		Divider()

	for _, item := range sale.Items {
		doc.ItemLine(item.Quantity, item.Name, "$"+item.Subtotal.StringFixed(2))
	}

	doc.Divider().
		SetBold(true).
		TwoColumns("TOTAL", "$"+sale.Total.StringFixed(2)).
		SetBold(false)

	for _, p := range sale.Payments {
		doc.TwoColumns(p.Method.String(), "$"+p.Amount.StringFixed(2))
	}
	doc.TwoColumns("Cambio", "$"+sale.ChangeDue.StringFixed(2))

	doc.LineFeed().
		SetAlign(printer.AlignCenter).
		Text("Gracias por su compra!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales, optionally filtered to one cashier
func (s *SaleService) ListSales(ctx context.Context, params pagination.PaginationParams, userID *uuid.UUID) ([]*entity.Sale, *pagination.Pagination, error) {
	sales, total, err := s.saleRepo.FindAll(ctx, params, userID)
	if err != nil {
		return nil, nil, err
	}
	return sales, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// ReprintReceipt reprints the receipt of a recorded sale.
func (s *SaleService) ReprintReceipt(ctx context.Context, id uuid.UUID) error {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return err
	}
	return s.printer.Print(s.buildReceipt(sale))
}
