package checkout

import (
	"context"

	"github.com/google/uuid"
	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the active cart. Subtotal is always
// recomputed from quantity and unit price, never set independently.
type LineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartProduct is the read-only product record the cart accepts.
type CartProduct struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
}

// Cart holds the line items of the active sale. Every mutation persists the
// full collection under the owner's sale_items key, so a reload resumes
// mid-sale.
type Cart struct {
	store  domainRepo.KVRepository
	userID string
	items  []LineItem
}

// NewCart loads the persisted cart for userID, defaulting to empty when
// nothing usable is stored.
func NewCart(ctx context.Context, store domainRepo.KVRepository, userID string) (*Cart, error) {
	c := &Cart{store: store, userID: userID}

	var items []LineItem
	found, err := c.store.Get(ctx, c.key(), &items)
	if err != nil {
		return nil, err
	}
	if found {
		c.items = items
	}
	return c, nil
}

func (c *Cart) key() string {
	return StateKey(c.userID, keySaleItems)
}

func (c *Cart) persist(ctx context.Context) error {
	return c.store.Put(ctx, c.key(), c.items)
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line. Quantity defaults to 1 at the call sites that take
// operator clicks.
func (c *Cart) AddItem(ctx context.Context, product CartProduct, quantity int) error {
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			c.items[i].Subtotal = c.items[i].UnitPrice.Mul(decimal.NewFromInt(int64(c.items[i].Quantity)))
			return c.persist(ctx)
		}
	}

	c.items = append(c.items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: product.UnitPrice,
		Subtotal:  product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return c.persist(ctx)
}

// UpdateQuantity sets a line's quantity, clamping to a minimum of 1, then
// drops any line whose quantity ended up non-positive. The clamp makes the
// drop unreachable through this path; the filter is kept so a zero quantity
// can never survive regardless of how the line got there.
func (c *Cart) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			if quantity < 1 {
				quantity = 1
			}
			c.items[i].Quantity = quantity
			c.items[i].Subtotal = c.items[i].UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
			break
		}
	}

	kept := c.items[:0]
	for _, item := range c.items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.items = kept

	return c.persist(ctx)
}

// RemoveItem removes a line unconditionally. Removing an absent product is
// a no-op that still persists.
func (c *Cart) RemoveItem(ctx context.Context, productID uuid.UUID) error {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return c.persist(ctx)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.items = nil
	return c.persist(ctx)
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total is the sum of all subtotals, recomputed on every read.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal)
	}
	return total
}
