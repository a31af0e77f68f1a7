package checkout

import "fmt"

// Key name suffixes recognized by the checkout flow.
const (
	keySaleItems     = "sale_items"
	keySaleActive    = "sale_active"
	keyCurrentSaleID = "current_sale_id"
)

// StateKey builds the per-user storage key for one piece of POS state.
// Keys look like pos_{userID}_{name}, or pos_{name} when no user id exists.
func StateKey(userID, name string) string {
	if userID == "" {
		return fmt.Sprintf("pos_%s", name)
	}
	return fmt.Sprintf("pos_%s_%s", userID, name)
}
