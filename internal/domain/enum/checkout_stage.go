package enum

import "encoding/json"

// CheckoutStage is the current step of finalizing a single sale.
type CheckoutStage int

const (
	CheckoutStageCart         CheckoutStage = 0
	CheckoutStagePayment      CheckoutStage = 1
	CheckoutStageConfirmation CheckoutStage = 2
)

func (s CheckoutStage) String() string {
	return [...]string{"Cart", "Payment", "Confirmation"}[s]
}

func (s CheckoutStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
