package checkout

import "github.com/papeleria-gasparin/pos-api/pkg/apperror"

// Validation errors surfaced to the operator. Every one is recoverable:
// the operator corrects the input and retries.
var (
	ErrEmptyCart        = apperror.NewBadRequestError("Cart is empty")
	ErrInsufficientCash = apperror.NewBadRequestError("Insufficient cash")
	ErrInvalidAmount    = apperror.NewBadRequestError("Invalid amount")
	ErrNoActiveSession  = apperror.NewBadRequestError("No active sale session")
	ErrWrongStage       = apperror.NewBadRequestError("Operation not allowed in current checkout stage")
)
