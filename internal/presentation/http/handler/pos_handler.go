package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/application/service"
	"github.com/papeleria-gasparin/pos-api/internal/domain/enum"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/request"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/response"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
)

// PosHandler handles the point-of-sale checkout endpoints
type PosHandler struct {
	posService *service.PosService
}

// NewPosHandler creates a new POS handler
func NewPosHandler(posService *service.PosService) *PosHandler {
	return &PosHandler{posService: posService}
}

// GetState handles GET /pos/state
func (h *PosHandler) GetState(c *gin.Context) {
	state, err := h.posService.GetState(c.Request.Context(), GetStateKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "POS state retrieved", state)
}

// OpenSession handles POST /pos/session/open
func (h *PosHandler) OpenSession(c *gin.Context) {
	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	saleID, err := h.posService.OpenSession(c.Request.Context(), GetStateKey(c), req.OpeningAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sale session opened", gin.H{"sale_id": saleID})
}

// CloseSession handles POST /pos/session/close
func (h *PosHandler) CloseSession(c *gin.Context) {
	var req request.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	if err := h.posService.CloseSession(c.Request.Context(), GetStateKey(c), req.ClosingAmount); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sale session closed", nil)
}

// AddToCart handles POST /pos/cart
func (h *PosHandler) AddToCart(c *gin.Context) {
	var req request.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	state, err := h.posService.AddToCart(c.Request.Context(), GetStateKey(c), productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product added to cart", state)
}

// UpdateCartItem handles PUT /pos/cart/:productId
func (h *PosHandler) UpdateCartItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	state, err := h.posService.UpdateCartItem(c.Request.Context(), GetStateKey(c), productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cart updated", state)
}

// RemoveCartItem handles DELETE /pos/cart/:productId
func (h *PosHandler) RemoveCartItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	state, err := h.posService.RemoveCartItem(c.Request.Context(), GetStateKey(c), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Item removed", state)
}

// ClearCart handles DELETE /pos/cart
func (h *PosHandler) ClearCart(c *gin.Context) {
	state, err := h.posService.ClearCart(c.Request.Context(), GetStateKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cart cleared", state)
}

// StartCheckout handles POST /pos/checkout/start
func (h *PosHandler) StartCheckout(c *gin.Context) {
	state, err := h.posService.StartCheckout(c.Request.Context(), GetStateKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Checkout started", state)
}

// SelectMethod handles POST /pos/checkout/method
func (h *PosHandler) SelectMethod(c *gin.Context) {
	var req request.SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	state, err := h.posService.SelectMethod(c.Request.Context(), GetStateKey(c), enum.PaymentMethod(req.Method))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment method selected", state)
}

// PressKey handles POST /pos/checkout/keys
func (h *PosHandler) PressKey(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.PressKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	state, sale, err := h.posService.PressKey(c.Request.Context(), GetStateKey(c), *userID, req.Key)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{"state": state}
	if sale != nil {
		data["sale"] = sale
	}
	response.Success(c, http.StatusOK, "Key processed", data)
}

// ConfirmPayment handles POST /pos/checkout/confirm
func (h *PosHandler) ConfirmPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	state, sale, err := h.posService.ConfirmPayment(c.Request.Context(), GetStateKey(c), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment completed", gin.H{
		"state": state,
		"sale":  sale,
	})
}

// CancelPayment handles POST /pos/checkout/cancel
func (h *PosHandler) CancelPayment(c *gin.Context) {
	state, err := h.posService.CancelPayment(c.Request.Context(), GetStateKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment cancelled", state)
}

// SwitchUser handles POST /pos/switch-user. Called by the new operator
// after taking over a shared terminal; the previous operator's POS state
// is purged and the caller's own state is loaded.
func (h *PosHandler) SwitchUser(c *gin.Context) {
	var req request.SwitchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	state, err := h.posService.SwitchUser(c.Request.Context(), req.PreviousStateKey, GetStateKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Operator switched", state)
}

// StartNewOrder handles POST /pos/checkout/new-order
func (h *PosHandler) StartNewOrder(c *gin.Context) {
	state, err := h.posService.StartNewOrder(c.Request.Context(), GetStateKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Ready for next order", state)
}
