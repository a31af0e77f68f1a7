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

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	method := enum.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		response.Error(c, apperror.NewBadRequestError("Invalid payment method"))
		return
	}

	customerID, err := parseOptionalUUID(req.CustomerID)
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid customer ID"))
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
			return
		}
		items = append(items, service.OrderItemInput{ProductID: productID, Quantity: item.Quantity})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:        *userID,
		CustomerID:    customerID,
		PaymentMethod: method,
		Pay:           req.Pay,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order created", order)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)

	orders, p, err := h.orderService.ListOrders(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Orders retrieved", orders, p)
}

// ListPending handles GET /orders/pending
func (h *OrderHandler) ListPending(c *gin.Context) {
	params := GetPaginationParams(c)

	orders, p, err := h.orderService.ListPendingOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Pending orders retrieved", orders, p)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid order ID"))
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order retrieved", order)
}

// PayDue handles POST /orders/:id/pay
func (h *OrderHandler) PayDue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid order ID"))
		return
	}

	var req request.PayDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	order, err := h.orderService.PayDue(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment recorded", order)
}

// Cancel handles POST /orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid order ID"))
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order cancelled", order)
}
