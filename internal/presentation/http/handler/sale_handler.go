package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/application/service"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/response"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
)

// SaleHandler handles sale history endpoints
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles GET /sales. Pass mine=true to filter to the caller's sales.
func (h *SaleHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)

	var userID *uuid.UUID
	if c.Query("mine") == "true" {
		userID = GetUserID(c)
	}

	sales, p, err := h.saleService.ListSales(c.Request.Context(), params, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Sales retrieved", sales, p)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid sale ID"))
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sale retrieved", sale)
}

// Reprint handles POST /sales/:id/reprint
func (h *SaleHandler) Reprint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid sale ID"))
		return
	}

	if err := h.saleService.ReprintReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Receipt sent to printer", nil)
}
