package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/application/service"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/request"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/response"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
)

// AttributeHandler handles product attribute endpoints
type AttributeHandler struct {
	attributeService *service.AttributeService
}

// NewAttributeHandler creates a new attribute handler
func NewAttributeHandler(attributeService *service.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// Create handles POST /attributes
func (h *AttributeHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	attribute, err := h.attributeService.CreateAttribute(c.Request.Context(), *userID, req.Name, req.Options)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Attribute created", attribute)
}

// List handles GET /attributes
func (h *AttributeHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)

	attributes, p, err := h.attributeService.ListAttributes(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Attributes retrieved", attributes, p)
}

// Get handles GET /attributes/:id
func (h *AttributeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid attribute ID"))
		return
	}

	attribute, err := h.attributeService.GetAttribute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Attribute retrieved", attribute)
}

// Update handles PUT /attributes/:id
func (h *AttributeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid attribute ID"))
		return
	}

	var req request.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	attribute, err := h.attributeService.UpdateAttribute(c.Request.Context(), id, req.Name, req.Options)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Attribute updated", attribute)
}

// Delete handles DELETE /attributes/:id
func (h *AttributeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid attribute ID"))
		return
	}

	if err := h.attributeService.DeleteAttribute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Attribute deleted", nil)
}

// UnitHandler handles unit of measure endpoints
type UnitHandler struct {
	unitService *service.UnitService
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(unitService *service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// Create handles POST /units
func (h *UnitHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), *userID, req.Name, req.ShortCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Unit created", unit)
}

// List handles GET /units
func (h *UnitHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)

	units, p, err := h.unitService.ListUnits(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Units retrieved", units, p)
}

// Get handles GET /units/:id
func (h *UnitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid unit ID"))
		return
	}

	unit, err := h.unitService.GetUnit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Unit retrieved", unit)
}

// Update handles PUT /units/:id
func (h *UnitHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid unit ID"))
		return
	}

	var req request.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	unit, err := h.unitService.UpdateUnit(c.Request.Context(), id, req.Name, req.ShortCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Unit updated", unit)
}

// Delete handles DELETE /units/:id
func (h *UnitHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid unit ID"))
		return
	}

	if err := h.unitService.DeleteUnit(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Unit deleted", nil)
}
