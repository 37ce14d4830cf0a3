package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
)

// BalanceHandler handles receivable and payable balance HTTP requests
type BalanceHandler struct {
	balanceService *service.BalanceService
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(balanceService *service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// CustomerBalances returns per-customer receivable summaries
func (h *BalanceHandler) CustomerBalances(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	summaries, err := h.balanceService.CustomerBalances(c.Request.Context(), includeInactive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer balances retrieved successfully", summaries)
}

// SupplierBalances returns per-supplier payable summaries
func (h *BalanceHandler) SupplierBalances(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	summaries, err := h.balanceService.SupplierBalances(c.Request.Context(), includeInactive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier balances retrieved successfully", summaries)
}

// CustomerStatement returns the per-sale breakdown behind a customer's balance
func (h *BalanceHandler) CustomerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	statement, err := h.balanceService.CustomerStatement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer statement retrieved successfully", statement)
}

// SupplierStatement returns the per-purchase breakdown behind a supplier's balance
func (h *BalanceHandler) SupplierStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	statement, err := h.balanceService.SupplierStatement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier statement retrieved successfully", statement)
}
