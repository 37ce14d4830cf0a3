package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/request"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService   *service.SaleService
	ledgerService *service.LedgerService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, ledgerService *service.LedgerService) *SaleHandler {
	return &SaleHandler{saleService: saleService, ledgerService: ledgerService}
}

// Create handles creating a sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.SaleItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	input := &service.CreateSaleInput{
		UserID:      *userID,
		SaleDate:    req.SaleDate,
		PaymentMode: enum.PaymentMode(req.PaymentMode),
		PaidAmount:  req.PaidAmount,
		Method:      enum.PaymentMethod(req.Method),
		Note:        req.Note,
		Items:       items,
	}

	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &customerID
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale created successfully", sale)
}

// Get handles retrieving a sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	params := &repository.SaleFilterParams{
		Pagination: getPagination(c),
		Search:     c.Query("search"),
		DueOnly:    c.Query("due_only") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			params.StartDate = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			params.EndDate = &t
		}
	}

	sales, total, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := params.Pagination
	result := pagination.NewPaginatedResult(sales, pagination.NewPagination(p.Page, p.PerPage, total))
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Payments lists the payment history of a sale
func (h *SaleHandler) Payments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	payments, err := h.ledgerService.ListPaymentsForBillable(c.Request.Context(), enum.BillableKindSale, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// Delete handles deleting a sale without recorded payments
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}
