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

// PurchaseHandler handles purchase HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
	ledgerService   *service.LedgerService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService, ledgerService *service.LedgerService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, ledgerService: ledgerService}
}

// Create handles creating a purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.PurchaseItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PurchaseItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			UnitCost: item.UnitCost,
		})
	}

	input := &service.CreatePurchaseInput{
		UserID:       *userID,
		PurchaseDate: req.PurchaseDate,
		PaymentMode:  enum.PaymentMode(req.PaymentMode),
		PaidAmount:   req.PaidAmount,
		Method:       enum.PaymentMethod(req.Method),
		Note:         req.Note,
		Items:        items,
	}

	if req.SupplierID != "" {
		supplierID, err := uuid.Parse(req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		input.SupplierID = &supplierID
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase created successfully", purchase)
}

// Get handles retrieving a purchase with its items
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// List handles listing purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	params := &repository.PurchaseFilterParams{
		Pagination: getPagination(c),
		Search:     c.Query("search"),
		DueOnly:    c.Query("due_only") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if supplierIDStr := c.Query("supplier_id"); supplierIDStr != "" {
		if supplierID, err := uuid.Parse(supplierIDStr); err == nil {
			params.SupplierID = &supplierID
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

	purchases, total, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := params.Pagination
	result := pagination.NewPaginatedResult(purchases, pagination.NewPagination(p.Page, p.PerPage, total))
	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Payments lists the payment history of a purchase
func (h *PurchaseHandler) Payments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	payments, err := h.ledgerService.ListPaymentsForBillable(c.Request.Context(), enum.BillableKindPurchase, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// Delete handles deleting a purchase without recorded payments
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase deleted successfully", nil)
}
