package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
)

// PaymentHandler handles payment ledger HTTP requests
type PaymentHandler struct {
	ledgerService *service.LedgerService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(ledgerService *service.LedgerService) *PaymentHandler {
	return &PaymentHandler{ledgerService: ledgerService}
}

// Record appends a payment against a sale or purchase
func (h *PaymentHandler) Record(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		BillableID string  `json:"billable_id" binding:"required"`
		Kind       string  `json:"kind" binding:"required,oneof=sale purchase"`
		Amount     float64 `json:"amount" binding:"required,gt=0"`
		Method     string  `json:"method"`
		Note       *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	billableID, err := uuid.Parse(req.BillableID)
	if err != nil {
		response.BadRequest(c, "Invalid billable ID")
		return
	}

	output, err := h.ledgerService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		UserID:     *userID,
		BillableID: billableID,
		Kind:       enum.BillableKind(req.Kind),
		Amount:     req.Amount,
		Method:     enum.PaymentMethod(req.Method),
		Note:       req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", gin.H{
		"payment":     output.Payment,
		"new_balance": float64(output.NewBalance) / 100,
	})
}

// RecordForBillable returns a handler that records a payment against
// the sale or purchase named in the route, so clients don't have to
// repeat the kind and ID in the body.
func (h *PaymentHandler) RecordForBillable(kind enum.BillableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == nil {
			response.Unauthorized(c, "User not authenticated")
			return
		}

		billableID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.BadRequest(c, "Invalid ID")
			return
		}

		var req struct {
			Amount float64 `json:"amount" binding:"required,gt=0"`
			Method string  `json:"method"`
			Note   *string `json:"note"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		output, err := h.ledgerService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
			UserID:     *userID,
			BillableID: billableID,
			Kind:       kind,
			Amount:     req.Amount,
			Method:     enum.PaymentMethod(req.Method),
			Note:       req.Note,
		})
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Created(c, "Payment recorded successfully", gin.H{
			"payment":     output.Payment,
			"new_balance": float64(output.NewBalance) / 100,
		})
	}
}

// List handles listing payment records
func (h *PaymentHandler) List(c *gin.Context) {
	params := getPagination(c)

	var kind *enum.BillableKind
	if kindStr := c.Query("kind"); kindStr != "" {
		k := enum.BillableKind(kindStr)
		if !k.IsValid() {
			response.BadRequest(c, "Invalid billable kind")
			return
		}
		kind = &k
	}

	payments, total, err := h.ledgerService.ListPayments(c.Request.Context(), params, kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(payments, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}
