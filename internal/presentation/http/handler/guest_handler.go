package handler

import (
	"strconv"
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

// GuestHandler handles guest stay HTTP requests
type GuestHandler struct {
	guestService *service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// CheckIn handles registering a guest stay
func (h *GuestHandler) CheckIn(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CheckInInput{
		UserID:   *userID,
		Name:     req.Name,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
		Address:  req.Address,
		CheckIn:  req.CheckIn,
	}

	if req.RoomID != "" {
		roomID, err := uuid.Parse(req.RoomID)
		if err != nil {
			response.BadRequest(c, "Invalid room ID")
			return
		}
		input.RoomID = &roomID
	}

	guest, err := h.guestService.CheckIn(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Guest checked in successfully", guest)
}

// Get handles retrieving a guest by ID
func (h *GuestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest retrieved successfully", guest)
}

// Update handles updating guest contact details
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		IDNumber *string `json:"id_number"`
		Address  *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), id, &service.UpdateGuestInput{
		Name:     req.Name,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
		Address:  req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest updated successfully", guest)
}

// List handles listing guests
func (h *GuestHandler) List(c *gin.Context) {
	params := &repository.GuestFilterParams{
		Pagination: getPagination(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	switch c.Query("status") {
	case "checked_in":
		status := enum.StayStatusCheckedIn
		params.Status = &status
	case "checked_out":
		status := enum.StayStatusCheckedOut
		params.Status = &status
	}

	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		if roomID, err := uuid.Parse(roomIDStr); err == nil {
			params.RoomID = &roomID
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

	guests, total, err := h.guestService.ListGuests(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := params.Pagination
	result := pagination.NewPaginatedResult(guests, pagination.NewPagination(p.Page, p.PerPage, total))
	response.SuccessWithPagination(c, 200, "Guests retrieved successfully", result)
}

// BillPreview returns the current bill for a checked-in guest without
// persisting anything. An optional discount can be supplied via query
// parameters to preview its effect.
func (h *GuestHandler) BillPreview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	var discount *service.DiscountInput
	if discountType := c.Query("discount_type"); discountType != "" {
		amount, err := strconv.ParseFloat(c.Query("discount_amount"), 64)
		if err != nil {
			response.BadRequest(c, "Invalid discount amount")
			return
		}
		discount = &service.DiscountInput{
			Type:   enum.DiscountType(discountType),
			Amount: amount,
		}
	}

	preview, err := h.guestService.PreviewBill(c.Request.Context(), id, discount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill preview computed", preview)
}

// Checkout closes a guest stay and settles the bill
func (h *GuestHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CheckoutInput{
		UserID:  *userID,
		GuestID: id,
		Method:  enum.PaymentMethod(req.Method),
	}
	if req.Discount != nil {
		input.Discount = &service.DiscountInput{
			Type:        enum.DiscountType(req.Discount.Type),
			Amount:      req.Discount.Amount,
			Description: req.Discount.Description,
		}
	}

	guest, err := h.guestService.Checkout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest checked out successfully", guest)
}

// Delete handles removing a guest record
func (h *GuestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest deleted successfully", nil)
}
