package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
)

// OrderHandler handles food order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles creating a food order for a checked-in guest
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		GuestID string `json:"guest_id" binding:"required"`
		Items   []struct {
			Name      string  `json:"name" binding:"required"`
			Quantity  int     `json:"quantity" binding:"required,gt=0"`
			UnitPrice float64 `json:"unit_price" binding:"gte=0"`
		} `json:"items" binding:"required,min=1,dive"`
		Method string `json:"method"`
		PayNow bool   `json:"pay_now"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:  *userID,
		GuestID: guestID,
		Items:   items,
		Method:  enum.PaymentMethod(req.Method),
		PayNow:  req.PayNow,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving a food order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing food orders
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.FoodOrderFilterParams{
		Pagination: getPagination(c),
		Search:     c.Query("search"),
	}

	if guestIDStr := c.Query("guest_id"); guestIDStr != "" {
		if guestID, err := uuid.Parse(guestIDStr); err == nil {
			params.GuestID = &guestID
		}
	}

	switch c.Query("paid") {
	case "true":
		paid := true
		params.Paid = &paid
	case "false":
		paid := false
		params.Paid = &paid
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := params.Pagination
	result := pagination.NewPaginatedResult(orders, pagination.NewPagination(p.Page, p.PerPage, total))
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// TogglePayment flips the paid flag of a food order
func (h *OrderHandler) TogglePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.TogglePayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Order marked as unpaid"
	if order.Paid {
		message = "Order marked as paid"
	}
	response.OK(c, message, order)
}

// Delete handles deleting a food order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}
