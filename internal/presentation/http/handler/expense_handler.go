package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Category    string     `json:"category" binding:"required"`
		Description string     `json:"description" binding:"required"`
		Amount      float64    `json:"amount" binding:"required,gt=0"`
		Method      string     `json:"method"`
		ExpenseDate *time.Time `json:"expense_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		UserID:      *userID,
		Category:    enum.ExpenseCategory(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		Method:      enum.PaymentMethod(req.Method),
		ExpenseDate: req.ExpenseDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Get handles retrieving an expense by ID
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req struct {
		Category    *string    `json:"category"`
		Description *string    `json:"description"`
		Amount      *float64   `json:"amount"`
		Method      *string    `json:"method"`
		ExpenseDate *time.Time `json:"expense_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
	}
	if req.Category != nil {
		category := enum.ExpenseCategory(*req.Category)
		input.Category = &category
	}
	if req.Method != nil {
		method := enum.PaymentMethod(*req.Method)
		input.Method = &method
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	params := &repository.ExpenseFilterParams{
		Pagination: getPagination(c),
		Search:     c.Query("search"),
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		category := enum.ExpenseCategory(categoryStr)
		if !category.IsValid() {
			response.BadRequest(c, "Invalid expense category")
			return
		}
		params.Category = &category
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

	expenses, total, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := params.Pagination
	result := pagination.NewPaginatedResult(expenses, pagination.NewPagination(p.Page, p.PerPage, total))
	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}
