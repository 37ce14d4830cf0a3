package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
)

// RoomHandler handles room-related HTTP requests
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// Create handles creating a room
func (h *RoomHandler) Create(c *gin.Context) {
	var req struct {
		Number    string  `json:"number" binding:"required"`
		Type      string  `json:"type"`
		DailyRate float64 `json:"daily_rate" binding:"gte=0"`
		Notes     *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &service.CreateRoomInput{
		Number:    req.Number,
		Type:      req.Type,
		DailyRate: req.DailyRate,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Room created successfully", room)
}

// Get handles retrieving a room by ID
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room retrieved successfully", room)
}

// Update handles updating a room
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	var req struct {
		Number    *string  `json:"number"`
		Type      *string  `json:"type"`
		DailyRate *float64 `json:"daily_rate"`
		Notes     *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), id, &service.UpdateRoomInput{
		Number:    req.Number,
		Type:      req.Type,
		DailyRate: req.DailyRate,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room updated successfully", room)
}

// Delete handles deleting a room
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room deleted successfully", nil)
}

// List handles listing rooms
func (h *RoomHandler) List(c *gin.Context) {
	params := getPagination(c)
	availableOnly := c.Query("available") == "true"

	rooms, total, err := h.roomService.ListRooms(c.Request.Context(), params, availableOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(rooms, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Rooms retrieved successfully", result)
}
