package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/dto/response"
)

// SettingsHandler handles business settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the business settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update updates the business settings. Tax changes apply to future
// bill computations only.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		PropertyName *string  `json:"property_name"`
		Address      *string  `json:"address"`
		Phone        *string  `json:"phone"`
		Currency     *string  `json:"currency"`
		TaxEnabled   *bool    `json:"tax_enabled"`
		TaxRate      *float64 `json:"tax_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		PropertyName: req.PropertyName,
		Address:      req.Address,
		Phone:        req.Phone,
		Currency:     req.Currency,
		TaxEnabled:   req.TaxEnabled,
		TaxRate:      req.TaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
