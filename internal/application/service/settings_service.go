package service

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
)

// SettingsService manages the singleton business settings row. Billing
// computations read settings fresh through here on every run.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the business settings, creating the row with
// defaults if the seed never ran
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.BusinessSettings{
			PropertyName: "My Hotel",
			Currency:     "PKR",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	PropertyName *string
	Address      *string
	Phone        *string
	Currency     *string
	TaxEnabled   *bool
	TaxRate      *float64
}

// UpdateSettings updates the business settings. Changing the tax
// configuration affects future computations only; cached bills keep
// the rate they were computed with.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.BusinessSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.PropertyName != nil {
		settings.PropertyName = *input.PropertyName
	}
	if input.Address != nil {
		settings.Address = input.Address
	}
	if input.Phone != nil {
		settings.Phone = input.Phone
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.TaxEnabled != nil {
		settings.TaxEnabled = *input.TaxEnabled
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate > 100 {
			return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
		}
		settings.TaxRate = *input.TaxRate
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
