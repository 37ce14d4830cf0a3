package repository

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
)

// SettingsRepository defines the interface for business settings access.
// A single settings row exists per deployment.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.BusinessSettings, error)
	Create(ctx context.Context, settings *entity.BusinessSettings) error
	Update(ctx context.Context, settings *entity.BusinessSettings) error
}
