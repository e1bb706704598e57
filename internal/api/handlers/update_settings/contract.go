package update_settings

import (
	"context"

	"github.com/nst1k/RST-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
