package get_settings

import (
	"context"

	"github.com/nst1k/RST-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	GetSettings(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
