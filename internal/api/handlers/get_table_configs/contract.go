package get_table_configs

import (
	"context"

	"github.com/nst1k/RST-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	GetTableConfigs(ctx context.Context) (*models.TableConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
