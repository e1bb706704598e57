package update_table_config

import (
	"context"

	"github.com/nst1k/RST-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	UpsertTableConfig(ctx context.Context, req *models.UpsertTableConfigRequest) (*models.TableConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
