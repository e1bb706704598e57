package closures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	closureRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/closure"
)

// Service сервис для чтения и удаления закрытий
// Создание закрытия идёт через usecase apply_closure: оно требует
// разрешения конфликтов с уже подтверждёнными бронями
type Service struct {
	closureRepo ClosureRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(closureRepo ClosureRepository, logger Logger) *Service {
	return &Service{
		closureRepo: closureRepo,
		logger:      logger,
	}
}

// List возвращает закрытия: все или на конкретную дату
func (s *Service) List(ctx context.Context, date *time.Time) (*ClosureListResponse, error) {
	var closures []*domain.Closure
	var err error

	if date != nil {
		s.logger.Info("List: fetching closures for date=%s", date.Format(domain.DateFormat))
		closures, err = s.closureRepo.GetByDate(ctx, *date)
	} else {
		s.logger.Info("List: fetching all closures")
		closures, err = s.closureRepo.GetAll(ctx)
	}

	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return FromDomainClosureList(closures), nil
}

// Delete удаляет закрытие
// Отменённые при его применении брони не восстанавливаются автоматически
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting closure id=%d", id)

	if err := s.closureRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("Delete: closure id=%d not found", id)
			return ErrClosureNotFound
		}
		s.logger.Error("Delete: repository error for closure id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted closure id=%d", id)
	return nil
}
