package workplaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
)

// Service сервис для работы с рабочими местами
type Service struct {
	workplaceRepo   WorkplaceRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса рабочих мест
func NewService(workplaceRepo WorkplaceRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		workplaceRepo:   workplaceRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает рабочее место по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Workplace, error) {
	wp, err := s.workplaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, workplaceRepo.ErrWorkplaceNotFound) {
			return nil, ErrWorkplaceNotFound
		}
		s.logger.Error("GetByID: repository error for workplace id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return wp, nil
}

// Delete удаляет рабочее место. Место с историей записей (любого
// статуса) не удаляется физически, а деактивируется: история должна
// оставаться читаемой. Возвращает true, если место было деактивировано
// вместо удаления.
func (s *Service) Delete(ctx context.Context, id int64) (deactivated bool, err error) {
	s.logger.Info("Delete: deleting workplace id=%d", id)

	if _, err := s.workplaceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, workplaceRepo.ErrWorkplaceNotFound) {
			s.logger.Warn("Delete: workplace id=%d not found", id)
			return false, ErrWorkplaceNotFound
		}
		s.logger.Error("Delete: repository error for workplace id=%d: %v", id, err)
		return false, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	historyCount, err := s.appointmentRepo.CountByWorkplace(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count appointments for workplace id=%d: %v", id, err)
		return false, fmt.Errorf("%w: Delete - failed to count appointments: %v", ErrInternal, err)
	}

	if historyCount > 0 {
		if err := s.workplaceRepo.Deactivate(ctx, id); err != nil {
			s.logger.Error("Delete: failed to deactivate workplace id=%d: %v", id, err)
			return false, fmt.Errorf("%w: Delete - failed to deactivate: %v", ErrInternal, err)
		}
		s.logger.Info("Delete: workplace id=%d has %d appointments in history, deactivated instead", id, historyCount)
		return true, nil
	}

	if err := s.workplaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, workplaceRepo.ErrWorkplaceNotFound) {
			return false, ErrWorkplaceNotFound
		}
		s.logger.Error("Delete: repository error for workplace id=%d: %v", id, err)
		return false, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted workplace id=%d", id)
	return false, nil
}
