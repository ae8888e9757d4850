package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/appointment"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return appt, nil
}

// List получает записи с фильтрацией по клиенту и/или мастеру
func (s *Service) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return appointments, nil
}

// Cancel отменяет запись. Операция идемпотентна: повторная отмена уже
// отменённой записи не ошибка. Освободившееся время само появится в
// следующих запросах доступных слотов — отменённые записи там фильтруются.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.IsCanceled() {
		s.logger.Info("Cancel: appointment id=%d is already canceled", id)
		return nil
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCanceled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// UpdateStatus обновляет статус записи
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, status)

	if !domain.ValidStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CompleteExpired переводит активные записи с прошедшим временем
// окончания в статус completed. Возвращает число обновлённых записей.
func (s *Service) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	completed, err := s.appointmentRepo.CompleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("CompleteExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: CompleteExpired - repository error: %v", ErrInternal, err)
	}

	if completed > 0 {
		s.logger.Info("CompleteExpired: marked %d appointments as completed", completed)
	}

	return completed, nil
}
