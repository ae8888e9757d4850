package workslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
	workslotRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workslot"
)

// Service сервис для работы с рабочими окнами мастеров
type Service struct {
	workSlotRepo    WorkSlotRepository
	appointmentRepo AppointmentRepository
	masterRepo      MasterRepository
	workplaceRepo   WorkplaceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса рабочих окон
func NewService(
	workSlotRepo WorkSlotRepository,
	appointmentRepo AppointmentRepository,
	masterRepo MasterRepository,
	workplaceRepo WorkplaceRepository,
	logger Logger,
) *Service {
	return &Service{
		workSlotRepo:    workSlotRepo,
		appointmentRepo: appointmentRepo,
		masterRepo:      masterRepo,
		workplaceRepo:   workplaceRepo,
		logger:          logger,
	}
}

// Create создает рабочее окно мастера на рабочем месте
func (s *Service) Create(ctx context.Context, slot *domain.WorkSlot) (*domain.WorkSlot, error) {
	s.logger.Info("Create: work slot for master=%d, workplace=%d, %s - %s",
		slot.MasterID, slot.WorkplaceID,
		slot.StartTime.Format(domain.DateTimeFormat), slot.EndTime.Format(domain.DateTimeFormat))

	if slot.MasterID <= 0 || slot.WorkplaceID <= 0 {
		return nil, fmt.Errorf("%w: masterID and workplaceID must be positive", ErrInvalidInput)
	}
	if slot.StartTime.IsZero() || slot.EndTime.IsZero() || !slot.EndTime.After(slot.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if _, err := s.masterRepo.GetByID(ctx, slot.MasterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			s.logger.Warn("Create: master id=%d not found", slot.MasterID)
			return nil, ErrMasterNotFound
		}
		s.logger.Error("Create: failed to get master id=%d: %v", slot.MasterID, err)
		return nil, fmt.Errorf("%w: Create - failed to get master: %v", ErrInternal, err)
	}

	workplace, err := s.workplaceRepo.GetByID(ctx, slot.WorkplaceID)
	if err != nil {
		if errors.Is(err, workplaceRepo.ErrWorkplaceNotFound) {
			s.logger.Warn("Create: workplace id=%d not found", slot.WorkplaceID)
			return nil, ErrWorkplaceNotFound
		}
		s.logger.Error("Create: failed to get workplace id=%d: %v", slot.WorkplaceID, err)
		return nil, fmt.Errorf("%w: Create - failed to get workplace: %v", ErrInternal, err)
	}

	if !workplace.IsActive {
		s.logger.Warn("Create: workplace id=%d is inactive", slot.WorkplaceID)
		return nil, ErrWorkplaceInactive
	}

	created, err := s.workSlotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created work slot id=%d", created.ID)
	return created, nil
}

// List получает рабочие окна с фильтрацией по мастеру и периоду
func (s *Service) List(ctx context.Context, filter domain.WorkSlotsFilter) ([]*domain.WorkSlot, error) {
	slots, err := s.workSlotRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d work slots", len(slots))
	return slots, nil
}

// Delete удаляет рабочее окно. Окно с активными (неотменёнными и
// незавершёнными) записями внутри удалить нельзя — сначала нужно
// отменить или перенести записи.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting work slot id=%d", id)

	slot, err := s.workSlotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, workslotRepo.ErrWorkSlotNotFound) {
			s.logger.Warn("Delete: work slot id=%d not found", id)
			return ErrWorkSlotNotFound
		}
		s.logger.Error("Delete: repository error for work slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	activeCount, err := s.appointmentRepo.CountActiveWithin(ctx, slot.MasterID, slot.StartTime, slot.EndTime)
	if err != nil {
		s.logger.Error("Delete: failed to count appointments for work slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count appointments: %v", ErrInternal, err)
	}

	if activeCount > 0 {
		s.logger.Warn("Delete: work slot id=%d has %d active appointments", id, activeCount)
		return ErrSlotHasAppointments
	}

	if err := s.workSlotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, workslotRepo.ErrWorkSlotNotFound) {
			return ErrWorkSlotNotFound
		}
		s.logger.Error("Delete: repository error for work slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted work slot id=%d", id)
	return nil
}
