package masters

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
)

// Service сервис для работы с мастерами
type Service struct {
	masterRepo      MasterRepository
	appointmentRepo AppointmentRepository
	workSlotRepo    WorkSlotRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(
	masterRepo MasterRepository,
	appointmentRepo AppointmentRepository,
	workSlotRepo WorkSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		masterRepo:      masterRepo,
		appointmentRepo: appointmentRepo,
		workSlotRepo:    workSlotRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	m, err := s.masterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			return nil, ErrMasterNotFound
		}
		s.logger.Error("GetByID: repository error for master id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return m, nil
}

// Delete удаляет мастера вместе со связями с процедурами.
// Удаление блокируется будущими активными записями и будущими
// рабочими окнами: сначала их нужно отменить или удалить.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting master id=%d", id)

	if _, err := s.masterRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			s.logger.Warn("Delete: master id=%d not found", id)
			return ErrMasterNotFound
		}
		s.logger.Error("Delete: repository error for master id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	appointmentCount, err := s.appointmentRepo.CountActiveFrom(ctx, id, now)
	if err != nil {
		s.logger.Error("Delete: failed to count appointments for master id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count appointments: %v", ErrInternal, err)
	}
	if appointmentCount > 0 {
		s.logger.Warn("Delete: master id=%d has %d future active appointments", id, appointmentCount)
		return ErrMasterHasAppointments
	}

	slotCount, err := s.workSlotRepo.CountFutureByMaster(ctx, id, now)
	if err != nil {
		s.logger.Error("Delete: failed to count work slots for master id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count work slots: %v", ErrInternal, err)
	}
	if slotCount > 0 {
		s.logger.Warn("Delete: master id=%d has %d future work slots", id, slotCount)
		return ErrMasterHasWorkSlots
	}

	// Связи с процедурами и сам мастер удаляются атомарно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.masterRepo.DeleteProcedureLinks(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete procedure links: %v", ErrInternal, err)
		}
		if err := s.masterRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, masterRepo.ErrMasterNotFound) {
				return ErrMasterNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("Delete: failed to delete master id=%d: %v", id, err)
		return err
	}

	s.logger.Info("Delete: successfully deleted master id=%d", id)
	return nil
}
