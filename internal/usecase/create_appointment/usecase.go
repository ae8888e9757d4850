package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	clientRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/client"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	masterRepo      MasterRepository
	workplaceRepo   WorkplaceRepository
	durationService DurationService
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	masterRepo MasterRepository,
	workplaceRepo WorkplaceRepository,
	durationService DurationService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		masterRepo:      masterRepo,
		workplaceRepo:   workplaceRepo,
		durationService: durationService,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка идут в сериализуемой транзакции
// с блокировкой записей мастера на день (FOR UPDATE): из двух
// конкурентных запросов на одно время второй получает ErrTimeConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, master=%d, workplace=%d, start=%s",
		req.ClientID, req.MasterID, req.WorkplaceID, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем времена: смещение пояса отбрасывается, не конвертируется
	startTime := naiveLocal(req.StartTime)

	// 3. Проверяем существование клиента (и берём его факторы длительности)
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Проверяем существование мастера
	if _, err := uc.masterRepo.GetByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("CreateAppointment: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 5. Проверяем существование рабочего места
	if _, err := uc.workplaceRepo.GetByID(ctx, req.WorkplaceID); err != nil {
		if errors.Is(err, workplaceRepo.ErrWorkplaceNotFound) {
			uc.logger.Warn("CreateAppointment: workplace id=%d not found", req.WorkplaceID)
			return nil, ErrWorkplaceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get workplace id=%d: %v", req.WorkplaceID, err)
		return nil, fmt.Errorf("%w: failed to get workplace: %v", ErrInternal, err)
	}

	// 6. Определяем время окончания: либо переданное, либо
	// начало + рассчитанная длительность
	var endTime time.Time
	if req.EndTime != nil {
		endTime = naiveLocal(*req.EndTime)
	} else {
		durationMinutes := uc.durationService.Calculate(ctx, req.ProcedureIDs, client.TimeCoeff, client.IsFirstVisit)
		endTime = startTime.Add(time.Duration(durationMinutes) * time.Minute)
	}

	var result *domain.Appointment

	// 7. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Блокируем неотменённые записи мастера на день (FOR UPDATE)
		dayStart := time.Date(startTime.Year(), startTime.Month(), startTime.Day(), 0, 0, 0, 0, startTime.Location())
		dayEnd := dayStart.Add(24*time.Hour - time.Second)

		filter := domain.AppointmentsFilter{
			MasterID:        &req.MasterID,
			From:            &dayStart,
			To:              &dayEnd,
			ExcludeCanceled: true,
		}

		existing, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 7.2. Любое пересечение интервалов [start, end) означает конфликт
		for _, appt := range existing {
			if appt.Overlaps(startTime, endTime) {
				uc.logger.Warn("CreateAppointment: time conflict with appointment id=%d (%s - %s)",
					appt.ID, appt.StartTime.Format(domain.DateTimeFormat), appt.EndTime.Format(domain.DateTimeFormat))
				return ErrTimeConflict
			}
		}

		// 7.3. Создаем запись
		appointment := &domain.Appointment{
			ClientID:    req.ClientID,
			MasterID:    req.MasterID,
			WorkplaceID: req.WorkplaceID,
			Procedures:  req.ProcedureIDs,
			StartTime:   startTime,
			EndTime:     endTime,
			Status:      domain.StatusActive,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		MasterID:     result.MasterID,
		WorkplaceID:  result.WorkplaceID,
		ProcedureIDs: result.Procedures,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
