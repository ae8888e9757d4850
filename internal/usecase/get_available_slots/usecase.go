package get_available_slots

import (
	"context"
	"errors"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	clientRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/client"
)

// UseCase use case для получения доступных слотов записи к мастеру
type UseCase struct {
	workSlotRepo    WorkSlotRepository
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	durationService DurationService
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workSlotRepo WorkSlotRepository,
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	durationService DurationService,
	logger Logger,
) *UseCase {
	return &UseCase{
		workSlotRepo:    workSlotRepo,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		durationService: durationService,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Существование мастера здесь не проверяется: для неизвестного мастера
// просто нет рабочих окон и ответ пуст. Ошибки хранилища деградируют
// к пустому списку слотов, а не к отказу запроса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, date=%s, procedures=%v",
		req.MasterID, req.Date.Format(domain.DateFormat), req.ProcedureIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем коэффициент клиента и признак первого визита
	timeCoeff, isFirstVisit := uc.resolveClientFactors(ctx, req.ClientID)

	// 3. Рассчитываем длительность записи
	durationMinutes := uc.durationService.Calculate(ctx, req.ProcedureIDs, timeCoeff, isFirstVisit)
	duration := time.Duration(durationMinutes) * time.Minute

	response := &Response{
		MasterID:        req.MasterID,
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           []time.Time{},
	}

	// 4. Получаем рабочие окна мастера на день
	workSlots, err := uc.workSlotRepo.ListByMasterAndDay(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get work slots for master=%d: %v", req.MasterID, err)
		return response, nil
	}

	if len(workSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: master=%d has no work slots on %s",
			req.MasterID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Получаем неотменённые записи мастера на день, по возрастанию start_time
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	filter := domain.AppointmentsFilter{
		MasterID:        &req.MasterID,
		From:            &dayStart,
		To:              &dayEnd,
		ExcludeCanceled: true,
	}

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for master=%d: %v", req.MasterID, err)
		return response, nil
	}

	// 6. Генерируем кандидатов по каждому окну и объединяем
	candidates := make([]time.Time, 0)
	for _, ws := range workSlots {
		candidates = append(candidates, generateStartTimes(ws, appointments, duration)...)
	}

	response.Slots = mergeStartTimes(candidates)

	uc.logger.Info("GetAvailableSlots: generated %d slots for master=%d, date=%s, duration=%d",
		len(response.Slots), req.MasterID, req.Date.Format(domain.DateFormat), durationMinutes)

	return response, nil
}

// resolveClientFactors возвращает коэффициент времени и признак первого
// визита. Без клиента (или если клиент не найден) используются дефолты.
func (uc *UseCase) resolveClientFactors(ctx context.Context, clientID *int64) (float64, bool) {
	if clientID == nil {
		return domain.DefaultTimeCoeff, domain.DefaultFirstVisit
	}

	c, err := uc.clientRepo.GetByID(ctx, *clientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("GetAvailableSlots: client id=%d not found, using defaults", *clientID)
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get client id=%d, using defaults: %v", *clientID, err)
		}
		return domain.DefaultTimeCoeff, domain.DefaultFirstVisit
	}

	return c.TimeCoeff, c.IsFirstVisit
}
