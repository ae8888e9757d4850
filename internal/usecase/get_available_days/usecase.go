package get_available_days

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// UseCase use case для получения дней, в которые мастер принимает
type UseCase struct {
	workSlotRepo WorkSlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(workSlotRepo WorkSlotRepository, logger Logger) *UseCase {
	return &UseCase{
		workSlotRepo: workSlotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дней.
//
// День доступен, если у мастера есть рабочее окно, начинающееся в этот
// день — существующие записи не учитываются. День со всеми занятыми
// слотами всё равно попадает в список: точный ответ на уровне слотов
// даёт GetAvailableSlots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.MasterID <= 0 {
		return nil, fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	daysCount := req.DaysCount
	if daysCount <= 0 {
		daysCount = domain.DefaultDaysCount
	}
	if daysCount > domain.MaxDaysCount {
		return nil, fmt.Errorf("%w: days count must not exceed %d", ErrInvalidInput, domain.MaxDaysCount)
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = uc.timeProvider.Now()
	}

	from := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	to := from.AddDate(0, 0, daysCount)

	uc.logger.Info("GetAvailableDays: master=%d, from=%s, days=%d",
		req.MasterID, from.Format(domain.DateFormat), daysCount)

	response := &Response{
		MasterID: req.MasterID,
		Days:     []time.Time{},
	}

	workSlots, err := uc.workSlotRepo.ListStartingBetween(ctx, req.MasterID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get work slots for master=%d: %v", req.MasterID, err)
		return response, nil
	}

	seen := make(map[time.Time]struct{}, len(workSlots))
	for _, ws := range workSlots {
		day := ws.Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		response.Days = append(response.Days, day)
	}

	sort.Slice(response.Days, func(i, j int) bool {
		return response.Days[i].Before(response.Days[j])
	})

	uc.logger.Info("GetAvailableDays: master=%d has %d available days", req.MasterID, len(response.Days))

	return response, nil
}
