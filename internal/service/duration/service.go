package duration

import (
	"context"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// Service сервис расчёта длительности записи
type Service struct {
	procedureRepo ProcedureRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса расчёта длительности
func NewService(procedureRepo ProcedureRepository, logger Logger) *Service {
	return &Service{
		procedureRepo: procedureRepo,
		logger:        logger,
	}
}

// Calculate вычисляет длительность записи по списку процедур.
//
// Никогда не возвращает ошибку: при недоступности хранилища деградирует
// к дефолтной длительности, неизвестные процедуры дают вклад 0 минут.
func (s *Service) Calculate(ctx context.Context, procedureIDs []int64, timeCoeff float64, isFirstVisit bool) int {
	procedures, err := s.procedureRepo.GetByIDs(ctx, procedureIDs)
	if err != nil {
		s.logger.Error("Calculate: failed to load procedures %v, falling back to default duration: %v", procedureIDs, err)
		return domain.DefaultDurationMinutes
	}

	if len(procedures) < len(procedureIDs) {
		s.logger.Warn("Calculate: %d of %d procedures not found, ids=%v", len(procedureIDs)-len(procedures), len(procedureIDs), procedureIDs)
	}

	procedureMinutes := 0
	for _, p := range procedures {
		procedureMinutes += p.Duration
	}

	return ComputeMinutes(procedureMinutes, timeCoeff, isFirstVisit)
}
