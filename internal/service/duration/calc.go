package duration

import (
	"math"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// ComputeMinutes вычисляет длительность записи в минутах.
//
// Коэффициент клиента применяется только к сумме длительностей процедур,
// фиксированные надбавки (консультация, буфер) не масштабируются.
// Результат округляется вверх до кратного 15 минутам, минимум 30 минут.
func ComputeMinutes(procedureMinutes int, timeCoeff float64, isFirstVisit bool) int {
	if timeCoeff <= 0 {
		timeCoeff = domain.DefaultTimeCoeff
	}

	total := roundUpTo(int(math.Ceil(float64(procedureMinutes)*timeCoeff)), domain.DurationRoundingMinutes)

	if isFirstVisit {
		total += domain.FirstVisitOverheadMinutes
	}
	total += domain.AppointmentBufferMinutes

	if total < domain.MinAppointmentMinutes {
		total = domain.MinAppointmentMinutes
	}

	return total
}

// roundUpTo округляет v вверх до ближайшего кратного step
func roundUpTo(v, step int) int {
	if v%step == 0 {
		return v
	}
	return (v/step + 1) * step
}
