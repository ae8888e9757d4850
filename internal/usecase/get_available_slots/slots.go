package get_available_slots

import (
	"sort"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// generateStartTimes генерирует кандидатов начала записи внутри одного
// рабочего окна мастера.
//
// Это квантованный обход, а не точное вычисление свободных интервалов:
// кандидаты предлагаются с шагом в час от начала окна, плюс один кандидат
// сразу после существующей записи (конец записи + буфер, округлённый вверх
// до четверти часа). Нерегулярные свободные промежутки между часовыми
// отметками сознательно пропускаются — клиенту предлагается предсказуемая
// сетка, а не каждая техническая дыра в расписании.
//
// appointments должны быть отсортированы по start_time по возрастанию
// и не содержать отменённых записей.
func generateStartTimes(ws *domain.WorkSlot, appointments []*domain.Appointment, duration time.Duration) []time.Time {
	step := time.Duration(domain.SlotStepMinutes) * time.Minute
	buffer := time.Duration(domain.AppointmentBufferMinutes) * time.Minute

	result := make([]time.Time, 0)
	cursor := ws.StartTime

	for _, appt := range appointments {
		// Учитываем только записи, начинающиеся внутри этого окна
		if !ws.Contains(appt.StartTime) {
			continue
		}

		// Кандидаты до начала записи: часовой шаг, запись не должна
		// пересекаться с кандидатом
		for cursor.Before(appt.StartTime) {
			if !cursor.Add(duration).After(appt.StartTime) && fitsWindow(cursor, duration, ws.EndTime) {
				result = append(result, cursor)
			}
			cursor = cursor.Add(step)
		}

		// После записи курсор прыгает на её конец + буфер,
		// округлённый вверх до четверти часа
		next := snapUpToQuarterHour(appt.EndTime.Add(buffer))
		if next.After(cursor) {
			cursor = next
		}
	}

	// Хвост окна после последней записи (или всё окно, если записей нет)
	for fitsWindow(cursor, duration, ws.EndTime) {
		result = append(result, cursor)
		cursor = cursor.Add(step)
	}

	return result
}

// fitsWindow проверяет, что кандидат start помещается в окно до windowEnd:
// сама запись должна закончиться не позже конца окна, и от начала кандидата
// до конца окна должен оставаться хотя бы час — запись впритык к закрытию
// не предлагается. Ровно час до конца окна допустим.
func fitsWindow(start time.Time, duration time.Duration, windowEnd time.Time) bool {
	guard := time.Duration(domain.ClosingGuardMinutes) * time.Minute

	if start.Add(guard).After(windowEnd) {
		return false
	}
	return !start.Add(duration).After(windowEnd)
}

// snapUpToQuarterHour округляет t вверх до ближайшей четверти часа
func snapUpToQuarterHour(t time.Time) time.Time {
	snap := time.Duration(domain.SlotSnapMinutes) * time.Minute
	rounded := t.Truncate(snap)
	if rounded.Equal(t) {
		return t
	}
	return rounded.Add(snap)
}

// mergeStartTimes объединяет кандидатов из всех окон дня:
// убирает дубликаты и сортирует по возрастанию
func mergeStartTimes(candidates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(candidates))
	merged := make([]time.Time, 0, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		merged = append(merged, c)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Before(merged[j])
	})

	return merged
}
