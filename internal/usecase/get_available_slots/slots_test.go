package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func workSlot(start, end time.Time) *domain.WorkSlot {
	return &domain.WorkSlot{
		ID:          1,
		MasterID:    1,
		WorkplaceID: 1,
		StartTime:   start,
		EndTime:     end,
	}
}

func appointment(start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		MasterID:    1,
		WorkplaceID: 1,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.StatusActive,
	}
}

func TestGenerateStartTimes_EmptyWindow(t *testing.T) {
	// Окно 09:00-13:00 без записей: часовая сетка, ровно час до
	// закрытия допустим, поэтому 12:00 входит
	ws := workSlot(at(9, 0), at(13, 0))

	got := generateStartTimes(ws, nil, 60*time.Minute)

	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(11, 0), at(12, 0)}, got)
}

func TestGenerateStartTimes_AroundAppointment(t *testing.T) {
	// Окно 09:00-13:00, запись 10:00-11:00: до записи помещается только
	// 09:00, после неё курсор прыгает на 11:00+15мин=11:15, следующий
	// часовой кандидат 12:15 уже не оставляет часа до закрытия
	ws := workSlot(at(9, 0), at(13, 0))
	appts := []*domain.Appointment{appointment(at(10, 0), at(11, 0))}

	got := generateStartTimes(ws, appts, 60*time.Minute)

	assert.Equal(t, []time.Time{at(9, 0), at(11, 15)}, got)
}

func TestGenerateStartTimes_PostAppointmentSnapsUpToQuarterHour(t *testing.T) {
	// Запись кончается в 10:50: 10:50+15мин=11:05, округление вверх
	// до четверти часа даёт 11:15
	ws := workSlot(at(9, 0), at(14, 0))
	appts := []*domain.Appointment{appointment(at(10, 0), at(10, 50))}

	got := generateStartTimes(ws, appts, 60*time.Minute)

	assert.Equal(t, []time.Time{at(9, 0), at(11, 15), at(12, 15)}, got)
}

func TestGenerateStartTimes_ShortDurationStillNeedsHourBeforeClosing(t *testing.T) {
	// Запись на 30 минут всё равно не предлагается позже, чем за час
	// до конца окна
	ws := workSlot(at(9, 0), at(11, 30))

	got := generateStartTimes(ws, nil, 30*time.Minute)

	assert.Equal(t, []time.Time{at(9, 0), at(10, 0)}, got)
}

func TestGenerateStartTimes_DurationLongerThanWindow(t *testing.T) {
	ws := workSlot(at(9, 0), at(10, 0))

	got := generateStartTimes(ws, nil, 90*time.Minute)

	assert.Empty(t, got)
}

func TestGenerateStartTimes_CandidateMayTouchAppointmentStart(t *testing.T) {
	// Кандидат, заканчивающийся ровно в начале записи, не пересекается с ней
	ws := workSlot(at(9, 0), at(14, 0))
	appts := []*domain.Appointment{appointment(at(11, 0), at(12, 0))}

	got := generateStartTimes(ws, appts, 60*time.Minute)

	assert.Contains(t, got, at(10, 0))
	assert.NotContains(t, got, at(11, 0))
}

func TestGenerateStartTimes_IgnoresAppointmentsOutsideWindow(t *testing.T) {
	// Запись в другом окне того же дня не влияет на это окно
	ws := workSlot(at(9, 0), at(12, 0))
	appts := []*domain.Appointment{appointment(at(14, 0), at(15, 0))}

	got := generateStartTimes(ws, appts, 60*time.Minute)

	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(11, 0)}, got)
}

func TestGenerateStartTimes_NoCandidateOverlapsAppointments(t *testing.T) {
	ws := workSlot(at(9, 0), at(20, 0))
	appts := []*domain.Appointment{
		appointment(at(10, 30), at(11, 10)),
		appointment(at(13, 0), at(14, 40)),
		appointment(at(16, 15), at(17, 0)),
	}
	duration := 45 * time.Minute

	got := generateStartTimes(ws, appts, duration)

	require.NotEmpty(t, got)
	for _, start := range got {
		end := start.Add(duration)
		for _, appt := range appts {
			assert.False(t, appt.Overlaps(start, end),
				"candidate %s overlaps appointment %s-%s",
				start.Format("15:04"), appt.StartTime.Format("15:04"), appt.EndTime.Format("15:04"))
		}
		assert.False(t, start.Before(ws.StartTime))
		assert.False(t, end.After(ws.EndTime))
	}
}

func TestGenerateStartTimes_Deterministic(t *testing.T) {
	ws := workSlot(at(9, 0), at(18, 0))
	appts := []*domain.Appointment{
		appointment(at(10, 0), at(11, 20)),
		appointment(at(14, 0), at(15, 0)),
	}

	first := generateStartTimes(ws, appts, 60*time.Minute)
	second := generateStartTimes(ws, appts, 60*time.Minute)

	assert.Equal(t, first, second)
}

func TestSnapUpToQuarterHour(t *testing.T) {
	assert.Equal(t, at(11, 15), snapUpToQuarterHour(at(11, 15)))
	assert.Equal(t, at(11, 15), snapUpToQuarterHour(at(11, 5)))
	assert.Equal(t, at(11, 30), snapUpToQuarterHour(at(11, 16)))
	assert.Equal(t, at(12, 0), snapUpToQuarterHour(at(11, 46)))
}

func TestMergeStartTimes(t *testing.T) {
	got := mergeStartTimes([]time.Time{at(12, 0), at(9, 0), at(12, 0), at(10, 0)})

	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(12, 0)}, got)
}
