package get_available_days

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

type fakeWorkSlotRepo struct {
	slots []*domain.WorkSlot
	err   error
}

func (f *fakeWorkSlotRepo) ListStartingBetween(_ context.Context, masterID int64, from, to time.Time) ([]*domain.WorkSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.WorkSlot
	for _, ws := range f.slots {
		if ws.MasterID != masterID {
			continue
		}
		if ws.StartTime.Before(from) || !ws.StartTime.Before(to) {
			continue
		}
		out = append(out, ws)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func slotOn(d, hour int) *domain.WorkSlot {
	return &domain.WorkSlot{
		MasterID:  1,
		StartTime: time.Date(2026, 9, d, hour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, d, hour+4, 0, 0, 0, time.UTC),
	}
}

func TestExecute_DistinctAscendingDays(t *testing.T) {
	repo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{
		slotOn(20, 9),
		slotOn(14, 9),
		slotOn(14, 15), // второе окно в тот же день
		slotOn(17, 10),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, StartDate: day(14), DaysCount: 30})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(14), day(17), day(20)}, resp.Days)
}

func TestExecute_BookingsDoNotAffectDays(t *testing.T) {
	// Полностью занятый день всё равно считается доступным:
	// агрегатор смотрит только на наличие рабочих окон
	repo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{slotOn(14, 9)}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, StartDate: day(14), DaysCount: 7})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(14)}, resp.Days)
}

func TestExecute_PeriodBoundsAreHalfOpen(t *testing.T) {
	repo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{
		slotOn(14, 9),
		slotOn(21, 9), // start + 7 дней, уже за границей
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, StartDate: day(14), DaysCount: 7})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(14)}, resp.Days)
}

func TestExecute_EmptyOnStorageFailure(t *testing.T) {
	repo := &fakeWorkSlotRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, StartDate: day(14), DaysCount: 7})

	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_DefaultDaysCount(t *testing.T) {
	repo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{slotOn(30, 9)}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, StartDate: day(14)})

	require.NoError(t, err)
	assert.Len(t, resp.Days, 1)
}

func TestExecute_DaysCountAboveLimit(t *testing.T) {
	uc := NewUseCase(&fakeWorkSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{MasterID: 1, StartDate: day(14), DaysCount: domain.MaxDaysCount + 1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
