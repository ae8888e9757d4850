package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/appointment"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if filter.ClientID != nil && a.ClientID != *filter.ClientID {
			continue
		}
		if filter.MasterID != nil && a.MasterID != *filter.MasterID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeRepo) CompleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, a := range f.appointments {
		if a.Status == domain.StatusActive && a.EndTime.Before(now) {
			a.Status = domain.StatusCompleted
			n++
		}
	}
	return n, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCancel_FlipsStatus(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, Status: domain.StatusActive},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, repo.appointments[1].Status)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, Status: domain.StatusCanceled},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, repo.appointments[1].Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{appointments: map[int64]*domain.Appointment{}}, nopLogger{})

	err := svc.Cancel(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, Status: domain.StatusActive},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, "postponed")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.StatusActive, repo.appointments[1].Status)
}

func TestCompleteExpired(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, Status: domain.StatusActive, EndTime: now.Add(-time.Hour)},
		2: {ID: 2, Status: domain.StatusActive, EndTime: now.Add(time.Hour)},
		3: {ID: 3, Status: domain.StatusCanceled, EndTime: now.Add(-time.Hour)},
	}}
	svc := NewService(repo, nopLogger{})

	completed, err := svc.CompleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(1), completed)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
	assert.Equal(t, domain.StatusActive, repo.appointments[2].Status)
	assert.Equal(t, domain.StatusCanceled, repo.appointments[3].Status)
}
