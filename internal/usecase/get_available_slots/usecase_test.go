package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	clientRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/client"
	"github.com/avolkoff/Salon-BookingService/pkg/ptr"
)

type fakeWorkSlotRepo struct {
	slots []*domain.WorkSlot
	err   error
}

func (f *fakeWorkSlotRepo) ListByMasterAndDay(_ context.Context, masterID int64, _ time.Time) ([]*domain.WorkSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.WorkSlot
	for _, ws := range f.slots {
		if ws.MasterID == masterID {
			out = append(out, ws)
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if filter.MasterID != nil && a.MasterID != *filter.MasterID {
			continue
		}
		if filter.ExcludeCanceled && a.IsCanceled() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
	err     error
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

type fixedDurationService struct {
	minutes int

	gotCoeff      float64
	gotFirstVisit bool
}

func (f *fixedDurationService) Calculate(_ context.Context, _ []int64, timeCoeff float64, isFirstVisit bool) int {
	f.gotCoeff = timeCoeff
	f.gotFirstVisit = isFirstVisit
	return f.minutes
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(wsRepo *fakeWorkSlotRepo, apptRepo *fakeAppointmentRepo, clients *fakeClientRepo, dur *fixedDurationService) *UseCase {
	return NewUseCase(wsRepo, apptRepo, clients, dur, nopLogger{})
}

func TestExecute_FullDay(t *testing.T) {
	wsRepo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{workSlot(at(9, 0), at(13, 0))}}
	uc := newTestUseCase(wsRepo, &fakeAppointmentRepo{}, &fakeClientRepo{}, &fixedDurationService{minutes: 60})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0)})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(11, 0), at(12, 0)}, resp.Slots)
}

func TestExecute_CanceledAppointmentFreesItsWindow(t *testing.T) {
	wsRepo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{workSlot(at(9, 0), at(13, 0))}}
	appt := appointment(at(10, 0), at(11, 0))
	appt.Status = domain.StatusCanceled
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{appt}}
	uc := newTestUseCase(wsRepo, apptRepo, &fakeClientRepo{}, &fixedDurationService{minutes: 60})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0)})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(11, 0), at(12, 0)}, resp.Slots)
}

func TestExecute_ActiveAppointmentBlocksItsWindow(t *testing.T) {
	wsRepo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{workSlot(at(9, 0), at(13, 0))}}
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{appointment(at(10, 0), at(11, 0))}}
	uc := newTestUseCase(wsRepo, apptRepo, &fakeClientRepo{}, &fixedDurationService{minutes: 60})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0)})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(9, 0), at(11, 15)}, resp.Slots)
}

func TestExecute_MergesMultipleWindows(t *testing.T) {
	wsRepo := &fakeWorkSlotRepo{slots: []*domain.WorkSlot{
		workSlot(at(9, 0), at(11, 0)),
		workSlot(at(14, 0), at(16, 0)),
	}}
	uc := newTestUseCase(wsRepo, &fakeAppointmentRepo{}, &fakeClientRepo{}, &fixedDurationService{minutes: 60})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0)})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(14, 0), at(15, 0)}, resp.Slots)
}

func TestExecute_ClientFactorsPassedToDurationService(t *testing.T) {
	clients := &fakeClientRepo{clients: map[int64]*domain.Client{
		7: {ID: 7, TimeCoeff: 1.5, IsFirstVisit: false},
	}}
	dur := &fixedDurationService{minutes: 60}
	uc := newTestUseCase(&fakeWorkSlotRepo{}, &fakeAppointmentRepo{}, clients, dur)

	_, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0), ClientID: ptr.Ptr(int64(7))})

	require.NoError(t, err)
	assert.Equal(t, 1.5, dur.gotCoeff)
	assert.False(t, dur.gotFirstVisit)
}

func TestExecute_UnknownClientUsesDefaults(t *testing.T) {
	dur := &fixedDurationService{minutes: 60}
	uc := newTestUseCase(&fakeWorkSlotRepo{}, &fakeAppointmentRepo{}, &fakeClientRepo{}, dur)

	_, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0), ClientID: ptr.Ptr(int64(404))})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimeCoeff, dur.gotCoeff)
	assert.Equal(t, domain.DefaultFirstVisit, dur.gotFirstVisit)
}

func TestExecute_StorageFailureDegradesToEmpty(t *testing.T) {
	wsRepo := &fakeWorkSlotRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(wsRepo, &fakeAppointmentRepo{}, &fakeClientRepo{}, &fixedDurationService{minutes: 60})

	resp, err := uc.Execute(context.Background(), &Request{MasterID: 1, Date: at(0, 0)})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(&fakeWorkSlotRepo{}, &fakeAppointmentRepo{}, &fakeClientRepo{}, &fixedDurationService{minutes: 60})

	_, err := uc.Execute(context.Background(), &Request{MasterID: 0, Date: at(0, 0)})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
