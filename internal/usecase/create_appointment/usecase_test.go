package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	clientRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/client"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
	"github.com/avolkoff/Salon-BookingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
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
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

type fakeMasterRepo struct {
	masters map[int64]*domain.Master
}

func (f *fakeMasterRepo) GetByID(_ context.Context, id int64) (*domain.Master, error) {
	m, ok := f.masters[id]
	if !ok {
		return nil, masterRepo.ErrMasterNotFound
	}
	return m, nil
}

type fakeWorkplaceRepo struct {
	workplaces map[int64]*domain.Workplace
}

func (f *fakeWorkplaceRepo) GetByID(_ context.Context, id int64) (*domain.Workplace, error) {
	wp, ok := f.workplaces[id]
	if !ok {
		return nil, workplaceRepo.ErrWorkplaceNotFound
	}
	return wp, nil
}

type fixedDurationService struct {
	minutes int
}

func (f *fixedDurationService) Calculate(context.Context, []int64, float64, bool) int {
	return f.minutes
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(apptRepo *fakeAppointmentRepo) *UseCase {
	return NewUseCase(
		apptRepo,
		&fakeClientRepo{clients: map[int64]*domain.Client{1: {ID: 1, TimeCoeff: 1.0, IsFirstVisit: false}}},
		&fakeMasterRepo{masters: map[int64]*domain.Master{2: {ID: 2, Name: "Анна"}}},
		&fakeWorkplaceRepo{workplaces: map[int64]*domain.Workplace{3: {ID: 3, Name: "Кабинет 1", IsActive: true}}},
		&fixedDurationService{minutes: 60},
		inlineTxManager{},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		ClientID:     1,
		MasterID:     2,
		WorkplaceID:  3,
		ProcedureIDs: []int64{10},
		StartTime:    time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestExecute_CreatesActiveAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC), resp.StartTime)
	// Конец записи выводится из рассчитанной длительности
	assert.Equal(t, time.Date(2026, 9, 14, 13, 0, 0, 0, time.UTC), resp.EndTime)
}

func TestExecute_StripsTimezoneOffset(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	// 14:00+03:00 должно стать просто 14:00, без конвертации в 11:00
	msk := time.FixedZone("MSK", 3*60*60)
	req := validRequest()
	req.StartTime = time.Date(2026, 9, 14, 14, 0, 0, 0, msk)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 14, resp.StartTime.Hour())
	assert.Equal(t, 15, resp.EndTime.Hour())
}

func TestExecute_ExplicitEndTime(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	end := time.Date(2026, 9, 14, 13, 30, 0, 0, time.UTC)
	req := validRequest()
	req.EndTime = ptr.Ptr(end)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, end, resp.EndTime)
}

func TestExecute_SecondCallForSameSlotGetsConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Len(t, repo.appointments, 1)
}

func TestExecute_PartialOverlapGetsConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = time.Date(2026, 9, 14, 12, 30, 0, 0, time.UTC)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_TouchingBoundaryIsNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Новая запись начинается ровно в момент окончания существующей
	req := validRequest()
	req.StartTime = time.Date(2026, 9, 14, 13, 0, 0, 0, time.UTC)

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CanceledAppointmentDoesNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	for _, a := range repo.appointments {
		if a.ID == first.ID {
			a.Status = domain.StatusCanceled
		}
	}

	_, err = uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing client", func(r *Request) { r.ClientID = 0 }},
		{"missing master", func(r *Request) { r.MasterID = 0 }},
		{"missing workplace", func(r *Request) { r.WorkplaceID = 0 }},
		{"empty procedures", func(r *Request) { r.ProcedureIDs = nil }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
		{"end before start", func(r *Request) {
			r.EndTime = ptr.Ptr(r.StartTime.Add(-time.Hour))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UnknownClient(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	req := validRequest()
	req.ClientID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_UnknownMaster(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	req := validRequest()
	req.MasterID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMasterNotFound)
}
