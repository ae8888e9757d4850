package masters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
)

type fakeMasterRepo struct {
	masters      map[int64]*domain.Master
	linksDeleted []int64
	deleted      []int64
}

func (f *fakeMasterRepo) GetByID(_ context.Context, id int64) (*domain.Master, error) {
	m, ok := f.masters[id]
	if !ok {
		return nil, masterRepo.ErrMasterNotFound
	}
	return m, nil
}

func (f *fakeMasterRepo) DeleteProcedureLinks(_ context.Context, masterID int64) error {
	f.linksDeleted = append(f.linksDeleted, masterID)
	return nil
}

func (f *fakeMasterRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.masters[id]; !ok {
		return masterRepo.ErrMasterNotFound
	}
	delete(f.masters, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAppointmentRepo struct{ futureActive int64 }

func (f *fakeAppointmentRepo) CountActiveFrom(context.Context, int64, time.Time) (int64, error) {
	return f.futureActive, nil
}

type fakeWorkSlotRepo struct{ futureSlots int64 }

func (f *fakeWorkSlotRepo) CountFutureByMaster(context.Context, int64, time.Time) (int64, error) {
	return f.futureSlots, nil
}

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

func newTestService(masters *fakeMasterRepo, appts *fakeAppointmentRepo, slots *fakeWorkSlotRepo) *Service {
	return NewService(masters, appts, slots, inlineTxManager{}, nopLogger{})
}

func TestDelete_RemovesMasterAndLinks(t *testing.T) {
	repo := &fakeMasterRepo{masters: map[int64]*domain.Master{1: {ID: 1}}}
	svc := newTestService(repo, &fakeAppointmentRepo{}, &fakeWorkSlotRepo{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.linksDeleted)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_BlockedByFutureAppointments(t *testing.T) {
	repo := &fakeMasterRepo{masters: map[int64]*domain.Master{1: {ID: 1}}}
	svc := newTestService(repo, &fakeAppointmentRepo{futureActive: 1}, &fakeWorkSlotRepo{})

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrMasterHasAppointments)
	assert.Empty(t, repo.deleted)
}

func TestDelete_BlockedByFutureWorkSlots(t *testing.T) {
	repo := &fakeMasterRepo{masters: map[int64]*domain.Master{1: {ID: 1}}}
	svc := newTestService(repo, &fakeAppointmentRepo{}, &fakeWorkSlotRepo{futureSlots: 3})

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrMasterHasWorkSlots)
	assert.Empty(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&fakeMasterRepo{masters: map[int64]*domain.Master{}}, &fakeAppointmentRepo{}, &fakeWorkSlotRepo{})

	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrMasterNotFound)
}
