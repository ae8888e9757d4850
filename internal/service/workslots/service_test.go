package workslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
	workslotRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workslot"
)

type fakeWorkSlotRepo struct {
	slots   map[int64]*domain.WorkSlot
	nextID  int64
	deleted []int64
}

func (f *fakeWorkSlotRepo) Create(_ context.Context, slot *domain.WorkSlot) (*domain.WorkSlot, error) {
	f.nextID++
	created := *slot
	created.ID = f.nextID
	f.slots[created.ID] = &created
	return &created, nil
}

func (f *fakeWorkSlotRepo) GetByID(_ context.Context, id int64) (*domain.WorkSlot, error) {
	ws, ok := f.slots[id]
	if !ok {
		return nil, workslotRepo.ErrWorkSlotNotFound
	}
	return ws, nil
}

func (f *fakeWorkSlotRepo) ListWithFilter(_ context.Context, _ domain.WorkSlotsFilter) ([]*domain.WorkSlot, error) {
	var out []*domain.WorkSlot
	for _, ws := range f.slots {
		out = append(out, ws)
	}
	return out, nil
}

func (f *fakeWorkSlotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.slots[id]; !ok {
		return workslotRepo.ErrWorkSlotNotFound
	}
	delete(f.slots, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAppointmentRepo struct {
	activeWithin int64
}

func (f *fakeAppointmentRepo) CountActiveWithin(context.Context, int64, time.Time, time.Time) (int64, error) {
	return f.activeWithin, nil
}

type fakeMasterRepo struct{ known map[int64]bool }

func (f *fakeMasterRepo) GetByID(_ context.Context, id int64) (*domain.Master, error) {
	if !f.known[id] {
		return nil, masterRepo.ErrMasterNotFound
	}
	return &domain.Master{ID: id}, nil
}

type fakeWorkplaceRepo struct{ workplaces map[int64]*domain.Workplace }

func (f *fakeWorkplaceRepo) GetByID(_ context.Context, id int64) (*domain.Workplace, error) {
	wp, ok := f.workplaces[id]
	if !ok {
		return nil, workplaceRepo.ErrWorkplaceNotFound
	}
	return wp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(slots *fakeWorkSlotRepo, appts *fakeAppointmentRepo) *Service {
	return NewService(
		slots,
		appts,
		&fakeMasterRepo{known: map[int64]bool{1: true}},
		&fakeWorkplaceRepo{workplaces: map[int64]*domain.Workplace{
			2: {ID: 2, IsActive: true},
			3: {ID: 3, IsActive: false},
		}},
		nopLogger{},
	)
}

func validSlot() *domain.WorkSlot {
	return &domain.WorkSlot{
		MasterID:    1,
		WorkplaceID: 2,
		StartTime:   time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	slots := &fakeWorkSlotRepo{slots: map[int64]*domain.WorkSlot{}}
	svc := newTestService(slots, &fakeAppointmentRepo{})

	created, err := svc.Create(context.Background(), validSlot())

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreate_UnknownMaster(t *testing.T) {
	svc := newTestService(&fakeWorkSlotRepo{slots: map[int64]*domain.WorkSlot{}}, &fakeAppointmentRepo{})

	slot := validSlot()
	slot.MasterID = 404

	_, err := svc.Create(context.Background(), slot)
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestCreate_InactiveWorkplace(t *testing.T) {
	svc := newTestService(&fakeWorkSlotRepo{slots: map[int64]*domain.WorkSlot{}}, &fakeAppointmentRepo{})

	slot := validSlot()
	slot.WorkplaceID = 3

	_, err := svc.Create(context.Background(), slot)
	assert.ErrorIs(t, err, ErrWorkplaceInactive)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc := newTestService(&fakeWorkSlotRepo{slots: map[int64]*domain.WorkSlot{}}, &fakeAppointmentRepo{})

	slot := validSlot()
	slot.EndTime = slot.StartTime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), slot)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_BlockedByActiveAppointments(t *testing.T) {
	slots := &fakeWorkSlotRepo{slots: map[int64]*domain.WorkSlot{}}
	svc := newTestService(slots, &fakeAppointmentRepo{activeWithin: 2})

	created, err := svc.Create(context.Background(), validSlot())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)

	assert.ErrorIs(t, err, ErrSlotHasAppointments)
	assert.Empty(t, slots.deleted)
}

func TestDelete_EmptySlot(t *testing.T) {
	slots := &fakeWorkSlotRepo{slots: map[int64]*domain.WorkSlot{}}
	svc := newTestService(slots, &fakeAppointmentRepo{activeWithin: 0})

	created, err := svc.Create(context.Background(), validSlot())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, slots.deleted)
}
