package workplaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
)

type fakeWorkplaceRepo struct {
	workplaces  map[int64]*domain.Workplace
	deactivated []int64
	deleted     []int64
}

func (f *fakeWorkplaceRepo) GetByID(_ context.Context, id int64) (*domain.Workplace, error) {
	wp, ok := f.workplaces[id]
	if !ok {
		return nil, workplaceRepo.ErrWorkplaceNotFound
	}
	return wp, nil
}

func (f *fakeWorkplaceRepo) Deactivate(_ context.Context, id int64) error {
	wp, ok := f.workplaces[id]
	if !ok {
		return workplaceRepo.ErrWorkplaceNotFound
	}
	wp.IsActive = false
	f.deactivated = append(f.deactivated, id)
	return nil
}

func (f *fakeWorkplaceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.workplaces[id]; !ok {
		return workplaceRepo.ErrWorkplaceNotFound
	}
	delete(f.workplaces, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAppointmentRepo struct{ history int64 }

func (f *fakeAppointmentRepo) CountByWorkplace(context.Context, int64) (int64, error) {
	return f.history, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDelete_NoHistoryDeletes(t *testing.T) {
	repo := &fakeWorkplaceRepo{workplaces: map[int64]*domain.Workplace{1: {ID: 1, IsActive: true}}}
	svc := NewService(repo, &fakeAppointmentRepo{history: 0}, nopLogger{})

	deactivated, err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, deactivated)
	assert.Equal(t, []int64{1}, repo.deleted)
	assert.Empty(t, repo.deactivated)
}

func TestDelete_WithHistoryDeactivates(t *testing.T) {
	repo := &fakeWorkplaceRepo{workplaces: map[int64]*domain.Workplace{1: {ID: 1, IsActive: true}}}
	svc := NewService(repo, &fakeAppointmentRepo{history: 5}, nopLogger{})

	deactivated, err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, deactivated)
	assert.Empty(t, repo.deleted)
	assert.False(t, repo.workplaces[1].IsActive)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeWorkplaceRepo{workplaces: map[int64]*domain.Workplace{}}, &fakeAppointmentRepo{}, nopLogger{})

	_, err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrWorkplaceNotFound)
}
