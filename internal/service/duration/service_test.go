package duration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

type fakeProcedureRepo struct {
	procedures []*domain.Procedure
	err        error
}

func (f *fakeProcedureRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Procedure, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Procedure
	for _, p := range f.procedures {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestComputeMinutes(t *testing.T) {
	tests := []struct {
		name             string
		procedureMinutes int
		timeCoeff        float64
		isFirstVisit     bool
		want             int
	}{
		{
			name:             "first visit with coefficient",
			procedureMinutes: 40,
			timeCoeff:        1.5,
			isFirstVisit:     true,
			want:             90, // 40*1.5=60 +15 +15
		},
		{
			name:             "repeat visit plain",
			procedureMinutes: 60,
			timeCoeff:        1.0,
			isFirstVisit:     false,
			want:             75, // 60 +15 buffer
		},
		{
			name:             "rounds up to quarter hour",
			procedureMinutes: 50,
			timeCoeff:        1.0,
			isFirstVisit:     false,
			want:             75, // ceil15(50)=60 +15
		},
		{
			name:             "floor of 30 minutes",
			procedureMinutes: 5,
			timeCoeff:        1.0,
			isFirstVisit:     false,
			want:             30, // ceil15(5)=15 +15 buffer=30
		},
		{
			name:             "empty procedures still get minimum",
			procedureMinutes: 0,
			timeCoeff:        1.0,
			isFirstVisit:     false,
			want:             30,
		},
		{
			name:             "coefficient scales only the procedure component",
			procedureMinutes: 30,
			timeCoeff:        2.0,
			isFirstVisit:     true,
			want:             90, // 30*2=60 +15 +15, надбавки не умножаются
		},
		{
			name:             "non-positive coefficient falls back to default",
			procedureMinutes: 60,
			timeCoeff:        0,
			isFirstVisit:     false,
			want:             75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMinutes(tt.procedureMinutes, tt.timeCoeff, tt.isFirstVisit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeMinutes_AlwaysQuarterHourMultiple(t *testing.T) {
	for minutes := 0; minutes <= 200; minutes += 7 {
		got := ComputeMinutes(minutes, 1.3, minutes%2 == 0)
		assert.Zero(t, got%domain.DurationRoundingMinutes, "minutes=%d", minutes)
		assert.GreaterOrEqual(t, got, domain.MinAppointmentMinutes, "minutes=%d", minutes)
	}
}

func TestService_Calculate(t *testing.T) {
	repo := &fakeProcedureRepo{
		procedures: []*domain.Procedure{
			{ID: 1, Duration: 40},
			{ID: 2, Duration: 20},
		},
	}
	svc := NewService(repo, nopLogger{})

	got := svc.Calculate(context.Background(), []int64{1, 2}, 1.0, false)
	assert.Equal(t, 75, got) // 60 +15 buffer
}

func TestService_Calculate_UnknownProceduresContributeZero(t *testing.T) {
	repo := &fakeProcedureRepo{
		procedures: []*domain.Procedure{
			{ID: 1, Duration: 40},
		},
	}
	svc := NewService(repo, nopLogger{})

	got := svc.Calculate(context.Background(), []int64{1, 999}, 1.0, false)
	assert.Equal(t, 60, got) // ceil15(40)=45 +15 buffer
}

func TestService_Calculate_RepoFailureFallsBackToDefault(t *testing.T) {
	repo := &fakeProcedureRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	got := svc.Calculate(context.Background(), []int64{1}, 1.5, true)
	assert.Equal(t, domain.DefaultDurationMinutes, got)
}
