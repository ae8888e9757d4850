package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a confirmed booking of one or more procedures
// with a master at a workplace. EndTime is always StartTime plus the
// computed duration.
type Appointment struct {
	ID          int64
	ClientID    int64
	MasterID    int64
	WorkplaceID int64
	Procedures  []int64 // ordered procedure IDs, never empty
	StartTime   time.Time
	EndTime     time.Time
	Status      AppointmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCanceled returns true if the appointment has been canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// BlocksTime returns true if the appointment still occupies its time window.
// Completed appointments stay on the timeline; only canceled ones free it.
func (a *Appointment) BlocksTime() bool {
	return a.Status != StatusCanceled
}

// Overlaps reports whether the half-open interval [start, end) intersects
// the appointment's own [StartTime, EndTime) interval. Touching boundaries
// do not count as an overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// ValidStatus reports whether s is one of the known appointment statuses
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusActive, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	ClientID        *int64     // optional, nil = all clients
	MasterID        *int64     // optional, nil = all masters
	From            *time.Time // optional lower bound on start_time (inclusive)
	To              *time.Time // optional upper bound on start_time (inclusive)
	ExcludeCanceled bool       // drop canceled appointments from the result
}
