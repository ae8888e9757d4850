package domain

import "time"

// WorkSlot represents a master's declared working window at a workplace.
// StartTime and EndTime are naive local timestamps with StartTime < EndTime.
type WorkSlot struct {
	ID          int64
	MasterID    int64
	WorkplaceID int64
	StartTime   time.Time
	EndTime     time.Time
}

// Day returns the calendar day the work slot starts on, time zeroed
func (w *WorkSlot) Day() time.Time {
	return time.Date(w.StartTime.Year(), w.StartTime.Month(), w.StartTime.Day(), 0, 0, 0, 0, w.StartTime.Location())
}

// Contains reports whether t falls inside [StartTime, EndTime)
func (w *WorkSlot) Contains(t time.Time) bool {
	return !t.Before(w.StartTime) && t.Before(w.EndTime)
}

// WorkSlotsFilter filter for listing work slots
type WorkSlotsFilter struct {
	MasterID  *int64     // optional, nil = all masters
	StartDate *time.Time // optional, start_time >= StartDate
	EndDate   *time.Time // optional, end_time <= EndDate
}
