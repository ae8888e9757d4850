package domain

// Duration calculation constants (minutes)
const (
	MinAppointmentMinutes     = 30 // floor for any computed duration
	DefaultDurationMinutes    = 60 // degraded default when procedure lookup fails
	FirstVisitOverheadMinutes = 15 // one-time consultation allowance
	AppointmentBufferMinutes  = 15 // inter-appointment buffer added to every computation
	DurationRoundingMinutes   = 15 // computed duration rounds up to this granularity
)

// Slot generation constants
const (
	SlotStepMinutes     = 60 // candidate start times advance in fixed hourly steps
	SlotSnapMinutes     = 15 // post-appointment cursor snaps up to the quarter hour
	ClosingGuardMinutes = 60 // at least this much window must remain after a candidate start
)

// Defaults for availability requests
const (
	DefaultTimeCoeff  = 1.0
	DefaultDaysCount  = 30
	MaxDaysCount      = 90
	DefaultFirstVisit = true
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // naive local timestamp
)
