package domain

// Default configuration values
const (
	DefaultAppointmentIntervalMinutes = 15
	MaxAppointmentDurationMinutes     = 1440 // appointments never span more than one day
	MaxSearchDays                     = 10   // date-walk probes at most 10 distinct days
	AutoAppointWindowDays             = 7
)

// Business validation constants
const (
	MinBusinessDayOffsetHours = -24
	MaxBusinessDayOffsetHours = 23
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
