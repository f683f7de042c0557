package domain

import "github.com/m04kA/SMC-DockSchedulingService/pkg/types"

// Dock represents a physical loading dock at a site
type Dock struct {
	ID     int64
	SiteID int64
	Name   string

	// EarlyScheduleThreshold and LateScheduleThreshold bound, in days
	// before/after an order due date, when delivery may be scheduled.
	EarlyScheduleThreshold int
	LateScheduleThreshold  int

	// ScheduleCutoffTime is a local time of day after which same/next-day
	// bookings are restricted for carrier callers. Empty = no cutoff.
	ScheduleCutoffTime types.TimeString

	// Daily capacity limits, split between reserved and unreserved
	// allotments; nil = the quantity is not capped for this dock
	UnreservedApptsLimit   *int
	ReservedApptsLimit     *int
	UnreservedCasesLimit   *int
	ReservedCasesLimit     *int
	UnreservedPalletsLimit *int
	ReservedPalletsLimit   *int
}

// DockQuotaOverride явные дневные лимиты дока, передаваемые при
// автоназначении вместо лимитов из настроек дока
type DockQuotaOverride struct {
	DockID                 int64
	UnreservedApptsLimit   *int
	ReservedApptsLimit     *int
	UnreservedCasesLimit   *int
	ReservedCasesLimit     *int
	UnreservedPalletsLimit *int
	ReservedPalletsLimit   *int
}

// HasScheduleCutoff returns true if the dock declares a booking cutoff time
func (d *Dock) HasScheduleCutoff() bool {
	return !d.ScheduleCutoffTime.IsZero()
}
