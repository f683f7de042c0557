package domain

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// AppointmentStatus represents the status of a delivery appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusGatedIn   AppointmentStatus = "gated_in"
	StatusGatedOut  AppointmentStatus = "gated_out"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// BlockingStatuses статусы, при которых встреча занимает слот.
// Отменённые и no-show встречи дверь не блокируют.
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusGatedIn,
	StatusGatedOut,
	StatusCompleted,
}

// BlocksSlot returns true if an appointment in this status occupies its slot
func (s AppointmentStatus) BlocksSlot() bool {
	for _, b := range BlockingStatuses {
		if s == b {
			return true
		}
	}
	return false
}

// Appointment represents a scheduled delivery appointment
type Appointment struct {
	ID        int64
	SiteID    int64
	CarrierID int64
	DoorIDs   []int64

	StartTime         time.Time // UTC
	ScheduledDuration int       // minutes

	// Actual gate execution; gate-in supersedes the planned start for
	// conflict purposes
	GateInTime  *time.Time
	GateOutTime *time.Time

	Status AppointmentStatus
	Orders []SlotOrder

	TotalCaseCount   float64
	TotalPalletCount *int
}

// EffectiveStart начало фактически занимаемого окна: gate-in, если трейлер
// уже на дверях, иначе плановое время начала
func (a *Appointment) EffectiveStart() time.Time {
	if a.GateInTime != nil {
		return *a.GateInTime
	}
	return a.StartTime
}

// EffectiveWindow фактически занимаемое окно [EffectiveStart, +ScheduledDuration)
func (a *Appointment) EffectiveWindow() timeutil.TimeRange {
	start := a.EffectiveStart()
	return timeutil.TimeRange{
		Start: start,
		End:   start.Add(time.Duration(a.ScheduledDuration) * time.Minute),
	}
}

// OccupiesDoor проверяет, что встреча занимает указанную дверь
func (a *Appointment) OccupiesDoor(doorID int64) bool {
	for _, id := range a.DoorIDs {
		if id == doorID {
			return true
		}
	}
	return false
}

// HasVendor проверяет, что какой-либо заказ встречи (или его строка)
// принадлежит поставщику
func (a *Appointment) HasVendor(vendorID int64) bool {
	for i := range a.Orders {
		if a.Orders[i].VendorID == vendorID {
			return true
		}
		for j := range a.Orders[i].Details {
			if a.Orders[i].Details[j].VendorID == vendorID {
				return true
			}
		}
	}
	return false
}
