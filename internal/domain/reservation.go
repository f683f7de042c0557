package domain

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/pkg/types"
)

// Reservation is a recurring slot template bound to a set of doors
type Reservation struct {
	ID     int64
	SiteID int64
	Active bool

	Days            WeekdaySet
	StartTime       types.TimeString // local time of day
	DurationMinutes int

	MinPallets *int
	MaxPallets *int
	MinCases   *int
	MaxCases   *int

	// Carrier/vendor restriction lists; empty list = no restriction
	CarrierIDs []int64
	VendorIDs  []int64

	DoorIDs []int64

	EffectiveStartDate *time.Time
	EffectiveEndDate   *time.Time

	// ExceptionDates are local calendar dates the template does not apply on
	ExceptionDates []time.Time
}

// EffectiveOn проверяет, что шаблон действует на указанный UTC-момент
func (r *Reservation) EffectiveOn(utc time.Time) bool {
	if r.EffectiveStartDate != nil && r.EffectiveStartDate.After(utc) {
		return false
	}
	if r.EffectiveEndDate != nil && r.EffectiveEndDate.Before(utc) {
		return false
	}
	return true
}

// HasException проверяет дату-исключение (сравнение по локальной календарной дате)
func (r *Reservation) HasException(localDate time.Time) bool {
	y, m, d := localDate.Date()
	for _, e := range r.ExceptionDates {
		ey, em, ed := e.Date()
		if ey == y && em == m && ed == d {
			return true
		}
	}
	return false
}

// AllowsCarrier проверяет ограничение по перевозчикам (пустой список не ограничивает)
func (r *Reservation) AllowsCarrier(carrierID int64) bool {
	if len(r.CarrierIDs) == 0 {
		return true
	}
	for _, id := range r.CarrierIDs {
		if id == carrierID {
			return true
		}
	}
	return false
}

// AllowsAnyVendor проверяет ограничение по поставщикам (пустой список не ограничивает)
func (r *Reservation) AllowsAnyVendor(vendorIDs []int64) bool {
	if len(r.VendorIDs) == 0 {
		return true
	}
	for _, id := range r.VendorIDs {
		for _, v := range vendorIDs {
			if id == v {
				return true
			}
		}
	}
	return false
}

// IncludesDoor проверяет, что дверь входит в набор дверей шаблона
func (r *Reservation) IncludesDoor(doorID int64) bool {
	for _, id := range r.DoorIDs {
		if id == doorID {
			return true
		}
	}
	return false
}
