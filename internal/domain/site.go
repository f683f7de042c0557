package domain

import (
	"fmt"
	"time"
)

// UnitType represents the unit of measure a site schedules in
type UnitType string

const (
	UnitTypeCases   UnitType = "cases"
	UnitTypePallets UnitType = "pallets"
)

// Site represents a warehouse receiving site
type Site struct {
	ID       int64
	Name     string
	TimeZone string // IANA zone name, e.g. "America/Chicago"

	// BusinessDayOffset is the signed hour shift defining when the site's
	// operational day begins relative to local calendar midnight.
	BusinessDayOffset int

	UnitType                   UnitType
	AppointmentIntervalMinutes *int // nil = DefaultAppointmentIntervalMinutes
	AppointmentDateLimitDays   *int // nil = unlimited search horizon
	DefaultDoorGroupID         *int64
	MaximumReservationSlots    int

	// AllowApptOrdersDiffDock permits orders of one appointment to be
	// routed to doors on different docks
	AllowApptOrdersDiffDock bool

	// DockThresholdFeature enables daily dock capacity quotas
	DockThresholdFeature bool
}

// Location resolves the site's IANA time zone
func (s *Site) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("site %d: invalid time zone %q: %w", s.ID, s.TimeZone, err)
	}
	return loc, nil
}

// AppointmentInterval returns the slot step in minutes
func (s *Site) AppointmentInterval() int {
	if s.AppointmentIntervalMinutes != nil && *s.AppointmentIntervalMinutes > 0 {
		return *s.AppointmentIntervalMinutes
	}
	return DefaultAppointmentIntervalMinutes
}

// Validate проверяет инварианты площадки
func (s *Site) Validate() error {
	if _, err := s.Location(); err != nil {
		return err
	}
	if s.BusinessDayOffset < MinBusinessDayOffsetHours || s.BusinessDayOffset > MaxBusinessDayOffsetHours {
		return fmt.Errorf("site %d: business day offset %d out of range [%d, %d]",
			s.ID, s.BusinessDayOffset, MinBusinessDayOffsetHours, MaxBusinessDayOffsetHours)
	}
	return nil
}
