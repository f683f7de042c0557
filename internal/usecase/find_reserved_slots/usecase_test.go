package find_reserved_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeResolver struct {
	resp *resolve_door_group.Response
	err  error
}

func (f *fakeResolver) Execute(context.Context, *resolve_door_group.Request) (*resolve_door_group.Response, error) {
	return f.resp, f.err
}

type fakeSiteRepo struct {
	site *domain.Site
}

func (f *fakeSiteRepo) GetByID(context.Context, int64) (*domain.Site, error) {
	return f.site, nil
}

type fakeApptRepo struct {
	appointments []domain.Appointment
}

func (f *fakeApptRepo) ListBlockingInWindow(context.Context, int64, time.Time, time.Time) ([]domain.Appointment, error) {
	return f.appointments, nil
}

type fakeResRepo struct {
	reservations []domain.Reservation
}

func (f *fakeResRepo) ListActiveBySite(context.Context, int64) ([]domain.Reservation, error) {
	return f.reservations, nil
}

type fakeSchedRepo struct {
	schedules []domain.Schedule
}

func (f *fakeSchedRepo) ListActiveBySite(context.Context, int64) ([]domain.Schedule, error) {
	return f.schedules, nil
}

type fakeEquipRepo struct {
	equipment []domain.Equipment
}

func (f *fakeEquipRepo) ListBySite(context.Context, int64) ([]domain.Equipment, error) {
	return f.equipment, nil
}

type fakeVendorRepo struct {
	vendors []domain.Vendor
}

func (f *fakeVendorRepo) ListBySite(_ context.Context, _ int64, vendorIDs []int64) ([]domain.Vendor, error) {
	if vendorIDs == nil {
		return f.vendors, nil
	}
	var out []domain.Vendor
	for _, v := range f.vendors {
		for _, id := range vendorIDs {
			if v.ID == id {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

type env struct {
	resolver   *fakeResolver
	siteRepo   *fakeSiteRepo
	apptRepo   *fakeApptRepo
	resRepo    *fakeResRepo
	schedRepo  *fakeSchedRepo
	equipRepo  *fakeEquipRepo
	vendorRepo *fakeVendorRepo
}

func (e *env) usecase() *Usecase {
	return NewUseCase(e.resolver, e.siteRepo, e.apptRepo, e.resRepo, e.schedRepo, e.equipRepo, e.vendorRepo, nopLogger{})
}

func iPtr(v int) *int { return &v }

// Среда 10 июня 2026
var searchDay = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func resolvedGroup(day time.Time) *resolve_door_group.Response {
	dgID := int64(1)
	ideal := day
	r := &timeutil.TimeRange{Start: day, End: day.AddDate(0, 0, 1).Add(-time.Second)}

	return &resolve_door_group.Response{
		Success: true,
		Data: resolve_door_group.DoorGroupAndDocks{
			DoorGroupID:   &dgID,
			DoorGroupName: "Dry",
			DoorsByDock: map[int64][]domain.Door{
				5: {
					{ID: 10, DockID: 5, DoorGroupID: 1, Name: "D-10", Active: true},
					{ID: 11, DockID: 5, DoorGroupID: 1, Name: "D-11", Active: true},
					{ID: 12, DockID: 5, DoorGroupID: 1, Name: "D-12", Active: false},
				},
			},
			Docks:                []domain.Dock{{ID: 5, Name: "Dock A"}},
			DockList:             []resolve_door_group.DockItem{{DockID: 5, DockName: "Dock A", Range: r}},
			DeliveryWindowExists: true,
			IdealDate:            &ideal,
		},
	}
}

func reservation(id int64, clock types.TimeString, doorIDs []int64) domain.Reservation {
	return domain.Reservation{
		ID:              id,
		SiteID:          1,
		Active:          true,
		Days:            domain.NewWeekdaySet(time.Wednesday),
		StartTime:       clock,
		DurationMinutes: 120,
		DoorIDs:         doorIDs,
	}
}

func newEnv() *env {
	return &env{
		resolver: &fakeResolver{resp: resolvedGroup(searchDay)},
		siteRepo: &fakeSiteRepo{site: &domain.Site{
			ID:       1,
			TimeZone: "UTC",
			UnitType: domain.UnitTypeCases,
		}},
		apptRepo:   &fakeApptRepo{},
		resRepo:    &fakeResRepo{},
		schedRepo:  &fakeSchedRepo{},
		equipRepo:  &fakeEquipRepo{},
		vendorRepo: &fakeVendorRepo{vendors: []domain.Vendor{{ID: 7, SiteID: 1, AllowSameDayAppointment: true}}},
	}
}

func baseRequest() *Request {
	day := searchDay
	return &Request{
		SiteID:          1,
		Orders:          []domain.SlotOrder{{ID: 100, VendorID: 7, DueDate: &day, CaseCount: 50}},
		DurationMinutes: 60,
		RequestedDate:   &day,
		CarrierID:       55,
		CurrentUTCTime:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFindReservedSlots_Layering(t *testing.T) {
	e := newEnv()

	unrestricted := reservation(1, "08:00", []int64{10})

	carrierOnly := reservation(2, "09:00", []int64{11})
	carrierOnly.CarrierIDs = []int64{55}

	vendorOnly := reservation(3, "10:00", []int64{10})
	vendorOnly.VendorIDs = []int64{7}

	carrierAndVendor := reservation(4, "11:00", []int64{11})
	carrierAndVendor.CarrierIDs = []int64{55}
	carrierAndVendor.VendorIDs = []int64{7}

	e.resRepo.reservations = []domain.Reservation{unrestricted, carrierOnly, vendorOnly, carrierAndVendor}

	resp, err := e.usecase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Data.Slots, 4)

	// Слои выдачи: перевозчик+поставщик, перевозчик, поставщик, без ограничений
	assert.Equal(t, int64(4), resp.Data.Slots[0].ReservationID)
	assert.Equal(t, int64(2), resp.Data.Slots[1].ReservationID)
	assert.Equal(t, int64(3), resp.Data.Slots[2].ReservationID)
	assert.Equal(t, int64(1), resp.Data.Slots[3].ReservationID)

	first := resp.Data.Slots[0]
	assert.True(t, first.CarrierBound)
	assert.True(t, first.VendorBound)
	assert.Equal(t, searchDay.Add(11*time.Hour), first.StartTime)
	assert.Equal(t, searchDay.Add(13*time.Hour), first.EndTime, "occurrence keeps its full duration")
	assert.Equal(t, []int64{11}, first.DoorIDs)
	assert.Equal(t, int64(5), first.DockID)
	assert.NotEmpty(t, first.Hash)
}

func TestFindReservedSlots_AllOrNothingDoors(t *testing.T) {
	e := newEnv()
	pair := reservation(1, "13:00", []int64{10, 11})
	single := reservation(2, "08:00", []int64{10})
	e.resRepo.reservations = []domain.Reservation{pair, single}

	// Конфликт на одной из двух дверей отбрасывает вхождение целиком
	e.apptRepo.appointments = []domain.Appointment{
		{ID: 200, DoorIDs: []int64{11}, Status: domain.StatusScheduled,
			StartTime: searchDay.Add(13*time.Hour + 30*time.Minute), ScheduledDuration: 30},
	}

	resp, err := e.usecase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Data.Slots, 1)
	assert.Equal(t, int64(2), resp.Data.Slots[0].ReservationID)
}

func TestFindReservedSlots_InactiveDoorDropsOccurrence(t *testing.T) {
	e := newEnv()
	e.resRepo.reservations = []domain.Reservation{
		reservation(1, "08:00", []int64{10, 12}), // дверь 12 неактивна
	}

	resp, err := e.usecase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Data.Slots)
}

func TestFindReservedSlots_DurationFilter(t *testing.T) {
	e := newEnv()
	e.resRepo.reservations = []domain.Reservation{reservation(1, "08:00", []int64{10})}

	req := baseRequest()
	req.DurationMinutes = 180 // дольше 120-минутного вхождения

	resp, err := e.usecase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Data.Slots)
}

func TestFindReservedSlots_BandFilter(t *testing.T) {
	e := newEnv()

	tooBig := reservation(1, "08:00", []int64{10})
	tooBig.MinCases = iPtr(100)

	fits := reservation(2, "09:00", []int64{11})
	fits.MinCases = iPtr(20)
	fits.MaxCases = iPtr(100)

	e.resRepo.reservations = []domain.Reservation{tooBig, fits}

	resp, err := e.usecase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Data.Slots, 1)
	assert.Equal(t, int64(2), resp.Data.Slots[0].ReservationID)
	assert.Equal(t, "20-100", resp.Data.Slots[0].BandLabel)
}

func TestFindReservedSlots_CarrierMismatch(t *testing.T) {
	e := newEnv()
	foreign := reservation(1, "08:00", []int64{10})
	foreign.CarrierIDs = []int64{99}
	e.resRepo.reservations = []domain.Reservation{foreign}

	resp, err := e.usecase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Data.Slots)
}

func TestFindReservedSlots_SiteLimit(t *testing.T) {
	e := newEnv()
	e.siteRepo.site.MaximumReservationSlots = 1

	carrierBound := reservation(1, "08:00", []int64{10})
	carrierBound.CarrierIDs = []int64{55}
	e.resRepo.reservations = []domain.Reservation{
		reservation(2, "09:00", []int64{11}),
		carrierBound,
	}

	resp, err := e.usecase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Data.Slots, 1)
	// Лимит срезает хвост после упорядочивания по слоям
	assert.Equal(t, int64(1), resp.Data.Slots[0].ReservationID)
}

func TestFindReservedSlots_PastOccurrencesExcluded(t *testing.T) {
	e := newEnv()
	e.resRepo.reservations = []domain.Reservation{
		reservation(1, "08:00", []int64{10}),
		reservation(2, "15:00", []int64{11}),
	}

	req := baseRequest()
	req.CurrentUTCTime = searchDay.Add(12 * time.Hour)

	resp, err := e.usecase().Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Data.Slots, 1)
	assert.Equal(t, int64(2), resp.Data.Slots[0].ReservationID)
}

func TestFindReservedSlots_Validation(t *testing.T) {
	e := newEnv()

	_, err := e.usecase().Execute(context.Background(), &Request{SiteID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	req := baseRequest()
	req.CurrentUTCTime = time.Time{}
	_, err = e.usecase().Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
