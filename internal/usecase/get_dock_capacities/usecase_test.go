package get_dock_capacities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSiteRepo struct {
	site  *domain.Site
	docks []domain.Dock
	doors []domain.Door
}

func (f *fakeSiteRepo) GetByID(_ context.Context, siteID int64) (*domain.Site, error) {
	if f.site == nil || f.site.ID != siteID {
		return nil, site.ErrSiteNotFound
	}
	return f.site, nil
}

func (f *fakeSiteRepo) ListDocks(_ context.Context, _ int64) ([]domain.Dock, error) {
	return f.docks, nil
}

func (f *fakeSiteRepo) ListDoors(_ context.Context, _ int64) ([]domain.Door, error) {
	return f.doors, nil
}

type fakeApptRepo struct {
	appointments []domain.Appointment
	gotFrom      time.Time
	gotTo        time.Time
}

func (f *fakeApptRepo) ListBlockingInWindow(_ context.Context, _ int64, from, to time.Time) ([]domain.Appointment, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.appointments, nil
}

type fakeResRepo struct {
	reservations []domain.Reservation
}

func (f *fakeResRepo) ListActiveBySite(_ context.Context, _ int64) ([]domain.Reservation, error) {
	return f.reservations, nil
}

func intPtr(v int) *int { return &v }

func TestGetDockCapacities(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	siteRepo := &fakeSiteRepo{
		site: &domain.Site{ID: 1, TimeZone: "UTC"},
		docks: []domain.Dock{
			{ID: 5, Name: "Dock A", UnreservedApptsLimit: intPtr(10)},
			{ID: 6, Name: "Dock B"},
		},
		doors: []domain.Door{
			{ID: 10, DockID: 5},
			{ID: 20, DockID: 6},
		},
	}
	apptRepo := &fakeApptRepo{
		appointments: []domain.Appointment{
			{ID: 100, DoorIDs: []int64{10}, Status: domain.StatusScheduled,
				StartTime: day.Add(8 * time.Hour), ScheduledDuration: 60, TotalCaseCount: 40},
		},
	}

	uc := NewUseCase(siteRepo, apptRepo, &fakeResRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:       1,
		Date:         day,
		PendingAppt:  true,
		PendingCases: 25,
	})
	require.NoError(t, err)
	require.Len(t, resp.Capacities, 2)

	// Встречи запрашиваются окном бизнес-дня
	assert.Equal(t, day, apptRepo.gotFrom)
	assert.Equal(t, day.AddDate(0, 0, 1), apptRepo.gotTo)

	dockA := resp.Capacities[0]
	assert.Equal(t, int64(5), dockA.DockID)
	assert.Equal(t, 1, dockA.UnreservedApptsScheduled)
	assert.Equal(t, 40.0, dockA.UnreservedCasesScheduled)
	assert.Equal(t, 1, dockA.ApptChange)
	assert.Equal(t, 25.0, dockA.CaseChange)
	assert.True(t, dockA.HasCapacity())

	dockB := resp.Capacities[1]
	assert.Equal(t, int64(6), dockB.DockID)
	assert.Equal(t, 0, dockB.UnreservedApptsScheduled)
}

func TestGetDockCapacities_BusinessDayWindow(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	siteRepo := &fakeSiteRepo{
		site: &domain.Site{ID: 1, TimeZone: "UTC", BusinessDayOffset: 6},
	}
	apptRepo := &fakeApptRepo{}

	uc := NewUseCase(siteRepo, apptRepo, &fakeResRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SiteID: 1, Date: day})
	require.NoError(t, err)

	// Бизнес-день начинается в 06:00 и заканчивается в 06:00 следующих суток
	assert.Equal(t, day.Add(6*time.Hour), apptRepo.gotFrom)
	assert.Equal(t, day.AddDate(0, 0, 1).Add(6*time.Hour), apptRepo.gotTo)
}

func TestGetDockCapacities_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSiteRepo{}, &fakeApptRepo{}, &fakeResRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SiteID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SiteID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SiteID: 9, Date: time.Now()})
	assert.ErrorIs(t, err, ErrSiteNotFound)
}
