package validate_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSiteRepo struct {
	site  *domain.Site
	doors []domain.Door
	docks []domain.Dock
}

func (f *fakeSiteRepo) GetByID(_ context.Context, siteID int64) (*domain.Site, error) {
	if f.site == nil || f.site.ID != siteID {
		return nil, site.ErrSiteNotFound
	}
	return f.site, nil
}

func (f *fakeSiteRepo) ListDoorsByIDs(_ context.Context, doorIDs []int64) ([]domain.Door, error) {
	var out []domain.Door
	for _, d := range f.doors {
		for _, id := range doorIDs {
			if d.ID == id {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func (f *fakeSiteRepo) ListDocksByIDs(_ context.Context, dockIDs []int64) ([]domain.Dock, error) {
	var out []domain.Dock
	for _, d := range f.docks {
		for _, id := range dockIDs {
			if d.ID == id {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

type fakeApptRepo struct {
	occupied bool
	gotFrom  time.Time
	gotTo    time.Time
	gotExcl  int64
	gotDoors []int64
}

func (f *fakeApptRepo) AnyBlockingOnDoors(_ context.Context, _ int64, doorIDs []int64, from, to time.Time, excludeID int64) (bool, error) {
	f.gotDoors = doorIDs
	f.gotFrom = from
	f.gotTo = to
	f.gotExcl = excludeID
	return f.occupied, nil
}

func newRepos() (*fakeSiteRepo, *fakeApptRepo) {
	return &fakeSiteRepo{
		site: &domain.Site{ID: 1, TimeZone: "UTC"},
		doors: []domain.Door{
			{ID: 10, DockID: 5, Active: true, Name: "D-10"},
			{ID: 11, DockID: 5, Active: false, Name: "D-11"},
		},
		docks: []domain.Dock{
			{ID: 5, Name: "Dock A"},
		},
	}, &fakeApptRepo{}
}

func TestValidateAppointment_Valid(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:               1,
		DoorIDs:              []int64{10},
		StartTime:            start,
		DurationMinutes:      60,
		CurrentUTCTime:       start.Add(-24 * time.Hour),
		ExcludeAppointmentID: 42,
	})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.False(t, resp.Occupied)
	assert.Empty(t, resp.Messages)

	// Перепроверка занятости идёт точным окном с исключением переносимой встречи
	assert.Equal(t, start, apptRepo.gotFrom)
	assert.Equal(t, start.Add(time.Hour), apptRepo.gotTo)
	assert.Equal(t, int64(42), apptRepo.gotExcl)
}

func TestValidateAppointment_Occupied(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	apptRepo.occupied = true
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:          1,
		DoorIDs:         []int64{10},
		StartTime:       time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.True(t, resp.Occupied)
}

func TestValidateAppointment_InactiveDoor(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:          1,
		DoorIDs:         []int64{10, 11},
		StartTime:       time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0].Text, "D-11")
}

func TestValidateAppointment_DoorNotFound(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SiteID:          1,
		DoorIDs:         []int64{99},
		StartTime:       time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrDoorNotFound)
}

func TestValidateAppointment_CutoffMessage(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	siteRepo.docks[0].ScheduleCutoffTime = types.TimeString("14:00")
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	// Текущий момент позже cutoff, слот на сегодня: фиксация не блокируется,
	// но сопровождается пометкой
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:            1,
		DoorIDs:           []int64{10},
		StartTime:         time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC),
		DurationMinutes:   60,
		CurrentUTCTime:    time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC),
		SameDayDisallowed: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, domain.CodeDockCutoff, resp.Messages[0].Code)
}

func TestValidateAppointment_SiteNotFound(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SiteID:          7,
		DoorIDs:         []int64{10},
		StartTime:       time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestValidateAppointment_Validation(t *testing.T) {
	siteRepo, apptRepo := newRepos()
	uc := NewUseCase(siteRepo, apptRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SiteID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		SiteID:    1,
		DoorIDs:   []int64{10},
		StartTime: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "zero duration")
}
