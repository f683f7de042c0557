package resolve_door_group

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
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSiteRepo struct {
	site             *domain.Site
	carrierOverrides []domain.SiteCarrier
	racks            []domain.Rack
	doorGroups       map[int64]*domain.DoorGroup
	doorsByGroup     map[int64][]domain.Door
	docks            map[int64]domain.Dock
	dockIDsByGroup   map[int64][]int64
}

func (f *fakeSiteRepo) GetByID(_ context.Context, siteID int64) (*domain.Site, error) {
	if f.site == nil || f.site.ID != siteID {
		return nil, site.ErrSiteNotFound
	}
	return f.site, nil
}

func (f *fakeSiteRepo) ListCarrierOverrides(_ context.Context, _ int64, carrierIDs []int64) ([]domain.SiteCarrier, error) {
	var out []domain.SiteCarrier
	for _, sc := range f.carrierOverrides {
		for _, id := range carrierIDs {
			if sc.CarrierID == id {
				out = append(out, sc)
			}
		}
	}
	return out, nil
}

func (f *fakeSiteRepo) ListRacks(_ context.Context, _ int64, rackIDs []int64) ([]domain.Rack, error) {
	var out []domain.Rack
	for _, r := range f.racks {
		for _, id := range rackIDs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeSiteRepo) GetDoorGroup(_ context.Context, _, doorGroupID int64) (*domain.DoorGroup, error) {
	if dg, ok := f.doorGroups[doorGroupID]; ok {
		return dg, nil
	}
	return nil, site.ErrDoorGroupNotFound
}

func (f *fakeSiteRepo) ListDoorsByDoorGroup(_ context.Context, doorGroupID int64) ([]domain.Door, error) {
	return f.doorsByGroup[doorGroupID], nil
}

func (f *fakeSiteRepo) ListDocksByIDs(_ context.Context, dockIDs []int64) ([]domain.Dock, error) {
	var out []domain.Dock
	for _, id := range dockIDs {
		if d, ok := f.docks[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeSiteRepo) ListDockIDsByDoorGroup(_ context.Context, doorGroupID int64) ([]int64, error) {
	return f.dockIDsByGroup[doorGroupID], nil
}

type fakeVendorRepo struct {
	vendors []domain.Vendor
}

func (f *fakeVendorRepo) ListBySite(_ context.Context, _ int64, vendorIDs []int64) ([]domain.Vendor, error) {
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

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func i64(v int64) *int64 { return &v }
func iPtr(v int) *int    { return &v }

// Площадка с двумя группами дверей, у каждой по одной активной двери на
// своём доке
func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{
		site: &domain.Site{
			ID:                      1,
			TimeZone:                "UTC",
			UnitType:                domain.UnitTypeCases,
			AllowApptOrdersDiffDock: true,
		},
		doorGroups: map[int64]*domain.DoorGroup{
			1: {ID: 1, SiteID: 1, Name: "Dry"},
			2: {ID: 2, SiteID: 1, Name: "Frozen"},
		},
		doorsByGroup: map[int64][]domain.Door{
			1: {
				{ID: 10, DockID: 5, DoorGroupID: 1, Active: true, MaxUnitCount: 1000},
				{ID: 11, DockID: 5, DoorGroupID: 1, Active: false, MaxUnitCount: 1000},
			},
			2: {
				{ID: 20, DockID: 6, DoorGroupID: 2, Active: true, MaxUnitCount: 1000},
			},
		},
		docks: map[int64]domain.Dock{
			5: {ID: 5, SiteID: 1, Name: "Dock A", EarlyScheduleThreshold: 5, LateScheduleThreshold: 3},
			6: {ID: 6, SiteID: 1, Name: "Dock B", EarlyScheduleThreshold: 5, LateScheduleThreshold: 3},
		},
		dockIDsByGroup: map[int64][]int64{1: {5}, 2: {6}},
	}
}

func TestResolveDoorGroup_ExplicitGroup(t *testing.T) {
	uc := NewUseCase(newFakeSiteRepo(), &fakeVendorRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:      1,
		DoorGroupID: 1,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 50},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.NotNil(t, resp.Data.DoorGroupID)
	assert.Equal(t, int64(1), *resp.Data.DoorGroupID)
	assert.Equal(t, "Dry", resp.Data.DoorGroupName)

	// Неактивная дверь группы не попадает в выдачу
	require.Len(t, resp.Data.DoorsByDock[5], 1)
	assert.Equal(t, int64(10), resp.Data.DoorsByDock[5][0].ID)

	require.Len(t, resp.Data.DockList, 1)
	assert.True(t, resp.Data.DeliveryWindowExists)
	require.NotNil(t, resp.Data.DockList[0].FirstDate)
	assert.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), *resp.Data.DockList[0].FirstDate)
	require.NotNil(t, resp.Data.IdealDate)
	assert.Equal(t, *datePtr(2026, 6, 10), *resp.Data.IdealDate)
}

func TestResolveDoorGroup_IncludeInactiveDoors(t *testing.T) {
	uc := NewUseCase(newFakeSiteRepo(), &fakeVendorRepo{}, nopLogger{})

	// Автоназначение рассматривает все двери группы, включая неактивные
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:               1,
		DoorGroupID:          1,
		IncludeInactiveDoors: true,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 50},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Len(t, resp.Data.DoorsByDock[5], 2)
	assert.Equal(t, int64(10), resp.Data.DoorsByDock[5][0].ID)
	assert.Equal(t, int64(11), resp.Data.DoorsByDock[5][1].ID)
}

func TestResolveDoorGroup_CarrierOverrideWins(t *testing.T) {
	repo := newFakeSiteRepo()
	repo.carrierOverrides = []domain.SiteCarrier{
		{SiteID: 1, CarrierID: 55, DoorGroupID: i64(2)},
	}
	uc := NewUseCase(repo, &fakeVendorRepo{}, nopLogger{})

	// Явно запрошена группа 1, но привязка перевозчика важнее
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:      1,
		DoorGroupID: 1,
		CarrierID:   55,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 50},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, int64(2), *resp.Data.DoorGroupID)
	assert.Equal(t, "Frozen", resp.Data.DoorGroupName)
}

func TestResolveDoorGroup_DominantByVolume(t *testing.T) {
	repo := newFakeSiteRepo()
	repo.site.DefaultDoorGroupID = i64(1)
	uc := NewUseCase(repo, &fakeVendorRepo{vendors: []domain.Vendor{
		{ID: 7, SiteID: 1, DoorGroupID: i64(1)},
		{ID: 8, SiteID: 1, DoorGroupID: i64(2)},
	}}, nopLogger{})

	// Большая часть объёма уходит поставщику группы 2
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID: 1,
		Orders: []domain.SlotOrder{
			{
				ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 40,
				Details: []domain.OrderDetail{
					{ID: 1, OrderID: 100, VendorID: 7, CaseCount: iPtr(10)},
					{ID: 2, OrderID: 100, VendorID: 8, CaseCount: iPtr(30)},
				},
			},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, int64(2), *resp.Data.DoorGroupID)
}

func TestResolveDoorGroup_RackRouting(t *testing.T) {
	repo := newFakeSiteRepo()
	repo.racks = []domain.Rack{{ID: 300, SiteID: 1, DoorGroupID: 2}}
	uc := NewUseCase(repo, &fakeVendorRepo{}, nopLogger{})

	// Поставщик без привязки: строка маршрутизируется по рэку
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID: 1,
		Orders: []domain.SlotOrder{
			{
				ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 20,
				Details: []domain.OrderDetail{
					{ID: 1, OrderID: 100, VendorID: 7, RackID: 300, CaseCount: iPtr(20)},
				},
			},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, int64(2), *resp.Data.DoorGroupID)
}

func TestResolveDoorGroup_NoDefaultDoorGroup(t *testing.T) {
	uc := NewUseCase(newFakeSiteRepo(), &fakeVendorRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SiteID: 1,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 50},
		},
	})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, domain.CodeNoDefaultDoorGroup, resp.Messages[0].Code)
}

func TestResolveDoorGroup_DockDateThreshold(t *testing.T) {
	repo := newFakeSiteRepo()
	uc := NewUseCase(repo, &fakeVendorRepo{}, nopLogger{})

	// Окна двух заказов не пересекаются для дока с порогами 5/3
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:      1,
		DoorGroupID: 1,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 50},
			{ID: 101, VendorID: 7, DueDate: datePtr(2026, 6, 30), CaseCount: 50},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.False(t, resp.Data.DeliveryWindowExists)
	require.Len(t, resp.Data.DockList, 1)
	assert.Nil(t, resp.Data.DockList[0].Range)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, domain.CodeDockDateThreshold, resp.Messages[0].Code)
}

func TestResolveDoorGroup_SameDockRestriction(t *testing.T) {
	repo := newFakeSiteRepo()
	repo.site.AllowApptOrdersDiffDock = false
	uc := NewUseCase(repo, &fakeVendorRepo{}, nopLogger{})

	// Заказ без строк невозможно отнести к единственному доку
	resp, err := uc.Execute(context.Background(), &Request{
		SiteID:      1,
		DoorGroupID: 1,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10), CaseCount: 50},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, domain.CodeSameDockRestriction, resp.Messages[0].Code)
}

func TestResolveDoorGroup_SiteNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSiteRepo(), &fakeVendorRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SiteID: 99,
		Orders: []domain.SlotOrder{
			{ID: 100, VendorID: 7, DueDate: datePtr(2026, 6, 10)},
		},
	})
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestResolveDoorGroup_Validation(t *testing.T) {
	uc := NewUseCase(newFakeSiteRepo(), &fakeVendorRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SiteID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		SiteID: 1,
		Orders: []domain.SlotOrder{{ID: 100, VendorID: 7}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "order without due date")
}
