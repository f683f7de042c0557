package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestOrderDetail_PalletEstimate(t *testing.T) {
	d := OrderDetail{
		CaseCount: intPtr(120),
		PalletHI:  intPtr(10), // cases per layer
		PalletTI:  intPtr(4),  // layers per pallet
	}
	assert.True(t, d.HasCompletePalletData())
	assert.InDelta(t, 3.0, d.PalletEstimate(), 1e-9)
}

func TestOrderDetail_HasCompletePalletData(t *testing.T) {
	assert.False(t, (&OrderDetail{}).HasCompletePalletData())
	assert.False(t, (&OrderDetail{CaseCount: intPtr(10), PalletHI: intPtr(0), PalletTI: intPtr(4)}).HasCompletePalletData())
	assert.False(t, (&OrderDetail{CaseCount: intPtr(10), PalletHI: intPtr(5)}).HasCompletePalletData())
}

func TestOrderTotalUnits(t *testing.T) {
	orders := []SlotOrder{
		{CaseCount: 100, PalletCount: 4},
		{CaseCount: 50, PalletCount: 2},
	}

	assert.Equal(t, 150.0, OrderTotalUnits(UnitTypeCases, nil, orders))
	assert.Equal(t, 6.0, OrderTotalUnits(UnitTypePallets, nil, orders))

	// Переданный паллетный объём заменяет суммарный только для паллетных площадок
	assert.Equal(t, 10.0, OrderTotalUnits(UnitTypePallets, intPtr(10), orders))
	assert.Equal(t, 150.0, OrderTotalUnits(UnitTypeCases, intPtr(10), orders))
}

func TestCollectVendorIDs(t *testing.T) {
	orders := []SlotOrder{
		{VendorID: 7, Details: []OrderDetail{{VendorID: 7}, {VendorID: 9}}},
		{VendorID: 9},
		{VendorID: 11},
	}

	ids := CollectVendorIDs(orders)
	assert.Equal(t, []int64{7, 9, 11}, ids)
}

func TestAppointmentStatus_BlocksSlot(t *testing.T) {
	assert.True(t, StatusScheduled.BlocksSlot())
	assert.True(t, StatusGatedIn.BlocksSlot())
	assert.False(t, StatusCancelled.BlocksSlot())
	assert.False(t, StatusNoShow.BlocksSlot())
}
