package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

func TestCheckVendorLoadCounts(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	appointments := []domain.Appointment{
		{ID: 1, StartTime: start, Orders: []domain.SlotOrder{{VendorID: 7}}},
		// Поставщик указан только в строке заказа тоже засчитывается
		{ID: 2, StartTime: start, Orders: []domain.SlotOrder{
			{VendorID: 99, Details: []domain.OrderDetail{{VendorID: 7}}},
		}},
		{ID: 3, StartTime: start, Orders: []domain.SlotOrder{{VendorID: 8}}},
	}

	vendors := []domain.Vendor{
		{ID: 7, Name: "Acme", MaxLoadCount: intPtr(2)},
		{ID: 8, Name: "Globex", MaxLoadCount: intPtr(2)},
		{ID: 9, Name: "Initech"}, // без лимита
	}

	result := CheckVendorLoadCounts(vendors, appointments)
	require.Len(t, result, 1)

	assert.Equal(t, int64(7), result[0].VendorID)
	assert.Equal(t, 2, result[0].MaxLoadCount)
	// Существующие встречи + одна ожидающая
	assert.Equal(t, 3, result[0].LoadCount)
}

func TestCheckVendorLoadCounts_UnderLimit(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: 1, Orders: []domain.SlotOrder{{VendorID: 7}}},
	}
	vendors := []domain.Vendor{{ID: 7, MaxLoadCount: intPtr(2)}}

	assert.Empty(t, CheckVendorLoadCounts(vendors, appointments))
}
