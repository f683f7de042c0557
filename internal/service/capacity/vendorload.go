package capacity

import "github.com/m04kA/SMC-DockSchedulingService/internal/domain"

// CheckVendorLoadCounts проверяет дневные лимиты загрузок поставщиков.
//
// Встреча засчитывается поставщику, если поставщик указан в любом её заказе
// или в любой строке заказа. Превысившие лимит поставщики возвращаются с
// фактическим счётчиком (существующие встречи + 1 ожидающая); решение
// блокировать подбор остаётся за вызывающей стороной.
func CheckVendorLoadCounts(vendors []domain.Vendor, appointments []domain.Appointment) []domain.SlotVendor {
	var result []domain.SlotVendor

	for i := range vendors {
		v := &vendors[i]
		if v.MaxLoadCount == nil {
			continue
		}

		loadCount := 0
		for j := range appointments {
			if appointments[j].HasVendor(v.ID) {
				loadCount++
			}
		}

		if loadCount >= *v.MaxLoadCount {
			result = append(result, domain.SlotVendor{
				VendorID:     v.ID,
				Name:         v.Name,
				MaxLoadCount: *v.MaxLoadCount,
				LoadCount:    loadCount + 1,
			})
		}
	}

	return result
}
