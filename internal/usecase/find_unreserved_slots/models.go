package find_unreserved_slots

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/capacity"
)

// Request параметры свободного подбора слотов
type Request struct {
	SiteID int64
	Orders []domain.SlotOrder

	// DurationMinutes длительность встречи; ограничена сверху сутками
	DurationMinutes int

	// RequestedDate конкретная дата подбора; nil включает обход дат от идеальной
	// даты набора заказов
	RequestedDate *time.Time

	// CurrentUTCTime момент вычисления; передаётся вызывающей стороной,
	// движок не обращается к системным часам
	CurrentUTCTime time.Time

	DoorGroupID       int64 // 0: определить по заказам
	CarrierID         int64
	DeliveryCarrierID int64

	// PalletOverride заменяет суммарный паллетный объём заказов
	PalletOverride *int

	// IsCarrierCaller включает скрытие слотов за cutoff-временем дока
	IsCarrierCaller bool

	// ForAutoAppoint режим автоназначения: поиск в фиксированном окне от
	// текущего дня, все двери группы (включая неактивные), без фильтра по
	// полосе объёма двери, без закрытий, оборудования и лимитов поставщиков
	ForAutoAppoint bool

	// ExcludeAppointmentID переносимая встреча: не конфликтует сама с собой
	// и возвращает свой вклад в дневные квоты дока
	ExcludeAppointmentID int64

	// MaxResults предел числа слотов; 0: без ограничения
	MaxResults int

	// QuotaOverrides явные дневные лимиты доков; непустой список включает
	// проверку квот даже на площадках без DockThresholdFeature
	QuotaOverrides []domain.DockQuotaOverride
}

// Response результат свободного подбора
type Response struct {
	Success  bool
	Messages []domain.Message
	Data     SlotList
}

// SlotList найденные слоты и сопутствующие срезы
type SlotList struct {
	DoorGroupID   *int64
	DoorGroupName string

	Slots []Slot

	// DockCapacities дневные срезы ёмкости доков, построенные по ходу подбора
	DockCapacities []capacity.DockDaily

	// VendorWarnings поставщики, превысившие дневной лимит загрузок
	VendorWarnings []domain.SlotVendor
}

// Slot кандидатный слот на одной двери
type Slot struct {
	Hash      string
	StartTime time.Time // UTC
	EndTime   time.Time // UTC
	DoorID    int64
	DoorName  string
	DockID    int64
	Priority  int

	// BandLabel полоса объёма двери в единицах площадки, "<min>-<max>"
	BandLabel string
}
