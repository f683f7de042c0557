package find_reserved_slots

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// Request параметры подбора по шаблонам резерваций
type Request struct {
	SiteID int64
	Orders []domain.SlotOrder

	// DurationMinutes требуемая длительность; вхождение подходит, только
	// если его длительность не меньше
	DurationMinutes int

	// RequestedDate конкретная дата подбора; nil включает обход дат от идеальной
	RequestedDate *time.Time

	// CurrentUTCTime момент вычисления; движок не обращается к системным часам
	CurrentUTCTime time.Time

	DoorGroupID       int64
	CarrierID         int64
	DeliveryCarrierID int64

	PalletOverride *int

	IsCarrierCaller bool

	// ExcludeAppointmentID переносимая встреча не конфликтует сама с собой
	ExcludeAppointmentID int64
}

// Response результат подбора по резервациям
type Response struct {
	Success  bool
	Messages []domain.Message
	Data     SlotList
}

// SlotList найденные вхождения резерваций
type SlotList struct {
	DoorGroupID   *int64
	DoorGroupName string

	Slots []Slot

	// VendorWarnings поставщики, превысившие дневной лимит загрузок
	VendorWarnings []domain.SlotVendor
}

// Slot вхождение шаблона резервации, пригодное для бронирования.
// Занимает весь набор дверей шаблона целиком.
type Slot struct {
	Hash          string
	ReservationID int64
	StartTime     time.Time // UTC
	EndTime       time.Time // UTC
	DoorIDs       []int64
	DockID        int64

	// BandLabel полоса объёма вхождения в единицах площадки
	BandLabel string

	// CarrierBound/VendorBound шаблон ограничен перевозчиками/поставщиками;
	// определяют порядок выдачи
	CarrierBound bool
	VendorBound  bool
}
