package validate_appointment

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// Request параметры финальной проверки слота перед фиксацией брони
type Request struct {
	SiteID  int64
	DoorIDs []int64

	StartTime       time.Time // UTC
	DurationMinutes int

	// CurrentUTCTime момент вычисления
	CurrentUTCTime time.Time

	// ExcludeAppointmentID переносимая встреча не конфликтует сама с собой
	ExcludeAppointmentID int64

	IsCarrierCaller bool

	// SameDayDisallowed хотя бы один поставщик заказа запрещает бронь день-в-день
	SameDayDisallowed bool
}

// Response результат проверки
type Response struct {
	// Valid слот свободен и все двери пригодны
	Valid bool

	// Occupied слот занят блокирующей встречей
	Occupied bool

	Messages []domain.Message
}
