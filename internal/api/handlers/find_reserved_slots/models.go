package find_reserved_slots

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	findReservedSlots "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_reserved_slots"
)

// FindSlotsRequest HTTP request model
type FindSlotsRequest struct {
	Orders          []handlers.OrderModel `json:"orders"`
	DurationMinutes int                   `json:"durationMinutes"`

	// RequestedDate конкретная дата подбора, YYYY-MM-DD; пустая строка включает обход дат
	RequestedDate string `json:"requestedDate,omitempty"`

	DoorGroupID       int64 `json:"doorGroupId,omitempty"`
	CarrierID         int64 `json:"carrierId,omitempty"`
	DeliveryCarrierID int64 `json:"deliveryCarrierId,omitempty"`

	PalletOverride       *int  `json:"palletOverride,omitempty"`
	IsCarrierCaller      bool  `json:"isCarrierCaller,omitempty"`
	ExcludeAppointmentID int64 `json:"excludeAppointmentId,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP модели.
// Момент "сейчас" фиксируется на границе API.
func (m *FindSlotsRequest) ToUseCaseRequest(siteID int64, now time.Time) (*findReservedSlots.Request, error) {
	orders, err := handlers.ToDomainOrders(m.Orders)
	if err != nil {
		return nil, err
	}

	req := &findReservedSlots.Request{
		SiteID:               siteID,
		Orders:               orders,
		DurationMinutes:      m.DurationMinutes,
		CurrentUTCTime:       now,
		DoorGroupID:          m.DoorGroupID,
		CarrierID:            m.CarrierID,
		DeliveryCarrierID:    m.DeliveryCarrierID,
		PalletOverride:       m.PalletOverride,
		IsCarrierCaller:      m.IsCarrierCaller,
		ExcludeAppointmentID: m.ExcludeAppointmentID,
	}

	if m.RequestedDate != "" {
		date, err := time.Parse(domain.DateFormat, m.RequestedDate)
		if err != nil {
			return nil, err
		}
		req.RequestedDate = &date
	}
	return req, nil
}

// FindSlotsResponse HTTP response model
type FindSlotsResponse struct {
	Success  bool                    `json:"success"`
	Messages []handlers.MessageModel `json:"messages,omitempty"`
	Data     SlotListModel           `json:"data"`
}

// SlotListModel найденные вхождения резерваций
type SlotListModel struct {
	DoorGroupID    *int64                     `json:"doorGroupId"`
	DoorGroupName  string                     `json:"doorGroupName,omitempty"`
	Slots          []SlotModel                `json:"slots"`
	VendorWarnings []handlers.SlotVendorModel `json:"vendorWarnings,omitempty"`
}

// SlotModel вхождение шаблона резервации; занимает все свои двери целиком
type SlotModel struct {
	Hash          string    `json:"hash"`
	ReservationID int64     `json:"reservationId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	DoorIDs       []int64   `json:"doorIds"`
	DockID        int64     `json:"dockId"`
	BandLabel     string    `json:"bandLabel,omitempty"`
	CarrierBound  bool      `json:"carrierBound"`
	VendorBound   bool      `json:"vendorBound"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findReservedSlots.Response) *FindSlotsResponse {
	out := &FindSlotsResponse{
		Success:  resp.Success,
		Messages: handlers.MessageModels(resp.Messages),
		Data: SlotListModel{
			DoorGroupID:    resp.Data.DoorGroupID,
			DoorGroupName:  resp.Data.DoorGroupName,
			Slots:          make([]SlotModel, len(resp.Data.Slots)),
			VendorWarnings: handlers.SlotVendorModels(resp.Data.VendorWarnings),
		},
	}
	for i, s := range resp.Data.Slots {
		out.Data.Slots[i] = SlotModel{
			Hash:          s.Hash,
			ReservationID: s.ReservationID,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			DoorIDs:       s.DoorIDs,
			DockID:        s.DockID,
			BandLabel:     s.BandLabel,
			CarrierBound:  s.CarrierBound,
			VendorBound:   s.VendorBound,
		}
	}
	return out
}
