package find_unreserved_slots

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	findUnreservedSlots "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_unreserved_slots"
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

	PalletOverride       *int                 `json:"palletOverride,omitempty"`
	IsCarrierCaller      bool                 `json:"isCarrierCaller,omitempty"`
	ForAutoAppoint       bool                 `json:"forAutoAppoint,omitempty"`
	ExcludeAppointmentID int64                `json:"excludeAppointmentId,omitempty"`
	MaxResults           int                  `json:"maxResults,omitempty"`
	QuotaOverrides       []QuotaOverrideModel `json:"quotaOverrides,omitempty"`
}

// QuotaOverrideModel явные дневные лимиты дока
type QuotaOverrideModel struct {
	DockID                 int64 `json:"dockId"`
	UnreservedApptsLimit   *int  `json:"unreservedApptsLimit,omitempty"`
	ReservedApptsLimit     *int  `json:"reservedApptsLimit,omitempty"`
	UnreservedCasesLimit   *int  `json:"unreservedCasesLimit,omitempty"`
	ReservedCasesLimit     *int  `json:"reservedCasesLimit,omitempty"`
	UnreservedPalletsLimit *int  `json:"unreservedPalletsLimit,omitempty"`
	ReservedPalletsLimit   *int  `json:"reservedPalletsLimit,omitempty"`
}

func (m *QuotaOverrideModel) toDomain() domain.DockQuotaOverride {
	return domain.DockQuotaOverride{
		DockID:                 m.DockID,
		UnreservedApptsLimit:   m.UnreservedApptsLimit,
		ReservedApptsLimit:     m.ReservedApptsLimit,
		UnreservedCasesLimit:   m.UnreservedCasesLimit,
		ReservedCasesLimit:     m.ReservedCasesLimit,
		UnreservedPalletsLimit: m.UnreservedPalletsLimit,
		ReservedPalletsLimit:   m.ReservedPalletsLimit,
	}
}

// ToUseCaseRequest создает запрос use case из HTTP модели.
// Момент "сейчас" фиксируется на границе API.
func (m *FindSlotsRequest) ToUseCaseRequest(siteID int64, now time.Time) (*findUnreservedSlots.Request, error) {
	orders, err := handlers.ToDomainOrders(m.Orders)
	if err != nil {
		return nil, err
	}

	req := &findUnreservedSlots.Request{
		SiteID:               siteID,
		Orders:               orders,
		DurationMinutes:      m.DurationMinutes,
		CurrentUTCTime:       now,
		DoorGroupID:          m.DoorGroupID,
		CarrierID:            m.CarrierID,
		DeliveryCarrierID:    m.DeliveryCarrierID,
		PalletOverride:       m.PalletOverride,
		IsCarrierCaller:      m.IsCarrierCaller,
		ForAutoAppoint:       m.ForAutoAppoint,
		ExcludeAppointmentID: m.ExcludeAppointmentID,
		MaxResults:           m.MaxResults,
	}

	if m.RequestedDate != "" {
		date, err := time.Parse(domain.DateFormat, m.RequestedDate)
		if err != nil {
			return nil, err
		}
		req.RequestedDate = &date
	}
	for i := range m.QuotaOverrides {
		req.QuotaOverrides = append(req.QuotaOverrides, m.QuotaOverrides[i].toDomain())
	}
	return req, nil
}

// FindSlotsResponse HTTP response model
type FindSlotsResponse struct {
	Success  bool                    `json:"success"`
	Messages []handlers.MessageModel `json:"messages,omitempty"`
	Data     SlotListModel           `json:"data"`
}

// SlotListModel найденные слоты и сопутствующие срезы
type SlotListModel struct {
	DoorGroupID    *int64                       `json:"doorGroupId"`
	DoorGroupName  string                       `json:"doorGroupName,omitempty"`
	Slots          []SlotModel                  `json:"slots"`
	DockCapacities []handlers.DockCapacityModel `json:"dockCapacities,omitempty"`
	VendorWarnings []handlers.SlotVendorModel   `json:"vendorWarnings,omitempty"`
}

// SlotModel кандидатный слот на одной двери
type SlotModel struct {
	Hash      string    `json:"hash"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	DoorID    int64     `json:"doorId"`
	DoorName  string    `json:"doorName"`
	DockID    int64     `json:"dockId"`
	Priority  int       `json:"priority"`
	BandLabel string    `json:"bandLabel,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findUnreservedSlots.Response) *FindSlotsResponse {
	out := &FindSlotsResponse{
		Success:  resp.Success,
		Messages: handlers.MessageModels(resp.Messages),
		Data: SlotListModel{
			DoorGroupID:    resp.Data.DoorGroupID,
			DoorGroupName:  resp.Data.DoorGroupName,
			Slots:          make([]SlotModel, len(resp.Data.Slots)),
			DockCapacities: handlers.DockCapacityModels(resp.Data.DockCapacities),
			VendorWarnings: handlers.SlotVendorModels(resp.Data.VendorWarnings),
		},
	}
	for i, s := range resp.Data.Slots {
		out.Data.Slots[i] = SlotModel{
			Hash:      s.Hash,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			DoorID:    s.DoorID,
			DoorName:  s.DoorName,
			DockID:    s.DockID,
			Priority:  s.Priority,
			BandLabel: s.BandLabel,
		}
	}
	return out
}
