package resolve_door_group

import (
	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	resolveDoorGroup "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
)

// ResolveDoorGroupRequest HTTP request model
type ResolveDoorGroupRequest struct {
	Orders            []handlers.OrderModel `json:"orders"`
	DoorGroupID       int64                 `json:"doorGroupId,omitempty"`
	CarrierID         int64                 `json:"carrierId,omitempty"`
	DeliveryCarrierID int64                 `json:"deliveryCarrierId,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP модели
func (m *ResolveDoorGroupRequest) ToUseCaseRequest(siteID int64) (*resolveDoorGroup.Request, error) {
	orders, err := handlers.ToDomainOrders(m.Orders)
	if err != nil {
		return nil, err
	}
	return &resolveDoorGroup.Request{
		SiteID:            siteID,
		Orders:            orders,
		DoorGroupID:       m.DoorGroupID,
		CarrierID:         m.CarrierID,
		DeliveryCarrierID: m.DeliveryCarrierID,
	}, nil
}

// ResolveDoorGroupResponse HTTP response model
type ResolveDoorGroupResponse struct {
	Success  bool                    `json:"success"`
	Messages []handlers.MessageModel `json:"messages,omitempty"`
	Data     DoorGroupAndDocks       `json:"data"`
}

// DoorGroupAndDocks разрешённая группа дверей и её доки
type DoorGroupAndDocks struct {
	DoorGroupID          *int64      `json:"doorGroupId"`
	DoorGroupName        string      `json:"doorGroupName,omitempty"`
	DockList             []DockModel `json:"dockList,omitempty"`
	DeliveryWindowExists bool        `json:"deliveryWindowExists"`
	FirstDate            *string     `json:"firstDate,omitempty"`
	LastDate             *string     `json:"lastDate,omitempty"`
	IdealDate            *string     `json:"idealDate,omitempty"`
}

// DockModel док группы с допустимым диапазоном дат поставки
type DockModel struct {
	DockID    int64   `json:"dockId"`
	DockName  string  `json:"dockName"`
	FirstDate *string `json:"firstDate,omitempty"`
	LastDate  *string `json:"lastDate,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveDoorGroup.Response) *ResolveDoorGroupResponse {
	out := &ResolveDoorGroupResponse{
		Success:  resp.Success,
		Messages: handlers.MessageModels(resp.Messages),
		Data: DoorGroupAndDocks{
			DoorGroupID:          resp.Data.DoorGroupID,
			DoorGroupName:        resp.Data.DoorGroupName,
			DeliveryWindowExists: resp.Data.DeliveryWindowExists,
			FirstDate:            handlers.FormatDate(resp.Data.FirstDate),
			LastDate:             handlers.FormatDate(resp.Data.LastDate),
			IdealDate:            handlers.FormatDate(resp.Data.IdealDate),
		},
	}
	for _, item := range resp.Data.DockList {
		out.Data.DockList = append(out.Data.DockList, DockModel{
			DockID:    item.DockID,
			DockName:  item.DockName,
			FirstDate: handlers.FormatDate(item.FirstDate),
			LastDate:  handlers.FormatDate(item.LastDate),
		})
	}
	return out
}
