package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/capacity"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/ptr"
)

// OrderModel заказ в теле запроса подбора слотов
type OrderModel struct {
	ID          int64              `json:"id"`
	VendorID    int64              `json:"vendorId"`
	DueDate     string             `json:"dueDate"` // YYYY-MM-DD
	CaseCount   int                `json:"caseCount"`
	PalletCount int                `json:"palletCount"`
	Details     []OrderDetailModel `json:"details,omitempty"`
}

// OrderDetailModel строка заказа в теле запроса
type OrderDetailModel struct {
	ID        int64 `json:"id"`
	VendorID  int64 `json:"vendorId"`
	RackID    int64 `json:"rackId,omitempty"`
	CaseCount *int  `json:"caseCount,omitempty"`
	PalletHI  *int  `json:"palletHi,omitempty"`
	PalletTI  *int  `json:"palletTi,omitempty"`
}

// ToDomainOrder конвертирует заказ в доменную модель (с парсингом даты)
func (m *OrderModel) ToDomainOrder() (domain.SlotOrder, error) {
	order := domain.SlotOrder{
		ID:          m.ID,
		VendorID:    m.VendorID,
		CaseCount:   m.CaseCount,
		PalletCount: m.PalletCount,
	}
	if m.DueDate != "" {
		due, err := time.Parse(domain.DateFormat, m.DueDate)
		if err != nil {
			return order, fmt.Errorf("order %d: %w", m.ID, err)
		}
		order.DueDate = &due
	}
	for _, d := range m.Details {
		order.Details = append(order.Details, domain.OrderDetail{
			ID:        d.ID,
			OrderID:   m.ID,
			VendorID:  d.VendorID,
			RackID:    d.RackID,
			CaseCount: d.CaseCount,
			PalletHI:  d.PalletHI,
			PalletTI:  d.PalletTI,
		})
	}
	return order, nil
}

// ToDomainOrders конвертирует набор заказов запроса
func ToDomainOrders(models []OrderModel) ([]domain.SlotOrder, error) {
	orders := make([]domain.SlotOrder, 0, len(models))
	for i := range models {
		order, err := models[i].ToDomainOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// MessageModel рекомендательное сообщение движка
type MessageModel struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// MessageModels конвертирует сообщения движка в HTTP модели
func MessageModels(messages []domain.Message) []MessageModel {
	if len(messages) == 0 {
		return nil
	}
	models := make([]MessageModel, len(messages))
	for i, m := range messages {
		models[i] = MessageModel{Code: m.Code, Text: m.Text}
	}
	return models
}

// SlotVendorModel поставщик, превысивший дневной лимит загрузок
type SlotVendorModel struct {
	VendorID     int64  `json:"vendorId"`
	Name         string `json:"name"`
	MaxLoadCount int    `json:"maxLoadCount"`
	LoadCount    int    `json:"loadCount"`
}

// SlotVendorModels конвертирует предупреждения по поставщикам
func SlotVendorModels(vendors []domain.SlotVendor) []SlotVendorModel {
	if len(vendors) == 0 {
		return nil
	}
	models := make([]SlotVendorModel, len(vendors))
	for i, v := range vendors {
		models[i] = SlotVendorModel{
			VendorID:     v.VendorID,
			Name:         v.Name,
			MaxLoadCount: v.MaxLoadCount,
			LoadCount:    v.LoadCount,
		}
	}
	return models
}

// DockCapacityModel дневной срез ёмкости дока
type DockCapacityModel struct {
	DockID   int64  `json:"dockId"`
	DockName string `json:"dockName"`
	Date     string `json:"date"`

	UnreservedApptsLimit     *int `json:"unreservedApptsLimit,omitempty"`
	ReservedApptsLimit       *int `json:"reservedApptsLimit,omitempty"`
	UnreservedApptsScheduled int  `json:"unreservedApptsScheduled"`
	ReservedApptsScheduled   int  `json:"reservedApptsScheduled"`
	ReservedApptsUnscheduled int  `json:"reservedApptsUnscheduled"`

	UnreservedCasesLimit     *int    `json:"unreservedCasesLimit,omitempty"`
	ReservedCasesLimit       *int    `json:"reservedCasesLimit,omitempty"`
	UnreservedCasesScheduled float64 `json:"unreservedCasesScheduled"`
	ReservedCasesScheduled   float64 `json:"reservedCasesScheduled"`
	ReservedCasesUnscheduled float64 `json:"reservedCasesUnscheduled"`

	UnreservedPalletsLimit     *int    `json:"unreservedPalletsLimit,omitempty"`
	ReservedPalletsLimit       *int    `json:"reservedPalletsLimit,omitempty"`
	UnreservedPalletsScheduled float64 `json:"unreservedPalletsScheduled"`
	ReservedPalletsScheduled   float64 `json:"reservedPalletsScheduled"`
	ReservedPalletsUnscheduled float64 `json:"reservedPalletsUnscheduled"`
}

// DockCapacityModels конвертирует срезы ёмкости в HTTP модели
func DockCapacityModels(capacities []capacity.DockDaily) []DockCapacityModel {
	if len(capacities) == 0 {
		return nil
	}
	models := make([]DockCapacityModel, len(capacities))
	for i, c := range capacities {
		models[i] = DockCapacityModel{
			DockID:   c.DockID,
			DockName: c.DockName,
			Date:     c.Date.Format(domain.DateFormat),

			UnreservedApptsLimit:     c.UnreservedApptsLimit,
			ReservedApptsLimit:       c.ReservedApptsLimit,
			UnreservedApptsScheduled: c.UnreservedApptsScheduled,
			ReservedApptsScheduled:   c.ReservedApptsScheduled,
			ReservedApptsUnscheduled: c.ReservedApptsUnscheduled,

			UnreservedCasesLimit:     c.UnreservedCasesLimit,
			ReservedCasesLimit:       c.ReservedCasesLimit,
			UnreservedCasesScheduled: c.UnreservedCasesScheduled,
			ReservedCasesScheduled:   c.ReservedCasesScheduled,
			ReservedCasesUnscheduled: c.ReservedCasesUnscheduled,

			UnreservedPalletsLimit:     c.UnreservedPalletsLimit,
			ReservedPalletsLimit:       c.ReservedPalletsLimit,
			UnreservedPalletsScheduled: c.UnreservedPalletsScheduled,
			ReservedPalletsScheduled:   c.ReservedPalletsScheduled,
			ReservedPalletsUnscheduled: c.ReservedPalletsUnscheduled,
		}
	}
	return models
}

// FormatDate локальная дата в формате YYYY-MM-DD; nil остаётся nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Ptr(t.Format(domain.DateFormat))
}
