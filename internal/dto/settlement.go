package dto

import (
	"time"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
	"github.com/GlebRadaev/courier-settlement/pkg/money"
)

type SummaryQueryDTO struct {
	EcommerceID int64  `validate:"required,gt=0"`
	CourierID   int64  `validate:"required,gt=0"`
	From        string `validate:"omitempty,datetime=2006-01-02"`
	To          string `validate:"omitempty,datetime=2006-01-02"`
	View        string `validate:"omitempty,oneof=courier ecommerce"`
	PendingOnly bool
}

type DetailQueryDTO struct {
	EcommerceID int64  `validate:"required,gt=0"`
	CourierID   int64  `validate:"required,gt=0"`
	Date        string `validate:"required"`
	View        string `validate:"omitempty,oneof=courier ecommerce"`
}

type BatchRequestDTO struct {
	EcommerceID int64    `json:"ecommerce_id" validate:"required,gt=0" example:"1"`
	CourierID   int64    `json:"courier_id" validate:"required,gt=0" example:"2"`
	Dates       []string `json:"dates" example:"2024-01-05"`
	View        string   `json:"view,omitempty" validate:"omitempty,oneof=courier ecommerce" example:"ecommerce"`
}

type SettlementDayDTO struct {
	Date            string  `json:"date" example:"2024-01-05"`
	TotalOrders     int     `json:"total_orders" example:"1"`
	TotalCollected  string  `json:"total_collected" example:"50.00"`
	TotalServiceFee string  `json:"total_service_fee" example:"13.00"`
	TotalNet        string  `json:"total_net" example:"37.00"`
	MissingTariffs  int     `json:"missing_tariffs" example:"0"`
	State           string  `json:"state" example:"PENDING_VALIDATION"`
	PendingBy       *int64  `json:"pending_by,omitempty" example:"20"`
	PendingAt       *string `json:"pending_at,omitempty" example:"2024-01-06T10:00:00Z"`
	ValidatedBy     *int64  `json:"validated_by,omitempty"`
	ValidatedAt     *string `json:"validated_at,omitempty"`
}

type OrderLineDTO struct {
	OrderID         int64  `json:"order_id" example:"10"`
	OrderNumber     string `json:"order_number" example:"A-10"`
	CustomerName    string `json:"customer_name,omitempty" example:"Rosa"`
	PaymentMethod   string `json:"payment_method,omitempty" example:"CASH"`
	Collected       string `json:"collected" example:"50.00"`
	ClientFee       string `json:"client_fee" example:"8.00"`
	ClientFeeSource string `json:"client_fee_source" example:"tariff"`
	RiderFee        string `json:"rider_fee" example:"5.00"`
	RiderFeeSource  string `json:"rider_fee_source" example:"tariff"`
	TotalFee        string `json:"total_fee" example:"13.00"`
	Paid            bool   `json:"paid"`
	TariffMissing   bool   `json:"tariff_missing"`
}

type DayDetailDTO struct {
	Day    SettlementDayDTO `json:"day"`
	Orders []OrderLineDTO   `json:"orders"`
}

type SkippedDateDTO struct {
	Date  string `json:"date" example:"2024-01-05"`
	State string `json:"state" example:"VALIDATED"`
}

type TotalsDTO struct {
	Orders     int    `json:"orders" example:"1"`
	Collected  string `json:"collected" example:"50.00"`
	ServiceFee string `json:"service_fee" example:"13.00"`
	Net        string `json:"net" example:"37.00"`
}

type BatchResponseDTO struct {
	ReceiptID    string           `json:"receipt_id" example:"2b1c6a52-6f53-4a8e-9f0e-1d1c1f0b7a11"`
	UpdatedDates []string         `json:"updated_dates"`
	SkippedDates []SkippedDateDTO `json:"skipped_dates"`
	Totals       TotalsDTO        `json:"totals"`
	Message      string           `json:"message" example:"You confirmed S/ 37.00 across 1 days."`
}

type CounterpartyDTO struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Acme"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func FromSettlementDay(d domain.SettlementDay) SettlementDayDTO {
	return SettlementDayDTO{
		Date:            dates.Format(d.Date),
		TotalOrders:     d.TotalOrders,
		TotalCollected:  money.String(d.TotalCollected),
		TotalServiceFee: money.String(d.TotalServiceFee),
		TotalNet:        money.String(d.TotalNet),
		MissingTariffs:  d.MissingTariffs,
		State:           d.State.String(),
		PendingBy:       d.PendingBy,
		PendingAt:       formatTime(d.PendingAt),
		ValidatedBy:     d.ValidatedBy,
		ValidatedAt:     formatTime(d.ValidatedAt),
	}
}

func FromSettlementDays(days []domain.SettlementDay) []SettlementDayDTO {
	result := make([]SettlementDayDTO, 0, len(days))
	for _, d := range days {
		result = append(result, FromSettlementDay(d))
	}
	return result
}

func FromDayDetail(detail *domain.DayDetail) DayDetailDTO {
	orders := make([]OrderLineDTO, 0, len(detail.Orders))
	for _, line := range detail.Orders {
		orders = append(orders, OrderLineDTO{
			OrderID:         line.OrderID,
			OrderNumber:     line.OrderNumber,
			CustomerName:    line.CustomerName,
			PaymentMethod:   line.PaymentMethod,
			Collected:       money.String(line.Collected),
			ClientFee:       money.String(line.ClientFee),
			ClientFeeSource: string(line.ClientFeeSource),
			RiderFee:        money.String(line.RiderFee),
			RiderFeeSource:  string(line.RiderFeeSource),
			TotalFee:        money.String(line.TotalFee),
			Paid:            line.Paid,
			TariffMissing:   line.TariffMissing,
		})
	}
	return DayDetailDTO{Day: FromSettlementDay(detail.Day), Orders: orders}
}

func FromBatchResult(result *domain.BatchResult) BatchResponseDTO {
	updated := make([]string, 0, len(result.Updated))
	for _, d := range result.Updated {
		updated = append(updated, dates.Format(d))
	}
	skipped := make([]SkippedDateDTO, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, SkippedDateDTO{Date: dates.Format(s.Date), State: s.State.String()})
	}
	return BatchResponseDTO{
		ReceiptID:    result.ReceiptID.String(),
		UpdatedDates: updated,
		SkippedDates: skipped,
		Totals: TotalsDTO{
			Orders:     result.Totals.Orders,
			Collected:  money.String(result.Totals.Collected),
			ServiceFee: money.String(result.Totals.ServiceFee),
			Net:        money.String(result.Totals.Net),
		},
		Message: result.Message(),
	}
}

func FromCounterparties(parties []domain.Counterparty) []CounterpartyDTO {
	result := make([]CounterpartyDTO, 0, len(parties))
	for _, p := range parties {
		result = append(result, CounterpartyDTO{ID: p.ID, Name: p.Name})
	}
	return result
}
