package dto

import (
	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
	"github.com/GlebRadaev/courier-settlement/pkg/money"
)

type RiderSummaryQueryDTO struct {
	RiderID   int64  `validate:"required,gt=0"`
	CourierID int64  `validate:"required,gt=0"`
	From      string `validate:"omitempty,datetime=2006-01-02"`
	To        string `validate:"omitempty,datetime=2006-01-02"`
}

type RiderValidateRequestDTO struct {
	RiderID   int64  `json:"rider_id" validate:"required,gt=0" example:"30"`
	CourierID int64  `json:"courier_id" validate:"required,gt=0" example:"2"`
	Date      string `json:"date" validate:"required" example:"2024-01-05"`
	Validated *bool  `json:"validated" validate:"required" example:"true"`
}

type RiderDayDTO struct {
	RiderID         int64   `json:"rider_id" example:"30"`
	CourierID       int64   `json:"courier_id" example:"2"`
	Date            string  `json:"date" example:"2024-01-05"`
	TotalOrders     int     `json:"total_orders" example:"3"`
	TotalServiceFee string  `json:"total_service_fee" example:"15.00"`
	TotalCollected  *string `json:"total_collected,omitempty" example:"150.00"`
	MissingTariffs  int     `json:"missing_tariffs" example:"0"`
	Validated       bool    `json:"validated"`
	ValidatedBy     *int64  `json:"validated_by,omitempty"`
	ValidatedAt     *string `json:"validated_at,omitempty"`
}

func FromRiderDay(d domain.RiderDailySettlement) RiderDayDTO {
	var collected *string
	if d.TotalCollected != nil {
		s := money.String(*d.TotalCollected)
		collected = &s
	}
	return RiderDayDTO{
		RiderID:         d.RiderID,
		CourierID:       d.CourierID,
		Date:            dates.Format(d.Date),
		TotalOrders:     d.TotalOrders,
		TotalServiceFee: money.String(d.TotalServiceFee),
		TotalCollected:  collected,
		MissingTariffs:  d.MissingTariffs,
		Validated:       d.Validated,
		ValidatedBy:     d.ValidatedBy,
		ValidatedAt:     formatTime(d.ValidatedAt),
	}
}

func FromRiderDays(days []domain.RiderDailySettlement) []RiderDayDTO {
	result := make([]RiderDayDTO, 0, len(days))
	for _, d := range days {
		result = append(result, FromRiderDay(d))
	}
	return result
}
