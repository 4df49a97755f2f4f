package aggregator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
)

// AggregateRider totals the rider-side fee per delivery date. Orders are
// expected to belong to one rider and courier.
func AggregateRider(resolved []Resolved, riderID, courierID int64, period domain.Period) []domain.RiderDailySettlement {
	byDay := make(map[time.Time]*domain.RiderDailySettlement)
	for _, r := range resolved {
		day := dates.Day(r.Order.DeliveryDate)
		if !period.Contains(day) {
			continue
		}
		rs, ok := byDay[day]
		if !ok {
			collected := decimal.Zero
			rs = &domain.RiderDailySettlement{
				RiderID:         riderID,
				CourierID:       courierID,
				Date:            day,
				TotalServiceFee: decimal.Zero,
				TotalCollected:  &collected,
			}
			byDay[day] = rs
		}
		rs.TotalOrders++
		rs.TotalServiceFee = rs.TotalServiceFee.Add(r.Fees.Rider.Amount)
		collected := rs.TotalCollected.Add(r.Order.CollectedAmount)
		rs.TotalCollected = &collected
		if r.Fees.Rider.TariffMissing() {
			rs.MissingTariffs++
		}
	}

	days := make([]domain.RiderDailySettlement, 0, len(byDay))
	for _, rs := range byDay {
		days = append(days, *rs)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// ApplyRiderValidations copies the stored validation flag onto each day.
func ApplyRiderValidations(days []domain.RiderDailySettlement, validations []domain.RiderValidation) []domain.RiderDailySettlement {
	byDay := make(map[time.Time]domain.RiderValidation, len(validations))
	for _, v := range validations {
		byDay[dates.Day(v.Day)] = v
	}
	for i := range days {
		if v, ok := byDay[days[i].Date]; ok {
			days[i].Validated = v.Validated
			days[i].ValidatedBy = v.ValidatedBy
			days[i].ValidatedAt = v.ValidatedAt
		}
	}
	return days
}
