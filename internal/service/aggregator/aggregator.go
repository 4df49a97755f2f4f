package aggregator

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/service/feeresolver"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
)

// Resolved is an order with both fees already resolved.
type Resolved struct {
	Order domain.Order
	Fees  feeresolver.Fees
}

// Resolve looks up the tariff of every order and resolves its fees.
func Resolve(ctx context.Context, orders []domain.Order, tariffs TariffLookup) ([]Resolved, error) {
	resolved := make([]Resolved, 0, len(orders))
	for _, order := range orders {
		tariff, err := tariffs.GetActiveTariff(ctx, order.CourierID, order.ZoneID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, Resolved{
			Order: order,
			Fees:  feeresolver.ResolveOrder(order, tariff),
		})
	}
	return resolved, nil
}

// Aggregate groups orders by delivery date inside period and totals them for
// the view. Days come back ascending and Unvalidated; see ApplyStates.
func Aggregate(resolved []Resolved, view domain.View, period domain.Period) []domain.SettlementDay {
	byDay := make(map[time.Time]*domain.SettlementDay)
	for _, r := range resolved {
		day := dates.Day(r.Order.DeliveryDate)
		if !period.Contains(day) {
			continue
		}
		sd, ok := byDay[day]
		if !ok {
			sd = &domain.SettlementDay{
				Date:            day,
				TotalCollected:  decimal.Zero,
				TotalServiceFee: decimal.Zero,
			}
			byDay[day] = sd
		}
		sd.TotalOrders++
		sd.TotalCollected = sd.TotalCollected.Add(r.Order.CollectedAmount)
		sd.TotalServiceFee = sd.TotalServiceFee.Add(r.Fees.ForView(view))
		if r.Fees.MissingForView(view) {
			sd.MissingTariffs++
		}
	}

	days := make([]domain.SettlementDay, 0, len(byDay))
	for _, sd := range byDay {
		sd.TotalNet = sd.TotalCollected.Sub(sd.TotalServiceFee)
		days = append(days, *sd)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// ApplyStates attaches the stored state of each day. Days without a row stay
// Unvalidated. With pendingOnly only PendingValidation days are kept.
func ApplyStates(days []domain.SettlementDay, states []domain.SettlementState, pendingOnly bool) []domain.SettlementDay {
	byDay := make(map[time.Time]domain.SettlementState, len(states))
	for _, st := range states {
		byDay[dates.Day(st.Day)] = st
	}

	result := make([]domain.SettlementDay, 0, len(days))
	for _, sd := range days {
		if st, ok := byDay[sd.Date]; ok {
			sd.State = st.State
			sd.PendingBy, sd.PendingAt = st.PendingBy, st.PendingAt
			sd.ValidatedBy, sd.ValidatedAt = st.ValidatedBy, st.ValidatedAt
		}
		if pendingOnly && sd.State != domain.StatePendingValidation {
			continue
		}
		result = append(result, sd)
	}
	return result
}

// Totals sums resolved orders for the view, for batch receipts.
func Totals(resolved []Resolved, view domain.View) domain.Totals {
	totals := domain.Totals{Collected: decimal.Zero, ServiceFee: decimal.Zero}
	for _, r := range resolved {
		totals.Orders++
		totals.Collected = totals.Collected.Add(r.Order.CollectedAmount)
		totals.ServiceFee = totals.ServiceFee.Add(r.Fees.ForView(view))
	}
	totals.Net = totals.Collected.Sub(totals.ServiceFee)
	return totals
}

// Detail builds the per-order drill-down of a day, ordered by order id.
func Detail(resolved []Resolved) []domain.OrderLine {
	sorted := make([]Resolved, len(resolved))
	copy(sorted, resolved)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order.ID < sorted[j].Order.ID })

	lines := make([]domain.OrderLine, 0, len(sorted))
	for _, r := range sorted {
		lines = append(lines, domain.OrderLine{
			OrderID:         r.Order.ID,
			OrderNumber:     r.Order.Number,
			CustomerName:    r.Order.CustomerName,
			PaymentMethod:   r.Order.PaymentMethod,
			Collected:       r.Order.CollectedAmount,
			ClientFee:       r.Fees.Client.Amount,
			ClientFeeSource: r.Fees.Client.Source,
			RiderFee:        r.Fees.Rider.Amount,
			RiderFeeSource:  r.Fees.Rider.Source,
			TotalFee:        r.Fees.Total(),
			Paid:            r.Order.Paid,
			TariffMissing:   r.Fees.Client.TariffMissing() || r.Fees.Rider.TariffMissing(),
		})
	}
	return lines
}
