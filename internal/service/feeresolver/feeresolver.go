package feeresolver

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

type Side int

const (
	// ClientService is the courier's fee charged to the ecommerce.
	ClientService Side = iota
	// RiderService is the fee paid to the rider.
	RiderService
)

// Resolution is a resolved fee and the branch that produced it.
type Resolution struct {
	Amount decimal.Decimal
	Source domain.FeeSource
}

func (r Resolution) TariffMissing() bool {
	return r.Source == domain.FeeSourceMissing
}

// Resolve picks the fee for one side of an order: a non-negative manual
// override wins, then the active zone tariff, then zero. tariff must be the
// one for the order's courier and zone, or nil when there is none.
func Resolve(order domain.Order, tariff *domain.ZoneTariff, side Side) Resolution {
	if override := overrideFor(order, side); override != nil && !override.IsNegative() {
		return Resolution{Amount: *override, Source: domain.FeeSourceOverride}
	}
	if tariff != nil && tariff.Active {
		return Resolution{Amount: tariffFor(tariff, side), Source: domain.FeeSourceTariff}
	}
	return Resolution{Amount: decimal.Zero, Source: domain.FeeSourceMissing}
}

func overrideFor(order domain.Order, side Side) *decimal.Decimal {
	if side == RiderService {
		return order.RiderFeeOverride
	}
	return order.CourierFeeOverride
}

func tariffFor(tariff *domain.ZoneTariff, side Side) decimal.Decimal {
	if side == RiderService {
		return tariff.RiderPayment
	}
	return tariff.ClientTariff
}

type Fees struct {
	Client Resolution
	Rider  Resolution
}

func ResolveOrder(order domain.Order, tariff *domain.ZoneTariff) Fees {
	return Fees{
		Client: Resolve(order, tariff, ClientService),
		Rider:  Resolve(order, tariff, RiderService),
	}
}

func (f Fees) Total() decimal.Decimal {
	return f.Client.Amount.Add(f.Rider.Amount)
}

// ForView returns the service fee as seen by the view's party.
func (f Fees) ForView(view domain.View) decimal.Decimal {
	if view == domain.ViewCourier {
		return f.Client.Amount
	}
	return f.Total()
}

// MissingForView reports whether any fee counted by the view fell back to zero.
func (f Fees) MissingForView(view domain.View) bool {
	if view == domain.ViewCourier {
		return f.Client.TariffMissing()
	}
	return f.Client.TariffMissing() || f.Rider.TariffMissing()
}
