package riderservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/metrics"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
	"github.com/GlebRadaev/courier-settlement/internal/service/aggregator"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
)

type OrderRepo interface {
	GetOrdersForRider(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.Order, error)
}

type TariffRepo interface {
	GetActiveTariff(ctx context.Context, courierID, zoneID int64) (*domain.ZoneTariff, error)
}

type ValidationRepo interface {
	ListValidations(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.RiderValidation, error)
	LockDay(ctx context.Context, riderID, courierID int64, day time.Time) (*domain.RiderValidation, error)
	Save(ctx context.Context, v *domain.RiderValidation) error
}

type Service struct {
	orders      OrderRepo
	tariffs     TariffRepo
	validations ValidationRepo
	txManager   pg.TXManager
	metrics     *metrics.Metrics
	now         func() time.Time
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(orders OrderRepo, tariffs TariffRepo, validations ValidationRepo, txManager pg.TXManager, opts ...Option) *Service {
	s := &Service{
		orders:      orders,
		tariffs:     tariffs,
		validations: validations,
		txManager:   txManager,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRiderSummary returns the rider-side totals per delivery date, with the
// validation flag each day carries.
func (s *Service) GetRiderSummary(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.RiderDailySettlement, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	days, err := s.riderDays(ctx, riderID, courierID, period)
	if err != nil {
		return nil, err
	}
	validations, err := s.validations.ListValidations(ctx, riderID, courierID, period)
	if err != nil {
		zap.L().Error("failed to list rider validations", zap.Int64("rider_id", riderID), zap.Error(err))
		return nil, err
	}
	return aggregator.ApplyRiderValidations(days, validations), nil
}

// SetRiderValidated sets the validation flag of one rider day. Setting the
// flag it already has changes nothing and returns the current day.
func (s *Service) SetRiderValidated(ctx context.Context, actor domain.Actor, riderID, courierID int64, rawDate string, validated bool) (*domain.RiderDailySettlement, error) {
	day, err := dates.Parse(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}

	var (
		current *domain.RiderValidation
		changed bool
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		v, err := s.validations.LockDay(ctx, riderID, courierID, day)
		if err != nil {
			return err
		}
		current = v
		if v.Validated == validated {
			return nil
		}

		at := s.now()
		v.Validated = validated
		v.ValidatedBy = &actor.ID
		v.ValidatedAt = &at
		if err := s.validations.Save(ctx, v); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to set rider validation",
			zap.Int64("rider_id", riderID),
			zap.String("date", rawDate),
			zap.Error(err))
		s.metrics.RiderValidation("error")
		return nil, err
	}
	if changed {
		s.metrics.RiderValidation("changed")
	} else {
		s.metrics.RiderValidation("unchanged")
	}

	days, err := s.riderDays(ctx, riderID, courierID, domain.Period{From: day, To: day})
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		days = []domain.RiderDailySettlement{{RiderID: riderID, CourierID: courierID, Date: day}}
	}
	result := aggregator.ApplyRiderValidations(days, []domain.RiderValidation{*current})[0]
	return &result, nil
}

func (s *Service) riderDays(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.RiderDailySettlement, error) {
	orders, err := s.orders.GetOrdersForRider(ctx, riderID, courierID, period)
	if err != nil {
		zap.L().Error("failed to get rider orders", zap.Int64("rider_id", riderID), zap.Error(err))
		return nil, err
	}
	resolved, err := aggregator.Resolve(ctx, orders, aggregator.NewTariffCache(s.tariffs))
	if err != nil {
		zap.L().Error("failed to resolve rider fees", zap.Int64("rider_id", riderID), zap.Error(err))
		return nil, err
	}
	return aggregator.AggregateRider(resolved, riderID, courierID, period), nil
}
