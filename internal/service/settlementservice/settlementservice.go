package settlementservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/metrics"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
	"github.com/GlebRadaev/courier-settlement/internal/service/aggregator"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
)

type OrderRepo interface {
	GetOrdersForScope(ctx context.Context, scope domain.Scope, period domain.Period) ([]domain.Order, error)
	Fingerprint(ctx context.Context, scope domain.Scope, period domain.Period) (string, error)
	GetOrdersForDays(ctx context.Context, scope domain.Scope, days []time.Time) ([]domain.Order, error)
	SetPaid(ctx context.Context, scope domain.Scope, day time.Time, paid bool) (int64, error)
	ListEcommerces(ctx context.Context, courierID int64) ([]domain.Counterparty, error)
	ListCouriers(ctx context.Context, ecommerceID int64) ([]domain.Counterparty, error)
}

type TariffRepo interface {
	GetActiveTariff(ctx context.Context, courierID, zoneID int64) (*domain.ZoneTariff, error)
}

type StateRepo interface {
	ListStates(ctx context.Context, scope domain.Scope, period domain.Period) ([]domain.SettlementState, error)
	LockDay(ctx context.Context, scope domain.Scope, day time.Time) (*domain.SettlementState, error)
	SaveDay(ctx context.Context, state *domain.SettlementState) error
	RecordEvent(ctx context.Context, event *domain.SettlementEvent) error
}

type SummaryCache interface {
	Key(ctx context.Context, scope domain.Scope, parts ...string) (string, error)
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, scope domain.Scope) error
}

var ErrUnsupportedRole = errors.New("role has no counterparties")

const (
	defaultConcurrency  = 4
	summaryBuildTimeout = 30 * time.Second
)

type Service struct {
	orders      OrderRepo
	tariffs     TariffRepo
	states      StateRepo
	txManager   pg.TXManager
	cache       SummaryCache
	metrics     *metrics.Metrics
	concurrency int
	now         func() time.Time
	group       singleflight.Group
}

type Option func(*Service)

func WithCache(cache SummaryCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithConcurrency bounds how many dates of one batch run at the same time.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(orders OrderRepo, tariffs TariffRepo, states StateRepo, txManager pg.TXManager, opts ...Option) *Service {
	s := &Service{
		orders:      orders,
		tariffs:     tariffs,
		states:      states,
		txManager:   txManager,
		concurrency: defaultConcurrency,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSummary returns the per-day ledger of the scope inside period, oldest day
// first. With pendingOnly only days waiting for validation are returned.
func (s *Service) GetSummary(ctx context.Context, scope domain.Scope, period domain.Period, pendingOnly bool) ([]domain.SettlementDay, error) {
	if !scope.View.IsValid() {
		return nil, domain.ErrInvalidView
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	key := s.summaryKey(ctx, scope, period, pendingOnly)
	if key != "" {
		var cached []domain.SettlementDay
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zap.L().Warn("summary cache read failed", zap.String("key", key), zap.Error(err))
		}
		s.metrics.SummaryCache(found)
		if found {
			return cached, nil
		}
	}

	flightKey := key
	if flightKey == "" {
		flightKey = summaryFlightKey(scope, period, pendingOnly)
	}
	// The build is shared by every caller in the flight, so it must not die
	// with the caller that happened to start it.
	ch := s.group.DoChan(flightKey, func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summaryBuildTimeout)
		defer cancel()

		days, err := s.buildSummary(buildCtx, scope, period, pendingOnly)
		if err != nil {
			return nil, err
		}
		if key != "" {
			if err := s.cache.Set(buildCtx, key, days); err != nil {
				zap.L().Warn("summary cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return days, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.SettlementDay), nil
	}
}

func (s *Service) buildSummary(ctx context.Context, scope domain.Scope, period domain.Period, pendingOnly bool) ([]domain.SettlementDay, error) {
	orders, err := s.orders.GetOrdersForScope(ctx, scope, period)
	if err != nil {
		zap.L().Error("failed to get orders for summary", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}
	warnNegativeOverrides(orders)

	resolved, err := aggregator.Resolve(ctx, orders, aggregator.NewTariffCache(s.tariffs))
	if err != nil {
		zap.L().Error("failed to resolve fees", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}
	states, err := s.states.ListStates(ctx, scope, period)
	if err != nil {
		zap.L().Error("failed to get settlement states", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}
	return aggregator.ApplyStates(aggregator.Aggregate(resolved, scope.View, period), states, pendingOnly), nil
}

// GetDayDetail returns the totals of one day and the orders behind them.
func (s *Service) GetDayDetail(ctx context.Context, scope domain.Scope, day time.Time) (*domain.DayDetail, error) {
	if !scope.View.IsValid() {
		return nil, domain.ErrInvalidView
	}
	day = dates.Day(day)
	period := domain.Period{From: day, To: day}

	orders, err := s.orders.GetOrdersForDays(ctx, scope, []time.Time{day})
	if err != nil {
		zap.L().Error("failed to get orders for day", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}
	warnNegativeOverrides(orders)

	resolved, err := aggregator.Resolve(ctx, orders, aggregator.NewTariffCache(s.tariffs))
	if err != nil {
		zap.L().Error("failed to resolve fees", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}
	states, err := s.states.ListStates(ctx, scope, period)
	if err != nil {
		zap.L().Error("failed to get settlement states", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}

	days := aggregator.Aggregate(resolved, scope.View, period)
	if len(days) == 0 {
		days = []domain.SettlementDay{{Date: day}}
	}
	detail := &domain.DayDetail{
		Day:    aggregator.ApplyStates(days, states, false)[0],
		Orders: aggregator.Detail(resolved),
	}
	return detail, nil
}

// ListCounterparties returns who the actor settles with: ecommerces for a
// courier, couriers for an ecommerce, every ecommerce for an admin.
func (s *Service) ListCounterparties(ctx context.Context, actor domain.Actor) ([]domain.Counterparty, error) {
	var (
		parties []domain.Counterparty
		err     error
	)
	switch actor.Role {
	case domain.RoleCourier:
		parties, err = s.orders.ListEcommerces(ctx, actor.PartyID)
	case domain.RoleEcommerce:
		parties, err = s.orders.ListCouriers(ctx, actor.PartyID)
	case domain.RoleAdmin:
		parties, err = s.orders.ListEcommerces(ctx, 0)
	default:
		return nil, ErrUnsupportedRole
	}
	if err != nil {
		zap.L().Error("failed to list counterparties", zap.String("role", string(actor.Role)), zap.Error(err))
		return nil, err
	}
	return parties, nil
}

// summaryKey names the cached summary. Besides the query it carries a
// fingerprint of the orders and tariffs behind it, so edits made outside this
// service change the key; batches here bump the scope version instead.
func (s *Service) summaryKey(ctx context.Context, scope domain.Scope, period domain.Period, pendingOnly bool) string {
	if s.cache == nil {
		return ""
	}
	fingerprint, err := s.orders.Fingerprint(ctx, scope, period)
	if err != nil {
		zap.L().Warn("summary fingerprint failed, skipping cache", zap.String("scope", scope.Key()), zap.Error(err))
		return ""
	}
	key, err := s.cache.Key(ctx, scope, append(summaryParts(scope, period, pendingOnly), fingerprint)...)
	if err != nil {
		zap.L().Warn("summary cache key failed", zap.String("scope", scope.Key()), zap.Error(err))
		return ""
	}
	return key
}

func summaryParts(scope domain.Scope, period domain.Period, pendingOnly bool) []string {
	return []string{string(scope.View), formatBound(period.From), formatBound(period.To), strconv.FormatBool(pendingOnly)}
}

func summaryFlightKey(scope domain.Scope, period domain.Period, pendingOnly bool) string {
	key := scope.Key()
	for _, part := range summaryParts(scope, period, pendingOnly) {
		key += ":" + part
	}
	return key
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "*"
	}
	return dates.Format(t)
}

func warnNegativeOverrides(orders []domain.Order) {
	for _, order := range orders {
		if err := order.Validate(); err != nil {
			zap.L().Warn("order has a negative fee override, using tariff instead", zap.Int64("order_id", order.ID), zap.Error(err))
		}
	}
}

func (s *Service) invalidate(ctx context.Context, scope domain.Scope) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, scope); err != nil {
		zap.L().Error("failed to invalidate summary cache", zap.String("scope", scope.Key()), zap.Error(err))
	}
}
