package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/service/aggregator"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
)

type dayOutcome struct {
	day     time.Time
	state   domain.State
	updated bool
	totals  domain.Totals
}

// MarkPendingValidation moves Unvalidated days to PendingValidation and marks
// their orders paid. Days in any other state are skipped.
func (s *Service) MarkPendingValidation(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error) {
	return s.transition(ctx, domain.ActionMarkPending, actor, scope, rawDates)
}

// Validate moves PendingValidation days to Validated. Days in any other state
// are skipped and reported.
func (s *Service) Validate(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error) {
	return s.transition(ctx, domain.ActionValidate, actor, scope, rawDates)
}

// Reopen sends PendingValidation and Validated days back to Unvalidated,
// clearing the stamps and the paid flag of their orders.
func (s *Service) Reopen(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error) {
	return s.transition(ctx, domain.ActionReopen, actor, scope, rawDates)
}

// transition runs action over the dates. When a date fails the error is
// returned together with a result listing the dates committed before it.
func (s *Service) transition(ctx context.Context, action domain.Action, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveBatch(string(action), time.Since(start))
	}()

	if !scope.View.IsValid() {
		return nil, domain.ErrInvalidView
	}
	days, err := canonicalDates(rawDates)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.GetOrdersForDays(ctx, scope, days)
	if err != nil {
		zap.L().Error("failed to load orders for batch", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}
	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, err
		}
	}

	receiptID := uuid.New()
	tariffs := aggregator.NewTariffCache(s.tariffs)
	outcomes := make([]dayOutcome, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, day := range days {
		g.Go(func() error {
			out, err := s.transitionDay(gctx, action, actor, scope, day, receiptID, tariffs)
			if err != nil {
				return fmt.Errorf("%s %s: %w", action, dates.Format(day), err)
			}
			outcomes[i] = out
			return nil
		})
	}
	err = g.Wait()

	result := &domain.BatchResult{
		ReceiptID: receiptID,
		Action:    action,
		Updated:   []time.Time{},
		Skipped:   []domain.SkippedDate{},
	}
	for _, out := range outcomes {
		switch {
		case out.updated:
			result.Updated = append(result.Updated, out.day)
			result.Totals = result.Totals.Add(out.totals)
		case !out.day.IsZero():
			result.Skipped = append(result.Skipped, domain.SkippedDate{Date: out.day, State: out.state})
		}
	}
	if len(result.Updated) > 0 {
		s.invalidate(ctx, scope)
	}
	s.metrics.Transition(string(action), "updated", len(result.Updated))
	s.metrics.Transition(string(action), "skipped", len(result.Skipped))

	if err != nil {
		zap.L().Error("batch transition failed",
			zap.String("receipt_id", receiptID.String()),
			zap.String("action", string(action)),
			zap.String("scope", scope.Key()),
			zap.Int("committed", len(result.Updated)),
			zap.Error(err))
		return result, err
	}
	zap.L().Info("batch transition done",
		zap.String("receipt_id", receiptID.String()),
		zap.String("action", string(action)),
		zap.String("scope", scope.Key()),
		zap.Int("updated", len(result.Updated)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

// transitionDay applies action to one day inside its own transaction. The row
// lock serializes concurrent batches on the same day, so a day is counted by
// at most one receipt.
func (s *Service) transitionDay(ctx context.Context, action domain.Action, actor domain.Actor, scope domain.Scope, day time.Time, receiptID uuid.UUID, tariffs aggregator.TariffLookup) (dayOutcome, error) {
	out := dayOutcome{day: day}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.states.LockDay(ctx, scope, day)
		if err != nil {
			return err
		}
		next, ok := state.State.Next(action)
		if !ok {
			out.state = state.State
			return nil
		}

		orders, err := s.orders.GetOrdersForDays(ctx, scope, []time.Time{day})
		if err != nil {
			return err
		}
		resolved, err := aggregator.Resolve(ctx, orders, tariffs)
		if err != nil {
			return err
		}
		totals := aggregator.Totals(resolved, scope.View)

		switch action {
		case domain.ActionMarkPending:
			_, err = s.orders.SetPaid(ctx, scope, day, true)
		case domain.ActionReopen:
			_, err = s.orders.SetPaid(ctx, scope, day, false)
		}
		if err != nil {
			return err
		}

		from := state.State
		at := s.now()
		state.Apply(next, actor.ID, at)
		if err := s.states.SaveDay(ctx, state); err != nil {
			return err
		}
		err = s.states.RecordEvent(ctx, &domain.SettlementEvent{
			ID:          uuid.New(),
			ReceiptID:   receiptID,
			EcommerceID: scope.EcommerceID,
			CourierID:   scope.CourierID,
			Day:         day,
			Action:      action,
			ActorID:     actor.ID,
			FromState:   from,
			ToState:     next,
			Orders:      totals.Orders,
			Collected:   totals.Collected,
			ServiceFee:  totals.ServiceFee,
			At:          at,
		})
		if err != nil {
			return err
		}

		out.state = next
		out.updated = true
		out.totals = totals
		return nil
	})
	if err != nil {
		return dayOutcome{}, err
	}
	return out, nil
}

func canonicalDates(raw []string) ([]time.Time, error) {
	days, err := dates.Canonicalize(raw)
	switch {
	case errors.Is(err, dates.ErrEmpty):
		return nil, domain.ErrEmptyDates
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return days, nil
}
