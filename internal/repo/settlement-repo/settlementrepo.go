package settlementrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
)

const stateColumns = `ecommerce_id, courier_id, day, state, pending_by, pending_at,
        validated_by, validated_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) ListStates(ctx context.Context, scope domain.Scope, period domain.Period) ([]domain.SettlementState, error) {
	query := `
        SELECT ` + stateColumns + `
        FROM settlement_days
        WHERE ecommerce_id = $1 AND courier_id = $2
            AND ($3::date IS NULL OR day >= $3)
            AND ($4::date IS NULL OR day <= $4)
        ORDER BY day
    `
	rows, err := r.db.Query(ctx, query, scope.EcommerceID, scope.CourierID, pg.NullDate(period.From), pg.NullDate(period.To))
	if err != nil {
		zap.L().Error("can't list settlement states", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var states []domain.SettlementState
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			zap.L().Error("can't scan settlement state row", zap.Error(err))
			return nil, err
		}
		states = append(states, *state)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate settlement states", zap.Error(err))
		return nil, err
	}
	return states, nil
}

// LockDay makes sure the row of the day exists and locks it until the
// surrounding transaction ends. Called outside a transaction the lock is
// released right away.
func (r *Repository) LockDay(ctx context.Context, scope domain.Scope, day time.Time) (*domain.SettlementState, error) {
	ensure := `
        INSERT INTO settlement_days (ecommerce_id, courier_id, day)
        VALUES ($1, $2, $3)
        ON CONFLICT (ecommerce_id, courier_id, day) DO NOTHING
    `
	lock := `
        SELECT ` + stateColumns + `
        FROM settlement_days
        WHERE ecommerce_id = $1 AND courier_id = $2 AND day = $3
        FOR UPDATE
    `
	var state *domain.SettlementState
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, ensure, scope.EcommerceID, scope.CourierID, day); err != nil {
			zap.L().Error("can't ensure settlement day", zap.Error(err))
			return err
		}
		var err error
		state, err = scanState(r.db.QueryRow(ctx, lock, scope.EcommerceID, scope.CourierID, day))
		if err != nil {
			zap.L().Error("can't lock settlement day", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (r *Repository) SaveDay(ctx context.Context, state *domain.SettlementState) error {
	query := `
        UPDATE settlement_days
        SET state = $1, pending_by = $2, pending_at = $3,
            validated_by = $4, validated_at = $5, updated_at = $6
        WHERE ecommerce_id = $7 AND courier_id = $8 AND day = $9
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			state.State.String(), state.PendingBy, state.PendingAt,
			state.ValidatedBy, state.ValidatedAt, state.UpdatedAt,
			state.EcommerceID, state.CourierID, state.Day,
		)
		if err != nil {
			zap.L().Error("can't save settlement day", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("settlement day %d:%d %s: %w", state.EcommerceID, state.CourierID, state.Day.Format(time.DateOnly), pgx.ErrNoRows)
		}
		return nil
	})
}

func (r *Repository) RecordEvent(ctx context.Context, event *domain.SettlementEvent) error {
	query := `
        INSERT INTO settlement_events (id, receipt_id, ecommerce_id, courier_id, day, action,
            actor_id, from_state, to_state, orders, collected, service_fee, at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			event.ID, event.ReceiptID, event.EcommerceID, event.CourierID, event.Day, string(event.Action),
			event.ActorID, event.FromState.String(), event.ToState.String(),
			event.Orders, event.Collected, event.ServiceFee, event.At,
		)
		if err != nil {
			zap.L().Error("can't record settlement event", zap.Error(err))
			return err
		}
		return nil
	})
}

func scanState(row pgx.Row) (*domain.SettlementState, error) {
	var (
		state       domain.SettlementState
		name        string
		pendingBy   pgtype.Int8
		pendingAt   pgtype.Timestamptz
		validatedBy pgtype.Int8
		validatedAt pgtype.Timestamptz
	)
	err := row.Scan(&state.EcommerceID, &state.CourierID, &state.Day, &name,
		&pendingBy, &pendingAt, &validatedBy, &validatedAt, &state.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if state.State, err = domain.ParseState(name); err != nil {
		return nil, err
	}
	state.PendingBy = pg.Int64Ptr(pendingBy)
	state.PendingAt = pg.TimePtr(pendingAt)
	state.ValidatedBy = pg.Int64Ptr(validatedBy)
	state.ValidatedAt = pg.TimePtr(validatedAt)
	return &state, nil
}
