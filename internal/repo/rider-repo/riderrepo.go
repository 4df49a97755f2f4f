package riderrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
)

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

func (r *Repository) ListValidations(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.RiderValidation, error) {
	query := `
        SELECT rider_id, courier_id, day, validated, validated_by, validated_at
        FROM rider_daily_settlements
        WHERE rider_id = $1 AND courier_id = $2
            AND ($3::date IS NULL OR day >= $3)
            AND ($4::date IS NULL OR day <= $4)
        ORDER BY day
    `
	rows, err := r.db.Query(ctx, query, riderID, courierID, pg.NullDate(period.From), pg.NullDate(period.To))
	if err != nil {
		zap.L().Error("can't list rider validations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var validations []domain.RiderValidation
	for rows.Next() {
		v, err := scanValidation(rows)
		if err != nil {
			zap.L().Error("can't scan rider validation row", zap.Error(err))
			return nil, err
		}
		validations = append(validations, *v)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate rider validations", zap.Error(err))
		return nil, err
	}
	return validations, nil
}

// LockDay ensures the rider's row for the day and locks it for the
// surrounding transaction.
func (r *Repository) LockDay(ctx context.Context, riderID, courierID int64, day time.Time) (*domain.RiderValidation, error) {
	ensure := `
        INSERT INTO rider_daily_settlements (rider_id, courier_id, day)
        VALUES ($1, $2, $3)
        ON CONFLICT (rider_id, courier_id, day) DO NOTHING
    `
	lock := `
        SELECT rider_id, courier_id, day, validated, validated_by, validated_at
        FROM rider_daily_settlements
        WHERE rider_id = $1 AND courier_id = $2 AND day = $3
        FOR UPDATE
    `
	var validation *domain.RiderValidation
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, ensure, riderID, courierID, day); err != nil {
			zap.L().Error("can't ensure rider day", zap.Error(err))
			return err
		}
		var err error
		validation, err = scanValidation(r.db.QueryRow(ctx, lock, riderID, courierID, day))
		if err != nil {
			zap.L().Error("can't lock rider day", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return validation, nil
}

func (r *Repository) Save(ctx context.Context, v *domain.RiderValidation) error {
	query := `
        UPDATE rider_daily_settlements
        SET validated = $1, validated_by = $2, validated_at = $3
        WHERE rider_id = $4 AND courier_id = $5 AND day = $6
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, v.Validated, v.ValidatedBy, v.ValidatedAt, v.RiderID, v.CourierID, v.Day)
		if err != nil {
			zap.L().Error("can't save rider validation", zap.Error(err))
			return err
		}
		return nil
	})
}

func scanValidation(row pgx.Row) (*domain.RiderValidation, error) {
	var (
		v           domain.RiderValidation
		validatedBy pgtype.Int8
		validatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&v.RiderID, &v.CourierID, &v.Day, &v.Validated, &validatedBy, &validatedAt); err != nil {
		return nil, err
	}
	v.ValidatedBy = pg.Int64Ptr(validatedBy)
	v.ValidatedAt = pg.TimePtr(validatedAt)
	return &v, nil
}
