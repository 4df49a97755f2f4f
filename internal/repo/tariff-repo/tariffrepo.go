package tariffrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetActiveTariff returns nil without error when the courier has no active
// tariff for the zone.
func (r *Repository) GetActiveTariff(ctx context.Context, courierID, zoneID int64) (*domain.ZoneTariff, error) {
	query := `
        SELECT courier_id, zone_id, client_tariff, rider_payment, active
        FROM zone_tariffs
        WHERE courier_id = $1 AND zone_id = $2 AND active
    `
	row := r.db.QueryRow(ctx, query, courierID, zoneID)

	var tariff domain.ZoneTariff
	err := row.Scan(&tariff.CourierID, &tariff.ZoneID, &tariff.ClientTariff, &tariff.RiderPayment, &tariff.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get zone tariff", zap.Int64("courier_id", courierID), zap.Int64("zone_id", zoneID), zap.Error(err))
		return nil, err
	}
	return &tariff, nil
}
