package orderrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
)

const orderColumns = `id, number, customer_name, delivery_date, collected_amount,
        courier_fee_override, rider_fee_override, zone_id, ecommerce_id,
        courier_id, rider_id, paid, payment_method`

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

func (r *Repository) GetOrdersForScope(ctx context.Context, scope domain.Scope, period domain.Period) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE ecommerce_id = $1 AND courier_id = $2
            AND ($3::date IS NULL OR delivery_date >= $3)
            AND ($4::date IS NULL OR delivery_date <= $4)
        ORDER BY delivery_date, id
    `
	rows, err := r.db.Query(ctx, query, scope.EcommerceID, scope.CourierID, pg.NullDate(period.From), pg.NullDate(period.To))
	if err != nil {
		zap.L().Error("can't get orders for scope", zap.Error(err))
		return nil, err
	}
	return collectOrders(rows)
}

func (r *Repository) GetOrdersForDays(ctx context.Context, scope domain.Scope, days []time.Time) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE ecommerce_id = $1 AND courier_id = $2 AND delivery_date = ANY($3)
        ORDER BY delivery_date, id
    `
	rows, err := r.db.Query(ctx, query, scope.EcommerceID, scope.CourierID, days)
	if err != nil {
		zap.L().Error("can't get orders for days", zap.Error(err))
		return nil, err
	}
	return collectOrders(rows)
}

func (r *Repository) GetOrdersForRider(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE rider_id = $1 AND courier_id = $2
            AND ($3::date IS NULL OR delivery_date >= $3)
            AND ($4::date IS NULL OR delivery_date <= $4)
        ORDER BY delivery_date, id
    `
	rows, err := r.db.Query(ctx, query, riderID, courierID, pg.NullDate(period.From), pg.NullDate(period.To))
	if err != nil {
		zap.L().Error("can't get orders for rider", zap.Error(err))
		return nil, err
	}
	return collectOrders(rows)
}

// Fingerprint digests every order field and tariff value the scope's totals
// are computed from inside period. It changes whenever re-aggregating would
// give different figures, whoever changed the rows.
func (r *Repository) Fingerprint(ctx context.Context, scope domain.Scope, period domain.Period) (string, error) {
	query := `
        SELECT count(*), coalesce(md5(string_agg(concat_ws('|',
                o.id, o.delivery_date, o.collected_amount,
                coalesce(o.courier_fee_override::text, '-'), coalesce(o.rider_fee_override::text, '-'), o.zone_id,
                coalesce(t.client_tariff::text, '-'), coalesce(t.rider_payment::text, '-'), coalesce(t.active::text, '-')
            ), ',' ORDER BY o.id)), '')
        FROM orders o
        LEFT JOIN zone_tariffs t ON t.courier_id = o.courier_id AND t.zone_id = o.zone_id
        WHERE o.ecommerce_id = $1 AND o.courier_id = $2
            AND ($3::date IS NULL OR o.delivery_date >= $3)
            AND ($4::date IS NULL OR o.delivery_date <= $4)
    `
	var (
		count  int64
		digest string
	)
	err := r.db.QueryRow(ctx, query, scope.EcommerceID, scope.CourierID, pg.NullDate(period.From), pg.NullDate(period.To)).
		Scan(&count, &digest)
	if err != nil {
		zap.L().Error("can't fingerprint orders", zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("%d-%s", count, digest), nil
}

// SetPaid flips the paid flag of every order of the scope delivered on day and
// returns how many rows changed.
func (r *Repository) SetPaid(ctx context.Context, scope domain.Scope, day time.Time, paid bool) (int64, error) {
	query := `
        UPDATE orders
        SET paid = $1
        WHERE ecommerce_id = $2 AND courier_id = $3 AND delivery_date = $4 AND paid <> $1
    `
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, paid, scope.EcommerceID, scope.CourierID, day)
		if err != nil {
			zap.L().Error("can't update paid flag", zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// ListEcommerces returns the ecommerces that have orders with the courier, or
// every ecommerce with orders when courierID is zero.
func (r *Repository) ListEcommerces(ctx context.Context, courierID int64) ([]domain.Counterparty, error) {
	query := `
        SELECT DISTINCT e.id, e.name
        FROM ecommerces e
        JOIN orders o ON o.ecommerce_id = e.id
        WHERE $1::bigint = 0 OR o.courier_id = $1
        ORDER BY e.name, e.id
    `
	return r.listCounterparties(ctx, query, courierID)
}

// ListCouriers returns the couriers that delivered orders for the ecommerce.
func (r *Repository) ListCouriers(ctx context.Context, ecommerceID int64) ([]domain.Counterparty, error) {
	query := `
        SELECT DISTINCT c.id, c.name
        FROM couriers c
        JOIN orders o ON o.courier_id = c.id
        WHERE $1::bigint = 0 OR o.ecommerce_id = $1
        ORDER BY c.name, c.id
    `
	return r.listCounterparties(ctx, query, ecommerceID)
}

func (r *Repository) listCounterparties(ctx context.Context, query string, partyID int64) ([]domain.Counterparty, error) {
	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		zap.L().Error("can't list counterparties", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	parties := []domain.Counterparty{}
	for rows.Next() {
		var party domain.Counterparty
		if err := rows.Scan(&party.ID, &party.Name); err != nil {
			zap.L().Error("can't scan counterparty row", zap.Error(err))
			return nil, err
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate counterparties", zap.Error(err))
		return nil, err
	}
	return parties, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order         domain.Order
		courierFee    decimal.NullDecimal
		riderFee      decimal.NullDecimal
		riderID       pgtype.Int8
		customerName  pgtype.Text
		paymentMethod pgtype.Text
	)
	err := row.Scan(
		&order.ID, &order.Number, &customerName, &order.DeliveryDate, &order.CollectedAmount,
		&courierFee, &riderFee, &order.ZoneID, &order.EcommerceID,
		&order.CourierID, &riderID, &order.Paid, &paymentMethod,
	)
	if err != nil {
		return domain.Order{}, err
	}
	if courierFee.Valid {
		order.CourierFeeOverride = &courierFee.Decimal
	}
	if riderFee.Valid {
		order.RiderFeeOverride = &riderFee.Decimal
	}
	order.RiderID = pg.Int64Ptr(riderID)
	order.CustomerName = customerName.String
	order.PaymentMethod = paymentMethod.String
	return order, nil
}
