package riderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/metrics"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
)

var (
	jan5 = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	jan6 = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	now  = time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
)

type mocks struct {
	orders      *MockOrderRepo
	tariffs     *MockTariffRepo
	validations *MockValidationRepo
	tx          *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orders:      NewMockOrderRepo(ctrl),
		tariffs:     NewMockTariffRepo(ctrl),
		validations: NewMockValidationRepo(ctrl),
		tx:          pg.NewMockTXManager(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.orders, m.tariffs, m.validations, m.tx,
		WithClock(func() time.Time { return now }),
		WithMetrics(metrics.New()))
	return service, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func riderOrder(id int64, day time.Time, zone int64) domain.Order {
	rider := int64(30)
	return domain.Order{ID: id, CourierID: 2, ZoneID: zone, RiderID: &rider, DeliveryDate: day, CollectedAmount: dec("50.00")}
}

func tariff() *domain.ZoneTariff {
	return &domain.ZoneTariff{CourierID: 2, ZoneID: 7, ClientTariff: dec("8.00"), RiderPayment: dec("5.00"), Active: true}
}

func TestGetRiderSummary(t *testing.T) {
	by := int64(20)
	period := domain.Period{From: jan5, To: jan6}

	tests := []struct {
		name        string
		period      domain.Period
		prepareMock func(m *mocks)
		expectedErr error
		check       func(t *testing.T, days []domain.RiderDailySettlement)
	}{
		{
			name:   "Totals per day with validation flag",
			period: period,
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetOrdersForRider(gomock.Any(), int64(30), int64(2), period).
					Return([]domain.Order{riderOrder(1, jan5, 7), riderOrder(2, jan5, 7), riderOrder(3, jan6, 9)}, nil)
				m.tariffs.EXPECT().GetActiveTariff(gomock.Any(), int64(2), int64(7)).Return(tariff(), nil)
				m.tariffs.EXPECT().GetActiveTariff(gomock.Any(), int64(2), int64(9)).Return(nil, nil)
				m.validations.EXPECT().ListValidations(gomock.Any(), int64(30), int64(2), period).
					Return([]domain.RiderValidation{{RiderID: 30, CourierID: 2, Day: jan5, Validated: true, ValidatedBy: &by, ValidatedAt: &now}}, nil)
			},
			check: func(t *testing.T, days []domain.RiderDailySettlement) {
				require.Len(t, days, 2)

				assert.Equal(t, jan5, days[0].Date)
				assert.Equal(t, 2, days[0].TotalOrders)
				assert.Equal(t, "10.00", days[0].TotalServiceFee.StringFixed(2))
				require.NotNil(t, days[0].TotalCollected)
				assert.Equal(t, "100.00", days[0].TotalCollected.StringFixed(2))
				assert.True(t, days[0].Validated)
				assert.Equal(t, &by, days[0].ValidatedBy)

				assert.Equal(t, jan6, days[1].Date)
				assert.Equal(t, 1, days[1].MissingTariffs)
				assert.True(t, days[1].TotalServiceFee.IsZero())
				assert.False(t, days[1].Validated)
			},
		},
		{
			name:        "Inverted period",
			period:      domain.Period{From: jan6, To: jan5},
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrInvalidPeriod,
		},
		{
			name:   "Orders error",
			period: period,
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetOrdersForRider(gomock.Any(), int64(30), int64(2), period).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
		{
			name:   "Validations error",
			period: period,
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetOrdersForRider(gomock.Any(), int64(30), int64(2), period).Return(nil, nil)
				m.validations.EXPECT().ListValidations(gomock.Any(), int64(30), int64(2), period).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			days, err := service.GetRiderSummary(context.Background(), 30, 2, tt.period)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, days)
				return
			}
			assert.NoError(t, err)
			tt.check(t, days)
		})
	}
}

func TestSetRiderValidated(t *testing.T) {
	actor := domain.Actor{ID: 20, Role: domain.RoleCourier, PartyID: 2}
	day := domain.Period{From: jan5, To: jan5}
	earlier := now.Add(-24 * time.Hour)
	other := int64(1)

	tests := []struct {
		name        string
		date        string
		validated   bool
		prepareMock func(m *mocks)
		expectedErr error
		check       func(t *testing.T, result *domain.RiderDailySettlement)
	}{
		{
			name:      "Flips the flag and stamps the actor",
			date:      "2024-01-05",
			validated: true,
			prepareMock: func(m *mocks) {
				m.validations.EXPECT().LockDay(gomock.Any(), int64(30), int64(2), jan5).
					Return(&domain.RiderValidation{RiderID: 30, CourierID: 2, Day: jan5}, nil)
				m.validations.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, v *domain.RiderValidation) error {
					assert.True(t, v.Validated)
					assert.Equal(t, int64(20), *v.ValidatedBy)
					assert.Equal(t, now, *v.ValidatedAt)
					return nil
				})
				m.orders.EXPECT().GetOrdersForRider(gomock.Any(), int64(30), int64(2), day).
					Return([]domain.Order{riderOrder(1, jan5, 7)}, nil)
				m.tariffs.EXPECT().GetActiveTariff(gomock.Any(), int64(2), int64(7)).Return(tariff(), nil)
			},
			check: func(t *testing.T, result *domain.RiderDailySettlement) {
				assert.True(t, result.Validated)
				assert.Equal(t, int64(20), *result.ValidatedBy)
				assert.Equal(t, 1, result.TotalOrders)
				assert.Equal(t, "5.00", result.TotalServiceFee.StringFixed(2))
			},
		},
		{
			name:      "Same flag is a no-op",
			date:      "2024-01-05",
			validated: true,
			prepareMock: func(m *mocks) {
				m.validations.EXPECT().LockDay(gomock.Any(), int64(30), int64(2), jan5).
					Return(&domain.RiderValidation{RiderID: 30, CourierID: 2, Day: jan5, Validated: true, ValidatedBy: &other, ValidatedAt: &earlier}, nil)
				m.orders.EXPECT().GetOrdersForRider(gomock.Any(), int64(30), int64(2), day).Return(nil, nil)
			},
			check: func(t *testing.T, result *domain.RiderDailySettlement) {
				assert.True(t, result.Validated)
				assert.Equal(t, &other, result.ValidatedBy)
				assert.Equal(t, &earlier, result.ValidatedAt)
				assert.Equal(t, jan5, result.Date)
				assert.Equal(t, 0, result.TotalOrders)
			},
		},
		{
			name:      "Clearing the flag keeps a stamp of who did it",
			date:      "2024-01-05",
			validated: false,
			prepareMock: func(m *mocks) {
				m.validations.EXPECT().LockDay(gomock.Any(), int64(30), int64(2), jan5).
					Return(&domain.RiderValidation{RiderID: 30, CourierID: 2, Day: jan5, Validated: true, ValidatedBy: &other, ValidatedAt: &earlier}, nil)
				m.validations.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.orders.EXPECT().GetOrdersForRider(gomock.Any(), int64(30), int64(2), day).Return(nil, nil)
			},
			check: func(t *testing.T, result *domain.RiderDailySettlement) {
				assert.False(t, result.Validated)
				assert.Equal(t, int64(20), *result.ValidatedBy)
				assert.Equal(t, now, *result.ValidatedAt)
			},
		},
		{
			name:        "Malformed date",
			date:        "05-01-2024",
			validated:   true,
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrInvalidDate,
		},
		{
			name:      "Lock error",
			date:      "2024-01-05",
			validated: true,
			prepareMock: func(m *mocks) {
				m.validations.EXPECT().LockDay(gomock.Any(), int64(30), int64(2), jan5).Return(nil, errors.New("lock timeout"))
			},
			expectedErr: errors.New("lock timeout"),
		},
		{
			name:      "Save error",
			date:      "2024-01-05",
			validated: true,
			prepareMock: func(m *mocks) {
				m.validations.EXPECT().LockDay(gomock.Any(), int64(30), int64(2), jan5).
					Return(&domain.RiderValidation{RiderID: 30, CourierID: 2, Day: jan5}, nil)
				m.validations.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.SetRiderValidated(context.Background(), actor, 30, 2, tt.date, tt.validated)
			if tt.expectedErr != nil {
				if errors.Is(tt.expectedErr, domain.ErrInvalidDate) {
					assert.ErrorIs(t, err, domain.ErrInvalidDate)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			tt.check(t, result)
		})
	}
}
