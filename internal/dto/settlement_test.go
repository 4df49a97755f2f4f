package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

var jan5 = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

func TestFromSettlementDay(t *testing.T) {
	by := int64(20)
	at := time.Date(2024, 1, 6, 5, 30, 0, 0, time.FixedZone("PET", -5*60*60))

	got := FromSettlementDay(domain.SettlementDay{
		Date:            jan5,
		TotalOrders:     1,
		TotalCollected:  decimal.RequireFromString("50"),
		TotalServiceFee: decimal.RequireFromString("13.005"),
		TotalNet:        decimal.RequireFromString("36.995"),
		State:           domain.StatePendingValidation,
		PendingBy:       &by,
		PendingAt:       &at,
	})

	assert.Equal(t, "2024-01-05", got.Date)
	assert.Equal(t, "50.00", got.TotalCollected)
	assert.Equal(t, "13.01", got.TotalServiceFee)
	assert.Equal(t, "37.00", got.TotalNet)
	assert.Equal(t, "PENDING_VALIDATION", got.State)
	require.NotNil(t, got.PendingAt)
	assert.Equal(t, "2024-01-06T10:30:00Z", *got.PendingAt)
	assert.Nil(t, got.ValidatedAt)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "validated_by")
}

func TestFromBatchResult(t *testing.T) {
	receipt := uuid.MustParse("2b1c6a52-6f53-4a8e-9f0e-1d1c1f0b7a11")

	tests := []struct {
		name     string
		result   *domain.BatchResult
		expected BatchResponseDTO
	}{
		{
			name: "Updated and skipped days",
			result: &domain.BatchResult{
				ReceiptID: receipt,
				Action:    domain.ActionValidate,
				Updated:   []time.Time{jan5},
				Skipped:   []domain.SkippedDate{{Date: jan5.AddDate(0, 0, 1), State: domain.StateUnvalidated}},
				Totals: domain.Totals{
					Orders:     1,
					Collected:  decimal.RequireFromString("50"),
					ServiceFee: decimal.RequireFromString("13"),
					Net:        decimal.RequireFromString("37"),
				},
			},
			expected: BatchResponseDTO{
				ReceiptID:    receipt.String(),
				UpdatedDates: []string{"2024-01-05"},
				SkippedDates: []SkippedDateDTO{{Date: "2024-01-06", State: "UNVALIDATED"}},
				Totals:       TotalsDTO{Orders: 1, Collected: "50.00", ServiceFee: "13.00", Net: "37.00"},
				Message:      "You confirmed S/ 37.00 across 1 days.",
			},
		},
		{
			name:   "Nothing updated",
			result: &domain.BatchResult{ReceiptID: receipt, Action: domain.ActionMarkPending},
			expected: BatchResponseDTO{
				ReceiptID:    receipt.String(),
				UpdatedDates: []string{},
				SkippedDates: []SkippedDateDTO{},
				Totals:       TotalsDTO{Collected: "0.00", ServiceFee: "0.00", Net: "0.00"},
				Message:      "Nothing to update: every date was skipped.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromBatchResult(tt.result))
		})
	}
}

func TestFromDayDetail(t *testing.T) {
	detail := &domain.DayDetail{
		Day: domain.SettlementDay{Date: jan5},
		Orders: []domain.OrderLine{{
			OrderID:         10,
			OrderNumber:     "A-10",
			Collected:       decimal.RequireFromString("50"),
			ClientFee:       decimal.RequireFromString("8"),
			ClientFeeSource: domain.FeeSourceTariff,
			RiderFee:        decimal.Zero,
			RiderFeeSource:  domain.FeeSourceMissing,
			TotalFee:        decimal.RequireFromString("8"),
			TariffMissing:   true,
		}},
	}

	got := FromDayDetail(detail)

	assert.Equal(t, "UNVALIDATED", got.Day.State)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "8.00", got.Orders[0].ClientFee)
	assert.Equal(t, "tariff", got.Orders[0].ClientFeeSource)
	assert.Equal(t, "0.00", got.Orders[0].RiderFee)
	assert.Equal(t, "missing", got.Orders[0].RiderFeeSource)
	assert.True(t, got.Orders[0].TariffMissing)
}

func TestFromRiderDay(t *testing.T) {
	got := FromRiderDay(domain.RiderDailySettlement{RiderID: 30, CourierID: 2, Date: jan5, TotalServiceFee: decimal.RequireFromString("5")})

	assert.Equal(t, "5.00", got.TotalServiceFee)
	assert.Nil(t, got.TotalCollected)
	assert.False(t, got.Validated)
	assert.Empty(t, FromRiderDays(nil))
	assert.NotNil(t, FromRiderDays(nil))
}
