package riders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/dto"
	"github.com/GlebRadaev/courier-settlement/pkg/auth"
)

var (
	jan5    = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	courier = domain.Actor{ID: 20, Role: domain.RoleCourier, PartyID: 2}
	rider   = domain.Actor{ID: 31, Role: domain.RoleRider, PartyID: 30}
	admin   = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	shop    = domain.Actor{ID: 10, Role: domain.RoleEcommerce, PartyID: 1}
)

func NewMock(t *testing.T) (*RiderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target string, body string, actor *domain.Actor) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if actor != nil {
		r = r.WithContext(auth.WithActor(r.Context(), *actor))
	}
	return r
}

func TestGetRiderSummary(t *testing.T) {
	collected := decimal.RequireFromString("100")
	day := domain.RiderDailySettlement{
		RiderID: 30, CourierID: 2, Date: jan5, TotalOrders: 2,
		TotalServiceFee: decimal.RequireFromString("10"), TotalCollected: &collected, Validated: true,
	}

	tests := []struct {
		name          string
		actor         *domain.Actor
		query         string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Rider reads its own days",
			actor: &rider,
			query: "rider_id=30&courier_id=2&from=2024-01-01",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetRiderSummary(gomock.Any(), int64(30), int64(2), domain.Period{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}).
					Return([]domain.RiderDailySettlement{day}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Courier reads its rider",
			actor: &courier,
			query: "rider_id=30&courier_id=2",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetRiderSummary(gomock.Any(), int64(30), int64(2), domain.Period{}).
					Return([]domain.RiderDailySettlement{day}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Another rider",
			actor:         &rider,
			query:         "rider_id=31&courier_id=2",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:          "Ecommerce cannot read riders",
			actor:         &shop,
			query:         "rider_id=30&courier_id=2",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:          "No actor",
			query:         "rider_id=30&courier_id=2",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Malformed rider id",
			actor:         &admin,
			query:         "rider_id=x&courier_id=2",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid query",
		},
		{
			name:          "Malformed date",
			actor:         &admin,
			query:         "rider_id=30&courier_id=2&to=31-01-2024",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "To",
		},
		{
			name:          "Inverted period",
			actor:         &admin,
			query:         "rider_id=30&courier_id=2&from=2024-02-01&to=2024-01-01",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: domain.ErrInvalidPeriod.Error(),
		},
		{
			name:  "Service failure",
			actor: &admin,
			query: "rider_id=30&courier_id=2",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetRiderSummary(gomock.Any(), int64(30), int64(2), domain.Period{}).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetRiderSummary(w, request(http.MethodGet, "/api/riders/summary?"+tt.query, "", tt.actor))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.RiderDayDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.Len(t, body, 1)
				assert.Equal(t, "10.00", body[0].TotalServiceFee)
				require.NotNil(t, body[0].TotalCollected)
				assert.Equal(t, "100.00", *body[0].TotalCollected)
				assert.True(t, body[0].Validated)
			}
		})
	}
}

func TestSetRiderValidated(t *testing.T) {
	at := jan5.Add(20 * time.Hour)
	by := courier.ID

	tests := []struct {
		name          string
		actor         *domain.Actor
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Courier validates its rider",
			actor: &courier,
			body:  `{"rider_id":30,"courier_id":2,"date":"2024-01-05","validated":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetRiderValidated(gomock.Any(), courier, int64(30), int64(2), "2024-01-05", true).
					Return(&domain.RiderDailySettlement{RiderID: 30, CourierID: 2, Date: jan5, Validated: true, ValidatedBy: &by, ValidatedAt: &at}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Admin clears the flag",
			actor: &admin,
			body:  `{"rider_id":30,"courier_id":2,"date":"2024-01-05","validated":false}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetRiderValidated(gomock.Any(), admin, int64(30), int64(2), "2024-01-05", false).
					Return(&domain.RiderDailySettlement{RiderID: 30, CourierID: 2, Date: jan5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Riders cannot validate themselves",
			actor:         &rider,
			body:          `{"rider_id":30,"courier_id":2,"date":"2024-01-05","validated":true}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:          "Courier of another rider",
			actor:         &domain.Actor{ID: 21, Role: domain.RoleCourier, PartyID: 3},
			body:          `{"rider_id":30,"courier_id":2,"date":"2024-01-05","validated":true}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:          "Flag is required",
			actor:         &courier,
			body:          `{"rider_id":30,"courier_id":2,"date":"2024-01-05"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Validated",
		},
		{
			name:          "Broken JSON",
			actor:         &courier,
			body:          `[`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:  "Malformed date",
			actor: &courier,
			body:  `{"rider_id":30,"courier_id":2,"date":"5 Jan","validated":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetRiderValidated(gomock.Any(), courier, int64(30), int64(2), "5 Jan", true).
					Return(nil, fmt.Errorf("%w: malformed date", domain.ErrInvalidDate))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: domain.ErrInvalidDate.Error(),
		},
		{
			name:          "No actor",
			body:          `{"rider_id":30,"courier_id":2,"date":"2024-01-05","validated":true}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:  "Service failure",
			actor: &courier,
			body:  `{"rider_id":30,"courier_id":2,"date":"2024-01-05","validated":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetRiderValidated(gomock.Any(), courier, int64(30), int64(2), "2024-01-05", true).
					Return(nil, errors.New("lock timeout"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.SetRiderValidated(w, request(http.MethodPost, "/api/riders/validate", tt.body, tt.actor))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RiderDayDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "2024-01-05", body.Date)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name        string
		from        string
		to          string
		expected    domain.Period
		expectedErr error
	}{
		{name: "Open period"},
		{
			name:     "Closed period",
			from:     "2024-01-05",
			to:       "2024-01-31",
			expected: domain.Period{From: jan5, To: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		},
		{name: "Impossible day", from: "2024-02-30", expectedErr: domain.ErrInvalidDate},
		{name: "Malformed day", to: "31/01/2024", expectedErr: domain.ErrInvalidDate},
		{name: "Inverted", from: "2024-01-31", to: "2024-01-05", expectedErr: domain.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := parsePeriod(tt.from, tt.to)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, domain.Period{}, period)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, period)
		})
	}
}
