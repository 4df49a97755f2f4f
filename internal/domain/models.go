package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/courier-settlement/pkg/money"
)

type Role string

const (
	RoleCourier   Role = "courier"
	RoleEcommerce Role = "ecommerce"
	RoleRider     Role = "rider"
	RoleAdmin     Role = "admin"
)

// Actor is the authenticated caller. PartyID is the courier, ecommerce or
// rider the user acts for; admins have none.
type Actor struct {
	ID      int64
	Role    Role
	PartyID int64
}

type Order struct {
	ID                 int64            `db:"id"`
	Number             string           `db:"number"`
	CustomerName       string           `db:"customer_name"`
	DeliveryDate       time.Time        `db:"delivery_date"`
	CollectedAmount    decimal.Decimal  `db:"collected_amount"`
	CourierFeeOverride *decimal.Decimal `db:"courier_fee_override"`
	RiderFeeOverride   *decimal.Decimal `db:"rider_fee_override"`
	ZoneID             int64            `db:"zone_id"`
	EcommerceID        int64            `db:"ecommerce_id"`
	CourierID          int64            `db:"courier_id"`
	RiderID            *int64           `db:"rider_id"`
	Paid               bool             `db:"paid"`
	PaymentMethod      string           `db:"payment_method"`
}

func (o Order) Validate() error {
	if o.CourierFeeOverride != nil && o.CourierFeeOverride.IsNegative() {
		return fmt.Errorf("%w: order %d courier fee %s", ErrNegativeOverride, o.ID, o.CourierFeeOverride)
	}
	if o.RiderFeeOverride != nil && o.RiderFeeOverride.IsNegative() {
		return fmt.Errorf("%w: order %d rider fee %s", ErrNegativeOverride, o.ID, o.RiderFeeOverride)
	}
	return nil
}

type ZoneTariff struct {
	CourierID    int64           `db:"courier_id"`
	ZoneID       int64           `db:"zone_id"`
	ClientTariff decimal.Decimal `db:"client_tariff"`
	RiderPayment decimal.Decimal `db:"rider_payment"`
	Active       bool            `db:"active"`
}

// View selects which fees count as service fee when a scope is read.
type View string

const (
	// ViewCourier counts the courier-side fee only.
	ViewCourier View = "courier"
	// ViewEcommerce counts courier-side and rider-side fees, both are deducted from what the ecommerce nets.
	ViewEcommerce View = "ecommerce"
)

func (v View) IsValid() bool {
	return v == ViewCourier || v == ViewEcommerce
}

// Scope is one ledger line: an ecommerce-courier pair read through a view.
// State rows are keyed by the pair only, so both parties act on the same day.
type Scope struct {
	EcommerceID int64
	CourierID   int64
	View        View
}

func (s Scope) Key() string {
	return fmt.Sprintf("%d:%d", s.EcommerceID, s.CourierID)
}

// Period is an inclusive date range; a zero bound is open.
type Period struct {
	From time.Time
	To   time.Time
}

func (p Period) Validate() error {
	if !p.From.IsZero() && !p.To.IsZero() && p.From.After(p.To) {
		return ErrInvalidPeriod
	}
	return nil
}

func (p Period) Contains(day time.Time) bool {
	if !p.From.IsZero() && day.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && day.After(p.To) {
		return false
	}
	return true
}

type FeeSource string

const (
	FeeSourceOverride FeeSource = "override"
	FeeSourceTariff   FeeSource = "tariff"
	// FeeSourceMissing means no override and no active tariff, the fee fell back to zero.
	FeeSourceMissing FeeSource = "missing"
)

type SettlementState struct {
	EcommerceID int64      `db:"ecommerce_id"`
	CourierID   int64      `db:"courier_id"`
	Day         time.Time  `db:"day"`
	State       State      `db:"state"`
	PendingBy   *int64     `db:"pending_by"`
	PendingAt   *time.Time `db:"pending_at"`
	ValidatedBy *int64     `db:"validated_by"`
	ValidatedAt *time.Time `db:"validated_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// Apply moves the row to next and stamps who did it.
func (s *SettlementState) Apply(next State, actorID int64, at time.Time) {
	switch next {
	case StatePendingValidation:
		s.PendingBy = &actorID
		s.PendingAt = &at
	case StateValidated:
		s.ValidatedBy = &actorID
		s.ValidatedAt = &at
	case StateUnvalidated:
		s.PendingBy, s.PendingAt = nil, nil
		s.ValidatedBy, s.ValidatedAt = nil, nil
	}
	s.State = next
	s.UpdatedAt = at
}

type SettlementDay struct {
	Date            time.Time       `json:"date"`
	TotalOrders     int             `json:"total_orders"`
	TotalCollected  decimal.Decimal `json:"total_collected"`
	TotalServiceFee decimal.Decimal `json:"total_service_fee"`
	TotalNet        decimal.Decimal `json:"total_net"`
	MissingTariffs  int             `json:"missing_tariffs"`
	State           State           `json:"state"`
	PendingBy       *int64          `json:"pending_by,omitempty"`
	PendingAt       *time.Time      `json:"pending_at,omitempty"`
	ValidatedBy     *int64          `json:"validated_by,omitempty"`
	ValidatedAt     *time.Time      `json:"validated_at,omitempty"`
}

type OrderLine struct {
	OrderID         int64
	OrderNumber     string
	CustomerName    string
	PaymentMethod   string
	Collected       decimal.Decimal
	ClientFee       decimal.Decimal
	ClientFeeSource FeeSource
	RiderFee        decimal.Decimal
	RiderFeeSource  FeeSource
	TotalFee        decimal.Decimal
	Paid            bool
	TariffMissing   bool
}

// DayDetail is one settlement day with the orders behind its totals.
type DayDetail struct {
	Day    SettlementDay
	Orders []OrderLine
}

type Totals struct {
	Orders     int
	Collected  decimal.Decimal
	ServiceFee decimal.Decimal
	Net        decimal.Decimal
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		Orders:     t.Orders + other.Orders,
		Collected:  t.Collected.Add(other.Collected),
		ServiceFee: t.ServiceFee.Add(other.ServiceFee),
		Net:        t.Net.Add(other.Net),
	}
}

type Action string

const (
	ActionMarkPending Action = "MARK_PENDING"
	ActionValidate    Action = "VALIDATE"
	ActionReopen      Action = "REOPEN"
)

type SkippedDate struct {
	Date  time.Time
	State State
}

type BatchResult struct {
	ReceiptID uuid.UUID
	Action    Action
	Updated   []time.Time
	Skipped   []SkippedDate
	Totals    Totals
}

var receiptVerbs = map[Action]string{
	ActionMarkPending: "submitted",
	ActionValidate:    "confirmed",
	ActionReopen:      "reopened",
}

// Message is the human readable receipt of the batch, counting updated days only.
func (r BatchResult) Message() string {
	if len(r.Updated) == 0 {
		return "Nothing to update: every date was skipped."
	}
	return fmt.Sprintf("You %s %s across %d days.", receiptVerbs[r.Action], money.Format(r.Totals.Net), len(r.Updated))
}

// SettlementEvent is one audited transition of a settlement day.
type SettlementEvent struct {
	ID          uuid.UUID       `db:"id"`
	ReceiptID   uuid.UUID       `db:"receipt_id"`
	EcommerceID int64           `db:"ecommerce_id"`
	CourierID   int64           `db:"courier_id"`
	Day         time.Time       `db:"day"`
	Action      Action          `db:"action"`
	ActorID     int64           `db:"actor_id"`
	FromState   State           `db:"from_state"`
	ToState     State           `db:"to_state"`
	Orders      int             `db:"orders"`
	Collected   decimal.Decimal `db:"collected"`
	ServiceFee  decimal.Decimal `db:"service_fee"`
	At          time.Time       `db:"at"`
}

type RiderValidation struct {
	RiderID     int64      `db:"rider_id"`
	CourierID   int64      `db:"courier_id"`
	Day         time.Time  `db:"day"`
	Validated   bool       `db:"validated"`
	ValidatedBy *int64     `db:"validated_by"`
	ValidatedAt *time.Time `db:"validated_at"`
}

type RiderDailySettlement struct {
	RiderID         int64
	CourierID       int64
	Date            time.Time
	TotalOrders     int
	TotalServiceFee decimal.Decimal
	TotalCollected  *decimal.Decimal
	MissingTariffs  int
	Validated       bool
	ValidatedBy     *int64
	ValidatedAt     *time.Time
}

type Counterparty struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
