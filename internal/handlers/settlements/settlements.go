package settlements

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/dto"
	"github.com/GlebRadaev/courier-settlement/pkg/auth"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
	"github.com/GlebRadaev/courier-settlement/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, scope domain.Scope, period domain.Period, pendingOnly bool) ([]domain.SettlementDay, error)
	GetDayDetail(ctx context.Context, scope domain.Scope, day time.Time) (*domain.DayDetail, error)
	MarkPendingValidation(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error)
	Validate(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error)
	Reopen(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error)
	ListCounterparties(ctx context.Context, actor domain.Actor) ([]domain.Counterparty, error)
}

type SettlementHandler struct {
	settlementService Service
	validate          *validator.Validate
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetSummary godoc
//
//	@Summary		Get the settlement ledger of a pair
//	@Description	Per-day totals of one ecommerce and courier pair, oldest day first. Couriers read the courier view, ecommerces the ecommerce view; admins may pick one.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			ecommerce_id	query		int		true	"Ecommerce id"
//	@Param			courier_id		query		int		true	"Courier id"
//	@Param			from			query		string	false	"First day, YYYY-MM-DD"
//	@Param			to				query		string	false	"Last day, YYYY-MM-DD"
//	@Param			pending_only	query		bool	false	"Only days waiting for validation"
//	@Param			view			query		string	false	"courier or ecommerce, admins only"
//	@Success		200				{array}		dto.SettlementDayDTO
//	@Failure		400				{object}	utils.Response	"Invalid query"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Not a party of the pair"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/summary [get]
func (h *SettlementHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query, err := h.summaryQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	scope, err := resolveScope(actor, query.EcommerceID, query.CourierID, query.View)
	if err != nil {
		respondError(w, err)
		return
	}
	period, err := parsePeriod(query.From, query.To)
	if err != nil {
		respondError(w, err)
		return
	}

	days, err := h.settlementService.GetSummary(r.Context(), scope, period, query.PendingOnly)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSettlementDays(days))
}

// GetDayDetail godoc
//
//	@Summary		Get one settlement day with its orders
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			ecommerce_id	query		int		true	"Ecommerce id"
//	@Param			courier_id		query		int		true	"Courier id"
//	@Param			date			query		string	true	"Day, YYYY-MM-DD"
//	@Param			view			query		string	false	"courier or ecommerce, admins only"
//	@Success		200				{object}	dto.DayDetailDTO
//	@Failure		400				{object}	utils.Response	"Invalid query"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Not a party of the pair"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/detail [get]
func (h *SettlementHandler) GetDayDetail(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query, err := h.detailQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	scope, err := resolveScope(actor, query.EcommerceID, query.CourierID, query.View)
	if err != nil {
		respondError(w, err)
		return
	}
	day, err := dates.Parse(query.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, domain.ErrInvalidDate.Error())
		return
	}

	detail, err := h.settlementService.GetDayDetail(r.Context(), scope, day)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromDayDetail(detail))
}

// MarkPendingValidation godoc
//
//	@Summary		Submit days for validation
//	@Description	Moves Unvalidated days of the pair to PendingValidation and marks their orders paid. Other days are skipped and reported.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BatchRequestDTO	true	"Pair and dates"
//	@Success		200		{object}	dto.BatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the courier of the pair"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/mark-pending [post]
func (h *SettlementHandler) MarkPendingValidation(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, domain.ActionMarkPending, h.settlementService.MarkPendingValidation)
}

// Validate godoc
//
//	@Summary		Confirm pending days
//	@Description	Moves PendingValidation days of the pair to Validated. Other days are skipped and reported.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BatchRequestDTO	true	"Pair and dates"
//	@Success		200		{object}	dto.BatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the ecommerce of the pair"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/validate [post]
func (h *SettlementHandler) Validate(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, domain.ActionValidate, h.settlementService.Validate)
}

// Reopen godoc
//
//	@Summary		Reopen settled days
//	@Description	Admin only. Sends PendingValidation and Validated days back to Unvalidated and resets the paid flag of their orders.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BatchRequestDTO	true	"Pair and dates"
//	@Success		200		{object}	dto.BatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/reopen [post]
func (h *SettlementHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, domain.ActionReopen, h.settlementService.Reopen)
}

// GetCounterparties godoc
//
//	@Summary		List who the caller settles with
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CounterpartyDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Role has no counterparties"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/counterparties [get]
func (h *SettlementHandler) GetCounterparties(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	parties, err := h.settlementService.ListCounterparties(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCounterparties(parties))
}

type batchFn func(ctx context.Context, actor domain.Actor, scope domain.Scope, rawDates []string) (*domain.BatchResult, error)

func (h *SettlementHandler) batch(w http.ResponseWriter, r *http.Request, action domain.Action, run batchFn) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !canAct(actor, action) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var req dto.BatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	scope, err := resolveScope(actor, req.EcommerceID, req.CourierID, req.View)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := run(r.Context(), actor, scope, req.Dates)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBatchResult(result))
}

func (h *SettlementHandler) summaryQuery(r *http.Request) (dto.SummaryQueryDTO, error) {
	var query dto.SummaryQueryDTO
	var err error
	if query.EcommerceID, err = parseID(r, "ecommerce_id"); err != nil {
		return query, err
	}
	if query.CourierID, err = parseID(r, "courier_id"); err != nil {
		return query, err
	}
	values := r.URL.Query()
	query.From = values.Get("from")
	query.To = values.Get("to")
	query.View = values.Get("view")
	if raw := values.Get("pending_only"); raw != "" {
		if query.PendingOnly, err = strconv.ParseBool(raw); err != nil {
			return query, ErrInvalidQuery
		}
	}
	if err := h.validate.Struct(query); err != nil {
		return query, err
	}
	return query, nil
}

func (h *SettlementHandler) detailQuery(r *http.Request) (dto.DetailQueryDTO, error) {
	var query dto.DetailQueryDTO
	var err error
	if query.EcommerceID, err = parseID(r, "ecommerce_id"); err != nil {
		return query, err
	}
	if query.CourierID, err = parseID(r, "courier_id"); err != nil {
		return query, err
	}
	query.Date = r.URL.Query().Get("date")
	query.View = r.URL.Query().Get("view")
	if err := h.validate.Struct(query); err != nil {
		return query, err
	}
	return query, nil
}

func parsePeriod(from, to string) (domain.Period, error) {
	var (
		period domain.Period
		err    error
	)
	if period.From, err = dates.ParseOptional(from); err != nil {
		return domain.Period{}, domain.ErrInvalidDate
	}
	if period.To, err = dates.ParseOptional(to); err != nil {
		return domain.Period{}, domain.ErrInvalidDate
	}
	if err := period.Validate(); err != nil {
		return domain.Period{}, err
	}
	return period, nil
}
