package riders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/dto"
	"github.com/GlebRadaev/courier-settlement/pkg/auth"
	"github.com/GlebRadaev/courier-settlement/pkg/dates"
	"github.com/GlebRadaev/courier-settlement/pkg/utils"
)

type Service interface {
	GetRiderSummary(ctx context.Context, riderID, courierID int64, period domain.Period) ([]domain.RiderDailySettlement, error)
	SetRiderValidated(ctx context.Context, actor domain.Actor, riderID, courierID int64, rawDate string, validated bool) (*domain.RiderDailySettlement, error)
}

type RiderHandler struct {
	riderService Service
	validate     *validator.Validate
}

func New(riderService Service) *RiderHandler {
	return &RiderHandler{
		riderService: riderService,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetRiderSummary godoc
//
//	@Summary		Get the daily ledger of a rider
//	@Description	Rider-side fee totals per delivery date with the validation flag of each day.
//	@Tags			Riders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rider_id	query		int		true	"Rider id"
//	@Param			courier_id	query		int		true	"Courier id"
//	@Param			from		query		string	false	"First day, YYYY-MM-DD"
//	@Param			to			query		string	false	"Last day, YYYY-MM-DD"
//	@Success		200			{array}		dto.RiderDayDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Neither the rider nor its courier"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/riders/summary [get]
func (h *RiderHandler) GetRiderSummary(w http.ResponseWriter, r *http.Request) {
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
	if !canRead(actor, query.RiderID, query.CourierID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	period, err := parsePeriod(query.From, query.To)
	if err != nil {
		respondError(w, err)
		return
	}

	days, err := h.riderService.GetRiderSummary(r.Context(), query.RiderID, query.CourierID, period)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRiderDays(days))
}

// SetRiderValidated godoc
//
//	@Summary		Set the validation flag of a rider day
//	@Description	Setting the flag a day already has changes nothing and returns the day as it is.
//	@Tags			Riders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RiderValidateRequestDTO	true	"Rider day and flag"
//	@Success		200		{object}	dto.RiderDayDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the courier of the rider"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/riders/validate [post]
func (h *RiderHandler) SetRiderValidated(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.RiderValidateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !canValidate(actor, req.CourierID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	day, err := h.riderService.SetRiderValidated(r.Context(), actor, req.RiderID, req.CourierID, req.Date, *req.Validated)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRiderDay(*day))
}

func canRead(actor domain.Actor, riderID, courierID int64) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleRider:
		return actor.PartyID == riderID
	case domain.RoleCourier:
		return actor.PartyID == courierID
	}
	return false
}

func canValidate(actor domain.Actor, courierID int64) bool {
	return actor.Role == domain.RoleAdmin || (actor.Role == domain.RoleCourier && actor.PartyID == courierID)
}

func (h *RiderHandler) summaryQuery(r *http.Request) (dto.RiderSummaryQueryDTO, error) {
	values := r.URL.Query()
	query := dto.RiderSummaryQueryDTO{
		From: values.Get("from"),
		To:   values.Get("to"),
	}
	for name, dest := range map[string]*int64{"rider_id": &query.RiderID, "courier_id": &query.CourierID} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return query, errors.New("invalid query")
		}
		*dest = id
	}
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

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidPeriod):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
