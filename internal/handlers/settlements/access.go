package settlements

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
	"github.com/GlebRadaev/courier-settlement/internal/service/settlementservice"
	"github.com/GlebRadaev/courier-settlement/pkg/utils"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidQuery = errors.New("invalid query")
)

var actionRoles = map[domain.Action][]domain.Role{
	domain.ActionMarkPending: {domain.RoleCourier, domain.RoleAdmin},
	domain.ActionValidate:    {domain.RoleEcommerce, domain.RoleAdmin},
	domain.ActionReopen:      {domain.RoleAdmin},
}

// resolveScope checks that the actor is a party of the pair and picks the view
// it reads through. Only admins choose the view; they default to ecommerce.
func resolveScope(actor domain.Actor, ecommerceID, courierID int64, view string) (domain.Scope, error) {
	scope := domain.Scope{EcommerceID: ecommerceID, CourierID: courierID}
	switch actor.Role {
	case domain.RoleCourier:
		if actor.PartyID != courierID {
			return domain.Scope{}, ErrForbidden
		}
		scope.View = domain.ViewCourier
	case domain.RoleEcommerce:
		if actor.PartyID != ecommerceID {
			return domain.Scope{}, ErrForbidden
		}
		scope.View = domain.ViewEcommerce
	case domain.RoleAdmin:
		scope.View = domain.ViewEcommerce
		if view != "" {
			scope.View = domain.View(view)
		}
	default:
		return domain.Scope{}, ErrForbidden
	}
	return scope, nil
}

func canAct(actor domain.Actor, action domain.Action) bool {
	return slices.Contains(actionRoles[action], actor.Role)
}

func parseID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidQuery
	}
	return id, nil
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden), errors.Is(err, settlementservice.ErrUnsupportedRole):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrEmptyDates),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidView),
		errors.Is(err, domain.ErrNegativeOverride):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
