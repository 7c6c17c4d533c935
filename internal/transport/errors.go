package transport

import (
	"errors"
	"net/http"

	"supplychain-core/internal/middleware"
	"supplychain-core/internal/repository"
	"supplychain-core/internal/service"
)

// respondServiceError maps domain failures onto HTTP status codes:
// missing entities are 404, broken constraints and illegal lifecycle moves
// are conflicts, rejected quantities are unprocessable, and a failed
// supplier notification is a bad gateway so callers know to retry.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrSupplierNotFound),
		errors.Is(err, repository.ErrOrderNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, repository.ErrDuplicateSKU),
		errors.Is(err, service.ErrInvalidTransition):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidStock):
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, service.ErrDispatchFailed):
		middleware.RespondWithError(w, http.StatusBadGateway, err.Error())

	default:
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
