package httpx

import (
	"errors"
	"net/http"

	"github.com/voltmart/voltmart/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// Store failures deliberately carry no detail; handlers log them before
// rethrowing here.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrDuplicate):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
