package http

import (
	"errors"
	"net/http"

	"lendingapi/internal/catalog"
	"lendingapi/internal/httpx"
	"lendingapi/internal/loan"
	"lendingapi/internal/member"
)

// writeDomainError maps the domain's sentinel errors onto HTTP status
// codes. Anything unmapped is a 500 with the detail kept out of the
// response body.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, member.ErrNotFound),
		errors.Is(err, member.ErrProfileNotFound),
		errors.Is(err, loan.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", err.Error(), nil)

	case errors.Is(err, loan.ErrActiveLoanExists),
		errors.Is(err, member.ErrProfileExists),
		errors.Is(err, member.ErrPhoneTaken),
		errors.Is(err, catalog.ErrISBNTaken):
		httpx.JSONError(w, http.StatusConflict, "conflict", err.Error(), nil)

	case errors.Is(err, catalog.ErrOutOfStock):
		httpx.JSONError(w, http.StatusConflict, "out_of_stock", err.Error(), nil)

	case errors.Is(err, loan.ErrAlreadyReturned):
		httpx.JSONError(w, http.StatusConflict, "already_returned", err.Error(), nil)

	case errors.Is(err, loan.ErrVersionConflict):
		httpx.JSONError(w, http.StatusConflict, "version_conflict", "the record changed concurrently, retry the request", nil)

	case errors.Is(err, catalog.ErrInvalidISBN),
		errors.Is(err, loan.ErrReturnBeforeBorrow):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)

	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred", nil)
	}
}
