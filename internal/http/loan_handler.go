package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"lendingapi/internal/httpx"
	"lendingapi/internal/lending"
	"lendingapi/internal/loan"
)

const returnRetryAttempts = 3

// LendingService is the slice of the inventory coordinator the loan
// handler needs.
type LendingService interface {
	Borrow(ctx context.Context, memberID, bookID string) (loan.Record, error)
	Return(ctx context.Context, recordID string) (loan.Record, error)
}

// LoanReader serves the read paths with lazily recomputed statuses.
type LoanReader interface {
	Get(ctx context.Context, id string) (loan.Record, error)
	ListByMember(ctx context.Context, memberID string) ([]loan.Record, error)
}

type LoanHandler struct {
	lending LendingService
	loans   LoanReader
}

func NewLoanHandler(lendingSvc LendingService, loans LoanReader) *LoanHandler {
	return &LoanHandler{lending: lendingSvc, loans: loans}
}

type borrowRequest struct {
	MemberID string `json:"member_id" validate:"required"`
	BookID   string `json:"book_id" validate:"required"`
}

// @Summary Borrow a book
// @Tags loans
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /loans [post]
func (h *LoanHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", "request validation failed", details)
		return
	}

	rec, err := h.lending.Borrow(r.Context(), req.MemberID, req.BookID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusCreated, rec)
}

// @Summary Return a borrowed book
// @Tags loans
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /loans/{id}/return [post]
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	recordID, ok := returnRecordID(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Version conflicts mean we lost a race with the sweeper; the whole
	// operation is safe to re-run a few times before giving up.
	var rec loan.Record
	err := lending.RetryOnConflict(r.Context(), returnRetryAttempts, func(ctx context.Context) error {
		var innerErr error
		rec, innerErr = h.lending.Return(ctx, recordID)
		return innerErr
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, rec)
}

// @Summary Get a borrow record
// @Tags loans
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /loans/{id} [get]
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/loans/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	rec, err := h.loans.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, rec)
}

// @Summary List a member's borrow records
// @Tags loans
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /loans [get]
func (h *LoanHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("member_id")
	if memberID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", "member_id query parameter is required", nil)
		return
	}

	recs, err := h.loans.ListByMember(r.Context(), memberID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if recs == nil {
		recs = []loan.Record{}
	}
	httpx.JSONSuccess(w, http.StatusOK, recs)
}

// returnRecordID picks the record id out of /loans/{id}/return.
func returnRecordID(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/loans/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "return" {
		return "", false
	}
	return parts[0], true
}
