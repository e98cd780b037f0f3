package loan

import (
	"context"
	"errors"
	"time"

	"lendingapi/internal/catalog"
	"lendingapi/internal/member"
)

// MemberGetter is the slice of the membership store the ledger needs.
type MemberGetter interface {
	GetMember(ctx context.Context, id string) (member.Member, error)
}

// BookGetter is the slice of the catalog store the ledger needs.
type BookGetter interface {
	GetByID(ctx context.Context, id string) (catalog.Book, error)
}

// Ledger enforces the borrow-record state machine in isolation from
// inventory concerns. All read paths recompute the effective status
// with MarkOverdueIfDue before handing a record to a caller, so an
// unswept loan still reads as overdue.
type Ledger struct {
	store   Store
	members MemberGetter
	books   BookGetter
	now     func() time.Time
}

func NewLedger(store Store, members MemberGetter, books BookGetter) *Ledger {
	return &Ledger{
		store:   store,
		members: members,
		books:   books,
		now:     time.Now,
	}
}

// WithClock overrides the ledger's time source. Tests use this to pin
// "now".
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// CreateLoan opens a loan for the member/book pair. A zero borrowDate
// defaults to the current time. It fails with ErrActiveLoanExists when
// the member already holds this book, and with the respective store's
// not-found error when the member or book does not exist.
func (l *Ledger) CreateLoan(ctx context.Context, memberID, bookID string, borrowDate time.Time) (Record, error) {
	if _, err := l.members.GetMember(ctx, memberID); err != nil {
		return Record{}, err
	}
	if _, err := l.books.GetByID(ctx, bookID); err != nil {
		return Record{}, err
	}

	if borrowDate.IsZero() {
		borrowDate = l.now()
	}

	// Fast-path check for a friendlier error; the store's uniqueness
	// constraint is what actually closes the race.
	switch _, err := l.store.FindActiveLoan(ctx, memberID, bookID); {
	case err == nil:
		return Record{}, ErrActiveLoanExists
	case !errors.Is(err, ErrNotFound):
		return Record{}, err
	}

	rec := Record{
		MemberID:   memberID,
		BookID:     bookID,
		BorrowDate: borrowDate.UTC(),
		Status:     StatusBorrowed,
	}
	if err := l.store.Insert(ctx, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// RecordReturn moves an active record to its terminal Returned state,
// stamping returnDate (default: now). Already-returned records fail
// with ErrAlreadyReturned; a return date before the borrow date fails
// with ErrReturnBeforeBorrow. The underlying write is conditional on
// the status observed here, so a lost race surfaces as
// ErrVersionConflict instead of silently clobbering a newer state.
func (l *Ledger) RecordReturn(ctx context.Context, recordID string, returnDate time.Time) (Record, error) {
	rec, err := l.store.GetByID(ctx, recordID)
	if err != nil {
		return Record{}, err
	}
	if rec.Status == StatusReturned {
		return Record{}, ErrAlreadyReturned
	}

	if returnDate.IsZero() {
		returnDate = l.now()
	}
	returnDate = returnDate.UTC()
	if returnDate.Before(rec.BorrowDate) {
		return Record{}, ErrReturnBeforeBorrow
	}

	return l.store.UpdateStatus(ctx, rec.ID, rec.Status, StatusReturned, &returnDate)
}

// Get returns a record with its effective status as of now.
func (l *Ledger) Get(ctx context.Context, id string) (Record, error) {
	rec, err := l.store.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return MarkOverdueIfDue(rec, l.now()), nil
}

// ListByMember returns a member's records, effective statuses included.
func (l *Ledger) ListByMember(ctx context.Context, memberID string) ([]Record, error) {
	recs, err := l.store.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	now := l.now()
	for i := range recs {
		recs[i] = MarkOverdueIfDue(recs[i], now)
	}
	return recs, nil
}
