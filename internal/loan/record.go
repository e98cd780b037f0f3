package loan

import (
	"errors"
	"time"
)

// LoanPeriod is how long a member may keep a book before the loan
// counts as overdue.
const LoanPeriod = 14 * 24 * time.Hour

// ErrNotFound is returned when a borrow record is not found.
var ErrNotFound = errors.New("borrow record not found")

// ErrActiveLoanExists is returned when a member already holds an active
// loan for the same book.
var ErrActiveLoanExists = errors.New("member already has an active loan for this book")

// ErrAlreadyReturned is returned when a transition is attempted on a
// record that has reached its terminal Returned state.
var ErrAlreadyReturned = errors.New("borrow record already returned")

// ErrReturnBeforeBorrow is returned when a return date precedes the
// borrow date.
var ErrReturnBeforeBorrow = errors.New("return date precedes borrow date")

// ErrVersionConflict is returned when a conditional status update loses
// a race: the record no longer has the expected prior status. Callers
// should retry the whole operation rather than patch around it.
var ErrVersionConflict = errors.New("borrow record changed concurrently")

// Status is the lifecycle state of a borrow record.
type Status string

const (
	StatusBorrowed Status = "BORROWED"
	StatusOverdue  Status = "OVERDUE"
	StatusReturned Status = "RETURNED"
)

// Record is a single loan of a book to a member. Once returned it is an
// immutable audit entry.
type Record struct {
	ID         string     `json:"id"`
	MemberID   string     `json:"member_id"`
	BookID     string     `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Active reports whether the loan is still out, i.e. not yet returned.
func (r Record) Active() bool {
	return r.Status == StatusBorrowed || r.Status == StatusOverdue
}

// DueAt is the moment the loan period ends.
func (r Record) DueAt() time.Time {
	return r.BorrowDate.Add(LoanPeriod)
}

// MarkOverdueIfDue returns a copy of rec with StatusOverdue when the
// loan period has elapsed and the book is still out. It is pure and
// idempotent, and it never touches a returned record no matter how much
// time has passed: overdue is derived from (status, borrowDate, now),
// not a separately aging fact.
func MarkOverdueIfDue(rec Record, now time.Time) Record {
	if rec.Status != StatusBorrowed {
		return rec
	}
	if now.Sub(rec.BorrowDate) > LoanPeriod {
		rec.Status = StatusOverdue
	}
	return rec
}
