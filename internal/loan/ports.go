package loan

import (
	"context"
	"time"
)

// Store defines the persistence contract for borrow records.
//
// Insert must reject a second active record for the same (member, book)
// pair with ErrActiveLoanExists. UpdateStatus is a conditional write:
// it only applies when the record still has the expected prior status
// and fails with ErrVersionConflict otherwise, so a concurrent return
// can never be overwritten by a racing sweep.
type Store interface {
	Insert(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	FindActiveLoan(ctx context.Context, memberID, bookID string) (Record, error)
	UpdateStatus(ctx context.Context, id string, expected, next Status, returnDate *time.Time) (Record, error)
	ListActiveDueBefore(ctx context.Context, cutoff time.Time, afterID string, limit int) ([]Record, error)
	ListByMember(ctx context.Context, memberID string) ([]Record, error)
}
