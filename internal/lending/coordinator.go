package lending

import (
	"context"
	"fmt"
	"log"
	"time"

	"lendingapi/internal/catalog"
	"lendingapi/internal/loan"
)

// zeroTime tells the ledger to stamp its own clock.
var zeroTime time.Time

// Coordinator is the only path that ties a borrow-record mutation to
// the matching copy-counter mutation, so the two never drift apart.
// Both sides are conditional writes: the counter adjustment re-checks
// non-negativity at commit time and the record insert is guarded by the
// active-pair uniqueness constraint, which keeps the locking per-book
// and per-(member,book) with no global lock.
type Coordinator struct {
	books  catalog.Store
	ledger *loan.Ledger
}

func NewCoordinator(books catalog.Store, ledger *loan.Ledger) *Coordinator {
	return &Coordinator{books: books, ledger: ledger}
}

// Borrow grants a loan: the conditional decrement claims a copy (or
// fails with catalog.ErrOutOfStock), then the ledger opens the record.
// If the record cannot be created the claimed copy is released again,
// so no decrement survives without a record and vice versa.
func (c *Coordinator) Borrow(ctx context.Context, memberID, bookID string) (loan.Record, error) {
	if err := c.books.AdjustAvailableCopies(ctx, bookID, -1); err != nil {
		return loan.Record{}, err
	}

	rec, err := c.ledger.CreateLoan(ctx, memberID, bookID, zeroTime)
	if err != nil {
		if compErr := c.books.AdjustAvailableCopies(ctx, bookID, +1); compErr != nil {
			// The copy stays claimed; surface both so an operator can
			// reconcile.
			log.Printf("lending: failed to release copy of book %s after loan error: %v", bookID, compErr)
			return loan.Record{}, fmt.Errorf("create loan: %w (release copy: %v)", err, compErr)
		}
		return loan.Record{}, err
	}
	return rec, nil
}

// Return closes the loan and hands the copy back. The ledger write is
// conditional on the record's observed status, so a racing sweep or a
// duplicate return surfaces as loan.ErrVersionConflict /
// loan.ErrAlreadyReturned before the counter is touched.
func (c *Coordinator) Return(ctx context.Context, recordID string) (loan.Record, error) {
	rec, err := c.ledger.RecordReturn(ctx, recordID, zeroTime)
	if err != nil {
		return loan.Record{}, err
	}

	if err := c.books.AdjustAvailableCopies(ctx, rec.BookID, +1); err != nil {
		log.Printf("lending: record %s returned but copy of book %s not restocked: %v", rec.ID, rec.BookID, err)
		return rec, fmt.Errorf("restock book %s: %w", rec.BookID, err)
	}
	return rec, nil
}
