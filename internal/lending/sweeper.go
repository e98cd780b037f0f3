package lending

import (
	"context"
	"errors"
	"log"
	"time"

	"lendingapi/internal/loan"
)

const defaultBatchSize = 100

// Sweeper walks active loans whose loan period has elapsed and persists
// the overdue transition. Every update is conditional on the record
// still being borrowed: a loan returned between selection and update
// loses the race on purpose and is skipped, never overwritten.
type Sweeper struct {
	store     loan.Store
	batchSize int
	now       func() time.Time
}

func NewSweeper(store loan.Store) *Sweeper {
	return &Sweeper{
		store:     store,
		batchSize: defaultBatchSize,
		now:       time.Now,
	}
}

// WithClock overrides the sweeper's time source. Tests use this to pin
// "now".
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// WithBatchSize overrides how many records each page pulls.
func (s *Sweeper) WithBatchSize(n int) *Sweeper {
	if n > 0 {
		s.batchSize = n
	}
	return s
}

// SweepOnce runs a single full pass and reports how many records it
// marked overdue. Pages are keyed on record id, so a pass interrupted
// by ctx can be rerun and picks up where the previous one left off.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-loan.LoanPeriod)
	marked := 0
	afterID := ""

	for {
		if err := ctx.Err(); err != nil {
			return marked, err
		}

		batch, err := s.store.ListActiveDueBefore(ctx, cutoff, afterID, s.batchSize)
		if err != nil {
			return marked, err
		}
		if len(batch) == 0 {
			return marked, nil
		}

		for _, rec := range batch {
			afterID = rec.ID
			_, err := s.store.UpdateStatus(ctx, rec.ID, loan.StatusBorrowed, loan.StatusOverdue, nil)
			switch {
			case err == nil:
				marked++
			case errors.Is(err, loan.ErrVersionConflict), errors.Is(err, loan.ErrNotFound):
				// Returned (or gone) since we selected it; leave it be.
			default:
				return marked, err
			}
		}
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			marked, err := s.SweepOnce(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("lending: overdue sweep failed after %d records: %v", marked, err)
				continue
			}
			if marked > 0 {
				log.Printf("lending: overdue sweep marked %d records", marked)
			}
		}
	}
}
