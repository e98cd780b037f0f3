package lending_test

import (
	"context"
	"testing"
	"time"

	"lendingapi/internal/lending"
	"lendingapi/internal/loan"
	"lendingapi/internal/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedLoan(t *testing.T, repo *loan.MemoryRepo, memberID, bookID string, borrowDate time.Time) loan.Record {
	t.Helper()
	rec := &loan.Record{MemberID: memberID, BookID: bookID, BorrowDate: borrowDate, Status: loan.StatusBorrowed}
	require.NoError(t, repo.Insert(context.Background(), rec))
	return *rec
}

func TestSweeper_SweepOnce(t *testing.T) {
	ctx := context.Background()
	now := date("2025-01-20T00:00:00Z")

	t.Run("marks only elapsed loans", func(t *testing.T) {
		repo := loan.NewMemoryRepo()
		late := seedLoan(t, repo, "m-1", "b-1", date("2025-01-01T00:00:00Z"))
		fresh := seedLoan(t, repo, "m-2", "b-2", date("2025-01-15T00:00:00Z"))

		sweeper := lending.NewSweeper(repo).WithClock(func() time.Time { return now })
		marked, err := sweeper.SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, marked)

		got, err := repo.GetByID(ctx, late.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusOverdue, got.Status)
		assert.Nil(t, got.ReturnDate)

		got, err = repo.GetByID(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusBorrowed, got.Status)
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		repo := loan.NewMemoryRepo()
		seedLoan(t, repo, "m-1", "b-1", date("2025-01-01T00:00:00Z"))

		sweeper := lending.NewSweeper(repo).WithClock(func() time.Time { return now })
		marked, err := sweeper.SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, marked)

		marked, err = sweeper.SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, marked)
	})

	t.Run("returned loans never go back to overdue", func(t *testing.T) {
		repo := loan.NewMemoryRepo()
		rec := seedLoan(t, repo, "m-1", "b-1", date("2025-01-01T00:00:00Z"))

		rd := date("2025-01-10T00:00:00Z")
		_, err := repo.UpdateStatus(ctx, rec.ID, loan.StatusBorrowed, loan.StatusReturned, &rd)
		require.NoError(t, err)

		sweeper := lending.NewSweeper(repo).WithClock(func() time.Time { return date("2025-02-01T00:00:00Z") })
		marked, err := sweeper.SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, marked)

		got, err := repo.GetByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusReturned, got.Status)
		require.NotNil(t, got.ReturnDate)
		assert.True(t, got.ReturnDate.Equal(rd))
	})

	t.Run("pages through batches", func(t *testing.T) {
		repo := loan.NewMemoryRepo()
		for i := 0; i < 7; i++ {
			seedLoan(t, repo, "m-1", string(rune('a'+i)), date("2025-01-01T00:00:00Z"))
		}

		sweeper := lending.NewSweeper(repo).
			WithClock(func() time.Time { return now }).
			WithBatchSize(2)
		marked, err := sweeper.SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, marked)
	})
}

// A record returned between selection and update must be skipped, not
// clobbered back to overdue.
func TestSweeper_SkipsConcurrentReturn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	now := date("2025-01-20T00:00:00Z")

	store := mocks.NewMockLoanStore(ctrl)
	selected := []loan.Record{
		{ID: "rec-1", Status: loan.StatusBorrowed, BorrowDate: date("2025-01-01T00:00:00Z")},
		{ID: "rec-2", Status: loan.StatusBorrowed, BorrowDate: date("2025-01-02T00:00:00Z")},
	}

	store.EXPECT().ListActiveDueBefore(ctx, gomock.Any(), "", gomock.Any()).Return(selected, nil)
	// rec-1 was returned in between: conditional update loses the race.
	store.EXPECT().UpdateStatus(ctx, "rec-1", loan.StatusBorrowed, loan.StatusOverdue, nil).Return(loan.Record{}, loan.ErrVersionConflict)
	store.EXPECT().UpdateStatus(ctx, "rec-2", loan.StatusBorrowed, loan.StatusOverdue, nil).Return(loan.Record{ID: "rec-2", Status: loan.StatusOverdue}, nil)
	store.EXPECT().ListActiveDueBefore(ctx, gomock.Any(), "rec-2", gomock.Any()).Return(nil, nil)

	sweeper := lending.NewSweeper(store).WithClock(func() time.Time { return now })
	marked, err := sweeper.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)
}

func TestSweeper_Run_StopsOnCancel(t *testing.T) {
	repo := loan.NewMemoryRepo()
	sweeper := lending.NewSweeper(repo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
