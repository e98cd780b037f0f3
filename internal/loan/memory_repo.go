package loan

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is a mutex-guarded Store used by tests and the server's
// no-database mode. The active-pair check and the insert run under one
// lock, matching the conditional semantics of the Postgres repo.
type MemoryRepo struct {
	mu      sync.Mutex
	records map[string]*Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]*Record)}
}

func (r *MemoryRepo) Insert(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.MemberID == rec.MemberID && existing.BookID == rec.BookID && existing.Active() {
			return ErrActiveLoanExists
		}
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return *rec, nil
}

func (r *MemoryRepo) FindActiveLoan(_ context.Context, memberID, bookID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.MemberID == memberID && rec.BookID == bookID && rec.Active() {
			return *rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *MemoryRepo) UpdateStatus(_ context.Context, id string, expected, next Status, returnDate *time.Time) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	if rec.Status != expected {
		return Record{}, ErrVersionConflict
	}
	rec.Status = next
	if returnDate != nil {
		d := *returnDate
		rec.ReturnDate = &d
	}
	rec.UpdatedAt = time.Now().UTC()
	return *rec, nil
}

func (r *MemoryRepo) ListActiveDueBefore(_ context.Context, cutoff time.Time, afterID string, limit int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Record
	for _, rec := range r.records {
		if rec.Status == StatusBorrowed && rec.BorrowDate.Before(cutoff) && rec.ID > afterID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) ListByMember(_ context.Context, memberID string) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Record
	for _, rec := range r.records {
		if rec.MemberID == memberID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowDate.After(out[j].BorrowDate) })
	return out, nil
}
