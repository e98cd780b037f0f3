package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is a mutex-guarded Store used by tests and by the server's
// no-database mode. It keeps the same conditional semantics as the
// Postgres repo: the counter check and the write happen under one lock.
type MemoryRepo struct {
	mu     sync.Mutex
	byID   map[string]*Book
	byISBN map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]*Book),
		byISBN: make(map[string]string),
	}
}

func (r *MemoryRepo) Create(_ context.Context, book *Book) error {
	isbn, err := NormalizeISBN(book.ISBN)
	if err != nil {
		return err
	}
	book.ISBN = isbn

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byISBN[book.ISBN]; exists {
		return ErrISBNTaken
	}
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	cp := *book
	r.byID[book.ID] = &cp
	r.byISBN[book.ISBN] = book.ID
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return *b, nil
}

func (r *MemoryRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	normalized, err := NormalizeISBN(isbn)
	if err != nil {
		return Book{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byISBN[normalized]
	if !ok {
		return Book{}, ErrNotFound
	}
	return *r.byID[id], nil
}

func (r *MemoryRepo) AdjustAvailableCopies(_ context.Context, bookID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[bookID]
	if !ok {
		return ErrNotFound
	}
	if b.AvailableCopies+delta < 0 {
		return ErrOutOfStock
	}
	b.AvailableCopies += delta
	b.UpdatedAt = time.Now().UTC()
	return nil
}
