package catalog

import (
	"context"
)

// Store defines the contract for book storage.
//
// AdjustAvailableCopies is the only way the copy counter changes. It
// applies delta as a conditional write: the store must re-check that
// the resulting count stays non-negative at commit time and fail with
// ErrOutOfStock instead of going below zero. A plain read-then-write
// implementation is a correctness bug.
type Store interface {
	Create(ctx context.Context, book *Book) error
	GetByID(ctx context.Context, id string) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	AdjustAvailableCopies(ctx context.Context, bookID string, delta int) error
}
