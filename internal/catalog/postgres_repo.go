package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, book *Book) error {
	isbn, err := NormalizeISBN(book.ISBN)
	if err != nil {
		return err
	}
	book.ISBN = isbn
	if book.ID == "" {
		book.ID = uuid.New().String()
	}

	const sql = `
		INSERT INTO books (id, title, author, isbn, price, available_copies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err = r.db.QueryRow(timeoutCtx, sql,
		book.ID, book.Title, book.Author, book.ISBN, book.Price, book.AvailableCopies,
	).Scan(&book.CreatedAt, &book.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrISBNTaken
	}
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, title, author, isbn, price, available_copies, created_at, updated_at
		FROM books
		WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	normalized, err := NormalizeISBN(isbn)
	if err != nil {
		return Book{}, err
	}
	const query = `
		SELECT id, title, author, isbn, price, available_copies, created_at, updated_at
		FROM books
		WHERE isbn = $1`
	return r.getOne(ctx, query, normalized)
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, arg any) (Book, error) {
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Price, &b.AvailableCopies,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// AdjustAvailableCopies applies delta with the non-negative check in
// the UPDATE itself, so two borrowers racing for the last copy are
// serialized by the row lock and exactly one of them wins.
func (r *PostgresRepo) AdjustAvailableCopies(ctx context.Context, bookID string, delta int) error {
	const sql = `
		UPDATE books
		SET available_copies = available_copies + $2, updated_at = NOW()
		WHERE id = $1 AND available_copies + $2 >= 0`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, bookID, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either the book is gone or the condition failed; look at the
		// row to tell the two apart.
		if _, err := r.GetByID(ctx, bookID); err != nil {
			return err
		}
		return ErrOutOfStock
	}
	return nil
}
