package loan

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

const recordColumns = `id, member_id, book_id, borrow_date, return_date, status, created_at, updated_at`

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

func (r *PostgresRepo) Insert(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	// The partial unique index on (member_id, book_id) over active
	// statuses turns a racing duplicate borrow into a 23505 here.
	const sql = `
		INSERT INTO borrow_records (id, member_id, book_id, borrow_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql,
		rec.ID, rec.MemberID, rec.BookID, rec.BorrowDate, rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrActiveLoanExists
	}
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rec, err := scanRecord(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (r *PostgresRepo) FindActiveLoan(ctx context.Context, memberID, bookID string) (Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE member_id = $1 AND book_id = $2 AND status IN ('BORROWED', 'OVERDUE')
		LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rec, err := scanRecord(r.db.QueryRow(timeoutCtx, query, memberID, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// UpdateStatus only applies when the row still carries the expected
// status. Zero rows affected means either the record is gone or
// somebody else got there first.
func (r *PostgresRepo) UpdateStatus(ctx context.Context, id string, expected, next Status, returnDate *time.Time) (Record, error) {
	const sql = `
		UPDATE borrow_records
		SET status = $3, return_date = COALESCE($4, return_date), updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + recordColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rec, err := scanRecord(r.db.QueryRow(timeoutCtx, sql, id, expected, next, returnDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return Record{}, getErr
			}
			return Record{}, ErrVersionConflict
		}
		return Record{}, err
	}
	return rec, nil
}

// ListActiveDueBefore pages through still-borrowed records whose loan
// period elapsed before cutoff, keyed on id so a sweep can resume where
// it stopped.
func (r *PostgresRepo) ListActiveDueBefore(ctx context.Context, cutoff time.Time, afterID string, limit int) ([]Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE status = 'BORROWED' AND borrow_date < $1 AND id > $2
		ORDER BY id
		LIMIT $3`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, cutoff, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *PostgresRepo) ListByMember(ctx context.Context, memberID string) ([]Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM borrow_records
		WHERE member_id = $1
		ORDER BY borrow_date DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.MemberID, &rec.BookID, &rec.BorrowDate, &rec.ReturnDate,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
