package member

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

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

func (r *PostgresRepo) CreateMember(ctx context.Context, m *Member) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	const sql = `
		INSERT INTO members (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, sql, m.ID, m.Name, m.Email).Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *PostgresRepo) GetMember(ctx context.Context, id string) (Member, error) {
	const query = `
		SELECT id, name, email, created_at, updated_at
		FROM members
		WHERE id = $1`

	var m Member
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return m, nil
}

func (r *PostgresRepo) CreateProfile(ctx context.Context, p *Profile) error {
	const sql = `
		INSERT INTO profiles (member_id, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql, p.MemberID, p.Address, p.Phone).Scan(&p.CreatedAt, &p.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == foreignKeyViolation:
			return ErrNotFound
		case pgErr.Code == uniqueViolation && pgErr.ConstraintName == "profiles_phone_key":
			return ErrPhoneTaken
		case pgErr.Code == uniqueViolation:
			return ErrProfileExists
		}
	}
	return err
}

func (r *PostgresRepo) GetProfile(ctx context.Context, memberID string) (Profile, error) {
	const query = `
		SELECT member_id, address, phone, created_at, updated_at
		FROM profiles
		WHERE member_id = $1`

	var p Profile
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, memberID).Scan(
		&p.MemberID, &p.Address, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresRepo) UpdateProfile(ctx context.Context, p *Profile) error {
	const sql = `
		UPDATE profiles
		SET address = $2, phone = $3, updated_at = NOW()
		WHERE member_id = $1
		RETURNING updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql, p.MemberID, p.Address, p.Phone).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrPhoneTaken
	}
	return err
}
