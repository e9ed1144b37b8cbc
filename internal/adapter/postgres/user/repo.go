// Package user implements accounts, profiles, roles and the email directory
// using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/azulpack/juridico-backend/internal/adapter/postgres"
	"github.com/azulpack/juridico-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// Create inserts a new account. A duplicate email (case-insensitive) yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	var rw userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING id, email, password_hash, created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.Email)
	}
	return rw.toDomain(), nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var rw userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return rw.toDomain(), nil
}

// GetByEmail returns an account by email, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rw userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE lower(email) = $1`,
		domain.NormalizeEmail(email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", email)
	}
	return rw.toDomain(), nil
}

// Delete removes an account together with its profile, roles, processes and
// grants.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

// UpsertProfile sets the display name of a user.
func (r *Repo) UpsertProfile(ctx context.Context, userID uuid.UUID, name string) (domain.Profile, error) {
	var rw profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`INSERT INTO user_profiles (user_id, nome) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET nome = EXCLUDED.nome, updated_at = now()
		 RETURNING user_id, nome, created_at, updated_at`,
		userID, name)
	if err != nil {
		return domain.Profile{}, postgres.MapError(err, "user_profile", userID)
	}
	return rw.toDomain(), nil
}

// ProfilesByIDs returns the profiles that exist among ids, in no particular order.
func (r *Repo) ProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}

	query, args, err := postgres.Builder.
		Select("user_id", "nome", "created_at", "updated_at").
		From("user_profiles").
		Where(sq.Eq{"user_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profiles query: %w", err)
	}

	var rows []profileRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list user_profiles: %w", err)
	}

	out := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

// IsAdmin reports whether the user holds the admin role.
func (r *Repo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var admin bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT is_admin($1)`, userID).Scan(&admin); err != nil {
		return false, fmt.Errorf("is_admin %s: %w", userID, err)
	}
	return admin, nil
}

// SetRole makes role the effective role of the user. Granting admin keeps the
// base user row; demoting removes the admin row.
func (r *Repo) SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT ON CONSTRAINT uq_user_roles_user_role DO NOTHING`,
		userID, string(role),
	); err != nil {
		return postgres.MapError(err, "user_role", userID)
	}

	if role == domain.UserRoleUser {
		if _, err := q.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1 AND role = 'admin'`, userID); err != nil {
			return postgres.MapError(err, "user_role", userID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Admin listing
// ---------------------------------------------------------------------------

const listUsers = `
SELECT u.id, u.email, COALESCE(p.nome, '') AS nome, is_admin(u.id) AS admin, u.created_at
FROM users u
LEFT JOIN user_profiles p ON p.user_id = u.id
ORDER BY u.created_at DESC, u.id`

// List returns every account with its profile name and effective role,
// newest first.
func (r *Repo) List(ctx context.Context) ([]domain.UserSummary, error) {
	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listUsers); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.UserSummary, len(rows))
	for i, rw := range rows {
		out[i] = domain.UserSummary{
			UserID:    rw.ID,
			Email:     rw.Email,
			Name:      rw.Nome,
			Role:      domain.RoleFromAdmin(rw.Admin),
			CreatedAt: rw.CreatedAt,
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Directory
// ---------------------------------------------------------------------------

// EmailsByIDs returns the email of every known user among ids. Unknown ids
// are omitted.
func (r *Repo) EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error) {
	if len(ids) == 0 {
		return []domain.UserEmail{}, nil
	}
	return r.selectEmails(ctx, sq.Eq{"id": ids})
}

// IDsByEmails resolves emails to user ids, ignoring case. Unknown emails are
// omitted.
func (r *Repo) IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error) {
	if len(emails) == 0 {
		return []domain.UserEmail{}, nil
	}

	normalized := make([]string, len(emails))
	for i, e := range emails {
		normalized[i] = domain.NormalizeEmail(e)
	}
	return r.selectEmails(ctx, sq.Expr("lower(email) = ANY(?)", normalized))
}

func (r *Repo) selectEmails(ctx context.Context, pred sq.Sqlizer) ([]domain.UserEmail, error) {
	query, args, err := postgres.Builder.
		Select("id", "email").
		From("users").
		Where(pred).
		OrderBy("email").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build directory query: %w", err)
	}

	var rows []emailRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	out := make([]domain.UserEmail, len(rows))
	for i, rw := range rows {
		out[i] = domain.UserEmail{UserID: rw.ID, Email: rw.Email}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type profileRow struct {
	UserID    uuid.UUID `db:"user_id"`
	Nome      *string   `db:"nome"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r profileRow) toDomain() domain.Profile {
	p := domain.Profile{UserID: r.UserID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
	if r.Nome != nil {
		p.Name = *r.Nome
	}
	return p
}

type summaryRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Nome      string    `db:"nome"`
	Admin     bool      `db:"admin"`
	CreatedAt time.Time `db:"created_at"`
}

type emailRow struct {
	ID    uuid.UUID `db:"id"`
	Email string    `db:"email"`
}
