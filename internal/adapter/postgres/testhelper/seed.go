package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a profile and the regular role.
// The password hash is a fixed placeholder and does not verify.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates a user holding the admin role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		user.ID, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, nome) VALUES ($1, $2)`,
		user.ID, "Test User "+suffix,
	); err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		user.ID, string(role),
	); err != nil {
		t.Fatalf("testhelper: SeedUser insert role: %v", err)
	}

	return user
}

// SeedProcess creates a process owned by ownerID with the given title.
func SeedProcess(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title string) domain.Process {
	t.Helper()
	ctx := context.Background()

	p := domain.Process{
		OwnerID:    ownerID,
		Title:      title,
		CaseNumber: "0000" + uniqueSuffix(),
		Status:     domain.ProcessStatusInProgress,
		Companies:  []string{},
		Labels:     []string{},
		FileURLs:   []string{},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO processos (user_id, titulo, numero_processo)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		ownerID, title, p.CaseNumber,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProcess: %v", err)
	}

	return p
}

// SeedShare grants recipientID access to processID.
func SeedShare(t *testing.T, pool *pgxpool.Pool, processID int64, sharedBy, recipientID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO processo_compartilhamentos (processo_id, shared_by_user_id, shared_with_user_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		processID, sharedBy, recipientID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedShare: %v", err)
	}
	return id
}
