package cli

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/azulpack/juridico-backend/internal/domain"
)

var _ accountStore = &accountStoreMock{}

type accountStoreMock struct {
	GetByEmailFunc    func(ctx context.Context, email string) (domain.User, error)
	CreateFunc        func(ctx context.Context, u domain.User) (domain.User, error)
	UpsertProfileFunc func(ctx context.Context, userID uuid.UUID, name string) (domain.Profile, error)
	SetRoleFunc       func(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
	IsAdminFunc       func(ctx context.Context, userID uuid.UUID) (bool, error)

	calls struct {
		GetByEmail    []struct {
			Ctx   context.Context
			Email string
		}
		Create        []struct {
			Ctx context.Context
			U   domain.User
		}
		UpsertProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Name   string
		}
		SetRole       []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Role   domain.UserRole
		}
		IsAdmin       []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByEmail    sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpsertProfile sync.RWMutex
	lockSetRole       sync.RWMutex
	lockIsAdmin       sync.RWMutex
}

func (mock *accountStoreMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("accountStoreMock.GetByEmailFunc: method is nil but accountStore.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *accountStoreMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *accountStoreMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if mock.CreateFunc == nil {
		panic("accountStoreMock.CreateFunc: method is nil but accountStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *accountStoreMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountStoreMock) UpsertProfile(ctx context.Context, userID uuid.UUID, name string) (domain.Profile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("accountStoreMock.UpsertProfileFunc: method is nil but accountStore.UpsertProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockUpsertProfile.Lock()
	mock.calls.UpsertProfile = append(mock.calls.UpsertProfile, callInfo)
	mock.lockUpsertProfile.Unlock()
	return mock.UpsertProfileFunc(ctx, userID, name)
}

func (mock *accountStoreMock) UpsertProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Name   string
} {
	mock.lockUpsertProfile.RLock()
	calls := mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}

func (mock *accountStoreMock) SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	if mock.SetRoleFunc == nil {
		panic("accountStoreMock.SetRoleFunc: method is nil but accountStore.SetRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Role   domain.UserRole
	}{Ctx: ctx, UserID: userID, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, userID, role)
}

func (mock *accountStoreMock) SetRoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Role   domain.UserRole
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

func (mock *accountStoreMock) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if mock.IsAdminFunc == nil {
		panic("accountStoreMock.IsAdminFunc: method is nil but accountStore.IsAdmin was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockIsAdmin.Lock()
	mock.calls.IsAdmin = append(mock.calls.IsAdmin, callInfo)
	mock.lockIsAdmin.Unlock()
	return mock.IsAdminFunc(ctx, userID)
}

func (mock *accountStoreMock) IsAdminCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockIsAdmin.RLock()
	calls := mock.calls.IsAdmin
	mock.lockIsAdmin.RUnlock()
	return calls
}

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc func(password string) (string, error)

	calls struct {
		Hash []struct{ Password string }
	}
	lockHash sync.RWMutex
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct{ Password string }{Password: password}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) HashCalls() []struct{ Password string } {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

var _ txRunner = &txRunnerMock{}

type txRunnerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txRunnerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txRunnerMock.RunInTxFunc: method is nil but txRunner.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txRunnerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ migrator = &migratorMock{}

type migratorMock struct {
	UpFunc     func(ctx context.Context) ([]*goose.MigrationResult, error)
	DownFunc   func(ctx context.Context) (*goose.MigrationResult, error)
	StatusFunc func(ctx context.Context) ([]*goose.MigrationStatus, error)

	calls struct {
		Up     []struct{ Ctx context.Context }
		Down   []struct{ Ctx context.Context }
		Status []struct{ Ctx context.Context }
	}
	lockUp     sync.RWMutex
	lockDown   sync.RWMutex
	lockStatus sync.RWMutex
}

func (mock *migratorMock) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	if mock.UpFunc == nil {
		panic("migratorMock.UpFunc: method is nil but migrator.Up was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockUp.Lock()
	mock.calls.Up = append(mock.calls.Up, callInfo)
	mock.lockUp.Unlock()
	return mock.UpFunc(ctx)
}

func (mock *migratorMock) UpCalls() []struct{ Ctx context.Context } {
	mock.lockUp.RLock()
	calls := mock.calls.Up
	mock.lockUp.RUnlock()
	return calls
}

func (mock *migratorMock) Down(ctx context.Context) (*goose.MigrationResult, error) {
	if mock.DownFunc == nil {
		panic("migratorMock.DownFunc: method is nil but migrator.Down was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockDown.Lock()
	mock.calls.Down = append(mock.calls.Down, callInfo)
	mock.lockDown.Unlock()
	return mock.DownFunc(ctx)
}

func (mock *migratorMock) DownCalls() []struct{ Ctx context.Context } {
	mock.lockDown.RLock()
	calls := mock.calls.Down
	mock.lockDown.RUnlock()
	return calls
}

func (mock *migratorMock) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	if mock.StatusFunc == nil {
		panic("migratorMock.StatusFunc: method is nil but migrator.Status was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc(ctx)
}

func (mock *migratorMock) StatusCalls() []struct{ Ctx context.Context } {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}
