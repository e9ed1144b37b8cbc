package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/azulpack/juridico-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (domain.User, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	IsAdminFunc    func(ctx context.Context, userID uuid.UUID) (bool, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID    []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		IsAdmin    []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByEmail sync.RWMutex
	lockGetByID    sync.RWMutex
	lockIsAdmin    sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
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

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if mock.IsAdminFunc == nil {
		panic("userRepoMock.IsAdminFunc: method is nil but userRepo.IsAdmin was just called")
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

func (mock *userRepoMock) IsAdminCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockIsAdmin.RLock()
	calls := mock.calls.IsAdmin
	mock.lockIsAdmin.RUnlock()
	return calls
}

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	ConsumeFunc func(ctx context.Context, tokenHash string) (domain.RefreshSession, error)
	RevokeFunc  func(ctx context.Context, tokenHash string) error
	SaveFunc    func(ctx context.Context, sess domain.RefreshSession) error

	calls struct {
		Consume []struct {
			Ctx       context.Context
			TokenHash string
		}
		Revoke  []struct {
			Ctx       context.Context
			TokenHash string
		}
		Save    []struct {
			Ctx  context.Context
			Sess domain.RefreshSession
		}
	}
	lockConsume sync.RWMutex
	lockRevoke  sync.RWMutex
	lockSave    sync.RWMutex
}

func (mock *sessionStoreMock) Consume(ctx context.Context, tokenHash string) (domain.RefreshSession, error) {
	if mock.ConsumeFunc == nil {
		panic("sessionStoreMock.ConsumeFunc: method is nil but sessionStore.Consume was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, tokenHash)
}

func (mock *sessionStoreMock) ConsumeCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Revoke(ctx context.Context, tokenHash string) error {
	if mock.RevokeFunc == nil {
		panic("sessionStoreMock.RevokeFunc: method is nil but sessionStore.Revoke was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, tokenHash)
}

func (mock *sessionStoreMock) RevokeCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Save(ctx context.Context, sess domain.RefreshSession) error {
	if mock.SaveFunc == nil {
		panic("sessionStoreMock.SaveFunc: method is nil but sessionStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess domain.RefreshSession
	}{Ctx: ctx, Sess: sess}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, sess)
}

func (mock *sessionStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	Sess domain.RefreshSession
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(id domain.Identity) (string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
	ValidateAccessTokenFunc  func(token string) (domain.Identity, error)

	calls struct {
		GenerateAccessToken  []struct{ Id domain.Identity }
		GenerateRefreshToken []struct{}
		ValidateAccessToken  []struct{ Token string }
	}
	lockGenerateAccessToken  sync.RWMutex
	lockGenerateRefreshToken sync.RWMutex
	lockValidateAccessToken  sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(id domain.Identity) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct{ Id domain.Identity }{Id: id}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(id)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct{ Id domain.Identity } {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	mock.lockGenerateRefreshToken.Lock()
	mock.calls.GenerateRefreshToken = append(mock.calls.GenerateRefreshToken, struct{}{})
	mock.lockGenerateRefreshToken.Unlock()
	return mock.GenerateRefreshTokenFunc()
}

func (mock *jwtManagerMock) GenerateRefreshTokenCalls() []struct{} {
	mock.lockGenerateRefreshToken.RLock()
	calls := mock.calls.GenerateRefreshToken
	mock.lockGenerateRefreshToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (domain.Identity, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct{ Token string } {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

var _ passwordVerifier = &passwordVerifierMock{}

type passwordVerifierMock struct {
	VerifyFunc func(hash string, password string) (bool, error)

	calls struct {
		Verify []struct {
			Hash     string
			Password string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *passwordVerifierMock) Verify(hash string, password string) (bool, error) {
	if mock.VerifyFunc == nil {
		panic("passwordVerifierMock.VerifyFunc: method is nil but passwordVerifier.Verify was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(hash, password)
}

func (mock *passwordVerifierMock) VerifyCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
