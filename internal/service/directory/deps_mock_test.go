package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/azulpack/juridico-backend/internal/domain"
)

var _ userDirectory = &userDirectoryMock{}

type userDirectoryMock struct {
	EmailsByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error)
	IDsByEmailsFunc func(ctx context.Context, emails []string) ([]domain.UserEmail, error)

	calls struct {
		EmailsByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		IDsByEmails []struct {
			Ctx    context.Context
			Emails []string
		}
	}
	lockEmailsByIDs sync.RWMutex
	lockIDsByEmails sync.RWMutex
}

func (mock *userDirectoryMock) EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error) {
	if mock.EmailsByIDsFunc == nil {
		panic("userDirectoryMock.EmailsByIDsFunc: method is nil but userDirectory.EmailsByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockEmailsByIDs.Lock()
	mock.calls.EmailsByIDs = append(mock.calls.EmailsByIDs, callInfo)
	mock.lockEmailsByIDs.Unlock()
	return mock.EmailsByIDsFunc(ctx, ids)
}

func (mock *userDirectoryMock) EmailsByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockEmailsByIDs.RLock()
	calls := mock.calls.EmailsByIDs
	mock.lockEmailsByIDs.RUnlock()
	return calls
}

func (mock *userDirectoryMock) IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error) {
	if mock.IDsByEmailsFunc == nil {
		panic("userDirectoryMock.IDsByEmailsFunc: method is nil but userDirectory.IDsByEmails was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Emails []string
	}{Ctx: ctx, Emails: emails}
	mock.lockIDsByEmails.Lock()
	mock.calls.IDsByEmails = append(mock.calls.IDsByEmails, callInfo)
	mock.lockIDsByEmails.Unlock()
	return mock.IDsByEmailsFunc(ctx, emails)
}

func (mock *userDirectoryMock) IDsByEmailsCalls() []struct {
	Ctx    context.Context
	Emails []string
} {
	mock.lockIDsByEmails.RLock()
	calls := mock.calls.IDsByEmails
	mock.lockIDsByEmails.RUnlock()
	return calls
}
