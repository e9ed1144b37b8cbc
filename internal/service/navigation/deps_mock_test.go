package navigation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ pathStore = &pathStoreMock{}

type pathStoreMock struct {
	ClearLastPathFunc func(ctx context.Context, userID uuid.UUID) error
	LastPathFunc      func(ctx context.Context, userID uuid.UUID) (string, bool, error)
	SaveLastPathFunc  func(ctx context.Context, userID uuid.UUID, path string) error

	calls struct {
		ClearLastPath []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		LastPath      []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SaveLastPath  []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Path   string
		}
	}
	lockClearLastPath sync.RWMutex
	lockLastPath      sync.RWMutex
	lockSaveLastPath  sync.RWMutex
}

func (mock *pathStoreMock) ClearLastPath(ctx context.Context, userID uuid.UUID) error {
	if mock.ClearLastPathFunc == nil {
		panic("pathStoreMock.ClearLastPathFunc: method is nil but pathStore.ClearLastPath was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockClearLastPath.Lock()
	mock.calls.ClearLastPath = append(mock.calls.ClearLastPath, callInfo)
	mock.lockClearLastPath.Unlock()
	return mock.ClearLastPathFunc(ctx, userID)
}

func (mock *pathStoreMock) ClearLastPathCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockClearLastPath.RLock()
	calls := mock.calls.ClearLastPath
	mock.lockClearLastPath.RUnlock()
	return calls
}

func (mock *pathStoreMock) LastPath(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	if mock.LastPathFunc == nil {
		panic("pathStoreMock.LastPathFunc: method is nil but pathStore.LastPath was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLastPath.Lock()
	mock.calls.LastPath = append(mock.calls.LastPath, callInfo)
	mock.lockLastPath.Unlock()
	return mock.LastPathFunc(ctx, userID)
}

func (mock *pathStoreMock) LastPathCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLastPath.RLock()
	calls := mock.calls.LastPath
	mock.lockLastPath.RUnlock()
	return calls
}

func (mock *pathStoreMock) SaveLastPath(ctx context.Context, userID uuid.UUID, path string) error {
	if mock.SaveLastPathFunc == nil {
		panic("pathStoreMock.SaveLastPathFunc: method is nil but pathStore.SaveLastPath was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Path   string
	}{Ctx: ctx, UserID: userID, Path: path}
	mock.lockSaveLastPath.Lock()
	mock.calls.SaveLastPath = append(mock.calls.SaveLastPath, callInfo)
	mock.lockSaveLastPath.Unlock()
	return mock.SaveLastPathFunc(ctx, userID, path)
}

func (mock *pathStoreMock) SaveLastPathCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Path   string
} {
	mock.lockSaveLastPath.RLock()
	calls := mock.calls.SaveLastPath
	mock.lockSaveLastPath.RUnlock()
	return calls
}
