package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/internal/service/admin"
	"github.com/azulpack/juridico-backend/internal/service/auth"
	"github.com/azulpack/juridico-backend/internal/service/generation"
	"github.com/azulpack/juridico-backend/internal/service/process"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignInFunc  func(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	RefreshFunc func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	SignOutFunc func(ctx context.Context, input auth.RefreshInput) error
	MeFunc      func(ctx context.Context) (domain.Identity, error)

	calls struct {
		SignIn  []struct {
			Ctx   context.Context
			Input auth.SignInInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		SignOut []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Me      []struct{ Ctx context.Context }
	}
	lockSignIn  sync.RWMutex
	lockRefresh sync.RWMutex
	lockSignOut sync.RWMutex
	lockMe      sync.RWMutex
}

func (mock *authServiceMock) SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignInInput
	}{Ctx: ctx, Input: input}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, input)
}

func (mock *authServiceMock) SignInCalls() []struct {
	Ctx   context.Context
	Input auth.SignInInput
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) SignOut(ctx context.Context, input auth.RefreshInput) error {
	if mock.SignOutFunc == nil {
		panic("authServiceMock.SignOutFunc: method is nil but authService.SignOut was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, input)
}

func (mock *authServiceMock) SignOutCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (domain.Identity, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct{ Ctx context.Context } {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

var _ navigationService = &navigationServiceMock{}

type navigationServiceMock struct {
	SaveLastPathFunc func(ctx context.Context, path string) error
	RestoreFunc      func(ctx context.Context, landing string) (string, bool, error)
	ClearFunc        func(ctx context.Context) error

	calls struct {
		SaveLastPath []struct {
			Ctx  context.Context
			Path string
		}
		Restore      []struct {
			Ctx     context.Context
			Landing string
		}
		Clear        []struct{ Ctx context.Context }
	}
	lockSaveLastPath sync.RWMutex
	lockRestore      sync.RWMutex
	lockClear        sync.RWMutex
}

func (mock *navigationServiceMock) SaveLastPath(ctx context.Context, path string) error {
	if mock.SaveLastPathFunc == nil {
		panic("navigationServiceMock.SaveLastPathFunc: method is nil but navigationService.SaveLastPath was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockSaveLastPath.Lock()
	mock.calls.SaveLastPath = append(mock.calls.SaveLastPath, callInfo)
	mock.lockSaveLastPath.Unlock()
	return mock.SaveLastPathFunc(ctx, path)
}

func (mock *navigationServiceMock) SaveLastPathCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockSaveLastPath.RLock()
	calls := mock.calls.SaveLastPath
	mock.lockSaveLastPath.RUnlock()
	return calls
}

func (mock *navigationServiceMock) Restore(ctx context.Context, landing string) (string, bool, error) {
	if mock.RestoreFunc == nil {
		panic("navigationServiceMock.RestoreFunc: method is nil but navigationService.Restore was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Landing string
	}{Ctx: ctx, Landing: landing}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, landing)
}

func (mock *navigationServiceMock) RestoreCalls() []struct {
	Ctx     context.Context
	Landing string
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *navigationServiceMock) Clear(ctx context.Context) error {
	if mock.ClearFunc == nil {
		panic("navigationServiceMock.ClearFunc: method is nil but navigationService.Clear was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *navigationServiceMock) ClearCalls() []struct{ Ctx context.Context } {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

var _ directoryService = &directoryServiceMock{}

type directoryServiceMock struct {
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

func (mock *directoryServiceMock) EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error) {
	if mock.EmailsByIDsFunc == nil {
		panic("directoryServiceMock.EmailsByIDsFunc: method is nil but directoryService.EmailsByIDs was just called")
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

func (mock *directoryServiceMock) EmailsByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockEmailsByIDs.RLock()
	calls := mock.calls.EmailsByIDs
	mock.lockEmailsByIDs.RUnlock()
	return calls
}

func (mock *directoryServiceMock) IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error) {
	if mock.IDsByEmailsFunc == nil {
		panic("directoryServiceMock.IDsByEmailsFunc: method is nil but directoryService.IDsByEmails was just called")
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

func (mock *directoryServiceMock) IDsByEmailsCalls() []struct {
	Ctx    context.Context
	Emails []string
} {
	mock.lockIDsByEmails.RLock()
	calls := mock.calls.IDsByEmails
	mock.lockIDsByEmails.RUnlock()
	return calls
}

var _ processService = &processServiceMock{}

type processServiceMock struct {
	ListFunc   func(ctx context.Context, input process.ListInput) ([]domain.Process, error)
	GetFunc    func(ctx context.Context, id int64) (domain.Process, error)
	CreateFunc func(ctx context.Context, input process.CreateInput) (domain.Process, error)
	UpdateFunc func(ctx context.Context, id int64, input process.UpdateInput) (domain.Process, error)
	DeleteFunc func(ctx context.Context, id int64) error

	calls struct {
		List   []struct {
			Ctx   context.Context
			Input process.ListInput
		}
		Get    []struct {
			Ctx context.Context
			Id  int64
		}
		Create []struct {
			Ctx   context.Context
			Input process.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Input process.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *processServiceMock) List(ctx context.Context, input process.ListInput) ([]domain.Process, error) {
	if mock.ListFunc == nil {
		panic("processServiceMock.ListFunc: method is nil but processService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input process.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *processServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input process.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *processServiceMock) Get(ctx context.Context, id int64) (domain.Process, error) {
	if mock.GetFunc == nil {
		panic("processServiceMock.GetFunc: method is nil but processService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *processServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *processServiceMock) Create(ctx context.Context, input process.CreateInput) (domain.Process, error) {
	if mock.CreateFunc == nil {
		panic("processServiceMock.CreateFunc: method is nil but processService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input process.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *processServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input process.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *processServiceMock) Update(ctx context.Context, id int64, input process.UpdateInput) (domain.Process, error) {
	if mock.UpdateFunc == nil {
		panic("processServiceMock.UpdateFunc: method is nil but processService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input process.UpdateInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *processServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input process.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *processServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("processServiceMock.DeleteFunc: method is nil but processService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *processServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateFunc     func(ctx context.Context, processID int64, action domain.GenerationAction) (domain.GenerationResult, error)
	SaveAnalysisFunc func(ctx context.Context, processID int64, input generation.SaveAnalysisInput) (domain.AnalysisVersion, error)
	ListDefensesFunc func(ctx context.Context, processID int64) ([]domain.DefenseVersion, error)
	ListAnalysesFunc func(ctx context.Context, processID int64) ([]domain.AnalysisVersion, error)

	calls struct {
		Generate     []struct {
			Ctx       context.Context
			ProcessID int64
			Action    domain.GenerationAction
		}
		SaveAnalysis []struct {
			Ctx       context.Context
			ProcessID int64
			Input     generation.SaveAnalysisInput
		}
		ListDefenses []struct {
			Ctx       context.Context
			ProcessID int64
		}
		ListAnalyses []struct {
			Ctx       context.Context
			ProcessID int64
		}
	}
	lockGenerate     sync.RWMutex
	lockSaveAnalysis sync.RWMutex
	lockListDefenses sync.RWMutex
	lockListAnalyses sync.RWMutex
}

func (mock *generationServiceMock) Generate(ctx context.Context, processID int64, action domain.GenerationAction) (domain.GenerationResult, error) {
	if mock.GenerateFunc == nil {
		panic("generationServiceMock.GenerateFunc: method is nil but generationService.Generate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
		Action    domain.GenerationAction
	}{Ctx: ctx, ProcessID: processID, Action: action}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, processID, action)
}

func (mock *generationServiceMock) GenerateCalls() []struct {
	Ctx       context.Context
	ProcessID int64
	Action    domain.GenerationAction
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *generationServiceMock) SaveAnalysis(ctx context.Context, processID int64, input generation.SaveAnalysisInput) (domain.AnalysisVersion, error) {
	if mock.SaveAnalysisFunc == nil {
		panic("generationServiceMock.SaveAnalysisFunc: method is nil but generationService.SaveAnalysis was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
		Input     generation.SaveAnalysisInput
	}{Ctx: ctx, ProcessID: processID, Input: input}
	mock.lockSaveAnalysis.Lock()
	mock.calls.SaveAnalysis = append(mock.calls.SaveAnalysis, callInfo)
	mock.lockSaveAnalysis.Unlock()
	return mock.SaveAnalysisFunc(ctx, processID, input)
}

func (mock *generationServiceMock) SaveAnalysisCalls() []struct {
	Ctx       context.Context
	ProcessID int64
	Input     generation.SaveAnalysisInput
} {
	mock.lockSaveAnalysis.RLock()
	calls := mock.calls.SaveAnalysis
	mock.lockSaveAnalysis.RUnlock()
	return calls
}

func (mock *generationServiceMock) ListDefenses(ctx context.Context, processID int64) ([]domain.DefenseVersion, error) {
	if mock.ListDefensesFunc == nil {
		panic("generationServiceMock.ListDefensesFunc: method is nil but generationService.ListDefenses was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
	}{Ctx: ctx, ProcessID: processID}
	mock.lockListDefenses.Lock()
	mock.calls.ListDefenses = append(mock.calls.ListDefenses, callInfo)
	mock.lockListDefenses.Unlock()
	return mock.ListDefensesFunc(ctx, processID)
}

func (mock *generationServiceMock) ListDefensesCalls() []struct {
	Ctx       context.Context
	ProcessID int64
} {
	mock.lockListDefenses.RLock()
	calls := mock.calls.ListDefenses
	mock.lockListDefenses.RUnlock()
	return calls
}

func (mock *generationServiceMock) ListAnalyses(ctx context.Context, processID int64) ([]domain.AnalysisVersion, error) {
	if mock.ListAnalysesFunc == nil {
		panic("generationServiceMock.ListAnalysesFunc: method is nil but generationService.ListAnalyses was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
	}{Ctx: ctx, ProcessID: processID}
	mock.lockListAnalyses.Lock()
	mock.calls.ListAnalyses = append(mock.calls.ListAnalyses, callInfo)
	mock.lockListAnalyses.Unlock()
	return mock.ListAnalysesFunc(ctx, processID)
}

func (mock *generationServiceMock) ListAnalysesCalls() []struct {
	Ctx       context.Context
	ProcessID int64
} {
	mock.lockListAnalyses.RLock()
	calls := mock.calls.ListAnalyses
	mock.lockListAnalyses.RUnlock()
	return calls
}

var _ sharingService = &sharingServiceMock{}

type sharingServiceMock struct {
	ShareFunc      func(ctx context.Context, processID int64, email string) (domain.ShareRecipient, error)
	UnshareFunc    func(ctx context.Context, grantID uuid.UUID) error
	ListSharesFunc func(ctx context.Context, processID int64) ([]domain.ShareRecipient, error)

	calls struct {
		Share      []struct {
			Ctx       context.Context
			ProcessID int64
			Email     string
		}
		Unshare    []struct {
			Ctx     context.Context
			GrantID uuid.UUID
		}
		ListShares []struct {
			Ctx       context.Context
			ProcessID int64
		}
	}
	lockShare      sync.RWMutex
	lockUnshare    sync.RWMutex
	lockListShares sync.RWMutex
}

func (mock *sharingServiceMock) Share(ctx context.Context, processID int64, email string) (domain.ShareRecipient, error) {
	if mock.ShareFunc == nil {
		panic("sharingServiceMock.ShareFunc: method is nil but sharingService.Share was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
		Email     string
	}{Ctx: ctx, ProcessID: processID, Email: email}
	mock.lockShare.Lock()
	mock.calls.Share = append(mock.calls.Share, callInfo)
	mock.lockShare.Unlock()
	return mock.ShareFunc(ctx, processID, email)
}

func (mock *sharingServiceMock) ShareCalls() []struct {
	Ctx       context.Context
	ProcessID int64
	Email     string
} {
	mock.lockShare.RLock()
	calls := mock.calls.Share
	mock.lockShare.RUnlock()
	return calls
}

func (mock *sharingServiceMock) Unshare(ctx context.Context, grantID uuid.UUID) error {
	if mock.UnshareFunc == nil {
		panic("sharingServiceMock.UnshareFunc: method is nil but sharingService.Unshare was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GrantID uuid.UUID
	}{Ctx: ctx, GrantID: grantID}
	mock.lockUnshare.Lock()
	mock.calls.Unshare = append(mock.calls.Unshare, callInfo)
	mock.lockUnshare.Unlock()
	return mock.UnshareFunc(ctx, grantID)
}

func (mock *sharingServiceMock) UnshareCalls() []struct {
	Ctx     context.Context
	GrantID uuid.UUID
} {
	mock.lockUnshare.RLock()
	calls := mock.calls.Unshare
	mock.lockUnshare.RUnlock()
	return calls
}

func (mock *sharingServiceMock) ListShares(ctx context.Context, processID int64) ([]domain.ShareRecipient, error) {
	if mock.ListSharesFunc == nil {
		panic("sharingServiceMock.ListSharesFunc: method is nil but sharingService.ListShares was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
	}{Ctx: ctx, ProcessID: processID}
	mock.lockListShares.Lock()
	mock.calls.ListShares = append(mock.calls.ListShares, callInfo)
	mock.lockListShares.Unlock()
	return mock.ListSharesFunc(ctx, processID)
}

func (mock *sharingServiceMock) ListSharesCalls() []struct {
	Ctx       context.Context
	ProcessID int64
} {
	mock.lockListShares.RLock()
	calls := mock.calls.ListShares
	mock.lockListShares.RUnlock()
	return calls
}

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	ListUsersFunc            func(ctx context.Context) ([]domain.UserSummary, error)
	ProvisionUserFunc        func(ctx context.Context, input admin.ProvisionUserInput) (domain.UserSummary, error)
	SetUserRoleFunc          func(ctx context.Context, target uuid.UUID, role domain.UserRole) error
	DeleteUserFunc           func(ctx context.Context, target uuid.UUID) error
	ListProcessesForUserFunc func(ctx context.Context, target uuid.UUID) ([]domain.Process, error)
	OverviewFunc             func(ctx context.Context, activityLimit int) (admin.Overview, error)

	calls struct {
		ListUsers            []struct{ Ctx context.Context }
		ProvisionUser        []struct {
			Ctx   context.Context
			Input admin.ProvisionUserInput
		}
		SetUserRole          []struct {
			Ctx    context.Context
			Target uuid.UUID
			Role   domain.UserRole
		}
		DeleteUser           []struct {
			Ctx    context.Context
			Target uuid.UUID
		}
		ListProcessesForUser []struct {
			Ctx    context.Context
			Target uuid.UUID
		}
		Overview             []struct {
			Ctx           context.Context
			ActivityLimit int
		}
	}
	lockListUsers            sync.RWMutex
	lockProvisionUser        sync.RWMutex
	lockSetUserRole          sync.RWMutex
	lockDeleteUser           sync.RWMutex
	lockListProcessesForUser sync.RWMutex
	lockOverview             sync.RWMutex
}

func (mock *adminServiceMock) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	if mock.ListUsersFunc == nil {
		panic("adminServiceMock.ListUsersFunc: method is nil but adminService.ListUsers was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *adminServiceMock) ListUsersCalls() []struct{ Ctx context.Context } {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *adminServiceMock) ProvisionUser(ctx context.Context, input admin.ProvisionUserInput) (domain.UserSummary, error) {
	if mock.ProvisionUserFunc == nil {
		panic("adminServiceMock.ProvisionUserFunc: method is nil but adminService.ProvisionUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.ProvisionUserInput
	}{Ctx: ctx, Input: input}
	mock.lockProvisionUser.Lock()
	mock.calls.ProvisionUser = append(mock.calls.ProvisionUser, callInfo)
	mock.lockProvisionUser.Unlock()
	return mock.ProvisionUserFunc(ctx, input)
}

func (mock *adminServiceMock) ProvisionUserCalls() []struct {
	Ctx   context.Context
	Input admin.ProvisionUserInput
} {
	mock.lockProvisionUser.RLock()
	calls := mock.calls.ProvisionUser
	mock.lockProvisionUser.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetUserRole(ctx context.Context, target uuid.UUID, role domain.UserRole) error {
	if mock.SetUserRoleFunc == nil {
		panic("adminServiceMock.SetUserRoleFunc: method is nil but adminService.SetUserRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target uuid.UUID
		Role   domain.UserRole
	}{Ctx: ctx, Target: target, Role: role}
	mock.lockSetUserRole.Lock()
	mock.calls.SetUserRole = append(mock.calls.SetUserRole, callInfo)
	mock.lockSetUserRole.Unlock()
	return mock.SetUserRoleFunc(ctx, target, role)
}

func (mock *adminServiceMock) SetUserRoleCalls() []struct {
	Ctx    context.Context
	Target uuid.UUID
	Role   domain.UserRole
} {
	mock.lockSetUserRole.RLock()
	calls := mock.calls.SetUserRole
	mock.lockSetUserRole.RUnlock()
	return calls
}

func (mock *adminServiceMock) DeleteUser(ctx context.Context, target uuid.UUID) error {
	if mock.DeleteUserFunc == nil {
		panic("adminServiceMock.DeleteUserFunc: method is nil but adminService.DeleteUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target uuid.UUID
	}{Ctx: ctx, Target: target}
	mock.lockDeleteUser.Lock()
	mock.calls.DeleteUser = append(mock.calls.DeleteUser, callInfo)
	mock.lockDeleteUser.Unlock()
	return mock.DeleteUserFunc(ctx, target)
}

func (mock *adminServiceMock) DeleteUserCalls() []struct {
	Ctx    context.Context
	Target uuid.UUID
} {
	mock.lockDeleteUser.RLock()
	calls := mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}

func (mock *adminServiceMock) ListProcessesForUser(ctx context.Context, target uuid.UUID) ([]domain.Process, error) {
	if mock.ListProcessesForUserFunc == nil {
		panic("adminServiceMock.ListProcessesForUserFunc: method is nil but adminService.ListProcessesForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target uuid.UUID
	}{Ctx: ctx, Target: target}
	mock.lockListProcessesForUser.Lock()
	mock.calls.ListProcessesForUser = append(mock.calls.ListProcessesForUser, callInfo)
	mock.lockListProcessesForUser.Unlock()
	return mock.ListProcessesForUserFunc(ctx, target)
}

func (mock *adminServiceMock) ListProcessesForUserCalls() []struct {
	Ctx    context.Context
	Target uuid.UUID
} {
	mock.lockListProcessesForUser.RLock()
	calls := mock.calls.ListProcessesForUser
	mock.lockListProcessesForUser.RUnlock()
	return calls
}

func (mock *adminServiceMock) Overview(ctx context.Context, activityLimit int) (admin.Overview, error) {
	if mock.OverviewFunc == nil {
		panic("adminServiceMock.OverviewFunc: method is nil but adminService.Overview was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ActivityLimit int
	}{Ctx: ctx, ActivityLimit: activityLimit}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx, activityLimit)
}

func (mock *adminServiceMock) OverviewCalls() []struct {
	Ctx           context.Context
	ActivityLimit int
} {
	mock.lockOverview.RLock()
	calls := mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	ListRecentFunc     func(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	ListForProcessFunc func(ctx context.Context, processID int64, limit int) ([]domain.ActivityEntry, error)

	calls struct {
		ListRecent     []struct {
			Ctx   context.Context
			Limit int
		}
		ListForProcess []struct {
			Ctx       context.Context
			ProcessID int64
			Limit     int
		}
	}
	lockListRecent     sync.RWMutex
	lockListForProcess sync.RWMutex
}

func (mock *activityServiceMock) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("activityServiceMock.ListRecentFunc: method is nil but activityService.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *activityServiceMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *activityServiceMock) ListForProcess(ctx context.Context, processID int64, limit int) ([]domain.ActivityEntry, error) {
	if mock.ListForProcessFunc == nil {
		panic("activityServiceMock.ListForProcessFunc: method is nil but activityService.ListForProcess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID int64
		Limit     int
	}{Ctx: ctx, ProcessID: processID, Limit: limit}
	mock.lockListForProcess.Lock()
	mock.calls.ListForProcess = append(mock.calls.ListForProcess, callInfo)
	mock.lockListForProcess.Unlock()
	return mock.ListForProcessFunc(ctx, processID, limit)
}

func (mock *activityServiceMock) ListForProcessCalls() []struct {
	Ctx       context.Context
	ProcessID int64
	Limit     int
} {
	mock.lockListForProcess.RLock()
	calls := mock.calls.ListForProcess
	mock.lockListForProcess.RUnlock()
	return calls
}
